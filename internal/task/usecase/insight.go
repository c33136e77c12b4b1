package usecase

import (
	"context"

	"missionmind/internal/model"
	"missionmind/internal/task"
	repo "missionmind/internal/task/repository"
)

// Summary renders the heuristic digest of a task from its current fields and
// comment thread. Read-only.
func (uc *implUseCase) Summary(ctx context.Context, taskID string) (model.TaskSummary, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary GetOneTask: %v", err)
		return model.TaskSummary{}, err
	}
	if found.ID == "" {
		return model.TaskSummary{}, task.ErrTaskNotFound
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{TaskID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListComments: %v", err)
		return model.TaskSummary{}, err
	}
	bodies := make([]string, len(comments))
	for i, c := range comments {
		bodies[i] = c.Body
	}

	return uc.eng.Summaries.Summarize(found, bodies), nil
}

// AuthoritySuggestions returns ranked approving-authority candidates for a
// task. A non-positive limit falls back to the engine default. Read-only.
func (uc *implUseCase) AuthoritySuggestions(ctx context.Context, taskID string, limit int) ([]model.AuthoritySuggestion, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AuthoritySuggestions GetOneTask: %v", err)
		return nil, err
	}
	if found.ID == "" {
		return nil, task.ErrTaskNotFound
	}

	return uc.eng.Authorities.Suggest(ctx, found, limit), nil
}

// Risk returns the lateness-risk assessment of a task. Read-only.
func (uc *implUseCase) Risk(ctx context.Context, taskID string) (model.RiskInsight, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Risk GetOneTask: %v", err)
		return model.RiskInsight{}, err
	}
	if found.ID == "" {
		return model.RiskInsight{}, task.ErrTaskNotFound
	}

	return uc.eng.Risk.Assess(found), nil
}

// QualityCheck runs the completeness rules over a task. Read-only.
func (uc *implUseCase) QualityCheck(ctx context.Context, taskID string) (model.QualityCheckResult, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.QualityCheck GetOneTask: %v", err)
		return model.QualityCheckResult{}, err
	}
	if found.ID == "" {
		return model.QualityCheckResult{}, task.ErrTaskNotFound
	}

	return uc.eng.Quality.Check(found), nil
}
