package usecase

import (
	"context"

	"missionmind/internal/model"
	"missionmind/internal/task"
	repo "missionmind/internal/task/repository"
)

// AddAssignment records a manual assignment on an existing task. AssigneeType
// defaults to org and State to pending when left empty.
func (uc *implUseCase) AddAssignment(ctx context.Context, input task.AddAssignmentInput) (task.AddAssignmentOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.TaskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddAssignment GetOneTask: %v", err)
		return task.AddAssignmentOutput{}, err
	}
	if existing.ID == "" {
		return task.AddAssignmentOutput{}, task.ErrTaskNotFound
	}

	assignment, err := uc.repo.CreateAssignment(ctx, repo.CreateAssignmentOptions{
		TaskID:          input.TaskID,
		AssigneeType:    uc.coalesce(input.AssigneeType, model.AssigneeTypeOrg),
		AssigneeID:      input.AssigneeID,
		Role:            input.Role,
		DueOverrideDate: input.DueOverrideDate,
		State:           uc.coalesce(input.State, model.AssignmentStatePending),
		Rationale:       input.Rationale,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddAssignment CreateAssignment: %v", err)
		return task.AddAssignmentOutput{}, err
	}

	return task.AddAssignmentOutput{Assignment: assignment}, nil
}
