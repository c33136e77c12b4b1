package usecase

import (
	"context"

	"missionmind/internal/task"
	repo "missionmind/internal/task/repository"
)

// AddComment records a comment on an existing task. A non-empty
// ParentCommentID must name a comment on the same task.
func (uc *implUseCase) AddComment(ctx context.Context, input task.AddCommentInput) (task.AddCommentOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.TaskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment GetOneTask: %v", err)
		return task.AddCommentOutput{}, err
	}
	if existing.ID == "" {
		return task.AddCommentOutput{}, task.ErrTaskNotFound
	}

	if input.ParentCommentID != "" {
		parent, err := uc.repo.GetOneComment(ctx, repo.GetOneCommentOptions{ID: input.ParentCommentID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.AddComment GetOneComment: %v", err)
			return task.AddCommentOutput{}, err
		}
		if parent.ID == "" || parent.TaskID != input.TaskID {
			return task.AddCommentOutput{}, task.ErrParentCommentNotFound
		}
	}

	comment, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		TaskID:          input.TaskID,
		AuthorUserID:    input.AuthorUserID,
		Body:            input.Body,
		ParentCommentID: input.ParentCommentID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment CreateComment: %v", err)
		return task.AddCommentOutput{}, err
	}

	return task.AddCommentOutput{Comment: comment}, nil
}

// ListComments returns the comments of a task oldest first.
func (uc *implUseCase) ListComments(ctx context.Context, taskID string) (task.ListCommentsOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListComments GetOneTask: %v", err)
		return task.ListCommentsOutput{}, err
	}
	if existing.ID == "" {
		return task.ListCommentsOutput{}, task.ErrTaskNotFound
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{TaskID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListComments ListComments: %v", err)
		return task.ListCommentsOutput{}, err
	}

	return task.ListCommentsOutput{Comments: comments}, nil
}
