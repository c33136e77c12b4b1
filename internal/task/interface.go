package task

import (
	"context"

	"missionmind/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task lifecycle
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Collaboration
	AddAssignment(ctx context.Context, input AddAssignmentInput) (AddAssignmentOutput, error)
	AddComment(ctx context.Context, input AddCommentInput) (AddCommentOutput, error)
	ListComments(ctx context.Context, taskID string) (ListCommentsOutput, error)

	// Derived insight reads; none of these mutate state.
	Summary(ctx context.Context, taskID string) (model.TaskSummary, error)
	AuthoritySuggestions(ctx context.Context, taskID string, limit int) ([]model.AuthoritySuggestion, error)
	Risk(ctx context.Context, taskID string) (model.RiskInsight, error)
	QualityCheck(ctx context.Context, taskID string) (model.QualityCheckResult, error)
}
