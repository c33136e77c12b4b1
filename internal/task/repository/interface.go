package repository

import (
	"context"

	"missionmind/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	AssignmentRepository
	CommentRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// AssignmentRepository defines all data access methods for the Assignment
// entity.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.Assignment, error)
	ListAssignments(ctx context.Context, opt ListAssignmentsOptions) ([]model.Assignment, error)
}

// CommentRepository defines all data access methods for the Comment entity.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	GetOneComment(ctx context.Context, opt GetOneCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
}
