package task

import (
	"time"

	"missionmind/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput carries a new tasking. ID is optional; when empty the store
// assigns the next sequential id.
type CreateTaskInput struct {
	ID             string
	Title          string
	Description    string
	Classification model.Classification
	SuspenseDate   time.Time
	Originator     string
	OrgUnitID      string
	RecordSeriesID string
	Tags           []string
}

type ListTasksInput struct {
	Status    string
	DueBefore time.Time // zero value skips the filter; inclusive otherwise
	OrgUnitID string
	Limit     int
	Offset    int
}

// UpdateTaskInput applies a partial update. Empty strings and the zero time
// keep current values; nil Tags keeps the current tag set while an empty
// non-nil slice clears it.
type UpdateTaskInput struct {
	ID             string
	Title          string
	Description    string
	Classification model.Classification
	SuspenseDate   time.Time
	Originator     string
	OrgUnitID      string
	RecordSeriesID string
	Status         model.TaskStatus
	Tags           []string
}

// AddAssignmentInput records a manual assignment. AssigneeType defaults to
// org and State to pending when left empty.
type AddAssignmentInput struct {
	TaskID          string
	AssigneeType    string
	AssigneeID      string
	Role            string
	DueOverrideDate *time.Time
	State           string
	Rationale       string
}

type AddCommentInput struct {
	TaskID          string
	AuthorUserID    string
	Body            string
	ParentCommentID string
}

// --- UseCase Outputs ---

// TaskItem pairs a task with its assignments for list views.
type TaskItem struct {
	Task        model.Task
	Assignments []model.Assignment
}

type CreateTaskOutput struct {
	Task        model.Task
	Assignments []model.Assignment
}

type ListTasksOutput struct {
	Tasks  []TaskItem
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task        model.Task
	Assignments []model.Assignment
}

type UpdateTaskOutput struct {
	Task        model.Task
	Assignments []model.Assignment
}

type AddAssignmentOutput struct {
	Assignment model.Assignment
}

type AddCommentOutput struct {
	Comment model.Comment
}

type ListCommentsOutput struct {
	Comments []model.Comment
}
