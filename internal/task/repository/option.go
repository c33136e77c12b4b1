package repository

import (
	"time"

	"missionmind/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task. An empty ID
// lets the store assign the next sequential task id.
type CreateTaskOptions struct {
	ID             string
	Title          string
	Description    string
	Classification model.Classification
	SuspenseDate   time.Time
	Originator     string
	OrgUnitID      string
	PriorityScore  float64
	Status         model.TaskStatus
	RecordSeriesID string
	Tags           []string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// A zero DueBefore skips the suspense filter; otherwise it is inclusive.
type ListTasksOptions struct {
	Status    string
	OrgUnitID string
	DueBefore time.Time
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds the full replacement row for an existing Task.
// The use case merges partial input with the current row before calling this.
type UpdateTaskOptions struct {
	ID             string
	Title          string
	Description    string
	Classification model.Classification
	SuspenseDate   time.Time
	Originator     string
	OrgUnitID      string
	PriorityScore  float64
	Status         model.TaskStatus
	RecordSeriesID string
	Tags           []string
}

// CreateAssignmentOptions holds parameters for inserting a new Assignment.
type CreateAssignmentOptions struct {
	TaskID          string
	AssigneeType    string
	AssigneeID      string
	Role            string
	DueOverrideDate *time.Time
	State           string
	Rationale       string
}

// ListAssignmentsOptions holds filter parameters for listing Assignments.
// TaskID filters one task; TaskIDs batches several in one query.
type ListAssignmentsOptions struct {
	TaskID  string
	TaskIDs []string
}

// CreateCommentOptions holds parameters for inserting a new Comment.
type CreateCommentOptions struct {
	TaskID          string
	AuthorUserID    string
	Body            string
	ParentCommentID string
}

// GetOneCommentOptions holds filter parameters for fetching a single Comment.
type GetOneCommentOptions struct {
	ID string
}

// ListCommentsOptions holds filter parameters for listing Comments in
// insertion order.
type ListCommentsOptions struct {
	TaskID string
}
