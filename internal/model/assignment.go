package model

import "time"

// Assignee types for an assignment.
const (
	AssigneeTypeOrg  = "org"
	AssigneeTypeUser = "user"
)

// Assignment roles.
const (
	AssignmentRoleOwner    = "owner"
	AssignmentRoleReviewer = "reviewer"
)

// Assignment states.
const (
	AssignmentStatePending  = "pending"
	AssignmentStateAccepted = "accepted"
	AssignmentStateDeclined = "declined"
)

// Assignment links a task to an owning or supporting party. The auto-generated
// routing assignment is always org-typed, role "owner", state "pending".
type Assignment struct {
	ID              string
	TaskID          string
	AssigneeType    string
	AssigneeID      string
	Role            string
	DueOverrideDate *time.Time
	State           string
	Rationale       string
	CreatedAt       time.Time
}

// Comment is a threaded note on a task.
type Comment struct {
	ID              string
	TaskID          string
	AuthorUserID    string
	Body            string
	ParentCommentID string
	CreatedAt       time.Time
}
