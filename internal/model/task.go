package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusDraft   TaskStatus = "draft"
	TaskStatusOpen    TaskStatus = "open"
	TaskStatusInWork  TaskStatus = "in_work"
	TaskStatusOverdue TaskStatus = "overdue"
	TaskStatusClosed  TaskStatus = "closed"
)

// Classification marks the sensitivity level of a task.
type Classification string

const (
	ClassificationUnclassified Classification = "U"
	ClassificationConfidential Classification = "C"
	ClassificationSecret       Classification = "S"
	ClassificationTopSecret    Classification = "TS"
)

// Task is a tracked tasking with a suspense (deadline) and an owning org unit.
type Task struct {
	ID             string
	Title          string
	Description    string
	Classification Classification
	SuspenseDate   time.Time // date-only, UTC midnight
	Originator     string    // free text naming the requesting entity
	OrgUnitID      string
	PriorityScore  float64
	Status         TaskStatus
	RecordSeriesID string // ARIMS record series, optional
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
