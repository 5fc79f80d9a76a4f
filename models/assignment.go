package models

import "time"

// AssignmentStatus is the progress state of a user-task assignment.
type AssignmentStatus string

const (
	// StatusPending is the initial state of every assignment.
	StatusPending AssignmentStatus = "pending"

	// StatusInProgress marks an assignment the user has started working on.
	StatusInProgress AssignmentStatus = "in-progress"

	// StatusCompleted marks a finished assignment.
	StatusCompleted AssignmentStatus = "completed"
)

// Valid reports whether the status is one of the known enumeration values.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Assignment links exactly one user to exactly one task and tracks the
// user's progress on it. At most one assignment may exist for a given
// (user, task) pair at any time.
type Assignment struct {
	// AssignmentID is the internal unique identifier of the assignment.
	AssignmentID int64 `json:"id"`

	// UserID references the assigned user.
	UserID int64 `json:"user_id"`

	// TaskID references the assigned task.
	TaskID int64 `json:"task_id"`

	// Status is the current progress state.
	Status AssignmentStatus `json:"status"`

	// CreatedAt is the timestamp when the assignment was created.
	CreatedAt time.Time `json:"created_at"`

	// Task carries the referenced task data when the assignment is returned
	// with its relation resolved (list and status-update responses).
	Task *Task `json:"task,omitempty"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "user_tasks"
}
