package models

import "time"

// Task is a unit of work that can be assigned to users. Tasks carry no
// ownership link to any user; the relation lives in [Assignment].
type Task struct {
	// TaskID is the internal unique identifier of the task.
	TaskID int64 `json:"id"`

	// Title is the short human-readable name of the task. Required.
	Title string `json:"title"`

	// Description is the optional long-form details of the task.
	Description string `json:"description"`

	// DueDate is the point in time by which the task should be completed.
	DueDate time.Time `json:"due_date"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate describes a partial update of a task. Nil fields are left
// untouched by the persistence layer.
type TaskUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil
}
