package models

import "time"

// Request bodies accepted by the HTTP API. Validation rules are expressed as
// go-playground/validator struct tags and enforced before any service runs.

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	// Role is optional; empty means [RoleUser]. Values outside the role
	// enumeration are rejected.
	Role Role `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// SigninRequest is the body of POST /api/auth/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the body of POST /api/auth/refresh-token and
// POST /api/auth/logout. The refresh token travels in the body, not in the
// Authorization header.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TaskRequest is the body of POST /api/tasks and PUT /api/tasks/{id}.
type TaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

// AssignRequest is the body of POST /api/user-tasks/assign.
type AssignRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
	TaskID int64 `json:"task_id" validate:"required"`
}

// StatusUpdateRequest is the body of PUT /api/user-tasks/{id}/status.
// The status value is checked against the assignment status enumeration in
// the service layer so that an invalid value never reaches the store.
type StatusUpdateRequest struct {
	Status AssignmentStatus `json:"status" validate:"required"`
}

// AuthResponse is the success payload of auth flows: a trimmed user summary
// plus a fresh token pair.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
