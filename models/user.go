package models

import "time"

// Role is the authorization level assigned to a user account.
type Role string

const (
	// RoleUser is the default role granted at signup. It allows reading
	// tasks and managing the user's own assignment statuses.
	RoleUser Role = "user"

	// RoleAdmin additionally allows mutating shared resources:
	// creating/updating/deleting tasks and assigning/removing user tasks.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known enumeration values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RefreshToken is a persisted long-lived credential. A token is valid for
// exchange only while its row exists; deleting the row revokes it.
type RefreshToken struct {
	// Token is the compact JWS string, also the primary key.
	Token string `json:"-"`

	// UserID is the owner of the session.
	UserID int64 `json:"-"`

	// ExpiresAt mirrors the token's "exp" claim so that expired rows can be
	// pruned without parsing every stored token.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the token was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the RefreshToken model.
func (t RefreshToken) TableName() string {
	return "refresh_tokens"
}
