package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-manager/models"
)

// UserRepository owns user records and their refresh-token allow-list.
//
// The refresh-token methods are deliberately single-row operations (add one,
// delete one): mutations of the allow-list must be atomic at the store level,
// never expressed as read-modify-write of a whole token collection.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// AddRefreshToken records a freshly issued refresh token for the user.
	AddRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// DeleteRefreshToken atomically consumes a stored refresh token.
	// Exactly one of any number of concurrent calls for the same token
	// succeeds; the rest receive ErrRefreshTokenNotFound.
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteExpiredRefreshTokens prunes tokens whose lifetime has elapsed
	// without ever being used. Best effort; an empty result is not an error.
	DeleteExpiredRefreshTokens(ctx context.Context, userID int64) error
}

// TaskRepository owns task records.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	FindTaskByID(ctx context.Context, taskID int64) (models.Task, error)
	FindAllTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes the task and every assignment referencing it in a
	// single transaction, preserving the non-dangling-reference invariant.
	DeleteTask(ctx context.Context, taskID int64) error
}

// AssignmentRepository owns user-task assignment records. It holds non-owning
// references to users and tasks.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, userID, taskID int64) (models.Assignment, error)

	// AssignmentExists reports whether an assignment for the exact
	// (user, task) pair is already present.
	AssignmentExists(ctx context.Context, userID, taskID int64) (bool, error)
	FindAssignmentByID(ctx context.Context, assignmentID int64) (models.Assignment, error)

	// FindAssignmentsByUser returns the user's assignments with the
	// referenced task data resolved inline.
	FindAssignmentsByUser(ctx context.Context, userID int64) ([]models.Assignment, error)

	UpdateAssignmentStatus(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}
