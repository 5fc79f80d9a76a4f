package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoTaskWasFound is returned when a task lookup, update, or delete
	// targets a task id that does not exist.
	ErrNoTaskWasFound = errors.New("no task was found")

	// ErrNoAssignmentWasFound is returned when an assignment lookup, update,
	// or delete targets an assignment id that does not exist.
	ErrNoAssignmentWasFound = errors.New("no assignment was found")

	// ErrAssignmentAlreadyExists is returned when an insert would create a
	// second assignment for the same (user, task) pair.
	ErrAssignmentAlreadyExists = errors.New("assignment already exists")

	// ErrRefreshTokenNotFound is returned when a refresh-token removal
	// affects zero rows: the token was already rotated out, revoked by
	// logout, or never issued. The removal doubles as the atomic
	// serialization point for single-use rotation.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrEmptyUpdate is returned when an update call carries no changes.
	ErrEmptyUpdate = errors.New("update contains no fields")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
