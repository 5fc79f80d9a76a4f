package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/jackc/pgerrcode"
)

// assignmentRepository is the PostgreSQL-backed implementation of
// [AssignmentRepository].
type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssignmentRepository constructs an [AssignmentRepository] backed by the
// provided database connection and logger.
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAssignment inserts a new (user, task) assignment with status
// "pending" and returns it with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the (user_id, task_id) index →
//     [ErrAssignmentAlreadyExists]. The unique index backstops the service
//     layer's pre-insert existence check, so two concurrent assigns of the
//     same pair cannot both succeed.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *assignmentRepository) CreateAssignment(ctx context.Context, userID, taskID int64) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAssignment, userID, taskID, models.StatusPending)

	var created models.Assignment
	if err := row.Scan(&created.AssignmentID, &created.UserID, &created.TaskID, &created.Status, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Assignment{}, ErrAssignmentAlreadyExists
		case "":
			log.Err(err).Str("func", "*assignmentRepository.CreateAssignment").Msg("error: scanning error")
			return models.Assignment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.CreateAssignment").Msg("error: unexpected DB error")
			return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// AssignmentExists reports whether an assignment for the exact (user, task)
// pair is already present. It backs the pre-insert existence check of the
// assignment flow; the unique index on (user_id, task_id) remains the
// authoritative guard under concurrency.
func (r *assignmentRepository) AssignmentExists(ctx context.Context, userID, taskID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, assignmentExists, userID, taskID)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.AssignmentExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// FindAssignmentByID retrieves the assignment with the given id, with its
// referenced task resolved inline.
//
// Error handling:
//   - No matching row → [ErrNoAssignmentWasFound].
func (r *assignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID int64) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := joinedAssignmentsBuilder().
		Where(sq.Eq{"ut.user_task_id": assignmentID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAssignmentByID").Msg("error: building query")
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	assignment, err := scanJoinedAssignment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Assignment{}, ErrNoAssignmentWasFound
		}

		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.FindAssignmentByID").Msg("error: scanning error")
		return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return assignment, nil
}

// FindAssignmentsByUser returns every assignment of the given user with the
// referenced task data resolved inline, ordered by creation.
func (r *assignmentRepository) FindAssignmentsByUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := joinedAssignmentsBuilder().
		Where(sq.Eq{"ut.user_id": userID}).
		OrderBy("ut.user_task_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.FindAssignmentsByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.FindAssignmentsByUser").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	assignments := make([]models.Assignment, 0)
	for rows.Next() {
		assignment, err := scanJoinedAssignment(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*assignmentRepository.FindAssignmentsByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return assignments, nil
}

// UpdateAssignmentStatus sets the status of the assignment and returns the
// updated record with its referenced task resolved inline.
//
// Error handling:
//   - No matching row → [ErrNoAssignmentWasFound].
func (r *assignmentRepository) UpdateAssignmentStatus(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	var updated models.Assignment
	row := r.db.QueryRowContext(ctx, updateAssignmentStatus, status, assignmentID)

	if err := row.Scan(&updated.AssignmentID, &updated.UserID, &updated.TaskID, &updated.Status, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Assignment{}, ErrNoAssignmentWasFound
		}

		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.UpdateAssignmentStatus").Msg("error: scanning error")
		return models.Assignment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// resolve the referenced task for the response
	return r.FindAssignmentByID(ctx, updated.AssignmentID)
}

// DeleteAssignment removes the assignment with the given id.
//
// Error handling:
//   - No row deleted → [ErrNoAssignmentWasFound].
func (r *assignmentRepository) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAssignment, assignmentID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*assignmentRepository.DeleteAssignment").Msg("error: deleting assignment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoAssignmentWasFound
	}

	return nil
}

// joinedAssignmentsBuilder is the shared base of the joined assignment
// queries: user_tasks rows with their referenced task columns.
func joinedAssignmentsBuilder() sq.SelectBuilder {
	return sq.Select(assignmentColumns...).
		PlaceholderFormat(sq.Dollar).
		From("user_tasks ut").
		Join("tasks t ON t.task_id = ut.task_id")
}

// scanJoinedAssignment scans one row produced by [joinedAssignmentsBuilder]
// into an Assignment with its Task populated.
func scanJoinedAssignment(scan func(dest ...any) error) (models.Assignment, error) {
	var assignment models.Assignment
	var task models.Task

	err := scan(
		&assignment.AssignmentID,
		&assignment.UserID,
		&assignment.TaskID,
		&assignment.Status,
		&assignment.CreatedAt,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		return models.Assignment{}, err
	}

	task.TaskID = assignment.TaskID
	assignment.Task = &task

	return assignment, nil
}
