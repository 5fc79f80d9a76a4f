// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields
// (TaskID, CreatedAt).
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.Title, task.Description, task.DueDate)

	var created models.Task
	if err := row.Scan(&created.TaskID, &created.Title, &created.Description, &created.DueDate, &created.CreatedAt); err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindTaskByID retrieves the task with the given id.
//
// Error handling:
//   - No matching row → [ErrNoTaskWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *taskRepository) FindTaskByID(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	row := r.db.QueryRowContext(ctx, findTaskByID, taskID)

	if err := row.Scan(&task.TaskID, &task.Title, &task.Description, &task.DueDate, &task.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNoTaskWasFound
		}

		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.FindTaskByID").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// FindAllTasks returns every stored task ordered by id.
func (r *taskRepository) FindAllTasks(ctx context.Context) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllTasks)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.FindAllTasks").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.TaskID, &task.Title, &task.Description, &task.DueDate, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindAllTasks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update to the task and returns the updated
// row. The UPDATE statement is built dynamically so that nil fields of the
// update are left untouched in the database.
//
// Error handling:
//   - Update without any fields set → [ErrEmptyUpdate].
//   - No matching row → [ErrNoTaskWasFound].
func (r *taskRepository) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.Task{}, ErrEmptyUpdate
	}

	builder := sq.Update("tasks").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"task_id": taskID}).
		Suffix("RETURNING task_id, title, description, due_date, created_at")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: building update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&task.TaskID, &task.Title, &task.Description, &task.DueDate, &task.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNoTaskWasFound
		}

		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// DeleteTask removes the task and every assignment referencing it within one
// transaction. The assignments go first so that no moment exists where an
// assignment references a missing task.
//
// Error handling:
//   - No task row deleted → [ErrNoTaskWasFound] (the transaction is rolled
//     back, so assignment deletions are undone as well).
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, deleteAssignmentsByTask, taskID); err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.DeleteTask").Msg("error: deleting task assignments")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	result, err := tx.ExecContext(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*taskRepository.DeleteTask").Msg("error: deleting task")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoTaskWasFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
