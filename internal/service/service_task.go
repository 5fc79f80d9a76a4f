package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/models"
)

// allTasksCacheKey caches the full task listing.
const allTasksCacheKey = "tasks:all"

func taskCacheKey(taskID int64) string {
	return fmt.Sprintf("tasks:%d", taskID)
}

// taskService is the concrete implementation of TaskService. Reads go
// through the cache when one is configured; every mutation invalidates the
// affected keys so a stale entry never outlives the write that changed it.
type taskService struct {
	taskRepository store.TaskRepository

	// cache is optional. nil means every read hits the database.
	cache *cache.Cache

	logger *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given repository and
// optional cache.
func NewTaskService(taskRepository store.TaskRepository, taskCache *cache.Cache, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		cache:          taskCache,
		logger:         logger,
	}
}

// CreateTask validates and persists a new task.
//
// Returns ErrInvalidDataProvided when the title is empty; otherwise the
// persisted task with server-assigned fields.
func (t *taskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.Title == "" {
		log.Error().Msg("task without title provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	created, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	t.invalidate(ctx, allTasksCacheKey)

	return created, nil
}

// GetTask returns the task with the given id, serving from the cache when a
// fresh entry exists. Cache failures are logged and fall through to the
// database; they never fail the read.
func (t *taskService) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	if t.cache != nil {
		var cached models.Task
		hit, err := t.cache.Get(ctx, taskCacheKey(taskID), &cached)
		if err != nil {
			log.Err(err).Int64("task_id", taskID).Msg("task cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	task, err := t.taskRepository.FindTaskByID(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task search by id failed")
		return models.Task{}, fmt.Errorf("task search by id failed: %w", err)
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, taskCacheKey(taskID), task); err != nil {
			log.Err(err).Int64("task_id", taskID).Msg("task cache write failed")
		}
	}

	return task, nil
}

// ListTasks returns every stored task, serving from the cache when a fresh
// listing exists.
func (t *taskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if t.cache != nil {
		var cached []models.Task
		hit, err := t.cache.Get(ctx, allTasksCacheKey, &cached)
		if err != nil {
			log.Err(err).Msg("task list cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	tasks, err := t.taskRepository.FindAllTasks(ctx)
	if err != nil {
		log.Err(err).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, allTasksCacheKey, tasks); err != nil {
			log.Err(err).Msg("task list cache write failed")
		}
	}

	return tasks, nil
}

// UpdateTask applies a partial update to the task with the given id and
// returns the updated record.
//
// An update with no fields set is rejected with ErrInvalidDataProvided
// before reaching the database.
func (t *taskService) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("task_id", taskID).Msg("empty task update provided")
		return models.Task{}, ErrInvalidDataProvided
	}
	if update.Title != nil && *update.Title == "" {
		log.Error().Int64("task_id", taskID).Msg("empty task title provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	updated, err := t.taskRepository.UpdateTask(ctx, taskID, update)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	t.invalidate(ctx, taskCacheKey(taskID), allTasksCacheKey)

	return updated, nil
}

// DeleteTask removes the task and, transactionally with it, every
// assignment referencing it.
func (t *taskService) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	if err := t.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	t.invalidate(ctx, taskCacheKey(taskID), allTasksCacheKey)

	return nil
}

// invalidate drops cache keys after a successful mutation. Failures are
// logged only: the database already holds the new state and the entries
// expire by TTL anyway.
func (t *taskService) invalidate(ctx context.Context, keys ...string) {
	if t.cache == nil {
		return
	}

	if err := t.cache.Invalidate(ctx, keys...); err != nil {
		logger.FromContext(ctx).Err(err).Strs("keys", keys).Msg("task cache invalidation failed")
	}
}
