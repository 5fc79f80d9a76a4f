package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/models"
)

// assignmentService is the concrete implementation of AssignmentService.
type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	taskRepository       store.TaskRepository
	userRepository       store.UserRepository
	logger               *logger.Logger
}

// NewAssignmentService constructs an AssignmentService backed by the given
// repositories.
func NewAssignmentService(
	assignmentRepository store.AssignmentRepository,
	taskRepository store.TaskRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		taskRepository:       taskRepository,
		userRepository:       userRepository,
		logger:               logger,
	}
}

// Assign creates a new assignment linking the user to the task with status
// "pending".
//
// Both referenced entities are checked before the insert, so a missing user
// surfaces as store.ErrNoUserWasFound and a missing task as
// store.ErrNoTaskWasFound rather than a blind foreign-key failure. The pair
// is then checked for an existing assignment; the unique index in the store
// backstops that check under concurrency, so either path reports
// store.ErrAssignmentAlreadyExists.
func (a *assignmentService) Assign(ctx context.Context, userID, taskID int64) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if _, err := a.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.Assignment{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if _, err := a.taskRepository.FindTaskByID(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task search by id failed")
		return models.Assignment{}, fmt.Errorf("task search by id failed: %w", err)
	}

	exists, err := a.assignmentRepository.AssignmentExists(ctx, userID, taskID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("assignment existence check failed")
		return models.Assignment{}, fmt.Errorf("assignment existence check failed: %w", err)
	}
	if exists {
		return models.Assignment{}, store.ErrAssignmentAlreadyExists
	}

	assignment, err := a.assignmentRepository.CreateAssignment(ctx, userID, taskID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("assignment creation ended with error")
		return models.Assignment{}, fmt.Errorf("assignment creation ended with error: %w", err)
	}

	return assignment, nil
}

// ListForUser returns every assignment of the user with the referenced task
// data resolved inline. A missing user surfaces as store.ErrNoUserWasFound.
func (a *assignmentService) ListForUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	if _, err := a.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	assignments, err := a.assignmentRepository.FindAssignmentsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("assignment listing failed")
		return nil, fmt.Errorf("assignment listing failed: %w", err)
	}

	return assignments, nil
}

// UpdateStatus moves the assignment to the given status and returns the
// updated record with its task resolved.
//
// A value outside the known enumeration is rejected with ErrInvalidStatus
// before the database is touched, so the stored status stays unchanged.
func (a *assignmentService) UpdateStatus(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		log.Error().Int64("assignment_id", assignmentID).Str("status", string(status)).Msg("invalid assignment status provided")
		return models.Assignment{}, ErrInvalidStatus
	}

	updated, err := a.assignmentRepository.UpdateAssignmentStatus(ctx, assignmentID, status)
	if err != nil {
		log.Err(err).Int64("assignment_id", assignmentID).Msg("assignment status update ended with error")
		return models.Assignment{}, fmt.Errorf("assignment status update ended with error: %w", err)
	}

	return updated, nil
}

// Remove deletes the assignment with the given id.
func (a *assignmentService) Remove(ctx context.Context, assignmentID int64) error {
	log := logger.FromContext(ctx)

	if err := a.assignmentRepository.DeleteAssignment(ctx, assignmentID); err != nil {
		log.Err(err).Int64("assignment_id", assignmentID).Msg("assignment removal ended with error")
		return fmt.Errorf("assignment removal ended with error: %w", err)
	}

	return nil
}
