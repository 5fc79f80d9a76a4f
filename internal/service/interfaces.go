package service

import (
	"context"

	"github.com/MKhiriev/go-task-manager/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error)
	Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error

	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

type AssignmentService interface {
	Assign(ctx context.Context, userID, taskID int64) (models.Assignment, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Assignment, error)
	UpdateStatus(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error)
	Remove(ctx context.Context, assignmentID int64) error
}
