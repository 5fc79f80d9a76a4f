package service

import (
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
)

type Services struct {
	AuthService       AuthService
	TaskService       TaskService
	AssignmentService AssignmentService
}

// NewServices wires every service of the application. taskCache may be nil;
// the task service then serves every read from the database.
func NewServices(storages store.Storages, taskCache *cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.Auth, logger),
		TaskService:       NewTaskService(storages.TaskRepository, taskCache, logger),
		AssignmentService: NewAssignmentService(storages.AssignmentRepository, storages.TaskRepository, storages.UserRepository, logger),
	}
}
