package store

import "github.com/MKhiriev/go-task-manager/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence entry point handed to the service
// layer.
type Storages struct {
	UserRepository       UserRepository
	TaskRepository       TaskRepository
	AssignmentRepository AssignmentRepository
}

// NewStorages constructs all repositories over the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		TaskRepository:       NewTaskRepository(db, logger),
		AssignmentRepository: NewAssignmentRepository(db, logger),
	}
}
