package http

import (
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	// validate checks request bodies against their struct tags before any
	// service runs.
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}
