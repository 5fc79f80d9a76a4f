package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/go-playground/validator/v10"
)

// messageResponse is the JSON envelope of every non-resource response:
// a human-readable message plus, for validation failures, the per-field
// problem list.
type messageResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (h *Handler) respondMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, messageResponse{Message: message}, statusCode) //nolint:errcheck // WriteJSON reports to the client itself
}

// respondError maps a service/store error onto its HTTP status and message
// and writes the failure envelope. Unclassified errors answer 500 with the
// underlying detail, per the fail-loud policy.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)
	if status == http.StatusInternalServerError && message == app.MsgInternalServerError {
		message = err.Error()
	}

	log.Err(err).Int("status", status).Msg(message)
	utils.WriteJSON(w, messageResponse{Message: message}, status) //nolint:errcheck
}

// respondValidationError writes a 400 envelope with one entry per failed
// field constraint.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	response := messageResponse{Message: app.MsgInvalidDataProvided}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			response.Errors = append(response.Errors, fieldError.Error())
		}
	}

	log.Err(err).Msg("request validation failed")
	utils.WriteJSON(w, response, http.StatusBadRequest) //nolint:errcheck
}
