package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

func (h *Handler) listUserAssignments(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	assignments, err := h.services.AssignmentService.ListForUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, assignments, http.StatusOK) //nolint:errcheck
}

func (h *Handler) assignTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.Assign(ctx, request.UserID, request.TaskID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().
		Int64("assignment_id", assignment.AssignmentID).
		Int64("user_id", assignment.UserID).
		Int64("task_id", assignment.TaskID).
		Msg("task assigned")

	utils.WriteJSON(w, assignment, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	assignmentID, err := pathID(r, "id")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var request models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	assignment, err := h.services.AssignmentService.UpdateStatus(ctx, assignmentID, request.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, assignment, http.StatusOK) //nolint:errcheck
}

func (h *Handler) removeAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := pathID(r, "id")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AssignmentService.Remove(r.Context(), assignmentID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondMessage(w, app.MsgAssignmentRemoved, http.StatusOK)
}
