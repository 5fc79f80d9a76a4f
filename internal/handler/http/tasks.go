package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/go-chi/chi/v5"
)

// pathID parses the named chi URL parameter as an int64 identifier.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.services.TaskService.ListTasks(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), taskID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, models.Task{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("task_id", task.TaskID).Msg("task created")

	utils.WriteJSON(w, task, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	taskID, err := pathID(r, "id")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, taskID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r, "id")
	if err != nil {
		h.respondMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), taskID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondMessage(w, app.MsgTaskDeleted, http.StatusOK)
}
