package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doAuthed(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListTasks(t *testing.T) {
	tasks := &mockTaskSvc{
		listFn: func(_ context.Context) ([]models.Task, error) {
			return []models.Task{{TaskID: 1, Title: "first"}, {TaskID: 2, Title: "second"}}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	rec := doAuthed(t, router, http.MethodGet, "/api/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestGetTask(t *testing.T) {
	tasks := &mockTaskSvc{
		getFn: func(_ context.Context, taskID int64) (models.Task, error) {
			if taskID != 7 {
				return models.Task{}, store.ErrNoTaskWasFound
			}
			return models.Task{TaskID: 7, Title: "write report"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	t.Run("found", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/tasks/7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "write report")
	})

	t.Run("missing", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/tasks/8", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "task not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodGet, "/api/tasks/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateTask_Admin(t *testing.T) {
	tasks := &mockTaskSvc{
		createFn: func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, "write report", task.Title)
			task.TaskID = 1
			return task, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: asAdmin(), TaskService: tasks})

	rec := doAuthed(t, router, http.MethodPost, "/api/tasks", `{"title":"write report","description":"quarterly numbers"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.TaskID)
}

func TestCreateTask_MissingTitle(t *testing.T) {
	router := newTestRouter(t, &service.Services{AuthService: asAdmin()})

	rec := doAuthed(t, router, http.MethodPost, "/api/tasks", `{"description":"no title"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "errors")
}

func TestUpdateTask_Partial(t *testing.T) {
	tasks := &mockTaskSvc{
		updateFn: func(_ context.Context, taskID int64, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.Title)
			assert.Nil(t, update.Description)
			assert.Nil(t, update.DueDate)
			return models.Task{TaskID: taskID, Title: *update.Title}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: asAdmin(), TaskService: tasks})

	rec := doAuthed(t, router, http.MethodPut, "/api/tasks/7", `{"title":"renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "renamed")
}

func TestDeleteTask(t *testing.T) {
	tasks := &mockTaskSvc{
		deleteFn: func(_ context.Context, taskID int64) error {
			if taskID != 7 {
				return store.ErrNoTaskWasFound
			}
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: asAdmin(), TaskService: tasks})

	t.Run("found", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodDelete, "/api/tasks/7", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "task deleted")
	})

	t.Run("missing", func(t *testing.T) {
		rec := doAuthed(t, router, http.MethodDelete, "/api/tasks/8", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
