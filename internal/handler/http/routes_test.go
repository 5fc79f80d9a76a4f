package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
)

// ---- Mock: AuthService ----
//
// Function fields override single behaviors; nil fields answer success with
// zero values, so each test configures only what it exercises.

type mockAuthSvc struct {
	registerFn func(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error)
	loginFn    func(ctx context.Context, email, password string) (models.User, models.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	logoutFn   func(ctx context.Context, refreshToken string) error
	parseFn    func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn  func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthSvc) Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user, password)
	}
	return user, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (m *mockAuthSvc) Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{Email: email}, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (m *mockAuthSvc) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	return models.TokenPair{AccessToken: "access", RefreshToken: "rotated"}, nil
}

func (m *mockAuthSvc) Logout(ctx context.Context, refreshToken string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, refreshToken)
	}
	return nil
}

func (m *mockAuthSvc) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

func (m *mockAuthSvc) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID, Role: models.RoleUser}, nil
}

// ---- Mock: TaskService ----

type mockTaskSvc struct {
	createFn func(ctx context.Context, task models.Task) (models.Task, error)
	getFn    func(ctx context.Context, taskID int64) (models.Task, error)
	listFn   func(ctx context.Context) ([]models.Task, error)
	updateFn func(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error)
	deleteFn func(ctx context.Context, taskID int64) error
}

func (m *mockTaskSvc) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	task.TaskID = 1
	return task, nil
}

func (m *mockTaskSvc) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, taskID)
	}
	return models.Task{TaskID: taskID}, nil
}

func (m *mockTaskSvc) ListTasks(ctx context.Context) ([]models.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Task{}, nil
}

func (m *mockTaskSvc) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, taskID, update)
	}
	return models.Task{TaskID: taskID}, nil
}

func (m *mockTaskSvc) DeleteTask(ctx context.Context, taskID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, taskID)
	}
	return nil
}

// ---- Mock: AssignmentService ----

type mockAssignmentSvc struct {
	assignFn       func(ctx context.Context, userID, taskID int64) (models.Assignment, error)
	listForUserFn  func(ctx context.Context, userID int64) ([]models.Assignment, error)
	updateStatusFn func(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error)
	removeFn       func(ctx context.Context, assignmentID int64) error
}

func (m *mockAssignmentSvc) Assign(ctx context.Context, userID, taskID int64) (models.Assignment, error) {
	if m.assignFn != nil {
		return m.assignFn(ctx, userID, taskID)
	}
	return models.Assignment{AssignmentID: 1, UserID: userID, TaskID: taskID, Status: models.StatusPending}, nil
}

func (m *mockAssignmentSvc) ListForUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	if m.listForUserFn != nil {
		return m.listForUserFn(ctx, userID)
	}
	return []models.Assignment{}, nil
}

func (m *mockAssignmentSvc) UpdateStatus(ctx context.Context, assignmentID int64, status models.AssignmentStatus) (models.Assignment, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, assignmentID, status)
	}
	return models.Assignment{AssignmentID: assignmentID, Status: status}, nil
}

func (m *mockAssignmentSvc) Remove(ctx context.Context, assignmentID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, assignmentID)
	}
	return nil
}

// ---- Helpers ----

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = &mockAuthSvc{}
	}
	if services.TaskService == nil {
		services.TaskService = &mockTaskSvc{}
	}
	if services.AssignmentService == nil {
		services.AssignmentService = &mockAssignmentSvc{}
	}
	return NewHandler(services, logger.Nop()).Init()
}

// asAdmin makes the default auth mock resolve to an admin identity.
func asAdmin() *mockAuthSvc {
	return &mockAuthSvc{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Role: models.RoleAdmin}, nil
		},
	}
}

func TestRoutes_AuthRequired(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/tasks"},
		{http.MethodGet, "/api/tasks/1"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
		{http.MethodGet, "/api/user-tasks/user/1"},
		{http.MethodPost, "/api/user-tasks/assign"},
		{http.MethodPut, "/api/user-tasks/1/status"},
		{http.MethodDelete, "/api/user-tasks/1"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_AdminGate(t *testing.T) {
	// non-admin bearer against admin-gated endpoints
	router := newTestRouter(t, &service.Services{})

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
		{http.MethodPost, "/api/user-tasks/assign"},
		{http.MethodDelete, "/api/user-tasks/1"},
	}

	for _, route := range gated {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestRoutes_UnknownMethodHidesRoute(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
