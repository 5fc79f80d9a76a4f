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

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthSvc{
		registerFn: func(_ context.Context, user models.User, password string) (models.User, models.TokenPair, error) {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "secret1", password)
			user.UserID = 1
			user.Role = models.RoleUser
			return user, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := postJSON(t, router, "/api/auth/signup", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.User.UserID)
	assert.Equal(t, "access", response.AccessToken)
	assert.Equal(t, "refresh", response.RefreshToken)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestSignup_ValidationErrors(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		name string
		body string
	}{
		{name: "broken JSON", body: `{"name":`},
		{name: "missing email", body: `{"name":"Alice","password":"secret1"}`},
		{name: "malformed email", body: `{"name":"Alice","email":"not-an-email","password":"secret1"}`},
		{name: "short password", body: `{"name":"Alice","email":"alice@example.com","password":"abc"}`},
		{name: "unknown role", body: `{"name":"Alice","email":"alice@example.com","password":"secret1","role":"owner"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	auth := &mockAuthSvc{
		registerFn: func(_ context.Context, _ models.User, _ string) (models.User, models.TokenPair, error) {
			return models.User{}, models.TokenPair{}, store.ErrEmailAlreadyExists
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := postJSON(t, router, "/api/auth/signup", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestSignin_Success(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, email, password string) (models.User, models.TokenPair, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "secret1", password)
			return models.User{UserID: 1, Email: email}, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := postJSON(t, router, "/api/auth/signin", `{"email":"alice@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "refresh", response.RefreshToken)
}

func TestSignin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthSvc{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.TokenPair, error) {
			return models.User{}, models.TokenPair{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := postJSON(t, router, "/api/auth/signin", `{"email":"alice@example.com","password":"wrong00"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestRefreshToken(t *testing.T) {
	tests := []struct {
		name       string
		refreshErr error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusOK, wantBody: "rotated"},
		{name: "missing token", refreshErr: service.ErrMissingToken, wantStatus: http.StatusUnauthorized, wantBody: "missing token"},
		{name: "expired", refreshErr: service.ErrTokenIsExpired, wantStatus: http.StatusUnauthorized, wantBody: "token is expired"},
		{name: "invalid", refreshErr: service.ErrTokenIsInvalid, wantStatus: http.StatusForbidden, wantBody: "token is invalid"},
		{name: "already consumed", refreshErr: service.ErrTokenRevoked, wantStatus: http.StatusForbidden, wantBody: "token is revoked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthSvc{
				refreshFn: func(_ context.Context, token string) (models.TokenPair, error) {
					if tt.refreshErr != nil {
						return models.TokenPair{}, tt.refreshErr
					}
					return models.TokenPair{AccessToken: "access", RefreshToken: "rotated"}, nil
				},
			}
			router := newTestRouter(t, &service.Services{AuthService: auth})

			rec := postJSON(t, router, "/api/auth/refresh-token", `{"refreshToken":"some-token"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestLogout_AlwaysSucceedsForBadTokens(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := postJSON(t, router, "/api/auth/logout", `{"refreshToken":"whatever"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}

func TestLogout_MissingToken(t *testing.T) {
	auth := &mockAuthSvc{
		logoutFn: func(_ context.Context, refreshToken string) error {
			if refreshToken == "" {
				return service.ErrMissingToken
			}
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := postJSON(t, router, "/api/auth/logout", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing token")
}
