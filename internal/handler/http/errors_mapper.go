package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/store"
)

// Expired and invalid tokens map to distinct statuses on purpose: 401 tells
// the client a silent retry with its refresh token is appropriate, 403 tells
// it the credential itself is bad. A revoked refresh token is a dead
// credential too: retrying it can never succeed, so it sits in the 403
// bucket alongside unverifiable tokens.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidStatus:       http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrMissingToken:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenRevoked:        http.StatusForbidden,
	service.ErrTokenIsInvalid:      http.StatusForbidden,

	store.ErrEmailAlreadyExists:      http.StatusBadRequest,
	store.ErrAssignmentAlreadyExists: http.StatusBadRequest,
	store.ErrEmptyUpdate:             http.StatusBadRequest,
	store.ErrNoUserWasFound:          http.StatusNotFound,
	store.ErrNoTaskWasFound:          http.StatusNotFound,
	store.ErrNoAssignmentWasFound:    http.StatusNotFound,

	// normally converted to ErrTokenRevoked by the auth service before it
	// reaches a handler
	store.ErrRefreshTokenNotFound: http.StatusForbidden,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrInvalidStatus:       app.MsgInvalidStatus,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrMissingToken:        app.MsgMissingToken,
	service.ErrTokenIsExpired:      app.MsgTokenIsExpired,
	service.ErrTokenRevoked:        app.MsgTokenRevoked,
	service.ErrTokenIsInvalid:      app.MsgTokenIsInvalid,

	store.ErrEmailAlreadyExists:      app.MsgEmailAlreadyExists,
	store.ErrAssignmentAlreadyExists: app.MsgAlreadyAssigned,
	store.ErrEmptyUpdate:             app.MsgInvalidDataProvided,
	store.ErrNoUserWasFound:          app.MsgUserNotFound,
	store.ErrNoTaskWasFound:          app.MsgTaskNotFound,
	store.ErrNoAssignmentWasFound:    app.MsgAssignmentNotFound,
	store.ErrRefreshTokenNotFound:    app.MsgTokenRevoked,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
