package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseAccessToken], resolves the token
// subject to a live user record, and stores that record in the request
// context via [utils.WithUser] before delegating to the next handler.
//
// Rejections are deliberately distinguishable:
//   - HTTP 401 — the header is absent or unparseable, or the token has
//     expired. The client should exchange its refresh token and retry.
//   - HTTP 403 — the token cannot be verified (bad signature, wrong issuer,
//     malformed claims). Retrying will not help.
//   - HTTP 404 — the token is valid but its subject no longer resolves to a
//     user record.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.respondMessage(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.respondMessage(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				h.respondMessage(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				h.respondMessage(w, app.MsgTokenIsInvalid, http.StatusForbidden)
				return
			}
		}

		user, err := h.services.AuthService.GetUser(ctx, token.UserID)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can gate on identity without re-parsing the token.
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
