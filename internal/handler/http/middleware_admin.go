package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-manager/internal/app"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/utils"
	"github.com/MKhiriev/go-task-manager/models"
)

// adminOnly gates an endpoint on the admin role. It must be composed after
// [Handler.auth], which puts the authenticated user into the context; a
// request that reaches it without one is rejected outright.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			log.Error().Msg("no authenticated user in context")
			h.respondMessage(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		if !hasRole(user, models.RoleAdmin) {
			log.Warn().Int64("id", user.UserID).Str("role", string(user.Role)).Msg("admin role required")
			h.respondMessage(w, app.MsgForbidden, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hasRole is the single role predicate every gate composes over.
func hasRole(user models.User, role models.Role) bool {
	return user.Role == role
}
