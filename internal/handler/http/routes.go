package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization: the refresh token travels in the body
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/signin", h.signin)
		r.Post("/api/auth/refresh-token", h.refreshToken)
		r.Post("/api/auth/logout", h.logout)
	})

	// routes available to any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{id}", h.getTask)
		r.Get("/api/user-tasks/user/{userId}", h.listUserAssignments)
		r.Put("/api/user-tasks/{id}/status", h.updateAssignmentStatus)
	})

	// routes that mutate shared resources: admin role required
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Post("/api/tasks", h.createTask)
		r.Put("/api/tasks/{id}", h.updateTask)
		r.Delete("/api/tasks/{id}", h.deleteTask)
		r.Post("/api/user-tasks/assign", h.assignTask)
		r.Delete("/api/user-tasks/{id}", h.removeAssignment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
