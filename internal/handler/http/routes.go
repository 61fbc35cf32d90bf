package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth", h.create)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/register", h.register)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth", h.findAllUsers)
		r.Get("/api/auth/check-token", h.checkToken)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
