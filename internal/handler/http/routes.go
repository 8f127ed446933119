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
		r.Post("/api/login", h.login)
	})

	// routes protected by a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/protected", h.protected)
		r.Get("/appointments", h.appointments)
		r.Get("/latestappointments", h.latestAppointments)
		r.Get("/bills", h.bills)
		r.Get("/ticket", h.ticket)
		r.Get("/discounts", h.discounts)
		r.Get("/payments", h.payments)
	})

	return router
}
