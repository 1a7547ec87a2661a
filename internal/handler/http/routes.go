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
		r.Post("/register", h.register)
		r.Post("/auth", h.authenticate)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", h.listBookings)
			r.Post("/", h.createBooking)
			r.Get("/{id}", h.getBooking)
			r.Put("/{id}", h.editBooking)
			r.Delete("/{id}", h.deleteBooking)
		})

		r.Route("/guides", func(r chi.Router) {
			r.Get("/", h.listGuides)
			r.Post("/", h.createGuide)
			r.Get("/{id}", h.getGuide)
			r.Put("/{id}", h.editGuide)
			r.Delete("/{id}", h.deleteGuide)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.listRoles)
			r.Post("/", h.createRole)
			r.Get("/{id}", h.getRole)
			r.Put("/{id}", h.editRole)
			r.Delete("/{id}", h.deleteRole)
		})

		r.Route("/tours", func(r chi.Router) {
			r.Get("/", h.listTours)
			r.Post("/", h.createTour)
			r.Get("/{id}", h.getTour)
			r.Put("/{id}", h.editTour)
			r.Delete("/{id}", h.deleteTour)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.editUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return router
}
