package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/certificates", func(r chi.Router) {
		r.Post("/", h.createCertificate)
		r.Get("/", h.listCertificates)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getCertificate)
			r.Patch("/", h.patchCertificate)
			r.Delete("/", h.deleteCertificate)
		})
	})

	router.Route("/users", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Get("/", h.listUsers)
		r.Get("/most-cost", h.listUsersByMostCost)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Get("/orders", h.listUserOrders)
			r.Get("/orders/{orderId}", h.getUserOrder)
		})
	})

	return router
}
