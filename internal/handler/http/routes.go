package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withGzipBody, compressJSON)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withHashCheck)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/api/records", func(r chi.Router) {
		r.Use(h.auth, h.withRateLimit)

		r.Get("/{type}", h.listRecords)
		r.Get("/{type}/{id}", h.getRecord)
		r.Delete("/{type}/{id}", h.deleteRecord)
		r.With(h.withHashCheck).Put("/{type}/{id}", h.upsertRecord)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
