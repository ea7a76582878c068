package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}

		// the pattern is only known once chi has routed the request
		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", route).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
