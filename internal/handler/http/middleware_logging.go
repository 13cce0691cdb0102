package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
)

// withLogging writes one access log line per request and counts the response
// status in the metrics collector.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.Status()

		h.collector.RecordHTTPStatus(status)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
