package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-auth/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const tracedOperation = "notes-auth-http"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(otelhttp.NewMiddleware(tracedOperation), h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		// routes without authorization
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.With(h.auth).Get("/api/user/me", h.me)
	})

	router.Get("/api/version/", h.getServerVersion)
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
