package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// probes and metrics are not bound by the request timeout
	router.Get("/health/live", h.liveness)
	router.Get("/health/ready", h.readiness)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Get("/api/resume/download", h.downloadResume)
		r.Get("/api/version/", h.getServerVersion)

		// routes with admin authorization
		if h.services.AuthService != nil && h.services.AuthService.AdminEnabled() {
			r.With(h.adminAuth).Get("/api/admin/downloads", h.listDownloadLogs)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
