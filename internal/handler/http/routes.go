package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
// Middleware order: Recoverer, trace id, access log, CORS, security headers,
// gzip, request size limit, request timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withSecurityHeaders)
	router.Use(withGZip)
	if h.cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.cfg.MaxBodyBytes))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuthRateLimit)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/accounts", h.getVault)
		r.Post("/api/accounts", h.setVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
