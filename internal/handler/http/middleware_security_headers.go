package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// securityHeaders are set on every response. The API serves JSON only, so
// nothing may be framed, sniffed or cached.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cache-Control", "no-store"},
}

func withSecurityHeaders(next http.Handler) http.Handler {
	for i := len(securityHeaders) - 1; i >= 0; i-- {
		next = middleware.SetHeader(securityHeaders[i][0], securityHeaders[i][1])(next)
	}
	return next
}

// withCORS allows browser clients from the configured origins. Tokens travel
// in the Authorization header, so credentials are never allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
