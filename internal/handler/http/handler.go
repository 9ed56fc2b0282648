package http

import (
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client address keeps its bucket.
const limiterTTL = 10 * time.Minute

type Handler struct {
	services *service.Services
	cfg      config.Server

	// authLimiter throttles register/login per client address. Nil when
	// rate limiting is disabled.
	authLimiter *multiLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.AuthRateLimit > 0 {
		burst := cfg.AuthRateBurst
		if burst <= 0 {
			burst = 1
		}
		h.authLimiter = newMultiLimiter(rate.Limit(cfg.AuthRateLimit), burst, limiterTTL)
	}

	return h
}
