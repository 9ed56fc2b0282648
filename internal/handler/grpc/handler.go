// Package grpc exposes the standard gRPC health service of the vault server.
//
// The serving status follows the storage backend: a background probe calls
// [service.AppInfoService.Health] and flips the status between SERVING and
// NOT_SERVING, so orchestrators that speak grpc.health.v1 can gate traffic
// on the same signal as GET /health.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service name reported next to the overall ("") status.
const ServiceName = "vaultsync.VaultServer"

// defaultProbeInterval is how often the storage is pinged.
const defaultProbeInterval = 15 * time.Second

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health        *health.Server
	probeInterval time.Duration

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckHealth pings the storage once and publishes the result.
func (h *Handler) CheckHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Health(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	return status
}

// RunHealthProbe checks health immediately and then on every probe interval
// until ctx is done. On return every service is reported NOT_SERVING.
func (h *Handler) RunHealthProbe(ctx context.Context) {
	defer h.health.Shutdown()

	h.CheckHealth(ctx)

	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, h.probeInterval)
			h.CheckHealth(probeCtx)
			cancel()
		}
	}
}
