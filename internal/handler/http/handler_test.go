package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// serviceMocks groups the mocked services behind a test Handler.
type serviceMocks struct {
	auth    *mock.MockAuthService
	vault   *mock.MockVaultService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		vault:   mock.NewMockVaultService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    m.auth,
		VaultService:   m.vault,
		AppInfoService: m.appInfo,
	}

	return NewHandler(svcs, cfg, logger.Nop()), m
}

// decodeMessage returns the "message" field of a JSON response.
func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Message
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{HTTPAddress: ":8080", MaxBodyBytes: 42}

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
}

func TestNewHandler_RateLimiterConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Server
		wantNil   bool
		wantBurst int
	}{
		{name: "disabled when rate is zero", cfg: config.Server{}, wantNil: true},
		{name: "disabled when rate is negative", cfg: config.Server{AuthRateLimit: -1, AuthRateBurst: 3}, wantNil: true},
		{name: "configured burst is kept", cfg: config.Server{AuthRateLimit: 5, AuthRateBurst: 10}, wantBurst: 10},
		{name: "non-positive burst becomes one", cfg: config.Server{AuthRateLimit: 5}, wantBurst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantNil {
				assert.Nil(t, h.authLimiter)
				return
			}
			require.NotNil(t, h.authLimiter)
			assert.Equal(t, tt.wantBurst, h.authLimiter.burst)
			assert.Equal(t, limiterTTL, h.authLimiter.ttl)
		})
	}
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	cfg := config.Server{AuthRateLimit: 1, AuthRateBurst: 1}

	h1 := NewHandler(&service.Services{}, cfg, logger.Nop())
	h2 := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.authLimiter, h2.authLimiter)
}
