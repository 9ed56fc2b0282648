package config

import (
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
)

const (
	defaultTokenIssuer      = "go-vault-sync"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 12
	defaultLogLevel         = "debug"
	defaultLogFile          = "vault-client.log"
	defaultVersion          = "dev"

	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultMaxBodyBytes      = 1 << 20
	defaultAuthRateLimit     = 5
	defaultAuthRateBurst     = 10
	defaultAdapterAddress    = "http://localhost:8080"
	defaultAdapterReqTimeout = 15 * time.Second
)

// defaultConfig is the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
			LogFile:          defaultLogFile,
			KDFSalt:          crypto.StaticSalt,
			Version:          defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			MaxBodyBytes:   defaultMaxBodyBytes,
			CORSOrigins:    []string{"*"},
			AuthRateLimit:  defaultAuthRateLimit,
			AuthRateBurst:  defaultAuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterReqTimeout,
		},
	}
}
