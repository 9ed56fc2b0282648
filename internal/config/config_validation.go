// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the merged [StructuredConfig] can run a server.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case app.PasswordHashCost < minPasswordHashCost || app.PasswordHashCost > maxPasswordHashCost:
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	db := cfg.Storage.DB
	switch db.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if db.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, db.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	srv := cfg.Server
	switch {
	case srv.HTTPAddress == "" && srv.GRPCAddress == "":
		return fmt.Errorf("%w: an HTTP or gRPC address is required", ErrInvalidServerConfigs)
	case srv.RequestTimeout <= 0:
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	case srv.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs)
	case srv.AuthRateLimit <= 0 || srv.AuthRateBurst <= 0:
		return fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.KDFSalt == "" {
		return fmt.Errorf("%w: kdf salt is required", ErrInvalidAppConfigs)
	}

	return nil
}
