package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// Storages bundles the server's persistence collaborators.
type Storages struct {
	UserRepository UserRepository
	VaultStore     VaultStore
	Pinger         Pinger

	closer io.Closer
}

// NewStorages connects to the configured backend, applies migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory storage: all accounts are lost on restart")
		mem := NewMemoryStorage()
		return &Storages{UserRepository: mem, VaultStore: mem, Pinger: mem}, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}

		return &Storages{
			UserRepository: NewUserRepository(db, log),
			VaultStore:     NewVaultStore(db, log),
			Pinger:         db,
			closer:         db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Close releases the underlying connection pool, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
