package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

type ClientServices struct {
	VaultSyncClient VaultSyncClient
	ServerAdapter   adapter.ServerAdapter
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultSyncClient: NewVaultSyncClient(serverAdapter, cfg.KDFSalt, logger),
		ServerAdapter:   serverAdapter,
	}
}
