// Package service holds the business logic of both binaries.
//
// Server side: [AuthService] registers and authenticates accounts and issues
// bearer tokens, [VaultService] stores and returns the opaque encrypted vault,
// [AppInfoService] reports version and health.
//
// Client side: [VaultSyncClient] owns the session and runs the sync protocol
// (login, fetch and decrypt, mutate, encrypt and save).
package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=idGenerator,VaultServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService exposes the per-account envelope. The value is never parsed.
type VaultService interface {
	GetEncryptedVault(ctx context.Context, userID string) (*string, error)
	SetEncryptedVault(ctx context.Context, userID string, value string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// idGenerator issues new account identifiers.
type idGenerator interface {
	Generate() string
}
