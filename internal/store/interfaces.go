// Package store persists accounts and their encrypted vaults.
//
// The server treats a vault as an opaque string: nothing in this package
// parses, decodes or validates it. Every write replaces the stored value in
// a single statement.
package store

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository creates and looks up accounts.
type UserRepository interface {
	// CreateUser inserts user. A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// VaultStore keeps one opaque envelope per account.
type VaultStore interface {
	// GetEncryptedVault returns the stored envelope, or nil if the account
	// never saved one. A missing account yields ErrNoUserWasFound.
	GetEncryptedVault(ctx context.Context, userID string) (*string, error)

	// SetEncryptedVault atomically replaces the stored envelope. A missing
	// account yields ErrNoUserWasFound.
	SetEncryptedVault(ctx context.Context, userID string, value string) error
}

// Pinger reports whether the backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
