package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VaultSyncClient is the client-side orchestrator of the sync protocol. It
// owns the session: the bearer token and the derived key never leave it.
//
// Every vault operation is a single request initiated by the caller. Nothing
// runs in the background and nothing is retried.
type VaultSyncClient interface {
	// Register creates the account on the server. It does not log in.
	Register(ctx context.Context, username, masterSecret string) error

	// Login authenticates against the server and derives the vault key from
	// masterSecret. Key derivation is CPU-expensive; interactive callers
	// should run Login off the UI goroutine. On any failure no session state
	// is retained.
	Login(ctx context.Context, username, masterSecret string) error

	// Logout wipes the key and forgets the token.
	Logout()

	IsLoggedIn() bool
	Username() string

	// FetchVault downloads and decrypts the vault. An account that never
	// saved yields an empty vault without any decryption. A decryption
	// failure is returned as a Decryption-kind error and ends the session.
	FetchVault(ctx context.Context) (models.Vault, error)

	// Mutate validates mutation and returns a new vault with it applied. Add
	// mutations without an ID get a fresh one. The input vault is untouched.
	Mutate(ctx context.Context, vault models.Vault, mutation models.Mutation) (models.Vault, error)

	// NewRecord builds a record with a fresh collision-resistant ID.
	NewRecord(recordType models.RecordType, name, username, password, loginURL string) models.CredentialRecord

	// SaveVault encrypts the whole vault under a new nonce and replaces the
	// server copy. Concurrent saves from other sessions are overwritten
	// without notice.
	SaveVault(ctx context.Context, vault models.Vault) error

	// HasUnsavedChanges reports whether vault differs from the last snapshot
	// the server confirmed (fetched or saved).
	HasUnsavedChanges(vault models.Vault) bool
}
