package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/session"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/internal/validators"
	"github.com/MKhiriev/go-vault-sync/models"
)

type vaultSyncClient struct {
	adapter   adapter.ServerAdapter
	deriver   crypto.KeyDeriver
	cipher    crypto.VaultCipher
	validator validators.Validator
	ids       idGenerator
	session   *session.Session
	salt      string

	// confirmed is the last vault the server acknowledged, either by
	// returning it from a fetch or by accepting a save.
	mu           sync.Mutex
	confirmed    models.Vault
	hasConfirmed bool

	logger *logger.Logger
}

// NewVaultSyncClient wires the sync protocol. salt is fed into key
// derivation together with the master secret and must match the salt the
// vault was first encrypted with.
func NewVaultSyncClient(serverAdapter adapter.ServerAdapter, salt string, logger *logger.Logger) VaultSyncClient {
	return &vaultSyncClient{
		adapter:   serverAdapter,
		deriver:   crypto.NewKeyDeriver(),
		cipher:    crypto.NewVaultCipher(),
		validator: validators.NewVaultValidator(),
		ids:       utils.NewUUIDGenerator(),
		session:   session.New(),
		salt:      salt,
		logger:    logger,
	}
}

func (c *vaultSyncClient) Register(ctx context.Context, username, masterSecret string) error {
	creds := models.Credentials{Username: username, Password: masterSecret}
	if err := c.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := c.adapter.Register(ctx, creds); err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.Register").Msg("registration failed")
		return mapAdapterError(err)
	}

	c.logger.Info().Str("func", "vaultSyncClient.Register").Str("username", username).Msg("account registered")
	return nil
}

func (c *vaultSyncClient) Login(ctx context.Context, username, masterSecret string) error {
	c.Logout()

	creds := models.Credentials{Username: username, Password: masterSecret}
	if err := c.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := c.adapter.Login(ctx, creds)
	if err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.Login").Msg("login failed")
		return mapAdapterError(err)
	}

	// The server never checks the master secret against the vault, so a
	// wrong secret only shows up on the first fetch.
	key := c.deriver.DeriveKey(masterSecret, c.salt)

	userID, err := utils.PeekJWTSubject(token)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "vaultSyncClient.Login").Msg("token carries no readable subject")
	}

	c.session.Begin(username, userID, token, key)
	c.logger.Info().Str("func", "vaultSyncClient.Login").Str("username", username).Msg("session started")
	return nil
}

func (c *vaultSyncClient) Logout() {
	c.session.Clear()

	c.mu.Lock()
	c.confirmed = nil
	c.hasConfirmed = false
	c.mu.Unlock()
}

func (c *vaultSyncClient) IsLoggedIn() bool {
	return c.session.IsLoggedIn()
}

func (c *vaultSyncClient) Username() string {
	return c.session.Username()
}

func (c *vaultSyncClient) FetchVault(ctx context.Context) (models.Vault, error) {
	if !c.session.IsLoggedIn() {
		return nil, ErrNotLoggedIn
	}

	envelope, err := c.adapter.GetVault(ctx, c.session.Token())
	if err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.FetchVault").Msg("fetching vault failed")
		return nil, c.endSessionOnAuthFailure(mapAdapterError(err))
	}

	if envelope == nil {
		c.confirm(models.Vault{})
		return models.Vault{}, nil
	}

	key := c.session.Key()
	defer key.Wipe()

	plaintext, err := c.cipher.Decrypt(*envelope, key)
	if err != nil {
		c.logger.Warn().Str("func", "vaultSyncClient.FetchVault").Int("envelope_len", len(*envelope)).Msg("vault does not decrypt with the session key")
		c.Logout()
		return nil, fmt.Errorf("fetch vault: %w", err)
	}

	vault, err := decodeVault(plaintext)
	if err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.FetchVault").Msg("decrypted vault is not readable")
		c.Logout()
		return nil, err
	}

	c.confirm(vault)
	return vault, nil
}

func (c *vaultSyncClient) Mutate(ctx context.Context, vault models.Vault, m models.Mutation) (models.Vault, error) {
	if m.Kind == models.MutationAdd && m.Record.ID == "" {
		m.Record.ID = c.ids.Generate()
	}

	if err := c.validator.Validate(ctx, m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	next, err := vault.Apply(m)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", m.Kind, err)
	}

	return next, nil
}

func (c *vaultSyncClient) NewRecord(recordType models.RecordType, name, username, password, loginURL string) models.CredentialRecord {
	return models.CredentialRecord{
		ID:       c.ids.Generate(),
		Type:     recordType,
		Name:     name,
		Username: username,
		Password: password,
		LoginURL: loginURL,
	}
}

func (c *vaultSyncClient) SaveVault(ctx context.Context, vault models.Vault) error {
	if !c.session.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	snapshot := vault.Clone()

	plaintext, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	key := c.session.Key()
	defer key.Wipe()

	envelope, err := c.cipher.Encrypt(plaintext, key)
	if err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.SaveVault").Msg("encrypting vault failed")
		return fmt.Errorf("encrypt vault: %w", err)
	}

	if err = c.adapter.SaveVault(ctx, c.session.Token(), envelope); err != nil {
		c.logger.Err(err).Str("func", "vaultSyncClient.SaveVault").Msg("saving vault failed")
		return c.endSessionOnAuthFailure(mapAdapterError(err))
	}

	c.confirm(snapshot)
	c.logger.Info().Str("func", "vaultSyncClient.SaveVault").Int("records", len(snapshot)).Int("envelope_len", len(envelope)).Msg("vault saved")
	return nil
}

func (c *vaultSyncClient) HasUnsavedChanges(vault models.Vault) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasConfirmed {
		return len(vault) > 0
	}
	return !c.confirmed.Equal(vault)
}

func (c *vaultSyncClient) confirm(vault models.Vault) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.confirmed = vault.Clone()
	c.hasConfirmed = true
}

func (c *vaultSyncClient) endSessionOnAuthFailure(err error) error {
	if errors.Is(err, ErrSessionExpired) {
		c.Logout()
	}
	return err
}

// decodeVault parses the plaintext as a JSON array of records and rejects
// duplicate ids.
func decodeVault(plaintext []byte) (models.Vault, error) {
	var vault models.Vault
	if err := json.Unmarshal(plaintext, &vault); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVaultCorrupted, err)
	}

	seen := make(map[string]struct{}, len(vault))
	for _, r := range vault {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate record id %q", ErrVaultCorrupted, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return vault.Clone(), nil
}
