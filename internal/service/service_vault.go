// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
)

type vaultService struct {
	vaultStore store.VaultStore
	logger     *logger.Logger
}

// NewVaultService returns a VaultService that validates the user id and then
// delegates to vaultStore.
func NewVaultService(vaultStore store.VaultStore, logger *logger.Logger) VaultService {
	inner := &vaultService{vaultStore: vaultStore, logger: logger}
	return NewVaultValidationService().Wrap(inner)
}

// GetEncryptedVault returns nil when the account never saved a vault. A user
// row that has disappeared since the token was issued is treated the same
// way.
func (s *vaultService) GetEncryptedVault(ctx context.Context, userID string) (*string, error) {
	log := logger.FromContext(ctx)

	value, err := s.vaultStore.GetEncryptedVault(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("user_id", userID).Msg("vault requested for missing user")
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error reading encrypted vault")
		return nil, fmt.Errorf("error reading encrypted vault: %w", err)
	}

	return value, nil
}

// SetEncryptedVault replaces the stored envelope. The last call wins.
func (s *vaultService) SetEncryptedVault(ctx context.Context, userID string, value string) error {
	log := logger.FromContext(ctx)

	if err := s.vaultStore.SetEncryptedVault(ctx, userID, value); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error saving encrypted vault")
		return fmt.Errorf("error saving encrypted vault: %w", err)
	}

	log.Info().Str("user_id", userID).Int("envelope_len", len(value)).Msg("vault replaced")
	return nil
}
