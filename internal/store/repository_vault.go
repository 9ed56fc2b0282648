// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// vaultStore is the SQL implementation of [VaultStore]. The envelope lives in
// the encrypted_vault column of the user's row.
type vaultStore struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewVaultStore constructs a [VaultStore] backed by db.
func NewVaultStore(db *DB, logger *logger.Logger) VaultStore {
	logger.Debug().Msg("creating vault store")
	return &vaultStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *vaultStore) GetEncryptedVault(ctx context.Context, userID string) (*string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.selectEncryptedVaultQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var vault sql.NullString
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&vault)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*vaultStore.GetEncryptedVault").Msg("error selecting vault")
		return nil, s.db.wrapError(err)
	}

	if !vault.Valid {
		return nil, nil
	}

	log.Debug().Str("func", "*vaultStore.GetEncryptedVault").Int("envelope_len", len(vault.String)).Msg("vault loaded")
	return &vault.String, nil
}

func (s *vaultStore) SetEncryptedVault(ctx context.Context, userID string, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.updateEncryptedVaultQuery(userID, value, s.now().UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultStore.SetEncryptedVault").Msg("error updating vault")
		return s.db.wrapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return s.db.wrapError(err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	log.Debug().Str("func", "*vaultStore.SetEncryptedVault").Int("envelope_len", len(value)).Msg("vault replaced")
	return nil
}
