package service

import (
	"context"
	"strings"
)

// VaultValidationService rejects calls without a user id before they reach
// storage.
type VaultValidationService struct {
	inner VaultService
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{}
}

func (v *VaultValidationService) GetEncryptedVault(ctx context.Context, userID string) (*string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidationNoUserID
	}

	return v.inner.GetEncryptedVault(ctx, userID)
}

func (v *VaultValidationService) SetEncryptedVault(ctx context.Context, userID string, value string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrValidationNoUserID
	}

	return v.inner.SetEncryptedVault(ctx, userID, value)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}
