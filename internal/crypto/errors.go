// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/app"
)

var (
	// ErrDecryption is returned by [VaultCipher.Decrypt] whenever an envelope
	// cannot be authenticated.
	ErrDecryption = fmt.Errorf("%w: envelope cannot be decrypted with this key", app.ErrDecryption)

	// ErrInvalidKey is returned when a key is not exactly [KeySize] bytes.
	ErrInvalidKey = fmt.Errorf("%w: key must be %d bytes", app.ErrValidation, KeySize)

	// ErrNonceGeneration is returned when the randomness source fails.
	ErrNonceGeneration = errors.New("cannot generate nonce")
)
