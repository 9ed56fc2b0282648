// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// NonceSize is the AES-GCM nonce length prepended to every envelope.
const NonceSize = 12

// envelopeEncoding rejects non-canonical padding bits so that every change
// to an envelope string changes the decoded bytes.
var envelopeEncoding = base64.StdEncoding.Strict()

// aesGCMCipher is the AES-256-GCM implementation of [VaultCipher].
type aesGCMCipher struct {
	// random is the nonce source. crypto/rand in production.
	random io.Reader
}

// NewVaultCipher returns a [VaultCipher] backed by AES-256-GCM with 12-byte
// random nonces and 16-byte tags.
func NewVaultCipher() VaultCipher {
	return &aesGCMCipher{random: rand.Reader}
}

// Encrypt implements [VaultCipher].
func (c *aesGCMCipher) Encrypt(plaintext []byte, key SymmetricKey) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	blob := make([]byte, NonceSize, NonceSize+len(plaintext)+gcm.Overhead())
	if _, err := io.ReadFull(c.random, blob); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNonceGeneration, err)
	}

	// Seal appends ciphertext‖tag right after the nonce.
	blob = gcm.Seal(blob, blob[:NonceSize], plaintext, nil)

	return envelopeEncoding.EncodeToString(blob), nil
}

// Decrypt implements [VaultCipher].
func (c *aesGCMCipher) Decrypt(envelope string, key SymmetricKey) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	blob, err := envelopeEncoding.DecodeString(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed envelope", ErrDecryption)
	}

	if len(blob) < NonceSize {
		return nil, fmt.Errorf("%w: envelope too short", ErrDecryption)
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

func newGCM(key SymmetricKey) (cipher.AEAD, error) {
	if !key.Valid() {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
