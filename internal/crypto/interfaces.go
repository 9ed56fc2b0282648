// Package crypto implements the client-side cryptography of the vault:
// password-based key derivation and authenticated encryption of the
// serialized vault.
//
// The envelope format is fixed and carries no metadata:
//
//	envelope = base64( nonce[12] ‖ ciphertext ‖ tag[16] )
//
// Nothing in this package performs I/O besides reading randomness.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master secret into a symmetric key.
//
// Implementations are deterministic and reentrant: identical inputs always
// yield identical key bytes and the call is safe from multiple goroutines.
// The call is deliberately CPU-expensive; interactive callers should run it
// off the UI goroutine.
type KeyDeriver interface {
	// DeriveKey returns a 256-bit key derived from masterSecret and salt.
	DeriveKey(masterSecret, salt string) SymmetricKey
}

// VaultCipher encrypts and decrypts whole serialized vaults.
type VaultCipher interface {
	// Encrypt seals plaintext under key with a freshly drawn random nonce and
	// returns the base64 envelope. Two calls never share a nonce.
	Encrypt(plaintext []byte, key SymmetricKey) (string, error)

	// Decrypt opens an envelope produced by Encrypt. A wrong key, a tampered
	// or truncated envelope and malformed base64 all fail with
	// [ErrDecryption]; the cases cannot be told apart.
	Decrypt(envelope string, key SymmetricKey) ([]byte, error)
}
