package app

import "errors"

// Error kinds. Match with [errors.Is] to handle a whole category.
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a uniqueness violation (duplicate username).
	ErrConflict = errors.New("conflict error")

	// ErrAuthentication marks bad credentials or an invalid/expired token.
	ErrAuthentication = errors.New("authentication error")

	// ErrDecryption marks an envelope that failed authenticated decryption.
	// A wrong master secret and corrupted ciphertext are indistinguishable.
	ErrDecryption = errors.New("decryption error")

	// ErrPersistence marks storage or network failures on read or write.
	ErrPersistence = errors.New("persistence error")
)
