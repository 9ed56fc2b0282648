package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/app"
)

// Server-side errors.
var (
	ErrInvalidDataProvided = fmt.Errorf("%w: invalid data provided", app.ErrValidation)
	ErrValidationNoUserID  = fmt.Errorf("%w: no user ID was given", app.ErrValidation)

	// ErrWrongCredentials covers both an unknown username and a wrong
	// password so the two cannot be told apart from outside.
	ErrWrongCredentials = fmt.Errorf("%w: wrong username or password", app.ErrAuthentication)

	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", app.ErrAuthentication)
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashing         = errors.New("password hashing failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrStorageUnhealthy        = fmt.Errorf("%w: storage is unhealthy", app.ErrPersistence)
)

// Client-side errors.
var (
	// ErrNotLoggedIn is returned by vault operations before a successful login.
	ErrNotLoggedIn = fmt.Errorf("%w: not logged in", app.ErrAuthentication)

	// ErrSessionExpired is returned when the server rejects the session
	// token. The session has already been cleared when it is returned.
	ErrSessionExpired = fmt.Errorf("%w: session expired, log in again", app.ErrAuthentication)

	// ErrUsernameTaken is returned by registration when the server reports a
	// duplicate username.
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", app.ErrConflict)

	// ErrVaultCorrupted is returned when an envelope authenticates but its
	// plaintext is not a vault.
	ErrVaultCorrupted = fmt.Errorf("%w: vault contents are not readable", app.ErrDecryption)
)
