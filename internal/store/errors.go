package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/app"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registration hits an existing
	// username.
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username already exists", app.ErrConflict)

	// ErrNoUserWasFound is returned when no account matches the lookup key.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStorageUnavailable is returned for transient backend failures
	// (lost connections, lock contention, serialization failures).
	ErrStorageUnavailable = fmt.Errorf("%w: storage temporarily unavailable", app.ErrPersistence)

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails for a reason that
	// retrying would not fix.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", app.ErrPersistence)

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", app.ErrPersistence)
)
