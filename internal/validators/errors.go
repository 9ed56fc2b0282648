package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = fmt.Errorf("%w: username is required", app.ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password is required", app.ErrValidation)

	ErrEmptyRecordID     = fmt.Errorf("%w: record id is required", app.ErrValidation)
	ErrInvalidRecordType = fmt.Errorf("%w: invalid record type", app.ErrValidation)
	ErrEmptyRecordName   = fmt.Errorf("%w: record name is required", app.ErrValidation)
	ErrInvalidLoginURL   = fmt.Errorf("%w: login url is not a valid URL", app.ErrValidation)
	ErrInvalidMutation   = fmt.Errorf("%w: invalid mutation", app.ErrValidation)
)
