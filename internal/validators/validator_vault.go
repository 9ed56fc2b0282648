package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account login name.
	FieldUsername = "username"

	// FieldPassword targets the account password (the master secret).
	FieldPassword = "password"

	// FieldID targets the client-generated record identifier.
	FieldID = "id"

	// FieldType targets the record category.
	FieldType = "type"

	// FieldName targets the record display name.
	FieldName = "name"

	// FieldLoginURL targets the optional record login URL.
	FieldLoginURL = "login_url"
)

// VaultValidator implements Validator for account credentials, credential
// records and vault mutations.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms are
// accepted for:
//   - models.Credentials
//   - models.CredentialRecord
//   - models.Mutation
//
// Returns ErrUnsupportedType for anything else.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	case models.CredentialRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.CredentialRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case models.Mutation:
		return v.validateMutation(ctx, value)
	case *models.Mutation:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateMutation(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateRecord(_ context.Context, record models.CredentialRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldName, FieldLoginURL}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if record.ID == "" {
				return ErrEmptyRecordID
			}
		case FieldType:
			if !record.Type.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidRecordType, record.Type)
			}
		case FieldName:
			if strings.TrimSpace(record.Name) == "" {
				return ErrEmptyRecordName
			}
		case FieldLoginURL:
			if record.LoginURL == "" {
				continue
			}
			if !isLoginURL(record.LoginURL) {
				return ErrInvalidLoginURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMutation checks the parts of a mutation its kind relies on.
// Add records may still lack an id; the caller assigns one.
func (v *VaultValidator) validateMutation(ctx context.Context, m models.Mutation) error {
	switch m.Kind {
	case models.MutationAdd:
		return v.validateRecord(ctx, m.Record, FieldType, FieldName, FieldLoginURL)
	case models.MutationReplace:
		return v.validateRecord(ctx, m.Record)
	case models.MutationRemove:
		if m.ID == "" {
			return ErrEmptyRecordID
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidMutation, m.Kind)
	}
}

// isLoginURL accepts absolute URLs and bare host names such as
// "example.com/login", which the form allows without a scheme.
func isLoginURL(raw string) bool {
	if strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
