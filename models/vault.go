package models

import (
	"errors"
	"fmt"
	"strings"
)

// Vault is the full collection of a user's credential records. It is always
// encrypted, transmitted and decrypted as one unit. Record order carries no
// meaning; identifiers are unique within a vault.
type Vault []CredentialRecord

// MutationKind enumerates the single-record changes that can be applied to
// a vault.
type MutationKind int

const (
	// MutationAdd inserts a new record. Its ID must not be present yet.
	MutationAdd MutationKind = iota + 1

	// MutationReplace overwrites the record with the same ID.
	MutationReplace

	// MutationRemove deletes the record identified by Mutation.ID.
	MutationRemove
)

// String implements [fmt.Stringer].
func (k MutationKind) String() string {
	switch k {
	case MutationAdd:
		return "add"
	case MutationReplace:
		return "replace"
	case MutationRemove:
		return "remove"
	default:
		return fmt.Sprintf("mutation(%d)", int(k))
	}
}

// Mutation describes exactly one change to a vault.
type Mutation struct {
	Kind MutationKind

	// Record is the new record for add and replace mutations.
	Record CredentialRecord

	// ID identifies the record to remove. Ignored for add and replace,
	// which use Record.ID.
	ID string
}

// Errors returned by [Vault.Apply].
var (
	ErrRecordAlreadyExists = errors.New("record with this id already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrUnknownMutation     = errors.New("unknown mutation kind")
)

// Find returns the record with the given id and whether it was found.
func (v Vault) Find(id string) (CredentialRecord, bool) {
	for _, r := range v {
		if r.ID == id {
			return r, true
		}
	}
	return CredentialRecord{}, false
}

// Clone returns a copy of v that does not share its backing array.
// A nil vault clones into an empty, non-nil one so that it serializes as [].
func (v Vault) Clone() Vault {
	out := make(Vault, len(v))
	copy(out, v)
	return out
}

// Apply returns a new vault snapshot with m applied. The receiver is never
// modified.
func (v Vault) Apply(m Mutation) (Vault, error) {
	switch m.Kind {
	case MutationAdd:
		if _, found := v.Find(m.Record.ID); found {
			return nil, fmt.Errorf("%w: %s", ErrRecordAlreadyExists, m.Record.ID)
		}
		out := make(Vault, 0, len(v)+1)
		out = append(out, v...)
		return append(out, m.Record), nil

	case MutationReplace:
		out := v.Clone()
		for i := range out {
			if out[i].ID == m.Record.ID {
				out[i] = m.Record
				return out, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, m.Record.ID)

	case MutationRemove:
		out := make(Vault, 0, len(v))
		found := false
		for _, r := range v {
			if r.ID == m.ID {
				found = true
				continue
			}
			out = append(out, r)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, m.ID)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMutation, m.Kind)
	}
}

// Filter returns the records whose name, username or login URL contain query
// (case-insensitive). An empty query matches everything. When recordType is
// non-empty only records of that type are returned.
func (v Vault) Filter(query string, recordType RecordType) Vault {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make(Vault, 0, len(v))
	for _, r := range v {
		if recordType != "" && r.Type != recordType {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Username), q) &&
			!strings.Contains(strings.ToLower(r.LoginURL), q) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// Equal reports whether v and other hold the same records, ignoring order.
func (v Vault) Equal(other Vault) bool {
	if len(v) != len(other) {
		return false
	}

	byID := make(map[string]CredentialRecord, len(v))
	for _, r := range v {
		byID[r.ID] = r
	}
	for _, r := range other {
		mine, ok := byID[r.ID]
		if !ok || mine != r {
			return false
		}
	}

	return true
}
