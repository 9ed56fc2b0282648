// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RecordType is the closed set of credential categories a vault record can
// belong to. The string values are part of the encrypted vault format and
// must never change.
type RecordType string

const (
	// RecordTypeGeneral covers everyday accounts (mail, social networks, etc.).
	RecordTypeGeneral RecordType = "General"

	// RecordTypeWebsite covers credentials for a specific website.
	RecordTypeWebsite RecordType = "Website"

	// RecordTypeHostingVPS covers hosting panels, VPS and server logins.
	RecordTypeHostingVPS RecordType = "Hosting/VPS"
)

// ErrUnknownRecordType is returned when a string does not name one of the
// supported record types.
var ErrUnknownRecordType = errors.New("unknown record type")

// RecordTypes returns every supported record type in display order.
func RecordTypes() []RecordType {
	return []RecordType{RecordTypeGeneral, RecordTypeWebsite, RecordTypeHostingVPS}
}

// ParseRecordType converts s into a [RecordType].
// Returns [ErrUnknownRecordType] for anything outside the closed set.
func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(s) {
	case RecordTypeGeneral:
		return RecordTypeGeneral, nil
	case RecordTypeWebsite:
		return RecordTypeWebsite, nil
	case RecordTypeHostingVPS:
		return RecordTypeHostingVPS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
}

// IsValid reports whether t is one of the supported record types.
func (t RecordType) IsValid() bool {
	_, err := ParseRecordType(string(t))
	return err == nil
}

// String implements [fmt.Stringer].
func (t RecordType) String() string {
	return string(t)
}

// Label returns a human-readable name for UI rendering.
func (t RecordType) Label() string {
	switch t {
	case RecordTypeGeneral:
		return "General (mail, social, etc.)"
	case RecordTypeWebsite:
		return "Website"
	case RecordTypeHostingVPS:
		return "Hosting / VPS"
	default:
		return "Unknown"
	}
}

// UnmarshalJSON rejects record types outside the closed set so that a
// decrypted vault never carries an unhandled variant.
func (t *RecordType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed, err := ParseRecordType(raw)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
