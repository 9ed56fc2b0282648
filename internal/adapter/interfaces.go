// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client transport to the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's {"message": "..."} body is appended after the sentinel text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. The adapter holds no session state: the bearer token is owned by
// the caller and passed to every authenticated call.
type ServerAdapter interface {
	// Register creates an account. Returns [ErrConflict] (wrapped) when the
	// username is taken.
	Register(ctx context.Context, creds models.Credentials) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// GetVault returns the stored envelope, or nil when the account has never
	// saved one.
	GetVault(ctx context.Context, token string) (*string, error)

	// SaveVault replaces the stored envelope with envelope.
	SaveVault(ctx context.Context, token string, envelope string) error

	// Health reports whether the server and its storage are reachable.
	Health(ctx context.Context) error
}
