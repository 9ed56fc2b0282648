// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/service"
)

// ErrUserQuit is returned by [TUI.LoginFlow] when the user leaves the
// program instead of logging in.
var ErrUserQuit = errors.New("user quit")

var errNoClientServices = errors.New("client services are not configured")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		return "No network connection or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}

// humanizeError turns a client service error into a line for the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongCredentials):
		return "Invalid username or master secret"
	case errors.Is(err, service.ErrUsernameTaken):
		return "This username is already taken"
	case errors.Is(err, service.ErrSessionExpired):
		return "Your session has expired, please log in again"
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You are not logged in"
	case errors.Is(err, service.ErrVaultCorrupted):
		return "The vault decrypted but its contents are not readable"
	case errors.Is(err, app.ErrDecryption):
		return "The vault could not be decrypted. Check your master secret"
	}

	return humanizeServerUnavailableError(err)
}

// endsSession reports whether err means the client no longer holds a usable
// session, so the UI must go back to the login screen.
func endsSession(err error) bool {
	return errors.Is(err, app.ErrDecryption) ||
		errors.Is(err, service.ErrSessionExpired) ||
		errors.Is(err, service.ErrNotLoggedIn)
}
