// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App]. [tui.TUI] implements it.
type UI interface {
	// LoginFlow blocks until a session exists. notice is shown to the user
	// first. Returns tui.ErrUserQuit when the user leaves.
	LoginFlow(ctx context.Context, notice string) error

	// MainLoop runs the vault screens of the current session.
	MainLoop(ctx context.Context) (tui.MainLoopResult, error)
}
