// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives the session lifecycle: log in, work with the vault, and return
// to the login screen after a logout or when the session ends. Nothing is
// kept on disk between runs.
package client
