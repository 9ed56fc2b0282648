// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	creds := models.Credentials{Username: "alice", Password: "Passw0rd!"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var got models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, creds, got)

		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: app.MsgUserRegistered})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), creds)

	require.NoError(t, err)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.MessageResponse{Message: app.MsgUsernameAlreadyExists})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Username: "a", Password: "b"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), app.MsgUsernameAlreadyExists)
}

// TestRegister_ServerDown verifies that a refused connection is reported as
// ErrServerUnavailable and classified as a persistence failure.
func TestRegister_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).Register(context.Background(), models.Credentials{Username: "a", Password: "b"})

	require.ErrorIs(t, err, ErrServerUnavailable)
	assert.ErrorIs(t, err, app.ErrPersistence)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: "signed.jwt.token"})
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: app.MsgInvalidLoginPassword})
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	assert.Empty(t, token)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), app.MsgInvalidLoginPassword)
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestLogin_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>proxy page</html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})

	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── GetVault ────────────────────────────────────────────────────────────────

func TestGetVault_ReturnsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"encrypted_vault":"ZW52ZWxvcGU="}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetVault(context.Background(), "tok")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ZW52ZWxvcGU=", *got)
}

func TestGetVault_NullMeansNeverSaved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"encrypted_vault":null}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetVault(context.Background(), "tok")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetVault_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetVault(context.Background(), "expired")

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetVault_StorageUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.MessageResponse{Message: app.MsgStorageUnavailable})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetVault(context.Background(), "tok")

	require.ErrorIs(t, err, ErrServerUnavailable)
}

// ── SaveVault ───────────────────────────────────────────────────────────────

func TestSaveVault_SendsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"encrypted_vault": "opaque"}, body)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: app.MsgVaultUpdated})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SaveVault(context.Background(), "tok", "opaque")

	require.NoError(t, err)
}

func TestSaveVault_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "too large", status: http.StatusRequestEntityTooLarge, wantErr: ErrRequestTooLarge},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).SaveVault(context.Background(), "tok", "v")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), http.StatusText(tt.status), "empty body falls back to status text")
		})
	}
}

func TestSaveVault_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SaveVault(context.Background(), "tok", "v")

	require.Error(t, err)
	assert.Equal(t, "http 418: short and stout", err.Error())
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Health(context.Background()))

	status.Store(http.StatusServiceUnavailable)
	assert.ErrorIs(t, a.Health(context.Background()), ErrServerUnavailable)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	require.Error(t, err)
}
