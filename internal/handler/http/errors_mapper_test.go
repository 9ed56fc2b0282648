package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"no user id", service.ErrValidationNoUserID, http.StatusBadRequest, http.StatusText(http.StatusBadRequest)},
		{"wrong credentials", service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"unhealthy", service.ErrStorageUnhealthy, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"duplicate username", store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
		{"user gone", store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
		{"unavailable", store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"query build", store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
		{"query exec", store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
		{"scan", store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, app.MsgInternalServerError},
		{"deeply wrapped", fmt.Errorf("a: %w", fmt.Errorf("b: %w", store.ErrUsernameAlreadyExists)), http.StatusConflict, app.MsgUsernameAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err, status))
		})
	}
}

// TestErrorMessageMap_KeysHaveStatus verifies that every error with a
// dedicated message also has a dedicated status.
func TestErrorMessageMap_KeysHaveStatus(t *testing.T) {
	for target := range errorMessageMap {
		_, ok := errorStatusMap[target]
		assert.True(t, ok, "%v has a message but no status", target)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, fmt.Errorf("login: %w", service.ErrWrongCredentials))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, rr.Body.String())
}

func TestWriteDecodeError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeDecodeError(rr, &http.MaxBytesError{Limit: 10}, app.MsgInvalidDataProvided)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestTooLarge, decodeMessage(t, rr))

	rr = httptest.NewRecorder()
	writeDecodeError(rr, errors.New("unexpected EOF"), app.MsgEncryptedVaultMustBeString)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgEncryptedVaultMustBeString, decodeMessage(t, rr))
}
