package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var aliceCreds = models.Credentials{Username: "alice", Password: "Passw0rd!"}

const aliceBody = `{"username":"alice","password":"Passw0rd!"}`

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ── register ──────────────────────────────────────────────────────────────────

// TestRegister_Success verifies 201 with the registration message.
func TestRegister_Success(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.auth.EXPECT().
		RegisterUser(gomock.Any(), aliceCreds).
		Return(models.User{UserID: "u-1", Username: "alice"}, nil)

	rr := httptest.NewRecorder()
	h.register(rr, postJSON("/api/register", aliceBody))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, app.MsgUserRegistered, decodeMessage(t, rr))
}

// TestRegister_UndecodableBody verifies that the service is never reached
// when the body is not a JSON object.
func TestRegister_UndecodableBody(t *testing.T) {
	for name, body := range map[string]string{
		"empty":      "",
		"not json":   "username=alice",
		"truncated":  `{"username":"alice"`,
		"wrong type": `{"username":42,"password":"x"}`,
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newMockedHandler(t, config.Server{})

			rr := httptest.NewRecorder()
			h.register(rr, postJSON("/api/register", body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rr))
		})
	}
}

func TestRegister_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing fields",
			err:        fmt.Errorf("%w: password is required", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "username taken",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgUsernameAlreadyExists,
		},
		{
			name:       "storage unavailable",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgStorageUnavailable,
		},
		{
			name:       "hashing failure",
			err:        fmt.Errorf("%w: boom", service.ErrPasswordHashing),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.auth.EXPECT().RegisterUser(gomock.Any(), aliceCreds).Return(models.User{}, tt.err)

			rr := httptest.NewRecorder()
			h.register(rr, postJSON("/api/register", aliceBody))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
			assert.NotContains(t, rr.Body.String(), "boom", "internal error text must not leak")
		})
	}
}

// TestRegister_BodyTooLarge verifies 413 when the size limit cuts the body.
func TestRegister_BodyTooLarge(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rr := httptest.NewRecorder()
	req := postJSON("/api/register", aliceBody)
	req.Body = http.MaxBytesReader(rr, req.Body, 8)

	h.register(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestTooLarge, decodeMessage(t, rr))
}

// ── login ─────────────────────────────────────────────────────────────────────

// TestLogin_Success verifies that the signed token is returned in the body.
func TestLogin_Success(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	user := models.User{UserID: "u-1", Username: "alice"}

	gomock.InOrder(
		m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(user, nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.value", UserID: "u-1"}, nil),
	)

	rr := httptest.NewRecorder()
	h.login(rr, postJSON("/api/login", aliceBody))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.value"}`, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogin_UndecodableBody(t *testing.T) {
	h, _ := newMockedHandler(t, config.Server{})

	rr := httptest.NewRecorder()
	h.login(rr, postJSON("/api/login", "{"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rr))
}

func TestLogin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing fields",
			err:        fmt.Errorf("%w: username is required", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "wrong credentials",
			err:        service.ErrWrongCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgInvalidLoginPassword,
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("user search by username failed: %w", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(models.User{}, tt.err)

			rr := httptest.NewRecorder()
			h.login(rr, postJSON("/api/login", aliceBody))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
		})
	}
}

func TestLogin_CreateTokenFails(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(models.User{UserID: "u-1"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: signing failed", service.ErrTokenCreationFailed))

	rr := httptest.NewRecorder()
	h.login(rr, postJSON("/api/login", aliceBody))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeMessage(t, rr))
}
