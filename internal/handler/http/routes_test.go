package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testServerConfig() config.Server {
	return config.Server{
		RequestTimeout: 5 * time.Second,
		MaxBodyBytes:   1 << 20,
		CORSOrigins:    []string{"*"},
	}
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestInit_PublicRoutes(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.auth.EXPECT().RegisterUser(gomock.Any(), aliceCreds).Return(models.User{UserID: "u-1"}, nil)
	m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(models.User{UserID: "u-1"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "jwt"}, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0")
	m.appInfo.EXPECT().Health(gomock.Any()).Return(nil)
	router := h.Init()

	assert.Equal(t, http.StatusCreated, serve(router, postJSON("/api/register", aliceBody)).Code)
	assert.Equal(t, http.StatusOK, serve(router, postJSON("/api/login", aliceBody)).Code)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v1.0.0"}`, rr.Body.String())

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newMockedHandler(t, testServerConfig())
	router := h.Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/accounts", nil),
		postJSON("/api/accounts", `{"encrypted_vault":"x"}`),
	} {
		rr := serve(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", req.Method, req.URL.Path)
		assert.Equal(t, app.MsgMissingToken, decodeMessage(t, rr))
	}
}

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.auth.EXPECT().ParseToken(gomock.Any(), "good.jwt").Return(models.Token{UserID: "u-1"}, nil).Times(2)
	envelope := "ENV"
	m.vault.EXPECT().GetEncryptedVault(gomock.Any(), "u-1").Return(&envelope, nil)
	m.vault.EXPECT().SetEncryptedVault(gomock.Any(), "u-1", "NEW").Return(nil)
	router := h.Init()

	get := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	get.Header.Set("Authorization", "Bearer good.jwt")
	rr := serve(router, get)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"encrypted_vault":"ENV"}`, rr.Body.String())

	post := postJSON("/api/accounts", `{"encrypted_vault":"NEW"}`)
	post.Header.Set("Authorization", "Bearer good.jwt")
	rr = serve(router, post)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgVaultUpdated, decodeMessage(t, rr))
}

func TestInit_ExpiredToken(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.auth.EXPECT().ParseToken(gomock.Any(), "old.jwt").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer old.jwt")
	rr := serve(h.Init(), req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, decodeMessage(t, rr))
}

func TestInit_WrongMethodAndUnknownRoutes_Return404(t *testing.T) {
	h, _ := newMockedHandler(t, testServerConfig())
	router := h.Init()

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/register"},
		{http.MethodGet, "/api/login"},
		{http.MethodDelete, "/api/accounts"},
		{http.MethodPut, "/api/accounts"},
		{http.MethodPost, "/health"},
		{http.MethodGet, "/api/user/register"},
		{http.MethodGet, "/"},
	} {
		rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tt.method, tt.path)
	}
}

// TestInit_BodyLimit verifies that the router-wide size limit yields 413.
func TestInit_BodyLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.MaxBodyBytes = 64
	h, m := newMockedHandler(t, cfg)
	m.auth.EXPECT().ParseToken(gomock.Any(), "good.jwt").Return(models.Token{UserID: "u-1"}, nil)

	req := postJSON("/api/accounts", `{"encrypted_vault":"`+strings.Repeat("A", 256)+`"}`)
	req.Header.Set("Authorization", "Bearer good.jwt")
	rr := serve(h.Init(), req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestTooLarge, decodeMessage(t, rr))
}

func TestInit_AuthRoutesAreRateLimited(t *testing.T) {
	cfg := testServerConfig()
	cfg.AuthRateLimit = 0.001
	cfg.AuthRateBurst = 1
	h, m := newMockedHandler(t, cfg)
	m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(models.User{}, service.ErrWrongCredentials)
	m.appInfo.EXPECT().Health(gomock.Any()).Return(nil).Times(3)
	router := h.Init()

	assert.Equal(t, http.StatusUnauthorized, serve(router, postJSON("/api/login", aliceBody)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, postJSON("/api/login", aliceBody)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, postJSON("/api/register", aliceBody)).Code, "register shares the budget")

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Code, "health is not limited")
	}
}

func TestInit_CommonHeaders(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.appInfo.EXPECT().Health(gomock.Any()).Return(nil).Times(2)
	router := h.Init()

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "echo-me")
	rr = serve(router, req)
	assert.Equal(t, "echo-me", rr.Header().Get(traceIDHeader))
}

func TestInit_GzipResponses(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v9")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := serve(h.Init(), req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"v9"}`, string(body))
}

// TestInit_RecoversFromPanics verifies that a panicking service yields 500.
func TestInit_RecoversFromPanics(t *testing.T) {
	h, m := newMockedHandler(t, testServerConfig())
	m.appInfo.EXPECT().Health(gomock.Any()).DoAndReturn(func(any) error { panic("storage driver bug") })

	rr := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
