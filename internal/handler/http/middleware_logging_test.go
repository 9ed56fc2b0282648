package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest puts a buffer-backed logger into the request context
// the same way withTraceID does.
func makeLoggedRequest(method, path, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		response string
		wantLog  []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			path:     "/health",
			status:   http.StatusOK,
			response: `{"status":"ok"}`,
			wantLog:  []string{`"method":"GET"`, `"uri":"/health"`, `"status":200`, `"size":15`, `"duration":`, `"client_ip":"192.0.2.1"`},
		},
		{
			name:     "POST 401",
			method:   http.MethodPost,
			path:     "/api/login",
			status:   http.StatusUnauthorized,
			response: `{"message":"Invalid username or password"}`,
			wantLog:  []string{`"method":"POST"`, `"uri":"/api/login"`, `"status":401`},
		},
		{
			name:    "query string is kept",
			method:  http.MethodGet,
			path:    "/api/accounts?x=1",
			status:  http.StatusNoContent,
			wantLog: []string{`"uri":"/api/accounts?x=1"`, `"status":204`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.response != "" {
					w.Write([]byte(tt.response))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeLoggedRequest(tt.method, tt.path, "", &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

// TestWithLogging_NeverLogsBodies verifies that secrets in request and
// response bodies stay out of the access log.
func TestWithLogging_NeverLogsBodies(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token":"secret.jwt.token"}`))
	})

	req := makeLoggedRequest(http.MethodPost, "/api/login", `{"username":"alice","password":"Passw0rd!"}`, &buf)
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "Passw0rd!")
	assert.NotContains(t, buf.String(), "secret.jwt.token")
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", "", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":0`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", "", &buf))
	})
}
