package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ResponseHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "caller id is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "uuid from caller is reused", incoming: "0192f2c4-7d1e-7b3a-9c55-3a3e4f1b2c3d", wantSame: true},
		{name: "missing id is generated", incoming: ""},
		{name: "overlong id is replaced", incoming: strings.Repeat("a", maxTraceIDLen+1)},
		{name: "id with spaces is replaced", incoming: "trace id"},
		{name: "id with control bytes is replaced", incoming: "trace\x01id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			rr, captured := executeWithTraceID(h, tt.incoming)

			require.NotNil(t, captured, "next must always be called")
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace id %q must be a uuid", got)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "trace id %s generated twice", id)
		seen[id] = struct{}{}
	}
}

// TestWithTraceID_TraceIDInContextLogger verifies that downstream log lines
// carry the trace id.
func TestWithTraceID_TraceIDInContextLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("abc-123_DEF.456"))
	assert.True(t, validTraceID(strings.Repeat("z", maxTraceIDLen)))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("tab\there"))
	assert.False(t, validTraceID("ünïcode"))
}
