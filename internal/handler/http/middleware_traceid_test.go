package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
		{name: "no trace ID in request", requestTraceID: ""},
		{name: "trace ID with spaces is replaced", requestTraceID: "bad trace id"},
		{name: "overlong trace ID is replaced", requestTraceID: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeAuthService{})
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)
			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rr.Code)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
				return
			}
			_, err := uuid.Parse(responseTraceID)
			assert.NoError(t, err, "generated trace ID should be a UUID, got: %s", responseTraceID)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-context-test"`)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
		id := rr.Header().Get(traceIDHeader)

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}
