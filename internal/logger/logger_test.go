package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_Fields(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "notes-auth-server", zerolog.DebugLevel)
	l.Debug().Msg("starting")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes-auth-server", entries[0]["role"])
	assert.Equal(t, "starting", entries[0]["message"])
	assert.Contains(t, entries[0], "time")
	assert.Contains(t, entries[0]["func"], "TestNewLogger_Fields")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_LevelPerRole(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name      string
		level     zerolog.Level
		wantLines int
	}{
		{name: "server emits debug", level: zerolog.DebugLevel, wantLines: 3},
		{name: "client keeps only warnings", level: zerolog.WarnLevel, wantLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, "role", tt.level)
			l.Debug().Msg("d")
			l.Info().Msg("i")
			l.Warn().Msg("w")

			assert.Len(t, decodeLines(t, &buf), tt.wantLines)
		})
	}
}

func TestNewClientLogger_SetsWarnLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NotNil(t, NewClientLogger("notes-auth-client"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("email", "a@b.com")
	})

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "server", entries[0]["role"])
	assert.Equal(t, "a@b.com", entries[0]["email"])
	assert.NotContains(t, entries[1], "email")
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zerolog.New(&buf)}

	ctx := base.WithTraceID(context.Background(), "7d1c0b52")
	FromContext(ctx).Info().Msg("login")
	base.Info().Msg("outside")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "7d1c0b52", entries[0][TraceIDField])
	assert.NotContains(t, entries[1], TraceIDField)
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	base := &Logger{zerolog.New(&buf)}

	req := httptest.NewRequest("GET", "/api/user/me", nil)
	req = req.WithContext(base.WithTraceID(req.Context(), "req-1"))

	FromRequest(req).Warn().Msg("from request")
	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}
