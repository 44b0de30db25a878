package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("image-resolver", &buf)

	l.Info().Str("log_id", "abc").Msg("resolved")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "image-resolver", entry["role"])
	assert.Equal(t, "abc", entry["log_id"])
	assert.Equal(t, "resolved", entry["message"])
	assert.Contains(t, entry, "time")

	caller, ok := entry["func"].(string)
	require.True(t, ok, "expected string 'func' field")
	assert.True(t, strings.HasSuffix(caller, "TestNew_EntryFields"), caller)
	assert.False(t, strings.HasPrefix(caller, modulePrefix), caller)
}

func TestNew_ResetsGlobalLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	New("level", &bytes.Buffer{})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("waste-tracker-server"))
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "upper case with spaces", level: " INFO ", want: zerolog.InfoLevel},
		{name: "empty keeps current level", level: "", want: zerolog.InfoLevel},
		{name: "unknown", level: "loud", want: zerolog.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	l := New("filter", &buf)
	require.NoError(t, SetLevel("error"))

	l.Warn().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Error().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New("parent-role", &buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("user_id", "u-1").Logger()

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "u-1", entry["user_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "user_id")
}

func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("from context")

		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/packaging/logs", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}
