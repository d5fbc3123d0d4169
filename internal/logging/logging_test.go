package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer, level zerolog.Level) context.Context {
	return WithContext(context.Background(), New(Config{Level: level, Format: "json", Output: buf}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"whatever": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("WEBSURFACE_LOG_LEVEL", "error")
	t.Setenv("WEBSURFACE_LOG_FORMAT", "json")

	logger := NewFromEnv()

	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := jsonLogger(&buf, zerolog.DebugLevel)
	ctx = WithComponent(ctx, "engine")
	ctx = WithSessionID(ctx, "s-1")
	ctx = WithBrowserID(ctx, 7)

	FromContext(ctx).Info().Msg("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "engine", lines[0]["component"])
	assert.Equal(t, "s-1", lines[0]["session_id"])
	assert.EqualValues(t, 7, lines[0]["browser_id"])
}

func TestFromContextWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestForwardLines(t *testing.T) {
	var buf bytes.Buffer
	ctx := jsonLogger(&buf, zerolog.DebugLevel)

	n := forwardLines(ctx, strings.NewReader("CONSOLE LOG one\r\n\nCONSOLE LOG two\n"), "stdout")

	assert.Equal(t, 2, n)
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "CONSOLE LOG one", lines[0]["message"])
	assert.Equal(t, "stdout", lines[0]["stream"])
	assert.Equal(t, "CONSOLE LOG two", lines[1]["message"])
}

func TestRecoverPanicLogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	ctx := jsonLogger(&buf, zerolog.InfoLevel)

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(ctx)
		panic("boom")
	})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "boom", lines[0]["panic"])
	assert.Contains(t, lines[0]["stack"], "goroutine")
}
