package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syster/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("loaded 12 stdlib files")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("stdlib directory not found")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	t.Run("hidden by default", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("skipping file", "path", "Broken.sysml")
		assert.Empty(t, buf.String())
	})

	t.Run("shown when verbose", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetVerbose(true)
		lg.Debug("skipping file", "path", "Broken.sysml")
		assert.Equal(t, "● skipping file path=Broken.sysml\n", buf.String())
	})

	t.Run("verbose can be turned off", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetVerbose(true)
		lg.SetVerbose(false)
		lg.Debug("skipping file")
		assert.Empty(t, buf.String())
	})
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil error is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("standard error", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(errors.New("boom"))
		assert.Equal(t, "✗ Error: boom\n", buf.String())
	})

	t.Run("wrapped chain with metadata", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		cause := errors.New("permission denied")
		err := zerr.With(zerr.Wrap(cause, "failed to read config"), "path", "syster.yaml")
		lg.Error(err)

		g := goldie.New(t)
		g.Assert(t, "error_chain", buf.Bytes())
	})
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "hello", record["msg"])

	buf.Reset()
	lg.Error(errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestCollectErrorEntries(t *testing.T) {
	t.Run("metadata only wrapper folds into next entry", func(t *testing.T) {
		err := zerr.With(errors.New("disk full"), "path", "a.sysml")
		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 1)
		assert.Equal(t, "disk full", entries[0].Message())
		assert.Equal(t, map[string]any{"path": "a.sysml"}, entries[0].Metadata())
	})

	t.Run("zerr levels keep their own messages", func(t *testing.T) {
		sentinel := zerr.New("unterminated string")
		err := zerr.Wrap(zerr.Wrap(sentinel, "line 3"), "failed to parse file")
		entries := logger.CollectErrorEntries(err)
		require.Len(t, entries, 3)
		assert.Equal(t, "failed to parse file", entries[0].Message())
		assert.Equal(t, "line 3", entries[1].Message())
		assert.Equal(t, "unterminated string", entries[2].Message())
	})
}

func TestFormatErrorEntries_Multiline(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("first\nsecond"), "outer"))
	got := logger.FormatErrorEntries(entries)
	assert.Equal(t, "Error: outer\n\n  Caused by:\n    → first\n      second", got)
}
