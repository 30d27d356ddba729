package logrus

import (
	"testing"

	sirupsen "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger(level string) (*Logger, *test.Hook) {
	l := New(Config{Level: level})
	hook := test.NewLocal(l.Underlying())
	l.Underlying().SetOutput(nopWriter{})
	return l, hook
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLogger_EmitsStructuredFields(t *testing.T) {
	logger, hook := newCapturedLogger("debug")

	logger.Info("Resolving preview", map[string]interface{}{
		"url": "https://example.com",
	})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, sirupsen.InfoLevel, entry.Level)
	assert.Equal(t, "Resolving preview", entry.Message)
	assert.Equal(t, "https://example.com", entry.Data["url"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	logger, hook := newCapturedLogger("warn")

	logger.Debug("hidden", nil)
	logger.Info("hidden too", nil)
	logger.Warn("visible", nil)
	logger.Error("also visible", nil)

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "visible", hook.Entries[0].Message)
	assert.Equal(t, "also visible", hook.Entries[1].Message)
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, hook := newCapturedLogger("nonsense")

	logger.Debug("hidden", nil)
	logger.Info("visible", nil)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "visible", hook.Entries[0].Message)
}

func TestLogger_NilFields(t *testing.T) {
	logger, hook := newCapturedLogger("info")

	logger.Info("no fields", nil)

	require.Len(t, hook.Entries, 1)
	assert.Empty(t, hook.LastEntry().Data)
}
