package zap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/LerianStudio/lib-simpletest/simpletest/log"
)

func newLocalLogger(t *testing.T) *Logger {
	t.Helper()

	logger, err := New(Config{Environment: EnvironmentLocal})
	require.NoError(t, err)

	return logger
}

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: "staging-ish"})
	require.Error(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: EnvironmentProduction, Level: "loud"})
	require.Error(t, err)
}

func TestNew_LevelDefaults(t *testing.T) {
	t.Parallel()

	local := newLocalLogger(t)
	assert.True(t, local.Enabled(logpkg.LevelDebug))

	prod, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	assert.False(t, prod.Enabled(logpkg.LevelDebug))
	assert.True(t, prod.Enabled(logpkg.LevelInfo))
}

func TestNew_LevelParsedWithDomainNames(t *testing.T) {
	t.Parallel()

	// "warning" is a log.ParseLevel alias, not a zap spelling.
	logger, err := New(Config{Environment: EnvironmentProduction, Level: "warning"})
	require.NoError(t, err)

	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)

	require.False(t, logger.Enabled(logpkg.LevelDebug))

	logger.SetLevel(logpkg.LevelDebug)
	require.True(t, logger.Enabled(logpkg.LevelDebug))
}

func TestLogger_LogAllLevels(t *testing.T) {
	t.Parallel()

	logger := newLocalLogger(t)

	for _, level := range []logpkg.Level{logpkg.LevelDebug, logpkg.LevelInfo, logpkg.LevelWarn, logpkg.LevelError} {
		logger.Log(context.Background(), level, "message", logpkg.String("k", "v"))
	}

	// Unknown levels fall back to info rather than panicking.
	logger.Log(context.Background(), logpkg.Level(42), "message")
}

func TestLogger_WithAndWithGroup(t *testing.T) {
	t.Parallel()

	logger := newLocalLogger(t)

	child := logger.With(logpkg.String("component", "check"))
	require.NotNil(t, child)

	grouped := child.WithGroup("tally")
	require.NotNil(t, grouped)

	grouped.Log(context.Background(), logpkg.LevelInfo, "grouped message", logpkg.Int("n", 1))
}

func TestLogger_NilReceiverSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger

	logger.Log(context.Background(), logpkg.LevelError, "no panic")
	logger.SetLevel(logpkg.LevelDebug)
	require.False(t, logger.Enabled(logpkg.LevelError))
}

func TestLogger_SyncCancelledContext(t *testing.T) {
	t.Parallel()

	logger := newLocalLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, logger.Sync(ctx))
}
