package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestLoggerEmitsStructuredFields(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)

	logger.Info("molecule built",
		String("smiles", "CCO"),
		Int("atoms", 3),
		Bool("fallback", false),
		Float64("elapsed", 0.002),
		Duration("took", 2*time.Millisecond),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "molecule built", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "CCO", fields["smiles"])
	assert.Equal(t, int64(3), fields["atoms"])
	assert.Equal(t, false, fields["fallback"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, logs := observedLogger(zapcore.WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("also kept")

	require.Len(t, logs.All(), 2)
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestLoggerWithAttachesFields(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)

	child := logger.With(String("component", "builder"))
	child.Info("hello")
	logger.Info("parent unchanged")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "builder", entries[0].ContextMap()["component"])
	assert.NotContains(t, entries[1].ContextMap(), "component")
}

func TestLoggerNamed(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)

	logger.Named("visualization").Info("ready")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "visualization", entries[0].LoggerName)
}

func TestErrField(t *testing.T) {
	f := Err(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	assert.Equal(t, "<nil>", Err(nil).Value)
}

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := NewLogger(Config{})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger(Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Debug("x")
		logger.Info("x", String("k", "v"))
		logger.Warn("x")
		logger.Error("x", Err(errors.New("e")))
		logger.With(Int("n", 1)).Named("child").Info("x")
	})
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	logger, logs := observedLogger(zapcore.InfoLevel)
	SetDefault(logger)
	Default().Info("via default")
	require.Len(t, logs.All(), 1)

	// A nil argument leaves the default untouched.
	SetDefault(nil)
	assert.NotNil(t, Default())
}
