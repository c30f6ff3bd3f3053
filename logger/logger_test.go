package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	logs := recorded.All()
	require.Len(t, logs, 4)
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, entry := range logs {
		assert.Equal(t, want[i], entry.Level)
	}
}

func TestZapLoggerFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core))

	l.Info("transition",
		F("from", "Idle"),
		F("frames", 42),
		F("speed", 3.4),
		F("run", true),
		F("elapsed", time.Second),
		F("err", errors.New("boom")),
	)

	logs := recorded.All()
	require.Len(t, logs, 1)
	ctx := logs[0].ContextMap()
	assert.Equal(t, "Idle", ctx["from"])
	assert.Equal(t, int64(42), ctx["frames"])
	assert.Equal(t, 3.4, ctx["speed"])
	assert.Equal(t, true, ctx["run"])
	assert.Equal(t, time.Second, ctx["elapsed"])
	assert.Equal(t, "boom", ctx["err"])
}

func TestZapLoggerWith(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	child := NewFromZap(zap.New(core)).With(F("component", "locomotion"))

	child.Info("hello")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "locomotion", logs[0].ContextMap()["component"])
}

func TestContextRoundTrip(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core))

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("from context")
	assert.Equal(t, 1, recorded.Len())

	// Missing logger yields a usable no-op.
	assert.NotPanics(t, func() { FromContext(context.Background()).Info("dropped") })
}

func TestNewSessionTagsEntries(t *testing.T) {
	l, id, err := NewSession(Config{Level: "error", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.Len(t, id, 36)
}

func TestNewZapLoggerUnknownLevelFallsBack(t *testing.T) {
	l, err := NewZapLogger(Config{Level: "loud", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.zap.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.zap.Core().Enabled(zapcore.DebugLevel))
}
