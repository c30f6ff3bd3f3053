package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Carmen-Shannon/oxy-garden/logger"
)

func TestTickReportsAfterInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(logger.NewFromZap(zap.New(core)))
	p.SetInterval(time.Hour)

	assert.False(t, p.Tick())
	assert.Zero(t, logs.Len())

	p.SetInterval(time.Nanosecond)
	time.Sleep(time.Millisecond)
	require.True(t, p.Tick())

	entries := logs.FilterMessage("profile").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Contains(t, fields, "tps")
	assert.Contains(t, fields, "heap_mb")
	assert.Greater(t, fields["tps"].(float64), 0.0)
}

func TestNilLoggerIsNop(t *testing.T) {
	p := NewProfiler(nil)
	p.SetInterval(0)
	time.Sleep(time.Millisecond)
	assert.True(t, p.Tick())
}
