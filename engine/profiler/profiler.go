package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-garden/logger"
)

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	log            logger.Logger
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler that reports at info level.
// Update interval defaults to 1 second. A nil logger discards reports.
//
// Parameters:
//   - l: the logger receiving reports
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(l logger.Logger) *Profiler {
	if l == nil {
		l = logger.NewNop()
	}
	return &Profiler{
		log:            l,
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes how often Tick reports.
func (p *Profiler) SetInterval(d time.Duration) {
	p.updateInterval = d
}

// Tick should be called once per engine tick.
// Logs performance statistics when the update interval has elapsed:
// ticks per second, heap usage, allocation rate, GC count and pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	const mb = 1024 * 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		start := p.lastGCCount
		if gcCount-start > 256 {
			start = gcCount - 256
		}
		for i := start; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.log.Info("profile",
		logger.F("tps", float64(p.frameCount)/elapsed.Seconds()),
		logger.F("heap_mb", float64(p.memStats.Alloc)/mb),
		logger.F("alloc_rate_mb_s", float64(allocDelta)/mb/elapsed.Seconds()),
		logger.F("gc", gcCount),
		logger.F("gc_last_us", lastPauseUs),
		logger.F("gc_max_us", maxPauseUs),
		logger.F("sys_mb", float64(p.memStats.Sys)/mb),
	)

	p.frameCount = 0
	p.lastTime = now
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
