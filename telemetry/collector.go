package telemetry

import (
	"log/slog"
	"time"
)

// Collector accumulates per-frame events within time windows and produces
// WindowStats at each window boundary.
type Collector struct {
	windowDuration time.Duration
	windowStart    time.Time
	windowEndFrame int32

	// Event counters for current window
	frames        int
	regenerations int
	forceFrames   int
	frameTimes    []float64 // milliseconds

	// Last simulation sizes seen, reported in the window record.
	stars, clouds int

	logStats bool
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in wall-clock seconds.
// logStats: emit each completed window via slog.
func NewCollector(windowDurationSec float64, logStats bool) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 5
	}
	return &Collector{
		windowDuration: time.Duration(windowDurationSec * float64(time.Second)),
		windowStart:    time.Now(),
		frameTimes:     make([]float64, 0, 1024),
		logStats:       logStats,
	}
}

// RecordFrame records one completed simulation frame.
func (c *Collector) RecordFrame(frame int32, frameTime time.Duration, stars, clouds int, forceActive bool) {
	c.frames++
	c.windowEndFrame = frame
	c.frameTimes = append(c.frameTimes, float64(frameTime)/float64(time.Millisecond))
	c.stars = stars
	c.clouds = clouds
	if forceActive {
		c.forceFrames++
	}
}

// RecordRegeneration records a completed placement generation pass.
func (c *Collector) RecordRegeneration() {
	c.regenerations++
}

// MaybeEndWindow closes the current window if its duration has elapsed and
// returns the stats and true; otherwise returns false.
func (c *Collector) MaybeEndWindow() (WindowStats, bool) {
	if time.Since(c.windowStart) < c.windowDuration {
		return WindowStats{}, false
	}
	return c.EndWindow(), true
}

// EndWindow closes the current window unconditionally.
func (c *Collector) EndWindow() WindowStats {
	mean, std, p50, p90, p99 := ComputeFrameStats(c.frameTimes)

	stats := WindowStats{
		WindowEnd:     c.windowEndFrame,
		Frames:        c.frames,
		Stars:         c.stars,
		Clouds:        c.clouds,
		Regenerations: c.regenerations,
		ForceFrames:   c.forceFrames,
		FrameMeanMS:   mean,
		FrameStdMS:    std,
		FrameP50MS:    p50,
		FrameP90MS:    p90,
		FrameP99MS:    p99,
	}

	if c.logStats {
		slog.Info("window stats",
			"window_end_frame", stats.WindowEnd,
			"frames", stats.Frames,
			"stars", stats.Stars,
			"clouds", stats.Clouds,
			"regenerations", stats.Regenerations,
			"force_active_frames", stats.ForceFrames,
			"frame_mean_ms", stats.FrameMeanMS,
			"frame_p90_ms", stats.FrameP90MS,
		)
	}

	// Reset for next window
	c.windowStart = time.Now()
	c.frames = 0
	c.regenerations = 0
	c.forceFrames = 0
	c.frameTimes = c.frameTimes[:0]

	return stats
}
