package telemetry

import "log/slog"

// Collector accumulates per-tick scene samples and emits WindowStats when a
// stats window elapses. All methods run on the tick thread; no locking.
type Collector struct {
	windowTicks int32
	startTick   int32

	altitudes   []float64
	maxProgress float64

	submersions    int
	surfacings     int
	divesStarted   int
	divesCompleted int

	logStats bool
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int32, logStats bool) *Collector {
	if windowTicks < 1 {
		windowTicks = 300
	}
	return &Collector{windowTicks: windowTicks, logStats: logStats}
}

// RecordTick samples the camera state for the current tick.
func (c *Collector) RecordTick(altitude, progress float32) {
	c.altitudes = append(c.altitudes, float64(altitude))
	if float64(progress) > c.maxProgress {
		c.maxProgress = float64(progress)
	}
}

// RecordSubmersion counts an ABOVE to BELOW edge.
func (c *Collector) RecordSubmersion() { c.submersions++ }

// RecordSurfacing counts a BELOW to ABOVE edge.
func (c *Collector) RecordSurfacing() { c.surfacings++ }

// RecordDiveStarted counts a dive animation start.
func (c *Collector) RecordDiveStarted() { c.divesStarted++ }

// RecordDiveCompleted counts a dive reaching its target.
func (c *Collector) RecordDiveCompleted() { c.divesCompleted++ }

// WindowReady reports whether the current window has elapsed at tick.
func (c *Collector) WindowReady(tick int32) bool {
	return tick-c.startTick >= c.windowTicks
}

// Flush aggregates the window, optionally logs it, and resets for the next
// window. maxProgress carries over only via the returned stats; the high
// water mark restarts each window.
func (c *Collector) Flush(tick int32, simTime float64) WindowStats {
	mean, p10, p50, p90 := ComputeAltitudeStats(c.altitudes)

	stats := WindowStats{
		WindowStartTick: c.startTick,
		WindowEndTick:   tick,
		SimTimeSec:      simTime,
		Submersions:     c.submersions,
		Surfacings:      c.surfacings,
		DivesStarted:    c.divesStarted,
		DivesCompleted:  c.divesCompleted,
		MaxProgress:     c.maxProgress,
		AltitudeMean:    mean,
		AltitudeP10:     p10,
		AltitudeP50:     p50,
		AltitudeP90:     p90,
	}

	if c.logStats {
		slog.Info("window stats",
			"window_end", stats.WindowEndTick,
			"sim_time", stats.SimTimeSec,
			"submersions", stats.Submersions,
			"surfacings", stats.Surfacings,
			"dives_completed", stats.DivesCompleted,
			"max_progress", stats.MaxProgress,
			"altitude_mean", stats.AltitudeMean,
		)
	}

	c.startTick = tick
	c.altitudes = c.altitudes[:0]
	c.maxProgress = 0
	c.submersions = 0
	c.surfacings = 0
	c.divesStarted = 0
	c.divesCompleted = 0

	return stats
}
