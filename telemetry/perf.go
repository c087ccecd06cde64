package telemetry

import (
	"sort"
	"time"
)

// Phase names for the tick pipeline, in execution order.
const (
	PhaseClock   = "clock"
	PhaseAssets  = "assets"
	PhaseDrift   = "drift"
	PhaseSurface = "surface"
	PhaseCamera  = "camera"
	PhaseDepth   = "depth"
	PhaseAudio   = "audio"
)

// PerfStats tracks execution time per tick phase over a rolling window.
type PerfStats struct {
	samples    map[string][]time.Duration
	maxSamples int
}

// NewPerfStats creates a tracker keeping windowSize samples per phase.
func NewPerfStats(windowSize int) *PerfStats {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfStats{
		samples:    make(map[string][]time.Duration),
		maxSamples: windowSize,
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.samples[name] = append(p.samples[name], d)
	if len(p.samples[name]) > p.maxSamples {
		p.samples[name] = p.samples[name][1:]
	}
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns phase names in alphabetical order.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PerfCSV is the flattened per-window perf record written to perf.csv.
type PerfCSV struct {
	WindowEnd int32   `csv:"window_end"`
	TotalUs   float64 `csv:"total_us"`
	ClockUs   float64 `csv:"clock_us"`
	AssetsUs  float64 `csv:"assets_us"`
	DriftUs   float64 `csv:"drift_us"`
	SurfaceUs float64 `csv:"surface_us"`
	CameraUs  float64 `csv:"camera_us"`
	DepthUs   float64 `csv:"depth_us"`
	AudioUs   float64 `csv:"audio_us"`
}

// ToCSV snapshots the rolling averages for CSV output.
func (p *PerfStats) ToCSV(windowEnd int32) PerfCSV {
	us := func(name string) float64 {
		return float64(p.Avg(name)) / float64(time.Microsecond)
	}
	return PerfCSV{
		WindowEnd: windowEnd,
		TotalUs:   float64(p.Total()) / float64(time.Microsecond),
		ClockUs:   us(PhaseClock),
		AssetsUs:  us(PhaseAssets),
		DriftUs:   us(PhaseDrift),
		SurfaceUs: us(PhaseSurface),
		CameraUs:  us(PhaseCamera),
		DepthUs:   us(PhaseDepth),
		AudioUs:   us(PhaseAudio),
	}
}
