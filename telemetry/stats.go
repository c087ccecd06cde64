package telemetry

import "sort"

// WindowStats holds aggregated scene statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Mode transitions during the window
	Submersions int `csv:"submersions"`
	Surfacings  int `csv:"surfacings"`

	// Dive activity
	DivesStarted   int `csv:"dives_started"`
	DivesCompleted int `csv:"dives_completed"`

	// Depth progress high-water mark for the window
	MaxProgress float64 `csv:"max_progress"`

	// Camera altitude distribution (sampled per tick)
	AltitudeMean float64 `csv:"altitude_mean"`
	AltitudeP10  float64 `csv:"altitude_p10"`
	AltitudeP50  float64 `csv:"altitude_p50"`
	AltitudeP90  float64 `csv:"altitude_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	rank := p * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeAltitudeStats returns mean and percentiles for a sample set.
// The input is sorted in place.
func ComputeAltitudeStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	sort.Float64s(values)
	p10 = Percentile(values, 0.1)
	p50 = Percentile(values, 0.5)
	p90 = Percentile(values, 0.9)
	return mean, p10, p50, p90
}
