package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeAltitudeStats(t *testing.T) {
	values := []float64{-40, -30, -20, -10, 0, 1, 2, 3, 4, 5}
	mean, p10, p50, p90 := ComputeAltitudeStats(values)

	if math.Abs(mean-(-8.5)) > 0.001 {
		t.Errorf("mean = %v, want -8.5", mean)
	}
	if p10 > p50 || p50 > p90 {
		t.Errorf("percentiles out of order: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
}

func TestCollector_WindowAggregation(t *testing.T) {
	c := NewCollector(10, false)

	for i := int32(0); i < 10; i++ {
		alt := float32(-i)
		progress := float32(i) * 10
		c.RecordTick(alt, progress)
	}
	c.RecordSubmersion()
	c.RecordDiveStarted()
	c.RecordDiveCompleted()

	if !c.WindowReady(10) {
		t.Fatal("window should be ready after windowTicks ticks")
	}

	stats := c.Flush(10, 0.166)
	if stats.Submersions != 1 {
		t.Errorf("submersions = %d, want 1", stats.Submersions)
	}
	if stats.DivesCompleted != 1 {
		t.Errorf("dives_completed = %d, want 1", stats.DivesCompleted)
	}
	if math.Abs(stats.MaxProgress-90) > 0.001 {
		t.Errorf("max_progress = %v, want 90", stats.MaxProgress)
	}
	if stats.WindowEndTick != 10 {
		t.Errorf("window_end = %d, want 10", stats.WindowEndTick)
	}

	// Flush resets counters and the high-water mark.
	if c.WindowReady(10) {
		t.Error("window should not be ready immediately after flush")
	}
	next := c.Flush(20, 0.333)
	if next.Submersions != 0 || next.MaxProgress != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestPerfStats_RollingAverage(t *testing.T) {
	p := NewPerfStats(3)

	p.Record(PhaseSurface, 300)
	p.Record(PhaseSurface, 600)
	if p.Avg(PhaseSurface) != 450 {
		t.Errorf("avg = %v, want 450", p.Avg(PhaseSurface))
	}

	// Window of 3: a fourth sample evicts the first.
	p.Record(PhaseSurface, 900)
	p.Record(PhaseSurface, 900)
	if p.Avg(PhaseSurface) != 800 {
		t.Errorf("avg after eviction = %v, want 800", p.Avg(PhaseSurface))
	}
}
