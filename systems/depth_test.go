package systems

import (
	"math"
	"testing"
)

// fakeSink counts routing calls so tests can assert edge-triggered behavior.
type fakeSink struct {
	cuePlays, cueStops           int
	surfaceMutes, surfaceUnmutes int
	underMutes, underUnmutes     int
}

func (f *fakeSink) PlaySubmersionCue() { f.cuePlays++ }
func (f *fakeSink) StopSubmersionCue() { f.cueStops++ }
func (f *fakeSink) MuteSurfaceLoop(muted bool) {
	if muted {
		f.surfaceMutes++
	} else {
		f.surfaceUnmutes++
	}
}
func (f *fakeSink) MuteUnderwaterLoop(muted bool) {
	if muted {
		f.underMutes++
	} else {
		f.underUnmutes++
	}
}

func TestDepthState_EdgesFireExactlyOncePerTransition(t *testing.T) {
	sink := &fakeSink{}
	d := NewDepthState(40, sink)

	var edges int
	d.OnTransition = func(from, to Mode) { edges++ }

	for _, alt := range []float32{5, 3, -1, -2, 4} {
		d.Update(alt)
	}

	if edges != 2 {
		t.Errorf("expected exactly 2 transition edges, got %d", edges)
	}
	if sink.cuePlays != 1 {
		t.Errorf("submersion cue played %d times, want 1", sink.cuePlays)
	}
	if sink.cueStops != 1 {
		t.Errorf("submersion cue stopped %d times, want 1", sink.cueStops)
	}
	if sink.surfaceMutes != 1 || sink.surfaceUnmutes != 1 {
		t.Errorf("surface loop mutes=%d unmutes=%d, want 1/1", sink.surfaceMutes, sink.surfaceUnmutes)
	}
	if sink.underMutes != 1 || sink.underUnmutes != 1 {
		t.Errorf("underwater loop mutes=%d unmutes=%d, want 1/1", sink.underMutes, sink.underUnmutes)
	}
	if d.Mode() != ModeAbove {
		t.Errorf("final mode = %v, want above", d.Mode())
	}
}

func TestDepthState_RepeatedSameModeIsNoOp(t *testing.T) {
	sink := &fakeSink{}
	d := NewDepthState(40, sink)

	// Many frames above, then many below: one edge total.
	for i := 0; i < 10; i++ {
		d.Update(3)
	}
	if sink.cuePlays != 0 {
		t.Errorf("cue played while staying above: %d", sink.cuePlays)
	}
	for i := 0; i < 10; i++ {
		d.Update(-5)
	}
	if sink.cuePlays != 1 {
		t.Errorf("cue played %d times across 10 below frames, want 1", sink.cuePlays)
	}
}

func TestDepthState_ProgressWhileBelow(t *testing.T) {
	d := NewDepthState(40, nil)

	d.Update(-10)
	if math.Abs(float64(d.Progress()-25)) > 1e-5 {
		t.Errorf("progress at -10 of 40 = %f, want 25", d.Progress())
	}

	d.Update(-40)
	if math.Abs(float64(d.Progress()-100)) > 1e-5 {
		t.Errorf("progress at -40 of 40 = %f, want 100", d.Progress())
	}

	// Beyond the configured depth the core does not clamp.
	d.Update(-60)
	if math.Abs(float64(d.Progress()-150)) > 1e-5 {
		t.Errorf("progress at -60 of 40 = %f, want 150 (unclamped)", d.Progress())
	}
}

func TestDepthState_ProgressFrozenWhileAbove(t *testing.T) {
	d := NewDepthState(40, nil)

	d.Update(-20)
	got := d.Progress()
	if math.Abs(float64(got-50)) > 1e-5 {
		t.Fatalf("progress at -20 = %f, want 50", got)
	}

	// Resurface; progress records how far the descent reached, so it stays
	// put across any number of above-water frames.
	for _, alt := range []float32{1, 2, 5, 0.5, 10} {
		d.Update(alt)
		if d.Progress() != got {
			t.Errorf("progress changed above water: %f != %f at altitude %f", d.Progress(), got, alt)
		}
	}
}

func TestDepthState_ThresholdIsInclusive(t *testing.T) {
	d := NewDepthState(40, nil)
	d.Update(0)
	if d.Mode() != ModeBelow {
		t.Error("altitude 0 should classify as below")
	}
}

func TestDepthState_NilAudioSinkTolerated(t *testing.T) {
	d := NewDepthState(40, nil)
	// Must not panic when transitioning without an audio sink (headless).
	d.Update(5)
	d.Update(-1)
	d.Update(5)
}
