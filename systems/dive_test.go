package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/swell/camera"
)

func TestDive_ReachesTargetOverDuration(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "ease-in-out")

	if err := dive.Start(-40); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// t=0: altitude is still the start value.
	if rig.Altitude() != 5 {
		t.Errorf("altitude at t=0 = %f, want 5", rig.Altitude())
	}

	// Step to t=1: somewhere strictly between start and target.
	dive.Update(1.0)
	mid := rig.Altitude()
	if mid >= 5 || mid <= -40 {
		t.Errorf("altitude at t=1 = %f, want strictly between 5 and -40", mid)
	}

	// Step to t=2: settled at the target, ready flag set.
	dive.Update(1.0)
	if math.Abs(float64(rig.Altitude()-(-40))) > 1e-4 {
		t.Errorf("altitude at t=2 = %f, want -40", rig.Altitude())
	}
	if !dive.Ready() {
		t.Error("ready flag not set on completion")
	}
	if dive.Active() {
		t.Error("dive still active after completion")
	}
}

func TestDive_MonotonicDescentUnderEasing(t *testing.T) {
	for _, easing := range []string{"linear", "ease-in", "ease-out", "ease-in-out"} {
		rig := camera.New(0, 5, 0)
		depth := NewDepthState(40, nil)
		dive := NewDive(rig, depth, 2.0, easing)
		if err := dive.Start(-40); err != nil {
			t.Fatalf("%s: Start: %v", easing, err)
		}

		prev := rig.Altitude()
		for i := 0; i < 120; i++ {
			dive.Update(2.0 / 120)
			cur := rig.Altitude()
			if cur > prev+1e-5 {
				t.Fatalf("%s: altitude rose from %f to %f during descent", easing, prev, cur)
			}
			prev = cur
		}
		if math.Abs(float64(prev-(-40))) > 1e-3 {
			t.Errorf("%s: final altitude %f, want -40", easing, prev)
		}
	}
}

func TestDive_ProgressLiveDuringDescent(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "linear")
	if err := dive.Start(-40); err != nil {
		t.Fatal(err)
	}

	var lastProgress float32
	sawIncrease := false
	for i := 0; i < 120; i++ {
		dive.Update(2.0 / 120)
		if depth.Progress() > lastProgress {
			sawIncrease = true
		}
		lastProgress = depth.Progress()
	}

	if !sawIncrease {
		t.Error("progress never advanced during the dive")
	}
	if math.Abs(float64(lastProgress-100)) > 1e-3 {
		t.Errorf("final progress %f, want 100", lastProgress)
	}
}

func TestDive_RejectsNonFiniteTarget(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "ease-in-out")

	for _, bad := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		if err := dive.Start(bad); err == nil {
			t.Errorf("Start(%f): expected error", bad)
		}
	}
	if dive.Active() {
		t.Error("rejected dive must not start an animation")
	}
	if dive.Ready() {
		t.Error("rejected dive must not set the ready flag")
	}

	// Altitude still writable by free navigation: no grant was claimed.
	nav := rig.ClaimAltitude()
	if !nav.SetAltitude(7) {
		t.Error("free navigation lost altitude after rejected dive")
	}
}

func TestDive_StartSupersedesFreeNavigation(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "linear")

	nav := rig.ClaimAltitude()
	if err := dive.Start(-40); err != nil {
		t.Fatal(err)
	}

	if nav.SetAltitude(100) {
		t.Error("stale navigation grant wrote altitude after dive took over")
	}
	dive.Update(0.5)
	if rig.Altitude() >= 5 {
		t.Errorf("dive not driving altitude: %f", rig.Altitude())
	}
}

func TestDive_RestartSupersedesInFlightDive(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "linear")

	if err := dive.Start(-40); err != nil {
		t.Fatal(err)
	}
	dive.Update(1.0)
	midway := rig.Altitude()

	// New dive from the midway altitude to a shallower target.
	if err := dive.Start(-10); err != nil {
		t.Fatal(err)
	}
	if dive.Ready() {
		t.Error("ready flag must clear when a new dive starts")
	}

	for i := 0; i < 120; i++ {
		dive.Update(2.0 / 120)
	}
	if math.Abs(float64(rig.Altitude()-(-10))) > 1e-3 {
		t.Errorf("superseding dive ended at %f, want -10 (started from %f)", rig.Altitude(), midway)
	}
}

func TestDive_StandsDownWhenAltitudeReclaimed(t *testing.T) {
	rig := camera.New(0, 5, 0)
	depth := NewDepthState(40, nil)
	dive := NewDive(rig, depth, 2.0, "linear")

	if err := dive.Start(-40); err != nil {
		t.Fatal(err)
	}
	dive.Update(0.5)

	// Another writer takes over mid-flight.
	nav := rig.ClaimAltitude()
	nav.SetAltitude(8)

	dive.Update(0.5)
	if dive.Active() {
		t.Error("dive should deactivate when its grant is revoked")
	}
	if rig.Altitude() != 8 {
		t.Errorf("stale dive update clobbered altitude: %f, want 8", rig.Altitude())
	}
}
