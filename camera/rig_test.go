package camera

import (
	"math"
	"testing"
)

func TestClaimAltitude_RevokesPriorGrant(t *testing.T) {
	r := New(0, 5, 0)

	first := r.ClaimAltitude()
	if !first.SetAltitude(3) {
		t.Fatal("fresh grant should accept writes")
	}
	if r.Altitude() != 3 {
		t.Fatalf("altitude = %f, want 3", r.Altitude())
	}

	second := r.ClaimAltitude()
	if !first.Revoked() {
		t.Error("first grant should be revoked after a new claim")
	}
	if first.SetAltitude(99) {
		t.Error("revoked grant must not write")
	}
	if r.Altitude() != 3 {
		t.Errorf("revoked write leaked through: altitude = %f", r.Altitude())
	}

	if !second.SetAltitude(-10) {
		t.Error("current grant should accept writes")
	}
	if r.Altitude() != -10 {
		t.Errorf("altitude = %f, want -10", r.Altitude())
	}
}

func TestGrant_Release(t *testing.T) {
	r := New(0, 0, 0)
	g := r.ClaimAltitude()
	g.Release()
	if g.SetAltitude(1) {
		t.Error("released grant must not write")
	}

	// A nil grant behaves like a revoked one.
	var nilGrant *Grant
	if nilGrant.SetAltitude(1) {
		t.Error("nil grant must not write")
	}
	if !nilGrant.Revoked() {
		t.Error("nil grant should report revoked")
	}
}

func TestLook_ClampsPitch(t *testing.T) {
	r := New(0, 0, 0)
	r.Look(0, 10)
	if r.Pitch >= math.Pi/2 {
		t.Errorf("pitch %f not clamped below pi/2", r.Pitch)
	}
	r.Look(0, -20)
	if r.Pitch <= -math.Pi/2 {
		t.Errorf("pitch %f not clamped above -pi/2", r.Pitch)
	}
}

func TestForward_UnitLength(t *testing.T) {
	r := New(0, 0, 0)
	r.Look(0.7, -0.3)
	fx, fy, fz := r.Forward()
	length := math.Sqrt(float64(fx*fx + fy*fy + fz*fz))
	if math.Abs(length-1) > 1e-5 {
		t.Errorf("forward vector length %f, want 1", length)
	}
}
