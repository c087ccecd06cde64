// Package wave implements the closed-form ocean height field. The same
// formula runs on the CPU (actor placement, camera queries) and in the ocean
// surface shader; both sides must receive identical parameter values each
// frame or the rendered surface and the actors visibly drift apart.
package wave

import (
	"fmt"
	"math"
)

// DefaultGradientStep is the finite-difference step in world units.
const DefaultGradientStep = 0.1

// Params holds the wave band configuration. The big band is the large-scale
// swell; the small band is a higher-frequency detail term summed over
// Iterations harmonics.
type Params struct {
	BigFreqX       float32
	BigFreqZ       float32
	BigElevation   float32
	BigSpeed       float32
	SmallFreq      float32
	SmallElevation float32
	SmallSpeed     float32
	Iterations     int
	VerticalBias   float32
	GradientStep   float32
}

// Validate checks parameter bounds: frequencies and elevations must be
// non-negative and finite, Iterations at least 1, GradientStep positive.
// Speed may be any finite value; a negative sign reverses travel direction.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("wave: iterations must be >= 1, got %d", p.Iterations)
	}
	for _, v := range []struct {
		name string
		val  float32
	}{
		{"big_freq_x", p.BigFreqX},
		{"big_freq_z", p.BigFreqZ},
		{"big_elevation", p.BigElevation},
		{"small_freq", p.SmallFreq},
		{"small_elevation", p.SmallElevation},
	} {
		if !finite(v.val) || v.val < 0 {
			return fmt.Errorf("wave: %s must be finite and non-negative, got %f", v.name, v.val)
		}
	}
	if !finite(p.BigSpeed) || !finite(p.SmallSpeed) {
		return fmt.Errorf("wave: speeds must be finite")
	}
	if !finite(p.VerticalBias) {
		return fmt.Errorf("wave: vertical_bias must be finite")
	}
	if !finite(p.GradientStep) || p.GradientStep <= 0 {
		return fmt.Errorf("wave: gradient_step must be finite and positive, got %f", p.GradientStep)
	}
	return nil
}

// Field evaluates the height function for a fixed parameter set.
// A nil *Field is a valid receiver and reports a flat surface at height 0;
// callers created before scene setup finishes query it safely.
type Field struct {
	params Params
}

// New creates a field, rejecting invalid parameters.
func New(p Params) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.GradientStep == 0 {
		p.GradientStep = DefaultGradientStep
	}
	return &Field{params: p}, nil
}

// Params returns the current parameter set.
func (f *Field) Params() Params {
	if f == nil {
		return Params{}
	}
	return f.params
}

// SetParams swaps in a new parameter set. On validation failure the prior
// parameters stay in effect and the error is returned.
func (f *Field) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.params = p
	return nil
}

// Height returns the surface height at horizontal position (x, z) and time t.
// Pure and deterministic. The operation order of the primary term matches the
// ocean shader so CPU and GPU evaluations agree.
func (f *Field) Height(x, z, t float32) float32 {
	if f == nil {
		return 0
	}
	p := f.params

	primary := sin32(p.BigFreqX*x+t*p.BigSpeed) *
		sin32(p.BigFreqZ*z+t*p.BigSpeed) *
		p.BigElevation

	// Each harmonic is divided by the iteration count, so raising Iterations
	// adds shader-side spatial detail without raising the amplitude bound.
	var secondary float32
	n := float32(p.Iterations)
	for i := 0; i < p.Iterations; i++ {
		secondary += cos32(p.SmallFreq*(x+z)+t*p.SmallSpeed) * p.SmallElevation / n
	}

	return primary + secondary - p.VerticalBias
}

// Gradient returns the central finite-difference slope at (x, z).
// The result is intentionally not divided by 2*step: it is a relative slope
// indicator consumed by the actor tilt code, whose gain constant was tuned
// against this scale. Dividing here would silently change every tuned tilt.
func (f *Field) Gradient(x, z, t float32) (dx, dz float32) {
	if f == nil {
		return 0, 0
	}
	step := f.params.GradientStep
	dx = f.Height(x+step, z, t) - f.Height(x-step, z, t)
	dz = f.Height(x, z+step, t) - f.Height(x, z-step, t)
	return dx, dz
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos32(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
