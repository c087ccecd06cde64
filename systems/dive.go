package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/swell/camera"
)

// EaseFunc maps normalized animation time [0,1] to normalized progress [0,1].
type EaseFunc func(float32) float32

// EasingByName resolves a configured curve name. Unknown names fall back to
// ease-in-out, the curve the dive was tuned with.
func EasingByName(name string) EaseFunc {
	switch name {
	case "linear":
		return easeLinear
	case "ease-in":
		return easeInCubic
	case "ease-out":
		return easeOutCubic
	case "ease-in-out":
		return easeInOutCubic
	default:
		return easeInOutCubic
	}
}

func easeLinear(u float32) float32 { return u }

func easeInCubic(u float32) float32 { return u * u * u }

func easeOutCubic(u float32) float32 {
	v := 1 - u
	return 1 - v*v*v
}

func easeInOutCubic(u float32) float32 {
	if u < 0.5 {
		return 4 * u * u * u
	}
	v := -2*u + 2
	return 1 - v*v*v/2
}

// Dive animates the camera altitude to a target depth over a fixed duration.
// Starting a dive claims exclusive altitude ownership, revoking whatever
// wrote it before; a second Start while in flight supersedes the first.
type Dive struct {
	rig   *camera.Rig
	depth *DepthState

	grant    *camera.Grant
	start    float32
	target   float32
	elapsed  float32
	duration float32
	ease     EaseFunc

	active bool
	ready  bool
}

// NewDive creates a controller with the configured duration and easing curve.
func NewDive(rig *camera.Rig, depth *DepthState, duration float32, easing string) *Dive {
	return &Dive{
		rig:      rig,
		depth:    depth,
		duration: duration,
		ease:     EasingByName(easing),
	}
}

// Start begins an animation from the current altitude to target. A non-finite
// target is rejected without starting and without touching the ready flag.
func (d *Dive) Start(target float32) error {
	f := float64(target)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("dive: non-finite target altitude %f", target)
	}

	d.grant = d.rig.ClaimAltitude()
	d.start = d.rig.Altitude()
	d.target = target
	d.elapsed = 0
	d.active = true
	d.ready = false
	return nil
}

// Update advances the animation by dt seconds. Every step recomputes the
// depth progress so the UI value stays live throughout the descent. On
// completion the ready flag is set and the altitude grant released back to
// free navigation.
func (d *Dive) Update(dt float32) {
	if !d.active {
		return
	}
	if d.grant.Revoked() {
		// Another writer claimed the altitude; stand down.
		d.active = false
		return
	}

	d.elapsed += dt
	u := d.elapsed / d.duration
	if u > 1 {
		u = 1
	}
	d.grant.SetAltitude(d.start + (d.target-d.start)*d.ease(u))
	d.depth.RecomputeProgress(d.rig.Altitude())

	if d.elapsed >= d.duration {
		d.active = false
		d.ready = true
		d.grant.Release()
	}
}

// Active reports whether an animation is in flight.
func (d *Dive) Active() bool {
	return d.active
}

// Ready reports dive completion; observed by the UI layer to unlock
// interaction. Cleared when a new dive starts.
func (d *Dive) Ready() bool {
	return d.ready
}
