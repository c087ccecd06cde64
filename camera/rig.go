// Package camera provides the viewpoint rig for the ocean scene.
package camera

import "math"

// Rig holds the viewpoint position and orientation. Altitude (Y) is special:
// it drives the depth state machine and the audio routing, so only one writer
// may own it at a time. Writers obtain a Grant via ClaimAltitude; claiming
// revokes the previous grant so a stale animation callback can never clobber
// the current owner's writes.
type Rig struct {
	X, Y, Z float32

	// Yaw/Pitch orientation in radians (free-look)
	Yaw, Pitch float32

	grant *Grant
}

// Grant is an exclusive handle on the rig's altitude.
type Grant struct {
	rig     *Rig
	revoked bool
}

// New creates a rig at the given position looking down negative Z.
func New(x, y, z float32) *Rig {
	return &Rig{X: x, Y: y, Z: z, Yaw: -math.Pi / 2}
}

// Altitude returns the current Y position.
func (r *Rig) Altitude() float32 {
	return r.Y
}

// ClaimAltitude revokes any existing grant and returns a fresh one.
func (r *Rig) ClaimAltitude() *Grant {
	if r.grant != nil {
		r.grant.revoked = true
	}
	g := &Grant{rig: r}
	r.grant = g
	return g
}

// SetAltitude writes the altitude if the grant is still live.
// Returns false if the grant has been revoked by a later claimant.
func (g *Grant) SetAltitude(y float32) bool {
	if g == nil || g.revoked {
		return false
	}
	g.rig.Y = y
	return true
}

// Revoked reports whether a later claim superseded this grant.
func (g *Grant) Revoked() bool {
	return g == nil || g.revoked
}

// Release gives up the grant voluntarily.
func (g *Grant) Release() {
	if g == nil {
		return
	}
	g.revoked = true
	if g.rig.grant == g {
		g.rig.grant = nil
	}
}

// Forward returns the unit look direction derived from yaw and pitch.
func (r *Rig) Forward() (fx, fy, fz float32) {
	cp := float32(math.Cos(float64(r.Pitch)))
	fx = float32(math.Cos(float64(r.Yaw))) * cp
	fy = float32(math.Sin(float64(r.Pitch)))
	fz = float32(math.Sin(float64(r.Yaw))) * cp
	return fx, fy, fz
}

// Move translates the rig in the horizontal look frame. Vertical movement
// goes through the altitude grant, not here.
func (r *Rig) Move(forward, strafe float32) {
	sy := float32(math.Sin(float64(r.Yaw)))
	cy := float32(math.Cos(float64(r.Yaw)))
	r.X += cy*forward - sy*strafe
	r.Z += sy*forward + cy*strafe
}

// Look adjusts yaw and pitch, clamping pitch short of the poles.
func (r *Rig) Look(dyaw, dpitch float32) {
	r.Yaw += dyaw
	r.Pitch += dpitch
	const limit = math.Pi/2 - 0.01
	if r.Pitch > limit {
		r.Pitch = limit
	}
	if r.Pitch < -limit {
		r.Pitch = -limit
	}
}
