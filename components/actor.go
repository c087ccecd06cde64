// Package components defines the ECS components for tracked scene actors.
package components

// Position is an actor's world position. X and Z are owned by the drift
// system (the actor's own horizontal animation); Y is owned exclusively by
// the surface sync system and follows the wave field.
type Position struct {
	X, Y, Z float32
}

// Attitude holds the tilt angles the surface sync system derives from the
// wave gradient each frame. Radians.
type Attitude struct {
	Pitch float32
	Roll  float32
}

// Drift describes an actor's slow horizontal motion: a closed circular path
// around an anchor point. Purely decorative; the wave field never reads it.
type Drift struct {
	AnchorX, AnchorZ float32
	Radius           float32
	Speed            float32 // radians per second around the anchor
	Phase            float32
}

// Visual links an actor to its loaded model. Slot indexes the asset loader's
// registry; Ready flips true once the load resolves. Per-frame logic on an
// actor whose model has not loaded is a no-op, never a wait.
type Visual struct {
	Slot  int
	Scale float32
	Ready bool
}
