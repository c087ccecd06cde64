package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swell/components"
)

// DriftSystem moves each actor along its slow closed path around an anchor.
// It owns the horizontal position; the vertical axis belongs to SurfaceSync.
type DriftSystem struct {
	filter *ecs.Filter2[components.Position, components.Drift]
}

// NewDriftSystem creates the system for the given world.
func NewDriftSystem(world *ecs.World) *DriftSystem {
	return &DriftSystem{
		filter: ecs.NewFilter2[components.Position, components.Drift](world),
	}
}

// Update recomputes horizontal positions for time t. The path is a function
// of absolute time, so pausing the clock freezes the drift too.
func (s *DriftSystem) Update(t float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, drift := query.Get()

		a := float64(drift.Phase + t*drift.Speed)
		pos.X = drift.AnchorX + float32(math.Cos(a))*drift.Radius
		pos.Z = drift.AnchorZ + float32(math.Sin(a))*drift.Radius
	}
}
