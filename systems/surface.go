package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swell/components"
	"github.com/pthm-cable/swell/wave"
)

// SurfaceSync places every ready tracked actor on the wave surface each tick:
// vertical position from the height field, tilt angles from its gradient.
// It owns each actor's Y and Attitude exclusively and never writes anything
// else.
type SurfaceSync struct {
	filter *ecs.Filter3[components.Position, components.Attitude, components.Visual]

	// TiltGain converts the raw gradient into rotation angles. An empirical
	// visual exaggeration factor (default 1.25), not a physical constant.
	TiltGain float32
}

// NewSurfaceSync creates the system for the given world.
func NewSurfaceSync(world *ecs.World, tiltGain float32) *SurfaceSync {
	return &SurfaceSync{
		filter:   ecs.NewFilter3[components.Position, components.Attitude, components.Visual](world),
		TiltGain: tiltGain,
	}
}

// Update queries the field at time t for every actor. Actors whose model has
// not loaded yet are skipped; a nil field reads as flat water so the loop is
// safe before scene setup completes.
func (s *SurfaceSync) Update(field *wave.Field, t float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, att, vis := query.Get()

		if !vis.Ready {
			continue
		}

		pos.Y = field.Height(pos.X, pos.Z, t)

		gx, gz := field.Gradient(pos.X, pos.Z, t)
		att.Pitch = -gz * s.TiltGain
		att.Roll = gx * s.TiltGain
	}
}
