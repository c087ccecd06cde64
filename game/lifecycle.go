package game

import (
	"log/slog"

	"github.com/pthm-cable/swell/components"
)

// spawnActors creates the tracked actors declared in config. Their models
// load asynchronously; until a load resolves the actor exists in the world
// but every per-frame system skips it.
func (g *Game) spawnActors() {
	for _, ac := range g.cfg.Actors {
		slot := -1
		if g.loader != nil {
			slot = g.loader.QueueModel(ac.Model)
		}

		pos := components.Position{X: float32(ac.AnchorX), Z: float32(ac.AnchorZ)}
		att := components.Attitude{}
		drift := components.Drift{
			AnchorX: float32(ac.AnchorX),
			AnchorZ: float32(ac.AnchorZ),
			Radius:  float32(ac.DriftRadius),
			Speed:   float32(ac.DriftSpeed),
			Phase:   float32(ac.DriftPhase),
		}
		vis := components.Visual{
			Slot:  slot,
			Scale: float32(ac.Scale),
			// Headless runs have no models to wait for; actors take part in
			// the surface sync immediately.
			Ready: g.headless,
		}

		g.actorMapper.NewEntity(&pos, &att, &drift, &vis)
		slog.Info("actor spawned", "name", ac.Name, "model", ac.Model)
	}
}

// Unload releases every collaborator. Safe in headless mode where all are
// nil.
func (g *Game) Unload() {
	if g.ocean != nil {
		g.ocean.Unload()
	}
	if g.sky != nil {
		g.sky.Unload()
	}
	g.router.Unload()
	g.loader.Unload()
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
}
