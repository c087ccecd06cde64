package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swell/systems"
	"github.com/pthm-cable/swell/ui"
)

// Draw renders the frame: sky and ocean in the 3D pass, actors on the
// surface, then the underwater overlay and the HUD in screen space.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 6, G: 18, B: 34, A: 255})

	cam := g.camera3D()

	rl.BeginMode3D(cam)

	g.sky.Draw(g.rig.X, g.rig.Y, g.rig.Z)

	// Push the exact parameter values the CPU queries used this tick, then
	// draw with the same clock reading.
	g.ocean.SyncParams(g.field.Params())
	g.ocean.Draw(g.clock.Now())

	g.drawActors()

	rl.EndMode3D()

	if g.depth.Mode() == systems.ModeBelow {
		g.underwater.Draw(g.depth.Progress())
	}

	g.hud.Draw(ui.HUDData{
		Mode:         g.depth.Mode().String(),
		Altitude:     g.rig.Altitude(),
		Progress:     g.depth.Progress(),
		Ready:        g.dive.Ready(),
		DiveActive:   g.dive.Active(),
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})

	// Tuning proposals go through the validated update path; a rejected set
	// leaves the field untouched.
	if proposed, changed := g.tuning.Draw(g.field.Params()); changed {
		g.ApplyWaveParams(proposed)
	}

	rl.EndDrawing()
}

// camera3D maps the rig onto the raylib camera.
func (g *Game) camera3D() rl.Camera3D {
	fx, fy, fz := g.rig.Forward()
	return rl.Camera3D{
		Position:   rl.NewVector3(g.rig.X, g.rig.Y, g.rig.Z),
		Target:     rl.NewVector3(g.rig.X+fx, g.rig.Y+fy, g.rig.Z+fz),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

// drawActors renders every actor whose model has resolved, oriented by the
// tilt the surface sync derived from the wave gradient.
func (g *Game) drawActors() {
	query := g.actorFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vis := query.Get()

		if !vis.Ready {
			continue
		}
		slot := g.loader.Model(vis.Slot)
		if slot == nil || !slot.Ready {
			continue
		}

		att := g.attMap.Get(entity)
		slot.Model.Transform = rl.MatrixRotateXYZ(rl.NewVector3(att.Pitch, 0, att.Roll))
		rl.DrawModel(slot.Model, rl.NewVector3(pos.X, pos.Y, pos.Z), vis.Scale, rl.White)
	}
}
