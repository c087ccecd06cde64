// Package audio implements the depth-driven routing over raylib playback
// handles: one one-shot submersion cue and two ambient loops. The router only
// toggles playback and volume; device lifecycle is raylib's.
package audio

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Router satisfies systems.AudioSink. Loops are music streams that play
// continuously; muting sets their volume to zero instead of pausing so both
// stay phase-aligned with the scene.
type Router struct {
	cue        rl.Sound
	surface    rl.Music
	underwater rl.Music

	cueOK        bool
	surfaceOK    bool
	underwaterOK bool

	volume float32
}

// NewRouter loads the three sources. A source that fails to load is logged
// and left silent; the router still works for the others.
func NewRouter(cuePath, surfacePath, underwaterPath string, volume float32) *Router {
	r := &Router{volume: volume}

	r.cue = rl.LoadSound(cuePath)
	r.cueOK = rl.IsSoundValid(r.cue)
	if !r.cueOK {
		slog.Warn("submersion cue unavailable", "path", cuePath)
	}

	r.surface = rl.LoadMusicStream(surfacePath)
	r.surfaceOK = rl.IsMusicValid(r.surface)
	if r.surfaceOK {
		r.surface.Looping = true
		rl.PlayMusicStream(r.surface)
		rl.SetMusicVolume(r.surface, volume)
	} else {
		slog.Warn("surface loop unavailable", "path", surfacePath)
	}

	r.underwater = rl.LoadMusicStream(underwaterPath)
	r.underwaterOK = rl.IsMusicValid(r.underwater)
	if r.underwaterOK {
		r.underwater.Looping = true
		rl.PlayMusicStream(r.underwater)
		rl.SetMusicVolume(r.underwater, 0) // scene starts above water
	} else {
		slog.Warn("underwater loop unavailable", "path", underwaterPath)
	}

	return r
}

// Update feeds the music stream buffers. Called once per tick.
func (r *Router) Update() {
	if r == nil {
		return
	}
	if r.surfaceOK {
		rl.UpdateMusicStream(r.surface)
	}
	if r.underwaterOK {
		rl.UpdateMusicStream(r.underwater)
	}
}

// PlaySubmersionCue restarts the one-shot cue from its beginning.
func (r *Router) PlaySubmersionCue() {
	if !r.cueOK {
		return
	}
	rl.StopSound(r.cue)
	rl.PlaySound(r.cue)
}

// StopSubmersionCue stops and resets the one-shot cue.
func (r *Router) StopSubmersionCue() {
	if !r.cueOK {
		return
	}
	rl.StopSound(r.cue)
}

// MuteSurfaceLoop toggles the surface ambience.
func (r *Router) MuteSurfaceLoop(muted bool) {
	if !r.surfaceOK {
		return
	}
	if muted {
		rl.SetMusicVolume(r.surface, 0)
	} else {
		rl.SetMusicVolume(r.surface, r.volume)
	}
}

// MuteUnderwaterLoop toggles the underwater ambience.
func (r *Router) MuteUnderwaterLoop(muted bool) {
	if !r.underwaterOK {
		return
	}
	if muted {
		rl.SetMusicVolume(r.underwater, 0)
	} else {
		rl.SetMusicVolume(r.underwater, r.volume)
	}
}

// Unload releases all playback handles.
func (r *Router) Unload() {
	if r == nil {
		return
	}
	if r.cueOK {
		rl.UnloadSound(r.cue)
	}
	if r.surfaceOK {
		rl.UnloadMusicStream(r.surface)
	}
	if r.underwaterOK {
		rl.UnloadMusicStream(r.underwater)
	}
}
