package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/swell/telemetry"
)

// Update runs input handling plus one or more simulation steps. Graphical
// mode entry point, called once per display frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		// Music buffers still need feeding while paused.
		g.router.Update()
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick. The order is fixed and explicit:
// clock → assets → actor sync → camera → depth mode → audio → telemetry.
// Everything runs synchronously on the tick thread; no locks.
func (g *Game) simulationStep() {
	phase := func(name string, fn func()) {
		start := time.Now()
		fn()
		g.perf.Record(name, time.Since(start))
	}

	// 1. Advance the shared clock. Every consumer this tick reads this value.
	phase(telemetry.PhaseClock, func() {
		g.clock.Advance(DT)
	})

	// 2. Resolve queued asset loads and propagate readiness to actors.
	phase(telemetry.PhaseAssets, func() {
		g.loader.Poll()
		g.syncReadiness()
	})

	// 3. Actors: horizontal drift first, then wave-surface placement.
	now := g.clock.Now()
	phase(telemetry.PhaseDrift, func() {
		g.drift.Update(now)
	})
	phase(telemetry.PhaseSurface, func() {
		g.surface.Update(g.field, now)
	})

	// 4. Camera: the dive animation owns altitude while active.
	phase(telemetry.PhaseCamera, func() {
		wasReady := g.dive.Ready()
		g.dive.Update(DT)
		if !wasReady && g.dive.Ready() {
			g.collector.RecordDiveCompleted()
			slog.Info("dive settled", "altitude", g.rig.Altitude(), "tick", g.tick)
		}
	})

	// 5. Depth mode evaluation; transitions route the audio sinks.
	phase(telemetry.PhaseDepth, func() {
		g.depth.Update(g.rig.Altitude())
	})
	phase(telemetry.PhaseAudio, func() {
		g.router.Update()
	})

	// 6. Telemetry
	g.collector.RecordTick(g.rig.Altitude(), g.depth.Progress())
	if g.collector.WindowReady(g.tick) {
		stats := g.collector.Flush(g.tick, float64(g.clock.Now()))
		if err := g.output.WriteWindow(stats); err != nil {
			slog.Warn("telemetry write failed", "error", err)
		}
		if err := g.output.WritePerf(g.perf, g.tick); err != nil {
			slog.Warn("perf write failed", "error", err)
		}
	}

	g.tick++
}

// syncReadiness flips actor Visual.Ready once the model load resolves.
// Failed loads never flip; the actor stays absent.
func (g *Game) syncReadiness() {
	if g.loader == nil {
		return
	}

	query := g.actorFilter.Query()
	for query.Next() {
		_, vis := query.Get()
		if vis.Ready {
			continue
		}
		if slot := g.loader.Model(vis.Slot); slot != nil && slot.Ready {
			vis.Ready = true
		}
	}

	// Sky texture is a one-time application once resolved.
	if !g.skyApplied && g.sky != nil {
		if slot := g.loader.Texture(g.skySlot); slot != nil && slot.Ready {
			g.sky.SetTexture(slot.Texture)
			g.skyApplied = true
		}
	}
}
