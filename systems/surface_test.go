package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swell/components"
	"github.com/pthm-cable/swell/wave"
)

func testField(t *testing.T) *wave.Field {
	t.Helper()
	f, err := wave.New(wave.Params{
		BigFreqX:       0.8,
		BigFreqZ:       4.2,
		BigElevation:   0.05,
		BigSpeed:       0.75,
		SmallFreq:      3.0,
		SmallElevation: 0.15,
		SmallSpeed:     0.2,
		Iterations:     4,
		VerticalBias:   0.36,
		GradientStep:   wave.DefaultGradientStep,
	})
	if err != nil {
		t.Fatalf("wave.New: %v", err)
	}
	return f
}

func spawnActor(world *ecs.World, x, z float32, ready bool) ecs.Entity {
	mapper := ecs.NewMap4[
		components.Position,
		components.Attitude,
		components.Drift,
		components.Visual,
	](world)

	pos := components.Position{X: x, Y: 99, Z: z}
	att := components.Attitude{Pitch: 99, Roll: 99}
	drift := components.Drift{AnchorX: x, AnchorZ: z}
	vis := components.Visual{Ready: ready, Scale: 1}
	return mapper.NewEntity(&pos, &att, &drift, &vis)
}

func TestSurfaceSync_PlacesActorOnWave(t *testing.T) {
	world := ecs.NewWorld()
	field := testField(t)
	sync := NewSurfaceSync(world, 1.25)

	entity := spawnActor(world, 3.0, -2.0, true)
	posMap := ecs.NewMap1[components.Position](world)
	attMap := ecs.NewMap1[components.Attitude](world)

	const tick = float32(4.5)
	sync.Update(field, tick)

	pos := posMap.Get(entity)
	att := attMap.Get(entity)

	wantY := field.Height(3.0, -2.0, tick)
	if math.Abs(float64(pos.Y-wantY)) > 1e-6 {
		t.Errorf("actor Y = %f, want field height %f", pos.Y, wantY)
	}

	gx, gz := field.Gradient(3.0, -2.0, tick)
	if math.Abs(float64(att.Pitch-(-gz*1.25))) > 1e-6 {
		t.Errorf("pitch = %f, want %f", att.Pitch, -gz*1.25)
	}
	if math.Abs(float64(att.Roll-gx*1.25)) > 1e-6 {
		t.Errorf("roll = %f, want %f", att.Roll, gx*1.25)
	}
}

func TestSurfaceSync_SkipsUnreadyActor(t *testing.T) {
	world := ecs.NewWorld()
	field := testField(t)
	sync := NewSurfaceSync(world, 1.25)

	entity := spawnActor(world, 0, 0, false)
	posMap := ecs.NewMap1[components.Position](world)
	attMap := ecs.NewMap1[components.Attitude](world)

	sync.Update(field, 1.0)

	// Sentinel values untouched: per-frame logic on an unloaded actor is a
	// no-op.
	if posMap.Get(entity).Y != 99 {
		t.Errorf("unready actor Y mutated to %f", posMap.Get(entity).Y)
	}
	if attMap.Get(entity).Pitch != 99 {
		t.Errorf("unready actor pitch mutated to %f", attMap.Get(entity).Pitch)
	}
}

func TestSurfaceSync_NilFieldReadsFlat(t *testing.T) {
	world := ecs.NewWorld()
	sync := NewSurfaceSync(world, 1.25)

	entity := spawnActor(world, 5, 5, true)
	posMap := ecs.NewMap1[components.Position](world)
	attMap := ecs.NewMap1[components.Attitude](world)

	sync.Update(nil, 1.0)

	if posMap.Get(entity).Y != 0 {
		t.Errorf("nil field should place actor at 0, got %f", posMap.Get(entity).Y)
	}
	if attMap.Get(entity).Pitch != 0 || attMap.Get(entity).Roll != 0 {
		t.Error("nil field should zero the tilt")
	}
}

func TestDriftSystem_ClosedPathAroundAnchor(t *testing.T) {
	world := ecs.NewWorld()
	drift := NewDriftSystem(world)

	mapper := ecs.NewMap4[
		components.Position,
		components.Attitude,
		components.Drift,
		components.Visual,
	](world)
	pos := components.Position{}
	att := components.Attitude{}
	d := components.Drift{AnchorX: 10, AnchorZ: -4, Radius: 3, Speed: 0.5, Phase: 1.0}
	vis := components.Visual{Ready: true}
	entity := mapper.NewEntity(&pos, &att, &d, &vis)

	posMap := ecs.NewMap1[components.Position](world)

	for _, tick := range []float32{0, 1.5, 7.25, 100} {
		drift.Update(tick)
		p := posMap.Get(entity)
		dx := float64(p.X - 10)
		dz := float64(p.Z - (-4))
		dist := math.Sqrt(dx*dx + dz*dz)
		if math.Abs(dist-3) > 1e-5 {
			t.Errorf("t=%f: actor %f from anchor, want radius 3", tick, dist)
		}
	}
}

func TestSimClock_MonotonicAdvance(t *testing.T) {
	var clock SimClock
	if clock.Now() != 0 {
		t.Errorf("fresh clock reads %f, want 0", clock.Now())
	}
	for i := 0; i < 60; i++ {
		clock.Advance(1.0 / 60.0)
	}
	if math.Abs(float64(clock.Now()-1)) > 1e-5 {
		t.Errorf("clock after 60 ticks of 1/60 = %f, want 1", clock.Now())
	}
}
