package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/swell/assets"
	"github.com/pthm-cable/swell/audio"
	"github.com/pthm-cable/swell/camera"
	"github.com/pthm-cable/swell/components"
	"github.com/pthm-cable/swell/config"
	"github.com/pthm-cable/swell/renderer"
	"github.com/pthm-cable/swell/systems"
	"github.com/pthm-cable/swell/telemetry"
	"github.com/pthm-cable/swell/ui"
	"github.com/pthm-cable/swell/wave"
)

// DT is the simulation step in seconds. One tick per display frame.
const DT = 1.0 / 60.0

// Options configures game construction.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game owns the scene context: the ECS world of tracked actors, the wave
// field, the camera rig, and every collaborator. Constructed once in main and
// torn down with Unload; there is no package-level scene state.
type Game struct {
	world *ecs.World
	cfg   *config.Config

	actorMapper *ecs.Map4[
		components.Position,
		components.Attitude,
		components.Drift,
		components.Visual,
	]
	actorFilter *ecs.Filter2[components.Position, components.Visual]
	posMap      *ecs.Map1[components.Position]
	attMap      *ecs.Map1[components.Attitude]
	visMap      *ecs.Map1[components.Visual]

	// Core systems, executed in fixed order each tick
	clock   systems.SimClock
	field   *wave.Field
	drift   *systems.DriftSystem
	surface *systems.SurfaceSync
	depth   *systems.DepthState
	dive    *systems.Dive

	rig      *camera.Rig
	navGrant *camera.Grant

	// Collaborators; all nil in headless mode and guarded everywhere
	loader     *assets.Loader
	router     *audio.Router
	ocean      *renderer.Ocean
	sky        *renderer.Sky
	underwater *renderer.Underwater
	hud        *ui.HUD
	tuning     *ui.TuningPanel

	skySlot    int
	skyApplied bool

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfStats

	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. In graphical mode the raylib
// window must already exist.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:          world,
		cfg:            cfg,
		headless:       opts.Headless,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
		actorMapper: ecs.NewMap4[
			components.Position,
			components.Attitude,
			components.Drift,
			components.Visual,
		](world),
		actorFilter: ecs.NewFilter2[components.Position, components.Visual](world),
		posMap:      ecs.NewMap1[components.Position](world),
		attMap:      ecs.NewMap1[components.Attitude](world),
		visMap:      ecs.NewMap1[components.Visual](world),
	}

	// Wave field from validated config
	field, err := wave.New(waveParamsFromConfig(cfg))
	if err != nil {
		// Config was validated at load; this is a programming error.
		panic("game: invalid wave parameters after config validation: " + err.Error())
	}
	g.field = field

	// Camera starts above the surface looking toward the horizon
	g.rig = camera.New(0, 5, 24)
	g.navGrant = g.rig.ClaimAltitude()

	// Collaborators (graphical mode only)
	if !opts.Headless {
		g.loader = assets.NewLoader(2)
		g.router = audio.NewRouter(
			cfg.Audio.SubmersionCue,
			cfg.Audio.SurfaceLoop,
			cfg.Audio.UnderwaterLoop,
			float32(cfg.Audio.Volume),
		)
		g.ocean = renderer.NewOcean(
			float32(cfg.Ocean.MeshSize),
			int32(cfg.Ocean.Subdivisions),
			cfg.Ocean.VertexShader,
			cfg.Ocean.FragShader,
		)
		g.sky = renderer.NewSky(float32(cfg.Sky.Radius))
		g.underwater = renderer.NewUnderwater(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.hud = ui.NewHUD()
		g.tuning = ui.NewTuningPanel()
		g.skySlot = g.loader.QueueTexture(cfg.Sky.Texture)
	}

	// Depth machine routes through the audio sink; nil sink is fine headless.
	var sink systems.AudioSink
	if g.router != nil {
		sink = g.router
	}
	g.depth = systems.NewDepthState(float32(cfg.Dive.MaxDepth), sink)
	g.dive = systems.NewDive(g.rig, g.depth, float32(cfg.Dive.Duration), cfg.Dive.Easing)

	g.drift = systems.NewDriftSystem(world)
	g.surface = systems.NewSurfaceSync(world, float32(cfg.Surface.TiltGain))

	// Telemetry
	windowTicks := int32(opts.StatsWindowSec / DT)
	g.collector = telemetry.NewCollector(windowTicks, opts.LogStats)
	g.perf = telemetry.NewPerfStats(cfg.Telemetry.PerfWindow)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	g.depth.OnTransition = g.onModeTransition

	g.spawnActors()

	return g
}

// onModeTransition observes depth edges for logging and telemetry.
func (g *Game) onModeTransition(from, to systems.Mode) {
	slog.Info("depth mode transition",
		"from", from.String(),
		"to", to.String(),
		"altitude", g.rig.Altitude(),
		"tick", g.tick,
	)
	if to == systems.ModeBelow {
		g.collector.RecordSubmersion()
	} else {
		g.collector.RecordSurfacing()
	}
}

// StartDive begins the configured descent. Safe to call mid-flight: the new
// animation supersedes the old one.
func (g *Game) StartDive() {
	if err := g.dive.Start(float32(g.cfg.Dive.TargetDepth)); err != nil {
		slog.Warn("dive rejected", "error", err)
		return
	}
	g.collector.RecordDiveStarted()
	slog.Info("dive started",
		"target", g.cfg.Dive.TargetDepth,
		"duration", g.cfg.Dive.Duration,
		"from", g.rig.Altitude(),
	)
}

// ApplyWaveParams validates and applies a live parameter update (tuning
// panel). On rejection the prior parameters stay in effect.
func (g *Game) ApplyWaveParams(p wave.Params) {
	if err := g.field.SetParams(p); err != nil {
		slog.Warn("wave parameter update rejected", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// waveParamsFromConfig maps the config section onto wave.Params.
func waveParamsFromConfig(cfg *config.Config) wave.Params {
	return wave.Params{
		BigFreqX:       float32(cfg.Wave.BigFreqX),
		BigFreqZ:       float32(cfg.Wave.BigFreqZ),
		BigElevation:   float32(cfg.Wave.BigElevation),
		BigSpeed:       float32(cfg.Wave.BigSpeed),
		SmallFreq:      float32(cfg.Wave.SmallFreq),
		SmallElevation: float32(cfg.Wave.SmallElevation),
		SmallSpeed:     float32(cfg.Wave.SmallSpeed),
		Iterations:     cfg.Wave.Iterations,
		VerticalBias:   float32(cfg.Wave.VerticalBias),
		GradientStep:   float32(cfg.Wave.GradientStep),
	}
}
