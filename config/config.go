// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Ocean     OceanConfig     `yaml:"ocean"`
	Wave      WaveConfig      `yaml:"wave"`
	Surface   SurfaceConfig   `yaml:"surface"`
	Dive      DiveConfig      `yaml:"dive"`
	Audio     AudioConfig     `yaml:"audio"`
	Sky       SkyConfig       `yaml:"sky"`
	Actors    []ActorConfig   `yaml:"actors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// OceanConfig holds the surface mesh and shader settings.
type OceanConfig struct {
	MeshSize     float64 `yaml:"mesh_size"`     // side length of the surface plane, world units
	Subdivisions int     `yaml:"subdivisions"`  // plane tessellation per side
	VertexShader string  `yaml:"vertex_shader"` // path to the GPU twin of the wave formula
	FragShader   string  `yaml:"frag_shader"`
}

// WaveConfig holds the wave band parameters shared by the CPU field and the
// ocean shader uniforms.
type WaveConfig struct {
	BigFreqX       float64 `yaml:"big_freq_x"`
	BigFreqZ       float64 `yaml:"big_freq_z"`
	BigElevation   float64 `yaml:"big_elevation"`
	BigSpeed       float64 `yaml:"big_speed"`
	SmallFreq      float64 `yaml:"small_freq"`
	SmallElevation float64 `yaml:"small_elevation"`
	SmallSpeed     float64 `yaml:"small_speed"`
	Iterations     int     `yaml:"iterations"`
	VerticalBias   float64 `yaml:"vertical_bias"`
	GradientStep   float64 `yaml:"gradient_step"`
}

// SurfaceConfig holds actor placement parameters.
type SurfaceConfig struct {
	TiltGain float64 `yaml:"tilt_gain"` // visual exaggeration factor, not physical
}

// DiveConfig holds dive animation and depth parameters.
type DiveConfig struct {
	Duration    float64 `yaml:"duration"`     // seconds
	Easing      string  `yaml:"easing"`       // linear | ease-in | ease-out | ease-in-out
	TargetDepth float64 `yaml:"target_depth"` // altitude the dive key animates to (negative)
	MaxDepth    float64 `yaml:"max_depth"`    // progress reaches 100 at altitude -max_depth
}

// AudioConfig holds the three playback sources the depth router toggles.
type AudioConfig struct {
	SubmersionCue  string  `yaml:"submersion_cue"`
	SurfaceLoop    string  `yaml:"surface_loop"`
	UnderwaterLoop string  `yaml:"underwater_loop"`
	Volume         float64 `yaml:"volume"`
}

// SkyConfig holds the sky dome settings.
type SkyConfig struct {
	Texture string  `yaml:"texture"`
	Radius  float64 `yaml:"radius"`
}

// ActorConfig describes one floating actor: its model and drift path.
type ActorConfig struct {
	Name        string  `yaml:"name"`
	Model       string  `yaml:"model"`
	Scale       float64 `yaml:"scale"`
	AnchorX     float64 `yaml:"anchor_x"`
	AnchorZ     float64 `yaml:"anchor_z"`
	DriftRadius float64 `yaml:"drift_radius"`
	DriftSpeed  float64 `yaml:"drift_speed"`
	DriftPhase  float64 `yaml:"drift_phase"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
	PerfWindow  int     `yaml:"perf_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations that would put the scene in an
// unrepresentable state. Per-field rules mirror the wave and dive packages:
// values that are non-finite, or negative where a magnitude is expected, are
// errors rather than silently clamped.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive")
	}
	if c.Wave.Iterations < 1 {
		return fmt.Errorf("config: wave.iterations must be >= 1, got %d", c.Wave.Iterations)
	}
	nonNegative := []struct {
		name string
		val  float64
	}{
		{"wave.big_freq_x", c.Wave.BigFreqX},
		{"wave.big_freq_z", c.Wave.BigFreqZ},
		{"wave.big_elevation", c.Wave.BigElevation},
		{"wave.small_freq", c.Wave.SmallFreq},
		{"wave.small_elevation", c.Wave.SmallElevation},
		{"surface.tilt_gain", c.Surface.TiltGain},
	}
	for _, f := range nonNegative {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) || f.val < 0 {
			return fmt.Errorf("config: %s must be finite and non-negative, got %f", f.name, f.val)
		}
	}
	finiteOnly := []struct {
		name string
		val  float64
	}{
		{"wave.big_speed", c.Wave.BigSpeed},
		{"wave.small_speed", c.Wave.SmallSpeed},
		{"wave.vertical_bias", c.Wave.VerticalBias},
		{"dive.target_depth", c.Dive.TargetDepth},
	}
	for _, f := range finiteOnly {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("config: %s must be finite, got %f", f.name, f.val)
		}
	}
	if c.Wave.GradientStep <= 0 {
		return fmt.Errorf("config: wave.gradient_step must be positive, got %f", c.Wave.GradientStep)
	}
	if c.Dive.Duration <= 0 {
		return fmt.Errorf("config: dive.duration must be positive, got %f", c.Dive.Duration)
	}
	if c.Dive.MaxDepth <= 0 {
		return fmt.Errorf("config: dive.max_depth must be positive, got %f", c.Dive.MaxDepth)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
