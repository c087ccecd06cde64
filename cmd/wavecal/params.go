// Package main provides offline calibration of wave parameters against a
// target surface profile.
package main

import (
	"github.com/pthm-cable/swell/config"
)

// ParamSpec defines a single calibrated parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all calibrated parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of calibrated parameters. The big
// and small speeds are locked: they shape motion over time, not the height
// profile the calibration targets.
func NewParamVector(base *config.Config) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "big_freq_x", Path: "wave.big_freq_x", Min: 0.05, Max: 4.0, Default: base.Wave.BigFreqX},
			{Name: "big_freq_z", Path: "wave.big_freq_z", Min: 0.05, Max: 8.0, Default: base.Wave.BigFreqZ},
			{Name: "big_elevation", Path: "wave.big_elevation", Min: 0.0, Max: 2.0, Default: base.Wave.BigElevation},
			{Name: "small_freq", Path: "wave.small_freq", Min: 0.1, Max: 12.0, Default: base.Wave.SmallFreq},
			{Name: "small_elevation", Path: "wave.small_elevation", Min: 0.0, Max: 1.0, Default: base.Wave.SmallElevation},
			{Name: "vertical_bias", Path: "wave.vertical_bias", Min: -2.0, Max: 2.0, Default: base.Wave.VerticalBias},
		},
	}
}

// Dim returns the number of calibrated parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default raw values.
func (pv *ParamVector) DefaultVector() []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Default
	}
	return out
}

// Normalize maps raw values into [0, 1] per spec bounds.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize maps [0, 1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + x[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp restricts raw values to spec bounds. Nelder-Mead is unconstrained;
// every evaluation goes through here before touching the field.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		out[i] = v
	}
	return out
}

// ApplyToConfig writes raw parameter values into the config.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	for i, spec := range pv.Specs {
		switch spec.Path {
		case "wave.big_freq_x":
			cfg.Wave.BigFreqX = raw[i]
		case "wave.big_freq_z":
			cfg.Wave.BigFreqZ = raw[i]
		case "wave.big_elevation":
			cfg.Wave.BigElevation = raw[i]
		case "wave.small_freq":
			cfg.Wave.SmallFreq = raw[i]
		case "wave.small_elevation":
			cfg.Wave.SmallElevation = raw[i]
		case "wave.vertical_bias":
			cfg.Wave.VerticalBias = raw[i]
		}
	}
}
