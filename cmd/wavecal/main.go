package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/swell/config"
	"github.com/pthm-cable/swell/wave"
)

// formatDuration formats a duration as h/m/s for progress output.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// Profile summarizes the sampled surface: mean level, RMS about the mean,
// and peak amplitude above the mean.
type Profile struct {
	Level     float64
	RMS       float64
	Amplitude float64
}

// sampleProfile evaluates the field over a spatial grid and a set of time
// samples covering one motion period.
func sampleProfile(f *wave.Field, extent float64, gridN, timeN int) Profile {
	var sum, count float64
	heights := make([]float64, 0, gridN*gridN*timeN)

	for ti := 0; ti < timeN; ti++ {
		t := float32(float64(ti) / float64(timeN) * 2.0 * math.Pi)
		for xi := 0; xi < gridN; xi++ {
			for zi := 0; zi < gridN; zi++ {
				x := float32((float64(xi)/float64(gridN-1) - 0.5) * extent)
				z := float32((float64(zi)/float64(gridN-1) - 0.5) * extent)
				h := float64(f.Height(x, z, t))
				heights = append(heights, h)
				sum += h
				count++
			}
		}
	}

	mean := sum / count
	var sq, peak float64
	for _, h := range heights {
		d := h - mean
		sq += d * d
		if d > peak {
			peak = d
		}
	}

	return Profile{
		Level:     mean,
		RMS:       math.Sqrt(sq / count),
		Amplitude: peak,
	}
}

// Evaluator scores a raw parameter vector against the target profile.
type Evaluator struct {
	params  *ParamVector
	base    *config.Config
	target  Profile
	extent  float64
	gridN   int
	timeN   int
	lastErr Profile // residuals of the last evaluation, for progress output
}

// Evaluate builds a field from the candidate parameters and returns the
// weighted squared error against the target profile. Invalid parameter sets
// score a large penalty instead of aborting the run.
func (e *Evaluator) Evaluate(raw []float64) float64 {
	clamped := e.params.Clamp(raw)

	p := wave.Params{
		BigFreqX:       float32(clamped[0]),
		BigFreqZ:       float32(clamped[1]),
		BigElevation:   float32(clamped[2]),
		BigSpeed:       float32(e.base.Wave.BigSpeed),
		SmallFreq:      float32(clamped[3]),
		SmallElevation: float32(clamped[4]),
		SmallSpeed:     float32(e.base.Wave.SmallSpeed),
		Iterations:     e.base.Wave.Iterations,
		VerticalBias:   float32(clamped[5]),
		GradientStep:   float32(e.base.Wave.GradientStep),
	}

	f, err := wave.New(p)
	if err != nil {
		return 1e9
	}

	got := sampleProfile(f, e.extent, e.gridN, e.timeN)
	e.lastErr = Profile{
		Level:     got.Level - e.target.Level,
		RMS:       got.RMS - e.target.RMS,
		Amplitude: got.Amplitude - e.target.Amplitude,
	}

	// Amplitude and RMS carry equal weight; the level term keeps the mean
	// surface from wandering away from the waterline.
	return e.lastErr.Amplitude*e.lastErr.Amplitude +
		e.lastErr.RMS*e.lastErr.RMS +
		2.0*e.lastErr.Level*e.lastErr.Level
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outputDir := flag.String("output", "", "Output directory for results")
	targetAmplitude := flag.Float64("target-amplitude", 0.2, "Target peak crest height above the mean level")
	targetRMS := flag.Float64("target-rms", 0.08, "Target RMS height about the mean level")
	targetLevel := flag.Float64("target-level", -0.3, "Target mean surface level")
	maxEvals := flag.Int("max-evals", 400, "Maximum number of evaluations")
	extent := flag.Float64("extent", 40.0, "Side length of the sampled surface patch")
	gridN := flag.Int("grid", 33, "Grid samples per side")
	timeN := flag.Int("time-samples", 8, "Time samples across one period")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector(baseCfg)
	evaluator := &Evaluator{
		params: params,
		base:   baseCfg,
		target: Profile{
			Level:     *targetLevel,
			RMS:       *targetRMS,
			Amplitude: *targetAmplitude,
		},
		extent: *extent,
		gridN:  *gridN,
		timeN:  *timeN,
	}

	initX := params.Normalize(params.DefaultVector())

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(params.Denormalize(x))
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	method := &optimize.NelderMead{}

	// Open log file
	logPath := filepath.Join(*outputDir, "wavecal_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "cost", "err_amplitude", "err_rms", "err_level"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	evalCount := 0
	bestCost := math.Inf(1)
	var bestParams []float64
	startTime := time.Now()

	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		cost := originalFunc(x)
		evalCount++

		clamped := params.Clamp(params.Denormalize(x))
		if cost < bestCost {
			bestCost = cost
			bestParams = make([]float64, len(clamped))
			copy(bestParams, clamped)
		}

		row := []string{
			strconv.Itoa(evalCount),
			fmt.Sprintf("%.8f", cost),
			fmt.Sprintf("%.6f", evaluator.lastErr.Amplitude),
			fmt.Sprintf("%.6f", evaluator.lastErr.RMS),
			fmt.Sprintf("%.6f", evaluator.lastErr.Level),
		}
		for _, v := range clamped {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)
		logWriter.Flush()

		if evalCount%25 == 0 || evalCount == 1 {
			elapsed := time.Since(startTime)
			fmt.Printf("Eval %d/%d: cost=%.6f (best=%.6f) | elapsed: %s\n",
				evalCount, *maxEvals, cost, bestCost, formatDuration(elapsed))
		}

		return cost
	}

	fmt.Printf("Calibrating %d parameters against amplitude=%.3f rms=%.3f level=%.3f, max_evals=%d\n",
		params.Dim(), *targetAmplitude, *targetRMS, *targetLevel, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("calibration ended: %v", err)
	}

	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nCalibration complete after %d evaluations in %s\n",
		evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best cost: %.8f\n", bestCost)

	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Name, bestParams[i])
	}

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "calibrated_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write calibrated config: %v", err)
	} else {
		fmt.Printf("\nCalibrated config saved to: %s\n", configOutPath)
	}
}
