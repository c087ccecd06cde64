package systems

// Mode classifies the viewpoint relative to the waterline at altitude 0.
type Mode int

const (
	ModeAbove Mode = iota
	ModeBelow
)

func (m Mode) String() string {
	if m == ModeBelow {
		return "below"
	}
	return "above"
}

// AudioSink is the routing surface the depth machine toggles on transitions.
// The raylib implementation lives in the audio package; tests use a fake.
type AudioSink interface {
	// PlaySubmersionCue seeks the one-shot cue to its start and plays it.
	PlaySubmersionCue()
	// StopSubmersionCue stops and resets the one-shot cue.
	StopSubmersionCue()
	MuteSurfaceLoop(muted bool)
	MuteUnderwaterLoop(muted bool)
}

// DepthState derives the scene mode from camera altitude and owns the depth
// progress metric. Entry side effects fire only on the frame the mode flips;
// the previous mode is tracked explicitly rather than inferred from audio
// state.
type DepthState struct {
	mode     Mode
	progress float32
	maxDepth float32
	audio    AudioSink

	// OnTransition, if set, observes mode edges (telemetry hook).
	OnTransition func(from, to Mode)
}

// NewDepthState creates the machine in ABOVE mode. maxDepth is the positive
// depth at which progress reads 100.
func NewDepthState(maxDepth float32, audio AudioSink) *DepthState {
	return &DepthState{mode: ModeAbove, maxDepth: maxDepth, audio: audio}
}

// Update evaluates the mode for the given altitude, firing entry effects on
// transition and recomputing progress while below. Called once per tick.
func (d *DepthState) Update(altitude float32) {
	next := ModeAbove
	if altitude <= 0 {
		next = ModeBelow
	}

	if next != d.mode {
		prev := d.mode
		d.mode = next
		d.routeAudio(next)
		if d.OnTransition != nil {
			d.OnTransition(prev, next)
		}
	}

	d.RecomputeProgress(altitude)
}

// RecomputeProgress refreshes the progress metric from altitude. Only active
// while below the waterline: above it the value stays frozen, recording how
// far the last descent reached rather than the current depth. The dive
// controller calls this on every animation step to keep progress live.
func (d *DepthState) RecomputeProgress(altitude float32) {
	if altitude > 0 {
		return
	}
	d.progress = altitude / -d.maxDepth * 100
}

// Mode returns the current scene mode.
func (d *DepthState) Mode() Mode {
	return d.mode
}

// Progress returns the depth progress metric. Nominally 0..100; the core does
// not clamp, the UI clamps for display.
func (d *DepthState) Progress() float32 {
	return d.progress
}

func (d *DepthState) routeAudio(to Mode) {
	if d.audio == nil {
		return
	}
	if to == ModeBelow {
		d.audio.PlaySubmersionCue()
		d.audio.MuteUnderwaterLoop(false)
		d.audio.MuteSurfaceLoop(true)
	} else {
		d.audio.StopSubmersionCue()
		d.audio.MuteUnderwaterLoop(true)
		d.audio.MuteSurfaceLoop(false)
	}
}
