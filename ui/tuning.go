package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swell/wave"
)

// TuningPanel exposes the live wave parameters as sliders. The panel only
// proposes values; the game applies them through the validated update path,
// so a rejected proposal leaves the prior parameters in effect.
type TuningPanel struct {
	Visible bool

	iterations   int32
	iterEditMode bool
}

// NewTuningPanel creates the panel, initially hidden.
func NewTuningPanel() *TuningPanel {
	return &TuningPanel{}
}

// Draw renders the panel and returns the proposed parameter set along with
// whether anything changed this frame.
func (p *TuningPanel) Draw(current wave.Params) (wave.Params, bool) {
	if !p.Visible {
		return current, false
	}

	const (
		panelX = 980
		panelW = 290
		rowH   = 26
	)

	next := current
	p.iterations = int32(current.Iterations)

	gui.GroupBox(rl.NewRectangle(panelX, 40, panelW, 9*rowH+50), "Wave Tuning")

	row := func(i int) rl.Rectangle {
		return rl.NewRectangle(panelX+95, 52+float32(i)*rowH, panelW-115, 18)
	}

	next.BigFreqX = gui.SliderBar(row(0), "big freq x", "", current.BigFreqX, 0, 8)
	next.BigFreqZ = gui.SliderBar(row(1), "big freq z", "", current.BigFreqZ, 0, 8)
	next.BigElevation = gui.SliderBar(row(2), "big elev", "", current.BigElevation, 0, 2)
	next.BigSpeed = gui.SliderBar(row(3), "big speed", "", current.BigSpeed, -4, 4)
	next.SmallFreq = gui.SliderBar(row(4), "small freq", "", current.SmallFreq, 0, 12)
	next.SmallElevation = gui.SliderBar(row(5), "small elev", "", current.SmallElevation, 0, 1)
	next.SmallSpeed = gui.SliderBar(row(6), "small speed", "", current.SmallSpeed, -4, 4)
	next.VerticalBias = gui.SliderBar(row(7), "bias", "", current.VerticalBias, -2, 2)

	if gui.Spinner(row(8), "iterations", &p.iterations, 1, 32, p.iterEditMode) {
		p.iterEditMode = !p.iterEditMode
	}
	next.Iterations = int(p.iterations)

	return next, next != current
}
