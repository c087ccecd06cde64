package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Underwater draws the submerged overlay: a blue tint that deepens with the
// descent progress. Drawn in screen space after the 3D pass.
type Underwater struct {
	screenW, screenH int32
}

// NewUnderwater creates the overlay for the given screen size.
func NewUnderwater(screenW, screenH int32) *Underwater {
	return &Underwater{screenW: screenW, screenH: screenH}
}

// Resize updates the overlay dimensions.
func (u *Underwater) Resize(w, h int32) {
	u.screenW = w
	u.screenH = h
}

// Draw tints the frame for the given progress (0..100, clamped here for
// display only; the metric itself is unclamped upstream).
func (u *Underwater) Draw(progress float32) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	// 35% tint at the surface deepening to 75% at full depth.
	alpha := uint8(90 + progress/100*100)
	tint := rl.Color{R: 8, G: 40, B: 78, A: alpha}
	rl.DrawRectangle(0, 0, u.screenW, u.screenH, tint)
}
