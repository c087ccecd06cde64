package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD needs for one frame. The UI only reads
// these values; it never writes back into the scene.
type HUDData struct {
	Mode         string
	Altitude     float32
	Progress     float32 // raw metric, unclamped
	Ready        bool
	DiveActive   bool
	Tick         int32
	FPS          int32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("Swell", 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Altitude: %+.2f  Mode: %s", data.Altitude, data.Mode),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d  FPS: %d", data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 80, 20, rl.Yellow)
	}

	// Depth progress, clamped to the display range here only.
	display := data.Progress
	if display < 0 {
		display = 0
	}
	if display > 100 {
		display = 100
	}
	barY := float32(data.ScreenHeight - 40)
	gui.ProgressBar(
		rl.NewRectangle(10, barY, 240, 20),
		"", fmt.Sprintf("%.0f%%", display),
		display, 0, 100,
	)
	rl.DrawText("DEPTH", 10, int32(barY)-18, 14, rl.LightGray)

	if data.Ready {
		rl.DrawText("READY", 270, int32(barY)+2, 18, rl.Green)
	} else if data.DiveActive {
		rl.DrawText("DIVING...", 270, int32(barY)+2, 18, rl.SkyBlue)
	}
}
