package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Free navigation speeds, world units per second.
const (
	moveSpeed     = 10.0
	climbSpeed    = 6.0
	lookSensitive = 0.003
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Tuning panel toggle
	if rl.IsKeyPressed(rl.KeyT) {
		g.tuning.Visible = !g.tuning.Visible
	}

	// Start the descent
	if rl.IsKeyPressed(rl.KeyEnter) {
		g.StartDive()
	}

	g.handleCameraInput()
}

// handleCameraInput applies free navigation. Horizontal movement is always
// available; the vertical axis goes through the altitude grant, which the
// dive revokes while it owns the camera.
func (g *Game) handleCameraInput() {
	dt := rl.GetFrameTime()

	var forward, strafe float32
	if rl.IsKeyDown(rl.KeyW) {
		forward += moveSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward -= moveSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe += moveSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe -= moveSpeed * dt
	}
	if forward != 0 || strafe != 0 {
		g.rig.Move(forward, strafe)
	}

	// Reclaim the altitude once the dive has let go.
	if g.navGrant.Revoked() && !g.dive.Active() {
		g.navGrant = g.rig.ClaimAltitude()
	}

	var climb float32
	if rl.IsKeyDown(rl.KeyE) {
		climb += climbSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyQ) {
		climb -= climbSpeed * dt
	}
	if climb != 0 {
		g.navGrant.SetAltitude(g.rig.Altitude() + climb)
	}

	// Mouse look while right button held
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.rig.Look(delta.X*lookSensitive, -delta.Y*lookSensitive)
	}
}

// handleResize propagates window resizes to the screen-space renderers.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.underwater != nil {
		g.underwater.Resize(int32(w), int32(h))
	}
}
