package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/galaxy"
)

// handleInput processes keyboard, mouse orbit, and force-field input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	// Force a full regeneration (useful after hand-editing the config).
	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.Invalidate()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.logPerfStats()
	}

	// Orbit: right-drag rotates, wheel zooms.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.cam.Rotate(delta.X*0.005, -delta.Y*0.005)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(wheel)
	}

	g.updateForce()
}

// updateForce projects the mouse onto the galactic plane and feeds the
// repulsion field. The force is active only while the left button is held
// (and the panel hasn't disabled it).
func (g *Game) updateForce() {
	v := g.panel.Values
	force := galaxy.ForceState{
		Strength: v.ForceStrength,
		Radius:   v.ForceRadius,
	}

	if v.ForceEnabled && rl.IsMouseButtonDown(rl.MouseLeftButton) && !g.mouseOverPanel() {
		ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.rlCamera())
		if origin, ok := intersectGroundPlane(ray); ok {
			force.Origin = origin
			force.Active = true
		}
	}

	g.sim.SetForce(force)
}

// intersectGroundPlane returns where a ray crosses the y=0 plane. Rays
// parallel to the plane (or pointing away from it) miss.
func intersectGroundPlane(ray rl.Ray) (galaxy.Vec3, bool) {
	if ray.Direction.Y > -1e-6 && ray.Direction.Y < 1e-6 {
		return galaxy.Vec3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t < 0 {
		return galaxy.Vec3{}, false
	}
	return galaxy.Vec3{
		X: ray.Position.X + ray.Direction.X*t,
		Y: 0,
		Z: ray.Position.Z + ray.Direction.Z*t,
	}, true
}

// mouseOverPanel reports whether the cursor sits on the controls panel, so
// slider drags don't also fire the force field.
func (g *Game) mouseOverPanel() bool {
	if !g.panel.IsVisible() {
		return false
	}
	pos := rl.GetMousePosition()
	return pos.X < 280 && pos.Y < 560
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
}
