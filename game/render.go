package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

// Update advances one graphical frame: input, clamped-dt simulation step,
// and UI parameter application.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	// The spring integration is explicit; a stall frame must not feed a
	// multi-second dt into the update pass.
	dt := rl.GetFrameTime()
	if maxDT := g.maxDT(); dt > maxDT {
		dt = maxDT
	}

	g.step(dt)
}

// Draw renders the frame: nebula background, both populations in 3D, then
// the UI panel and HUD.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.nebula.Draw(g.screenWidth, g.screenHeight)

	cam := g.rlCamera()
	rl.BeginMode3D(cam)
	g.rend.DrawStars(g.sim.Stars)
	g.rend.DrawClouds(g.sim.Clouds)
	rl.EndMode3D()

	before := g.panel.Values
	g.panel.Draw()
	g.applyPanelChanges(before)

	g.drawHUD()

	rl.EndDrawing()
	g.perf.EndFrame()
}

// rlCamera converts the orbit camera into a raylib Camera3D.
func (g *Game) rlCamera() rl.Camera3D {
	ex, ey, ez := g.cam.Eye()
	return rl.Camera3D{
		Position:   rl.Vector3{X: ex, Y: ey, Z: ez},
		Target:     rl.Vector3{X: g.cam.TargetX, Y: g.cam.TargetY, Z: g.cam.TargetZ},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

// applyPanelChanges routes UI edits into the simulation. Structural edits go
// through the validating setters; a rejected value is logged and the panel
// snaps back to the last valid configuration.
func (g *Game) applyPanelChanges(before ui.Values) {
	v := &g.panel.Values

	type structuralEdit struct {
		changed bool
		apply   func() error
		revert  func()
	}

	edits := []structuralEdit{
		{v.Radius != before.Radius, func() error { return g.sim.SetRadius(v.Radius) }, func() { v.Radius = before.Radius }},
		{v.Thickness != before.Thickness, func() error { return g.sim.SetThickness(v.Thickness) }, func() { v.Thickness = before.Thickness }},
		{v.SpiralTightness != before.SpiralTightness, func() error { return g.sim.SetSpiralTightness(v.SpiralTightness) }, func() { v.SpiralTightness = before.SpiralTightness }},
		{v.ArmCount != before.ArmCount, func() error { return g.sim.SetArmCount(v.ArmCount) }, func() { v.ArmCount = before.ArmCount }},
		{v.ArmWidth != before.ArmWidth, func() error { return g.sim.SetArmWidth(v.ArmWidth) }, func() { v.ArmWidth = before.ArmWidth }},
		{v.Randomness != before.Randomness, func() error { return g.sim.SetRandomness(v.Randomness) }, func() { v.Randomness = before.Randomness }},
	}

	for _, e := range edits {
		if !e.changed {
			continue
		}
		if err := e.apply(); err != nil {
			slog.Warn("rejected parameter edit", "error", err)
			e.revert()
		}
	}

	if v.RotationSpeed != before.RotationSpeed {
		g.sim.SetRotationSpeed(v.RotationSpeed)
	}

	if v.ApplyResize && v.StarThousands != g.sim.Stars.Count()/1000 {
		if err := g.sim.ResizeStars(v.StarThousands * 1000); err != nil {
			slog.Warn("rejected star count edit", "error", err)
		}
	}
}

// drawHUD renders the corner status text.
func (g *Game) drawHUD() {
	status := fmt.Sprintf("%d stars  %d clouds  %d fps",
		g.sim.Stars.Count(), g.sim.Clouds.Count(), rl.GetFPS())
	rl.DrawText(status, int32(g.screenWidth)-230, 10, 16, rl.Gray)

	if g.paused {
		rl.DrawText("PAUSED", int32(g.screenWidth/2)-40, 10, 20, rl.Yellow)
	}
}
