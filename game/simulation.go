package game

import (
	"time"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/telemetry"
)

// step advances the simulation by one frame with per-phase timing. dt must
// already be clamped by the caller.
func (g *Game) step(dt float32) {
	start := time.Now()
	g.perf.StartFrame()

	if !g.sim.Stars.Initialized() || !g.sim.Clouds.Initialized() {
		g.perf.StartPhase(telemetry.PhaseGenerate)
		if g.sim.Generate() {
			g.collector.RecordRegeneration()
		}
	}

	g.perf.StartPhase(telemetry.PhaseUpdateStars)
	g.sim.StepStars(dt)

	g.perf.StartPhase(telemetry.PhaseUpdateClouds)
	g.sim.StepClouds(dt)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.collector.RecordFrame(g.frame, time.Since(start),
		g.sim.Stars.Count(), g.sim.Clouds.Count(), g.sim.Force().Active)
	g.flushTelemetry()
}

// flushTelemetry closes the stats window if due and writes CSV records.
func (g *Game) flushTelemetry() {
	stats, done := g.collector.MaybeEndWindow()
	if !done {
		return
	}
	if err := g.output.WriteWindow(stats); err != nil {
		Logf("telemetry write failed: %v", err)
	}
	if err := g.output.WritePerf(g.perf, stats.WindowEnd); err != nil {
		Logf("perf write failed: %v", err)
	}
}

// UpdateHeadless advances one frame at a fixed timestep without any raylib
// calls.
func (g *Game) UpdateHeadless() {
	g.step(1.0 / 60.0)
	g.perf.EndFrame()
}

func (g *Game) maxDT() float32 {
	return config.Cfg().Derived.MaxDT32
}
