package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorBasic(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 3; i++ {
		p.StartFrame()
		p.StartPhase(PhaseUpdateStars)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseUpdateClouds)
		time.Sleep(time.Millisecond)
		p.EndFrame()
	}

	if p.Total() < 2*time.Millisecond {
		t.Errorf("average frame duration %v, want >= 2ms", p.Total())
	}
	if p.Avg(PhaseUpdateStars) < time.Millisecond {
		t.Errorf("update_stars avg %v, want >= 1ms", p.Avg(PhaseUpdateStars))
	}
	if p.Avg(PhaseGenerate) != 0 {
		t.Errorf("generate avg %v, want 0 for unrecorded phase", p.Avg(PhaseGenerate))
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	p := NewPerfCollector(2)

	// Fill beyond the window; old samples must be overwritten, not averaged in.
	for i := 0; i < 5; i++ {
		p.StartFrame()
		p.EndFrame()
	}

	if p.sampleCount != 2 {
		t.Errorf("sample count = %d, want window size 2", p.sampleCount)
	}
}

func TestPerfCollectorEmptyWindow(t *testing.T) {
	p := NewPerfCollector(10)

	if p.Total() != 0 || p.Avg(PhaseDraw) != 0 {
		t.Error("empty collector should report zero durations")
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(0.001, false)

	c.RecordFrame(1, 2*time.Millisecond, 100, 50, false)
	c.RecordFrame(2, 4*time.Millisecond, 100, 50, true)
	c.RecordRegeneration()

	stats := c.EndWindow()

	if stats.Frames != 2 {
		t.Errorf("frames = %d, want 2", stats.Frames)
	}
	if stats.Regenerations != 1 {
		t.Errorf("regenerations = %d, want 1", stats.Regenerations)
	}
	if stats.ForceFrames != 1 {
		t.Errorf("force frames = %d, want 1", stats.ForceFrames)
	}
	if stats.Stars != 100 || stats.Clouds != 50 {
		t.Errorf("population counts = (%d, %d), want (100, 50)", stats.Stars, stats.Clouds)
	}
	if stats.FrameMeanMS < 2.9 || stats.FrameMeanMS > 3.1 {
		t.Errorf("frame mean = %v ms, want ~3", stats.FrameMeanMS)
	}

	// Counters reset after the window closes.
	next := c.EndWindow()
	if next.Frames != 0 || next.Regenerations != 0 {
		t.Error("window counters not reset")
	}
}
