package telemetry

import "time"

// Phase names for the simulation frame.
const (
	PhaseGenerate     = "generate"
	PhaseUpdateStars  = "update_stars"
	PhaseUpdateClouds = "update_clouds"
	PhaseDraw         = "draw"
	PhaseTelemetry    = "telemetry"
)

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new simulation frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// Total returns the average frame duration over the window.
func (p *PerfCollector) Total() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < p.sampleCount; i++ {
		sum += p.samples[i].FrameDuration
	}
	return sum / time.Duration(p.sampleCount)
}

// Avg returns the average duration of a named phase over the window.
func (p *PerfCollector) Avg(phase string) time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < p.sampleCount; i++ {
		sum += p.samples[i].Phases[phase]
	}
	return sum / time.Duration(p.sampleCount)
}

// Phases returns the phase names in their frame order.
func (p *PerfCollector) Phases() []string {
	return []string{PhaseGenerate, PhaseUpdateStars, PhaseUpdateClouds, PhaseDraw, PhaseTelemetry}
}

// ToCSV flattens the rolling window into one CSV record.
func (p *PerfCollector) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		FrameAvgUS:     p.Total().Microseconds(),
		GenerateUS:     p.Avg(PhaseGenerate).Microseconds(),
		UpdateStarsUS:  p.Avg(PhaseUpdateStars).Microseconds(),
		UpdateCloudsUS: p.Avg(PhaseUpdateClouds).Microseconds(),
		DrawUS:         p.Avg(PhaseDraw).Microseconds(),
		TelemetryUS:    p.Avg(PhaseTelemetry).Microseconds(),
	}
}

// PerfStatsCSV is the flattened per-window perf record.
type PerfStatsCSV struct {
	WindowEnd      int32 `csv:"window_end_frame"`
	FrameAvgUS     int64 `csv:"frame_avg_us"`
	GenerateUS     int64 `csv:"generate_us"`
	UpdateStarsUS  int64 `csv:"update_stars_us"`
	UpdateCloudsUS int64 `csv:"update_clouds_us"`
	DrawUS         int64 `csv:"draw_us"`
	TelemetryUS    int64 `csv:"telemetry_us"`
}
