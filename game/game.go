package game

import (
	"log/slog"

	"github.com/pthm-cable/galaxy/camera"
	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/renderer"
	"github.com/pthm-cable/galaxy/telemetry"
	"github.com/pthm-cable/galaxy/ui"
)

// Options configures game construction.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StarCount      int // 0 = use config
	CloudCount     int // 0 = use config
	SeedOffset     int // 0 = use config
}

// Game wires the simulation core to its collaborators: renderer, camera, UI
// panel, and telemetry. The core itself lives in the galaxy package and
// knows nothing about any of them.
type Game struct {
	sim *galaxy.Simulation
	cam *camera.Orbit

	rend   *renderer.GalaxyRenderer
	nebula *renderer.NebulaBackground
	panel  *ui.ControlsPanel

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	frame    int32
	paused   bool
	headless bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. In headless mode no raylib
// resources are touched.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	starCount := cfg.Galaxy.StarCount
	if opts.StarCount > 0 {
		starCount = opts.StarCount
	}
	cloudCount := cfg.Galaxy.CloudCount
	if opts.CloudCount > 0 {
		cloudCount = opts.CloudCount
	}
	seedOffset := cfg.Galaxy.SeedOffset
	if opts.SeedOffset != 0 {
		seedOffset = opts.SeedOffset
	}

	params := galaxy.GenerationParams{
		Radius:          float32(cfg.Galaxy.Radius),
		Thickness:       float32(cfg.Galaxy.Thickness),
		SpiralTightness: float32(cfg.Galaxy.SpiralTightness),
		ArmCount:        cfg.Galaxy.ArmCount,
		ArmWidth:        float32(cfg.Galaxy.ArmWidth),
		Randomness:      float32(cfg.Galaxy.Randomness),
		RotationSpeed:   float32(cfg.Galaxy.RotationSpeed),
		SeedOffset:      seedOffset,
	}
	tint := galaxy.Vec3{
		X: float32(cfg.Render.CloudTint[0]),
		Y: float32(cfg.Render.CloudTint[1]),
		Z: float32(cfg.Render.CloudTint[2]),
	}

	// Config is validated at load, so construction cannot fail here.
	sim, err := galaxy.NewSimulation(starCount, cloudCount, params, tint)
	if err != nil {
		panic("game: config validated but simulation rejected it: " + err.Error())
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		output = nil
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g := &Game{
		sim:          sim,
		collector:    telemetry.NewCollector(statsWindow, opts.LogStats),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:       output,
		headless:     opts.Headless,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	if !opts.Headless {
		g.cam = camera.New(float32(cfg.Galaxy.Radius) * 2)
		g.rend = renderer.NewGalaxyRenderer(cfg)
		g.nebula = renderer.NewNebulaBackground(cfg)
		g.panel = ui.NewControlsPanel(20, 20, 240, ui.Values{
			Radius:          params.Radius,
			Thickness:       params.Thickness,
			SpiralTightness: params.SpiralTightness,
			ArmCount:        params.ArmCount,
			ArmWidth:        params.ArmWidth,
			Randomness:      params.Randomness,
			RotationSpeed:   params.RotationSpeed,
			ForceEnabled:    true,
			ForceStrength:   float32(cfg.Force.Strength),
			ForceRadius:     float32(cfg.Force.Radius),
			StarThousands:   starCount / 1000,
		})
	}

	return g
}

// Frame returns the current frame counter.
func (g *Game) Frame() int32 {
	return g.frame
}

// Simulation exposes the core for the bench tool and tests.
func (g *Game) Simulation() *galaxy.Simulation {
	return g.sim
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.sim.Close()
	g.output.Close()
	if g.nebula != nil {
		g.nebula.Unload()
	}
}
