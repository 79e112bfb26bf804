// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Galaxy    GalaxyConfig    `yaml:"galaxy"`
	Force     ForceConfig     `yaml:"force"`
	Render    RenderConfig    `yaml:"render"`
	Nebula    NebulaConfig    `yaml:"nebula"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds frame-pacing parameters.
type PhysicsConfig struct {
	// MaxDT caps the per-frame delta time in seconds. The spring integration
	// is explicit and undamped, so a stall frame must not feed a large dt
	// into the update pass.
	MaxDT float64 `yaml:"max_dt"`
}

// GalaxyConfig holds the structural generation parameters. These change the
// generated geometry: editing any of them at runtime regenerates both
// populations.
type GalaxyConfig struct {
	StarCount       int     `yaml:"star_count"`
	CloudCount      int     `yaml:"cloud_count"`
	Radius          float64 `yaml:"radius"`
	Thickness       float64 `yaml:"thickness"`
	SpiralTightness float64 `yaml:"spiral_tightness"`
	ArmCount        int     `yaml:"arm_count"`
	ArmWidth        float64 `yaml:"arm_width"`
	Randomness      float64 `yaml:"randomness"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	SeedOffset      int     `yaml:"seed_offset"`
}

// ForceConfig holds the mouse-driven repulsion field parameters. Cosmetic:
// edits apply on the next frame without regeneration.
type ForceConfig struct {
	Strength float64 `yaml:"strength"`
	Radius   float64 `yaml:"radius"`
}

// RenderConfig holds visual-only parameters.
type RenderConfig struct {
	StarSize   float64   `yaml:"star_size"`
	CloudSize  float64   `yaml:"cloud_size"`
	CoreColor  []float64 `yaml:"core_color"`  // star tint at the arm centerline (RGB, 0..1)
	OuterColor []float64 `yaml:"outer_color"` // star tint far off-arm (RGB, 0..1)
	CloudTint  []float64 `yaml:"cloud_tint"`  // dust cloud base color (RGB, 0..1)
}

// NebulaConfig holds background haze noise parameters.
type NebulaConfig struct {
	Seed       int64   `yaml:"seed"`
	Scale      float64 `yaml:"scale"`
	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
	Intensity  float64 `yaml:"intensity"`
	GridSize   int     `yaml:"grid_size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxDT32   float32 // Physics.MaxDT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects structurally invalid values before they can reach the
// generation kernels. The simulation setters re-check runtime edits; this
// guards the load path.
func (c *Config) validate() error {
	if c.Galaxy.ArmCount < 1 {
		return fmt.Errorf("galaxy.arm_count must be >= 1, got %d", c.Galaxy.ArmCount)
	}
	if c.Galaxy.Radius <= 0 {
		return fmt.Errorf("galaxy.radius must be > 0, got %g", c.Galaxy.Radius)
	}
	if c.Galaxy.StarCount < 0 {
		return fmt.Errorf("galaxy.star_count must be >= 0, got %d", c.Galaxy.StarCount)
	}
	if c.Galaxy.CloudCount < 0 {
		return fmt.Errorf("galaxy.cloud_count must be >= 0, got %d", c.Galaxy.CloudCount)
	}
	if c.Galaxy.Thickness < 0 || c.Galaxy.SpiralTightness < 0 ||
		c.Galaxy.ArmWidth < 0 || c.Galaxy.Randomness < 0 {
		return fmt.Errorf("galaxy thickness, spiral_tightness, arm_width and randomness must be >= 0")
	}
	if c.Physics.MaxDT <= 0 {
		return fmt.Errorf("physics.max_dt must be > 0, got %g", c.Physics.MaxDT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.MaxDT32 = float32(c.Physics.MaxDT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Color triplets default to sensible values when not specified.
	if len(c.Render.CoreColor) != 3 {
		c.Render.CoreColor = []float64{1.0, 0.42, 0.28}
	}
	if len(c.Render.OuterColor) != 3 {
		c.Render.OuterColor = []float64{0.22, 0.5, 1.0}
	}
	if len(c.Render.CloudTint) != 3 {
		c.Render.CloudTint = []float64{0.35, 0.3, 0.55}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
