// Headless benchmark for the galaxy core: times the generation pass and a
// run of update passes across population sizes, and summarizes the results.
//
// Usage: go run ./cmd/bench -frames 600 -stars 200000
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/galaxy"
	"github.com/pthm-cable/galaxy/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	frames := flag.Int("frames", 600, "Update frames to run per population size")
	starsFlag := flag.Int("stars", 0, "Single star count to bench (0 = sweep)")
	outputDir := flag.String("output", "", "Output directory for CSV results")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	defer output.Close()

	sizes := []int{50000, 100000, 200000, 400000}
	if *starsFlag > 0 {
		sizes = []int{*starsFlag}
	}

	params := galaxy.GenerationParams{
		Radius:          float32(cfg.Galaxy.Radius),
		Thickness:       float32(cfg.Galaxy.Thickness),
		SpiralTightness: float32(cfg.Galaxy.SpiralTightness),
		ArmCount:        cfg.Galaxy.ArmCount,
		ArmWidth:        float32(cfg.Galaxy.ArmWidth),
		Randomness:      float32(cfg.Galaxy.Randomness),
		RotationSpeed:   float32(cfg.Galaxy.RotationSpeed),
		SeedOffset:      cfg.Galaxy.SeedOffset,
	}

	for _, n := range sizes {
		benchSize(n, n/8, params, *frames, output)
	}
}

// benchSize runs one generation plus a stretch of update frames for a
// population size and prints a timing summary.
func benchSize(stars, clouds int, params galaxy.GenerationParams, frames int, output *telemetry.OutputManager) {
	sim, err := galaxy.NewSimulation(stars, clouds, params, galaxy.Vec3{X: 0.35, Y: 0.3, Z: 0.55})
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}
	defer sim.Close()

	genStart := time.Now()
	sim.Generate()
	genTime := time.Since(genStart)

	// Radial distribution of the generated disc, as a sanity check that a
	// parameter change actually moved the geometry.
	radii := make([]float64, stars)
	for i := 0; i < stars; i++ {
		x, z := float64(sim.Stars.PosX[i]), float64(sim.Stars.PosZ[i])
		radii[i] = math.Sqrt(x*x + z*z)
	}
	rMean, rStd := stat.MeanStdDev(radii, nil)
	sort.Float64s(radii)
	rP50 := telemetry.Percentile(radii, 0.5)
	rP90 := telemetry.Percentile(radii, 0.9)

	// Keep the force on for half the run so the bench covers that branch.
	sim.SetForce(galaxy.ForceState{
		Origin:   galaxy.Vec3{X: params.Radius / 2},
		Active:   true,
		Strength: 18,
		Radius:   4,
	})

	frameTimes := make([]float64, 0, frames)
	dt := float32(1.0 / 60.0)
	for i := 0; i < frames; i++ {
		if i == frames/2 {
			sim.SetForce(galaxy.ForceState{})
		}
		start := time.Now()
		sim.Step(dt)
		frameTimes = append(frameTimes, float64(time.Since(start))/float64(time.Millisecond))
	}

	mean, std := stat.MeanStdDev(frameTimes, nil)
	_, _, p50, p90, p99 := telemetry.ComputeFrameStats(frameTimes)

	fmt.Printf("stars=%d clouds=%d  generate=%s  radius mean=%.2f std=%.2f p50=%.2f p90=%.2f\n",
		stars, clouds, genTime.Round(time.Microsecond), rMean, rStd, rP50, rP90)
	fmt.Printf("  update mean=%.3fms std=%.3f p50=%.3f p90=%.3f p99=%.3f\n",
		mean, std, p50, p90, p99)

	if err := output.WriteWindow(telemetry.WindowStats{
		WindowEnd:     int32(frames),
		Frames:        frames,
		Stars:         stars,
		Clouds:        clouds,
		Regenerations: sim.Regenerations(),
		FrameMeanMS:   mean,
		FrameStdMS:    std,
		FrameP50MS:    p50,
		FrameP90MS:    p90,
		FrameP99MS:    p99,
	}); err != nil {
		log.Printf("csv write failed: %v", err)
	}
}
