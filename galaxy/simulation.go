package galaxy

import "fmt"

// Simulation owns both populations, the shared generation parameters, and the
// external force state. All live reconfiguration goes through the setters so
// invalid structural values are rejected before they can reach a kernel, and
// so edits that change geometry invalidate both populations.
type Simulation struct {
	Stars  *Population
	Clouds *Population

	params GenerationParams
	force  ForceState
	pool   *WorkerPool

	regenerations int // completed regeneration passes, for telemetry
}

// NewSimulation validates params, allocates both populations, and returns a
// simulation ready to step. Generation runs lazily on the first Step.
func NewSimulation(starCount, cloudCount int, params GenerationParams, cloudTint Vec3) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation params: %w", err)
	}

	stars, err := NewPopulation(KindStar, starCount, Vec3{})
	if err != nil {
		return nil, fmt.Errorf("star population: %w", err)
	}
	clouds, err := NewPopulation(KindCloud, cloudCount, cloudTint)
	if err != nil {
		return nil, fmt.Errorf("cloud population: %w", err)
	}

	return &Simulation{
		Stars:  stars,
		Clouds: clouds,
		params: params,
		pool:   NewWorkerPool(),
	}, nil
}

// Generate runs placement for any uninitialized population. Returns whether
// anything regenerated. Step calls this lazily; it is exposed so callers can
// time the generation pass separately from the update pass.
func (s *Simulation) Generate() bool {
	regenerated := false
	if !s.Stars.Initialized() {
		s.Stars.Generate(&s.params, s.pool)
		regenerated = true
	}
	if !s.Clouds.Initialized() {
		s.Clouds.Generate(&s.params, s.pool)
		regenerated = true
	}
	if regenerated {
		s.regenerations++
	}
	return regenerated
}

// Step advances both populations by one frame. The two populations are
// mutually independent; each pass is internally parallel and completes before
// the next begins, which is the only barrier the kernels need.
//
// dt is in seconds. The core does not clamp it: an explicit spring with
// springK*dt approaching 1 overshoots, so the frame-pacing caller is expected
// to cap dt (see config physics.max_dt).
func (s *Simulation) Step(dt float32) {
	s.Generate()
	s.StepStars(dt)
	s.StepClouds(dt)
}

// StepStars runs one update pass over the star population only. The caller
// must have run Generate first if the population may be uninitialized.
func (s *Simulation) StepStars(dt float32) {
	s.Stars.Step(&s.params, &s.force, dt, s.pool)
}

// StepClouds runs one update pass over the cloud population only.
func (s *Simulation) StepClouds(dt float32) {
	s.Clouds.Step(&s.params, &s.force, dt, s.pool)
}

// Invalidate forces both populations to regenerate on the next Step.
func (s *Simulation) Invalidate() {
	s.Stars.Invalidate()
	s.Clouds.Invalidate()
}

// Regenerations returns how many generation passes have completed, including
// the initial one.
func (s *Simulation) Regenerations() int { return s.regenerations }

// Params returns a copy of the current generation parameters.
func (s *Simulation) Params() GenerationParams { return s.params }

// Force returns a copy of the current force state.
func (s *Simulation) Force() ForceState { return s.force }

// Close stops the worker pool.
func (s *Simulation) Close() {
	if s.pool != nil {
		s.pool.Stop()
	}
}

// setStructural validates a candidate parameter set, applies it, and
// invalidates both populations. On error the previous parameters are kept.
func (s *Simulation) setStructural(candidate GenerationParams) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	s.params = candidate
	s.Stars.Invalidate()
	s.Clouds.Invalidate()
	return nil
}

// SetRadius updates the galaxy radius. Structural: forces regeneration.
func (s *Simulation) SetRadius(v float32) error {
	c := s.params
	c.Radius = v
	return s.setStructural(c)
}

// SetThickness updates the vertical extent. Structural.
func (s *Simulation) SetThickness(v float32) error {
	c := s.params
	c.Thickness = v
	return s.setStructural(c)
}

// SetSpiralTightness updates the arm winding. Structural.
func (s *Simulation) SetSpiralTightness(v float32) error {
	c := s.params
	c.SpiralTightness = v
	return s.setStructural(c)
}

// SetArmCount updates the number of spiral arms. Structural.
func (s *Simulation) SetArmCount(v int) error {
	c := s.params
	c.ArmCount = v
	return s.setStructural(c)
}

// SetArmWidth updates the radial jitter band. Structural.
func (s *Simulation) SetArmWidth(v float32) error {
	c := s.params
	c.ArmWidth = v
	return s.setStructural(c)
}

// SetRandomness updates the angular jitter. Structural.
func (s *Simulation) SetRandomness(v float32) error {
	c := s.params
	c.Randomness = v
	return s.setStructural(c)
}

// SetSeedOffset shifts the hash stream to a different galaxy. Structural.
func (s *Simulation) SetSeedOffset(v int) error {
	c := s.params
	c.SeedOffset = v
	return s.setStructural(c)
}

// SetRotationSpeed updates the base angular speed. Cosmetic: takes effect on
// the next Step without regeneration.
func (s *Simulation) SetRotationSpeed(v float32) {
	s.params.RotationSpeed = v
}

// SetCloudTint updates the cloud base color. Regenerates clouds only.
func (s *Simulation) SetCloudTint(tint Vec3) {
	s.Clouds.SetTint(tint)
}

// SetForce replaces the external force state for the next Step.
func (s *Simulation) SetForce(f ForceState) {
	s.force = f
}

// ResizeStars reallocates the star buffers. Structural.
func (s *Simulation) ResizeStars(n int) error {
	return s.Stars.Resize(n)
}

// ResizeClouds reallocates the cloud buffers. Structural.
func (s *Simulation) ResizeClouds(n int) error {
	return s.Clouds.Resize(n)
}
