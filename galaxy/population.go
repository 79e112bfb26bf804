package galaxy

import "fmt"

// Kind selects between the two particle populations.
type Kind uint8

const (
	KindStar Kind = iota
	KindCloud
)

// Spring stiffness per population. Fixed, not user-exposed: clouds lag behind
// their anchors more than stars do.
const (
	starSpringK  = 2.0
	cloudSpringK = 1.0
)

// Population owns the particle buffers for one population (SoA layout, one
// slot per particle index). Positions and anchors are overwritten every
// frame; the auxiliary attributes are written once per generation.
//
// A population starts uninitialized. The first Step after construction or
// Invalidate runs the one-pass placement generation, then every Step runs one
// update pass. No kernel ever reads another particle's slot, so both passes
// are chunked across the worker pool without locking.
type Population struct {
	kind Kind
	n    int

	// Current positions, read by the renderer.
	PosX, PosY, PosZ []float32

	// Rotating anchor ("home") positions the spring pulls toward.
	AnchX, AnchY, AnchZ []float32

	// Star attributes. Velocity is the orbital seed computed at placement;
	// it is stored for downstream consumers and never drives the update.
	VelX, VelY, VelZ []float32
	Density          []float32

	// Cloud attributes.
	ColR, ColG, ColB []float32
	Size             []float32
	Rot              []float32

	tint        Vec3 // cloud base color
	springK     float32
	initialized bool
}

// NewPopulation allocates buffers for n particles. Generation does not run
// until the first Step.
func NewPopulation(kind Kind, n int, tint Vec3) (*Population, error) {
	if n < 0 {
		return nil, fmt.Errorf("population size must be >= 0, got %d", n)
	}
	p := &Population{kind: kind, tint: tint}
	switch kind {
	case KindStar:
		p.springK = starSpringK
	case KindCloud:
		p.springK = cloudSpringK
	}
	p.alloc(n)
	return p, nil
}

func (p *Population) alloc(n int) {
	p.n = n
	p.PosX = make([]float32, n)
	p.PosY = make([]float32, n)
	p.PosZ = make([]float32, n)
	p.AnchX = make([]float32, n)
	p.AnchY = make([]float32, n)
	p.AnchZ = make([]float32, n)

	switch p.kind {
	case KindStar:
		p.VelX = make([]float32, n)
		p.VelY = make([]float32, n)
		p.VelZ = make([]float32, n)
		p.Density = make([]float32, n)
	case KindCloud:
		p.ColR = make([]float32, n)
		p.ColG = make([]float32, n)
		p.ColB = make([]float32, n)
		p.Size = make([]float32, n)
		p.Rot = make([]float32, n)
	}
	p.initialized = false
}

// Count returns the number of particles.
func (p *Population) Count() int { return p.n }

// Kind returns the population kind.
func (p *Population) Kind() Kind { return p.kind }

// Initialized reports whether placement generation has run since the last
// invalidation.
func (p *Population) Initialized() bool { return p.initialized }

// Invalidate forces placement to re-run on the next Step. Buffers are kept;
// their contents are overwritten wholesale by the regeneration pass.
func (p *Population) Invalidate() { p.initialized = false }

// SetTint updates the cloud base color. Structural for clouds: the tint is
// baked into per-particle colors at generation time.
func (p *Population) SetTint(tint Vec3) {
	p.tint = tint
	if p.kind == KindCloud {
		p.initialized = false
	}
}

// Resize reallocates the buffers for n particles and invalidates.
func (p *Population) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("population size must be >= 0, got %d", n)
	}
	p.alloc(n)
	return nil
}

// Generate runs the one-pass placement generation over all particles and
// marks the population initialized. Callers normally rely on Step's lazy
// generation; this is exposed so the generation pass can be timed separately.
func (p *Population) Generate(params *GenerationParams, pool *WorkerPool) {
	runChunked(pool, p.n, func(i0, i1 int) {
		p.generateRange(i0, i1, params)
	})
	p.initialized = true
}

// Step advances the population by one frame: lazy generation if needed, then
// one update pass. pool may be nil for single-threaded stepping. Returns
// whether a generation pass ran.
func (p *Population) Step(params *GenerationParams, force *ForceState, dt float32, pool *WorkerPool) bool {
	regenerated := false
	if !p.initialized {
		p.Generate(params, pool)
		regenerated = true
	}

	runChunked(pool, p.n, func(i0, i1 int) {
		p.updateRange(i0, i1, params, force, dt)
	})
	return regenerated
}

// generateRange places particles [i0, i1). Pure per-particle writes; safe to
// run concurrently with other non-overlapping ranges.
func (p *Population) generateRange(i0, i1 int, params *GenerationParams) {
	switch p.kind {
	case KindStar:
		for i := i0; i < i1; i++ {
			s := PlaceStar(i, params)
			p.PosX[i], p.PosY[i], p.PosZ[i] = s.Pos.X, s.Pos.Y, s.Pos.Z
			p.AnchX[i], p.AnchY[i], p.AnchZ[i] = s.Pos.X, s.Pos.Y, s.Pos.Z
			p.VelX[i], p.VelY[i], p.VelZ[i] = s.Velocity.X, s.Velocity.Y, s.Velocity.Z
			p.Density[i] = s.Density
		}
	case KindCloud:
		for i := i0; i < i1; i++ {
			c := PlaceCloud(i, p.tint, params)
			p.PosX[i], p.PosY[i], p.PosZ[i] = c.Pos.X, c.Pos.Y, c.Pos.Z
			p.AnchX[i], p.AnchY[i], p.AnchZ[i] = c.Pos.X, c.Pos.Y, c.Pos.Z
			p.ColR[i], p.ColG[i], p.ColB[i] = c.Color.X, c.Color.Y, c.Color.Z
			p.Size[i] = c.Size
			p.Rot[i] = c.Rotation
		}
	}
}

// updateRange advances particles [i0, i1) by one frame.
func (p *Population) updateRange(i0, i1 int, params *GenerationParams, force *ForceState, dt float32) {
	for i := i0; i < i1; i++ {
		pos := Vec3{p.PosX[i], p.PosY[i], p.PosZ[i]}
		anchor := Vec3{p.AnchX[i], p.AnchY[i], p.AnchZ[i]}

		pos, anchor = StepParticle(pos, anchor, p.springK, params, force, dt)

		p.PosX[i], p.PosY[i], p.PosZ[i] = pos.X, pos.Y, pos.Z
		p.AnchX[i], p.AnchY[i], p.AnchZ[i] = anchor.X, anchor.Y, anchor.Z
	}
}
