package galaxy

import "fmt"

// GenerationParams is the shared parameter surface read by placement and the
// per-frame update. It is passed explicitly into every kernel so the
// pure-function contract holds; there is no hidden global configuration.
//
// Structural fields (Radius, Thickness, SpiralTightness, ArmCount, ArmWidth,
// Randomness) change the generated geometry and force a regeneration when
// edited through the Simulation setters. RotationSpeed is cosmetic: it only
// affects the per-frame rotation and takes effect on the next step.
type GenerationParams struct {
	Radius          float32 // galaxy radius in world units, > 0
	Thickness       float32 // vertical extent at the core, >= 0
	SpiralTightness float32 // winding turns from center to rim, >= 0
	ArmCount        int     // number of spiral arms, >= 1
	ArmWidth        float32 // radial jitter band around an arm, >= 0
	Randomness      float32 // angular jitter around an arm, >= 0
	RotationSpeed   float32 // base angular speed (rad/sec at the center)

	// SeedOffset shifts every hash draw, producing a different galaxy from the
	// same particle indices. Structural.
	SeedOffset int
}

// Validate checks the structural fields. Invalid parameters are rejected at
// the setter boundary so generation never divides by zero.
func (p *GenerationParams) Validate() error {
	if p.ArmCount < 1 {
		return fmt.Errorf("arm count must be >= 1, got %d", p.ArmCount)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be > 0, got %g", p.Radius)
	}
	if p.Thickness < 0 {
		return fmt.Errorf("thickness must be >= 0, got %g", p.Thickness)
	}
	if p.SpiralTightness < 0 {
		return fmt.Errorf("spiral tightness must be >= 0, got %g", p.SpiralTightness)
	}
	if p.ArmWidth < 0 {
		return fmt.Errorf("arm width must be >= 0, got %g", p.ArmWidth)
	}
	if p.Randomness < 0 {
		return fmt.Errorf("randomness must be >= 0, got %g", p.Randomness)
	}
	return nil
}

// ForceState is the externally driven repulsion field, typically fed from the
// mouse. Mutable every frame; read-only inside the update pass.
type ForceState struct {
	Origin   Vec3
	Active   bool
	Strength float32
	Radius   float32
}
