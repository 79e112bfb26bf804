package galaxy

import (
	"math"
	"testing"
)

func testParams() GenerationParams {
	return GenerationParams{
		Radius:          10,
		Thickness:       1.5,
		SpiralTightness: 2,
		ArmCount:        3,
		ArmWidth:        1,
		Randomness:      0.5,
		RotationSpeed:   0.3,
	}
}

func TestPlacementReproducible(t *testing.T) {
	p := testParams()

	for i := 0; i < 1000; i++ {
		a := PlaceStar(i, &p)
		b := PlaceStar(i, &p)
		if a != b {
			t.Fatalf("star %d: placement not reproducible: %+v vs %+v", i, a, b)
		}

		ca := PlaceCloud(i, Vec3{0.5, 0.4, 0.8}, &p)
		cb := PlaceCloud(i, Vec3{0.5, 0.4, 0.8}, &p)
		if ca != cb {
			t.Fatalf("cloud %d: placement not reproducible: %+v vs %+v", i, ca, cb)
		}
	}
}

func TestPlacementBoundaryContainment(t *testing.T) {
	// With zero jitter, planar distance must equal radius*hash^p exactly (up
	// to rounding through cos/sin), and zero thickness pins every y to 0.
	p := testParams()
	p.Randomness = 0
	p.ArmWidth = 0
	p.Thickness = 0

	for i := 0; i < 1000; i++ {
		s := PlaceStar(i, &p)

		want := powf(hashAt(i, starSaltOffset, 1), starRadiusExponent) * p.Radius
		got := s.Pos.PlanarDistance()
		if math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("star %d: planar distance %v, want %v", i, got, want)
		}
		if s.Pos.Y != 0 {
			t.Errorf("star %d: y = %v, want 0 with zero thickness", i, s.Pos.Y)
		}
	}
}

func TestPlacementAxisScenario(t *testing.T) {
	// One arm, no winding, no jitter: all particles lie on the positive
	// x-axis with radii determined solely by hash(i+1)^0.5 * 10.
	p := GenerationParams{
		Radius:          10,
		Thickness:       0,
		SpiralTightness: 0,
		ArmCount:        1,
		ArmWidth:        0,
		Randomness:      0,
	}

	radii := make([]float32, 3)
	for i := 0; i < 3; i++ {
		s := PlaceStar(i, &p)
		if math.Abs(float64(s.Pos.Z)) > 1e-5 {
			t.Errorf("star %d: z = %v, want 0", i, s.Pos.Z)
		}
		if s.Pos.X < 0 {
			t.Errorf("star %d: x = %v, want >= 0", i, s.Pos.X)
		}
		radii[i] = s.Pos.X
	}

	// Radius ordering must match hash output ordering.
	for i := 0; i < 3; i++ {
		want := powf(Hash(float32(i)+1), 0.5) * 10
		if math.Abs(float64(radii[i]-want)) > 1e-4 {
			t.Errorf("star %d: radius %v, want %v", i, radii[i], want)
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			hi, hj := Hash(float32(i)+1), Hash(float32(j)+1)
			if (hi < hj) != (radii[i] < radii[j]) {
				t.Errorf("radius ordering (%d,%d) does not match hash ordering", i, j)
			}
		}
	}
}

func TestSeedOffsetShiftsStream(t *testing.T) {
	// A seed offset must relabel the whole hash stream: particle i with
	// offset k lands exactly where particle i+k lands without one.
	p := testParams()
	shifted := p
	shifted.SeedOffset = 7

	for i := 0; i < 500; i++ {
		if got, want := PlaceStar(i, &shifted), PlaceStar(i+7, &p); got != want {
			t.Fatalf("star %d with offset 7: %+v, want %+v", i, got, want)
		}
	}
}

func TestDensityFactor(t *testing.T) {
	t.Run("zero jitter degenerates to zero", func(t *testing.T) {
		// The +0.01 epsilons must keep armWidth=0, randomness=0 from
		// dividing by zero; the offsets themselves are 0 so density is 0.
		p := testParams()
		p.Randomness = 0
		p.ArmWidth = 0

		for i := 0; i < 200; i++ {
			if d := PlaceStar(i, &p).Density; d != 0 {
				t.Fatalf("star %d: density %v, want 0", i, d)
			}
		}
	})

	t.Run("always in unit range", func(t *testing.T) {
		p := testParams()
		for i := 0; i < 2000; i++ {
			d := PlaceStar(i, &p).Density
			if d < 0 || d > 1 {
				t.Fatalf("star %d: density %v outside [0,1]", i, d)
			}
		}
	})
}

func TestStarVelocitySeed(t *testing.T) {
	// Velocity is tangential: perpendicular to the planar radius vector, with
	// magnitude 5/(r+0.5).
	p := testParams()
	for i := 0; i < 500; i++ {
		s := PlaceStar(i, &p)

		dot := s.Pos.X*s.Velocity.X + s.Pos.Z*s.Velocity.Z
		if math.Abs(float64(dot)) > 1e-2 {
			t.Errorf("star %d: velocity not tangential, dot = %v", i, dot)
		}
		if s.Velocity.Y != 0 {
			t.Errorf("star %d: velocity has vertical component %v", i, s.Velocity.Y)
		}
	}
}

func TestCloudAttributes(t *testing.T) {
	p := testParams()
	tint := Vec3{0.55, 0.35, 0.85}

	for i := 0; i < 1000; i++ {
		c := PlaceCloud(i, tint, &p)

		if c.Rotation < 0 || c.Rotation >= 2*math.Pi {
			t.Errorf("cloud %d: rotation %v outside [0, 2pi)", i, c.Rotation)
		}
		if c.Size <= 0 || c.Size > 1.2 {
			t.Errorf("cloud %d: size %v outside (0, 1.2]", i, c.Size)
		}
		// Tint only ever darkens toward the rim.
		if c.Color.X > tint.X || c.Color.Y > tint.Y || c.Color.Z > tint.Z {
			t.Errorf("cloud %d: color %+v brighter than tint %+v", i, c.Color, tint)
		}
	}
}

func TestDegenerateRadius(t *testing.T) {
	// Radius is validated > 0 at the boundary, but armWidth and randomness of
	// zero must place every particle without NaNs.
	p := GenerationParams{
		Radius:          0.0001,
		Thickness:       0,
		SpiralTightness: 0,
		ArmCount:        1,
		ArmWidth:        0,
		Randomness:      0,
	}
	for i := 0; i < 100; i++ {
		s := PlaceStar(i, &p)
		if s.Pos.X != s.Pos.X || s.Density != s.Density {
			t.Fatalf("star %d: NaN in degenerate config: %+v", i, s)
		}
	}
}
