package galaxy

import "math"

// Placement exponents and vertical taper biases per population. Stars skew
// toward the center (sqrt spread), clouds spread flatter and sit in a thinner
// disc.
const (
	starRadiusExponent  = 0.5
	cloudRadiusExponent = 0.7
	starThicknessBias   = 0.2
	cloudThicknessBias  = 0.15

	// cloudSaltOffset separates the cloud hash stream from the star stream
	// so the two populations never alias the same draws.
	starSaltOffset  = 0
	cloudSaltOffset = 10000
)

// spiralPoint holds the shared intermediate values of one placement draw.
type spiralPoint struct {
	pos        Vec3
	angle      float32 // final angle including arm, winding and jitter
	effRadius  float32 // radius including jitter
	normRadius float32 // radius / galaxy radius before jitter, in [0,1)
	angleOff   float32
	radiusOff  float32
}

// placeSpiral computes the position every particle of either population
// shares: a power-law radius, an arm, linear spiral winding, jitter, and a
// vertical extent that tapers from core to rim.
func placeSpiral(index, saltOffset int, exponent, thicknessBias float32, p *GenerationParams) spiralPoint {
	index += p.SeedOffset
	radius := powf(hashAt(index, saltOffset, 1), exponent) * p.Radius
	normRadius := radius / p.Radius

	armIndex := float32(math.Floor(float64(hashAt(index, saltOffset, 2)) * float64(p.ArmCount)))
	armAngle := armIndex * 2 * math.Pi / float32(p.ArmCount)

	spiralAngle := normRadius * p.SpiralTightness * 2 * math.Pi
	angleOff := (hashAt(index, saltOffset, 3) - 0.5) * p.Randomness
	radiusOff := (hashAt(index, saltOffset, 4) - 0.5) * p.ArmWidth

	angle := armAngle + spiralAngle + angleOff
	effRadius := radius + radiusOff

	thicknessFactor := (1 - normRadius) + thicknessBias
	y := (hashAt(index, saltOffset, 5) - 0.5) * p.Thickness * thicknessFactor

	return spiralPoint{
		pos: Vec3{
			X: cosf(angle) * effRadius,
			Y: y,
			Z: sinf(angle) * effRadius,
		},
		angle:      angle,
		effRadius:  effRadius,
		normRadius: normRadius,
		angleOff:   angleOff,
		radiusOff:  radiusOff,
	}
}

// StarPlacement is the full per-star generation output.
type StarPlacement struct {
	Pos      Vec3
	Velocity Vec3    // orbital seed; stored for downstream consumers, unused by the update
	Density  float32 // 0 = on the arm centerline, 1 = far off-arm
}

// PlaceStar generates one star. The anchor is initialized equal to Pos by the
// population controller.
func PlaceStar(index int, p *GenerationParams) StarPlacement {
	sp := placeSpiral(index, starSaltOffset, starRadiusExponent, starThicknessBias, p)

	// Keplerian-ish falloff: inner stars orbit faster.
	speed := 5 / (sp.effRadius + 0.5)

	// Proxy for distance from the arm centerline; the epsilons keep the
	// zero-width and zero-randomness configs from dividing by zero.
	density := clamp01((absf(sp.radiusOff)/(p.ArmWidth/2+0.01) +
		absf(sp.angleOff)/(p.Randomness/2+0.01)) / 2)

	return StarPlacement{
		Pos:      sp.pos,
		Velocity: Vec3{X: -sinf(sp.angle) * speed, Y: 0, Z: cosf(sp.angle) * speed},
		Density:  density,
	}
}

// CloudPlacement is the full per-cloud generation output.
type CloudPlacement struct {
	Pos      Vec3
	Color    Vec3 // tint darkened toward the rim
	Size     float32
	Rotation float32 // sprite rotation in [0, 2π)
}

// PlaceCloud generates one dust cloud particle. tint is the base cloud color.
func PlaceCloud(index int, tint Vec3, p *GenerationParams) CloudPlacement {
	sp := placeSpiral(index, cloudSaltOffset, cloudRadiusExponent, cloudThicknessBias, p)
	index += p.SeedOffset

	return CloudPlacement{
		Pos:      sp.pos,
		Color:    tint.Scale(1 - sp.normRadius*0.3),
		Size:     (hashAt(index, cloudSaltOffset, 6)*0.5 + 0.7) * (1 - sp.normRadius*0.5),
		Rotation: hashAt(index, cloudSaltOffset, 7) * 2 * math.Pi,
	}
}
