package galaxy

// RotateDifferential advances one point by the differential rotation field:
// angular speed falls off with planar distance from the center, so inner
// particles complete more revolutions per unit time than outer ones. The y
// component is untouched and the planar radius is preserved.
func RotateDifferential(v Vec3, rotationSpeed, dt float32) Vec3 {
	dist := v.PlanarDistance()
	factor := 1 / (dist*0.1 + 1)
	theta := -rotationSpeed * factor * dt
	c, s := cosf(theta), sinf(theta)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// ForceDisplacement returns the repulsion displacement for one particle over
// dt. Influence falls off linearly from the origin to zero at the force
// radius. A particle sitting exactly on the origin gets zero displacement
// rather than a NaN from normalizing a zero vector.
func ForceDisplacement(pos Vec3, f *ForceState, dt float32) Vec3 {
	if !f.Active || f.Radius <= 0 {
		return Vec3{}
	}
	toSource := f.Origin.Sub(pos)
	dist := toSource.Length()
	if dist < 1e-6 || dist >= f.Radius {
		return Vec3{}
	}
	influence := clamp01(1 - dist/f.Radius)
	away := toSource.Scale(-1 / dist)
	return away.Scale(f.Strength * influence * dt)
}

// StepParticle advances one particle's position and anchor by one frame.
// Rotation is applied first, to both fields independently (each at its own
// differential rate), so the spring target is the already-rotated anchor.
// Then the external force pushes the position, and the spring pulls it back.
//
// The spring is explicit forward-Euler with no damping: it is only stable
// while springK*dt stays well under 1. Clamping dt after a stall is the
// frame-pacing caller's responsibility.
func StepParticle(pos, anchor Vec3, springK float32, p *GenerationParams, f *ForceState, dt float32) (Vec3, Vec3) {
	pos = RotateDifferential(pos, p.RotationSpeed, dt)
	anchor = RotateDifferential(anchor, p.RotationSpeed, dt)

	pos = pos.Add(ForceDisplacement(pos, f, dt))
	pos = pos.Add(anchor.Sub(pos).Scale(springK * dt))

	return pos, anchor
}
