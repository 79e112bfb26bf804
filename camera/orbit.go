// Package camera provides an orbit camera for viewing the galaxy.
package camera

import "math"

// Orbit is a spherical-orbit camera: yaw/pitch/distance around a target
// point. The math is raylib-free so it can be unit tested; the game layer
// converts Eye/Target into a raylib Camera3D each frame.
type Orbit struct {
	// Target is the point the camera orbits and looks at.
	TargetX, TargetY, TargetZ float32

	// Yaw is the horizontal angle in radians; Pitch the elevation.
	Yaw, Pitch float32

	// Distance from the target.
	Distance float32

	// Constraints
	MinDistance, MaxDistance float32
	MinPitch, MaxPitch       float32
}

// New creates an orbit camera at the given distance, looking at the origin
// from a mildly elevated angle.
func New(distance float32) *Orbit {
	return &Orbit{
		Yaw:         0,
		Pitch:       0.55,
		Distance:    distance,
		MinDistance: distance * 0.15,
		MaxDistance: distance * 6,
		MinPitch:    -1.45,
		MaxPitch:    1.45,
	}
}

// Rotate adjusts yaw and pitch by the given deltas, clamping pitch so the
// camera never flips over the pole.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.Yaw += dYaw
	const twoPi = 2 * math.Pi
	for o.Yaw >= twoPi {
		o.Yaw -= twoPi
	}
	for o.Yaw < 0 {
		o.Yaw += twoPi
	}

	o.Pitch += dPitch
	if o.Pitch > o.MaxPitch {
		o.Pitch = o.MaxPitch
	}
	if o.Pitch < o.MinPitch {
		o.Pitch = o.MinPitch
	}
}

// Zoom moves the camera along the view axis. Positive delta zooms in.
// Multiplicative, so zoom speed feels uniform across distances.
func (o *Orbit) Zoom(delta float32) {
	o.Distance *= 1 - delta*0.1
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

// Eye returns the camera position in world coordinates.
func (o *Orbit) Eye() (x, y, z float32) {
	cp := float32(math.Cos(float64(o.Pitch)))
	x = o.TargetX + o.Distance*cp*float32(math.Cos(float64(o.Yaw)))
	y = o.TargetY + o.Distance*float32(math.Sin(float64(o.Pitch)))
	z = o.TargetZ + o.Distance*cp*float32(math.Sin(float64(o.Yaw)))
	return x, y, z
}
