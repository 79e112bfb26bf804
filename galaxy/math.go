package galaxy

import "math"

// Vec3 is a 3-component float32 vector. The simulation keeps everything in
// float32 so the buffers can be handed to a renderer or compute backend
// without conversion.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return sqrtf(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// PlanarDistance returns the length of the (x, z) projection, ignoring y.
func (v Vec3) PlanarDistance() float32 {
	return sqrtf(v.X*v.X + v.Z*v.Z)
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// fract returns the fractional part of x, always in [0, 1) for finite x.
func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
