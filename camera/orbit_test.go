package camera

import (
	"math"
	"testing"
)

func TestEyeDistance(t *testing.T) {
	o := New(20)

	// Eye must sit exactly Distance away from the target for any orientation.
	orientations := []struct{ yaw, pitch float32 }{
		{0, 0},
		{1.2, 0.5},
		{3.9, -1.0},
		{6.1, 1.4},
	}

	for _, tc := range orientations {
		o.Yaw, o.Pitch = tc.yaw, tc.pitch
		x, y, z := o.Eye()
		dx := float64(x - o.TargetX)
		dy := float64(y - o.TargetY)
		dz := float64(z - o.TargetZ)
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if math.Abs(dist-float64(o.Distance)) > 0.001 {
			t.Errorf("yaw=%v pitch=%v: eye distance %v, want %v", tc.yaw, tc.pitch, dist, o.Distance)
		}
	}
}

func TestPitchClamped(t *testing.T) {
	o := New(20)

	o.Rotate(0, 10)
	if o.Pitch != o.MaxPitch {
		t.Errorf("pitch %v, want clamped to %v", o.Pitch, o.MaxPitch)
	}

	o.Rotate(0, -20)
	if o.Pitch != o.MinPitch {
		t.Errorf("pitch %v, want clamped to %v", o.Pitch, o.MinPitch)
	}
}

func TestYawWraps(t *testing.T) {
	o := New(20)

	o.Rotate(7, 0) // more than 2π
	if o.Yaw < 0 || o.Yaw >= 2*math.Pi {
		t.Errorf("yaw %v outside [0, 2pi)", o.Yaw)
	}

	o.Rotate(-10, 0)
	if o.Yaw < 0 || o.Yaw >= 2*math.Pi {
		t.Errorf("yaw %v outside [0, 2pi) after negative rotate", o.Yaw)
	}
}

func TestZoomClamped(t *testing.T) {
	o := New(20)

	for i := 0; i < 100; i++ {
		o.Zoom(1)
	}
	if o.Distance != o.MinDistance {
		t.Errorf("distance %v, want clamped to min %v", o.Distance, o.MinDistance)
	}

	for i := 0; i < 100; i++ {
		o.Zoom(-1)
	}
	if o.Distance != o.MaxDistance {
		t.Errorf("distance %v, want clamped to max %v", o.Distance, o.MaxDistance)
	}
}
