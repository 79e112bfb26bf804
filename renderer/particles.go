package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/galaxy"
)

// GalaxyRenderer draws both particle populations from their position and
// attribute buffers. It holds no simulation state: everything it reads is
// valid until the next update pass overwrites it.
type GalaxyRenderer struct {
	coreColor  [3]float32
	outerColor [3]float32
	starSize   float32
	cloudSize  float32
}

// NewGalaxyRenderer creates a renderer from the render config.
func NewGalaxyRenderer(cfg *config.Config) *GalaxyRenderer {
	r := &GalaxyRenderer{
		starSize:  float32(cfg.Render.StarSize),
		cloudSize: float32(cfg.Render.CloudSize),
	}
	for i := 0; i < 3; i++ {
		r.coreColor[i] = float32(cfg.Render.CoreColor[i])
		r.outerColor[i] = float32(cfg.Render.OuterColor[i])
	}
	return r
}

// DrawStars renders the star population as 3D points, color-interpolated by
// each star's density factor (0 = arm centerline, warm core color; 1 = far
// off-arm, cool outer color).
func (r *GalaxyRenderer) DrawStars(p *galaxy.Population) {
	n := p.Count()
	for i := 0; i < n; i++ {
		d := p.Density[i]
		col := rl.Color{
			R: uint8((r.coreColor[0] + (r.outerColor[0]-r.coreColor[0])*d) * 255),
			G: uint8((r.coreColor[1] + (r.outerColor[1]-r.coreColor[1])*d) * 255),
			B: uint8((r.coreColor[2] + (r.outerColor[2]-r.coreColor[2])*d) * 255),
			A: 255,
		}
		rl.DrawPoint3D(rl.Vector3{X: p.PosX[i], Y: p.PosY[i], Z: p.PosZ[i]}, col)
	}
}

// DrawClouds renders the dust cloud population as translucent circles in the
// galactic plane, using the per-cloud color, size, and rotation baked at
// generation time.
func (r *GalaxyRenderer) DrawClouds(p *galaxy.Population) {
	n := p.Count()
	axis := rl.Vector3{X: 0, Y: 1, Z: 0}
	for i := 0; i < n; i++ {
		col := rl.Color{
			R: uint8(p.ColR[i] * 255),
			G: uint8(p.ColG[i] * 255),
			B: uint8(p.ColB[i] * 255),
			A: 60,
		}
		center := rl.Vector3{X: p.PosX[i], Y: p.PosY[i], Z: p.PosZ[i]}
		radius := p.Size[i] * r.cloudSize * 0.05
		rl.DrawCircle3D(center, radius, axis, p.Rot[i]*rl.Rad2deg, col)
	}
}
