package renderer

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/galaxy/config"
)

// NebulaBackground renders a static haze behind the galaxy: FBM over
// opensimplex noise, baked into a texture once at startup and stretched to
// the screen.
type NebulaBackground struct {
	texture   rl.Texture2D
	loaded    bool
	gridSize  int
	intensity float32
}

// NewNebulaBackground bakes the haze texture from the nebula config.
func NewNebulaBackground(cfg *config.Config) *NebulaBackground {
	nc := cfg.Nebula
	size := nc.GridSize
	if size < 16 {
		size = 128
	}
	octaves := nc.Octaves
	if octaves < 1 {
		octaves = 1
	}

	noise := opensimplex.NewNormalized(nc.Seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			nx := float64(x) / float64(size) * nc.Scale
			ny := float64(y) / float64(size) * nc.Scale

			// FBM: sum octaves with increasing frequency, decaying amplitude.
			var sum, amp, norm float64
			amp = 1
			freqX, freqY := nx, ny
			for o := 0; o < octaves; o++ {
				sum += noise.Eval2(freqX, freqY) * amp
				norm += amp
				amp *= nc.Gain
				freqX *= nc.Lacunarity
				freqY *= nc.Lacunarity
			}
			v := sum / norm * nc.Intensity

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(v * 40),
				G: uint8(v * 30),
				B: uint8(v * 70),
				A: 255,
			})
		}
	}

	return &NebulaBackground{
		texture:   rl.LoadTextureFromImage(rl.NewImageFromImage(img)),
		loaded:    true,
		gridSize:  size,
		intensity: float32(nc.Intensity),
	}
}

// Draw stretches the haze texture over the whole screen.
func (b *NebulaBackground) Draw(screenW, screenH float32) {
	if !b.loaded {
		return
	}
	src := rl.Rectangle{Width: float32(b.gridSize), Height: float32(b.gridSize)}
	dst := rl.Rectangle{Width: screenW, Height: screenH}
	rl.DrawTexturePro(b.texture, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload releases the GPU texture.
func (b *NebulaBackground) Unload() {
	if b.loaded {
		rl.UnloadTexture(b.texture)
		b.loaded = false
	}
}
