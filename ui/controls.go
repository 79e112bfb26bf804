package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Values is the editable parameter surface the panel exposes. The game layer
// diffs these against the live simulation each frame and routes structural
// edits through the validating setters.
type Values struct {
	Radius          float32
	Thickness       float32
	SpiralTightness float32
	ArmCount        int
	ArmWidth        float32
	Randomness      float32
	RotationSpeed   float32

	ForceEnabled  bool
	ForceStrength float32
	ForceRadius   float32

	StarThousands int // star count in thousands; applied on release via Apply button
	ApplyResize   bool
}

// ControlsPanel renders the parameter panel with raygui sliders.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool

	Values Values
}

// NewControlsPanel creates a panel at the given position.
func NewControlsPanel(x, y, width float32, initial Values) *ControlsPanel {
	return &ControlsPanel{
		x:       x,
		y:       y,
		width:   width,
		visible: true,
		Values:  initial,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// slider draws one labeled slider row and returns the new value.
func (c *ControlsPanel) slider(y *float32, label string, value, minVal, maxVal float32, format string) float32 {
	rl.DrawText(label, int32(c.x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: c.x, Y: *y, Width: c.width - 70, Height: 20},
		"", "",
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(c.x+c.width-60), int32(*y+2), 16, rl.DarkGray)
	*y += 30
	return v
}

// Draw renders the panel and updates Values in place. The caller diffs the
// result against the previous values.
func (c *ControlsPanel) Draw() {
	if !c.visible {
		return
	}

	v := &c.Values
	y := c.y

	rl.DrawRectangle(int32(c.x-10), int32(c.y-10), int32(c.width+20), 520, rl.Color{R: 10, G: 10, B: 20, A: 200})
	rl.DrawText("Galaxy", int32(c.x), int32(y), 20, rl.White)
	y += 30

	v.Radius = c.slider(&y, "Radius", v.Radius, 1, 30, "%.1f")
	v.Thickness = c.slider(&y, "Thickness", v.Thickness, 0, 5, "%.2f")
	v.SpiralTightness = c.slider(&y, "Spiral tightness", v.SpiralTightness, 0, 6, "%.2f")
	v.ArmCount = int(c.slider(&y, "Arms", float32(v.ArmCount), 1, 8, "%.0f"))
	v.ArmWidth = c.slider(&y, "Arm width", v.ArmWidth, 0, 4, "%.2f")
	v.Randomness = c.slider(&y, "Randomness", v.Randomness, 0, 2, "%.2f")
	v.RotationSpeed = c.slider(&y, "Rotation speed", v.RotationSpeed, 0, 2, "%.2f")

	y += 6
	rl.DrawText("Force", int32(c.x), int32(y), 20, rl.White)
	y += 26

	v.ForceEnabled = gui.CheckBox(
		rl.Rectangle{X: c.x, Y: y, Width: 18, Height: 18},
		"Enabled (hold left mouse)", v.ForceEnabled,
	)
	y += 28

	v.ForceStrength = c.slider(&y, "Strength", v.ForceStrength, 0, 60, "%.0f")
	v.ForceRadius = c.slider(&y, "Radius", v.ForceRadius, 0.5, 12, "%.1f")

	y += 6
	rl.DrawText("Population", int32(c.x), int32(y), 20, rl.White)
	y += 26

	v.StarThousands = int(c.slider(&y, "Stars (thousands)", float32(v.StarThousands), 10, 500, "%.0fk"))
	v.ApplyResize = gui.Button(
		rl.Rectangle{X: c.x, Y: y, Width: 110, Height: 26},
		"Apply size",
	)
}
