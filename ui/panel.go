package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardust/particles"
	"github.com/pthm-cable/stardust/systems"
)

const (
	panelWidth  = 240
	rowHeight   = 35
	sliderWidth = panelWidth - 80
)

// Panel draws the settings controls down the right edge of the screen and
// writes edits back into the shared Settings.
type Panel struct {
	settings *Settings
	visible  bool
}

// NewPanel creates a panel bound to the given settings.
func NewPanel(s *Settings) *Panel {
	return &Panel{settings: s, visible: true}
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Contains reports whether a screen point falls inside the panel area, so
// clicks on controls do not also spawn particles.
func (p *Panel) Contains(pos rl.Vector2) bool {
	if !p.visible {
		return false
	}
	panelX := float32(rl.GetScreenWidth() - panelWidth - 10)
	return pos.X >= panelX
}

// Draw renders the panel and applies any edits. Must be called outside
// BeginMode3D.
func (p *Panel) Draw() {
	if !p.visible {
		return
	}

	s := p.settings
	panelX := float32(rl.GetScreenWidth() - panelWidth - 10)
	panelY := float32(10)

	rl.DrawText("Spawn Settings", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += rowHeight

	// Burst count
	rl.DrawText("Count (burst mode)", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	newCount := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
		"1", "200",
		float32(s.Count()), 1, 200,
	)
	rl.DrawText(fmt.Sprintf("%d", s.Count()), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
	if int(newCount) != s.Count() {
		s.SetCount(int(newCount))
	}
	panelY += rowHeight

	// Size
	rl.DrawText("Size", int32(panelX), int32(panelY), 14, rl.LightGray)
	panelY += 18
	newSize := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
		"0.2", "5.0",
		s.Size(), 0.2, 5.0,
	)
	rl.DrawText(fmt.Sprintf("%.1f", s.Size()), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.RayWhite)
	if newSize != s.Size() {
		s.SetSize(newSize)
	}
	panelY += rowHeight

	// Color channels
	col, err := particles.ParseColor(s.Color())
	if err != nil {
		col = particles.Color{R: 255, G: 255, B: 255}
	}
	panelY = p.colorSliders(panelX, panelY, &col)
	s.SetColor(particles.FormatColor(col))

	swatch := rl.Rectangle{X: panelX + sliderWidth + 10, Y: panelY - 3*25 + 2, Width: 40, Height: 60}
	rl.DrawRectangleRec(swatch, rl.Color{R: col.R, G: col.G, B: col.B, A: 255})
	panelY += 10

	// Mode toggle
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 110, Height: 26}, "Mode: "+s.Mode().String()) {
		if s.Mode() == ModeBurst {
			s.SetMode(ModeSingle)
		} else {
			s.SetMode(ModeBurst)
		}
	}

	// Gravity preset cycling
	if gui.Button(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 110, Height: 26}, "Grav: "+s.Gravity()) {
		s.SetGravity(nextGravity(s.Gravity()))
	}
	panelY += rowHeight

	// Glow and trail checkboxes; the setters keep them mutually exclusive
	glow := gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20}, "Glow", s.Glow())
	if glow != s.Glow() {
		s.SetGlow(glow)
	}
	trail := gui.CheckBox(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 20, Height: 20}, "Trail", s.Trail())
	if trail != s.Trail() {
		s.SetTrail(trail)
	}
}

func (p *Panel) colorSliders(panelX, panelY float32, col *particles.Color) float32 {
	channels := []struct {
		label string
		val   *uint8
	}{
		{"R", &col.R},
		{"G", &col.G},
		{"B", &col.B},
	}

	for _, ch := range channels {
		rl.DrawText(ch.label, int32(panelX), int32(panelY+2), 14, rl.LightGray)
		v := gui.SliderBar(
			rl.Rectangle{X: panelX + 20, Y: panelY, Width: sliderWidth - 20, Height: 18},
			"", "",
			float32(*ch.val), 0, 255,
		)
		*ch.val = uint8(v)
		panelY += 25
	}
	return panelY
}

func nextGravity(current string) string {
	names := systems.GravityPresetNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
