package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode selects the particle draw style. Glow and trail are mutually
// exclusive; the settings surface enforces that.
type Mode uint8

const (
	ModePlain Mode = iota
	ModeGlow
	ModeTrail
)

// ParticleRenderer draws the instance buffer inside an active 3D mode.
// For trail mode it keeps a copy of the previous frame's transforms; it
// never retains references into the live store.
type ParticleRenderer struct {
	mode Mode
	prev []InstanceTransform
}

// NewParticleRenderer creates a renderer in plain mode.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// SetMode switches the draw style.
func (r *ParticleRenderer) SetMode(mode Mode) {
	r.mode = mode
}

// ResetTrails drops the previous-frame transforms. Call when slot contents
// change identity (undo, clear) so no streak is drawn between two different
// particles that happened to share a slot index.
func (r *ParticleRenderer) ResetTrails() {
	r.prev = r.prev[:0]
}

// retireStaleTrails drops the previous-frame transforms when the active
// count shrank since last frame: slots past the new tail were truncated, so
// same-index slots may now hold different particles.
func (r *ParticleRenderer) retireStaleTrails(active int) {
	if active < len(r.prev) {
		r.prev = r.prev[:0]
	}
}

// Draw renders every active buffer slot. Must be called between
// rl.BeginMode3D and rl.EndMode3D.
func (r *ParticleRenderer) Draw(ib *InstanceBuffer) {
	transforms := ib.Transforms()
	colors := ib.Colors()
	r.retireStaleTrails(len(transforms))

	if r.mode == ModeGlow {
		rl.BeginBlendMode(rl.BlendAdditive)
	}

	for i := range transforms {
		t := &transforms[i]
		c := colors[i]
		pos := rl.Vector3{X: t.X, Y: t.Y, Z: t.Z}
		col := rl.Color{R: c.R, G: c.G, B: c.B, A: 255}

		switch r.mode {
		case ModeGlow:
			rl.DrawSphereEx(pos, t.Scale*1.6, 4, 6, rl.Color{R: c.R, G: c.G, B: c.B, A: 60})
			rl.DrawSphereEx(pos, t.Scale, 4, 6, rl.Color{R: c.R, G: c.G, B: c.B, A: 180})
		case ModeTrail:
			// Streak from last frame's slot, valid while slot i still
			// holds the same particle (the store never reorders).
			if i < len(r.prev) {
				p := r.prev[i]
				rl.DrawLine3D(rl.Vector3{X: p.X, Y: p.Y, Z: p.Z}, pos,
					rl.Color{R: c.R, G: c.G, B: c.B, A: 110})
			}
			rl.DrawSphereEx(pos, t.Scale, 4, 6, col)
		default:
			rl.DrawCubeV(pos, rl.Vector3{X: t.Scale, Y: t.Scale, Z: t.Scale}, col)
		}
	}

	if r.mode == ModeGlow {
		rl.EndBlendMode()
	}

	r.prev = append(r.prev[:0], transforms...)
	ib.MarkClean()
}

// DrawBounds draws the world box wireframe so boundary bounces read visually.
func DrawBounds(bounds float32) {
	size := bounds * 2
	rl.DrawCubeWiresV(rl.Vector3{}, rl.Vector3{X: size, Y: size, Z: size}, rl.Color{R: 70, G: 70, B: 90, A: 255})
	rl.DrawGrid(20, bounds/10)
}
