package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardust/particles"
	"github.com/pthm-cable/stardust/renderer"
	"github.com/pthm-cable/stardust/systems"
)

// handleInput translates keyboard and mouse events into intents. Nothing
// here mutates the store; everything goes through the queue.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) && g.panel != nil {
		g.panel.Toggle()
	}

	// Store mutations
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if g.panel == nil || !g.panel.Contains(pos) {
			g.submitPointerSpawn(pos)
		}
	}
	if rl.IsKeyPressed(rl.KeyK) {
		g.SubmitKick()
	}
	if rl.IsKeyPressed(rl.KeyU) {
		g.SubmitUndo()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.SubmitRedo()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.SubmitClear()
	}

	// Persistence
	if rl.IsKeyPressed(rl.KeyF5) {
		g.Quicksave()
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		g.Quickload()
	}

	g.handleCameraInput()
	g.applyRenderMode()
}

// submitPointerSpawn converts a screen position into a spawn intent at the
// point where the pointer ray crosses the ground plane.
func (g *Game) submitPointerSpawn(pos rl.Vector2) {
	origin, ok := g.pointerToWorld(pos)
	if !ok {
		return
	}

	color, err := particles.ParseColor(g.settings.Color())
	if err != nil {
		slog.Warn("invalid spawn color", "color", g.settings.Color(), "error", err)
		color = particles.Color{R: 255, G: 255, B: 255}
	}

	gravity, err := systems.GravityPreset(g.settings.Gravity())
	if err != nil {
		slog.Warn("unknown gravity preset", "preset", g.settings.Gravity(), "error", err)
		gravity = 0
	}

	g.SubmitSpawn(systems.SpawnRequest{
		Count:   g.settings.SpawnCount(),
		Origin:  origin,
		Size:    g.settings.Size(),
		Color:   color,
		Gravity: gravity,
	})
}

// pointerToWorld casts a ray through the screen position and intersects it
// with the y=0 plane. Returns false when the ray runs parallel to the plane
// or hits it behind the camera.
func (g *Game) pointerToWorld(pos rl.Vector2) (particles.Vec3, bool) {
	ray := rl.GetMouseRay(pos, g.raylibCamera())

	if ray.Direction.Y > -1e-6 && ray.Direction.Y < 1e-6 {
		return particles.Vec3{}, false
	}
	t := -ray.Position.Y / ray.Direction.Y
	if t < 0 {
		return particles.Vec3{}, false
	}

	hit := particles.Vec3{
		X: ray.Position.X + ray.Direction.X*t,
		Y: 0,
		Z: ray.Position.Z + ray.Direction.Z*t,
	}

	// Keep spawns inside the boundary cube
	b := g.cfg.Physics.Bounds
	hit.X = clampf(hit.X, -b, b)
	hit.Z = clampf(hit.Z, -b, b)
	return hit, true
}

// handleCameraInput processes orbit and zoom controls.
func (g *Game) handleCameraInput() {
	speed := g.cfg.Camera.OrbitSpeed

	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Orbit(-speed, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Orbit(speed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Orbit(0, speed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Orbit(0, -speed)
	}

	// Right mouse drag orbits
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.cam.Orbit(delta.X*speed*0.25, -delta.Y*speed*0.25)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.ZoomBy(wheel * g.cfg.Camera.ZoomStep)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset(g.cfg.Camera.Distance)
	}
}

// applyRenderMode pushes the glow/trail toggles into the renderer.
func (g *Game) applyRenderMode() {
	if g.particleRenderer == nil {
		return
	}
	switch {
	case g.settings.Glow():
		g.particleRenderer.SetMode(renderer.ModeGlow)
	case g.settings.Trail():
		g.particleRenderer.SetMode(renderer.ModeTrail)
	default:
		g.particleRenderer.SetMode(renderer.ModePlain)
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
