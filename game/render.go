package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardust/renderer"
	"github.com/pthm-cable/stardust/telemetry"
)

// raylibCamera builds the rl.Camera3D for the current orbit state.
func (g *Game) raylibCamera() rl.Camera3D {
	x, y, z := g.cam.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders one frame: bounds, particles, panel, HUD.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 8, B: 16, A: 255})

	cam := g.raylibCamera()
	rl.BeginMode3D(cam)
	renderer.DrawBounds(g.cfg.Physics.Bounds)
	g.particleRenderer.Draw(g.buffer)
	rl.EndMode3D()

	if g.panel != nil {
		g.panel.Draw()
	}
	g.drawHUD()

	rl.EndDrawing()

	g.collector.RecordFrame(float64(rl.GetFPS()))
	g.perfCollector.EndFrame()
}

// drawHUD renders the status line and key help.
func (g *Game) drawHUD() {
	line := fmt.Sprintf("particles %d/%d  undo %d  redo %d  dist %.0f  fps %d",
		g.store.Len(), g.store.Capacity(),
		g.history.UndoDepth(), g.history.RedoDepth(),
		g.cam.Dist, rl.GetFPS(),
	)
	rl.DrawText(line, 10, 10, 18, rl.RayWhite)

	if g.paused {
		rl.DrawText("PAUSED", 10, 34, 18, rl.Orange)
	}

	help := "click spawn | K kick | U undo | R redo | C clear | F5 save | F9 load | Tab panel | Space pause"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight()-26), 14, rl.Gray)
}
