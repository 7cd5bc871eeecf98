package game

import (
	"errors"
	"log/slog"

	"github.com/pthm-cable/stardust/persist"
	"github.com/pthm-cable/stardust/systems"
)

const quicksaveName = "quicksave"

// Quicksave writes the current live particles to the quicksave slot,
// replacing any previous quicksave. Snapshot values are copied, so later
// physics steps cannot alter the saved file.
func (g *Game) Quicksave() {
	cfg := persist.FromParticles(quicksaveName, "quicksave", g.store.All())
	if err := g.saves.Overwrite(cfg); err != nil {
		slog.Error("quicksave failed", "error", err)
		return
	}
	slog.Info("saved configuration", "name", quicksaveName, "particles", len(cfg.Particles))
}

// Quickload reads the quicksave slot and queues its particles as a spawn
// intent with explicit positions and velocities. The load lands at the next
// frame boundary through the same queue as every other spawn, and is
// undoable as a single batch.
func (g *Game) Quickload() {
	g.LoadConfiguration(quicksaveName)
}

// LoadConfiguration loads a named configuration and queues it for spawning.
func (g *Game) LoadConfiguration(name string) {
	cfg, err := g.saves.Load(name)
	if err != nil {
		if errors.Is(err, persist.ErrNotFound) {
			slog.Warn("no saved configuration", "name", name)
		} else {
			slog.Error("load failed", "name", name, "error", err)
		}
		return
	}

	g.SubmitSpawn(systems.SpawnRequest{
		Explicit: persist.ToParticles(cfg),
	})
	slog.Info("loaded configuration", "name", name, "particles", len(cfg.Particles))
}
