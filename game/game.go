// Package game owns the frame loop. It is the only place the particle
// store, the history stacks, and the instance buffer are mutated; every
// other component submits intents and the loop applies them at the frame
// boundary before physics runs.
package game

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/stardust/camera"
	"github.com/pthm-cable/stardust/config"
	"github.com/pthm-cable/stardust/particles"
	"github.com/pthm-cable/stardust/persist"
	"github.com/pthm-cable/stardust/renderer"
	"github.com/pthm-cable/stardust/systems"
	"github.com/pthm-cable/stardust/telemetry"
	"github.com/pthm-cable/stardust/ui"
)

// Options holds runtime options for game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	SaveDir        string
	OutputDir      string
	Headless       bool
}

// Game holds the complete sandbox state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	store      *particles.Store
	integrator *systems.Integrator
	history    *systems.History
	spawner    *systems.Spawner

	buffer           *renderer.InstanceBuffer
	particleRenderer *renderer.ParticleRenderer
	cam              *camera.Camera

	settings *ui.Settings
	panel    *ui.Panel

	saves *persist.Store

	intents intentQueue

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	frame    int64
	paused   bool
	headless bool
}

// NewGameWithOptions creates a game with explicit runtime options.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	store := particles.NewStore(cfg.Buffer.Capacity)
	history := systems.NewHistory()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:        cfg,
		rng:        rng,
		store:      store,
		history:    history,
		integrator: systems.NewIntegrator(cfg.Physics.Drag, cfg.Physics.Bounds, cfg.Physics.BounceFactor),
		spawner:    systems.NewSpawner(store, history, rng, cfg.Spawn.PositionJitter, cfg.Spawn.VelocityRange),
		buffer:     renderer.NewInstanceBuffer(cfg.Buffer.Capacity),
		cam:        camera.New(cfg.Camera.Distance, cfg.Camera.MinDistance, cfg.Camera.MaxDistance),
		settings:   ui.NewSettings(cfg.Spawn.BurstCount, cfg.Spawn.DefaultSize, cfg.Spawn.DefaultColor),
		logStats:   opts.LogStats,
		headless:   opts.Headless,
	}

	if !opts.Headless {
		g.particleRenderer = renderer.NewParticleRenderer()
		g.panel = ui.NewPanel(g.settings)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Screen.TargetFPS)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	saveDir := opts.SaveDir
	if saveDir == "" {
		saveDir = cfg.Persist.Dir
	}
	saves, err := persist.NewStore(saveDir)
	if err != nil {
		return nil, err
	}
	g.saves = saves

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	return g, nil
}

// Update runs one frame in graphical mode: input, intents, physics, sync.
func (g *Game) Update() {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(telemetry.PhaseIntents)
	g.handleInput()
	g.applyIntents()

	if !g.paused {
		g.perfCollector.StartPhase(telemetry.PhasePhysics)
		g.integrator.Step(g.store)
	}

	g.perfCollector.StartPhase(telemetry.PhaseSync)
	g.syncBuffer()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.flushTelemetry()
}

// UpdateHeadless runs one frame without any raylib calls. Intents submitted
// programmatically still drain at the frame boundary.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()

	g.perfCollector.StartPhase(telemetry.PhaseIntents)
	g.applyIntents()

	if !g.paused {
		g.perfCollector.StartPhase(telemetry.PhasePhysics)
		g.integrator.Step(g.store)
	}

	g.perfCollector.StartPhase(telemetry.PhaseSync)
	g.syncBuffer()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.flushTelemetry()
	g.perfCollector.EndFrame()
}

// applyIntents drains the queue in submission order and applies each intent
// to the store. This runs strictly before the physics step.
func (g *Game) applyIntents() {
	for _, in := range g.intents.drain() {
		switch in.kind {
		case intentSpawn:
			n := in.spawn.Count
			if in.spawn.Explicit != nil {
				n = len(in.spawn.Explicit)
			}
			if err := g.spawner.Spawn(in.spawn); err != nil {
				if errors.Is(err, particles.ErrCapacity) {
					g.collector.RecordRejectedSpawn()
					slog.Warn("spawn rejected", "count", n, "live", g.store.Len(), "capacity", g.store.Capacity())
				} else {
					slog.Error("spawn failed", "error", err)
				}
				continue
			}
			if n > 0 {
				g.collector.RecordSpawn(n)
			}
		case intentKick:
			systems.Kick(g.store, g.rng, g.cfg.Kick.MaxImpulse)
			g.collector.RecordKick()
		case intentUndo:
			if g.history.UndoDepth() == 0 {
				continue
			}
			if err := g.history.Undo(g.store); err != nil {
				slog.Error("undo failed", "error", err)
				continue
			}
			g.collector.RecordUndo()
			// Tail slots changed identity; a later spawn this frame may
			// refill them with different particles
			if g.particleRenderer != nil {
				g.particleRenderer.ResetTrails()
			}
		case intentRedo:
			if g.history.RedoDepth() == 0 {
				continue
			}
			if err := g.history.Redo(g.store); err != nil {
				slog.Error("redo failed", "error", err)
				continue
			}
			g.collector.RecordRedo()
		case intentClear:
			g.store.Clear()
			g.history.Clear()
			g.collector.RecordClear()
			if g.particleRenderer != nil {
				g.particleRenderer.ResetTrails()
			}
		}
	}
}

// syncBuffer mirrors the store into the instance buffer.
func (g *Game) syncBuffer() {
	if err := g.buffer.Sync(g.store); err != nil {
		slog.Error("instance buffer sync failed", "error", err)
	}
}

// SubmitSpawn queues a spawn intent for the next frame boundary.
func (g *Game) SubmitSpawn(req systems.SpawnRequest) {
	g.intents.push(Intent{kind: intentSpawn, spawn: req})
}

// SubmitKick queues a force kick.
func (g *Game) SubmitKick() {
	g.intents.push(Intent{kind: intentKick})
}

// SubmitUndo queues an undo.
func (g *Game) SubmitUndo() {
	g.intents.push(Intent{kind: intentUndo})
}

// SubmitRedo queues a redo.
func (g *Game) SubmitRedo() {
	g.intents.push(Intent{kind: intentRedo})
}

// SubmitClear queues a full wipe of the store and both history stacks.
func (g *Game) SubmitClear() {
	g.intents.push(Intent{kind: intentClear})
}

// Frame returns the current frame number.
func (g *Game) Frame() int64 {
	return g.frame
}

// ParticleCount returns the number of live particles.
func (g *Game) ParticleCount() int {
	return g.store.Len()
}

// Paused reports whether physics is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the physics step. Intents still drain while
// paused.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

// Unload releases resources and flushes outputs.
func (g *Game) Unload() {
	g.intents.reset()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output manager", "error", err)
	}
}
