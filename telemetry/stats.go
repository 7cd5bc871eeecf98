// Package telemetry samples frame timing and simulation state on a fixed
// window for the HUD, structured logs, and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Live state at window end
	ParticleCount int     `csv:"particles"`
	UndoDepth     int     `csv:"undo_depth"`
	RedoDepth     int     `csv:"redo_depth"`
	CameraDist    float64 `csv:"camera_dist"`

	// Events during the window
	Spawns         int `csv:"spawns"`
	SpawnedCount   int `csv:"spawned_particles"`
	RejectedSpawns int `csv:"rejected_spawns"`
	Undos          int `csv:"undos"`
	Redos          int `csv:"redos"`
	Kicks          int `csv:"kicks"`
	Clears         int `csv:"clears"`

	// Frame timing over the window
	FPSMean float64 `csv:"fps_mean"`
	FPSP10  float64 `csv:"fps_p10"`
	FPSP50  float64 `csv:"fps_p50"`
	FPSP90  float64 `csv:"fps_p90"`
}

// ComputeFrameStats calculates mean and percentiles from per-frame FPS
// samples. Returns zeros for an empty sample set.
func ComputeFrameStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.ParticleCount),
		slog.Int("undo_depth", s.UndoDepth),
		slog.Int("redo_depth", s.RedoDepth),
		slog.Float64("camera_dist", s.CameraDist),
		slog.Int("spawns", s.Spawns),
		slog.Int("spawned_particles", s.SpawnedCount),
		slog.Int("rejected_spawns", s.RejectedSpawns),
		slog.Int("undos", s.Undos),
		slog.Int("redos", s.Redos),
		slog.Int("kicks", s.Kicks),
		slog.Int("clears", s.Clears),
		slog.Float64("fps_mean", s.FPSMean),
		slog.Float64("fps_p10", s.FPSP10),
		slog.Float64("fps_p50", s.FPSP50),
		slog.Float64("fps_p90", s.FPSP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"particles", s.ParticleCount,
		"undo_depth", s.UndoDepth,
		"redo_depth", s.RedoDepth,
		"camera_dist", s.CameraDist,
		"spawns", s.Spawns,
		"spawned_particles", s.SpawnedCount,
		"rejected_spawns", s.RejectedSpawns,
		"undos", s.Undos,
		"redos", s.Redos,
		"kicks", s.Kicks,
		"clears", s.Clears,
		"fps_mean", s.FPSMean,
		"fps_p10", s.FPSP10,
		"fps_p50", s.FPSP50,
		"fps_p90", s.FPSP90,
	)
}
