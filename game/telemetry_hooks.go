package game

import "log/slog"

// flushTelemetry checks if the stats window should be flushed and emits it.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	simTime := float64(g.frame) / float64(g.cfg.Screen.TargetFPS)
	stats := g.collector.Flush(
		g.frame,
		simTime,
		g.store.Len(),
		g.history.UndoDepth(),
		g.history.RedoDepth(),
		float64(g.cam.Dist),
	)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
