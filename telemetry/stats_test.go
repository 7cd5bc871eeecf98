package telemetry

import (
	"math"
	"testing"
)

func TestComputeFrameStats(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mean, p10, p50, p90 := ComputeFrameStats(values)

	if math.Abs(mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", mean)
	}

	// Empirical quantile: the smallest sample with CDF >= p
	if math.Abs(p10-10) > 0.001 {
		t.Errorf("p10 = %v, want 10", p10)
	}

	if math.Abs(p50-50) > 0.001 {
		t.Errorf("p50 = %v, want 50", p50)
	}

	if math.Abs(p90-90) > 0.001 {
		t.Errorf("p90 = %v, want 90", p90)
	}
}

func TestComputeFrameStatsUnsortedInput(t *testing.T) {
	mean1, p10a, p50a, p90a := ComputeFrameStats([]float64{60, 30, 90})
	mean2, p10b, p50b, p90b := ComputeFrameStats([]float64{30, 60, 90})

	if mean1 != mean2 || p10a != p10b || p50a != p50b || p90a != p90b {
		t.Error("stats should not depend on sample order")
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeFrameStats([]float64{})

	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(2.0, 60)

	c.RecordSpawn(50)
	c.RecordSpawn(50)
	c.RecordRejectedSpawn()
	c.RecordUndo()
	c.RecordRedo()
	c.RecordKick()
	c.RecordClear()
	c.RecordFrame(60)
	c.RecordFrame(60)

	stats := c.Flush(120, 2.0, 100, 2, 1, 420)

	if stats.Spawns != 2 {
		t.Errorf("Spawns = %d, want 2", stats.Spawns)
	}
	if stats.SpawnedCount != 100 {
		t.Errorf("SpawnedCount = %d, want 100", stats.SpawnedCount)
	}
	if stats.RejectedSpawns != 1 {
		t.Errorf("RejectedSpawns = %d, want 1", stats.RejectedSpawns)
	}
	if stats.Undos != 1 || stats.Redos != 1 || stats.Kicks != 1 || stats.Clears != 1 {
		t.Errorf("event counts = %d/%d/%d/%d, want 1/1/1/1",
			stats.Undos, stats.Redos, stats.Kicks, stats.Clears)
	}
	if stats.ParticleCount != 100 {
		t.Errorf("ParticleCount = %d, want 100", stats.ParticleCount)
	}
	if stats.UndoDepth != 2 || stats.RedoDepth != 1 {
		t.Errorf("depths = %d/%d, want 2/1", stats.UndoDepth, stats.RedoDepth)
	}
	if math.Abs(stats.FPSMean-60) > 0.001 {
		t.Errorf("FPSMean = %v, want 60", stats.FPSMean)
	}

	// Flush resets counters and starts a new window
	stats2 := c.Flush(240, 4.0, 100, 2, 1, 420)
	if stats2.Spawns != 0 || stats2.SpawnedCount != 0 {
		t.Error("counters should reset after flush")
	}
	if stats2.WindowStartFrame != 120 {
		t.Errorf("WindowStartFrame = %d, want 120", stats2.WindowStartFrame)
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(2.0, 60)

	if c.ShouldFlush(60) {
		t.Error("should not flush before the window elapses")
	}
	if !c.ShouldFlush(120) {
		t.Error("should flush once the window elapses")
	}

	c.Flush(120, 2.0, 0, 0, 0, 0)
	if c.ShouldFlush(180) {
		t.Error("window should restart after flush")
	}
}
