package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int64

	// Current window tracking
	windowStartFrame int64

	// Event counters for current window
	spawns         int
	spawnedCount   int
	rejectedSpawns int
	undos          int
	redos          int
	kicks          int
	clears         int

	// Per-frame FPS samples for current window
	fpsSamples []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wall-clock seconds
// targetFPS: frames per second used to size the window in frames
func NewCollector(windowDurationSec float64, targetFPS int) *Collector {
	framesPerWindow := int64(windowDurationSec * float64(targetFPS))
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		windowStartFrame:     0,
		fpsSamples:           make([]float64, 0, framesPerWindow),
	}
}

// RecordSpawn records a spawn of n particles.
func (c *Collector) RecordSpawn(n int) {
	c.spawns++
	c.spawnedCount += n
}

// RecordRejectedSpawn records a spawn refused for lack of capacity.
func (c *Collector) RecordRejectedSpawn() {
	c.rejectedSpawns++
}

// RecordUndo records an undo that removed a batch.
func (c *Collector) RecordUndo() {
	c.undos++
}

// RecordRedo records a redo that restored a batch.
func (c *Collector) RecordRedo() {
	c.redos++
}

// RecordKick records a force kick applied to the whole store.
func (c *Collector) RecordKick() {
	c.kicks++
}

// RecordClear records a full clear of the sandbox.
func (c *Collector) RecordClear() {
	c.clears++
}

// RecordFrame records the FPS sample for one frame.
func (c *Collector) RecordFrame(fps float64) {
	if fps > 0 {
		c.fpsSamples = append(c.fpsSamples, fps)
	}
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int64) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the live state at window end: particle count, history
// depths, and camera distance.
func (c *Collector) Flush(
	currentFrame int64,
	simTimeSec float64,
	particleCount int,
	undoDepth, redoDepth int,
	cameraDist float64,
) WindowStats {
	fpsMean, fpsP10, fpsP50, fpsP90 := ComputeFrameStats(c.fpsSamples)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       simTimeSec,

		ParticleCount: particleCount,
		UndoDepth:     undoDepth,
		RedoDepth:     redoDepth,
		CameraDist:    cameraDist,

		Spawns:         c.spawns,
		SpawnedCount:   c.spawnedCount,
		RejectedSpawns: c.rejectedSpawns,
		Undos:          c.undos,
		Redos:          c.redos,
		Kicks:          c.kicks,
		Clears:         c.clears,

		FPSMean: fpsMean,
		FPSP10:  fpsP10,
		FPSP50:  fpsP50,
		FPSP90:  fpsP90,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.spawns = 0
	c.spawnedCount = 0
	c.rejectedSpawns = 0
	c.undos = 0
	c.redos = 0
	c.kicks = 0
	c.clears = 0
	c.fpsSamples = c.fpsSamples[:0]

	return stats
}
