package game

import "github.com/pthm-cable/stardust/systems"

// intentKind identifies what a queued intent asks the frame loop to do.
type intentKind int

const (
	intentSpawn intentKind = iota
	intentKick
	intentUndo
	intentRedo
	intentClear
)

// Intent is one queued request against the particle store. Everything that
// mutates the store travels through the queue, including loads from disk,
// which arrive as spawn intents with explicit particles.
type Intent struct {
	kind  intentKind
	spawn systems.SpawnRequest
}

// intentQueue collects intents between frames. The frame loop drains it in
// submission order before the physics step, so nothing touches the store
// mid-integration.
type intentQueue struct {
	pending []Intent
}

// push appends an intent.
func (q *intentQueue) push(in Intent) {
	q.pending = append(q.pending, in)
}

// drain returns the queued intents in FIFO order and empties the queue.
func (q *intentQueue) drain() []Intent {
	out := q.pending
	q.pending = nil
	return out
}

// reset discards any queued intents.
func (q *intentQueue) reset() {
	q.pending = nil
}

// Len returns the number of queued intents.
func (q *intentQueue) Len() int {
	return len(q.pending)
}
