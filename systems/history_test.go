package systems

import (
	"testing"

	"github.com/pthm-cable/stardust/particles"
)

func makeBatch(n int, x float32) particles.Batch {
	b := particles.Batch{Particles: make([]particles.Particle, n)}
	for i := range b.Particles {
		b.Particles[i] = particles.Particle{Position: particles.Vec3{X: x}, Size: 1}
	}
	return b
}

func TestUndoRedoBatchScenario(t *testing.T) {
	// Spawn batch A (3 particles), then batch B (2). Two undos empty the
	// store in reverse order; two redos restore A then B.
	store := particles.NewStore(100)
	h := NewHistory()

	a := makeBatch(3, 1)
	b := makeBatch(2, 2)

	for _, batch := range []particles.Batch{a, b} {
		if err := store.Append(batch); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		h.PushSpawn(batch)
	}

	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := store.Len(); got != 3 {
		t.Fatalf("Len() after first undo = %d, want 3", got)
	}

	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := store.Len(); got != 0 {
		t.Fatalf("Len() after second undo = %d, want 0", got)
	}

	if err := h.Redo(store); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if got := store.Len(); got != 3 {
		t.Fatalf("Len() after first redo = %d, want 3", got)
	}
	if got := store.At(0).Position.X; got != 1 {
		t.Errorf("first redo restored batch with X=%v, want 1 (batch A)", got)
	}

	if err := h.Redo(store); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if got := store.Len(); got != 5 {
		t.Fatalf("Len() after second redo = %d, want 5", got)
	}
	if got := store.At(3).Position.X; got != 2 {
		t.Errorf("second redo restored batch with X=%v, want 2 (batch B)", got)
	}
}

func TestUndoEmptyStackIsNoOp(t *testing.T) {
	store := particles.NewStore(10)
	h := NewHistory()

	if err := h.Undo(store); err != nil {
		t.Errorf("Undo() on empty stack error = %v, want nil", err)
	}
	if err := h.Redo(store); err != nil {
		t.Errorf("Redo() on empty stack error = %v, want nil", err)
	}
	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestRedoRestoresSpawnTimeValues(t *testing.T) {
	// Physics drift between spawn and undo must not leak into the
	// snapshot the redo restores.
	store := particles.NewStore(10)
	h := NewHistory()

	b := makeBatch(1, 5)
	if err := store.Append(b); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	h.PushSpawn(b)

	// Simulate drift on the live particle
	store.At(0).Position.X = 77

	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if err := h.Redo(store); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}

	if got := store.At(0).Position.X; got != 5 {
		t.Errorf("redo restored X=%v, want spawn-time value 5", got)
	}
}

func TestPushSpawnSnapshotsBatch(t *testing.T) {
	// Mutating the caller's batch after the push must not affect history.
	store := particles.NewStore(10)
	h := NewHistory()

	b := makeBatch(2, 3)
	if err := store.Append(b); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	h.PushSpawn(b)

	b.Particles[0].Position.X = 99

	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if err := h.Redo(store); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}

	if got := store.At(0).Position.X; got != 3 {
		t.Errorf("history snapshot X=%v, want 3", got)
	}
}

func TestTrackedLenMatchesStore(t *testing.T) {
	store := particles.NewStore(100)
	h := NewHistory()

	for i := 1; i <= 4; i++ {
		b := makeBatch(i, float32(i))
		if err := store.Append(b); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		h.PushSpawn(b)
	}

	if h.TrackedLen() != store.Len() {
		t.Fatalf("TrackedLen() = %d, store.Len() = %d", h.TrackedLen(), store.Len())
	}

	// Invariant holds across undo and redo
	for i := 0; i < 2; i++ {
		if err := h.Undo(store); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		if h.TrackedLen() != store.Len() {
			t.Errorf("after undo %d: TrackedLen() = %d, store.Len() = %d", i, h.TrackedLen(), store.Len())
		}
	}
	if err := h.Redo(store); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if h.TrackedLen() != store.Len() {
		t.Errorf("after redo: TrackedLen() = %d, store.Len() = %d", h.TrackedLen(), store.Len())
	}
}

func TestClearEmptiesBothStacks(t *testing.T) {
	store := particles.NewStore(10)
	h := NewHistory()

	b := makeBatch(2, 1)
	if err := store.Append(b); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	h.PushSpawn(b)
	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}

	h.Clear()
	if h.UndoDepth() != 0 || h.RedoDepth() != 0 {
		t.Errorf("depths after Clear() = %d/%d, want 0/0", h.UndoDepth(), h.RedoDepth())
	}
}
