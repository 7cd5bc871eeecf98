package systems

import "github.com/pthm-cable/stardust/particles"

// History holds the undo and redo stacks of spawn batches. Batches on the
// stacks are snapshots taken at push time: the live store drifts under
// physics, the snapshots do not.
//
// Invariant: the sum of undo-stack batch lengths always equals the store
// length, because every store append pushes a matching batch and undo/redo
// move whole batches between the tail of the store and the stacks.
type History struct {
	undo []particles.Batch
	redo []particles.Batch
}

// NewHistory creates empty undo/redo stacks.
func NewHistory() *History {
	return &History{}
}

// PushSpawn records a freshly appended batch. Any redo entries are
// invalidated: after a new spawn there is nothing to redo onto.
func (h *History) PushSpawn(b particles.Batch) {
	h.undo = append(h.undo, b.Clone())
	h.redo = h.redo[:0]
}

// Undo pops the newest batch, truncates its particles off the store tail,
// and parks the batch on the redo stack. No-op when the undo stack is empty.
func (h *History) Undo(store *particles.Store) error {
	if len(h.undo) == 0 {
		return nil
	}
	top := h.undo[len(h.undo)-1]
	if err := store.TruncateTail(top.Len()); err != nil {
		return err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	return nil
}

// Redo re-appends the most recently undone batch, restoring its exact
// spawn-time particle values, and moves it back to the undo stack. No-op
// when the redo stack is empty.
func (h *History) Redo(store *particles.Store) error {
	if len(h.redo) == 0 {
		return nil
	}
	top := h.redo[len(h.redo)-1]
	if err := store.Append(top); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	return nil
}

// Clear empties both stacks. Paired with Store.Clear; the wipe itself is
// not reversible.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// UndoDepth returns the number of batches available to undo.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the number of batches available to redo.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

// TrackedLen returns the total particle count accounted for by the undo
// stack. Equals the store length whenever the invariant holds.
func (h *History) TrackedLen() int {
	total := 0
	for _, b := range h.undo {
		total += b.Len()
	}
	return total
}
