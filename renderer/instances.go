// Package renderer mirrors simulation state into a fixed-capacity instance
// buffer and draws it with raylib.
package renderer

import (
	"fmt"

	"github.com/pthm-cable/stardust/particles"
)

// InstanceTransform is one buffer slot's placement: a translation plus a
// uniform scale.
type InstanceTransform struct {
	X, Y, Z float32
	Scale   float32
}

// InstanceBuffer is the fixed-capacity per-slot transform/color array handed
// to the draw path each frame. Slots at index >= Count() hold stale data
// from earlier frames; they are never read by the renderer.
type InstanceBuffer struct {
	transforms []InstanceTransform
	colors     []particles.Color
	count      int
	dirty      bool
}

// NewInstanceBuffer allocates a buffer with the given slot capacity.
func NewInstanceBuffer(capacity int) *InstanceBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &InstanceBuffer{
		transforms: make([]InstanceTransform, capacity),
		colors:     make([]particles.Color, capacity),
	}
}

// Sync rewrites slot i from particle i for every live particle and updates
// the active count. It reads the store and never mutates physics state.
// A store larger than the buffer is an upstream capacity-policy violation,
// reported rather than silently truncated.
func (ib *InstanceBuffer) Sync(store *particles.Store) error {
	n := store.Len()
	if n > len(ib.transforms) {
		return fmt.Errorf("renderer: %d particles exceed %d buffer slots", n, len(ib.transforms))
	}
	live := store.All()
	for i := 0; i < n; i++ {
		p := &live[i]
		ib.transforms[i] = InstanceTransform{
			X:     p.Position.X,
			Y:     p.Position.Y,
			Z:     p.Position.Z,
			Scale: p.Size,
		}
		ib.colors[i] = p.Color
	}
	ib.count = n
	ib.dirty = true
	return nil
}

// Transforms returns the active transform slots.
func (ib *InstanceBuffer) Transforms() []InstanceTransform {
	return ib.transforms[:ib.count]
}

// Colors returns the active color slots.
func (ib *InstanceBuffer) Colors() []particles.Color {
	return ib.colors[:ib.count]
}

// Count returns the number of active slots.
func (ib *InstanceBuffer) Count() int {
	return ib.count
}

// Capacity returns the total slot count.
func (ib *InstanceBuffer) Capacity() int {
	return len(ib.transforms)
}

// Dirty reports whether the buffer changed since the last upload.
func (ib *InstanceBuffer) Dirty() bool {
	return ib.dirty
}

// MarkClean clears the dirty flag after the draw path consumes the buffer.
func (ib *InstanceBuffer) MarkClean() {
	ib.dirty = false
}
