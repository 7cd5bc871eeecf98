package particles

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when an append would push the store past its
// hard capacity. The whole batch is rejected; no partial spawn.
var ErrCapacity = errors.New("particles: store capacity exceeded")

// Store is the single authoritative ordered sequence of live particles.
// Mutations are append-at-tail and truncate-at-tail only; elements are never
// reordered or spliced from the middle, which is what lets history batches
// map back onto contiguous tails of the store.
type Store struct {
	items    []Particle
	capacity int
}

// NewStore creates an empty store with the given hard capacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		items:    make([]Particle, 0, capacity),
		capacity: capacity,
	}
}

// Append adds the batch's particles to the tail. The batch is copied in, so
// the caller's slice may be reused. Fails with ErrCapacity if the whole
// batch does not fit; the store is left unchanged.
func (s *Store) Append(b Batch) error {
	if len(s.items)+b.Len() > s.capacity {
		return fmt.Errorf("%w: %d live + %d new > %d", ErrCapacity, len(s.items), b.Len(), s.capacity)
	}
	s.items = append(s.items, b.Particles...)
	return nil
}

// TruncateTail removes the last n particles. n beyond the current length is
// a stack-invariant violation upstream, so it fails loudly instead of
// clamping.
func (s *Store) TruncateTail(n int) error {
	if n < 0 || n > len(s.items) {
		return fmt.Errorf("particles: truncate %d of %d", n, len(s.items))
	}
	s.items = s.items[:len(s.items)-n]
	return nil
}

// Clear empties the store unconditionally.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Len returns the current particle count.
func (s *Store) Len() int {
	return len(s.items)
}

// Capacity returns the hard capacity.
func (s *Store) Capacity() int {
	return s.capacity
}

// At returns a pointer to the particle at index i for in-place mutation by
// the integrator. The pointer must not be retained across frames.
func (s *Store) At(i int) *Particle {
	return &s.items[i]
}

// All returns the live particles in index order. The slice aliases store
// memory and is valid only for the current frame; callers must not retain
// or resize it.
func (s *Store) All() []Particle {
	return s.items
}
