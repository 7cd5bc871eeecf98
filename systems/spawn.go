package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/pthm-cable/stardust/particles"
)

// gravityPresets maps preset names to per-step downward acceleration, in
// simulation units (not SI).
var gravityPresets = map[string]float32{
	"none":  0,
	"earth": 0.01,
	"moon":  0.002,
	"mars":  0.004,
}

// ErrUnknownGravity is returned for a gravity preset name not in the table.
var ErrUnknownGravity = errors.New("systems: unknown gravity preset")

// GravityPreset resolves a named gravity preset.
func GravityPreset(name string) (float32, error) {
	g, ok := gravityPresets[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGravity, name)
	}
	return g, nil
}

// GravityPresetNames returns the preset names in menu order.
func GravityPresetNames() []string {
	return []string{"none", "earth", "moon", "mars"}
}

// SpawnRequest describes one spawn invocation. Count and the appearance
// fields come from the live settings surface at dispatch time; Explicit is
// set only on the load path, where positions and velocities are taken
// verbatim and no jitter applies.
type SpawnRequest struct {
	Count   int
	Origin  particles.Vec3
	Size    float32
	Color   particles.Color
	Gravity float32

	// Explicit, when non-nil, carries fully specified particles from a
	// loaded configuration. Count and the fields above are ignored.
	Explicit []particles.Particle
}

// Spawner turns spawn requests into batches and applies them to the store
// and history as one atomic unit.
type Spawner struct {
	store   *particles.Store
	history *History
	rng     *rand.Rand

	posJitter float32
	velRange  float32
}

// NewSpawner creates a spawner over the given store and history.
func NewSpawner(store *particles.Store, history *History, rng *rand.Rand, posJitter, velRange float32) *Spawner {
	return &Spawner{
		store:     store,
		history:   history,
		rng:       rng,
		posJitter: posJitter,
		velRange:  velRange,
	}
}

// Spawn generates a batch from the request, appends it to the store, and
// pushes it onto the undo stack (clearing redo). All-or-nothing: if the
// batch would exceed store capacity nothing changes and ErrCapacity is
// returned. A request for zero or fewer particles is a silent no-op.
func (s *Spawner) Spawn(req SpawnRequest) error {
	batch := s.build(req)
	if batch.Len() == 0 {
		return nil
	}
	if err := s.store.Append(batch); err != nil {
		return err
	}
	s.history.PushSpawn(batch)
	return nil
}

// build produces the batch for a request without side effects.
func (s *Spawner) build(req SpawnRequest) particles.Batch {
	if req.Explicit != nil {
		cp := make([]particles.Particle, len(req.Explicit))
		copy(cp, req.Explicit)
		return particles.Batch{Particles: cp}
	}
	if req.Count <= 0 {
		return particles.Batch{}
	}

	ps := make([]particles.Particle, req.Count)
	for i := range ps {
		ps[i] = particles.Particle{
			Position: particles.Vec3{
				X: req.Origin.X + s.uniform(s.posJitter),
				Y: req.Origin.Y + s.uniform(s.posJitter),
				Z: req.Origin.Z + s.uniform(s.posJitter),
			},
			Velocity: particles.Vec3{
				X: s.uniform(s.velRange),
				Y: s.uniform(s.velRange),
				Z: s.uniform(s.velRange),
			},
			Color:   req.Color,
			Size:    req.Size,
			Gravity: req.Gravity,
		}
	}
	return particles.Batch{Particles: ps}
}

// uniform samples [-halfExtent, halfExtent].
func (s *Spawner) uniform(halfExtent float32) float32 {
	return (s.rng.Float32()*2 - 1) * halfExtent
}
