// Package systems implements the per-frame simulation logic: the physics
// integrator, the spawn batcher, the history manager, and the force kick.
package systems

import (
	"math/rand"

	"github.com/pthm-cable/stardust/particles"
)

// Integrator advances every live particle one step per frame.
type Integrator struct {
	Drag         float32 // Uniform velocity damping per step, in (0, 1)
	Bounds       float32 // Half-extent of the axis-aligned world box
	BounceFactor float32 // Velocity fraction kept on boundary hit, in (0, 1)
}

// NewIntegrator creates an integrator with the given parameters.
func NewIntegrator(drag, bounds, bounce float32) *Integrator {
	return &Integrator{Drag: drag, Bounds: bounds, BounceFactor: bounce}
}

// Step advances the whole store one tick, in index order. Per particle the
// op order is fixed: gravity, drag, position, then per-axis boundary
// reflection. Step knows nothing about batches or history.
func (it *Integrator) Step(store *particles.Store) {
	n := store.Len()
	for i := 0; i < n; i++ {
		p := store.At(i)

		p.Velocity.Y -= p.Gravity

		p.Velocity.X *= it.Drag
		p.Velocity.Y *= it.Drag
		p.Velocity.Z *= it.Drag

		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Position.Z += p.Velocity.Z

		p.Position.X, p.Velocity.X = it.reflect(p.Position.X, p.Velocity.X)
		p.Position.Y, p.Velocity.Y = it.reflect(p.Position.Y, p.Velocity.Y)
		p.Position.Z, p.Velocity.Z = it.reflect(p.Position.Z, p.Velocity.Z)
	}
}

// reflect clamps one axis to [-Bounds, Bounds] and redirects the velocity
// back into the box with BounceFactor damping. Total over all real inputs.
func (it *Integrator) reflect(pos, vel float32) (float32, float32) {
	if pos > it.Bounds {
		return it.Bounds, -abs32(vel) * it.BounceFactor
	}
	if pos < -it.Bounds {
		return -it.Bounds, abs32(vel) * it.BounceFactor
	}
	return pos, vel
}

// Kick adds an independent uniform random impulse in [-maxImpulse, maxImpulse]
// per axis to every particle's velocity. Positions are untouched and the
// operation does not go through the history stacks.
func Kick(store *particles.Store, rng *rand.Rand, maxImpulse float32) {
	n := store.Len()
	for i := 0; i < n; i++ {
		p := store.At(i)
		p.Velocity.X += (rng.Float32()*2 - 1) * maxImpulse
		p.Velocity.Y += (rng.Float32()*2 - 1) * maxImpulse
		p.Velocity.Z += (rng.Float32()*2 - 1) * maxImpulse
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
