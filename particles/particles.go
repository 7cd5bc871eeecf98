// Package particles defines the particle data model and the authoritative
// ordered store the rest of the sandbox operates on.
package particles

// Vec3 is a position or velocity in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Color is a packed RGB color.
type Color struct {
	R, G, B uint8
}

// Particle is one point particle. Particles carry no identity; they are
// addressed by their index in the store.
type Particle struct {
	Position Vec3
	Velocity Vec3
	Color    Color
	Size     float32 // Uniform render scale, positive
	Gravity  float32 // Per-particle downward acceleration, non-negative
}

// Batch is an ordered run of particles created together by one spawn or one
// load. A batch is the unit of undo/redo.
type Batch struct {
	Particles []Particle
}

// Len returns the number of particles in the batch.
func (b Batch) Len() int {
	return len(b.Particles)
}

// Clone returns a deep copy of the batch. History stacks hold clones so
// later physics mutation of the live store cannot alter a stored snapshot.
func (b Batch) Clone() Batch {
	cp := make([]Particle, len(b.Particles))
	copy(cp, b.Particles)
	return Batch{Particles: cp}
}
