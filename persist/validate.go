package persist

import (
	"fmt"
	"math"
	"time"

	"github.com/pthm-cable/stardust/particles"
)

// Validate checks a configuration before it is written or handed to the
// spawner. The core never sees a structurally invalid config.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidConfig)
	}
	for i := range cfg.Particles {
		p := &cfg.Particles[i]
		if p.Size <= 0 {
			return fmt.Errorf("%w: particle %d: size %g must be positive", ErrInvalidConfig, i, p.Size)
		}
		if p.Gravity < 0 {
			return fmt.Errorf("%w: particle %d: gravity %g must be non-negative", ErrInvalidConfig, i, p.Gravity)
		}
		if _, err := particles.ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: particle %d: %v", ErrInvalidConfig, i, err)
		}
		for axis := 0; axis < 3; axis++ {
			if !finite(p.Position[axis]) || !finite(p.Velocity[axis]) {
				return fmt.Errorf("%w: particle %d: non-finite value on axis %d", ErrInvalidConfig, i, axis)
			}
		}
	}
	return nil
}

// ToParticles converts a validated config into live particle values for an
// explicit spawn. Call Validate first; unparseable colors panic here.
func ToParticles(cfg *Config) []particles.Particle {
	out := make([]particles.Particle, len(cfg.Particles))
	for i := range cfg.Particles {
		pc := &cfg.Particles[i]
		col, err := particles.ParseColor(pc.Color)
		if err != nil {
			panic(fmt.Sprintf("persist: unvalidated config: %v", err))
		}
		out[i] = particles.Particle{
			Position: particles.Vec3{X: pc.Position[0], Y: pc.Position[1], Z: pc.Position[2]},
			Velocity: particles.Vec3{X: pc.Velocity[0], Y: pc.Velocity[1], Z: pc.Velocity[2]},
			Color:    col,
			Size:     pc.Size,
			Gravity:  pc.Gravity,
		}
	}
	return out
}

// FromParticles builds the saveable form of the current live particles.
func FromParticles(name, description string, live []particles.Particle) *Config {
	out := make([]ParticleConfig, len(live))
	for i := range live {
		p := &live[i]
		out[i] = ParticleConfig{
			Position: [3]float32{p.Position.X, p.Position.Y, p.Position.Z},
			Velocity: [3]float32{p.Velocity.X, p.Velocity.Y, p.Velocity.Z},
			Color:    particles.FormatColor(p.Color),
			Size:     p.Size,
			Gravity:  p.Gravity,
		}
	}
	return &Config{
		Name:        name,
		SavedAt:     time.Now(),
		Description: description,
		Particles:   out,
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
