// Package camera provides an orbit camera for viewing the particle volume.
package camera

import "math"

// Camera orbits the world origin at a fixed target, parameterized by yaw,
// pitch, and distance. Distance doubles as the HUD "zoom" readout.
type Camera struct {
	Yaw   float32 // Radians around the vertical axis
	Pitch float32 // Radians above the horizontal plane
	Dist  float32

	// Distance constraints
	MinDist, MaxDist float32
}

// pitchLimit keeps the camera off the poles so the view basis stays stable.
const pitchLimit = float32(math.Pi/2) - 0.05

// New creates a camera at the given distance with a gentle downward tilt.
func New(dist, minDist, maxDist float32) *Camera {
	c := &Camera{
		Yaw:     float32(math.Pi) / 4,
		Pitch:   0.35,
		MinDist: minDist,
		MaxDist: maxDist,
	}
	c.SetDist(dist)
	return c
}

// Position returns the camera's world-space position.
func (c *Camera) Position() (x, y, z float32) {
	cosP := float32(math.Cos(float64(c.Pitch)))
	x = c.Dist * cosP * float32(math.Cos(float64(c.Yaw)))
	y = c.Dist * float32(math.Sin(float64(c.Pitch)))
	z = c.Dist * cosP * float32(math.Sin(float64(c.Yaw)))
	return x, y, z
}

// Orbit rotates the camera by the given yaw/pitch deltas, clamping pitch
// away from the poles.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, -pitchLimit, pitchLimit)
}

// SetDist sets the orbit distance, clamped to min/max.
func (c *Camera) SetDist(dist float32) {
	c.Dist = clamp(dist, c.MinDist, c.MaxDist)
}

// ZoomBy moves the camera along the view axis by delta world units.
// Positive delta moves closer.
func (c *Camera) ZoomBy(delta float32) {
	c.SetDist(c.Dist - delta)
}

// Reset returns the camera to the default orientation at the given distance.
func (c *Camera) Reset(dist float32) {
	c.Yaw = float32(math.Pi) / 4
	c.Pitch = 0.35
	c.SetDist(dist)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
