// Package ui holds the spawn settings surface and its control panel. The
// settings are edited by the panel and read by the frame loop when it turns
// input into spawn intents; nothing here touches the particle store directly.
package ui

// SpawnMode selects how many particles a click produces.
type SpawnMode int

const (
	ModeSingle SpawnMode = iota
	ModeBurst
)

// String returns the mode name.
func (m SpawnMode) String() string {
	if m == ModeBurst {
		return "burst"
	}
	return "single"
}

// Settings is the live spawn configuration edited through the panel.
// Glow and trail are mutually exclusive; the setters enforce that here so
// the renderer never has to arbitrate.
type Settings struct {
	count   int
	size    float32
	color   string
	mode    SpawnMode
	glow    bool
	trail   bool
	gravity string
}

// NewSettings creates settings with the given initial values.
func NewSettings(count int, size float32, color string) *Settings {
	return &Settings{
		count:   count,
		size:    size,
		color:   color,
		mode:    ModeBurst,
		gravity: "earth",
	}
}

// Count returns the number of particles a burst spawn produces.
func (s *Settings) Count() int { return s.count }

// SetCount clamps to at least 1.
func (s *Settings) SetCount(n int) {
	if n < 1 {
		n = 1
	}
	s.count = n
}

// SpawnCount returns the particle count for the current mode: 1 for single,
// the configured count for burst.
func (s *Settings) SpawnCount() int {
	if s.mode == ModeSingle {
		return 1
	}
	return s.count
}

// Size returns the particle size.
func (s *Settings) Size() float32 { return s.size }

// SetSize clamps to a small positive minimum.
func (s *Settings) SetSize(v float32) {
	if v < 0.1 {
		v = 0.1
	}
	s.size = v
}

// Color returns the particle color as a "#rrggbb" string.
func (s *Settings) Color() string { return s.color }

// SetColor stores the color string as-is; validation happens when a spawn
// request is built.
func (s *Settings) SetColor(c string) { s.color = c }

// Mode returns the current spawn mode.
func (s *Settings) Mode() SpawnMode { return s.mode }

// SetMode switches between single and burst spawning.
func (s *Settings) SetMode(m SpawnMode) { s.mode = m }

// Glow reports whether glow rendering is enabled.
func (s *Settings) Glow() bool { return s.glow }

// SetGlow enables glow and disables trail when on.
func (s *Settings) SetGlow(on bool) {
	s.glow = on
	if on {
		s.trail = false
	}
}

// Trail reports whether trail rendering is enabled.
func (s *Settings) Trail() bool { return s.trail }

// SetTrail enables trail and disables glow when on.
func (s *Settings) SetTrail(on bool) {
	s.trail = on
	if on {
		s.glow = false
	}
}

// Gravity returns the selected gravity preset name.
func (s *Settings) Gravity() string { return s.gravity }

// SetGravity stores the preset name; unknown names are rejected at spawn time.
func (s *Settings) SetGravity(name string) { s.gravity = name }
