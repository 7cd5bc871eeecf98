// Package config provides configuration loading and access for the sandbox.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all sandbox configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Buffer    BufferConfig    `yaml:"buffer"`
	Kick      KickConfig      `yaml:"kick"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Persist   PersistConfig   `yaml:"persist"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the integrator parameters.
// Drag and BounceFactor must both sit strictly inside (0, 1) so kinetic
// energy decreases every step and every bounce.
type PhysicsConfig struct {
	Drag         float32 `yaml:"drag"`
	Bounds       float32 `yaml:"bounds"`
	BounceFactor float32 `yaml:"bounce_factor"`
}

// SpawnConfig holds spawn batching parameters.
type SpawnConfig struct {
	BurstCount     int     `yaml:"burst_count"`     // Particles per burst spawn
	PositionJitter float32 `yaml:"position_jitter"` // Uniform jitter half-extent per axis
	VelocityRange  float32 `yaml:"velocity_range"`  // Uniform velocity half-extent per axis
	DefaultSize    float32 `yaml:"default_size"`
	DefaultColor   string  `yaml:"default_color"`
}

// BufferConfig holds instance buffer parameters.
type BufferConfig struct {
	Capacity int `yaml:"capacity"` // Hard cap on live particles and buffer slots
}

// KickConfig holds force-kick parameters.
type KickConfig struct {
	MaxImpulse float32 `yaml:"max_impulse"` // Per-axis impulse bound
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	OrbitSpeed  float32 `yaml:"orbit_speed"`
	ZoomStep    float32 `yaml:"zoom_step"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Window size in seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames per perf window
}

// PersistConfig holds persistence service parameters.
type PersistConfig struct {
	Dir string `yaml:"dir"` // Directory for named configuration files
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects parameter values the integrator cannot tolerate.
func (c *Config) validate() error {
	if c.Physics.Drag <= 0 || c.Physics.Drag >= 1 {
		return fmt.Errorf("config: physics.drag must be in (0, 1), got %g", c.Physics.Drag)
	}
	if c.Physics.BounceFactor <= 0 || c.Physics.BounceFactor >= 1 {
		return fmt.Errorf("config: physics.bounce_factor must be in (0, 1), got %g", c.Physics.BounceFactor)
	}
	if c.Physics.Bounds <= 0 {
		return fmt.Errorf("config: physics.bounds must be positive, got %g", c.Physics.Bounds)
	}
	if c.Buffer.Capacity < 1 {
		return fmt.Errorf("config: buffer.capacity must be at least 1, got %d", c.Buffer.Capacity)
	}
	if c.Spawn.BurstCount < 1 {
		return fmt.Errorf("config: spawn.burst_count must be at least 1, got %d", c.Spawn.BurstCount)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
