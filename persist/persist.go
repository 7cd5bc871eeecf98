// Package persist stores named particle configurations as JSON files.
// Last write wins; there are no durability guarantees beyond the filesystem's.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Sentinel errors for the service's result surface.
var (
	ErrNotFound      = errors.New("persist: configuration not found")
	ErrConflict      = errors.New("persist: configuration name already taken")
	ErrInvalidConfig = errors.New("persist: invalid configuration")
)

// ParticleConfig is one saved particle's full state.
type ParticleConfig struct {
	Position [3]float32 `json:"position"`
	Velocity [3]float32 `json:"velocity"`
	Color    string     `json:"color"`
	Size     float32    `json:"size"`
	Gravity  float32    `json:"gravity"`
}

// Config is a named, saved particle set.
type Config struct {
	Name        string           `json:"name"`
	SavedAt     time.Time        `json:"saved_at"`
	Description string           `json:"description,omitempty"`
	Particles   []ParticleConfig `json:"particles"`
}

// Entry is one listing row: the name plus the metadata used for sorting.
type Entry struct {
	Name    string
	SavedAt time.Time
	Count   int
}

// SortKey selects the listing order.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySavedAt
)

// Store is a directory-backed configuration store.
type Store struct {
	dir string
}

// NewStore creates the store, making the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("persist: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the config under its name. Fails with ErrConflict if the name
// is already taken and with ErrInvalidConfig if validation fails.
func (s *Store) Save(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	path := s.path(cfg.Name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %q", ErrConflict, cfg.Name)
	}

	return s.write(path, cfg)
}

// Overwrite writes the config under its name, replacing any existing file.
func (s *Store) Overwrite(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	return s.write(s.path(cfg.Name), cfg)
}

func (s *Store) write(path string, cfg *Config) error {
	// Callers may carry a timestamp (re-saving a loaded config); stamp
	// only the ones that don't, so every file on disk has a real SavedAt.
	if cfg.SavedAt.IsZero() {
		cfg.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("persist: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("persist: write config: %w", err)
	}
	return nil
}

// Load reads a config by name. The loaded config is validated before being
// returned, so a hand-edited or truncated file never reaches the spawner.
func (s *Store) Load(name string) (*Config, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("persist: read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// List returns the saved entries sorted by the given key. A plain sort over
// the fetched metadata; saved sets are small.
func (s *Store) List(key SortKey) ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("persist: list dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(f.Name(), ".json")
		cfg, err := s.Load(name)
		if err != nil {
			// Unreadable files are skipped, not fatal to the listing
			continue
		}
		entries = append(entries, Entry{
			Name:    cfg.Name,
			SavedAt: cfg.SavedAt,
			Count:   len(cfg.Particles),
		})
	}

	switch key {
	case SortBySavedAt:
		// Newest first
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].SavedAt.After(entries[j].SavedAt)
		})
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	}
	return entries, nil
}

// Delete removes a config by name.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return err
}

// path maps a config name to its file, sanitizing separators.
func (s *Store) path(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
	return filepath.Join(s.dir, safe+".json")
}
