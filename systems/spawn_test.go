package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pthm-cable/stardust/particles"
)

func newTestSpawner(t *testing.T, capacity int) (*Spawner, *particles.Store, *History) {
	t.Helper()
	store := particles.NewStore(capacity)
	h := NewHistory()
	sp := NewSpawner(store, h, rand.New(rand.NewSource(7)), 1.0, 0.5)
	return sp, store, h
}

func TestGravityPreset(t *testing.T) {
	tests := []struct {
		name string
		want float32
	}{
		{"none", 0},
		{"earth", 0.01},
		{"moon", 0.002},
		{"mars", 0.004},
	}

	for _, tt := range tests {
		got, err := GravityPreset(tt.name)
		if err != nil {
			t.Errorf("GravityPreset(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GravityPreset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := GravityPreset("jupiter"); !errors.Is(err, ErrUnknownGravity) {
		t.Errorf("GravityPreset(\"jupiter\") error = %v, want ErrUnknownGravity", err)
	}
}

func TestSpawnJitterAndAttributes(t *testing.T) {
	sp, store, h := newTestSpawner(t, 100)

	origin := particles.Vec3{X: 10, Y: 20, Z: 30}
	err := sp.Spawn(SpawnRequest{
		Count:   50,
		Origin:  origin,
		Size:    1.5,
		Color:   particles.Color{R: 0x64, G: 0xc8, B: 0xff},
		Gravity: 0.01,
	})
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	if got := store.Len(); got != 50 {
		t.Fatalf("Len() = %d, want 50", got)
	}
	if got := h.UndoDepth(); got != 1 {
		t.Errorf("UndoDepth() = %d, want 1", got)
	}

	for i := 0; i < store.Len(); i++ {
		p := store.At(i)
		if dx := p.Position.X - origin.X; dx < -1 || dx > 1 {
			t.Errorf("particle %d X jitter %v outside [-1, 1]", i, dx)
		}
		if dy := p.Position.Y - origin.Y; dy < -1 || dy > 1 {
			t.Errorf("particle %d Y jitter %v outside [-1, 1]", i, dy)
		}
		if dz := p.Position.Z - origin.Z; dz < -1 || dz > 1 {
			t.Errorf("particle %d Z jitter %v outside [-1, 1]", i, dz)
		}
		if v := p.Velocity; v.X < -0.5 || v.X > 0.5 || v.Y < -0.5 || v.Y > 0.5 || v.Z < -0.5 || v.Z > 0.5 {
			t.Errorf("particle %d velocity %v outside [-0.5, 0.5]", i, v)
		}
		if p.Size != 1.5 || p.Gravity != 0.01 {
			t.Errorf("particle %d size/gravity = %v/%v, want 1.5/0.01", i, p.Size, p.Gravity)
		}
	}
}

func TestSpawnNonPositiveCountIsNoOp(t *testing.T) {
	sp, store, h := newTestSpawner(t, 10)

	for _, count := range []int{0, -3} {
		if err := sp.Spawn(SpawnRequest{Count: count}); err != nil {
			t.Errorf("Spawn(count=%d) error = %v, want nil", count, err)
		}
	}
	if store.Len() != 0 || h.UndoDepth() != 0 {
		t.Errorf("store/history = %d/%d, want 0/0", store.Len(), h.UndoDepth())
	}
}

func TestSpawnCapacityRejectionIsAtomic(t *testing.T) {
	sp, store, h := newTestSpawner(t, 60)

	if err := sp.Spawn(SpawnRequest{Count: 50, Size: 1}); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	// 20 more would exceed capacity 60: nothing changes anywhere
	err := sp.Spawn(SpawnRequest{Count: 20, Size: 1})
	if !errors.Is(err, particles.ErrCapacity) {
		t.Fatalf("Spawn() error = %v, want ErrCapacity", err)
	}
	if got := store.Len(); got != 50 {
		t.Errorf("Len() = %d, want 50", got)
	}
	if got := h.UndoDepth(); got != 1 {
		t.Errorf("UndoDepth() = %d, want 1", got)
	}
}

func TestSpawnClearsRedoStack(t *testing.T) {
	sp, store, h := newTestSpawner(t, 100)

	if err := sp.Spawn(SpawnRequest{Count: 5, Size: 1}); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if err := h.Undo(store); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if got := h.RedoDepth(); got != 1 {
		t.Fatalf("RedoDepth() = %d, want 1", got)
	}

	// A new spawn forks history: the undone branch is gone
	if err := sp.Spawn(SpawnRequest{Count: 3, Size: 1}); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if got := h.RedoDepth(); got != 0 {
		t.Errorf("RedoDepth() after spawn = %d, want 0", got)
	}
}

func TestSpawnExplicitParticlesVerbatim(t *testing.T) {
	sp, store, _ := newTestSpawner(t, 100)

	want := []particles.Particle{
		{Position: particles.Vec3{X: 1, Y: 2, Z: 3}, Velocity: particles.Vec3{X: -0.1}, Size: 2},
		{Position: particles.Vec3{X: 4, Y: 5, Z: 6}, Size: 1},
	}

	// Count and appearance fields are ignored on the explicit path
	err := sp.Spawn(SpawnRequest{Count: 99, Explicit: want})
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	if got := store.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	for i := range want {
		if got := *store.At(i); got != want[i] {
			t.Errorf("particle %d = %+v, want %+v", i, got, want[i])
		}
	}
}
