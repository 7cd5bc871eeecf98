package renderer

import (
	"testing"

	"github.com/pthm-cable/stardust/particles"
)

func filledStore(t *testing.T, n int) *particles.Store {
	t.Helper()
	s := particles.NewStore(100)
	ps := make([]particles.Particle, n)
	for i := range ps {
		f := float32(i)
		ps[i] = particles.Particle{
			Position: particles.Vec3{X: f, Y: f * 2, Z: -f},
			Color:    particles.Color{R: uint8(i)},
			Size:     1 + f,
		}
	}
	if err := s.Append(particles.Batch{Particles: ps}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}

func TestSyncMirrorsStoreByIndex(t *testing.T) {
	ib := NewInstanceBuffer(100)
	s := filledStore(t, 5)

	if err := ib.Sync(s); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if got := ib.Count(); got != 5 {
		t.Fatalf("Count() = %d, want 5", got)
	}
	if !ib.Dirty() {
		t.Error("Dirty() = false after sync, want true")
	}

	transforms := ib.Transforms()
	colors := ib.Colors()
	if len(transforms) != 5 || len(colors) != 5 {
		t.Fatalf("slice lengths = %d/%d, want 5/5", len(transforms), len(colors))
	}

	for i := 0; i < 5; i++ {
		p := s.At(i)
		tr := transforms[i]
		if tr.X != p.Position.X || tr.Y != p.Position.Y || tr.Z != p.Position.Z {
			t.Errorf("slot %d transform = %+v, want position %+v", i, tr, p.Position)
		}
		if tr.Scale != p.Size {
			t.Errorf("slot %d scale = %v, want %v", i, tr.Scale, p.Size)
		}
		if colors[i] != p.Color {
			t.Errorf("slot %d color = %v, want %v", i, colors[i], p.Color)
		}
	}
}

func TestSyncShrinksActiveRange(t *testing.T) {
	ib := NewInstanceBuffer(100)

	if err := ib.Sync(filledStore(t, 8)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if err := ib.Sync(filledStore(t, 3)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if got := ib.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := len(ib.Transforms()); got != 3 {
		t.Errorf("len(Transforms()) = %d, want 3", got)
	}
}

func TestSyncEmptyStore(t *testing.T) {
	ib := NewInstanceBuffer(100)

	if err := ib.Sync(particles.NewStore(10)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if got := ib.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestSyncRejectsOverflow(t *testing.T) {
	ib := NewInstanceBuffer(3)

	if err := ib.Sync(filledStore(t, 5)); err == nil {
		t.Error("Sync() with 5 particles into 3 slots should fail")
	}
}

func TestMarkClean(t *testing.T) {
	ib := NewInstanceBuffer(10)

	if err := ib.Sync(filledStore(t, 2)); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	ib.MarkClean()
	if ib.Dirty() {
		t.Error("Dirty() = true after MarkClean()")
	}
}
