package camera

import (
	"math"
	"testing"
)

func TestNewClampsDistance(t *testing.T) {
	cam := New(5000, 50, 1200)
	if cam.Dist != 1200 {
		t.Errorf("expected distance clamped to 1200, got %f", cam.Dist)
	}

	cam = New(10, 50, 1200)
	if cam.Dist != 50 {
		t.Errorf("expected distance clamped to 50, got %f", cam.Dist)
	}
}

func TestPositionRadius(t *testing.T) {
	cam := New(420, 50, 1200)

	// The camera position must sit on the orbit sphere for any orientation
	orientations := []struct{ yaw, pitch float32 }{
		{0, 0},
		{1.2, 0.5},
		{-2.5, -0.8},
		{6.0, 1.0},
	}

	for _, o := range orientations {
		cam.Yaw = o.yaw
		cam.Pitch = clamp(o.pitch, -pitchLimit, pitchLimit)
		x, y, z := cam.Position()
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-420) > 0.01 {
			t.Errorf("yaw=%f pitch=%f: expected radius 420, got %f", o.yaw, o.pitch, r)
		}
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	cam := New(420, 50, 1200)

	cam.Orbit(0, 10)
	if cam.Pitch > pitchLimit {
		t.Errorf("pitch %f exceeds limit %f", cam.Pitch, pitchLimit)
	}

	cam.Orbit(0, -20)
	if cam.Pitch < -pitchLimit {
		t.Errorf("pitch %f below limit %f", cam.Pitch, -pitchLimit)
	}
}

func TestZoomBy(t *testing.T) {
	cam := New(420, 50, 1200)

	cam.ZoomBy(30)
	if cam.Dist != 390 {
		t.Errorf("expected distance 390 after zoom in, got %f", cam.Dist)
	}

	// Zooming far past the near limit clamps
	cam.ZoomBy(10000)
	if cam.Dist != 50 {
		t.Errorf("expected distance clamped to 50, got %f", cam.Dist)
	}
}

func TestReset(t *testing.T) {
	cam := New(420, 50, 1200)
	cam.Orbit(3, 0.4)
	cam.ZoomBy(-200)

	cam.Reset(420)
	if cam.Dist != 420 {
		t.Errorf("expected distance 420 after reset, got %f", cam.Dist)
	}
	if math.Abs(float64(cam.Yaw)-math.Pi/4) > 0.001 {
		t.Errorf("expected yaw reset to pi/4, got %f", cam.Yaw)
	}
}
