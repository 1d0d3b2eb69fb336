package render3d

import (
	"math"
	"testing"
)

func TestChaseCameraSmoothingStep(t *testing.T) {
	cfg := CameraConfig{Distance: 0, Height: 0, Smoothing: 0.08}
	cam := NewChaseCamera(V3(100, 0, 0), cfg)

	// Target collapses onto the subject with zero offsets: one tick
	// closes exactly k of the remaining gap.
	cam.Follow(V3(0, 0, 0), 0)
	want := 100 * (1 - cfg.Smoothing)
	if math.Abs(cam.Pos.X-want) > 1e-9 {
		t.Errorf("Pos.X after one tick = %v, want %v", cam.Pos.X, want)
	}
}

func TestChaseCameraConverges(t *testing.T) {
	cfg := DefaultCameraConfig()
	cam := NewChaseCamera(V3(0, 110, -650), cfg)
	subject := V3(0, 20, -280)

	for i := 0; i < 2000; i++ {
		cam.Follow(subject, 0)
	}

	// Subject faces yaw 0 (+Z), so the camera settles Distance behind
	// along -Z and Height above.
	wantZ := subject.Z - cfg.Distance
	wantY := subject.Y + cfg.Height
	if math.Abs(cam.Pos.Z-wantZ) > 1e-3 || math.Abs(cam.Pos.Y-wantY) > 1e-3 {
		t.Errorf("settled pos = %v, want z=%v y=%v", cam.Pos, wantZ, wantY)
	}
}

func TestChaseCameraFacesSubject(t *testing.T) {
	cam := NewChaseCamera(V3(0, 0, -400), DefaultCameraConfig())
	subject := V3(0, 0, 0)
	cam.Follow(subject, 0)

	// Subject is straight ahead on +Z from the camera.
	if math.Abs(cam.Yaw) > 1e-9 {
		t.Errorf("yaw = %v, want 0", cam.Yaw)
	}

	// Move the subject to the camera's +X side.
	cam.Pos = V3(0, 0, 0)
	cam.Follow(V3(500, 0, 0), math.Pi/2)
	dx := 500.0 - cam.Pos.X
	dz := 0.0 - cam.Pos.Z
	if math.Abs(cam.Yaw-math.Atan2(dx, dz)) > 1e-9 {
		t.Errorf("yaw = %v, want %v", cam.Yaw, math.Atan2(dx, dz))
	}
}
