package render3d

import "math"

// ChaseCamera follows a tracked subject from behind and above. Its
// position is exponentially smoothed toward the follow target; its yaw
// is recomputed every tick to face the subject directly, so position
// lag never tilts the view away from the character.
type ChaseCamera struct {
	Pos       Vec3
	Yaw       float64
	Distance  float64 // backward offset along the subject's heading
	Height    float64 // upward offset above the subject
	Smoothing float64 // per-tick low-pass factor in (0, 1]
}

// CameraConfig holds the chase tuning constants.
type CameraConfig struct {
	Distance  float64
	Height    float64
	Smoothing float64
}

// DefaultCameraConfig returns the tuning used by the castle level.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Distance:  340,
		Height:    125,
		Smoothing: 0.08,
	}
}

// NewChaseCamera creates a camera at an initial position behind the
// level spawn.
func NewChaseCamera(pos Vec3, cfg CameraConfig) *ChaseCamera {
	return &ChaseCamera{
		Pos:       pos,
		Distance:  cfg.Distance,
		Height:    cfg.Height,
		Smoothing: cfg.Smoothing,
	}
}

// Follow advances the camera one tick toward a subject at pos facing
// yaw. Each axis converges as pos += (target - pos) * k: critically
// damped, no overshoot, tuned for a fixed tick rate.
func (c *ChaseCamera) Follow(subject Vec3, subjectYaw float64) {
	target := Vec3{
		X: subject.X - math.Sin(subjectYaw)*c.Distance,
		Y: subject.Y + c.Height,
		Z: subject.Z - math.Cos(subjectYaw)*c.Distance,
	}
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(c.Smoothing))

	// Always look at the subject, regardless of the smoothed lag.
	dx := subject.X - c.Pos.X
	dz := subject.Z - c.Pos.Z
	c.Yaw = math.Atan2(dx, dz)
}
