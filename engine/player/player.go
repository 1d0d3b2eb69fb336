package player

import (
	"math"

	"castle64/engine/render3d"
)

// Config holds the movement tuning constants. All values are per tick
// at the fixed simulation rate; an explicit struct instead of package
// constants keeps instances independently tunable and tests
// deterministic.
type Config struct {
	Gravity     float64
	JumpImpulse float64
	WalkSpeed   float64
	RunSpeed    float64
	Friction    float64 // horizontal damping multiplier, < 1
	TurnRate    float64 // radians per tick

	WalkAnimRate float64 // walk-phase advance per grounded moving tick
	RunAnimScale float64
}

// DefaultConfig returns the tuning the castle level ships with.
func DefaultConfig() Config {
	return Config{
		Gravity:      1.2,
		JumpImpulse:  18.0,
		WalkSpeed:    0.8,
		RunSpeed:     1.4,
		Friction:     0.82,
		TurnRate:     0.09,
		WalkAnimRate: 0.3,
		RunAnimScale: 1.5,
	}
}

// Input is the polled control snapshot for one tick. Opposite
// directions held together cancel to zero.
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Jump      bool
	Run       bool
}

// FloorFunc reports the walkable height under (x, z) for a character
// currently at height y.
type FloorFunc func(x, z, y float64) float64

// Player is the controllable character. Two logical states, grounded
// and airborne, distinguished by the Grounded flag.
type Player struct {
	Pos       render3d.Vec3
	Vel       render3d.Vec3
	Yaw       float64
	Grounded  bool
	WalkPhase float64

	cfg Config
}

// New spawns a player at the given position.
func New(pos render3d.Vec3, cfg Config) *Player {
	return &Player{Pos: pos, cfg: cfg}
}

// Update advances the character one fixed tick. floorAt may be nil, in
// which case the ground plane at y=0 is the only floor.
func (p *Player) Update(in Input, floorAt FloorFunc) {
	speed := p.cfg.WalkSpeed
	if in.Run {
		speed = p.cfg.RunSpeed
	}

	var forward, turning float64
	if in.Forward {
		forward++
	}
	if in.Backward {
		forward--
	}
	if in.TurnLeft {
		turning++
	}
	if in.TurnRight {
		turning--
	}

	p.Yaw += turning * p.cfg.TurnRate

	if forward != 0 {
		p.Vel.X += math.Sin(p.Yaw) * speed * forward
		p.Vel.Z += math.Cos(p.Yaw) * speed * forward
		if p.Grounded {
			rate := p.cfg.WalkAnimRate
			if in.Run {
				rate *= p.cfg.RunAnimScale
			}
			p.WalkPhase += rate
		}
	} else {
		// Snap back to the idle pose, no fade-out.
		p.WalkPhase = 0
	}

	// Friction applies every tick, input or not.
	p.Vel.X *= p.cfg.Friction
	p.Vel.Z *= p.cfg.Friction

	p.Vel.Y -= p.cfg.Gravity

	if in.Jump && p.Grounded {
		p.Vel.Y = p.cfg.JumpImpulse
		p.Grounded = false
	}

	p.Pos = p.Pos.Add(p.Vel)

	floor := 0.0
	if floorAt != nil {
		floor = floorAt(p.Pos.X, p.Pos.Z, p.Pos.Y)
	}
	if p.Pos.Y <= floor {
		p.Pos.Y = floor
		p.Vel.Y = 0
		p.Grounded = true
	} else {
		// Support is re-proven every tick; stepping off a ledge
		// drops straight into the airborne state.
		p.Grounded = false
	}
}
