package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
)

// GameLoop runs the simulation at a fixed timestep regardless of the
// render frame rate. Physics constants are tuned per tick, so the
// step must stay deterministic.
type GameLoop struct {
	State       GameState
	TickRate    float64 // fixed ticks per second
	TickCount   uint64
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64) *GameLoop {
	return &GameLoop{
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It invokes step once per
// elapsed fixed tick and returns the interpolation alpha for smooth
// rendering.
func (gl *GameLoop) Update(step func()) float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			step()
			gl.TickCount++
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Play starts or resumes the simulation
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the simulation
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}
