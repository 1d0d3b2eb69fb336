package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"castle64/engine/player"
)

// State polls the keyboard once per tick and exposes the control
// snapshot the character controller consumes.
type State struct {
	Controls player.Input
	Quit     bool
}

func NewState() *State {
	return &State{}
}

// Update samples the keyboard. Called at the top of every tick.
func (s *State) Update() {
	s.Controls = player.Input{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		TurnLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Jump:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Run:       ebiten.IsKeyPressed(ebiten.KeyShift),
	}
	s.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
