package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"castle64/engine/core"
	"castle64/engine/input"
	"castle64/engine/level"
	"castle64/engine/player"
	"castle64/engine/render3d"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	// Render at lower resolution and let ebiten upscale; keeps the
	// chunky look and the triangle throughput manageable.
	RenderWidth  = 400
	RenderHeight = 300
	TickRate     = 60.0
)

// Game implements ebiten.Game interface
type Game struct {
	loop     *core.GameLoop
	input    *input.State
	renderer *render3d.Renderer
	castle   *level.Level
	hero     *player.Player
	camera   *render3d.ChaseCamera

	drawnTris int
	totalTris int
}

func NewGame() *Game {
	g := &Game{
		loop:     core.NewGameLoop(TickRate),
		input:    input.NewState(),
		renderer: render3d.NewRenderer(RenderWidth, RenderHeight),
		castle:   level.BuildCastle(),
		hero:     player.New(render3d.V3(0, 20, -280), player.DefaultConfig()),
		camera:   render3d.NewChaseCamera(render3d.V3(0, 110, -650), render3d.DefaultCameraConfig()),
	}
	g.loop.Play()
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.loop.State == core.StatePaused {
			g.loop.Play()
		} else {
			g.loop.Pause()
		}
	}

	g.loop.Update(func() {
		g.hero.Update(g.input.Controls, g.castle.FloorHeight)
		g.camera.Follow(g.hero.Pos, g.hero.Yaw)
	})

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawSky(screen, g.camera.Pos.Y, level.DarkGreen)
	g.drawnTris, g.totalTris = g.renderer.DrawScene(screen, g.camera, g.castle.Mesh, g.hero.BuildMesh())

	info := fmt.Sprintf(
		"FPS: %.0f | Tris: %d/%d | Tick: %d\nWASD/Arrows move, Space jump, Shift run, P pause",
		ebiten.ActualFPS(), g.drawnTris, g.totalTris, g.loop.TickCount,
	)
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return RenderWidth, RenderHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("castle64")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
