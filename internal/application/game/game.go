// Package game drives the current scene from ebiten's game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/state"
)

// Game implements ebiten.Game and switches between scenes.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// quit ends the program when it reports true
	quit func() bool
}

// New creates a Game showing initial. initial.OnEnter runs immediately.
func New(initial scene.Scene, screenW, screenH, fps int) *Game {
	if fps <= 0 {
		fps = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(fps),
	}
	g.current.OnEnter()
	return g
}

// QuitOn makes Update return ebiten.Termination once quit reports true.
func (g *Game) QuitOn(quit func() bool) {
	g.quit = quit
}

// Update runs one frame of the current scene and performs any transition
// it asks for.
func (g *Game) Update() error {
	if g.quit != nil && g.quit() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical screen fixed regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// State is the game state of the current scene. Scenes that do not report
// one are treated as gameplay.
func (g *Game) State() state.GameState {
	if s, ok := g.current.(scene.Stater); ok {
		return s.State()
	}
	return state.StatePlaying
}

// Current is the scene being shown.
func (g *Game) Current() scene.Scene {
	return g.current
}
