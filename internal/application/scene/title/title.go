// Package title provides the home screen.
package title

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/state"
)

const (
	heading = "SHADOW DONKEY KONG"
	prompt  = "PRESS ENTER TO START"
	skip    = "PRESS 2 FOR LEVEL 2"
)

// Title waits for the player to pick a starting level.
type Title struct {
	router   scene.Router
	controls scene.Controls
	board    scene.ScoreBoard
	width    int
	height   int

	highScore int
}

// New creates the home screen. board may be nil.
func New(router scene.Router, controls scene.Controls, board scene.ScoreBoard, width, height int) *Title {
	return &Title{router: router, controls: controls, board: board, width: width, height: height}
}

// Update starts level 1 on Enter or level 2 on 2.
func (t *Title) Update(_ float64) (scene.Scene, error) {
	switch {
	case t.controls.JustPressed(ebiten.KeyEnter):
		return t.router.Level(1, 0), nil
	case t.controls.JustPressed(ebiten.KeyDigit2):
		return t.router.Level(2, 0), nil
	}
	return nil, nil
}

func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	y := t.height / 3
	ebitenutil.DebugPrintAt(screen, heading, scene.CenterX(t.width, len(heading)), y)
	ebitenutil.DebugPrintAt(screen, prompt, scene.CenterX(t.width, len(prompt)), y+80)
	ebitenutil.DebugPrintAt(screen, skip, scene.CenterX(t.width, len(skip)), y+100)
	if t.highScore > 0 {
		best := fmt.Sprintf("HIGH SCORE %d", t.highScore)
		ebitenutil.DebugPrintAt(screen, best, scene.CenterX(t.width, len(best)), y+160)
	}
}

// OnEnter refreshes the high score.
func (t *Title) OnEnter() {
	if t.board == nil {
		return
	}
	if high, err := t.board.HighScore(); err == nil {
		t.highScore = high
	}
}

func (t *Title) OnExit() {}

func (t *Title) State() state.GameState { return state.StateTitle }

// HighScore is the best score shown on the screen.
func (t *Title) HighScore() int {
	return t.highScore
}
