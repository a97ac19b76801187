// Package result provides the end-of-game screen.
package result

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/state"
)

const (
	wonText      = "CONGRATULATIONS, YOU WON!"
	lostText     = "GAME OVER, YOU LOST!"
	continueText = "PRESS SPACE TO CONTINUE..."
)

var (
	colorWon  = color.RGBA{20, 60, 20, 255}
	colorLost = color.RGBA{60, 10, 10, 255}
)

// Result shows the final score and returns to the title on Space.
type Result struct {
	router   scene.Router
	controls scene.Controls
	board    scene.ScoreBoard
	logger   *log.Logger
	width    int
	height   int

	result scene.Result
	saved  bool
}

// New creates the end screen for r. board and logger may be nil.
func New(r scene.Result, router scene.Router, controls scene.Controls, board scene.ScoreBoard, logger *log.Logger, width, height int) *Result {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Result{
		router: router, controls: controls, board: board, logger: logger,
		width: width, height: height, result: r,
	}
}

func (s *Result) Update(_ float64) (scene.Scene, error) {
	if s.controls.JustPressed(ebiten.KeySpace) {
		return s.router.Title(), nil
	}
	return nil, nil
}

func (s *Result) Draw(screen *ebiten.Image) {
	status := lostText
	screen.Fill(colorLost)
	if s.result.Won {
		status = wonText
		screen.Fill(colorWon)
	}
	score := fmt.Sprintf("YOUR FINAL SCORE: %d", s.result.Score)

	y := s.height / 3
	ebitenutil.DebugPrintAt(screen, status, scene.CenterX(s.width, len(status)), y)
	ebitenutil.DebugPrintAt(screen, score, scene.CenterX(s.width, len(score)), y+60)
	ebitenutil.DebugPrintAt(screen, continueText, scene.CenterX(s.width, len(continueText)), s.height-100)
}

// OnEnter records the campaign in the score board once.
func (s *Result) OnEnter() {
	s.logger.Info("game finished", "level", s.result.Level, "score", s.result.Score, "won", s.result.Won)
	if s.board == nil || s.saved {
		return
	}
	if _, err := s.board.SaveScore(s.result.Level, s.result.Score, s.result.Won); err != nil {
		s.logger.Error("failed to save score", "err", err)
		return
	}
	s.saved = true
}

func (s *Result) OnExit() {}

func (s *Result) State() state.GameState { return state.StateResult }
