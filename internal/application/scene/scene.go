// Package scene holds the screens of the game and the contracts they use
// to hand over to one another.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/shadowkong/internal/application/state"
	"github.com/younwookim/shadowkong/internal/application/system"
)

// Scene is one screen: title, a level or the result.
type Scene interface {
	// Update runs one frame. dt is the frame time in seconds. A non-nil
	// next replaces this scene; an error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter and OnExit bracket the time the scene is shown.
	OnEnter()
	OnExit()
}

// Stater is implemented by scenes that correspond to a game state.
type Stater interface {
	State() state.GameState
}

// Result is how a campaign ended.
type Result struct {
	Level int
	Score int
	Won   bool
}

// Router builds the scene to move to. It lets scenes hand over to each
// other without importing one another.
type Router interface {
	Title() Scene
	Level(n, startingScore int) Scene
	Result(r Result) Scene
}

// Controls is the keyboard as scenes see it.
type Controls interface {
	Poll() system.InputState
	JustPressed(key ebiten.Key) bool
}

// ScoreBoard persists finished campaigns.
type ScoreBoard interface {
	SaveScore(level, score int, won bool) (int64, error)
	HighScore() (int, error)
}

// CenterX returns the x at which DebugPrint text of n characters is centred
// on a screen of the given width.
func CenterX(width, n int) int {
	const glyphWidth = 6
	return (width - n*glyphWidth) / 2
}
