package level

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/domain/entity"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

// Rules are the timing parameters of a level.
type Rules struct {
	MaxFrames int
	FPS       int
}

// RulesFrom reads the timing parameters from game.yaml.
func RulesFrom(cfg *config.GameConfig) Rules {
	return Rules{MaxFrames: cfg.MaxFrames, FPS: cfg.FPS}
}

// Drawer receives one call per visible entity at the end of every frame.
type Drawer interface {
	Draw(sprite entity.Sprite, box entity.Rect)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(sprite entity.Sprite, box entity.Rect)

func (f DrawerFunc) Draw(sprite entity.Sprite, box entity.Rect) { f(sprite, box) }

// Option configures a Level.
type Option func(*Level)

// WithLogger sets the logger. Levels log nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(l *Level) { l.logger = logger }
}

// WithDrawer sets the draw hook.
func WithDrawer(d Drawer) Option {
	return func(l *Level) { l.drawer = d }
}

// WithStartingScore carries a score over from a previous level.
func WithStartingScore(score int) Option {
	return func(l *Level) { l.score.Start = score }
}

// WithNumber labels the level in log output.
func WithNumber(n int) Option {
	return func(l *Level) { l.number = n }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
