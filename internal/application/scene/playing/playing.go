// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/shadowkong/internal/application/level"
	"github.com/younwookim/shadowkong/internal/application/replay"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/state"
	"github.com/younwookim/shadowkong/internal/domain/entity"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

// Deps are what the scene needs from the rest of the game.
type Deps struct {
	Router   scene.Router
	Controls scene.Controls
	Logger   *log.Logger

	// Levels is the number of levels in the campaign.
	Levels int
	// RecordPath, when set, saves the level's input to this file on exit.
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	deps   Deps
	number int
	lvl    *level.Level
	hud    config.HUDConfig
	screen entity.Screen

	// sprites drawn by the level during the last update
	calls []drawCall

	recorder *replay.Recorder
}

type drawCall struct {
	sprite entity.Sprite
	box    entity.Rect
}

// New creates the scene for level number n entered with startingScore.
func New(game *config.GameConfig, cfg *config.LevelConfig, n, startingScore int, deps Deps) (*Playing, error) {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	p := &Playing{
		deps:   deps,
		number: n,
		hud:    game.HUD,
		screen: entity.Screen{Width: game.Screen.Width, Height: game.Screen.Height},
	}

	lvl, err := level.Load(game, cfg,
		level.WithNumber(n),
		level.WithStartingScore(startingScore),
		level.WithLogger(deps.Logger),
		level.WithDrawer(level.DrawerFunc(p.drawSprite)),
	)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	p.lvl = lvl

	if deps.RecordPath != "" {
		p.recorder = replay.NewRecorder(n, startingScore)
	}
	return p, nil
}

func (p *Playing) State() state.GameState { return state.StatePlaying }

// Level exposes the running level.
func (p *Playing) Level() *level.Level {
	return p.lvl
}

// drawSprite queues a sprite for the next Draw.
func (p *Playing) drawSprite(sprite entity.Sprite, box entity.Rect) {
	p.calls = append(p.calls, drawCall{sprite: sprite, box: box})
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.calls = p.calls[:0]

	in := p.deps.Controls.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if !p.lvl.Update(in) {
		return nil, nil // nil = stay on this scene
	}
	return p.next(), nil
}

// next picks the scene that follows a finished level.
func (p *Playing) next() scene.Scene {
	if p.lvl.HasWon() && p.number < p.deps.Levels {
		p.deps.Logger.Info("level cleared", "level", p.number, "score", p.lvl.Score())
		return p.deps.Router.Level(p.number+1, p.lvl.Score())
	}
	return p.deps.Router.Result(scene.Result{
		Level: p.number,
		Score: p.lvl.FinalScore(),
		Won:   p.lvl.HasWon(),
	})
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	for _, c := range p.calls {
		ebitenutil.DrawRect(screen, c.box.Left(), c.box.Top(), c.box.W, c.box.H, spriteColor(c.sprite))
	}
	p.drawHUD(screen)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	line := int(p.hud.LineSpacing)
	if line == 0 {
		line = 30
	}
	x, y := int(p.hud.Score.X), int(p.hud.Score.Y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", p.lvl.Score()), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time Left %d", p.lvl.SecondsRemaining()), x, y+line)

	w := p.lvl.World()
	if !w.HasBlasters() {
		return
	}
	x, y = int(p.hud.DonkeyInfo.X), int(p.hud.DonkeyInfo.Y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("DONKEY HEALTH %d", w.Donkey.Health), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BULLET %d", w.Player.Ammo), x, y+line)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.deps.Logger.Info("level started", "level", p.number, "score", p.lvl.Score())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.deps.RecordPath); err != nil {
		p.deps.Logger.Error("failed to save recording", "path", p.deps.RecordPath, "err", err)
		return
	}
	p.deps.Logger.Info("recording saved", "path", p.deps.RecordPath, "frames", p.recorder.FrameCount())
}
