package level

import (
	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/application/state"
	"github.com/younwookim/shadowkong/internal/application/system"
	"github.com/younwookim/shadowkong/internal/domain/entity"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

// Level runs one level of the game a frame at a time.
type Level struct {
	world *system.World
	rules Rules

	physics     *system.PhysicsSystem
	patrol      *system.PatrolSystem
	projectiles *system.ProjectileSystem
	player      *system.PlayerSystem
	combat      *system.CombatSystem

	score       Scorecard
	frame       int
	outcome     state.Outcome
	finalScore  int
	secondsLeft int

	number int
	logger *log.Logger
	drawer Drawer
}

// New builds a level over w.
func New(w *system.World, rules Rules, opts ...Option) *Level {
	if rules.FPS <= 0 {
		rules.FPS = 60
	}
	l := &Level{world: w, rules: rules, logger: discardLogger()}
	for _, opt := range opts {
		opt(l)
	}

	l.physics = system.NewPhysicsSystem(w.Platforms)
	l.projectiles = system.NewProjectileSystem(l.physics, w.Screen)
	l.patrol = system.NewPatrolSystem(l.physics, l.projectiles)
	l.player = system.NewPlayerSystem(w, l.physics, l.logger)
	l.combat = system.NewCombatSystem(w, l.logger)
	l.secondsLeft = l.remaining()
	return l
}

// Load builds the world of a level config and a Level over it.
func Load(game *config.GameConfig, cfg *config.LevelConfig, opts ...Option) (*Level, error) {
	w, err := system.LoadWorld(game, cfg)
	if err != nil {
		return nil, err
	}
	return New(w, RulesFrom(game), opts...), nil
}

// Update advances the level by one frame and reports whether it has ended.
// Once ended, further calls change nothing.
func (l *Level) Update(in system.InputState) bool {
	if l.outcome.Terminal() {
		return true
	}
	l.frame++
	w := l.world

	for _, ladder := range w.Ladders {
		l.physics.Fall(&ladder.Body)
	}
	for _, b := range w.Barrels {
		if !b.Destroyed {
			l.physics.Fall(&b.Body)
		}
	}
	l.physics.Fall(&w.Donkey.Body)
	for _, e := range w.Enemies {
		l.patrol.Update(e)
	}
	l.projectiles.AdvanceAll(w.Bullets)
	l.player.Update(in)

	for _, ev := range l.combat.Resolve() {
		l.apply(ev)
	}
	if l.outcome == state.OutcomeRunning && l.frame >= l.rules.MaxFrames {
		l.outcome = state.OutcomeTimeUp
	}

	w.Bullets = entity.CompactProjectiles(w.Bullets)
	for _, e := range w.Enemies {
		e.CompactBananas()
	}

	if l.outcome.Terminal() {
		l.finish()
	}
	l.draw()
	return l.outcome.Terminal()
}

func (l *Level) apply(ev system.Event) {
	switch ev := ev.(type) {
	case system.BarrelDestroyed:
		l.score.Destroyed++
	case system.BarrelJumped:
		l.score.Jumped++
	case system.EnemyKilled:
		l.score.Killed++
	case system.BossHit:
		l.logger.Debug("donkey hit", "level", l.number, "health", ev.HealthLeft)
	case system.PlayerKilled:
		l.outcome = state.OutcomeLost
		l.logger.Info("mario died", "level", l.number, "frame", l.frame, "cause", ev.Cause)
	case system.BossDefeated:
		if l.outcome != state.OutcomeLost {
			l.outcome = state.OutcomeWon
		}
	}
}

func (l *Level) finish() {
	l.secondsLeft = l.remaining()
	l.finalScore = l.score.Final(l.secondsLeft, l.outcome == state.OutcomeLost)
	l.logger.Info("level ended",
		"level", l.number,
		"outcome", l.outcome,
		"frame", l.frame,
		"score", l.finalScore,
	)
}

func (l *Level) remaining() int {
	left := (l.rules.MaxFrames - l.frame) / l.rules.FPS
	if left < 0 {
		return 0
	}
	return left
}

func (l *Level) draw() {
	if l.drawer == nil {
		return
	}
	w := l.world
	for _, p := range w.Platforms {
		l.drawer.Draw(entity.SpritePlatform, p.Bounds())
	}
	for _, ladder := range w.Ladders {
		l.drawer.Draw(entity.SpriteLadder, ladder.Bounds())
	}
	for _, b := range w.Barrels {
		if !b.Destroyed {
			l.drawer.Draw(entity.SpriteBarrel, b.Bounds())
		}
	}
	for _, h := range w.Hammers {
		if !h.Collected {
			l.drawer.Draw(entity.SpriteHammer, h.Bounds())
		}
	}
	for _, b := range w.Blasters {
		if !b.Collected {
			l.drawer.Draw(entity.SpriteBlaster, b.Bounds())
		}
	}
	l.drawer.Draw(entity.SpriteDonkey, w.Donkey.Bounds())
	for _, e := range w.Enemies {
		if !e.Dead {
			l.drawer.Draw(e.Sprite(), e.Bounds())
		}
		for _, b := range e.Bananas {
			l.drawer.Draw(b.Sprite(), b.Bounds())
		}
	}
	for _, b := range w.Bullets {
		l.drawer.Draw(b.Sprite(), b.Bounds())
	}
	l.drawer.Draw(w.Player.Sprite(), w.Player.Bounds())
}

// World exposes the entities for rendering and inspection.
func (l *Level) World() *system.World { return l.world }

func (l *Level) Frame() int             { return l.frame }
func (l *Level) Outcome() state.Outcome { return l.outcome }
func (l *Level) Number() int            { return l.number }
func (l *Level) Scorecard() Scorecard   { return l.score }
func (l *Level) HasWon() bool           { return l.outcome == state.OutcomeWon }
func (l *Level) IsLevelComplete() bool  { return l.outcome == state.OutcomeWon }
func (l *Level) IsGameOver() bool       { return l.outcome.GameOver() }
func (l *Level) Done() bool             { return l.outcome.Terminal() }

// Score is the running score including the carried-over starting score.
func (l *Level) Score() int {
	return l.score.Running()
}

// FinalScore is the score awarded at the end of the level, zero while it runs.
func (l *Level) FinalScore() int {
	return l.finalScore
}

// SecondsRemaining is the time left, frozen once the level ends.
func (l *Level) SecondsRemaining() int {
	if l.outcome.Terminal() {
		return l.secondsLeft
	}
	return l.remaining()
}
