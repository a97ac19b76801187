package system

import (
	"fmt"

	"github.com/younwookim/shadowkong/internal/domain/entity"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

// World holds every entity of a running level.
type World struct {
	Screen entity.Screen
	Sizes  entity.Sizes

	Platforms []*entity.Platform
	Ladders   []*entity.Ladder
	Barrels   []*entity.Barrel
	Hammers   []*entity.Hammer
	Blasters  []*entity.Blaster
	Enemies   []*entity.Enemy
	Bullets   []*entity.Projectile
	Donkey    *entity.Donkey
	Player    *entity.Player
}

// SpriteSizes converts the sprite table of game.yaml, filling every sprite
// it omits from the stock artwork.
func SpriteSizes(cfg *config.GameConfig) (entity.Sizes, error) {
	sizes := entity.DefaultSizes()
	for name, s := range cfg.Sprites {
		sprite, err := entity.ParseSprite(name)
		if err != nil {
			return nil, fmt.Errorf("game config: %w", err)
		}
		sizes[sprite] = entity.Size{W: s.Width, H: s.Height}
	}
	return sizes, nil
}

// LoadWorld converts a LevelConfig into the entities of a level.
func LoadWorld(game *config.GameConfig, lvl *config.LevelConfig) (*World, error) {
	if lvl.Mario == nil || lvl.Donkey == nil {
		return nil, fmt.Errorf("%w: level needs mario and donkey", config.ErrInvalidLevel)
	}
	sizes, err := SpriteSizes(game)
	if err != nil {
		return nil, err
	}

	w := &World{
		Screen: entity.Screen{Width: game.Screen.Width, Height: game.Screen.Height},
		Sizes:  sizes,
	}

	for _, p := range lvl.Platforms {
		w.Platforms = append(w.Platforms, entity.NewPlatform(p.X, p.Y, sizes.Of(entity.SpritePlatform)))
	}
	for _, p := range lvl.Ladders {
		w.Ladders = append(w.Ladders, entity.NewLadder(p.X, p.Y, sizes.Of(entity.SpriteLadder)))
	}
	for _, p := range lvl.Barrels {
		w.Barrels = append(w.Barrels, entity.NewBarrel(p.X, p.Y, sizes.Of(entity.SpriteBarrel)))
	}
	for _, p := range lvl.Hammers {
		w.Hammers = append(w.Hammers, entity.NewHammer(p.X, p.Y, sizes.Of(entity.SpriteHammer)))
	}
	for _, b := range lvl.Blasters {
		w.Blasters = append(w.Blasters, entity.NewBlaster(b.X, b.Y, b.Ammo, sizes.Of(entity.SpriteBlaster)))
	}
	for _, m := range lvl.NormalMonkeys {
		w.Enemies = append(w.Enemies, entity.NewEnemy(entity.VariantNormal, m.X, m.Y, m.FacingRight(), m.Route, sizes))
	}
	for _, m := range lvl.IntelligentMonkeys {
		w.Enemies = append(w.Enemies, entity.NewEnemy(entity.VariantIntelligent, m.X, m.Y, m.FacingRight(), m.Route, sizes))
	}

	w.Donkey = entity.NewDonkey(lvl.Donkey.X, lvl.Donkey.Y, sizes.Of(entity.SpriteDonkey))
	w.Player = entity.NewPlayer(lvl.Mario.X, lvl.Mario.Y, sizes)
	return w, nil
}

// HasBlasters reports whether the level was placed with any blaster.
func (w *World) HasBlasters() bool {
	return len(w.Blasters) > 0
}

// Bananas returns every banana in flight.
func (w *World) Bananas() []*entity.Projectile {
	var out []*entity.Projectile
	for _, e := range w.Enemies {
		out = append(out, e.Bananas...)
	}
	return out
}
