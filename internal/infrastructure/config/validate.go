package config

import "fmt"

// Validate checks game.yaml and fills in defaults for omitted values.
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalidGame, c.Screen.Width, c.Screen.Height)
	}
	if c.MaxFrames <= 0 {
		return fmt.Errorf("%w: max_frames must be positive", ErrInvalidGame)
	}
	if c.FPS == 0 {
		c.FPS = 60
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalidGame)
	}
	if c.Levels == 0 {
		c.Levels = 2
	}
	for name, s := range c.Sprites {
		if s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("%w: sprite %s has negative size", ErrInvalidGame, name)
		}
	}
	return nil
}

// Validate checks that a level can be played.
func (c *LevelConfig) Validate() error {
	if c.Mario == nil {
		return fmt.Errorf("%w: missing mario", ErrInvalidLevel)
	}
	if c.Donkey == nil {
		return fmt.Errorf("%w: missing donkey", ErrInvalidLevel)
	}
	for i, m := range append(append([]MonkeyConfig(nil), c.NormalMonkeys...), c.IntelligentMonkeys...) {
		if m.Direction != "left" && m.Direction != "right" {
			return fmt.Errorf("%w: monkey %d direction %q", ErrInvalidLevel, i, m.Direction)
		}
		for _, d := range m.Route {
			if d <= 0 {
				return fmt.Errorf("%w: monkey %d route leg %v", ErrInvalidLevel, i, d)
			}
		}
	}
	for i, b := range c.Blasters {
		if b.Ammo < 0 {
			return fmt.Errorf("%w: blaster %d ammo %d", ErrInvalidLevel, i, b.Ammo)
		}
	}
	return nil
}
