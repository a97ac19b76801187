package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGameYAML = `
screen: { width: 1024, height: 768 }
max_frames: 600
sprites:
  mario_left: { width: 30, height: 40 }
hud:
  score: { x: 50, y: 40 }
`

const testLevelYAML = `
name: test
mario: { x: 100, y: 728 }
donkey: { x: 900, y: 223 }
platforms:
  - { x: 80, y: 758 }
blasters:
  - { x: 200, y: 617, ammo: 3 }
normal_monkeys:
  - "600,488;LEFT;100,80"
intelligent_monkeys:
  - x: 400
    y: 368
    direction: Right
    route: [120]
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"game.yaml":          {Data: []byte(testGameYAML)},
		"levels/level1.yaml": {Data: []byte(testLevelYAML)},
		"levels/level2.yaml": {Data: []byte(testLevelYAML)},
	}
}

func TestLoader_LoadGame(t *testing.T) {
	cfg, err := NewFSLoader(testFS()).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Screen.Width)
	assert.Equal(t, 600, cfg.MaxFrames)
	assert.Equal(t, 60, cfg.FPS, "fps defaults to 60")
	assert.Equal(t, 2, cfg.Levels, "levels defaults to 2")
	assert.Equal(t, SizeConfig{Width: 30, Height: 40}, cfg.Sprites["mario_left"])
	assert.Equal(t, PointConfig{X: 50, Y: 40}, cfg.HUD.Score)
}

func TestLoader_LoadLevel(t *testing.T) {
	cfg, err := NewFSLoader(testFS()).LoadLevel(1)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Name)
	assert.Equal(t, &PointConfig{X: 100, Y: 728}, cfg.Mario)
	assert.Len(t, cfg.Platforms, 1)
	assert.Equal(t, []BlasterConfig{{X: 200, Y: 617, Ammo: 3}}, cfg.Blasters)
	assert.Equal(t, []MonkeyConfig{{X: 600, Y: 488, Direction: "left", Route: []float64{100, 80}}}, cfg.NormalMonkeys)
	assert.Equal(t, []MonkeyConfig{{X: 400, Y: 368, Direction: "right", Route: []float64{120}}}, cfg.IntelligentMonkeys)
	assert.True(t, cfg.IntelligentMonkeys[0].FacingRight())
	assert.False(t, cfg.NormalMonkeys[0].FacingRight())
}

func TestLoader_LoadAll(t *testing.T) {
	c, err := NewFSLoader(testFS()).LoadAll()
	require.NoError(t, err)
	assert.Len(t, c.Levels, 2)
	assert.NotNil(t, c.Levels[2])
}

func TestLoader_MissingFile(t *testing.T) {
	fsys := testFS()
	delete(fsys, "levels/level2.yaml")

	_, err := NewFSLoader(fsys).LoadAll()
	assert.ErrorContains(t, err, "levels/level2.yaml")
}

func TestLoader_BuiltinConfigs(t *testing.T) {
	c, err := NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 2, c.Game.Levels)
	for n, lvl := range c.Levels {
		assert.NotNil(t, lvl.Mario, "level %d", n)
		assert.NotEmpty(t, lvl.Platforms, "level %d", n)
	}
	assert.NotEmpty(t, c.Levels[1].Hammers)
	assert.NotEmpty(t, c.Levels[2].Blasters)
}

func TestParseMonkey(t *testing.T) {
	tests := []struct {
		in      string
		want    MonkeyConfig
		wantErr bool
	}{
		{in: "600,488;left;100,80", want: MonkeyConfig{X: 600, Y: 488, Direction: "left", Route: []float64{100, 80}}},
		{in: " 10.5, 20 ; Right ; 30 ", want: MonkeyConfig{X: 10.5, Y: 20, Direction: "right", Route: []float64{30}}},
		{in: "1,2;left", want: MonkeyConfig{X: 1, Y: 2, Direction: "left"}},
		{in: "1,2;left;", want: MonkeyConfig{X: 1, Y: 2, Direction: "left"}},
		{in: "1,2", wantErr: true},
		{in: "1;left;3", wantErr: true},
		{in: "a,2;left", wantErr: true},
		{in: "1,b;left", wantErr: true},
		{in: "1,2;left;3,x", wantErr: true},
		{in: "1,2;left;3;4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonkey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameConfig_Validate(t *testing.T) {
	valid := func() GameConfig {
		return GameConfig{Screen: ScreenConfig{Width: 1024, Height: 768}, MaxFrames: 100, FPS: 60, Levels: 2}
	}
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		ok     bool
	}{
		{"valid", func(*GameConfig) {}, true},
		{"zero width", func(c *GameConfig) { c.Screen.Width = 0 }, false},
		{"zero height", func(c *GameConfig) { c.Screen.Height = 0 }, false},
		{"no max frames", func(c *GameConfig) { c.MaxFrames = 0 }, false},
		{"negative fps", func(c *GameConfig) { c.FPS = -1 }, false},
		{"negative sprite", func(c *GameConfig) { c.Sprites = map[string]SizeConfig{"barrel": {Width: -1}} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidGame)
			}
		})
	}
}

func TestLevelConfig_Validate(t *testing.T) {
	valid := func() LevelConfig {
		return LevelConfig{Mario: &PointConfig{}, Donkey: &PointConfig{}}
	}
	tests := []struct {
		name   string
		mutate func(*LevelConfig)
		ok     bool
	}{
		{"valid", func(*LevelConfig) {}, true},
		{"no mario", func(c *LevelConfig) { c.Mario = nil }, false},
		{"no donkey", func(c *LevelConfig) { c.Donkey = nil }, false},
		{"bad direction", func(c *LevelConfig) {
			c.NormalMonkeys = []MonkeyConfig{{Direction: "up"}}
		}, false},
		{"zero leg", func(c *LevelConfig) {
			c.IntelligentMonkeys = []MonkeyConfig{{Direction: "left", Route: []float64{10, 0}}}
		}, false},
		{"negative ammo", func(c *LevelConfig) { c.Blasters = []BlasterConfig{{Ammo: -1}} }, false},
		{"zero ammo uses the default", func(c *LevelConfig) { c.Blasters = []BlasterConfig{{Ammo: 0}} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidLevel)
			}
		})
	}
}
