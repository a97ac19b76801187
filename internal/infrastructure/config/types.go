package config

// GameConfig is the root of game.yaml.
type GameConfig struct {
	Screen    ScreenConfig          `yaml:"screen"`
	FPS       int                   `yaml:"fps"`
	MaxFrames int                   `yaml:"max_frames"`
	Levels    int                   `yaml:"levels"`
	Sprites   map[string]SizeConfig `yaml:"sprites"`
	HUD       HUDConfig             `yaml:"hud"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HUDConfig positions the score and status text.
type HUDConfig struct {
	Score       PointConfig `yaml:"score"`
	DonkeyInfo  PointConfig `yaml:"donkey_info"`
	LineSpacing float64     `yaml:"line_spacing"`
}

// LevelConfig is the placement data of levels/level<N>.yaml.
// Every coordinate is the centre of the entity.
type LevelConfig struct {
	Name               string          `yaml:"name"`
	Mario              *PointConfig    `yaml:"mario"`
	Donkey             *PointConfig    `yaml:"donkey"`
	Platforms          []PointConfig   `yaml:"platforms"`
	Ladders            []PointConfig   `yaml:"ladders"`
	Barrels            []PointConfig   `yaml:"barrels"`
	Hammers            []PointConfig   `yaml:"hammers"`
	Blasters           []BlasterConfig `yaml:"blasters"`
	NormalMonkeys      []MonkeyConfig  `yaml:"normal_monkeys"`
	IntelligentMonkeys []MonkeyConfig  `yaml:"intelligent_monkeys"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BlasterConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Ammo int     `yaml:"ammo"`
}

// MonkeyConfig places a monkey. Direction is "left" or "right"; Route is the
// length of each patrol leg.
type MonkeyConfig struct {
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Direction string    `yaml:"direction"`
	Route     []float64 `yaml:"route"`
}

// FacingRight reports the initial facing.
func (m MonkeyConfig) FacingRight() bool {
	return m.Direction == "right"
}
