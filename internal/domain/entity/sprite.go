package entity

import "fmt"

// Sprite identifies the image an entity is drawn with.
type Sprite int

const (
	SpritePlatform Sprite = iota
	SpriteLadder
	SpriteBarrel
	SpriteHammer
	SpriteBlaster
	SpriteDonkey
	SpriteBanana
	SpriteBulletLeft
	SpriteBulletRight
	SpriteNormalMonkeyLeft
	SpriteNormalMonkeyRight
	SpriteIntelligentMonkeyLeft
	SpriteIntelligentMonkeyRight
	SpriteMarioLeft
	SpriteMarioRight
	SpriteMarioHammerLeft
	SpriteMarioHammerRight
	SpriteMarioBlasterLeft
	SpriteMarioBlasterRight
	spriteCount
)

var spriteNames = [spriteCount]string{
	SpritePlatform:               "platform",
	SpriteLadder:                 "ladder",
	SpriteBarrel:                 "barrel",
	SpriteHammer:                 "hammer",
	SpriteBlaster:                "blaster",
	SpriteDonkey:                 "donkey",
	SpriteBanana:                 "banana",
	SpriteBulletLeft:             "bullet_left",
	SpriteBulletRight:            "bullet_right",
	SpriteNormalMonkeyLeft:       "normal_monkey_left",
	SpriteNormalMonkeyRight:      "normal_monkey_right",
	SpriteIntelligentMonkeyLeft:  "intelligent_monkey_left",
	SpriteIntelligentMonkeyRight: "intelligent_monkey_right",
	SpriteMarioLeft:              "mario_left",
	SpriteMarioRight:             "mario_right",
	SpriteMarioHammerLeft:        "mario_hammer_left",
	SpriteMarioHammerRight:       "mario_hammer_right",
	SpriteMarioBlasterLeft:       "mario_blaster_left",
	SpriteMarioBlasterRight:      "mario_blaster_right",
}

func (s Sprite) String() string {
	if s < 0 || s >= spriteCount {
		return fmt.Sprintf("sprite(%d)", int(s))
	}
	return spriteNames[s]
}

// ParseSprite maps a configuration key such as "mario_left" to its Sprite.
func ParseSprite(name string) (Sprite, error) {
	for i, n := range spriteNames {
		if n == name {
			return Sprite(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sprite %q", name)
}

// Sizes holds the dimensions of every sprite.
type Sizes map[Sprite]Size

// DefaultSizes returns the dimensions of the stock artwork.
func DefaultSizes() Sizes {
	return Sizes{
		SpritePlatform:               {W: 160, H: 20},
		SpriteLadder:                 {W: 40, H: 130},
		SpriteBarrel:                 {W: 32, H: 32},
		SpriteHammer:                 {W: 30, H: 30},
		SpriteBlaster:                {W: 34, H: 22},
		SpriteDonkey:                 {W: 100, H: 90},
		SpriteBanana:                 {W: 20, H: 14},
		SpriteBulletLeft:             {W: 14, H: 6},
		SpriteBulletRight:            {W: 14, H: 6},
		SpriteNormalMonkeyLeft:       {W: 40, H: 40},
		SpriteNormalMonkeyRight:      {W: 40, H: 40},
		SpriteIntelligentMonkeyLeft:  {W: 40, H: 40},
		SpriteIntelligentMonkeyRight: {W: 40, H: 40},
		SpriteMarioLeft:              {W: 30, H: 40},
		SpriteMarioRight:             {W: 30, H: 40},
		SpriteMarioHammerLeft:        {W: 43, H: 48},
		SpriteMarioHammerRight:       {W: 43, H: 48},
		SpriteMarioBlasterLeft:       {W: 45, H: 42},
		SpriteMarioBlasterRight:      {W: 45, H: 42},
	}
}

// Of returns the size for s, falling back to the stock artwork when s is missing.
func (z Sizes) Of(s Sprite) Size {
	if size, ok := z[s]; ok {
		return size
	}
	return DefaultSizes()[s]
}
