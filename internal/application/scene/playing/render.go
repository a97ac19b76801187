package playing

import (
	"image/color"

	"github.com/younwookim/shadowkong/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{170, 60, 40, 255}
	colorLadder   = color.RGBA{80, 200, 220, 255}
	colorBarrel   = color.RGBA{150, 90, 40, 255}
	colorHammer   = color.RGBA{200, 200, 200, 255}
	colorBlaster  = color.RGBA{90, 90, 110, 255}
	colorDonkey   = color.RGBA{110, 60, 20, 255}
	colorMonkey   = color.RGBA{200, 140, 60, 255}
	colorSmart    = color.RGBA{230, 90, 160, 255}
	colorBanana   = color.RGBA{255, 220, 40, 255}
	colorBullet   = color.RGBA{255, 100, 100, 255}
	colorMario    = color.RGBA{220, 40, 40, 255}
	colorArmed    = color.RGBA{250, 120, 120, 255}
)

func spriteColor(s entity.Sprite) color.Color {
	switch s {
	case entity.SpritePlatform:
		return colorPlatform
	case entity.SpriteLadder:
		return colorLadder
	case entity.SpriteBarrel:
		return colorBarrel
	case entity.SpriteHammer:
		return colorHammer
	case entity.SpriteBlaster:
		return colorBlaster
	case entity.SpriteDonkey:
		return colorDonkey
	case entity.SpriteNormalMonkeyLeft, entity.SpriteNormalMonkeyRight:
		return colorMonkey
	case entity.SpriteIntelligentMonkeyLeft, entity.SpriteIntelligentMonkeyRight:
		return colorSmart
	case entity.SpriteBanana:
		return colorBanana
	case entity.SpriteBulletLeft, entity.SpriteBulletRight:
		return colorBullet
	case entity.SpriteMarioLeft, entity.SpriteMarioRight:
		return colorMario
	default:
		return colorArmed
	}
}
