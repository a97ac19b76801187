package system

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/younwookim/shadowkong/internal/domain/entity"
)

var testLogger = log.New(io.Discard)

// newTestWorld returns a 1000x800 world with a floor whose top is at y=750.
// The player stands on the floor at x=100 and Donkey at the far right.
func newTestWorld() *World {
	sizes := entity.DefaultSizes()
	w := &World{
		Screen:    entity.Screen{Width: 1000, Height: 800},
		Sizes:     sizes,
		Platforms: []*entity.Platform{entity.NewPlatform(500, 760, entity.Size{W: 1000, H: 20})},
		Donkey:    entity.NewDonkey(900, 705, sizes.Of(entity.SpriteDonkey)),
		Player:    entity.NewPlayer(100, 730, sizes),
	}
	return w
}
