// Package keyboard reads the ebiten keyboard into per-frame control snapshots.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/shadowkong/internal/application/system"
)

// Bindings maps controls to keys.
type Bindings struct {
	Left, Right ebiten.Key
	Up, Down    ebiten.Key
	Jump        ebiten.Key
	Fire        ebiten.Key
}

// DefaultBindings are the arrow keys, Space to jump and S to fire.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  ebiten.KeyArrowLeft,
		Right: ebiten.KeyArrowRight,
		Up:    ebiten.KeyArrowUp,
		Down:  ebiten.KeyArrowDown,
		Jump:  ebiten.KeySpace,
		Fire:  ebiten.KeyS,
	}
}

// Keyboard polls key state.
type Keyboard struct {
	bindings    Bindings
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// New creates a keyboard reading ebiten's key state.
func New(b Bindings) *Keyboard {
	return &Keyboard{
		bindings:    b,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Poll returns this frame's control snapshot. Movement keys are reported
// while held; jump and fire only on the frame they go down.
func (k *Keyboard) Poll() system.InputState {
	b := k.bindings
	return system.InputState{
		Left:  k.pressed(b.Left),
		Right: k.pressed(b.Right),
		Up:    k.pressed(b.Up),
		Down:  k.pressed(b.Down),
		Jump:  k.justPressed(b.Jump),
		Fire:  k.justPressed(b.Fire),
	}
}

// JustPressed reports whether key went down this frame.
func (k *Keyboard) JustPressed(key ebiten.Key) bool {
	return k.justPressed(key)
}
