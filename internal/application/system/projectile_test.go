package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/shadowkong/internal/domain/entity"
)

func TestProjectileSystem_Advance(t *testing.T) {
	wall := entity.NewPlatform(200, 100, entity.Size{W: 20, H: 200})
	physics := NewPhysicsSystem([]*entity.Platform{wall})
	s := NewProjectileSystem(physics, entity.Screen{Width: 400, Height: 300})

	tests := []struct {
		name      string
		p         *entity.Projectile
		frames    int
		wantSpent bool
	}{
		{"bullet stops at platform", entity.NewBullet(180, 50, true, entity.Size{W: 14, H: 6}), 3, true},
		{"bullet leaves screen on the left", entity.NewBullet(2, 250, false, entity.Size{W: 14, H: 6}), 1, true},
		{"bullet leaves screen on the right", entity.NewBullet(398, 250, true, entity.Size{W: 14, H: 6}), 1, true},
		{"bullet in open air", entity.NewBullet(50, 250, true, entity.Size{W: 14, H: 6}), 10, false},
		{"banana passes through platforms", entity.NewBanana(180, 50, true, entity.Size{W: 20, H: 14}), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.frames; i++ {
				s.Advance(tt.p)
			}
			assert.Equal(t, tt.wantSpent, tt.p.Spent)
		})
	}
}

func TestProjectileSystem_SpentIsUntouched(t *testing.T) {
	s := NewProjectileSystem(NewPhysicsSystem(nil), entity.Screen{Width: 400, Height: 300})
	p := entity.NewBullet(100, 100, true, entity.Size{W: 14, H: 6})
	p.Expire()

	s.Advance(p)

	assert.Equal(t, 100.0, p.X)
}
