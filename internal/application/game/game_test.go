package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/state"
)

type mockScene struct {
	updates int
	draws   int
	enters  int
	exits   int
	next    scene.Scene
	err     error
	lastDT  float64
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updates++
	m.lastDT = dt
	return m.next, m.err
}

func (m *mockScene) Draw(_ *ebiten.Image) { m.draws++ }
func (m *mockScene) OnEnter()             { m.enters++ }
func (m *mockScene) OnExit()              { m.exits++ }

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 1024, 768, 60)

	require.NotNil(t, g)
	assert.Equal(t, 1, initial.enters)
	assert.Same(t, initial, g.Current())
}

func TestGame_Update_PassesFrameTime(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		want float64
	}{
		{"60 fps", 60, 1.0 / 60},
		{"30 fps", 30, 1.0 / 30},
		{"unset falls back to 60", 0, 1.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{}
			g := New(s, 320, 240, tt.fps)

			require.NoError(t, g.Update())
			assert.Equal(t, 1, s.updates)
			assert.InDelta(t, tt.want, s.lastDT, 1e-12)
		})
	}
}

func TestGame_Draw(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 60)

	g.Draw(ebiten.NewImage(320, 240))
	assert.Equal(t, 1, s.draws)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 1024, 768, 60)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestGame_SceneTransition(t *testing.T) {
	second := &mockScene{}
	first := &mockScene{next: second}
	g := New(first, 320, 240, 60)

	require.NoError(t, g.Update())
	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 1, second.enters)
	assert.Same(t, second, g.Current())

	require.NoError(t, g.Update())
	assert.Equal(t, 1, second.updates)
	assert.Equal(t, 1, first.updates)
}

func TestGame_StaysWithoutTransition(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 60)

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, 5, s.updates)
	assert.Zero(t, s.exits)
}

func TestGame_UpdateError(t *testing.T) {
	g := New(&mockScene{err: assert.AnError}, 320, 240, 60)

	assert.ErrorIs(t, g.Update(), assert.AnError)
}

type titleScene struct{ mockScene }

func (t *titleScene) State() state.GameState { return state.StateTitle }

func TestGame_State(t *testing.T) {
	title := &titleScene{}
	g := New(title, 320, 240, 60)
	assert.Equal(t, state.StateTitle, g.State())

	title.next = &mockScene{}
	require.NoError(t, g.Update())
	assert.Equal(t, state.StatePlaying, g.State(), "scenes without a state count as gameplay")
}

func TestGame_QuitOn(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240, 60)
	quit := false
	g.QuitOn(func() bool { return quit })

	require.NoError(t, g.Update())

	quit = true
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, s.updates, "scene is not updated on quit")
	assert.Equal(t, 1, s.exits, "scene is exited on quit")
}
