package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/shadowkong/internal/application/replay"
	"github.com/younwookim/shadowkong/internal/application/scene"
	"github.com/younwookim/shadowkong/internal/application/system"
	"github.com/younwookim/shadowkong/internal/domain/entity"
	"github.com/younwookim/shadowkong/internal/infrastructure/config"
)

type stubScene struct{}

func (s *stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(*ebiten.Image)                  {}
func (s *stubScene) OnEnter()                            {}
func (s *stubScene) OnExit()                             {}

type levelCall struct{ n, score int }

type fakeRouter struct {
	levels  []levelCall
	results []scene.Result
}

func (r *fakeRouter) Title() scene.Scene { return &stubScene{} }
func (r *fakeRouter) Level(n, score int) scene.Scene {
	r.levels = append(r.levels, levelCall{n, score})
	return &stubScene{}
}
func (r *fakeRouter) Result(res scene.Result) scene.Scene {
	r.results = append(r.results, res)
	return &stubScene{}
}

type fakeControls struct{ in system.InputState }

func (c *fakeControls) Poll() system.InputState     { return c.in }
func (c *fakeControls) JustPressed(ebiten.Key) bool { return false }

func testGame() *config.GameConfig {
	return &config.GameConfig{
		Screen:    config.ScreenConfig{Width: 1024, Height: 768},
		FPS:       60,
		MaxFrames: 120,
		Levels:    2,
	}
}

// testLevel has Mario standing on the left floor and Donkey on the right.
func testLevel() *config.LevelConfig {
	return &config.LevelConfig{
		Name:      "test",
		Mario:     &config.PointConfig{X: 100, Y: 728},
		Donkey:    &config.PointConfig{X: 880, Y: 703},
		Platforms: []config.PointConfig{{X: 80, Y: 758}, {X: 880, Y: 758}},
	}
}

// winningLevel puts a hammer under Mario and Donkey next to him.
func winningLevel() *config.LevelConfig {
	cfg := testLevel()
	cfg.Donkey = &config.PointConfig{X: 120, Y: 703}
	cfg.Hammers = []config.PointConfig{{X: 100, Y: 728}}
	return cfg
}

func runUntilDone(t *testing.T, p *Playing) scene.Scene {
	t.Helper()
	for i := 0; i < 1000; i++ {
		next, err := p.Update(1.0 / 60)
		require.NoError(t, err)
		if next != nil {
			return next
		}
	}
	t.Fatal("level never finished")
	return nil
}

func TestPlaying_TimeUpGoesToResult(t *testing.T) {
	router := &fakeRouter{}
	p, err := New(testGame(), testLevel(), 1, 250, Deps{Router: router, Controls: &fakeControls{}, Levels: 2})
	require.NoError(t, err)

	runUntilDone(t, p)

	assert.Equal(t, 120, p.Level().Frame())
	assert.Empty(t, router.levels)
	assert.Equal(t, []scene.Result{{Level: 1, Score: 250, Won: false}}, router.results)
}

func TestPlaying_WinAdvances(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		wantLevels []levelCall
		wantResult []scene.Result
	}{
		{
			name:       "level 1 carries the score into level 2",
			number:     1,
			wantLevels: []levelCall{{2, 50}},
		},
		{
			name:       "last level ends the game",
			number:     2,
			wantResult: []scene.Result{{Level: 2, Score: 50 + 3*1, Won: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := &fakeRouter{}
			p, err := New(testGame(), winningLevel(), tt.number, 50, Deps{Router: router, Controls: &fakeControls{}, Levels: 2})
			require.NoError(t, err)

			next, err := p.Update(1.0 / 60)
			require.NoError(t, err)
			require.NotNil(t, next)

			assert.Equal(t, tt.wantLevels, router.levels)
			assert.Equal(t, tt.wantResult, router.results)
		})
	}
}

func TestPlaying_QueuesOneDrawPerEntity(t *testing.T) {
	p, err := New(testGame(), testLevel(), 1, 0, Deps{Router: &fakeRouter{}, Controls: &fakeControls{}, Levels: 2})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}

	sprites := make([]entity.Sprite, 0, len(p.calls))
	for _, c := range p.calls {
		sprites = append(sprites, c.sprite)
	}
	assert.Equal(t, []entity.Sprite{
		entity.SpritePlatform, entity.SpritePlatform, entity.SpriteDonkey, entity.SpriteMarioRight,
	}, sprites, "only the last frame is queued")
}

func TestPlaying_InvalidLevel(t *testing.T) {
	cfg := testLevel()
	cfg.Mario = nil

	_, err := New(testGame(), cfg, 1, 0, Deps{Router: &fakeRouter{}, Controls: &fakeControls{}})
	assert.ErrorIs(t, err, config.ErrInvalidLevel)
}

func TestPlaying_RecordsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	controls := &fakeControls{in: system.InputState{Right: true}}
	p, err := New(testGame(), testLevel(), 1, 7, Deps{
		Router: &fakeRouter{}, Controls: controls, Levels: 2, RecordPath: path,
	})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, 7, data.StartingScore)
	require.Len(t, data.Frames, 10)
	assert.True(t, data.Frames[9].R)
}
