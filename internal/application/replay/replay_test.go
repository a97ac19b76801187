package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/shadowkong/internal/application/system"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Level:   1,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, U: true, D: true, S: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Up: true, Down: true, Fire: true}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, R: true}, {F: 1}}})

	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(2, 1234)

	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{Jump: true, Fire: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{Right: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 2, data.Level)
	assert.Equal(t, 1234, data.StartingScore)
	assert.Equal(t, []FrameInput{{F: 0, L: true}, {F: 1, J: true, S: true}}, data.Frames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(1, 0)
	inputs := []system.InputState{{Right: true}, {Right: true, Jump: true}, {}, {Up: true}}
	for _, in := range inputs {
		rec.RecordFrame(in)
	}

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Level)
	assert.Len(t, data.Frames, len(inputs))

	replayer := NewReplayer(*data)
	for i, want := range inputs {
		got, ok := replayer.GetInput()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1, 0).Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename(2)
	assert.Contains(t, name, "replay_level2_")
	assert.Equal(t, ".json", filepath.Ext(name))
}
