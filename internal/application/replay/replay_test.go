package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/application/system"
)

func testData() ReplayData {
	return ReplayData{
		Version: Version,
		Seed:    12345,
		Level:   "level1",
		Frames: []FrameInput{
			{F: 0, R: true},
			{F: 1, R: true, S: true},
			{F: 2, L: true, D: true},
		},
	}
}

func TestCaptureAndApply(t *testing.T) {
	kb := system.NewKeyboard()
	kb.Set(system.KeyRight, true)
	kb.Set(system.KeyThrow, true)

	fi := Capture(7, kb)
	assert.Equal(t, FrameInput{F: 7, R: true, D: true}, fi)

	other := system.NewKeyboard()
	other.Set(system.KeyLeft, true)
	fi.Apply(other)
	assert.True(t, other.Pressed(system.KeyRight))
	assert.True(t, other.Pressed(system.KeyThrow))
	assert.False(t, other.Pressed(system.KeyLeft), "apply overwrites every flag")
}

func TestReplayer_Next(t *testing.T) {
	r := NewReplayer(testData())
	kb := system.NewKeyboard()

	require.True(t, r.Next(kb))
	assert.True(t, kb.Pressed(system.KeyRight))
	require.True(t, r.Next(kb))
	assert.True(t, kb.Pressed(system.KeySpace))
	require.True(t, r.Next(kb))
	assert.True(t, kb.Pressed(system.KeyLeft))
	assert.False(t, kb.Pressed(system.KeyRight))
	assert.True(t, r.Done())
	assert.Equal(t, 3, r.CurrentFrame())

	assert.False(t, r.Next(kb))
	assert.False(t, kb.Any(), "keys released after the last frame")

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.Equal(t, 3, r.TotalFrames())
	assert.Equal(t, int64(12345), r.Seed())
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	raw, err := json.Marshal(testData())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "level1", data.Level)
	assert.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[2].D)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}
