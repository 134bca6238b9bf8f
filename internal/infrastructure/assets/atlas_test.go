package assets

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type countingMaker struct {
	made []string
}

func (m *countingMaker) make(key string) *ebiten.Image {
	m.made = append(m.made, key)
	return nil
}

func TestAtlas_LoadsInBatches(t *testing.T) {
	m := &countingMaker{}
	a := NewAtlas([]string{"a", "b", "c", "b", "", "d", "e"}, 2, m.make)

	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 0.0, a.Progress())
	assert.False(t, a.Ready("a"))

	assert.Equal(t, 2, a.Load())
	assert.True(t, a.Ready("a"))
	assert.True(t, a.Ready("b"))
	assert.False(t, a.Ready("c"))
	assert.InDelta(t, 0.4, a.Progress(), 0.0001)

	a.Load()
	assert.Equal(t, 1, a.Load())
	assert.True(t, a.Done())
	assert.Equal(t, 1.0, a.Progress())
	assert.Equal(t, 0, a.Load())

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, m.made)
}

func TestAtlas_Empty(t *testing.T) {
	a := NewAtlas(nil, 0, (&countingMaker{}).make)
	assert.True(t, a.Done())
	assert.Equal(t, 1.0, a.Progress())
	assert.False(t, a.Ready("missing"))
	assert.Nil(t, a.Image("missing"))
}

func TestFrameIndexAndColors(t *testing.T) {
	assert.Equal(t, 3, frameIndex([]string{"pepe", "walk", "3"}))
	assert.Equal(t, 0, frameIndex([]string{"bg", "air"}))

	assert.Equal(t, colorPepe, baseColor([]string{"pepe", "idle", "0"}))
	assert.Equal(t, colorChicken, baseColor([]string{"chicken_small", "walk", "1"}))
	assert.Equal(t, colorSky, baseColor([]string{"bg", "air"}))
	assert.Equal(t, colorSand, baseColor([]string{"bg", "first", "1"}))
	assert.Equal(t, colorFallback, baseColor([]string{"unknown"}))

	assert.Equal(t, colorPepe, shade(colorPepe, 0))
	assert.NotEqual(t, colorPepe, shade(colorPepe, 1))
}
