package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, Width: 4, Height: 4}, true},
		{"partial", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestHitboxRect_WorldRect(t *testing.T) {
	b := Body{X: 200, Y: 140, Width: 140, Height: 300}

	hb := HitboxRect{OffsetX: 35, OffsetY: 120, Width: 60, Height: 165}
	assert.Equal(t, Rect{X: 235, Y: 260, Width: 60, Height: 165}, hb.WorldRect(b))

	// Zero size falls back to the body size
	zero := HitboxRect{OffsetX: 5, OffsetY: 5}
	assert.Equal(t, Rect{X: 205, Y: 145, Width: 140, Height: 300}, zero.WorldRect(b))
}

func TestEntity_HitRect(t *testing.T) {
	e := &Entity{Body: Body{X: 10, Y: 20, Width: 50, Height: 50}}
	assert.Equal(t, e.Bounds(), e.HitRect())

	e.Hitbox = &HitboxRect{OffsetX: 10, OffsetY: 10, Width: 30, Height: 30}
	assert.Equal(t, Rect{X: 20, Y: 30, Width: 30, Height: 30}, e.HitRect())
}

func TestEntity_Kill(t *testing.T) {
	e := &Entity{Kind: KindChicken, Enemy: &Enemy{}}

	assert.True(t, e.Kill(24))
	assert.True(t, e.Dead)
	assert.Equal(t, 24, e.Enemy.RemoveTimer)

	e.Enemy.RemoveTimer = 3
	assert.False(t, e.Kill(24), "second kill is a no-op")
	assert.Equal(t, 3, e.Enemy.RemoveTimer)
}
