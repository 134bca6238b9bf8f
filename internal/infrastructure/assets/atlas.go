// Package assets provides the sprite atlas the renderer draws from.
package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Maker produces the image for one sprite key
type Maker func(key string) *ebiten.Image

// Atlas loads sprites a batch at a time and reports which keys are ready.
// It implements port.Sprites.
type Atlas struct {
	keys   []string
	images map[string]*ebiten.Image
	next   int
	batch  int
	maker  Maker
}

// NewAtlas creates an atlas for keys. Duplicate keys are loaded once.
func NewAtlas(keys []string, batch int, maker Maker) *Atlas {
	if batch < 1 {
		batch = 1
	}
	seen := make(map[string]bool, len(keys))
	unique := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, k)
	}
	return &Atlas{
		keys:   unique,
		images: make(map[string]*ebiten.Image, len(unique)),
		batch:  batch,
		maker:  maker,
	}
}

// Load makes the next batch of images. It returns how many were made.
func (a *Atlas) Load() int {
	n := 0
	for ; n < a.batch && a.next < len(a.keys); n++ {
		key := a.keys[a.next]
		a.images[key] = a.maker(key)
		a.next++
	}
	return n
}

// Done returns true once every key is loaded
func (a *Atlas) Done() bool {
	return a.next >= len(a.keys)
}

// Progress returns the loaded fraction in [0, 1]
func (a *Atlas) Progress() float64 {
	if len(a.keys) == 0 {
		return 1
	}
	return float64(a.next) / float64(len(a.keys))
}

// Ready returns true if the key has been loaded
func (a *Atlas) Ready(key string) bool {
	_, ok := a.images[key]
	return ok
}

// Image returns the loaded image for key, or nil
func (a *Atlas) Image(key string) *ebiten.Image {
	return a.images[key]
}

// Len returns the number of distinct keys
func (a *Atlas) Len() int {
	return len(a.keys)
}
