package config

import (
	"fmt"
	"math"
	"sort"
)

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player      EntityConfig            `json:"player"`
	Boss        EntityConfig            `json:"boss"`
	Enemies     map[string]EnemyConfig  `json:"enemies"`
	Pickups     map[string]EntityConfig `json:"pickups"`
	Projectiles map[string]EntityConfig `json:"projectiles"`
	Clouds      EntityConfig            `json:"clouds"`
	StatusBars  StatusBarsConfig        `json:"statusBars"`
}

// EntityConfig describes the sprite size, hitbox and animations of one kind
type EntityConfig struct {
	Width      float64                    `json:"width"`
	Height     float64                    `json:"height"`
	Hitbox     *Rect                      `json:"hitbox,omitempty"`
	Animations map[string]AnimationConfig `json:"animations"`
}

// EnemyConfig extends EntityConfig with patrol settings
type EnemyConfig struct {
	EntityConfig
	Y             float64     `json:"y"`
	Speed         RangeConfig `json:"speed"`
	StartDelayMax float64     `json:"startDelayMax"` // seconds
	RespawnX      float64     `json:"respawnX"`
	RespawnJitter float64     `json:"respawnJitter"`
}

type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Pick maps a unit value r in [0,1) onto the range
func (r RangeConfig) Pick(unit float64) float64 {
	return r.Min + unit*(r.Max-r.Min)
}

type Rect struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// AnimationConfig is a clip of numbered frames under one sprite prefix
type AnimationConfig struct {
	Sprite     string `json:"sprite"`
	Frames     int    `json:"frames"`
	IntervalMs int    `json:"intervalMs"`
	Once       bool   `json:"once,omitempty"`
}

// FrameKeys returns the sprite keys of the clip in display order
func (a AnimationConfig) FrameKeys() []string {
	keys := make([]string, a.Frames)
	for i := range keys {
		keys[i] = FrameKey(a.Sprite, i)
	}
	return keys
}

// PeriodTicks returns the frame interval in ticks (at least 1)
func (a AnimationConfig) PeriodTicks(framerate int) int {
	n := int(math.Round(float64(a.IntervalMs) * float64(framerate) / 1000))
	if n < 1 {
		n = 1
	}
	return n
}

// FrameKey builds the sprite key of frame i
func FrameKey(sprite string, i int) string {
	return fmt.Sprintf("%s/%d", sprite, i)
}

// StatusBarsConfig places the HUD bars on screen
type StatusBarsConfig struct {
	Width  float64                   `json:"width"`
	Height float64                   `json:"height"`
	Bars   map[string]PositionConfig `json:"bars"`
}

// SpriteKeys lists every animation frame key referenced by the config,
// sorted so loading order is stable. Cloud sprites come from the level.
func (c *EntitiesConfig) SpriteKeys() []string {
	seen := make(map[string]bool)
	add := func(ec EntityConfig) {
		for _, anim := range ec.Animations {
			for _, k := range anim.FrameKeys() {
				seen[k] = true
			}
		}
	}

	add(c.Player)
	add(c.Boss)
	for _, e := range c.Enemies {
		add(e.EntityConfig)
	}
	for _, p := range c.Pickups {
		add(p)
	}
	for _, p := range c.Projectiles {
		add(p)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
