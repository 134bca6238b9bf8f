// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// It also owns the global mute toggle, which outlives any single match.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	audio      port.Audio
	settings   port.Settings
	muteToggle func() bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 TPS
	}
	g.current.OnEnter()
	return g
}

// SetMute wires the mute toggle. pressed is polled once per tick.
func (g *Game) SetMute(audio port.Audio, settings port.Settings, pressed func() bool) {
	g.audio = audio
	g.settings = settings
	g.muteToggle = pressed
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.muteToggle != nil && g.muteToggle() {
		g.ToggleMute()
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// ToggleMute flips the mute flag and persists it right away.
// A failed save is logged; the new flag stays in effect.
func (g *Game) ToggleMute() {
	if g.audio == nil {
		return
	}
	muted := !g.audio.Muted()
	g.audio.SetMuted(muted)
	if g.settings == nil {
		return
	}
	if err := g.settings.SaveMuted(muted); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom tick rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
