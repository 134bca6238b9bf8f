package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Names of the shared keyboard flags
const (
	KeyRight = "RIGHT"
	KeyLeft  = "LEFT"
	KeySpace = "SPACE"
	KeyThrow = "D"
)

// Keyboard is the shared map of named key flags. The input adapter is its
// only writer; the player controller reads it every tick.
type Keyboard map[string]bool

// NewKeyboard creates a keyboard with every flag released
func NewKeyboard() Keyboard {
	return Keyboard{KeyRight: false, KeyLeft: false, KeySpace: false, KeyThrow: false}
}

// Set records the latest state of a key. The last write before a tick wins.
func (k Keyboard) Set(name string, down bool) {
	k[name] = down
}

// Pressed returns true if the key is held
func (k Keyboard) Pressed(name string) bool {
	return k[name]
}

// Any returns true if any key is held
func (k Keyboard) Any() bool {
	for _, down := range k {
		if down {
			return true
		}
	}
	return false
}

// Reset releases every key
func (k Keyboard) Reset() {
	for name := range k {
		k[name] = false
	}
}

// InputSystem maps ebiten key state onto the keyboard flags
type InputSystem struct {
	bindings map[string][]ebiten.Key
}

// NewInputSystem creates an input system with the default bindings
func NewInputSystem() *InputSystem {
	return &InputSystem{
		bindings: map[string][]ebiten.Key{
			KeyRight: {ebiten.KeyArrowRight},
			KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			KeySpace: {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
			KeyThrow: {ebiten.KeyD},
		},
	}
}

// Poll writes the current key state into kb
func (s *InputSystem) Poll(kb Keyboard) {
	for name, keys := range s.bindings {
		down := false
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		kb.Set(name, down)
	}
}

// MuteToggled returns true on the frame M is pressed
func (s *InputSystem) MuteToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// RestartPressed returns true on the frame Enter or Space is pressed
func (s *InputSystem) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// PlayerController applies the keyboard to the player once per tick
type PlayerController struct {
	config  *config.GameConfig
	physics *PhysicsSystem
	factory *Factory
	audio   port.Audio
	screen  port.Screen
}

// NewPlayerController creates a new player controller
func NewPlayerController(cfg *config.GameConfig, physics *PhysicsSystem, factory *Factory, audio port.Audio, screen port.Screen) *PlayerController {
	return &PlayerController{
		config:  cfg,
		physics: physics,
		factory: factory,
		audio:   audio,
		screen:  screen,
	}
}

// Update reads the keyboard and drives the player for one tick
func (c *PlayerController) Update(w *world.World, kb Keyboard) {
	e := w.Player
	if e == nil || e.Player == nil {
		return
	}
	p := e.Player
	c.updateTimers(p)

	throw := kb.Pressed(KeyThrow)
	defer func() { p.PrevThrow = throw }()

	if e.Dead || p.Dying || w.GameOver {
		return
	}

	c.updateSleep(p, kb.Any())
	if e.Physics.Falling {
		p.Main = entity.AnimJump
		return
	}
	if p.Sleeping {
		return
	}

	moving := false
	switch {
	case kb.Pressed(KeyRight):
		c.physics.MoveHorizontal(e, 1)
		p.FacingLeft = false
		moving = true
	case kb.Pressed(KeyLeft):
		c.physics.MoveHorizontal(e, -1)
		p.FacingLeft = true
		moving = true
	}

	// held SPACE keeps jumping until MaxJumps are used; throw needs a fresh press
	if kb.Pressed(KeySpace) && c.physics.Jump(e) {
		c.play(port.CueJump)
		if e.Anim != nil && e.Anim.State == entity.AnimJump {
			e.Anim.Restart()
		}
	}
	if throw && !p.PrevThrow {
		c.Throw(w)
	}

	switch {
	case IsAirborne(e):
		p.Main = entity.AnimJump
	case moving:
		p.Main = entity.AnimWalk
	default:
		p.Main = entity.AnimIdle
	}

	if moving {
		c.play(port.CueWalk)
	} else {
		c.audio.Stop(port.CueWalk)
	}
}

func (c *PlayerController) updateTimers(p *entity.Player) {
	if p.Hurt {
		p.HurtTimer--
		if p.HurtTimer <= 0 {
			p.Hurt = false
			p.HurtTimer = 0
		}
	}
	if !p.CanThrow {
		p.ThrowCooldown--
		if p.ThrowCooldown <= 0 {
			p.CanThrow = true
			p.ThrowCooldown = 0
		}
	}
}

// updateSleep counts ticks without input and puts the player to sleep
// once the timeout is reached. Any input wakes the player.
func (c *PlayerController) updateSleep(p *entity.Player, input bool) {
	if input {
		if p.WakeUp() {
			c.audio.Stop(port.CueSnore)
		}
		return
	}
	if p.Sleeping {
		return
	}
	p.IdleTicks++
	if p.IdleTicks >= c.config.Physics.Ticks(c.config.Physics.Player.SleepTimeout) {
		p.Sleeping = true
		c.audio.Stop(port.CueWalk)
		c.play(port.CueSnore)
	}
}

// Throw launches a bottle in the facing direction.
// It returns false while on cooldown or without bottles.
func (c *PlayerController) Throw(w *world.World) bool {
	e := w.Player
	p := e.Player
	if !p.CanThrow || p.Bottles.Empty() {
		return false
	}
	tc := c.config.Physics.Throw

	w.Add(c.factory.NewThrowable(e.X+tc.OffsetX, e.Y+tc.OffsetY, p.Direction()))
	v := p.Bottles.Sub(tc.Cost)
	w.HUD.Bottles = v
	c.screen.OnBottlesChanged(v)

	p.CanThrow = false
	p.ThrowCooldown = c.config.Physics.Ticks(tc.Cooldown)
	c.play(port.CueThrow)
	return true
}

func (c *PlayerController) play(cue port.Cue) {
	c.audio.Play(cue, c.config.Physics.Audio.Volume(string(cue)))
}
