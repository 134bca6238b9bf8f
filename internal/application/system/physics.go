package system

import (
	"math/rand"

	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// PhysicsSystem integrates motion for every moving entity once per tick
type PhysicsSystem struct {
	config *config.GameConfig
	rng    *rand.Rand
	screen port.Screen
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig, rng *rand.Rand, screen port.Screen) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		rng:    rng,
		screen: screen,
	}
}

// Update advances the player, throwables and enemies by one tick
func (s *PhysicsSystem) Update(w *world.World) {
	if w.Player != nil {
		s.updatePlayer(w)
	}
	s.updateThrowables(w)
	s.updateEnemies(w)
}

// DriftClouds moves every cloud one tick
func (s *PhysicsSystem) DriftClouds(w *world.World) {
	for _, c := range w.Clouds {
		s.DriftStep(c)
	}
}

func (s *PhysicsSystem) updatePlayer(w *world.World) {
	e := w.Player
	p := e.Player
	switch {
	case p.DeathFall:
		if !e.Visible {
			return
		}
		if s.DeathFall(e) {
			e.Visible = false
			w.GameOver = true
			s.screen.OnGameOver()
		}
	case p.Dying:
		// dead clip plays in place; the fall starts when it ends
		if e.Anim == nil || e.Anim.Finished {
			p.DeathFall = true
			p.FallSpeed = s.config.Physics.Player.DeathFallVelocity
		}
	case e.Physics.Falling:
		s.IntroFall(e)
	default:
		s.ApplyGravity(e)
	}
}

// ApplyGravity integrates one tick of vertical motion.
// Gravity is picked from the velocity before integrating: lighter while
// rising, heavier otherwise. Reaching the ground line outside the intro
// drop snaps to it and resets velocity and jump count.
func (s *PhysicsSystem) ApplyGravity(e *entity.Entity) {
	ph := e.Physics
	if ph == nil {
		return
	}
	pm := s.config.Physics.Player

	gravity := pm.FallGravity
	if ph.VelocityY < 0 {
		gravity = pm.RiseGravity
	}
	e.Y += ph.VelocityY
	ph.VelocityY += gravity

	if !ph.Falling && e.Y >= ph.GroundY {
		e.Y = ph.GroundY
		ph.VelocityY = 0
		ph.JumpCount = 0
	}
}

// Jump applies the jump impulse if a jump is left.
// It returns false when MaxJumps jumps were already used.
func (s *PhysicsSystem) Jump(e *entity.Entity) bool {
	ph := e.Physics
	if ph == nil || ph.JumpCount >= ph.MaxJumps {
		return false
	}
	ph.VelocityY = s.config.Physics.Player.JumpVelocity
	ph.JumpCount++
	return true
}

// IsAirborne reports y above ground or any upward velocity.
// An entity standing on the ground with negative velocity counts as airborne.
func IsAirborne(e *entity.Entity) bool {
	ph := e.Physics
	if ph == nil {
		return false
	}
	return e.Y < ph.GroundY || ph.VelocityY < 0
}

// IntroFall advances the match-start drop. It returns true on the tick
// the entity lands, which also ends the drop.
func (s *PhysicsSystem) IntroFall(e *entity.Entity) bool {
	ph := e.Physics
	if ph == nil || !ph.Falling {
		return false
	}
	e.Y += ph.VelocityY
	ph.VelocityY += s.config.Physics.Player.IntroGravity
	if e.Y >= ph.GroundY {
		e.Y = ph.GroundY
		ph.VelocityY = 0
		ph.Falling = false
		return true
	}
	return false
}

// DeathFall drops a dead player off screen. It returns true once the
// fall limit is passed.
func (s *PhysicsSystem) DeathFall(e *entity.Entity) bool {
	p := e.Player
	pm := s.config.Physics.Player
	e.Y += p.FallSpeed
	p.FallSpeed += pm.DeathFallGravity
	return e.Y > pm.DeathFallLimit
}

// MoveHorizontal moves the player by its speed in dir (-1 or 1),
// clamped to [MinX, MaxX].
func (s *PhysicsSystem) MoveHorizontal(e *entity.Entity, dir float64) {
	speed := s.config.Physics.Player.Speed
	if e.Physics != nil && e.Physics.Speed > 0 {
		speed = e.Physics.Speed
	}
	x := e.X + dir*speed
	if e.Player != nil && x < e.Player.MinX {
		x = e.Player.MinX
	}
	if maxX := s.config.Physics.Player.MaxX; x > maxX {
		x = maxX
	}
	e.X = x
}

// StepThrowable moves a thrown bottle one tick. It returns false when the
// bottle has reached the projectile ground or left the world.
func (s *PhysicsSystem) StepThrowable(e *entity.Entity) bool {
	if e.Projectile == nil {
		return false
	}
	e.Projectile.Step(&e.Body)

	pc := s.config.Physics
	if e.Y > pc.Throw.GroundY {
		return false
	}
	if e.X < -e.Width || e.X > pc.Camera.WorldEnd+float64(pc.Display.ScreenWidth) {
		return false
	}
	return true
}

func (s *PhysicsSystem) updateThrowables(w *world.World) {
	for i := len(w.Throwables) - 1; i >= 0; i-- {
		t := w.Throwables[i]
		if !s.StepThrowable(t) {
			w.Remove(t)
		}
	}
}

// PatrolStep moves a chicken left by its speed after its start delay.
// A chicken fully past the left world edge reappears at its respawn x.
func (s *PhysicsSystem) PatrolStep(e *entity.Entity) {
	en := e.Enemy
	if en == nil || e.Dead {
		return
	}
	if en.StartDelay > 0 {
		en.StartDelay--
		return
	}
	e.X -= en.Speed
	if e.X+e.Width < 0 {
		e.X = en.RespawnX + s.rng.Float64()*en.RespawnJitter
	}
}

func (s *PhysicsSystem) updateEnemies(w *world.World) {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if !e.Dead {
			s.PatrolStep(e)
			continue
		}
		if e.Enemy == nil {
			w.Remove(e)
			continue
		}
		e.Enemy.RemoveTimer--
		if e.Enemy.RemoveTimer <= 0 {
			w.Remove(e)
		}
	}
}

// DriftStep moves a cloud left and wraps it to the far end of the level
func (s *PhysicsSystem) DriftStep(e *entity.Entity) {
	d := e.Drift
	if d == nil {
		return
	}
	e.X -= d.Speed
	if e.X+e.Width < 0 {
		e.X = d.WrapX + s.rng.Float64()*d.Jitter
	}
}

// BossFallStep sinks a fallen boss. It returns true once the fall limit is passed.
func (s *PhysicsSystem) BossFallStep(e *entity.Entity) bool {
	bc := s.config.Physics.Boss
	e.Y += bc.FallSpeed
	return e.Y > bc.FallLimit
}
