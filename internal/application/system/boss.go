package system

import (
	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// BossSystem drives the endboss after activation: alert countdown, chase,
// death clip and the fall that ends the match.
type BossSystem struct {
	config  *config.GameConfig
	physics *PhysicsSystem
	screen  port.Screen
}

// NewBossSystem creates a new boss system
func NewBossSystem(cfg *config.GameConfig, physics *PhysicsSystem, screen port.Screen) *BossSystem {
	return &BossSystem{
		config:  cfg,
		physics: physics,
		screen:  screen,
	}
}

// Update advances the boss one tick
func (s *BossSystem) Update(w *world.World) {
	boss := w.Boss
	if boss == nil || boss.Boss == nil {
		return
	}
	b := boss.Boss
	bc := s.config.Physics.Boss

	switch b.Phase {
	case entity.BossAlerting:
		if w.GameOver {
			return
		}
		b.AlertTimer--
		if b.AlertTimer <= 0 {
			b.Advance(entity.BossWalking)
			b.WalkTimer = s.config.Physics.Ticks(bc.WalkInterval)
		}

	case entity.BossWalking:
		if w.GameOver || w.Player == nil {
			return
		}
		b.WalkTimer--
		if b.WalkTimer > 0 {
			return
		}
		b.WalkTimer = s.config.Physics.Ticks(bc.WalkInterval)
		boss.X = stepToward(boss.X, w.Player.X, bc.WalkStep)

	case entity.BossDying:
		// wait for the dead clip selected by the animation pass
		if boss.Anim != nil && !(boss.Anim.State == entity.AnimDead && boss.Anim.Finished) {
			return
		}
		b.Advance(entity.BossFallen)
		w.GameOver = true

	case entity.BossFallen:
		if b.VictoryReported {
			return
		}
		if s.physics.BossFallStep(boss) {
			b.VictoryReported = true
			boss.Visible = false
			s.screen.OnVictory()
		}
	}
}

// stepToward moves x a full step toward target. Within one step it
// oscillates around target rather than landing on it.
func stepToward(x, target, step float64) float64 {
	switch {
	case x < target:
		return x + step
	case x > target:
		return x - step
	default:
		return x
	}
}
