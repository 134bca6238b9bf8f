package system

import (
	"math"

	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// CombatSystem turns overlaps into game events: stomps, contact damage,
// boss contact, boss activation, bottle hits and pickups.
// It runs on the interaction pass, not every tick.
type CombatSystem struct {
	config *config.GameConfig
	audio  port.Audio
	screen port.Screen
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, audio port.Audio, screen port.Screen) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		audio:  audio,
		screen: screen,
	}
}

// Resolve runs one interaction pass over the world.
// Nothing happens after game over, before the world is populated or once
// the player is dead.
func (s *CombatSystem) Resolve(w *world.World) {
	if w.GameOver || !w.Ready() {
		return
	}
	if w.Player.Dead || w.Player.Player == nil {
		return
	}

	s.resolveEnemies(w)
	if w.Player.Dead {
		return
	}
	s.activateBoss(w)
	s.resolveThrowables(w)
	s.resolvePickups(w)
}

func (s *CombatSystem) resolveEnemies(w *world.World) {
	player := w.Player
	p := player.Player

	collided := false
	for _, enemy := range w.Enemies {
		if enemy.Dead || !IsColliding(player, enemy) {
			continue
		}
		collided = true
		s.wake(player)

		// stomp wins over frontal damage for the same pair
		if s.isStomp(player, enemy) {
			s.stomp(player, enemy)
			continue
		}
		s.contactDamage(w, enemy)
		if player.Dead {
			return
		}
	}

	if boss := w.Boss; boss.Boss != nil && boss.Boss.Alive() && IsColliding(player, boss) {
		s.wake(player)
		s.killPlayer(w)
		return
	}

	// Markers are cleared for every enemy at once, only after the player
	// touches nothing and the hurt window is over.
	if !collided && !p.Hurt {
		for _, enemy := range w.Enemies {
			if enemy.Enemy != nil {
				enemy.Enemy.HitMarked = false
			}
		}
	}
}

// isStomp reports a player descending onto a chicken: hitbox center above
// the enemy's hitbox top and positive vertical velocity.
func (s *CombatSystem) isStomp(player, enemy *entity.Entity) bool {
	if !enemy.Kind.IsChickenType() || player.Physics == nil {
		return false
	}
	return EffectiveHitbox(player).CenterY() < EffectiveHitbox(enemy).Y && player.Physics.VelocityY > 0
}

func (s *CombatSystem) stomp(player, enemy *entity.Entity) {
	if !enemy.Kill(s.config.Physics.Ticks(s.config.Physics.Combat.EnemyRemoveDelay)) {
		return
	}
	player.Physics.VelocityY = s.config.Physics.Player.StompBounce
	s.play(port.CueStomp)
}

func (s *CombatSystem) contactDamage(w *world.World, enemy *entity.Entity) {
	p := w.Player.Player
	if !enemy.Kind.IsChickenType() || enemy.Enemy == nil {
		return
	}
	if p.Hurt || p.Energy.Empty() || enemy.Enemy.HitMarked {
		return
	}

	energy := p.Energy.Sub(s.config.Physics.Combat.ContactDamage)
	w.HUD.Health = energy
	s.screen.OnHealthChanged(energy)
	enemy.Enemy.HitMarked = true

	if energy == 0 {
		s.killPlayer(w)
		return
	}
	p.EnterHurt(s.config.Physics.Ticks(s.config.Physics.Player.HurtWindow))
	s.play(port.CueHurt)
}

// killPlayer starts the death sequence. Repeat calls are no-ops.
func (s *CombatSystem) killPlayer(w *world.World) {
	player := w.Player
	p := player.Player
	if p.Dying || player.Dead {
		return
	}
	p.Energy.Set(0)
	w.HUD.Health = 0
	s.screen.OnHealthChanged(0)

	player.Dead = true
	p.Dying = true
	p.Hurt = false
	s.audio.Stop(port.CueWalk)
	s.audio.Stop(port.CueSnore)
	s.play(port.CueDead)
}

func (s *CombatSystem) wake(player *entity.Entity) {
	if player.Player.WakeUp() {
		s.audio.Stop(port.CueSnore)
	}
}

// activateBoss moves a dormant boss to alerting once the player is in range
func (s *CombatSystem) activateBoss(w *world.World) {
	b := w.Boss.Boss
	if b == nil || b.Activated() {
		return
	}
	bc := s.config.Physics.Boss
	if math.Abs(w.Boss.X-w.Player.X) >= bc.ActivationRange {
		return
	}
	b.Advance(entity.BossAlerting)
	b.AlertTimer = s.config.Physics.Ticks(bc.AlertDelay)
}

// resolveThrowables credits at most one boss hit per bottle and removes it
func (s *CombatSystem) resolveThrowables(w *world.World) {
	boss := w.Boss
	for i := len(w.Throwables) - 1; i >= 0; i-- {
		t := w.Throwables[i]
		if boss.Boss == nil || !boss.Boss.Alive() {
			return
		}
		if t.Projectile == nil || !IsColliding(t, boss) || !t.Projectile.Consume() {
			continue
		}
		w.Remove(t)

		lethal := boss.Boss.Hit()
		pct := boss.Boss.HealthPercent()
		w.HUD.Boss = pct
		s.screen.OnBossHealthChanged(pct)
		if lethal {
			s.play(port.CueCluck)
		}
	}
}

func (s *CombatSystem) resolvePickups(w *world.World) {
	player := w.Player
	p := player.Player
	amount := s.config.Physics.Combat.PickupAmount

	for i := len(w.Coins) - 1; i >= 0; i-- {
		coin := w.Coins[i]
		if !IsColliding(player, coin) {
			continue
		}
		w.Remove(coin)
		v := p.Coins.Add(amount)
		w.HUD.Coins = v
		s.screen.OnCoinsChanged(v)
		s.play(port.CueCoin)
	}

	for i := len(w.Bottles) - 1; i >= 0; i-- {
		bottle := w.Bottles[i]
		if !IsColliding(player, bottle) {
			continue
		}
		w.Remove(bottle)
		v := p.Bottles.Add(amount)
		w.HUD.Bottles = v
		s.screen.OnBottlesChanged(v)
		s.play(port.CueBottle)
	}
}

func (s *CombatSystem) play(cue port.Cue) {
	s.audio.Play(cue, s.config.Physics.Audio.Volume(string(cue)))
}
