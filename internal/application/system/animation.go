package system

import (
	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
)

// AnimationSystem picks each entity's clip and advances every animator in
// a single pass per tick. Frames whose sprite is not ready are skipped and
// the previous sprite stays on screen.
type AnimationSystem struct {
	sprites port.Sprites
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(sprites port.Sprites) *AnimationSystem {
	return &AnimationSystem{sprites: sprites}
}

// Update selects clips and advances all animators
func (s *AnimationSystem) Update(w *world.World) {
	if w.Player != nil && w.Player.Player != nil {
		s.switchClip(w.Player, PlayerClip(w.Player))
	}
	if w.Boss != nil && w.Boss.Boss != nil {
		s.selectBossClip(w.Boss)
	}
	for _, e := range w.Enemies {
		if e.Dead {
			s.switchClip(e, entity.AnimDead)
		}
	}

	for _, e := range w.Animated() {
		if frame, ok := e.Anim.Tick(s.sprites.Ready); ok {
			e.Sprite = frame
		}
	}
}

// PlayerClip returns the clip the player should show.
// Priority: dead > hurt > sleep > walk/jump/idle.
func PlayerClip(e *entity.Entity) entity.AnimState {
	p := e.Player
	switch {
	case e.Dead || p.Dying:
		return entity.AnimDead
	case p.Hurt:
		return entity.AnimHurt
	case p.Sleeping:
		return entity.AnimSleep
	case p.Main == entity.AnimNone:
		return entity.AnimIdle
	default:
		return p.Main
	}
}

func (s *AnimationSystem) selectBossClip(e *entity.Entity) {
	if e.Anim == nil {
		return
	}
	switch e.Boss.Phase {
	case entity.BossDormant:
		e.Anim.Paused = false
		s.switchClip(e, entity.AnimAlert)
	case entity.BossAlerting:
		// frozen on the last alert frame until the chase starts
		e.Anim.Paused = true
	case entity.BossWalking:
		e.Anim.Paused = false
		s.switchClip(e, entity.AnimWalk)
	default:
		e.Anim.Paused = false
		s.switchClip(e, entity.AnimDead)
	}
}

// switchClip changes clip; the first frame shows on this tick's advance
func (s *AnimationSystem) switchClip(e *entity.Entity, state entity.AnimState) {
	if e.Anim == nil || e.Anim.State == state {
		return
	}
	// a dead entity never leaves its dead clip
	if e.Anim.State == entity.AnimDead {
		return
	}
	e.Anim.Play(state)
}
