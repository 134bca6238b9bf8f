package entity

// Enemy is the component carried by chickens
type Enemy struct {
	Speed float64 // leftward patrol velocity (px/tick)

	// StartDelay holds the enemy in place for a few ticks after spawning
	StartDelay int

	// RespawnX is where a chicken reappears after walking off the left edge
	RespawnX      float64
	RespawnJitter float64

	// RemoveTimer counts down after death; the enemy is removed at zero
	RemoveTimer int

	// HitMarked records that this enemy already damaged the player during
	// the current overlap episode
	HitMarked bool
}

// Kill marks an entity dead and arms its removal grace period.
// Killing a dead entity is a no-op and returns false.
func (e *Entity) Kill(removeAfter int) bool {
	if e.Dead {
		return false
	}
	e.Dead = true
	if e.Enemy != nil {
		e.Enemy.RemoveTimer = removeAfter
	}
	return true
}
