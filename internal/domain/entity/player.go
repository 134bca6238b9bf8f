package entity

// Player is the component carried by the character
type Player struct {
	Energy  Gauge
	Coins   Gauge
	Bottles Gauge

	FacingLeft bool
	MinX       float64 // leftmost x the player may walk to

	// Hurt window after taking damage (ticks remaining)
	Hurt      bool
	HurtTimer int

	// Sleep after a period without input
	Sleeping  bool
	IdleTicks int

	// Throw cooldown (ticks remaining)
	CanThrow      bool
	ThrowCooldown int

	// Previous tick's throw key state for press-edge detection
	PrevThrow bool

	// Death sequence: Dying while the dead clip plays, DeathFall afterwards
	Dying     bool
	DeathFall bool
	FallSpeed float64

	// Main is the locomotion animation chosen by the controller (idle/walk/jump)
	Main AnimState
}

// NewPlayerState creates the player component with full energy and empty pockets
func NewPlayerState(minX float64) *Player {
	return &Player{
		Energy:   NewGauge(GaugeMax),
		Coins:    NewGauge(0),
		Bottles:  NewGauge(0),
		MinX:     minX,
		CanThrow: true,
		Main:     AnimIdle,
	}
}

// Direction returns -1 when facing left, 1 otherwise
func (p *Player) Direction() float64 {
	if p.FacingLeft {
		return -1
	}
	return 1
}

// EnterHurt starts the hurt window. Re-entering while hurt is a no-op
// and returns false.
func (p *Player) EnterHurt(ticks int) bool {
	if p.Hurt {
		return false
	}
	p.Hurt = true
	p.HurtTimer = ticks
	return true
}

// WakeUp clears sleep and restarts the inactivity counter.
// It returns true if the player was sleeping.
func (p *Player) WakeUp() bool {
	p.IdleTicks = 0
	if !p.Sleeping {
		return false
	}
	p.Sleeping = false
	return true
}
