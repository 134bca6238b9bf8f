package entity

// BossPhase is the endboss activation state
type BossPhase int

const (
	BossDormant BossPhase = iota
	BossAlerting
	BossWalking
	BossDying
	BossFallen
)

// String returns the string representation of the boss phase
func (p BossPhase) String() string {
	switch p {
	case BossDormant:
		return "dormant"
	case BossAlerting:
		return "alerting"
	case BossWalking:
		return "walking"
	case BossDying:
		return "dying"
	case BossFallen:
		return "fallen"
	default:
		return "unknown"
	}
}

// Boss is the component carried by the endboss
type Boss struct {
	Phase      BossPhase
	Hits       int
	LethalHits int

	AlertTimer int // ticks until alerting becomes walking
	WalkTimer  int // ticks until the next chase step

	// VictoryReported is set once the fall has crossed its limit
	VictoryReported bool
}

// NewBossState creates a dormant boss that dies after lethalHits hits
func NewBossState(lethalHits int) *Boss {
	return &Boss{Phase: BossDormant, LethalHits: lethalHits}
}

// Advance moves the boss to a later phase. Going back or staying put is
// refused and returns false.
func (b *Boss) Advance(to BossPhase) bool {
	if to <= b.Phase {
		return false
	}
	b.Phase = to
	return true
}

// Activated returns true once the boss has left the dormant phase
func (b *Boss) Activated() bool {
	return b.Phase != BossDormant
}

// Alive returns true while the boss can still take hits
func (b *Boss) Alive() bool {
	return b.Phase < BossDying
}

// Hit counts one hit. It returns true if this hit was lethal.
// Hits on a dying or fallen boss are ignored.
func (b *Boss) Hit() bool {
	if !b.Alive() {
		return false
	}
	b.Hits++
	if b.Hits >= b.LethalHits {
		b.Phase = BossDying
		return true
	}
	return false
}

// HealthPercent returns the remaining health as 0-100
func (b *Boss) HealthPercent() int {
	if b.LethalHits <= 0 {
		return 0
	}
	left := b.LethalHits - b.Hits
	if left < 0 {
		left = 0
	}
	return left * 100 / b.LethalHits
}
