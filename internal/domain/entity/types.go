package entity

// EntityID is a unique identifier for an entity (never recycled within a match)
type EntityID uint32

// Kind is the closed set of things that live in the world
type Kind int

const (
	KindPlayer Kind = iota
	KindChicken
	KindSmallChicken
	KindEndboss
	KindCoin
	KindBottle
	KindThrowable
	KindCloud
	KindBackground
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindChicken:
		return "Chicken"
	case KindSmallChicken:
		return "SmallChicken"
	case KindEndboss:
		return "Endboss"
	case KindCoin:
		return "Coin"
	case KindBottle:
		return "Bottle"
	case KindThrowable:
		return "Throwable"
	case KindCloud:
		return "Cloud"
	case KindBackground:
		return "Background"
	default:
		return "Unknown"
	}
}

// IsChickenType reports whether the kind can be stomped and deals contact damage
func (k Kind) IsChickenType() bool {
	return k == KindChicken || k == KindSmallChicken
}

// AnimState is the logical animation state an Animator plays
type AnimState int

const (
	AnimNone AnimState = iota
	AnimIdle
	AnimWalk
	AnimJump
	AnimHurt
	AnimDead
	AnimSleep
	AnimAlert
)

// String returns the config key of the animation state
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimHurt:
		return "hurt"
	case AnimDead:
		return "dead"
	case AnimSleep:
		return "sleep"
	case AnimAlert:
		return "alert"
	default:
		return "none"
	}
}

// ParseAnimState maps a config key back to an AnimState.
// Unknown keys map to AnimNone.
func ParseAnimState(s string) AnimState {
	for a := AnimIdle; a <= AnimAlert; a++ {
		if a.String() == s {
			return a
		}
	}
	return AnimNone
}

// Gauge is a resource value clamped to [0, GaugeMax]
type Gauge struct {
	value int
}

// GaugeMax is the upper bound of every gauge (health, coins, bottles)
const GaugeMax = 100

// NewGauge creates a gauge with a clamped initial value
func NewGauge(v int) Gauge {
	g := Gauge{}
	g.Set(v)
	return g
}

// Value returns the current value
func (g Gauge) Value() int { return g.value }

// Set assigns a value, clamped to [0, GaugeMax]
func (g *Gauge) Set(v int) {
	switch {
	case v < 0:
		g.value = 0
	case v > GaugeMax:
		g.value = GaugeMax
	default:
		g.value = v
	}
}

// Add increases the gauge and returns the new value
func (g *Gauge) Add(n int) int {
	g.Set(g.value + n)
	return g.value
}

// Sub decreases the gauge and returns the new value
func (g *Gauge) Sub(n int) int {
	g.Set(g.value - n)
	return g.value
}

// Empty returns true if the gauge is at zero
func (g Gauge) Empty() bool { return g.value == 0 }
