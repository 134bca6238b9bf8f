package entity

// Projectile is the ballistic state of a thrown bottle.
// SpeedY is positive upward and is subtracted from Y each tick.
type Projectile struct {
	SpeedX  float64
	SpeedY  float64
	Gravity float64

	// Spent is set once the projectile has credited a hit
	Spent bool
}

// NewThrow creates the projectile component for a throw in direction dir (±1)
func NewThrow(dir, speedX, speedY, gravity float64) *Projectile {
	return &Projectile{
		SpeedX:  dir * speedX,
		SpeedY:  speedY,
		Gravity: gravity,
	}
}

// Step integrates one tick of motion on the given body
func (p *Projectile) Step(b *Body) {
	b.Y -= p.SpeedY
	p.SpeedY -= p.Gravity
	b.X += p.SpeedX
}

// Consume marks the projectile as used. A second call returns false.
func (p *Projectile) Consume() bool {
	if p.Spent {
		return false
	}
	p.Spent = true
	return true
}
