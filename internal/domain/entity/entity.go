package entity

// Entity is the single record every world object uses.
// Behavior comes from the optional components; systems skip entities
// that lack the component they operate on.
type Entity struct {
	ID   EntityID
	Kind Kind
	Body

	// Hitbox is nil when collisions use the full sprite bounds
	Hitbox *HitboxRect

	// Sprite is the frame currently displayed
	Sprite  string
	Visible bool
	Dead    bool

	Physics    *Physics
	Anim       *Animator
	Player     *Player
	Enemy      *Enemy
	Boss       *Boss
	Projectile *Projectile
	Drift      *Drift
}

// HitRect returns the collision rectangle in world coordinates
func (e *Entity) HitRect() Rect {
	if e.Hitbox == nil {
		return e.Bounds()
	}
	return e.Hitbox.WorldRect(e.Body)
}

// Alive returns true if the entity has not been killed
func (e *Entity) Alive() bool {
	return !e.Dead
}

// Drift is the constant leftward motion of background clouds
type Drift struct {
	Speed  float64 // px/tick
	WrapX  float64
	Jitter float64 // random extra added to WrapX on wrap
}
