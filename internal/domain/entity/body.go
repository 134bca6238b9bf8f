package entity

// Body is the drawn sprite rectangle of an entity in world coordinates.
// Y grows downward (canvas convention): "up" subtracts.
type Body struct {
	X, Y          float64
	Width, Height float64
}

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two rectangles intersect.
// Intervals are open: touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// HitboxRect is a collision rectangle relative to the body origin
type HitboxRect struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// WorldRect returns the hitbox in world coordinates for a body at (bodyX, bodyY).
// Zero width or height fall back to the body size, like an absent hitbox.
func (hr HitboxRect) WorldRect(b Body) Rect {
	w := hr.Width
	if w == 0 {
		w = b.Width
	}
	h := hr.Height
	if h == 0 {
		h = b.Height
	}
	return Rect{X: b.X + hr.OffsetX, Y: b.Y + hr.OffsetY, Width: w, Height: h}
}

// Bounds returns the full sprite rectangle
func (b Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Right returns the right edge of the sprite
func (b Body) Right() float64 { return b.X + b.Width }

// Physics is the gravity/jump component.
// VelocityY is in px/tick, positive is downward.
type Physics struct {
	VelocityY float64
	Speed     float64
	GroundY   float64
	JumpCount int
	MaxJumps  int

	// Falling is the intro drop at match start. Landing snaps are suppressed
	// while it is set; IntroFall clears it.
	Falling bool
}
