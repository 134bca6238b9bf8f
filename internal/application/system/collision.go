package system

import "github.com/younwookim/pollo/internal/domain/entity"

// EffectiveHitbox returns the rectangle used for collision math:
// the hitbox offset from the body, or the full sprite bounds without one.
func EffectiveHitbox(e *entity.Entity) entity.Rect {
	return e.HitRect()
}

// IsColliding reports whether two entities' hitboxes overlap.
// Touching edges do not count.
func IsColliding(a, b *entity.Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return rectsOverlap(EffectiveHitbox(a), EffectiveHitbox(b))
}

func rectsOverlap(a, b entity.Rect) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X && a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}
