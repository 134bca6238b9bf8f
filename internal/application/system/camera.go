package system

// CameraOffset returns the horizontal draw translation for a player at playerX.
// The result stays within [-(worldEnd - padding), 0] so the view never
// scrolls past either end of the level.
func CameraOffset(playerX, padding, worldEnd float64) float64 {
	offset := -playerX + padding
	if offset > 0 {
		offset = 0
	}
	if lower := -(worldEnd - padding); offset < lower {
		offset = lower
	}
	return offset
}
