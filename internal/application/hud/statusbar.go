package hud

import "fmt"

// Bar names a status bar
type Bar string

const (
	BarHealth  Bar = "health"
	BarCoin    Bar = "coin"
	BarBottle  Bar = "bottle"
	BarEndboss Bar = "endboss"
)

// Bars lists the bars in draw order
var Bars = []Bar{BarHealth, BarCoin, BarBottle, BarEndboss}

// Levels are the six displayable fill levels
var Levels = []int{0, 20, 40, 60, 80, 100}

// Bucket maps a percentage to its bar sprite index, floor(p/20) clamped to [0,5]
func Bucket(pct int) int {
	if pct <= 0 {
		return 0
	}
	b := pct / 20
	if b > 5 {
		b = 5
	}
	return b
}

// Level returns the displayed fill level for a percentage
func Level(pct int) int {
	return Levels[Bucket(pct)]
}

// SpriteKey is the asset key of a bar at a fill level
func SpriteKey(bar Bar, level int) string {
	return fmt.Sprintf("statusbar/%s/%d", bar, level)
}

// SpriteKeys lists the assets of every bar and level
func SpriteKeys() []string {
	keys := make([]string, 0, len(Bars)*len(Levels))
	for _, bar := range Bars {
		for _, lv := range Levels {
			keys = append(keys, SpriteKey(bar, lv))
		}
	}
	return keys
}

// StatusBar holds the percentage shown by one bar
type StatusBar struct {
	Bar     Bar
	X, Y    float64
	Percent int
}

// Set stores a new percentage
func (s *StatusBar) Set(pct int) {
	s.Percent = pct
}

// Sprite returns the asset key for the current percentage
func (s *StatusBar) Sprite() string {
	return SpriteKey(s.Bar, Level(s.Percent))
}
