package assets

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

const placeholderSize = 32

var (
	colorPepe     = color.RGBA{214, 160, 90, 255}
	colorChicken  = color.RGBA{150, 100, 60, 255}
	colorBoss     = color.RGBA{130, 40, 40, 255}
	colorCoin     = color.RGBA{255, 205, 40, 255}
	colorBottle   = color.RGBA{60, 150, 70, 255}
	colorSky      = color.RGBA{140, 200, 240, 255}
	colorSand     = color.RGBA{220, 190, 130, 255}
	colorCloud    = color.RGBA{250, 250, 250, 200}
	colorBarBG    = color.RGBA{50, 50, 50, 200}
	colorHealth   = color.RGBA{90, 200, 90, 255}
	colorBossBar  = color.RGBA{220, 70, 70, 255}
	colorFallback = color.RGBA{255, 0, 255, 255}
)

// Placeholder draws a flat stand-in for a sprite key. Frames of the same
// clip get slightly different shades so animation stays visible.
func Placeholder(key string) *ebiten.Image {
	parts := strings.Split(key, "/")
	if parts[0] == "statusbar" {
		return statusBar(parts)
	}

	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(shade(baseColor(parts), frameIndex(parts)))
	return img
}

// baseColor picks the colour by the first key segment, e.g. "pepe/walk/3"
func baseColor(parts []string) color.RGBA {
	switch parts[0] {
	case "pepe":
		return colorPepe
	case "chicken", "chicken_small":
		return colorChicken
	case "boss":
		return colorBoss
	case "coin":
		return colorCoin
	case "bottle":
		return colorBottle
	case "cloud":
		return colorCloud
	case "bg":
		if len(parts) > 1 && parts[1] == "air" {
			return colorSky
		}
		return colorSand
	default:
		return colorFallback
	}
}

func frameIndex(parts []string) int {
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return n
}

func shade(c color.RGBA, i int) color.RGBA {
	d := uint8((i % 4) * 12)
	if c.R > d {
		c.R -= d
	}
	if c.G > d {
		c.G -= d
	}
	return c
}

// statusBar draws a bar filled to its level, keys look like "statusbar/health/60"
func statusBar(parts []string) *ebiten.Image {
	const w, h = 100, 10
	img := ebiten.NewImage(w, h)
	img.Fill(colorBarBG)

	if len(parts) < 3 {
		return img
	}
	level := frameIndex(parts)
	fill := w * level / 100
	if fill <= 0 {
		return img
	}

	var c color.RGBA
	switch parts[1] {
	case "coin":
		c = colorCoin
	case "bottle":
		c = colorBottle
	case "endboss":
		c = colorBossBar
	default:
		c = colorHealth
	}
	img.SubImage(image.Rect(0, 0, fill, h)).(*ebiten.Image).Fill(c)
	return img
}
