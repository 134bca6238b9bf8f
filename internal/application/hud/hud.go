package hud

import "github.com/younwookim/pollo/internal/infrastructure/config"

// HUD is the status bar overlay. It implements the percentage half of
// port.Screen; the match scene wraps it to handle game over and victory.
type HUD struct {
	Health  *StatusBar
	Coin    *StatusBar
	Bottle  *StatusBar
	Endboss *StatusBar

	Width, Height float64
}

// New creates the bars at their configured positions with health and boss full
func New(cfg config.StatusBarsConfig) *HUD {
	bar := func(b Bar) *StatusBar {
		pos := cfg.Bars[string(b)]
		return &StatusBar{Bar: b, X: pos.X, Y: pos.Y}
	}
	h := &HUD{
		Health:  bar(BarHealth),
		Coin:    bar(BarCoin),
		Bottle:  bar(BarBottle),
		Endboss: bar(BarEndboss),
		Width:   cfg.Width,
		Height:  cfg.Height,
	}
	h.Health.Set(100)
	h.Endboss.Set(100)
	return h
}

func (h *HUD) OnHealthChanged(pct int)     { h.Health.Set(pct) }
func (h *HUD) OnCoinsChanged(pct int)      { h.Coin.Set(pct) }
func (h *HUD) OnBottlesChanged(pct int)    { h.Bottle.Set(pct) }
func (h *HUD) OnBossHealthChanged(pct int) { h.Endboss.Set(pct) }

// Visible returns the bars to draw. The boss bar shows only while the boss
// is alive and within one screen width ahead of the player.
func (h *HUD) Visible(playerX, bossX, screenWidth float64, bossAlive bool) []*StatusBar {
	bars := []*StatusBar{h.Health, h.Coin, h.Bottle}
	if bossAlive && playerX+screenWidth > bossX {
		bars = append(bars, h.Endboss)
	}
	return bars
}
