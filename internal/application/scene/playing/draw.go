package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/entity"
)

// Colors for rendering
var (
	colorSky       = color.RGBA{140, 200, 240, 255}
	colorMissing   = color.RGBA{255, 0, 255, 160}
	colorOverlay   = color.RGBA{0, 0, 0, 150}
	colorDefeat    = color.RGBA{100, 0, 0, 180}
	colorVictory   = color.RGBA{0, 80, 0, 160}
	colorProgress  = color.RGBA{255, 205, 40, 255}
	colorProgressB = color.RGBA{60, 60, 60, 255}
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Draw renders the match (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	if p.world == nil {
		p.drawLoading(screen)
		return
	}

	w := p.world
	camX := 0.0
	if w.Player != nil {
		camX = system.CameraOffset(w.Player.X, p.config.Physics.Camera.Padding, p.config.Physics.Camera.WorldEnd)
	}

	// back to front
	for _, group := range [][]*entity.Entity{w.Backgrounds, w.Clouds, w.Coins, w.Bottles, w.Enemies, w.Throwables} {
		for _, e := range group {
			p.drawEntity(screen, e, camX, false)
		}
	}
	if w.Player != nil {
		p.drawEntity(screen, w.Player, camX, w.Player.Player != nil && w.Player.Player.FacingLeft)
	}
	if w.Boss != nil {
		p.drawEntity(screen, w.Boss, camX, false)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StateLoading:
		p.drawLoading(screen)
	case state.StateVictory:
		p.drawOverlay(screen, colorVictory, "YOU WON!", "")
	case state.StateDefeat:
		p.drawOverlay(screen, colorDefeat, "GAME OVER", "")
	case state.StateIdle:
		title := "GAME OVER"
		if w.Boss != nil && w.Boss.Boss != nil && w.Boss.Boss.VictoryReported {
			title = "YOU WON!"
		}
		p.drawOverlay(screen, colorOverlay, title, "Press ENTER or SPACE to play again")
	}

	if p.audio.Muted() {
		drawText(screen, "MUTED (M)", float64(p.screenW()-8), 8, text.AlignEnd)
	}
}

// drawEntity draws e scaled to its body, translated by the camera
func (p *Playing) drawEntity(screen *ebiten.Image, e *entity.Entity, camX float64, flip bool) {
	if !e.Visible {
		return
	}
	x := e.X + camX
	if x+e.Width < 0 || x > float64(p.screenW()) {
		return
	}

	img := p.sprites.Image(e.Sprite)
	if img == nil {
		ebitenutil.DrawRect(screen, x, e.Y, e.Width, e.Height, colorMissing)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.Width/float64(b.Dx()), e.Height/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(e.Width, 0)
	}
	op.GeoM.Translate(x, e.Y)
	screen.DrawImage(img, op)
}

// drawHUD draws the status bars in screen space
func (p *Playing) drawHUD(screen *ebiten.Image) {
	w := p.world
	if w.Player == nil || w.Boss == nil {
		return
	}
	bossAlive := w.Boss.Boss != nil && w.Boss.Boss.Alive()
	for _, bar := range p.hud.Visible(w.Player.X, w.Boss.X, float64(p.screenW()), bossAlive) {
		img := p.sprites.Image(bar.Sprite())
		if img == nil {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.hud.Width/float64(b.Dx()), p.hud.Height/float64(b.Dy()))
		op.GeoM.Translate(bar.X, bar.Y)
		screen.DrawImage(img, op)
	}
}

func (p *Playing) drawLoading(screen *ebiten.Image) {
	sw, sh := float64(p.screenW()), float64(p.screenH())
	barW, barH := sw/2, 12.0
	x, y := (sw-barW)/2, sh/2

	ebitenutil.DrawRect(screen, x, y, barW, barH, colorProgressB)
	ebitenutil.DrawRect(screen, x, y, barW*p.sprites.Progress(), barH, colorProgress)

	msg := fmt.Sprintf("Loading %d%%", int(p.sprites.Progress()*100))
	drawText(screen, msg, sw/2, y-20, text.AlignCenter)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, title, hint string) {
	sw, sh := float64(p.screenW()), float64(p.screenH())
	ebitenutil.DrawRect(screen, 0, 0, sw, sh, c)

	drawText(screen, title, sw/2, sh/2-20, text.AlignCenter)
	if hint != "" {
		drawText(screen, hint, sw/2, sh/2+10, text.AlignCenter)
	}
}

func drawText(screen *ebiten.Image, msg string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = align
	text.Draw(screen, msg, face, op)
}

func (p *Playing) screenW() int { return p.config.Physics.Display.ScreenWidth }
func (p *Playing) screenH() int { return p.config.Physics.Display.ScreenHeight }
