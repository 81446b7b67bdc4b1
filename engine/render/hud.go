package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/shmup-engine/engine/core"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD overlays score, lives, wave and weapon level.
func (r *Renderer) DrawHUD(screen *ebiten.Image, w *core.World) {
	drawText(screen, fmt.Sprintf("SCORE %07d", w.Score), 10, 8, color.White)
	drawText(screen, fmt.Sprintf("WAVE %d", w.Wave), float64(r.width)/2-30, 8, color.White)
	drawText(screen, fmt.Sprintf("LIVES %d", w.Lives), float64(r.width)-90, 8, color.White)

	if p := w.Registry.First(core.RolePlayer); p != nil {
		drawText(screen, fmt.Sprintf("GUN LV%d", p.WeaponLevel), 10, float64(r.height)-22,
			color.RGBA{120, 255, 120, 255})
	}
}

// DrawDebug prints frame stats in the corner, toggled with F1.
func (r *Renderer) DrawDebug(screen *ebiten.Image, w *core.World) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS %.0f TPS %.0f\ntick %d entities %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), w.TickCount, w.Registry.Len(),
	), 10, 30)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
