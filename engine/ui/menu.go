package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Screen is the current UI screen.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

// ScoreEntry is one row on the game-over high-score board.
type ScoreEntry struct {
	Name  string
	Score int
	Wave  int
}

// Menu draws the title, pause and game-over overlays. State transitions
// are driven by the host; Menu only presents.
type Menu struct {
	Screen     Screen
	ScreenW    int
	ScreenH    int
	Scores     []ScoreEntry
	FinalScore int
	FinalWave  int
	Tick       uint64
}

var menuFace = text.NewGoXFace(basicfont.Face7x13)

func NewMenu(screenW, screenH int) *Menu {
	return &Menu{ScreenW: screenW, ScreenH: screenH}
}

// Draw renders the overlay for the current screen, if any.
func (m *Menu) Draw(screen *ebiten.Image) {
	m.Tick++
	switch m.Screen {
	case ScreenTitle:
		m.drawDim(screen, 180)
		m.drawCentered(screen, "S T A R B L I T Z", float64(m.ScreenH)/3, color.RGBA{120, 220, 255, 255})
		if m.Tick%60 < 40 {
			m.drawCentered(screen, "PRESS ENTER TO START", float64(m.ScreenH)/2, color.White)
		}
		m.drawCentered(screen, "ARROWS/WASD MOVE  SPACE FIRE  P PAUSE", float64(m.ScreenH)/2+40,
			color.RGBA{160, 160, 180, 255})
	case ScreenPaused:
		m.drawDim(screen, 140)
		m.drawCentered(screen, "PAUSED", float64(m.ScreenH)/2-20, color.White)
		m.drawCentered(screen, "P TO RESUME  Q TO QUIT", float64(m.ScreenH)/2+10,
			color.RGBA{160, 160, 180, 255})
	case ScreenGameOver:
		m.drawDim(screen, 180)
		m.drawCentered(screen, "GAME OVER", float64(m.ScreenH)/4, color.RGBA{255, 90, 90, 255})
		m.drawCentered(screen, fmt.Sprintf("SCORE %d   WAVE %d", m.FinalScore, m.FinalWave),
			float64(m.ScreenH)/4+30, color.White)
		y := float64(m.ScreenH)/4 + 80
		m.drawCentered(screen, "- HIGH SCORES -", y, color.RGBA{120, 220, 255, 255})
		for i, s := range m.Scores {
			y += 22
			m.drawCentered(screen, fmt.Sprintf("%2d. %-8s %7d  wave %d", i+1, s.Name, s.Score, s.Wave),
				y, color.RGBA{200, 200, 210, 255})
		}
		if m.Tick%60 < 40 {
			m.drawCentered(screen, "PRESS ENTER", float64(m.ScreenH)-60, color.White)
		}
	}
}

func (m *Menu) drawDim(screen *ebiten.Image, alpha uint8) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH),
		color.RGBA{0, 0, 0, alpha}, false)
}

func (m *Menu) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	tw, _ := text.Measure(s, menuFace, 0)
	op.GeoM.Translate(float64(m.ScreenW)/2-tw/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, menuFace, op)
}
