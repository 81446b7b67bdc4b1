package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State tracks keyboard state per frame. Movement axes are resolved from
// WASD/arrows; action keys expose both held and edge-triggered forms.
type State struct {
	MoveX, MoveY float64 // -1..1 per axis

	Fire        bool
	FireJust    bool
	PauseJust   bool
	ConfirmJust bool
	QuitJust    bool
	DebugJust   bool
}

func NewState() *State {
	return &State{}
}

// Update should be called once per frame, before the simulation tick.
func (s *State) Update() {
	s.MoveX = 0
	s.MoveY = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.MoveY += 1
	}

	s.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	s.FireJust = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.PauseJust = inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	s.ConfirmJust = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	s.QuitJust = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	s.DebugJust = inpututil.IsKeyJustPressed(ebiten.KeyF1)
}
