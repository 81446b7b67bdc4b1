package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/shmup-engine/engine/core"
)

const starCount = 90

type star struct {
	x, y  float32
	speed float32
	size  float32
}

// Renderer draws the world to the ebiten surface. It holds only
// presentation state (starfield scroll); it reads simulation state and
// never mutates it.
type Renderer struct {
	width, height int
	stars         []star
	scroll        float32
}

func NewRenderer(width, height int) *Renderer {
	r := &Renderer{width: width, height: height}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < starCount; i++ {
		r.stars = append(r.stars, star{
			x:     rng.Float32() * float32(width),
			y:     rng.Float32() * float32(height),
			speed: 0.3 + rng.Float32()*1.2,
			size:  1 + rng.Float32()*1.5,
		})
	}
	return r
}

// Draw renders one frame. Called every display frame regardless of pause
// state.
func (r *Renderer) Draw(screen *ebiten.Image, w *core.World) {
	screen.Fill(color.RGBA{8, 8, 20, 255})
	r.drawStars(screen)
	for _, e := range w.Registry.Entities() {
		if !e.Active {
			continue
		}
		r.drawEntity(screen, e, w.TickCount)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image) {
	r.scroll++
	h := float32(r.height)
	for _, s := range r.stars {
		y := s.y + r.scroll*s.speed
		y -= float32(int(y/h)) * h
		c := uint8(120 + 80*s.speed/1.5)
		vector.DrawFilledCircle(screen, s.x, y, s.size, color.RGBA{c, c, c, 255}, false)
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *core.Entity, tick uint64) {
	x := float32(e.X)
	y := float32(e.Y)
	hw := float32(e.HalfW)
	hh := float32(e.HalfH)

	switch e.Role {
	case core.RolePlayer:
		// Blink while invincible.
		if e.InvulnT > 0 && tick%8 < 4 {
			return
		}
		body := color.RGBA{90, 200, 255, 255}
		if e.FlashT > 0 {
			body = color.RGBA{255, 255, 255, 255}
		}
		vector.DrawFilledRect(screen, x-hw, y-hh/2, hw*2, hh, body, false)
		vector.DrawFilledRect(screen, x-hw/3, y-hh, hw*2/3, hh*2, body, false)
		vector.DrawFilledCircle(screen, x, y, 3, color.RGBA{255, 220, 120, 255}, false)
	case core.RoleEnemy:
		body := color.RGBA{230, 80, 90, 255}
		if e.FlashT > 0 {
			body = color.RGBA{255, 255, 255, 255}
		}
		vector.DrawFilledRect(screen, x-hw, y-hh, hw*2, hh*2, body, false)
		vector.StrokeRect(screen, x-hw, y-hh, hw*2, hh*2, 1, color.RGBA{255, 160, 170, 200}, false)
		vector.DrawFilledCircle(screen, x-hw/2, y, 2, color.RGBA{20, 20, 30, 255}, false)
		vector.DrawFilledCircle(screen, x+hw/2, y, 2, color.RGBA{20, 20, 30, 255}, false)
	case core.RolePlayerBullet:
		vector.DrawFilledRect(screen, x-hw, y-hh, hw*2, hh*2, color.RGBA{180, 255, 200, 255}, false)
	case core.RoleEnemyBullet:
		vector.DrawFilledCircle(screen, x, y, hw, color.RGBA{255, 170, 60, 255}, false)
	case core.RoleWeaponPickup:
		// Pulse as the pickup gets close to expiring.
		pulse := float32(1 + 0.2*math.Sin(float64(tick)*0.2))
		if e.Life > 0 && e.Life < 2.0 && tick%10 < 5 {
			return
		}
		vector.DrawFilledCircle(screen, x, y, hw*pulse, color.RGBA{120, 255, 120, 255}, false)
		vector.StrokeCircle(screen, x, y, hw*pulse+3, 1, color.RGBA{120, 255, 120, 120}, false)
	}
}
