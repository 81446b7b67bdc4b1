package systems

import (
	"math"
	"math/rand"

	"github.com/1siamBot/shmup-engine/engine/core"
)

const (
	BulletHalfW = 2.0
	BulletHalfH = 5.0
	BulletSpeed = 520.0
	BulletLife  = 2.0

	EnemyBulletHalf  = 3.0
	EnemyBulletSpeed = 190.0
	EnemyFireRate    = 2.4  // mean seconds between shots per enemy
	EnemyFireChance  = 0.55 // chance an expired cooldown actually fires

	TripleShotSpread = 0.22 // radians off vertical for the side guns
)

// WeaponSystem ticks fire cooldowns and spawns bullets: the player's
// volley per its weapon level, and enemy shots aimed at the player.
type WeaponSystem struct {
	Firing bool // player trigger held this step, set by the host
}

func (s *WeaponSystem) Priority() int { return 7 }

func (s *WeaponSystem) Update(w *core.World, dt float64) {
	player := w.Registry.First(core.RolePlayer)

	for _, e := range w.Registry.Entities() {
		if !e.Active {
			continue
		}
		if e.FireCD > 0 {
			e.FireCD -= dt
		}
		switch e.Role {
		case core.RolePlayer:
			if s.Firing && e.FireCD <= 0 {
				firePlayerVolley(w, e)
				e.FireCD = e.FireRate
			}
		case core.RoleEnemy:
			if e.FireCD <= 0 {
				if player != nil && rand.Float64() < EnemyFireChance {
					fireEnemyBullet(w, e, player)
				}
				// Jittered so the formation doesn't fire in lockstep.
				e.FireCD = e.FireRate * (0.5 + rand.Float64())
			}
		}
	}
}

// firePlayerVolley spawns one bullet per gun for the current weapon
// level: 1 = single, 2 = twin, 3 = twin plus angled side shots with
// piercing rounds.
func firePlayerVolley(w *core.World, p *core.Entity) {
	switch p.WeaponLevel {
	case 1:
		SpawnPlayerBullet(w, p.X, p.Y-p.HalfH, 0, 0)
	case 2:
		SpawnPlayerBullet(w, p.X-p.HalfW/2, p.Y-p.HalfH, 0, 0)
		SpawnPlayerBullet(w, p.X+p.HalfW/2, p.Y-p.HalfH, 0, 0)
	default:
		SpawnPlayerBullet(w, p.X-p.HalfW/2, p.Y-p.HalfH, 0, 1)
		SpawnPlayerBullet(w, p.X+p.HalfW/2, p.Y-p.HalfH, 0, 1)
		SpawnPlayerBullet(w, p.X-p.HalfW, p.Y, -TripleShotSpread, 0)
		SpawnPlayerBullet(w, p.X+p.HalfW, p.Y, TripleShotSpread, 0)
	}
	w.Events.Emit(core.Event{Type: core.EvtBulletFired, Tick: w.TickCount, Payload: p.X})
}

// SpawnPlayerBullet queues a player bullet travelling up at the given
// angle off vertical. pierce is how many extra hits it survives.
func SpawnPlayerBullet(w *core.World, x, y, angle float64, pierce int) *core.Entity {
	b := &core.Entity{
		X:      x,
		Y:      y,
		VX:     BulletSpeed * math.Sin(angle),
		VY:     -BulletSpeed * math.Cos(angle),
		HalfW:  BulletHalfW,
		HalfH:  BulletHalfH,
		Role:   core.RolePlayerBullet,
		Damage: 1,
		Pierce: pierce,
		Life:   BulletLife,
	}
	b.OnCollision = func(self, other *core.Entity) {
		if other.Role != core.RoleEnemy {
			return
		}
		if self.Pierce > 0 {
			self.Pierce--
			return
		}
		self.Destroy()
	}
	b.OnOutOfBounds = func(self *core.Entity) {
		self.Destroy()
	}
	return w.Registry.Spawn(b)
}

// fireEnemyBullet queues a shot aimed at the player's current position.
func fireEnemyBullet(w *core.World, e, player *core.Entity) *core.Entity {
	dx := player.X - e.X
	dy := player.Y - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	b := &core.Entity{
		X:      e.X,
		Y:      e.Y + e.HalfH,
		VX:     EnemyBulletSpeed * dx / dist,
		VY:     EnemyBulletSpeed * dy / dist,
		HalfW:  EnemyBulletHalf,
		HalfH:  EnemyBulletHalf,
		Role:   core.RoleEnemyBullet,
		Damage: 1,
		Life:   4.0,
	}
	b.OnCollision = func(self, other *core.Entity) {
		if other.Role == core.RolePlayer {
			self.Destroy()
		}
	}
	b.OnOutOfBounds = func(self *core.Entity) {
		self.Destroy()
	}
	w.Events.Emit(core.Event{Type: core.EvtEnemyFired, Tick: w.TickCount, Payload: e.X})
	return w.Registry.Spawn(b)
}
