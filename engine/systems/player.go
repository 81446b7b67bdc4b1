package systems

import (
	"github.com/1siamBot/shmup-engine/engine/core"
)

const (
	PlayerSpeed    = 260.0 // world units per second
	PlayerHalfW    = 14.0
	PlayerHalfH    = 11.0
	PlayerHealth   = 3
	PlayerFireRate = 0.18 // seconds between volleys
	PlayerInvuln   = 1.5  // seconds of invincibility after a hit
	PlayerFlash    = 0.2
	RespawnDelay   = 1.2

	MaxWeaponLevel = 3
)

// Controls is the player's input snapshot for the current step, set by
// the host once per tick before the simulation advances.
type Controls struct {
	MoveX, MoveY float64 // -1..1 per axis
	Fire         bool
}

// PlayerControlSystem applies the control snapshot to the player entity
// and handles respawning while lives remain.
type PlayerControlSystem struct {
	Controls Controls

	respawnT float64
}

func (s *PlayerControlSystem) Priority() int { return 5 }

func (s *PlayerControlSystem) Update(w *core.World, dt float64) {
	p := w.Registry.First(core.RolePlayer)
	if p == nil {
		if w.GameOver {
			return
		}
		if w.Lives <= 0 {
			w.GameOver = true
			w.Events.Emit(core.Event{Type: core.EvtGameOver, Tick: w.TickCount})
			return
		}
		s.respawnT -= dt
		if s.respawnT <= 0 {
			SpawnPlayer(w)
			s.respawnT = RespawnDelay
		}
		return
	}
	s.respawnT = RespawnDelay

	p.VX = s.Controls.MoveX * PlayerSpeed
	p.VY = s.Controls.MoveY * PlayerSpeed

	// Keep the ship on screen. Clamping here, before integration, pairs
	// with the out-of-bounds hook as a backstop.
	clampPlayer(p, w.Width, w.Height)
}

func clampPlayer(p *core.Entity, worldW, worldH float64) {
	if p.X < p.HalfW {
		p.X = p.HalfW
	} else if p.X > worldW-p.HalfW {
		p.X = worldW - p.HalfW
	}
	if p.Y < p.HalfH {
		p.Y = p.HalfH
	} else if p.Y > worldH-p.HalfH {
		p.Y = worldH - p.HalfH
	}
}

// SpawnPlayer queues a fresh player ship at the bottom center.
func SpawnPlayer(w *core.World) *core.Entity {
	p := &core.Entity{
		X:           w.Width / 2,
		Y:           w.Height - 4*PlayerHalfH,
		HalfW:       PlayerHalfW,
		HalfH:       PlayerHalfH,
		Role:        core.RolePlayer,
		Health:      PlayerHealth,
		WeaponLevel: 1,
		FireRate:    PlayerFireRate,
		InvulnT:     PlayerInvuln,
		Life:        -1,
	}
	p.OnCollision = func(self, other *core.Entity) {
		switch other.Role {
		case core.RoleEnemy, core.RoleEnemyBullet:
			hurtPlayer(w, self, other.Damage)
		}
	}
	p.OnOutOfBounds = func(self *core.Entity) {
		clampPlayer(self, w.Width, w.Height)
	}
	w.Events.Emit(core.Event{Type: core.EvtPlayerSpawned, Tick: w.TickCount})
	return w.Registry.Spawn(p)
}

func hurtPlayer(w *core.World, p *core.Entity, dmg int) {
	if p.InvulnT > 0 {
		return
	}
	if dmg < 1 {
		dmg = 1
	}
	p.Health -= dmg
	p.InvulnT = PlayerInvuln
	p.FlashT = PlayerFlash
	// Taking a hit costs a weapon level, down to the base gun.
	if p.WeaponLevel > 1 {
		p.WeaponLevel--
	}
	w.Events.Emit(core.Event{Type: core.EvtPlayerHit, Tick: w.TickCount})
	if p.Health <= 0 {
		p.Health = 0
		p.Destroy()
		w.Lives--
		w.Events.Emit(core.Event{Type: core.EvtPlayerDied, Tick: w.TickCount})
	}
}
