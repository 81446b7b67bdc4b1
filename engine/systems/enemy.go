package systems

import (
	"math"
	"math/rand"

	"github.com/1siamBot/shmup-engine/engine/core"
)

const (
	EnemyHalfW  = 16.0
	EnemyHalfH  = 12.0
	EnemyHealth = 2
	EnemyDamage = 1
	EnemyPoints = 100

	FormationCols    = 8
	FormationRows    = 3
	FormationSpacing = 56.0
	FormationTopY    = 70.0

	SwayAmplitude = 28.0
	SwayFreq      = 1.1 // radians per second
	DescentSpeed  = 6.0 // per wave: DescentSpeed * wave

	WaveDelay = 2.0 // seconds between clearing a wave and the next spawn
)

// FormationSystem drives the enemy formation: horizontal sway around each
// enemy's home column, slow descent, and wave progression when the field
// is cleared. Runs before movement so it only sets velocities; movement
// does the integrating.
type FormationSystem struct {
	swayT  float64
	spawnT float64
}

func (s *FormationSystem) Priority() int { return 3 }

func (s *FormationSystem) Update(w *core.World, dt float64) {
	if w.GameOver {
		return
	}
	s.swayT += dt

	alive := 0
	for _, e := range w.Registry.Entities() {
		if !e.Active || e.Role != core.RoleEnemy {
			continue
		}
		alive++
		// Steer toward the swayed home column; the spring keeps enemies
		// in formation after knockback or spawn drift.
		targetX := e.HomeX + SwayAmplitude*math.Sin(s.swayT*SwayFreq+e.SwayPhase)
		e.VX = (targetX - e.X) * 4
		e.VY = DescentSpeed * float64(w.Wave)
	}

	if alive > 0 {
		s.spawnT = WaveDelay
		return
	}
	if w.Wave > 0 && s.spawnT == WaveDelay {
		w.Events.Emit(core.Event{Type: core.EvtWaveCleared, Tick: w.TickCount, Payload: w.Wave})
	}
	s.spawnT -= dt
	if s.spawnT <= 0 {
		w.Wave++
		SpawnWave(w, w.Wave)
		s.spawnT = WaveDelay
	}
}

// SpawnWave queues a full formation for the given wave number.
func SpawnWave(w *core.World, wave int) {
	startX := (w.Width - float64(FormationCols-1)*FormationSpacing) / 2
	hp := EnemyHealth + wave/3
	for row := 0; row < FormationRows; row++ {
		for col := 0; col < FormationCols; col++ {
			homeX := startX + float64(col)*FormationSpacing
			y := FormationTopY + float64(row)*FormationSpacing*0.75
			e := SpawnEnemy(w, homeX, y, hp)
			e.SwayPhase = float64(row) * 0.6
		}
	}
	w.Events.Emit(core.Event{Type: core.EvtWaveSpawned, Tick: w.TickCount, Payload: wave})
}

// SpawnEnemy queues one formation enemy.
func SpawnEnemy(w *core.World, homeX, y float64, hp int) *core.Entity {
	e := &core.Entity{
		X:        homeX,
		Y:        y,
		HalfW:    EnemyHalfW,
		HalfH:    EnemyHalfH,
		Role:     core.RoleEnemy,
		Health:   hp,
		Damage:   EnemyDamage,
		Points:   EnemyPoints,
		FireRate: EnemyFireRate,
		FireCD:   rand.Float64() * EnemyFireRate,
		HomeX:    homeX,
		Life:     -1,
	}
	e.OnCollision = func(self, other *core.Entity) {
		switch other.Role {
		case core.RolePlayerBullet:
			hurtEnemy(w, self, other.Damage)
		case core.RolePlayer:
			// Ramming destroys the enemy outright; the player's own hook
			// handles the damage it takes.
			hurtEnemy(w, self, self.Health)
		}
	}
	e.OnOutOfBounds = func(self *core.Entity) {
		// Descended past the bottom: gone for good, no points.
		self.Destroy()
	}
	return w.Registry.Spawn(e)
}

func hurtEnemy(w *core.World, e *core.Entity, dmg int) {
	if dmg < 1 {
		dmg = 1
	}
	e.Health -= dmg
	e.FlashT = 0.1
	if e.Health > 0 {
		return
	}
	e.Health = 0
	e.Destroy()
	w.Score += e.Points
	w.Events.Emit(core.Event{Type: core.EvtEnemyDestroyed, Tick: w.TickCount, Payload: e.X})
	if rand.Float64() < PickupDropChance {
		// Queued, so it joins the world at the next update phase, never
		// mid-collision-pass.
		SpawnPickup(w, e.X, e.Y)
	}
}
