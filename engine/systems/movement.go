package systems

import "github.com/1siamBot/shmup-engine/engine/core"

// MovementSystem integrates velocities, advances per-entity countdown
// timers, and applies each entity's out-of-bounds policy. Runs first so
// every later phase sees this frame's final positions.
type MovementSystem struct{}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	for _, e := range w.Registry.Entities() {
		if !e.Active {
			continue
		}
		e.X += e.VX * dt
		e.Y += e.VY * dt

		// Timers are explicit countdowns advanced here, never deferred
		// callbacks, so nothing mutates entity state outside the step.
		if e.Life > 0 {
			e.Life -= dt
			if e.Life <= 0 {
				if e.Role == core.RoleWeaponPickup {
					w.Events.Emit(core.Event{Type: core.EvtPickupExpired, Tick: w.TickCount})
				}
				e.Destroy()
				continue
			}
		}
		if e.FlashT > 0 {
			e.FlashT -= dt
			if e.FlashT < 0 {
				e.FlashT = 0
			}
		}
		if e.InvulnT > 0 {
			e.InvulnT -= dt
			if e.InvulnT < 0 {
				e.InvulnT = 0
			}
		}

		if e.OnOutOfBounds != nil && outOfBounds(e, w.Width, w.Height) {
			e.OnOutOfBounds(e)
		}
	}
}

// outOfBounds reports whether the entity's box has fully left the world
// rectangle.
func outOfBounds(e *core.Entity, worldW, worldH float64) bool {
	minX, minY, maxX, maxY := e.Bounds()
	return maxX < 0 || minX > worldW || maxY < 0 || minY > worldH
}
