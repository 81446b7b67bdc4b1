package systems

import "github.com/1siamBot/shmup-engine/engine/core"

const (
	PickupHalf       = 8.0
	PickupDriftSpeed = 40.0
	PickupLifetime   = 8.0 // seconds before an uncollected pickup expires
	PickupDropChance = 0.15
)

// SpawnPickup queues a weapon pickup drifting down from where an enemy
// died. Pickups are single-use: the pickup's own hook applies the
// upgrade and destroys the pickup, so the upgrade fires exactly once
// even though pickup pairs skip the resolver's dedup set.
func SpawnPickup(w *core.World, x, y float64) *core.Entity {
	p := &core.Entity{
		X:     x,
		Y:     y,
		VY:    PickupDriftSpeed,
		HalfW: PickupHalf,
		HalfH: PickupHalf,
		Role:  core.RoleWeaponPickup,
		Life:  PickupLifetime,
	}
	p.OnCollision = func(self, other *core.Entity) {
		if other.Role != core.RolePlayer || !self.Active {
			return
		}
		if other.WeaponLevel < MaxWeaponLevel {
			other.WeaponLevel++
		}
		self.Destroy()
		w.Events.Emit(core.Event{Type: core.EvtPickupCollected, Tick: w.TickCount, Payload: other.WeaponLevel})
	}
	p.OnOutOfBounds = func(self *core.Entity) {
		self.Destroy()
	}
	w.Events.Emit(core.Event{Type: core.EvtPickupDropped, Tick: w.TickCount})
	return w.Registry.Spawn(p)
}
