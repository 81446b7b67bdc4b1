package core

// Role classifies an entity for collision matching. Collision categories
// branch on this tag instead of inspecting concrete entity types.
type Role uint8

const (
	RoleNone Role = iota
	RolePlayer
	RoleEnemy
	RolePlayerBullet
	RoleEnemyBullet
	RoleWeaponPickup
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RolePlayerBullet:
		return "player-bullet"
	case RoleEnemyBullet:
		return "enemy-bullet"
	case RoleWeaponPickup:
		return "weapon-pickup"
	default:
		return "none"
	}
}

// EntityID is a unique identifier for game entities, stable for the
// entity's lifetime. IDs are assigned by the Registry.
type EntityID uint64

// CollisionHook is an entity's collision response. It runs synchronously
// during the resolution phase and may mark either participant for
// destruction or mutate its own counters; it must not add or remove
// entities from the registry directly (spawns go through the pending
// queue).
type CollisionHook func(self, other *Entity)

// BoundsHook runs during the update phase when an entity leaves the world
// bounds. The entity decides its own policy: destroy, clamp, or ignore.
type BoundsHook func(self *Entity)

// Entity is the unit of simulation. One flat struct covers all roles;
// fields unused by a role stay zero.
type Entity struct {
	ID           EntityID
	X, Y         float64 // center, world units
	VX, VY       float64 // world units per second
	HalfW, HalfH float64 // axis-aligned half-extents

	Role           Role
	Active         bool
	PendingDestroy bool

	// Combat
	Health int
	Damage int
	Pierce int // extra hits a bullet survives; 0 = destroyed on first hit
	Points int // score awarded when destroyed

	// Player
	WeaponLevel int
	InvulnT     float64 // invincibility countdown, seconds

	// Timers advanced by the update phase. Life < 0 means unlimited.
	Life   float64
	FlashT float64 // hit-flash countdown

	// Firing
	FireCD   float64 // seconds until next shot
	FireRate float64 // seconds between shots

	// Formation
	HomeX     float64
	SwayPhase float64

	OnCollision   CollisionHook
	OnOutOfBounds BoundsHook
}

// Bounds returns the entity's axis-aligned box.
func (e *Entity) Bounds() (minX, minY, maxX, maxY float64) {
	return e.X - e.HalfW, e.Y - e.HalfH, e.X + e.HalfW, e.Y + e.HalfH
}

// Radius returns the characteristic radius used by the proximity
// predicate: half of the larger box dimension.
func (e *Entity) Radius() float64 {
	if e.HalfW > e.HalfH {
		return e.HalfW
	}
	return e.HalfH
}

// Destroy marks the entity for removal at the end of the frame. The
// entity stays visible to the rest of the current frame's collision
// dispatch; the registry prunes it before the next frame starts.
func (e *Entity) Destroy() {
	e.PendingDestroy = true
	e.Active = false
}
