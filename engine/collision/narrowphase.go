package collision

import "github.com/1siamBot/shmup-engine/engine/core"

// PickupGrabMargin enlarges a pickup's effective radius in the proximity
// test so the item is easy to grab. Forgiving pickup UX beats geometric
// precision here.
const PickupGrabMargin = 10.0

// Predicate is a narrow-phase geometric test for a candidate pair.
type Predicate func(a, b *core.Entity) bool

// BoxOverlap reports whether two axis-aligned boxes overlap. Strict
// comparisons: exact edge-touching is not a gameplay-meaningful event.
func BoxOverlap(a, b *core.Entity) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := b.Bounds()
	return aMaxX > bMinX && aMinX < bMaxX && aMaxY > bMinY && aMinY < bMaxY
}

// ProximityOverlap compares center distance against the sum of the two
// characteristic radii plus margin.
func ProximityOverlap(a, b *core.Entity, margin float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	r := a.Radius() + b.Radius() + margin
	return dx*dx+dy*dy <= r*r
}

// PickupOverlap is the player-pickup test: the enlarged-radius proximity
// test, with box overlap also accepted. Either predicate satisfying
// counts as a collision.
func PickupOverlap(a, b *core.Entity) bool {
	return ProximityOverlap(a, b, PickupGrabMargin) || BoxOverlap(a, b)
}
