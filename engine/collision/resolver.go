package collision

import "github.com/1siamBot/shmup-engine/engine/core"

// PairKey identifies an unordered entity pair by deterministic ordering
// of the two ids.
type PairKey struct {
	Lo, Hi core.EntityID
}

func MakePairKey(a, b core.EntityID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// Resolver fires collision-response hooks at most once per unordered pair
// per frame. The dedup set is transient: owned by the current frame and
// reset at the start of the next.
type Resolver struct {
	seen map[PairKey]struct{}
}

func NewResolver() *Resolver {
	return &Resolver{seen: make(map[PairKey]struct{})}
}

// BeginFrame discards the previous frame's dedup set.
func (r *Resolver) BeginFrame() {
	clear(r.seen)
}

// Resolve invokes a's hook then b's, in that fixed order; a is the entity
// discovered as the candidate side of the broad-phase query, which keeps
// damage ordering reproducible. Pairs already resolved this frame are
// skipped unless the category is dedup-exempt (pickups are single-use, so
// re-fire is prevented by the pickup destroying itself instead). A nil
// hook is a no-op for that side, not an error. Returns whether the hooks
// fired.
func (r *Resolver) Resolve(a, b *core.Entity, dedupExempt bool) bool {
	if !dedupExempt {
		k := MakePairKey(a.ID, b.ID)
		if _, dup := r.seen[k]; dup {
			return false
		}
		r.seen[k] = struct{}{}
	}
	if a.OnCollision != nil {
		a.OnCollision(a, b)
	}
	if b.OnCollision != nil {
		b.OnCollision(b, a)
	}
	return true
}
