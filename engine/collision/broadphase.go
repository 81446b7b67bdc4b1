package collision

import "github.com/1siamBot/shmup-engine/engine/core"

// Category is one role-pair collision class. The matcher iterates
// entities with the Anchor role and queries the grid for Candidate-role
// neighbors, so the query is anchored at the side with fewer entities
// (each bullet rather than all enemies per bullet; the single player
// rather than every enemy bullet).
type Category struct {
	Anchor      core.Role
	Candidate   core.Role
	Test        Predicate
	DedupExempt bool
}

// Categories is the full pair table. Role tags plus this table replace
// the runtime type inspection a naive implementation would use.
var Categories = []Category{
	{Anchor: core.RolePlayerBullet, Candidate: core.RoleEnemy, Test: BoxOverlap},
	{Anchor: core.RolePlayer, Candidate: core.RoleEnemyBullet, Test: BoxOverlap},
	{Anchor: core.RolePlayer, Candidate: core.RoleEnemy, Test: BoxOverlap},
	{Anchor: core.RolePlayer, Candidate: core.RoleWeaponPickup, Test: PickupOverlap, DedupExempt: true},
}

// Engine runs the whole collision phase: grid rebuild, per-category broad
// phase, narrow phase, and resolution. All of its state is transient
// within a frame.
type Engine struct {
	grid     *Grid
	resolver *Resolver
	buf      []*core.Entity
}

func NewEngine(worldW, worldH float64) *Engine {
	return &Engine{
		grid:     NewGrid(worldW, worldH, CellSize),
		resolver: NewResolver(),
	}
}

// Priority places the collision phase after every update-phase system.
func (e *Engine) Priority() int { return 50 }

// Update implements core.System.
func (e *Engine) Update(w *core.World, dt float64) {
	e.Run(w.Registry.Entities())
}

// Run executes one frame's collision pass over the given entity
// snapshot. Candidate pairs flow straight from broad phase through the
// narrow-phase predicate to the resolver; nothing is batched or stored.
func (e *Engine) Run(entities []*core.Entity) {
	e.grid.Rebuild(entities)
	e.resolver.BeginFrame()

	for _, cat := range Categories {
		for _, anchor := range entities {
			if !anchor.Active || anchor.Role != cat.Anchor {
				continue
			}
			e.buf = e.grid.Query(anchor, cat.Candidate, e.buf[:0])
			for _, cand := range e.buf {
				// A hook earlier in this frame may have deactivated
				// either side.
				if !anchor.Active || !cand.Active {
					continue
				}
				if !cat.Test(cand, anchor) {
					continue
				}
				e.resolver.Resolve(cand, anchor, cat.DedupExempt)
			}
		}
	}
}
