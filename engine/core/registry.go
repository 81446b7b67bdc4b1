package core

// Registry owns entity existence. Other subsystems hold only transient
// references valid for the current frame. Structural mutation happens at
// two well-defined points in a frame: the pending spawn queue is applied
// at the start of the update phase, and destroyed entities are pruned
// after the collision phase — never mid-iteration.
type Registry struct {
	entities []*Entity
	pending  []*Entity
	nextID   EntityID
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn assigns an ID and queues the entity. It joins the live set at the
// next ApplyPending, so entities created by collision responses never
// disturb the current frame's candidate set.
func (r *Registry) Spawn(e *Entity) *Entity {
	r.nextID++
	e.ID = r.nextID
	e.Active = true
	r.pending = append(r.pending, e)
	return e
}

// ApplyPending moves queued spawns into the live set. Called once per
// frame, at the start of the update phase.
func (r *Registry) ApplyPending() {
	if len(r.pending) == 0 {
		return
	}
	r.entities = append(r.entities, r.pending...)
	r.pending = r.pending[:0]
}

// Prune removes entities marked PendingDestroy, compacting in place.
// Called once per frame, after the collision phase.
func (r *Registry) Prune() {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if !e.PendingDestroy {
			kept = append(kept, e)
		}
	}
	// Clear the tail so pruned entities can be collected.
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
}

// Entities returns the live entity slice. Callers must not append or
// remove; flag mutation is fine.
func (r *Registry) Entities() []*Entity {
	return r.entities
}

// First returns the first active entity with the given role, or nil.
func (r *Registry) First(role Role) *Entity {
	for _, e := range r.entities {
		if e.Active && e.Role == role {
			return e
		}
	}
	return nil
}

// CountRole returns the number of active entities with the given role.
func (r *Registry) CountRole(role Role) int {
	n := 0
	for _, e := range r.entities {
		if e.Active && e.Role == role {
			n++
		}
	}
	return n
}

// Len returns the number of live entities, pruned or not yet.
func (r *Registry) Len() int {
	return len(r.entities)
}
