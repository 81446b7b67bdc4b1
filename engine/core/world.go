package core

// World is the explicit context handed to every system; subsystems reach
// state through it instead of ambient globals.
type World struct {
	Registry *Registry
	Events   *EventBus

	Width, Height float64

	// Session state mutated by systems and collision hooks.
	Score    int
	Lives    int
	Wave     int
	GameOver bool

	TickCount uint64

	systems []System
}

// System processes entities each fixed step. Systems run in ascending
// priority order.
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

func NewWorld(width, height float64) *World {
	return &World{
		Registry: NewRegistry(),
		Events:   NewEventBus(),
		Width:    width,
		Height:   height,
		Lives:    3,
	}
}

// AddSystem registers a system, keeping the list sorted by priority.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Step runs one fixed simulation step: queued spawns join the world, the
// update and collision systems run, destroyed entities are pruned, and
// queued events are dispatched.
func (w *World) Step(dt float64) {
	w.Registry.ApplyPending()
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.Registry.Prune()
	w.Events.Dispatch()
	w.TickCount++
}
