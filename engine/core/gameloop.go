package core

import "time"

// LoopState is the scheduler's state.
type LoopState uint8

const (
	StateStopped LoopState = iota
	StateRunning
	StatePaused
)

// MaxCatchUpSteps bounds how many fixed steps a single tick may run when
// the accumulator holds a large backlog (e.g. the window sat in the
// background). Excess time is discarded instead of exploding into
// hundreds of simulated steps.
const MaxCatchUpSteps = 5

// GameLoop advances the simulation at a fixed timestep regardless of the
// render cadence. Each display frame calls Tick once; leftover wall-clock
// time below one step interval carries to the next tick so long runs do
// not drift.
type GameLoop struct {
	State    LoopState
	TickRate float64 // fixed steps per second

	accumulator float64
	lastTime    time.Time
}

func NewGameLoop(tickRate float64) *GameLoop {
	return &GameLoop{TickRate: tickRate}
}

// Start moves the loop to Running and resets accumulator state.
func (gl *GameLoop) Start() {
	gl.State = StateRunning
	gl.accumulator = 0
	gl.lastTime = time.Now()
}

// Stop halts stepping immediately. A tick's body is synchronous, so there
// is nothing in flight to interrupt.
func (gl *GameLoop) Stop() {
	gl.State = StateStopped
}

// TogglePause flips between Running and Paused.
func (gl *GameLoop) TogglePause() {
	switch gl.State {
	case StateRunning:
		gl.State = StatePaused
	case StatePaused:
		gl.State = StateRunning
	}
}

func (gl *GameLoop) Paused() bool {
	return gl.State == StatePaused
}

// Tick consumes elapsed wall-clock time and runs up to MaxCatchUpSteps
// fixed steps. pausePressed is the pause input sampled for this tick; it
// is honored in every state so the pause control is never starved, even
// while paused. step runs only while Running. Returns the number of
// steps run.
func (gl *GameLoop) Tick(pausePressed bool, step func(dt float64)) int {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.advance(frameTime, pausePressed, step)
}

func (gl *GameLoop) advance(frameTime float64, pausePressed bool, step func(dt float64)) int {
	if gl.State == StateStopped {
		return 0
	}
	if pausePressed {
		gl.TogglePause()
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	steps := 0
	for gl.accumulator >= dt && steps < MaxCatchUpSteps {
		if gl.State == StateRunning && step != nil {
			step(dt)
		}
		gl.accumulator -= dt
		steps++
	}
	// Past the cap, drop whole intervals; the sub-interval remainder
	// still carries to the next tick.
	for gl.accumulator >= dt {
		gl.accumulator -= dt
	}
	return steps
}
