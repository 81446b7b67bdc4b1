package core

import (
	"math"
	"testing"
)

const frameInterval = 1.0 / 60.0

func TestAccumulatorRunsWholeSteps(t *testing.T) {
	gl := NewGameLoop(60)
	gl.Start()

	calls := 0
	steps := gl.advance(0.040, false, func(dt float64) {
		calls++
		if math.Abs(dt-frameInterval) > 1e-9 {
			t.Errorf("expected dt %.6f, got %.6f", frameInterval, dt)
		}
	})

	// 40ms at a 16.67ms interval: exactly 2 full steps, ~6.67ms carried.
	if steps != 2 || calls != 2 {
		t.Fatalf("expected 2 steps, got steps=%d calls=%d", steps, calls)
	}
	want := 0.040 - 2*frameInterval
	if math.Abs(gl.accumulator-want) > 1e-9 {
		t.Errorf("expected remainder %.6f, got %.6f", want, gl.accumulator)
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	gl := NewGameLoop(60)
	gl.Start()

	// Two ticks of 10ms each: no step on the first, one on the second.
	if steps := gl.advance(0.010, false, nil); steps != 0 {
		t.Fatalf("expected 0 steps after 10ms, got %d", steps)
	}
	if steps := gl.advance(0.010, false, nil); steps != 1 {
		t.Fatalf("expected 1 step after 20ms total, got %d", steps)
	}
}

func TestCatchUpCap(t *testing.T) {
	gl := NewGameLoop(60)
	gl.Start()

	// 2 seconds of backlog must not run 120 steps.
	steps := gl.advance(2.0, false, func(dt float64) {})
	if steps != MaxCatchUpSteps {
		t.Fatalf("expected %d capped steps, got %d", MaxCatchUpSteps, steps)
	}
	// Whole excess intervals are discarded; only a sub-interval remainder
	// may survive.
	if gl.accumulator >= frameInterval {
		t.Errorf("accumulator %.4f still holds a full interval after cap", gl.accumulator)
	}
}

func TestPauseSuspendsStepsButNotToggle(t *testing.T) {
	gl := NewGameLoop(60)
	gl.Start()

	calls := 0
	step := func(dt float64) { calls++ }

	gl.advance(0.020, true, step)
	if gl.State != StatePaused {
		t.Fatal("expected paused after toggle")
	}
	if calls != 0 {
		t.Fatalf("paused tick ran %d steps", calls)
	}

	// Repeated paused ticks: time drains, nothing simulates.
	for i := 0; i < 10; i++ {
		gl.advance(0.020, false, step)
	}
	if calls != 0 {
		t.Fatalf("paused ticks ran %d steps", calls)
	}

	// The toggle must still be detected while paused.
	gl.advance(0.020, true, step)
	if gl.State != StateRunning {
		t.Fatal("expected running after second toggle")
	}
	if calls == 0 {
		t.Error("expected steps to resume after unpause")
	}
}

func TestStoppedLoopIgnoresTicks(t *testing.T) {
	gl := NewGameLoop(60)

	calls := 0
	if steps := gl.advance(1.0, false, func(dt float64) { calls++ }); steps != 0 || calls != 0 {
		t.Fatalf("stopped loop ran steps=%d calls=%d", steps, calls)
	}

	gl.Start()
	gl.advance(0.020, false, func(dt float64) { calls++ })
	gl.Stop()
	if steps := gl.advance(1.0, false, func(dt float64) { calls++ }); steps != 0 {
		t.Fatalf("loop stepped after Stop: %d", steps)
	}
}

func TestStartResetsAccumulator(t *testing.T) {
	gl := NewGameLoop(60)
	gl.Start()
	gl.advance(0.010, false, nil)
	gl.Stop()

	gl.Start()
	if gl.accumulator != 0 {
		t.Errorf("expected reset accumulator, got %.4f", gl.accumulator)
	}
}
