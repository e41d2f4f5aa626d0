package testing

import (
	"testing"
	"time"

	"github.com/go-drift/wavetext/pkg/animation"
)

// Harness binds a [animation.QueueScheduler] to a [FakeClock] installed as
// the animation clock, so posted callbacks run only when the test says so.
type Harness struct {
	clock     *FakeClock
	prevClock animation.Clock
	scheduler *animation.QueueScheduler
}

// NewHarness installs a fake clock. Call Cleanup when done, or use
// NewHarnessWithT instead.
func NewHarness() *Harness {
	clk := NewFakeClock()
	return &Harness{
		clock:     clk,
		prevClock: animation.SetClock(clk),
		scheduler: animation.NewQueueScheduler(),
	}
}

// NewHarnessWithT creates a harness that restores the clock via t.Cleanup().
func NewHarnessWithT(t testing.TB) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the previous animation clock.
func (h *Harness) Cleanup() {
	if h.prevClock != nil {
		animation.SetClock(h.prevClock)
		h.prevClock = nil
	}
}

// Clock returns the fake clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Scheduler returns the queue scheduler to hand to widgets.
func (h *Harness) Scheduler() *animation.QueueScheduler { return h.scheduler }

// Step moves the clock to the earliest pending callback and runs everything
// due at that instant. It returns the number of callbacks run, 0 when
// nothing is pending.
func (h *Harness) Step() int {
	due, ok := h.scheduler.NextDue()
	if !ok {
		return 0
	}
	if due.After(h.clock.Now()) {
		h.clock.Set(due)
	}
	return h.scheduler.RunDue()
}

// PumpTicks calls Step n times and returns the total callbacks run.
func (h *Harness) PumpTicks(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += h.Step()
	}
	return ran
}

// Advance moves the clock forward by d, running callbacks at their due
// times along the way.
func (h *Harness) Advance(d time.Duration) int {
	target := h.clock.Now().Add(d)
	ran := 0
	for {
		due, ok := h.scheduler.NextDue()
		if !ok || due.After(target) {
			break
		}
		if due.After(h.clock.Now()) {
			h.clock.Set(due)
		}
		n := h.scheduler.RunDue()
		if n == 0 {
			break
		}
		ran += n
	}
	h.clock.Set(target)
	return ran
}
