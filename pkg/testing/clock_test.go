package testing

import (
	"testing"
	"time"

	"github.com/go-drift/wavetext/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	now := clk.Advance(100 * time.Millisecond)
	if elapsed := now.Sub(start); elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
	if clk.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 100ms", clk.Elapsed())
	}
}

func TestFakeClockAt(t *testing.T) {
	at := Epoch.Add(time.Hour)
	clk := NewFakeClockAt(at)
	if !clk.Now().Equal(at) || clk.Elapsed() != time.Hour {
		t.Errorf("NewFakeClockAt: now=%v elapsed=%v", clk.Now(), clk.Elapsed())
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestHarness_InstallsAndRestoresClock(t *testing.T) {
	before := animation.Now()
	h := NewHarness()
	if !animation.Now().Equal(h.Clock().Now()) {
		t.Fatal("harness clock should drive animation.Now")
	}
	h.Cleanup()
	h.Cleanup()
	if animation.Now().Before(before) {
		t.Error("real clock should be restored after Cleanup")
	}
}

func TestHarness_StepRunsInDueOrder(t *testing.T) {
	h := NewHarnessWithT(t)
	sched := h.Scheduler()
	start := h.Clock().Now()

	var order []string
	sched.PostDelayed(30*time.Millisecond, func() { order = append(order, "c") })
	sched.PostDelayed(10*time.Millisecond, func() { order = append(order, "a") })
	sched.PostDelayed(20*time.Millisecond, func() { order = append(order, "b") })

	if n := h.Step(); n != 1 {
		t.Fatalf("Step() ran %d callbacks, want 1", n)
	}
	if got := h.Clock().Now().Sub(start); got != 10*time.Millisecond {
		t.Errorf("clock at %v after first step, want 10ms", got)
	}
	if n := h.PumpTicks(5); n != 2 {
		t.Errorf("PumpTicks ran %d callbacks, want 2", n)
	}
	if got := len(order); got != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
	if h.Step() != 0 {
		t.Error("Step on an empty queue should run nothing")
	}
}

func TestHarness_Advance(t *testing.T) {
	h := NewHarnessWithT(t)
	sched := h.Scheduler()
	start := h.Clock().Now()

	count := 0
	var repost func()
	repost = func() {
		count++
		sched.PostDelayed(10*time.Millisecond, repost)
	}
	sched.PostDelayed(10*time.Millisecond, repost)

	ran := h.Advance(55 * time.Millisecond)
	if ran != 5 || count != 5 {
		t.Errorf("Advance(55ms) ran %d (count %d), want 5", ran, count)
	}
	if got := h.Clock().Now().Sub(start); got != 55*time.Millisecond {
		t.Errorf("clock advanced %v, want 55ms", got)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", sched.Pending())
	}
}
