package testing

import (
	"sync"
	"time"
)

// Epoch is where every NewFakeClock starts. Golden traces do not depend on
// it, only on offsets from it.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an [animation.Clock] that only moves when told to.
// It is safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock reading [Epoch].
func NewFakeClock() *FakeClock {
	return NewFakeClockAt(Epoch)
}

// NewFakeClockAt returns a clock reading t.
func NewFakeClockAt(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed is the time since [Epoch].
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Advance moves the clock forward by d and returns the new reading.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set jumps to t, which may be in the past.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
