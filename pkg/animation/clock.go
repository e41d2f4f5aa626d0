package animation

import "time"

// Clock is the time source [QueueScheduler] measures due times against.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock installs c as the package clock and returns the one it
// replaced. A nil c restores the system clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now reads the package clock.
func Now() time.Time { return clock.Now() }
