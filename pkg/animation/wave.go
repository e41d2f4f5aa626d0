package animation

import (
	"math"
	"time"

	"github.com/go-drift/wavetext/pkg/errors"
)

// Wave describes the per-character size oscillation.
type Wave struct {
	// TicksPerSecond is the target update rate.
	TicksPerSecond int `yaml:"ticks_per_second"`
	// CyclesPerSecond is how far the phase advances each second.
	CyclesPerSecond float64 `yaml:"cycles_per_second"`
	// SpeedMultiplier scales CyclesPerSecond.
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	// MinSizeMultiplier and MaxSizeMultiplier bound the wave amplitude;
	// only their difference is used.
	MinSizeMultiplier float64 `yaml:"min_size_multiplier"`
	MaxSizeMultiplier float64 `yaml:"max_size_multiplier"`
	// Period is the number of characters per full wave cycle.
	Period float64 `yaml:"period"`
}

// DefaultWave returns the stock wave: 60 ticks per second, 4.2 phase units
// per second, amplitude 0.5 and a period of 5 characters.
func DefaultWave() Wave {
	return Wave{
		TicksPerSecond:    60,
		CyclesPerSecond:   4.2,
		SpeedMultiplier:   1,
		MinSizeMultiplier: 1,
		MaxSizeMultiplier: 1.5,
		Period:            5,
	}
}

// Validate reports parameters that would stall or invert the wave.
func (w Wave) Validate() error {
	const op = "animation.Wave.Validate"
	switch {
	case w.TicksPerSecond <= 0:
		return errors.New(op, errors.KindConfig, "ticks_per_second must be positive, got %d", w.TicksPerSecond)
	case w.CyclesPerSecond <= 0:
		return errors.New(op, errors.KindConfig, "cycles_per_second must be positive, got %v", w.CyclesPerSecond)
	case w.SpeedMultiplier <= 0:
		return errors.New(op, errors.KindConfig, "speed_multiplier must be positive, got %v", w.SpeedMultiplier)
	case w.Period <= 0:
		return errors.New(op, errors.KindConfig, "period must be positive, got %v", w.Period)
	case w.MaxSizeMultiplier < w.MinSizeMultiplier:
		return errors.New(op, errors.KindConfig, "max_size_multiplier %v is below min_size_multiplier %v",
			w.MaxSizeMultiplier, w.MinSizeMultiplier)
	}
	return nil
}

// Increment is the phase advance per tick.
func (w Wave) Increment() float64 {
	return w.CyclesPerSecond * w.SpeedMultiplier / float64(w.TicksPerSecond)
}

// Interval is the delay between ticks.
func (w Wave) Interval() time.Duration {
	return time.Second / time.Duration(w.TicksPerSecond)
}

// SizeRange is the wave amplitude as a fraction of the baseline size.
func (w Wave) SizeRange() float64 {
	return w.MaxSizeMultiplier - w.MinSizeMultiplier
}

// Advance returns the phase after one tick. A phase that can no longer
// grow (at the float64 maximum, infinite or NaN) restarts from zero first.
func (w Wave) Advance(phase float64) float64 {
	if !(phase < math.MaxFloat64) {
		phase = 0
	}
	return phase + w.Increment()
}

// Factor returns the size multiplier for character i at the given phase.
func (w Wave) Factor(i int, phase float64) float64 {
	return w.SizeRange()*math.Sin(2*math.Pi*(float64(i)+phase)/w.Period) + 1
}

// Size returns the rounded font size for character i.
func (w Wave) Size(i int, phase, baseline float64) int {
	return int(math.Round(baseline * w.Factor(i, phase)))
}

// SizeBounds returns the smallest and largest sizes Size can produce for
// the baseline.
func (w Wave) SizeBounds(baseline float64) (lo, hi int) {
	r := w.SizeRange()
	return int(math.Round(baseline * (1 - r))), int(math.Round(baseline * (1 + r)))
}
