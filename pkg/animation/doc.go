// Package animation provides the wave math and the scheduling primitives
// that drive animated text.
//
// # Wave
//
// [Wave] holds the oscillation parameters and exposes the pure functions
// used every tick: [Wave.Advance] moves the shared phase timer forward and
// [Wave.Size] maps a character index and phase to a font size:
//
//	size = round(baseline * (sizeRange*sin(2*pi*(i+phase)/period) + 1))
//
// Adding the index to the phase puts each character at a different point of
// the wave, so the text shows a travelling wave rather than a uniform pulse.
//
// # Scheduling
//
// Widgets never start goroutines or timers themselves. They post delayed
// callbacks to a [Scheduler] supplied by the host:
//
//   - [QueueScheduler] is pumped by a frame loop (or a test) via RunDue.
//   - [LoopScheduler] owns a single UI goroutine and real timers.
//
// Both run callbacks strictly one at a time, and neither runs a callback
// whose token was cancelled.
package animation
