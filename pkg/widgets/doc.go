// Package widgets provides [AnimatedText], a single-line text view whose
// characters grow and shrink along a travelling sine wave.
//
// # Construction
//
// A widget needs a [animation.Scheduler] from its host and starts
// animating as soon as it is built:
//
//	w := widgets.NewAnimatedText(scheduler, "Hello, wave!",
//	    widgets.WithTextSize(32),
//	    widgets.OnRedraw(func(s *graphics.SpannableString) { invalidate() }),
//	)
//
// Each tick resizes one [graphics.SizeSpan] per character and hands the
// markup to the redraw hook. The host's text engine then applies the spans
// while measuring and drawing.
//
// # Lifecycle
//
// Hosts forward view events through the [Lifecycle] methods. Attaching or
// becoming [Visible] starts the wave from phase zero; detaching or becoming
// [Invisible] or [Gone] stops it. [AnimatedText.OnTap] toggles it.
//
// # Threading
//
// The widget is not synchronised. Every call, including the scheduled
// ticks, must happen on the scheduler's thread.
package widgets
