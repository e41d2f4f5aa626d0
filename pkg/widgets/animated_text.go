package widgets

import (
	"math"

	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/errors"
	"github.com/go-drift/wavetext/pkg/graphics"
)

// defaultTextSize is used when no text size is specified.
const defaultTextSize = 16

// AnimatedText displays a single line of text whose characters grow and
// shrink along a travelling sine wave.
//
// Each character owns a [graphics.SizeSpan]. Every tick the widget advances
// the shared phase, recomputes every span's size with [animation.Wave.Size]
// and rebinds the spans on its markup, then hands the markup to the redraw
// hook.
//
// The animation starts on construction, on attach and when the view becomes
// visible; it stops on detach and when the view is hidden. Each start
// re-reads the text and size, resets the phase to zero and allocates fresh
// spans.
//
// AnimatedText is not safe for concurrent use. All methods, including the
// [Lifecycle] callbacks, must be called on the scheduler's thread.
type AnimatedText struct {
	scheduler animation.Scheduler
	wave      animation.Wave
	text      string
	textSize  float64
	density   float64
	dip       bool
	color     graphics.Color
	onRedraw  func(*graphics.SpannableString)

	markup     *graphics.SpannableString
	baseline   float64
	phase      float64
	spans      []*graphics.SizeSpan
	animating  bool
	token      animation.Token
	attached   bool
	visibility Visibility
}

// Option configures an AnimatedText.
type Option func(*AnimatedText)

// WithTextSize sets the font size the wave oscillates around.
func WithTextSize(size float64) Option {
	return func(w *AnimatedText) { w.textSize = size }
}

// WithDensity sets the device pixel ratio passed to the text paint.
func WithDensity(density float64) Option {
	return func(w *AnimatedText) { w.density = density }
}

// WithDip makes the per-character spans density-relative.
func WithDip(dip bool) Option {
	return func(w *AnimatedText) { w.dip = dip }
}

// WithWave replaces the default wave parameters. A wave that fails
// [animation.Wave.Validate] is reported and the default wave is used.
func WithWave(wave animation.Wave) Option {
	return func(w *AnimatedText) { w.wave = wave }
}

// WithColor sets the text color.
func WithColor(c graphics.Color) Option {
	return func(w *AnimatedText) { w.color = c }
}

// OnRedraw registers the hook called with the markup after every tick and
// after text changes.
func OnRedraw(fn func(*graphics.SpannableString)) Option {
	return func(w *AnimatedText) { w.onRedraw = fn }
}

// NewAnimatedText creates the widget and starts animating if text is not
// empty. Ticks are posted to scheduler.
func NewAnimatedText(scheduler animation.Scheduler, text string, opts ...Option) *AnimatedText {
	w := &AnimatedText{
		scheduler: scheduler,
		wave:      animation.DefaultWave(),
		text:      text,
		textSize:  defaultTextSize,
		density:   1,
		color:     graphics.ColorBlack,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.wave.Validate(); err != nil {
		errors.Report(&errors.WaveError{Op: "widgets.NewAnimatedText", Kind: errors.KindConfig, Err: err})
		w.wave = animation.DefaultWave()
	}
	w.markup = graphics.NewSpannableString(text)
	w.Start()
	return w
}

// Start begins animating the current text. Empty text is a no-op. Calling
// Start while animating restarts from phase zero without leaving the old
// tick scheduled. Without a scheduler the widget reports the problem and
// stays idle.
func (w *AnimatedText) Start() {
	if w.text == "" {
		return
	}
	if w.scheduler == nil {
		errors.Report(errors.New("widgets.AnimatedText.Start", errors.KindInit, "no scheduler"))
		return
	}
	w.cancelTick()

	w.markup = graphics.NewSpannableString(w.text)
	w.baseline = w.textSize
	w.phase = 0
	n := w.markup.Len()
	placeholder := int(math.Round(w.baseline))
	w.spans = make([]*graphics.SizeSpan, n)
	for i := range w.spans {
		w.spans[i] = graphics.NewSizeSpanDip(placeholder, w.dip)
		w.bind(i)
	}

	w.animating = true
	w.scheduleTick()
}

// Stop cancels the pending tick. Stopping an idle widget is a no-op. The
// markup keeps the sizes of the last tick.
func (w *AnimatedText) Stop() {
	w.cancelTick()
	w.animating = false
}

// Toggle starts an idle widget and stops an animating one.
func (w *AnimatedText) Toggle() {
	if w.animating {
		w.Stop()
	} else {
		w.Start()
	}
}

// OnTap toggles the animation.
func (w *AnimatedText) OnTap() { w.Toggle() }

// IsAnimating reports whether a tick is scheduled.
func (w *AnimatedText) IsAnimating() bool { return w.animating }

// OnAttachedToWindow starts the animation.
func (w *AnimatedText) OnAttachedToWindow() {
	w.attached = true
	w.Start()
}

// OnDetachedFromWindow stops the animation.
func (w *AnimatedText) OnDetachedFromWindow() {
	w.attached = false
	w.Stop()
}

// OnVisibilityChanged starts the animation when v is Visible and stops it
// otherwise.
func (w *AnimatedText) OnVisibilityChanged(v Visibility) {
	w.visibility = v
	if v != Visible {
		w.Stop()
		return
	}
	w.Start()
}

// Attached reports whether the view is in the display tree.
func (w *AnimatedText) Attached() bool { return w.attached }

// Visibility returns the last visibility reported by the host.
func (w *AnimatedText) Visibility() Visibility { return w.visibility }

// Text returns the displayed text.
func (w *AnimatedText) Text() string { return w.text }

// SetText replaces the text. An animating widget restarts with the new
// text, or stops if it is empty; an idle widget stays idle.
func (w *AnimatedText) SetText(text string) {
	w.text = text
	if w.animating {
		if text != "" {
			w.Start()
			return
		}
		w.Stop()
	}
	w.markup = graphics.NewSpannableString(text)
	w.spans = nil
	w.redraw()
}

// TextSize returns the configured text size.
func (w *AnimatedText) TextSize() float64 { return w.textSize }

// SetTextSize changes the text size. A running animation keeps its
// baseline until the next Start.
func (w *AnimatedText) SetTextSize(size float64) { w.textSize = size }

// Baseline returns the size captured by the last Start.
func (w *AnimatedText) Baseline() float64 { return w.baseline }

// Phase returns the phase timer.
func (w *AnimatedText) Phase() float64 { return w.phase }

// Wave returns the wave parameters.
func (w *AnimatedText) Wave() animation.Wave { return w.wave }

// MaxSize returns the largest text size, in pixels, the wave can resolve to
// for the current text size.
func (w *AnimatedText) MaxSize() float64 {
	_, hi := w.wave.SizeBounds(w.textSize)
	if w.dip {
		return float64(hi) * w.density
	}
	return float64(hi)
}

// Spans returns the per-character spans of the current animation.
func (w *AnimatedText) Spans() []*graphics.SizeSpan {
	out := make([]*graphics.SizeSpan, len(w.spans))
	copy(out, w.spans)
	return out
}

// Markup returns the text with its span bindings, for the host's layout
// and draw passes.
func (w *AnimatedText) Markup() *graphics.SpannableString { return w.markup }

// Paint returns the base paint the host should lay the markup out with.
func (w *AnimatedText) Paint() graphics.TextPaint {
	return graphics.TextPaint{TextSize: w.textSize, Density: w.density, Color: w.color}
}

func (w *AnimatedText) tick(tok animation.Token) {
	if !w.animating || tok != w.token {
		return
	}
	w.token = 0

	w.phase = w.wave.Advance(w.phase)
	for i, span := range w.spans {
		span.SetSize(w.wave.Size(i, w.phase, w.baseline))
		w.bind(i)
	}
	w.redraw()
	w.scheduleTick()
}

func (w *AnimatedText) bind(i int) {
	if err := w.markup.SetSpan(w.spans[i], i, i+1, graphics.SpanInclusiveExclusive); err != nil {
		errors.Report(&errors.WaveError{Op: "widgets.AnimatedText.bind", Kind: errors.KindRange, Err: err})
	}
}

func (w *AnimatedText) scheduleTick() {
	var tok animation.Token
	tok = w.scheduler.PostDelayed(w.wave.Interval(), func() { w.tick(tok) })
	w.token = tok
}

func (w *AnimatedText) cancelTick() {
	if w.token != 0 && w.scheduler != nil {
		w.scheduler.Cancel(w.token)
	}
	w.token = 0
}

func (w *AnimatedText) redraw() {
	if w.onRedraw != nil {
		w.onRedraw(w.markup)
	}
}

var (
	_ Lifecycle = (*AnimatedText)(nil)
	_ Tappable  = (*AnimatedText)(nil)
)
