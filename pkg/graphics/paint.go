package graphics

// TextPaint carries the text drawing parameters that spans adjust during
// the draw and measure passes.
type TextPaint struct {
	// TextSize is the font size in pixels.
	TextSize float64
	// Density is the device pixel ratio used by density-relative spans.
	Density float64
	// Color is the text color.
	Color Color
}

// Span is any object that can be bound to a range of a [SpannableString].
type Span interface {
	// SpanTypeID distinguishes span kinds when markup is serialized.
	SpanTypeID() int
}

// MetricAffectingSpan is a span that changes glyph metrics. The text engine
// calls UpdateMeasureState while measuring and UpdateDrawState while drawing
// every character inside the span's range.
type MetricAffectingSpan interface {
	Span
	UpdateDrawState(p *TextPaint)
	UpdateMeasureState(p *TextPaint)
}
