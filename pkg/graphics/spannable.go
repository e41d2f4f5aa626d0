package graphics

import "github.com/go-drift/wavetext/pkg/errors"

// SpanFlags controls how a span's range would expand when text is inserted
// at its edges. Spannable strings here are immutable, so the flags are only
// recorded and reported back.
type SpanFlags int

const (
	SpanInclusiveExclusive SpanFlags = iota
	SpanInclusiveInclusive
	SpanExclusiveExclusive
	SpanExclusiveInclusive
)

type spanBinding struct {
	span  Span
	start int
	end   int
	flags SpanFlags
}

// SpannableString is immutable text with mutable span bindings. Indices are
// character (rune) offsets.
//
// A span object is bound at most once: binding it again moves it. A
// [MetricAffectingSpan] bound to exactly the range of another span of the
// same kind replaces that span, so rebinding per-character spans every frame
// never accumulates.
type SpannableString struct {
	text     string
	runes    []rune
	bindings []spanBinding
}

// NewSpannableString returns markup over text with no spans.
func NewSpannableString(text string) *SpannableString {
	return &SpannableString{text: text, runes: []rune(text)}
}

// String returns the plain text.
func (s *SpannableString) String() string { return s.text }

// Runes returns the characters of the text. The slice must not be modified.
func (s *SpannableString) Runes() []rune { return s.runes }

// Len returns the number of characters.
func (s *SpannableString) Len() int { return len(s.runes) }

// SetSpan binds span to [start, end). Lookup is linear in the number of
// bindings, which suits single-line text.
func (s *SpannableString) SetSpan(span Span, start, end int, flags SpanFlags) error {
	if span == nil {
		return errors.New("graphics.SetSpan", errors.KindRange, "nil span")
	}
	if start < 0 || end < start || end > len(s.runes) {
		return &errors.WaveError{
			Op:   "graphics.SetSpan",
			Kind: errors.KindRange,
			Err:  &errors.RangeError{Start: start, End: end, Len: len(s.runes)},
		}
	}

	if i := s.indexOf(span); i >= 0 {
		s.bindings[i].start, s.bindings[i].end, s.bindings[i].flags = start, end, flags
		s.dropSameKind(i)
		return nil
	}

	s.bindings = append(s.bindings, spanBinding{span: span, start: start, end: end, flags: flags})
	s.dropSameKind(len(s.bindings) - 1)
	return nil
}

// dropSameKind removes metric spans of the same kind bound to exactly the
// range of binding i.
func (s *SpannableString) dropSameKind(i int) {
	b := s.bindings[i]
	if _, ok := b.span.(MetricAffectingSpan); !ok {
		return
	}
	id := b.span.SpanTypeID()
	kept := s.bindings[:0]
	for j, other := range s.bindings {
		if j != i && other.start == b.start && other.end == b.end {
			if _, ok := other.span.(MetricAffectingSpan); ok && other.span.SpanTypeID() == id {
				continue
			}
		}
		kept = append(kept, other)
	}
	for j := len(kept); j < len(s.bindings); j++ {
		s.bindings[j] = spanBinding{}
	}
	s.bindings = kept
}

// RemoveSpan unbinds span. Removing an unbound span is a no-op.
func (s *SpannableString) RemoveSpan(span Span) {
	i := s.indexOf(span)
	if i < 0 {
		return
	}
	copy(s.bindings[i:], s.bindings[i+1:])
	s.bindings[len(s.bindings)-1] = spanBinding{}
	s.bindings = s.bindings[:len(s.bindings)-1]
}

// Spans returns the spans intersecting [start, end) in binding order. An
// empty query range matches spans that contain that position.
func (s *SpannableString) Spans(start, end int) []Span {
	var out []Span
	for _, b := range s.bindings {
		if intersects(b.start, b.end, start, end) {
			out = append(out, b.span)
		}
	}
	return out
}

// MetricSpansAt returns the metric affecting spans covering character i.
func (s *SpannableString) MetricSpansAt(i int) []MetricAffectingSpan {
	var out []MetricAffectingSpan
	for _, b := range s.bindings {
		if i < b.start || i >= b.end {
			continue
		}
		if m, ok := b.span.(MetricAffectingSpan); ok {
			out = append(out, m)
		}
	}
	return out
}

// SpanStart returns the start of span's range, or -1 if unbound.
func (s *SpannableString) SpanStart(span Span) int {
	if i := s.indexOf(span); i >= 0 {
		return s.bindings[i].start
	}
	return -1
}

// SpanEnd returns the end of span's range, or -1 if unbound.
func (s *SpannableString) SpanEnd(span Span) int {
	if i := s.indexOf(span); i >= 0 {
		return s.bindings[i].end
	}
	return -1
}

// SpanFlags returns the flags span was bound with, or 0 if unbound.
func (s *SpannableString) SpanFlags(span Span) SpanFlags {
	if i := s.indexOf(span); i >= 0 {
		return s.bindings[i].flags
	}
	return 0
}

// SpanCount returns the number of bound spans.
func (s *SpannableString) SpanCount() int { return len(s.bindings) }

func (s *SpannableString) indexOf(span Span) int {
	for i, b := range s.bindings {
		if b.span == span {
			return i
		}
	}
	return -1
}

func intersects(aStart, aEnd, start, end int) bool {
	if start == end {
		return start >= aStart && (start < aEnd || aStart == aEnd && start == aStart)
	}
	return aStart < end && start < aEnd
}
