package graphics

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/wavetext/pkg/errors"
)

type markerSpan struct{ id int }

func (m *markerSpan) SpanTypeID() int { return m.id }

func TestSpannableString_RuneIndices(t *testing.T) {
	s := NewSpannableString("héllo")
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	if err := s.SetSpan(NewSizeSpan(10), 4, 5, SpanInclusiveExclusive); err != nil {
		t.Fatalf("SetSpan on last rune: %v", err)
	}
	if s.String() != "héllo" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSpannableString_SetSpanRange(t *testing.T) {
	s := NewSpannableString("AB")
	tests := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{"first", 0, 1, true},
		{"whole", 0, 2, true},
		{"empty at end", 2, 2, true},
		{"negative", -1, 1, false},
		{"inverted", 2, 1, false},
		{"past end", 1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetSpan(NewSizeSpan(1), tt.start, tt.end, SpanInclusiveExclusive)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				var re *errors.RangeError
				if !stderrors.As(err, &re) {
					t.Fatalf("expected RangeError, got %v", err)
				}
			}
		})
	}
	if err := s.SetSpan(nil, 0, 1, SpanInclusiveExclusive); err == nil {
		t.Error("expected error for nil span")
	}
}

func TestSpannableString_RebindMoves(t *testing.T) {
	s := NewSpannableString("wave")
	span := NewSizeSpan(8)
	_ = s.SetSpan(span, 0, 1, SpanInclusiveExclusive)
	_ = s.SetSpan(span, 2, 3, SpanExclusiveExclusive)

	if s.SpanCount() != 1 {
		t.Fatalf("SpanCount() = %d, want 1", s.SpanCount())
	}
	if s.SpanStart(span) != 2 || s.SpanEnd(span) != 3 {
		t.Errorf("range = [%d, %d), want [2, 3)", s.SpanStart(span), s.SpanEnd(span))
	}
	if s.SpanFlags(span) != SpanExclusiveExclusive {
		t.Errorf("flags = %v, want SpanExclusiveExclusive", s.SpanFlags(span))
	}
}

func TestSpannableString_SameRangeReplaces(t *testing.T) {
	s := NewSpannableString("wave")
	first := NewSizeSpan(8)
	second := NewSizeSpan(20)
	other := &markerSpan{id: 99}

	_ = s.SetSpan(first, 1, 2, SpanInclusiveExclusive)
	_ = s.SetSpan(other, 1, 2, SpanInclusiveExclusive)
	_ = s.SetSpan(second, 1, 2, SpanInclusiveExclusive)

	if s.SpanStart(first) != -1 {
		t.Error("earlier size span on the same range should be replaced")
	}
	if s.SpanCount() != 2 {
		t.Errorf("SpanCount() = %d, want 2 (marker + latest size span)", s.SpanCount())
	}
	metrics := s.MetricSpansAt(1)
	if len(metrics) != 1 || metrics[0] != second {
		t.Errorf("MetricSpansAt(1) = %v, want only the latest span", metrics)
	}
}

func TestSpannableString_RepeatedBindingDoesNotAccumulate(t *testing.T) {
	s := NewSpannableString("abc")
	spans := []*SizeSpan{NewSizeSpan(1), NewSizeSpan(1), NewSizeSpan(1)}
	for frame := 0; frame < 50; frame++ {
		for i, span := range spans {
			span.SetSize(frame + i)
			if err := s.SetSpan(span, i, i+1, SpanInclusiveExclusive); err != nil {
				t.Fatal(err)
			}
		}
	}
	if s.SpanCount() != 3 {
		t.Fatalf("SpanCount() = %d, want 3", s.SpanCount())
	}
	for i := range spans {
		got := s.MetricSpansAt(i)
		if len(got) != 1 || got[0] != spans[i] {
			t.Errorf("char %d bound to %v, want its own span", i, got)
		}
	}
}

func TestSpannableString_SpansQuery(t *testing.T) {
	s := NewSpannableString("abcd")
	a, b := NewSizeSpan(1), NewSizeSpan(2)
	_ = s.SetSpan(a, 0, 2, SpanInclusiveExclusive)
	_ = s.SetSpan(b, 2, 4, SpanInclusiveExclusive)

	if got := s.Spans(0, 4); len(got) != 2 {
		t.Errorf("Spans(0,4) = %d spans, want 2", len(got))
	}
	if got := s.Spans(1, 2); len(got) != 1 || got[0] != a {
		t.Errorf("Spans(1,2) = %v, want [a]", got)
	}
	if got := s.Spans(2, 2); len(got) != 1 || got[0] != b {
		t.Errorf("Spans(2,2) = %v, want [b]", got)
	}

	s.RemoveSpan(a)
	s.RemoveSpan(a)
	if s.SpanCount() != 1 || s.SpanStart(a) != -1 {
		t.Error("RemoveSpan should unbind once and ignore repeats")
	}
}

func TestSpannableString_LongTextRebinding(t *testing.T) {
	const n = 512
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = 'a' + rune(i%26)
	}
	s := NewSpannableString(string(runes))
	spans := make([]*SizeSpan, n)
	for i := range spans {
		spans[i] = NewSizeSpan(10)
	}
	for pass := 0; pass < 3; pass++ {
		for i, span := range spans {
			span.SetSize(10 + pass)
			if err := s.SetSpan(span, i, i+1, SpanInclusiveExclusive); err != nil {
				t.Fatalf("pass %d SetSpan(%d): %v", pass, i, err)
			}
		}
	}
	if s.SpanCount() != n {
		t.Fatalf("SpanCount() = %d, want %d", s.SpanCount(), n)
	}
	for _, i := range []int{0, n / 2, n - 1} {
		got := s.MetricSpansAt(i)
		if len(got) != 1 || got[0] != spans[i] || spans[i].Size() != 12 {
			t.Errorf("rune %d: spans %v", i, got)
		}
	}
}
