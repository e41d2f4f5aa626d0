package graphics

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/wavetext/pkg/errors"
)

func TestSizeSpan_Absolute(t *testing.T) {
	span := NewSizeSpan(12)
	paint := TextPaint{TextSize: 40, Density: 3}

	span.UpdateDrawState(&paint)
	if paint.TextSize != 12 {
		t.Errorf("draw TextSize = %v, want 12", paint.TextSize)
	}

	paint.TextSize = 40
	span.UpdateMeasureState(&paint)
	if paint.TextSize != 12 {
		t.Errorf("measure TextSize = %v, want 12", paint.TextSize)
	}
}

func TestSizeSpan_Dip(t *testing.T) {
	span := NewSizeSpanDip(12, true)
	paint := TextPaint{Density: 2.5}

	span.UpdateDrawState(&paint)
	if paint.TextSize != 30 {
		t.Errorf("draw TextSize = %v, want 30", paint.TextSize)
	}
	span.UpdateMeasureState(&paint)
	if paint.TextSize != 30 {
		t.Errorf("measure TextSize = %v, want 30", paint.TextSize)
	}
	if !span.Dip() {
		t.Error("Dip() = false, want true")
	}
}

func TestSizeSpan_SetSize(t *testing.T) {
	span := NewSizeSpan(1)
	span.SetSize(-4)
	if span.Size() != -4 {
		t.Errorf("Size() = %d, want -4 (no validation)", span.Size())
	}
	if span.SpanTypeID() != AbsoluteSizeSpanID || AbsoluteSizeSpanID != 16 {
		t.Errorf("SpanTypeID() = %d, want 16", span.SpanTypeID())
	}
	if span.DescribeContents() != 0 {
		t.Error("DescribeContents() should be 0")
	}
}

func TestSizeSpan_Binary(t *testing.T) {
	tests := []struct {
		size int
		dip  bool
		want []byte
	}{
		{16, false, []byte{16, 0, 0, 0, 0, 0, 0, 0}},
		{300, true, []byte{0x2c, 0x01, 0, 0, 1, 0, 0, 0}},
		{-1, false, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		data, err := NewSizeSpanDip(tt.size, tt.dip).MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}
		if string(data) != string(tt.want) {
			t.Errorf("MarshalBinary(%d, %v) = %v, want %v", tt.size, tt.dip, data, tt.want)
		}
		var got SizeSpan
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		if got.Size() != tt.size || got.Dip() != tt.dip {
			t.Errorf("decoded (%d, %v), want (%d, %v)", got.Size(), got.Dip(), tt.size, tt.dip)
		}
	}
}

func TestSizeSpan_UnmarshalShort(t *testing.T) {
	var s SizeSpan
	err := s.UnmarshalBinary([]byte{1, 2, 3})
	var we *errors.WaveError
	if !stderrors.As(err, &we) || we.Kind != errors.KindRange {
		t.Fatalf("expected KindRange WaveError, got %v", err)
	}
}
