package graphics

import (
	"encoding/binary"

	"github.com/go-drift/wavetext/pkg/errors"
)

// AbsoluteSizeSpanID is the span type identifier shared with the platform's
// absolute size span, so serialized markup stays interchangeable.
const AbsoluteSizeSpanID = 16

// sizeSpanWireLen is the length of a marshaled SizeSpan: two int32 fields.
const sizeSpanWireLen = 8

// SizeSpan sets an absolute font size for the characters it is bound to.
//
// The size is mutable so an animation can reuse one span per character and
// rebind it each frame instead of allocating. When Dip is set the size is
// in density-independent units and is multiplied by [TextPaint.Density].
type SizeSpan struct {
	size int
	dip  bool
}

// NewSizeSpan returns a span holding an absolute pixel size.
func NewSizeSpan(size int) *SizeSpan {
	return &SizeSpan{size: size}
}

// NewSizeSpanDip returns a span whose size is density-relative when dip is true.
func NewSizeSpanDip(size int, dip bool) *SizeSpan {
	return &SizeSpan{size: size, dip: dip}
}

// SpanTypeID returns [AbsoluteSizeSpanID].
func (s *SizeSpan) SpanTypeID() int { return AbsoluteSizeSpanID }

// DescribeContents reports no special contents; it exists for parity with
// the platform's parcelable span contract.
func (s *SizeSpan) DescribeContents() int { return 0 }

// Size returns the held size.
func (s *SizeSpan) Size() int { return s.size }

// SetSize replaces the held size. It takes effect on the next draw or
// measure pass.
func (s *SizeSpan) SetSize(size int) { s.size = size }

// Dip reports whether the size is density-relative.
func (s *SizeSpan) Dip() bool { return s.dip }

// UpdateDrawState sets the paint's text size.
func (s *SizeSpan) UpdateDrawState(p *TextPaint) { s.apply(p) }

// UpdateMeasureState sets the paint's text size.
func (s *SizeSpan) UpdateMeasureState(p *TextPaint) { s.apply(p) }

func (s *SizeSpan) apply(p *TextPaint) {
	if s.dip {
		p.TextSize = float64(s.size) * p.Density
	} else {
		p.TextSize = float64(s.size)
	}
}

// MarshalBinary encodes the span as size then dip flag, each a
// little-endian int32.
func (s *SizeSpan) MarshalBinary() ([]byte, error) {
	buf := make([]byte, sizeSpanWireLen)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(s.size)))
	var dip uint32
	if s.dip {
		dip = 1
	}
	binary.LittleEndian.PutUint32(buf[4:8], dip)
	return buf, nil
}

// UnmarshalBinary decodes a span written by MarshalBinary.
func (s *SizeSpan) UnmarshalBinary(data []byte) error {
	if len(data) < sizeSpanWireLen {
		return errors.New("graphics.SizeSpan.UnmarshalBinary", errors.KindRange,
			"need %d bytes, got %d", sizeSpanWireLen, len(data))
	}
	s.size = int(int32(binary.LittleEndian.Uint32(data[0:4])))
	s.dip = binary.LittleEndian.Uint32(data[4:8]) != 0
	return nil
}
