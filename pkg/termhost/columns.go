package termhost

import (
	"math"

	"github.com/go-drift/wavetext/pkg/graphics"
)

// Column is one character of the terminal preview: the glyph plus a bar
// whose height stands in for its font size.
type Column struct {
	Rune   rune
	Size   float64
	Height int
}

// Columns resolves each character's draw size from base and the spans of s
// and scales it to at most rows cells, where maxSize fills every row.
func Columns(s *graphics.SpannableString, base graphics.TextPaint, maxSize float64, rows int) []Column {
	runes := s.Runes()
	cols := make([]Column, len(runes))
	for i, r := range runes {
		p := base
		for _, span := range s.MetricSpansAt(i) {
			span.UpdateDrawState(&p)
		}
		h := 0
		if maxSize > 0 && rows > 0 && p.TextSize > 0 {
			h = int(math.Round(p.TextSize / maxSize * float64(rows)))
			h = min(max(h, 0), rows)
		}
		cols[i] = Column{Rune: r, Size: p.TextSize, Height: h}
	}
	return cols
}
