// Package rendering lays out and rasterizes span-annotated text.
//
// It is the draw and measure pass that consults [graphics.MetricAffectingSpan]
// bindings: every character starts from the base paint, each span covering
// it adjusts the paint, and the resolved size picks the font face.
package rendering

import (
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/wavetext/pkg/errors"
	"github.com/go-drift/wavetext/pkg/graphics"
)

const (
	// defaultFontSize is used when the base paint has no size.
	defaultFontSize = 16
	// maxFaceSize caps the pixel size of a cached face.
	maxFaceSize = 1024
)

// Glyph is one laid-out character.
type Glyph struct {
	Rune    rune
	Size    float64
	X       float64
	Advance float64
	Ascent  float64
	Descent float64
	Color   graphics.Color
}

// TextLayout is a single measured line of text.
type TextLayout struct {
	Glyphs []Glyph
	Width  float64
	Height float64
	// Ascent is the distance from the top of the line to the shared baseline.
	Ascent float64
}

// Bounds returns the pixel rectangle covered by the layout at origin.
func (l *TextLayout) Bounds(origin image.Point) image.Rectangle {
	return image.Rect(origin.X, origin.Y,
		origin.X+int(math.Ceil(l.Width)), origin.Y+int(math.Ceil(l.Height)))
}

// TextRenderer resolves faces from a single font and caches one face per
// pixel size. It is safe for concurrent use.
type TextRenderer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[fixed.Int26_6]font.Face
}

var (
	defaultRenderer     *TextRenderer
	defaultRendererErr  error
	defaultRendererOnce sync.Once
)

// NewTextRenderer parses TrueType or OpenType font data.
func NewTextRenderer(fontData []byte) (*TextRenderer, error) {
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, &errors.WaveError{Op: "rendering.NewTextRenderer", Kind: errors.KindInit, Err: err}
	}
	return &TextRenderer{font: f, faces: make(map[fixed.Int26_6]font.Face)}, nil
}

// Default returns a shared renderer using the bundled Go Regular font.
func Default() (*TextRenderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewTextRenderer(defaultFontData())
		if defaultRendererErr != nil {
			errors.Report(&errors.WaveError{
				Op:   "rendering.Default",
				Kind: errors.KindInit,
				Err:  defaultRendererErr,
			})
		}
	})
	return defaultRenderer, defaultRendererErr
}

// Face returns the face for a pixel size, or nil for sizes that draw nothing.
func (r *TextRenderer) Face(size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, nil
	}
	if size > maxFaceSize {
		size = maxFaceSize
	}
	key := fixed.Int26_6(math.Round(size * 64))

	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(key) / 64,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &errors.WaveError{Op: "rendering.TextRenderer.Face", Kind: errors.KindRender, Err: err}
	}
	r.faces[key] = face
	return face, nil
}

// CachedFaces returns the number of faces created so far.
func (r *TextRenderer) CachedFaces() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.faces)
}

// Layout measures s on a single line. Each character's size comes from the
// base paint adjusted by the measure state of every span covering it.
func (r *TextRenderer) Layout(s *graphics.SpannableString, base graphics.TextPaint) (*TextLayout, error) {
	return r.layout(s, base, func(span graphics.MetricAffectingSpan, p *graphics.TextPaint) {
		span.UpdateMeasureState(p)
	})
}

func (r *TextRenderer) layout(s *graphics.SpannableString, base graphics.TextPaint,
	apply func(graphics.MetricAffectingSpan, *graphics.TextPaint)) (*TextLayout, error) {
	if base.TextSize <= 0 {
		base.TextSize = defaultFontSize
	}
	if base.Density <= 0 {
		base.Density = 1
	}

	runes := s.Runes()
	l := &TextLayout{Glyphs: make([]Glyph, 0, len(runes))}
	var maxDescent float64
	x := 0.0
	for i, ch := range runes {
		p := base
		for _, span := range s.MetricSpansAt(i) {
			apply(span, &p)
		}
		g := Glyph{Rune: ch, Size: p.TextSize, X: x, Color: p.Color}
		face, err := r.Face(p.TextSize)
		if err != nil {
			return nil, err
		}
		if face != nil {
			adv, _ := face.GlyphAdvance(ch)
			m := face.Metrics()
			g.Advance = fixedToFloat(adv)
			g.Ascent = fixedToFloat(m.Ascent)
			g.Descent = fixedToFloat(m.Descent)
		}
		x += g.Advance
		l.Ascent = math.Max(l.Ascent, g.Ascent)
		maxDescent = math.Max(maxDescent, g.Descent)
		l.Glyphs = append(l.Glyphs, g)
	}
	l.Width = x
	l.Height = l.Ascent + maxDescent
	return l, nil
}

// Draw lays s out with the spans' draw state and draws it into dst with the
// top-left of the line at origin.
func (r *TextRenderer) Draw(dst draw.Image, s *graphics.SpannableString, base graphics.TextPaint, origin image.Point) (*TextLayout, error) {
	l, err := r.layout(s, base, func(span graphics.MetricAffectingSpan, p *graphics.TextPaint) {
		span.UpdateDrawState(p)
	})
	if err != nil {
		return nil, err
	}
	baseline := float64(origin.Y) + l.Ascent
	for _, g := range l.Glyphs {
		face, err := r.Face(g.Size)
		if err != nil {
			return nil, err
		}
		if face == nil {
			continue
		}
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(g.Color.NRGBA()),
			Face: face,
			Dot:  fixed.Point26_6{X: floatToFixed(float64(origin.X) + g.X), Y: floatToFixed(baseline)},
		}
		d.DrawString(string(g.Rune))
	}
	return l, nil
}

// Rasterize draws s onto a new image sized to the text plus padding on
// every side, filled with background first.
func (r *TextRenderer) Rasterize(s *graphics.SpannableString, base graphics.TextPaint, background graphics.Color, padding int) (*image.RGBA, *TextLayout, error) {
	l, err := r.layout(s, base, func(span graphics.MetricAffectingSpan, p *graphics.TextPaint) {
		span.UpdateDrawState(p)
	})
	if err != nil {
		return nil, nil, err
	}
	bounds := l.Bounds(image.Point{})
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx()+2*padding, bounds.Dy()+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	if _, err := r.Draw(img, s, base, image.Pt(padding, padding)); err != nil {
		return nil, nil, err
	}
	return img, l, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
