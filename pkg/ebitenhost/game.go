// Package ebitenhost runs an [widgets.AnimatedText] inside an Ebitengine
// game loop.
//
// Ebitengine calls Update at a fixed tick rate on its main thread, which
// makes it the host's UI thread: every Update pumps a
// [animation.QueueScheduler], so widget ticks run between frames and never
// concurrently with Draw.
package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/errors"
	"github.com/go-drift/wavetext/pkg/graphics"
	"github.com/go-drift/wavetext/pkg/rendering"
	"github.com/go-drift/wavetext/pkg/widgets"
)

// Options configures a Game.
type Options struct {
	Width, Height int
	Title         string
	Background    graphics.Color
	// Paused stops the animation right after the first attach.
	Paused bool
	// OnToggle is called after a tap with the new animating state.
	OnToggle func(animating bool)
	// Input overrides the Ebitengine input source.
	Input Input
}

// Game implements ebiten.Game for a single animated text.
type Game struct {
	widget    *widgets.AnimatedText
	scheduler *animation.QueueScheduler
	renderer  *rendering.TextRenderer
	opts      Options
	input     Input

	attached bool
	focused  bool
	frame    *image.RGBA
	canvas   *ebiten.Image
	lastErr  string
}

// NewGame wraps w, whose ticks must be posted to scheduler.
func NewGame(w *widgets.AnimatedText, scheduler *animation.QueueScheduler, renderer *rendering.TextRenderer, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 160
	}
	if opts.Background == 0 {
		opts.Background = graphics.ColorWhite
	}
	in := opts.Input
	if in == nil {
		in = &ebitenInput{}
	}
	return &Game{
		widget:    w,
		scheduler: scheduler,
		renderer:  renderer,
		opts:      opts,
		input:     in,
		focused:   true,
	}
}

// Update forwards lifecycle and input to the widget and runs due ticks.
func (g *Game) Update() error {
	if !g.attached {
		g.Attach()
	}
	if g.input.Quit() {
		g.Detach()
		return ebiten.Termination
	}
	if focused := g.input.Focused(); focused != g.focused {
		g.focused = focused
		if focused {
			g.widget.OnVisibilityChanged(widgets.Visible)
		} else {
			g.widget.OnVisibilityChanged(widgets.Invisible)
		}
	}
	if g.input.Tapped() {
		g.widget.OnTap()
		if g.opts.OnToggle != nil {
			g.opts.OnToggle(g.widget.IsAnimating())
		}
	}
	g.scheduler.RunDue()
	return nil
}

// Attach reports the widget as attached to the window.
func (g *Game) Attach() {
	if g.attached {
		return
	}
	g.attached = true
	g.widget.OnAttachedToWindow()
	if g.opts.Paused {
		g.widget.Stop()
	}
}

// Detach reports the widget as removed from the window.
func (g *Game) Detach() {
	if !g.attached {
		return
	}
	g.attached = false
	g.widget.OnDetachedFromWindow()
}

// Frame rasterizes the widget's current markup.
func (g *Game) Frame() (*image.RGBA, error) {
	img, _, err := g.renderer.Rasterize(g.widget.Markup(), g.widget.Paint(), g.opts.Background, 0)
	return img, err
}

// Draw renders the current markup centered on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background.NRGBA())

	img, err := g.Frame()
	if err != nil {
		g.report(err)
		return
	}
	if img.Rect.Empty() {
		return
	}
	if g.canvas == nil || g.frame == nil || g.frame.Rect != img.Rect {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	g.frame = img
	g.canvas.WritePixels(img.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sw-img.Rect.Dx())/2, float64(sh-img.Rect.Dy())/2)
	screen.DrawImage(g.canvas, op)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// report forwards a draw error once per distinct message.
func (g *Game) report(err error) {
	if err.Error() == g.lastErr {
		return
	}
	g.lastErr = err.Error()
	errors.Report(&errors.WaveError{Op: "ebitenhost.Draw", Kind: errors.KindRender, Err: err})
}

// DeviceScale returns the density of the current monitor.
func DeviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Run opens a window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(g.widget.Wave().TicksPerSecond)
	return ebiten.RunGame(g)
}
