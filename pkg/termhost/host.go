// Package termhost previews an [widgets.AnimatedText] in a terminal.
//
// A terminal cannot change font sizes, so each character is drawn under a
// bar whose height follows the size its span resolves to. The host runs an
// [animation.LoopScheduler] as its UI thread; terminal events are posted
// onto the loop so the widget is only ever touched from one goroutine.
package termhost

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/wavetext/pkg/animation"
	"github.com/go-drift/wavetext/pkg/graphics"
	"github.com/go-drift/wavetext/pkg/widgets"
)

const (
	barRune    = '█'
	columnStep = 2
	// reservedRows holds the status line, a gap and the text row.
	reservedRows = 3
)

// Host draws one widget on a tcell screen.
type Host struct {
	screen tcell.Screen
	loop   *animation.LoopScheduler
	widget *widgets.AnimatedText

	visible bool
	barFg   tcell.Style
	textFg  tcell.Style
	status  tcell.Style
}

// New returns a host drawing to screen. The screen must already be
// initialised; callers own Fini.
func New(screen tcell.Screen, loop *animation.LoopScheduler) *Host {
	return &Host{
		screen:  screen,
		loop:    loop,
		visible: true,
		barFg:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
		textFg:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		status:  tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Redraw is the widget's redraw hook; pass it with [widgets.OnRedraw].
func (h *Host) Redraw(*graphics.SpannableString) {
	h.draw()
}

// Run attaches w, processes ticks and key events until ctx is cancelled or
// the user quits, then detaches w. Quitting or running out of time is not
// an error.
func (h *Host) Run(ctx context.Context, w *widgets.AnimatedText) error {
	h.widget = w
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go h.pollEvents(cancel)
	h.loop.Post(func() {
		w.OnAttachedToWindow()
		h.draw()
	})

	err := h.loop.Run(ctx)
	w.OnDetachedFromWindow()
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (h *Host) pollEvents(cancel context.CancelFunc) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			cancel()
			return
		}
		if !h.loop.Post(func() { h.handle(ev, cancel) }) {
			return
		}
	}
}

// handle runs on the loop.
func (h *Host) handle(ev tcell.Event, quit context.CancelFunc) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			quit()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			quit()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			h.widget.OnTap()
			h.draw()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'v':
			h.visible = !h.visible
			if h.visible {
				h.widget.OnVisibilityChanged(widgets.Visible)
			} else {
				h.widget.OnVisibilityChanged(widgets.Invisible)
			}
			h.draw()
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.draw()
	}
}

func (h *Host) draw() {
	w := h.widget
	if w == nil {
		return
	}
	h.screen.Clear()
	width, height := h.screen.Size()

	state := "animating"
	switch {
	case !h.visible:
		state = "hidden"
	case !w.IsAnimating():
		state = "paused"
	}
	h.putString(0, 0, fmt.Sprintf("wavetext  %-9s phase=%7.2f  [space] toggle  [v] visibility  [q] quit",
		state, w.Phase()), h.status)

	if h.visible {
		rows := height - reservedRows
		cols := Columns(w.Markup(), w.Paint(), w.MaxSize(), rows)
		x0 := (width - len(cols)*columnStep) / 2
		if x0 < 0 {
			x0 = 0
		}
		textY := height - 1
		for i, c := range cols {
			x := x0 + i*columnStep
			if x >= width {
				break
			}
			for j := 0; j < c.Height; j++ {
				h.screen.SetContent(x, textY-1-j, barRune, nil, h.barFg)
			}
			h.screen.SetContent(x, textY, c.Rune, nil, h.textFg)
		}
	}
	h.screen.Show()
}

func (h *Host) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
