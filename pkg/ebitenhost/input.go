package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input the host reacts to.
type Input interface {
	// Focused reports whether the window has focus; losing it hides the text.
	Focused() bool
	// Tapped reports a click, touch or space press since the last frame.
	Tapped() bool
	// Quit reports a request to close the window.
	Quit() bool
}

type ebitenInput struct {
	touches []ebiten.TouchID
}

func (in *ebitenInput) Focused() bool { return ebiten.IsFocused() }

func (in *ebitenInput) Tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	return len(in.touches) > 0
}

func (in *ebitenInput) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}
