package widgets

// Visibility is a view's visibility flag as reported by the host.
type Visibility int

const (
	// Visible views are drawn.
	Visible Visibility = iota
	// Invisible views keep their space but are not drawn.
	Invisible
	// Gone views take no space and are not drawn.
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Lifecycle receives the host's display-tree notifications. Hosts call
// these on their UI thread.
type Lifecycle interface {
	// OnAttachedToWindow is called when the view joins the visible display tree.
	OnAttachedToWindow()
	// OnDetachedFromWindow is called when the view leaves the display tree.
	OnDetachedFromWindow()
	// OnVisibilityChanged is called when the view's visibility flag changes.
	OnVisibilityChanged(v Visibility)
}

// Tappable receives tap (click) events from the host.
type Tappable interface {
	OnTap()
}
