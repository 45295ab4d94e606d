package autocomplete

import "time"

// Rect is a box in host coordinates.
type Rect struct {
	Left, Top, Width, Height int
}

// Bottom returns the first row below the box.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right returns the first column right of the box.
func (r Rect) Right() int { return r.Left + r.Width }

// Margins are the raw computed margins of the input, e.g. "2", "1px" or "auto".
type Margins struct {
	Left, Right, Bottom string
}

// InputElement is the mounted text input.
type InputElement interface {
	Focus()
	Blur()
	Click()
	Select()
	Focused() bool
	BoundingRect() Rect
	ComputedMargins() Margins
	SetSelectionRange(start, end int)
	SetRangeText(replacement string, start, end int)
	CheckValidity() bool
	SetCustomValidity(message string)
}

// MenuElement is the mounted menu container.
type MenuElement interface {
	ScrollTop() int
	SetScrollTop(top int)
	ClientHeight() int
}

// ItemElement is one mounted menu row, positioned relative to the menu content.
type ItemElement interface {
	OffsetTop() int
	OffsetHeight() int
}

// ScrollOffset is the page scroll position captured across a phantom blur.
type ScrollOffset struct {
	X, Y int
}

// Window is the scrollable page hosting the widget.
type Window interface {
	ScrollOffset() ScrollOffset
	ScrollTo(x, y int)
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f on the widget's event loop after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// scrollIntoView moves the menu so the item is fully visible, only if it
// is not already.
func scrollIntoView(menu MenuElement, item ItemElement) {
	if menu == nil || item == nil {
		return
	}
	top := item.OffsetTop()
	bottom := top + item.OffsetHeight()
	viewTop := menu.ScrollTop()
	viewBottom := viewTop + menu.ClientHeight()

	switch {
	case top < viewTop:
		menu.SetScrollTop(top)
	case bottom > viewBottom:
		next := bottom - menu.ClientHeight()
		if next > top {
			next = top
		}
		menu.SetScrollTop(next)
	}
}
