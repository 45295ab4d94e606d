package autocomplete

// Key is the closed set of keys the widget reacts to.
type Key int

const (
	KeyOther Key = iota // any key the widget has no handler for
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyCodeEnter is the only key code that commits a highlighted item.
// Hosts report other codes for Enter when an input method confirms a
// composition, and those must not select anything.
const KeyCodeEnter = 13

// String returns the key name as a browser-style key identifier.
func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	default:
		return "Other"
	}
}

// KeyEvent represents a key press delivered to the input.
type KeyEvent struct {
	Key  Key
	Code int
	Rune rune
	Alt  bool
	Ctrl bool

	defaultPrevented bool
}

// PreventDefault asks the host to skip its own handling of the key.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// FocusEvent is delivered when the input gains or loses focus.
type FocusEvent struct {
	// Related is an identifier of the element on the other side of the
	// focus change, if the host knows it.
	Related string
}

// ChangeEvent carries the raw text of the input after an edit.
type ChangeEvent struct {
	Value string
}

// ClickEvent is a primary-button click on the input.
type ClickEvent struct {
	X, Y int
}
