package tui

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
)

// focusOwner moves keyboard focus between the controls of a page.
type focusOwner interface {
	focus(f focusable)
	focusedControl() focusable
}

// focusable is a control that can hold keyboard focus.
type focusable interface {
	name() string
	setFocused(focused bool, related string)
}

// TextField is the single line input the widget drives. It mirrors the
// value it was last rendered with and reports edits through OnChange; it
// never adopts an edited value on its own.
type TextField struct {
	buf     *arraylist.List[rune]
	caret   int
	anchor  int
	offset  int
	applied string

	rect    autocomplete.Rect
	margins autocomplete.Margins
	focused bool
	owner   focusOwner

	attrs  autocomplete.Attrs
	custom string

	// edit waiting for the host to render the proposed value
	proposed      string
	proposedCaret int
	hasProposal   bool

	onFocus   func(autocomplete.FocusEvent)
	onBlur    func(autocomplete.FocusEvent)
	onChange  func(autocomplete.ChangeEvent)
	onKeyDown func(*autocomplete.KeyEvent)
	onClick   func(autocomplete.ClickEvent)
}

// NewTextField creates an empty field.
func NewTextField(owner focusOwner, margins autocomplete.Margins) *TextField {
	return &TextField{
		buf:     arraylist.New[rune](),
		owner:   owner,
		margins: margins,
		attrs:   autocomplete.Attrs{},
	}
}

func (t *TextField) name() string {
	if id := t.attrs["id"]; id != "" {
		return id
	}
	return "input"
}

// Apply takes the props of a render: the controlled value, attributes
// and the handlers to report to.
func (t *TextField) Apply(p autocomplete.InputProps) {
	t.attrs = p.Attrs
	t.onFocus = p.OnFocus
	t.onBlur = p.OnBlur
	t.onChange = p.OnChange
	t.onKeyDown = p.OnKeyDown
	t.onClick = p.OnClick

	if p.Value != t.applied {
		caret := len([]rune(p.Value))
		if t.hasProposal && p.Value == t.proposed {
			caret = t.proposedCaret
		}
		t.setText([]rune(p.Value))
		t.caret, t.anchor = caret, caret
		t.applied = p.Value
	}
	t.hasProposal = false
}

// Value returns the text currently shown.
func (t *TextField) Value() string {
	return string(t.buf.Values())
}

// Attr returns a pass-through attribute from the last render.
func (t *TextField) Attr(key string) string {
	return t.attrs[key]
}

// Selection returns the selected rune range; start equals end when
// nothing is selected.
func (t *TextField) Selection() (start, end int) {
	return min(t.anchor, t.caret), max(t.anchor, t.caret)
}

// Caret returns the caret position in runes.
func (t *TextField) Caret() int {
	return t.caret
}

func (t *TextField) setText(runes []rune) {
	t.buf.Clear()
	t.buf.Add(runes...)
}

func (t *TextField) clamp(i int) int {
	return max(0, min(i, t.buf.Size()))
}

// Focus moves keyboard focus to the field.
func (t *TextField) Focus() {
	t.owner.focus(t)
}

// Blur gives up keyboard focus.
func (t *TextField) Blur() {
	if t.owner.focusedControl() == focusable(t) {
		t.owner.focus(nil)
	}
}

func (t *TextField) setFocused(focused bool, related string) {
	if t.focused == focused {
		return
	}
	t.focused = focused
	if focused {
		if t.onFocus != nil {
			t.onFocus(autocomplete.FocusEvent{Related: related})
		}
		return
	}
	if t.onBlur != nil {
		t.onBlur(autocomplete.FocusEvent{Related: related})
	}
}

// Click dispatches a click at the start of the field.
func (t *TextField) Click() {
	t.click(autocomplete.ClickEvent{})
}

func (t *TextField) click(ev autocomplete.ClickEvent) {
	if t.onClick != nil {
		t.onClick(ev)
	}
}

// Select selects all text.
func (t *TextField) Select() {
	t.anchor = 0
	t.caret = t.buf.Size()
}

// Focused reports whether the field holds keyboard focus.
func (t *TextField) Focused() bool {
	return t.focused
}

// BoundingRect returns the field's box in screen cells.
func (t *TextField) BoundingRect() autocomplete.Rect {
	return t.rect
}

// ComputedMargins returns the configured margins around the field.
func (t *TextField) ComputedMargins() autocomplete.Margins {
	return t.margins
}

// SetSelectionRange selects runes [start, end). The caret ends up at end.
func (t *TextField) SetSelectionRange(start, end int) {
	start, end = t.clamp(start), t.clamp(end)
	if start > end {
		start = end
	}
	t.anchor, t.caret = start, end
}

// SetRangeText replaces runes [start, end) in the shown text without
// reporting a change. The replacement stays until the host renders a
// different value.
func (t *TextField) SetRangeText(replacement string, start, end int) {
	start, end = t.clamp(start), t.clamp(end)
	if start > end {
		start, end = end, start
	}
	for i := start; i < end; i++ {
		t.buf.Remove(start)
	}
	repl := []rune(replacement)
	t.buf.Insert(start, repl...)
	t.anchor, t.caret = start, start+len(repl)
}

// CheckValidity applies the required and maxlength attributes and any
// custom validity message.
func (t *TextField) CheckValidity() bool {
	return t.ValidationMessage() == ""
}

// SetCustomValidity marks the field invalid with message; an empty
// message clears it.
func (t *TextField) SetCustomValidity(message string) {
	t.custom = message
}

// ValidationMessage explains why the field is invalid, or is empty.
func (t *TextField) ValidationMessage() string {
	if t.custom != "" {
		return t.custom
	}
	if _, ok := t.attrs["required"]; ok && t.buf.Empty() {
		return "Please fill out this field."
	}
	if n, err := strconv.Atoi(t.attrs["maxlength"]); err == nil && n >= 0 && t.buf.Size() > n {
		return fmt.Sprintf("Please shorten this text to %d characters or less (you are currently using %d characters).", n, t.buf.Size())
	}
	return ""
}

// KeyDown hands a key to the widget and reports whether the field
// should go on with its own handling.
func (t *TextField) KeyDown(ev *tcell.EventKey) bool {
	ke := keyEvent(ev)
	if t.onKeyDown != nil {
		t.onKeyDown(&ke)
	}
	return !ke.DefaultPrevented()
}

// Edit applies the default editing behaviour of a key. It reports
// whether the key was used.
func (t *TextField) Edit(ev *tcell.EventKey) bool {
	extend := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyRune:
		t.Insert(string(ev.Rune()))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.deleteBackward()
	case tcell.KeyDelete:
		t.deleteForward()
	case tcell.KeyCtrlU:
		t.propose(t.runes()[t.caret:], 0)
	case tcell.KeyCtrlA:
		t.Select()
	case tcell.KeyLeft:
		t.moveTo(prevBoundary(t.runes(), t.caret), extend)
	case tcell.KeyRight:
		t.moveTo(nextBoundary(t.runes(), t.caret), extend)
	case tcell.KeyHome:
		t.moveTo(0, extend)
	case tcell.KeyEnd:
		t.moveTo(t.buf.Size(), extend)
	default:
		return false
	}
	return true
}

// Insert replaces the selection with text.
func (t *TextField) Insert(text string) {
	runes := t.runes()
	start, end := t.Selection()
	ins := []rune(text)
	next := make([]rune, 0, len(runes)-(end-start)+len(ins))
	next = append(next, runes[:start]...)
	next = append(next, ins...)
	next = append(next, runes[end:]...)
	t.propose(next, start+len(ins))
}

func (t *TextField) deleteBackward() {
	runes := t.runes()
	start, end := t.Selection()
	if start == end {
		if start == 0 {
			return
		}
		start = prevBoundary(runes, start)
	}
	t.propose(append(runes[:start:start], runes[end:]...), start)
}

func (t *TextField) deleteForward() {
	runes := t.runes()
	start, end := t.Selection()
	if start == end {
		if end == len(runes) {
			return
		}
		end = nextBoundary(runes, end)
	}
	t.propose(append(runes[:start:start], runes[end:]...), start)
}

func (t *TextField) moveTo(i int, extend bool) {
	t.caret = t.clamp(i)
	if !extend {
		t.anchor = t.caret
	}
}

func (t *TextField) runes() []rune {
	return t.buf.Values()
}

// propose reports an edit. The caret lands at caret once the host renders
// the proposed value.
func (t *TextField) propose(runes []rune, caret int) {
	if t.onChange == nil {
		return
	}
	t.proposed = string(runes)
	t.proposedCaret = caret
	t.hasProposal = true
	t.onChange(autocomplete.ChangeEvent{Value: t.proposed})
}

// PlaceCaret moves the caret to the rune under screen column x.
func (t *TextField) PlaceCaret(x int) {
	runes := t.runes()
	col := t.rect.Left
	i := t.offset
	for i < len(runes) {
		w := runewidth.RuneWidth(runes[i])
		if col+w > x {
			break
		}
		col += w
		i++
	}
	t.caret, t.anchor = i, i
}

func (t *TextField) scrollToCaret() {
	runes := t.runes()
	if t.caret < t.offset {
		t.offset = t.caret
	}
	for t.offset < t.caret && runewidth.StringWidth(string(runes[t.offset:t.caret])) >= t.rect.Width {
		t.offset++
	}
	t.offset = t.clamp(t.offset)
}

// Draw paints the text and, when focused, places the terminal cursor.
func (t *TextField) Draw(s tcell.Screen, th *Theme) {
	if t.rect.Width <= 0 {
		return
	}
	style := th.Field
	if t.focused {
		style = th.FieldFocused
	}
	fill(s, t.rect.Left, t.rect.Top, t.rect.Width, style)

	maxX := t.rect.Right()
	if t.buf.Empty() {
		if ph := t.attrs["placeholder"]; ph != "" {
			drawText(s, t.rect.Left, t.rect.Top, maxX, ph, th.Placeholder)
		}
	}

	t.scrollToCaret()
	runes := t.runes()
	start, end := t.Selection()
	col := t.rect.Left
	cursor := col
	for i := t.offset; i < len(runes); i++ {
		if i == t.caret {
			cursor = col
		}
		w := runewidth.RuneWidth(runes[i])
		if w == 0 {
			continue
		}
		if col+w > maxX {
			break
		}
		cell := style
		if i >= start && i < end {
			cell = th.Selection
		}
		s.SetContent(col, t.rect.Top, runes[i], nil, cell)
		col += w
	}
	if t.caret >= len(runes) {
		cursor = col
	}
	if t.focused && cursor < maxX {
		s.ShowCursor(cursor, t.rect.Top)
	}
}

// graphemeStarts returns the rune offsets where grapheme clusters begin,
// followed by the total rune count.
func graphemeStarts(runes []rune) []int {
	starts := make([]int, 0, len(runes)+1)
	pos := 0
	g := uniseg.NewGraphemes(string(runes))
	for g.Next() {
		starts = append(starts, pos)
		pos += len(g.Runes())
	}
	return append(starts, pos)
}

func prevBoundary(runes []rune, i int) int {
	starts := graphemeStarts(runes)
	for j := len(starts) - 1; j >= 0; j-- {
		if starts[j] < i {
			return starts[j]
		}
	}
	return 0
}

func nextBoundary(runes []rune, i int) int {
	for _, s := range graphemeStarts(runes) {
		if s > i {
			return s
		}
	}
	return len(runes)
}
