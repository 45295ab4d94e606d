package autocomplete

import (
	"strings"
	"testing"
	"time"
)

type usState struct {
	Name   string
	Abbr   string
	Header bool
}

type selection struct {
	value string
	item  usState
}

type fakeInput struct {
	focused  bool
	rect     Rect
	margins  Margins
	selStart int
	selEnd   int
	selects  int
	clicks   int
	validity bool
	message  string
	text     string
	props    InputProps
}

func (f *fakeInput) Focus() {
	if f.focused {
		return
	}
	f.focused = true
	if f.props.OnFocus != nil {
		f.props.OnFocus(FocusEvent{})
	}
}

func (f *fakeInput) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	if f.props.OnBlur != nil {
		f.props.OnBlur(FocusEvent{})
	}
}

func (f *fakeInput) Click() {
	f.clicks++
	if f.props.OnClick != nil {
		f.props.OnClick(ClickEvent{})
	}
}

func (f *fakeInput) Select()                  { f.selects++ }
func (f *fakeInput) Focused() bool            { return f.focused }
func (f *fakeInput) BoundingRect() Rect       { return f.rect }
func (f *fakeInput) ComputedMargins() Margins { return f.margins }
func (f *fakeInput) CheckValidity() bool      { return f.validity }
func (f *fakeInput) SetCustomValidity(m string) {
	f.message = m
}

func (f *fakeInput) SetSelectionRange(start, end int) {
	f.selStart, f.selEnd = start, end
}

func (f *fakeInput) SetRangeText(replacement string, start, end int) {
	rs := []rune(f.text)
	f.text = string(rs[:start]) + replacement + string(rs[end:])
}

type fakeMenu struct {
	scrollTop int
	height    int
}

func (m *fakeMenu) ScrollTop() int       { return m.scrollTop }
func (m *fakeMenu) SetScrollTop(top int) { m.scrollTop = top }
func (m *fakeMenu) ClientHeight() int    { return m.height }

type fakeItem struct {
	top, height int
}

func (i *fakeItem) OffsetTop() int    { return i.top }
func (i *fakeItem) OffsetHeight() int { return i.height }

type fakeWindow struct {
	x, y    int
	scrolls []ScrollOffset
}

func (w *fakeWindow) ScrollOffset() ScrollOffset { return ScrollOffset{X: w.x, Y: w.y} }

func (w *fakeWindow) ScrollTo(x, y int) {
	w.x, w.y = x, y
	w.scrolls = append(w.scrolls, ScrollOffset{X: x, Y: y})
}

type fakeJob struct {
	f       func()
	stopped bool
}

func (j *fakeJob) Stop() bool {
	was := !j.stopped
	j.stopped = true
	return was
}

type fakeScheduler struct {
	jobs []*fakeJob
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	j := &fakeJob{f: f}
	s.jobs = append(s.jobs, j)
	return j
}

func (s *fakeScheduler) run() {
	jobs := s.jobs
	s.jobs = nil
	for _, j := range jobs {
		if !j.stopped {
			j.stopped = true
			j.f()
		}
	}
}

// harness plays the host: it re-renders on every flush, keeps the props
// the way an application would, and records every callback.
type harness struct {
	t          *testing.T
	w          *Autocomplete[usState, string]
	props      Props[usState]
	view       View[string]
	input      *fakeInput
	menu       *fakeMenu
	window     *fakeWindow
	sched      *fakeScheduler
	renders    int
	changes    []string
	selections []selection
	visibility []bool
}

func prefixMatch(s usState, v string) bool {
	return strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(v))
}

func states(names ...string) []usState {
	out := make([]usState, len(names))
	for i, n := range names {
		out[i] = usState{Name: n}
	}
	return out
}

func newHarness(t *testing.T, items []usState, mutate ...func(*Props[usState])) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		input:  &fakeInput{rect: Rect{Left: 2, Top: 1, Width: 20, Height: 1}, validity: true},
		menu:   &fakeMenu{height: 3},
		window: &fakeWindow{},
		sched:  &fakeScheduler{},
	}

	p := DefaultProps[usState]()
	p.Items = items
	p.GetItemValue = func(s usState) string { return s.Name }
	p.ShouldItemRender = prefixMatch
	p.IsItemSelectable = func(s usState) bool { return !s.Header }
	p.OnChange = func(_ ChangeEvent, v string) {
		h.changes = append(h.changes, v)
		h.props.Value = v
		h.w.SetProps(h.props)
	}
	p.OnSelect = func(v string, item usState) {
		h.selections = append(h.selections, selection{v, item})
	}
	p.OnMenuVisibilityChange = func(open bool) {
		h.visibility = append(h.visibility, open)
	}
	for _, m := range mutate {
		m(&p)
	}
	h.props = p

	renderers := Renderers[usState, string]{
		RenderInput: func(ip InputProps) string { return ip.Value },
		RenderItem: func(s usState, highlighted bool, _ ItemStyle) string {
			if highlighted {
				return "*" + s.Name
			}
			return s.Name
		},
		RenderMenu: func(rows []ItemView[string], _ string, _ MenuStyle) string {
			parts := make([]string, len(rows))
			for i, r := range rows {
				parts[i] = r.Node
			}
			return strings.Join(parts, "|")
		},
	}
	h.w = New(p, renderers, WithScheduler(h.sched), WithWindow(h.window), WithID("test"))
	h.w.Mount(h.present)
	return h
}

func (h *harness) present(v View[string]) {
	h.view = v
	h.renders++
	h.input.props = v.InputProps
	v.InputProps.Ref(h.input)
	if v.Menu != nil {
		v.Menu.Ref(h.menu)
		for _, row := range v.Menu.Items {
			row.Ref(&fakeItem{top: row.Index, height: 1})
		}
	}
}

func (h *harness) flush() {
	h.w.Flush(h.present)
}

func (h *harness) press(k Key) *KeyEvent {
	code := 0
	if k == KeyEnter {
		code = KeyCodeEnter
	}
	return h.pressCode(k, code)
}

func (h *harness) pressCode(k Key, code int) *KeyEvent {
	ev := &KeyEvent{Key: k, Code: code}
	h.view.InputProps.OnKeyDown(ev)
	h.flush()
	return ev
}

func (h *harness) typeText(v string) {
	h.press(KeyOther)
	h.view.InputProps.OnChange(ChangeEvent{Value: v})
	h.flush()
}

func (h *harness) focus() {
	h.input.Focus()
	h.flush()
}

func (h *harness) blur() {
	h.input.Blur()
	h.flush()
}

func (h *harness) setProps(f func(*Props[usState])) {
	f(&h.props)
	h.w.SetProps(h.props)
	h.flush()
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
