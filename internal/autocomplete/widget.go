// Package autocomplete implements the interaction state machine of a text
// input with a filtered suggestion menu. It does not draw anything: a host
// renders the View it produces and feeds key, focus and pointer events
// back through the handlers the View carries.
package autocomplete

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/autocomplete-go/internal/output"
)

// maxFlushPasses bounds render/commit cycles for one Flush.
const maxFlushPasses = 16

type options struct {
	id        string
	scheduler Scheduler
	window    Window
	logger    *output.Logger
}

// Option configures an Autocomplete.
type Option func(*options)

// WithScheduler sets the scheduler used for the deferred scroll restore.
// Without one the restore runs when the current Flush has settled.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithWindow sets the page whose scroll offset survives a phantom blur.
func WithWindow(w Window) Option {
	return func(o *options) { o.window = w }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *output.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithID overrides the generated widget id.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// Autocomplete is one widget instance. It is not safe for concurrent use;
// every method must be called from the host's event loop.
type Autocomplete[T, N any] struct {
	id        string
	props     Props[T]
	renderers Renderers[T, N]
	state     State

	committedProps Props[T]
	committedState State

	pending []func()
	dirty   bool
	mounted bool

	ignoreBlur   bool
	ignoreFocus  bool
	scrollOffset *ScrollOffset
	scrollTimer  Timer

	input    InputElement
	menu     MenuElement
	itemRefs map[int]ItemElement

	debug     *DebugTrace
	scheduler Scheduler
	window    Window
	ticks     []*tick
	log       *output.Logger
}

// New creates an unmounted widget.
func New[T, N any](props Props[T], renderers Renderers[T, N], opts ...Option) *Autocomplete[T, N] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.logger == nil {
		o.logger = output.GetGlobalLogger()
	}

	w := &Autocomplete[T, N]{
		id:        o.id,
		props:     props,
		renderers: renderers,
		state:     initialState(),
		itemRefs:  make(map[int]ItemElement),
		debug:     newDebugTrace(),
		scheduler: o.scheduler,
		window:    o.window,
		log:       o.logger.WithField("component", "autocomplete").WithField("widget", o.id),
	}
	w.committedProps = props
	w.committedState = w.state
	return w
}

// ID returns the widget instance id.
func (w *Autocomplete[T, N]) ID() string { return w.id }

// Props returns the current props.
func (w *Autocomplete[T, N]) Props() Props[T] { return w.props }

// State returns the current interaction state.
func (w *Autocomplete[T, N]) State() State { return w.state }

// Visibility resolves who decides visibility and whether the menu is shown.
func (w *Autocomplete[T, N]) Visibility() Visibility {
	return resolveVisibility(w.props.Open, w.state.IsOpen)
}

// IsOpen reports whether the menu is shown.
func (w *Autocomplete[T, N]) IsOpen() bool {
	return w.Visibility().Open()
}

// FilteredItems returns the filtered and sorted items for the current props.
func (w *Autocomplete[T, N]) FilteredItems() []T {
	return FilteredItems(w.props)
}

// DebugTrace returns the render snapshot trace.
func (w *Autocomplete[T, N]) DebugTrace() *DebugTrace { return w.debug }

// Dirty reports whether a render is pending.
func (w *Autocomplete[T, N]) Dirty() bool { return w.dirty }

// Mounted reports whether Mount ran and Unmount has not.
func (w *Autocomplete[T, N]) Mounted() bool { return w.mounted }

// setState applies mutate now and runs done after the next commit.
func (w *Autocomplete[T, N]) setState(mutate func(s *State), done func()) {
	mutate(&w.state)
	if done != nil {
		w.pending = append(w.pending, done)
	}
	w.dirty = true
}

// SetProps replaces the props. A highlight past the end of the new
// sequence is dropped; otherwise auto-highlighting follows value changes.
func (w *Autocomplete[T, N]) SetProps(next Props[T]) {
	items := FilteredItems(next)
	prevValue := w.props.Value
	w.props = next
	w.dirty = true

	if w.state.Highlighted() && w.state.HighlightedIndex >= len(items) {
		w.setState(func(s *State) { s.HighlightedIndex = NoHighlight }, nil)
		return
	}

	if next.AutoHighlight && (prevValue != next.Value || !w.state.Highlighted()) {
		index := autoHighlight(items, w.state.HighlightedIndex, next.Value, next.itemValue, next.selectable)
		w.setState(func(s *State) { s.HighlightedIndex = index }, nil)
	}
}

// Render builds the view for the current props and state.
func (w *Autocomplete[T, N]) Render() View[N] {
	if w.props.Debug {
		w.debug.Record(w.state)
	}

	vis := w.Visibility()
	clear(w.itemRefs)

	attrs := w.props.InputProps.Clone()
	attrs["role"] = "combobox"
	attrs["aria-autocomplete"] = "list"
	attrs["aria-expanded"] = strconv.FormatBool(vis.Open())
	attrs["autocomplete"] = "off"
	if _, ok := attrs["id"]; !ok {
		attrs["id"] = w.id
	}

	ip := InputProps{
		Attrs:     attrs,
		Value:     w.props.Value,
		Ref:       w.storeInput,
		OnFocus:   w.handleFocus,
		OnBlur:    w.handleBlur,
		OnChange:  w.handleChange,
		OnKeyDown: compose(w.handleKeyDown, w.props.InputHandlers.OnKeyDown),
		OnClick:   compose(w.handleClick, w.props.InputHandlers.OnClick),
	}

	view := View[N]{
		Wrapper:    w.props.WrapperProps.Clone(),
		InputProps: ip,
		Visibility: vis,
	}
	if w.renderers.RenderInput != nil {
		view.Input = w.renderers.RenderInput(ip)
	}
	if vis.Open() {
		menu := w.renderMenu()
		view.Menu = &menu
	} else {
		w.menu = nil
	}
	if w.props.Debug {
		view.Debug = w.debug.Snapshots()
	}
	return view
}

func (w *Autocomplete[T, N]) renderMenu() MenuView[N] {
	items := w.FilteredItems()
	rows := make([]ItemView[N], len(items))
	for i, item := range items {
		row := ItemView[N]{
			Index:       i,
			Highlighted: w.state.HighlightedIndex == i,
			Ref:         func(el ItemElement) { w.itemRefs[i] = el },
		}
		if w.renderers.RenderItem != nil {
			row.Node = w.renderers.RenderItem(item, row.Highlighted, itemStyle)
		}
		if w.props.selectable(item) {
			row.OnMouseEnter = func() { w.highlightItemFromMouse(i) }
			row.OnClick = func() { w.selectItemFromMouse(item) }
		}
		rows[i] = row
	}

	style := MenuStyle{
		Left:       w.state.Menu.Left,
		Top:        w.state.Menu.Top,
		MinWidth:   w.state.Menu.MinWidth,
		Positioned: w.state.Menu.Set,
	}
	menu := MenuView[N]{
		Items:        rows,
		Style:        style,
		Ref:          func(el MenuElement) { w.menu = el },
		OnMouseEnter: func() { w.setIgnoreBlur(true) },
		OnMouseLeave: func() { w.setIgnoreBlur(false) },
		OnTouchStart: func() { w.setIgnoreBlur(true) },
	}
	if w.renderers.RenderMenu != nil {
		menu.Node = w.renderers.RenderMenu(rows, w.props.Value, style)
	}
	return menu
}

// Commit runs the post-render effects: anchoring the menu when it opens,
// keeping the highlighted row visible, the visibility notification, and
// the callbacks queued by the handlers since the last commit.
func (w *Autocomplete[T, N]) Commit() {
	prevProps, prevState := w.committedProps, w.committedState
	w.committedProps, w.committedState = w.props, w.state

	wasOpen := resolveVisibility(prevProps.Open, prevState.IsOpen).Open()
	open := w.IsOpen()

	if (w.state.IsOpen && !prevState.IsOpen) || (w.props.Open == OpenShown && prevProps.Open != OpenShown) {
		w.setMenuPositions()
	}

	if open && w.state.Highlighted() && (w.state.HighlightedIndex != prevState.HighlightedIndex || !wasOpen) {
		w.maybeScrollItemIntoView()
	}

	if open != wasOpen {
		w.log.Debug("Menu visibility changed", map[string]any{"open": open})
		if w.props.OnMenuVisibilityChange != nil {
			w.props.OnMenuVisibilityChange(open)
		}
	}

	callbacks := w.pending
	w.pending = nil
	for _, cb := range callbacks {
		cb()
	}

	w.log.Trace("State committed", map[string]any{
		"open":      open,
		"highlight": w.committedState.HighlightedIndex,
		"callbacks": len(callbacks),
	})
}

// Flush renders and commits until no state change is pending, handing
// every view to present. An unmounted widget is mounted first.
func (w *Autocomplete[T, N]) Flush(present func(View[N])) {
	if !w.mounted {
		w.Mount(present)
		return
	}
	w.flush(present)
}

func (w *Autocomplete[T, N]) flush(present func(View[N])) {
	for pass := 0; w.dirty || len(w.pending) > 0 || w.hasTicks(); pass++ {
		if pass >= maxFlushPasses {
			w.log.Warn("State did not settle", map[string]any{"passes": pass})
			return
		}
		if w.dirty || len(w.pending) > 0 {
			w.dirty = false
			present(w.Render())
			w.Commit()
			continue
		}
		w.runTicks()
	}
}

// Mount renders the first view and anchors the menu if it starts open.
func (w *Autocomplete[T, N]) Mount(present func(View[N])) {
	w.mounted = true
	w.dirty = false
	present(w.Render())
	w.committedProps, w.committedState = w.props, w.state
	if w.IsOpen() {
		w.setMenuPositions()
	}
	w.log.Debug("Mounted", map[string]any{"open": w.IsOpen()})
	w.flush(present)
}

// Unmount cancels the pending scroll restore and drops element handles.
func (w *Autocomplete[T, N]) Unmount() {
	if w.scrollTimer != nil {
		w.scrollTimer.Stop()
	}
	w.scrollTimer = nil
	w.ticks = nil
	w.pending = nil
	w.input = nil
	w.menu = nil
	clear(w.itemRefs)
	w.mounted = false
	w.log.Debug("Unmounted")
}

func (w *Autocomplete[T, N]) storeInput(el InputElement) {
	w.input = el
}

func (w *Autocomplete[T, N]) setMenuPositions() {
	if w.input == nil {
		return
	}
	pos := computeMenuPosition(w.input.BoundingRect(), w.input.ComputedMargins())
	w.setState(func(s *State) { s.Menu = pos }, nil)
}

// Reposition re-anchors an open menu to where the input is now. Hosts call
// it after moving the input; it reports whether the anchor changed.
func (w *Autocomplete[T, N]) Reposition() bool {
	if !w.mounted || w.input == nil || !w.IsOpen() || !w.state.Menu.Set {
		return false
	}
	pos := computeMenuPosition(w.input.BoundingRect(), w.input.ComputedMargins())
	if pos == w.state.Menu {
		return false
	}
	w.setState(func(s *State) { s.Menu = pos }, nil)
	return true
}

// Invalidate forces the next Flush to render, for host changes the widget
// cannot see, such as a resized screen.
func (w *Autocomplete[T, N]) Invalidate() {
	w.dirty = true
}

func (w *Autocomplete[T, N]) maybeScrollItemIntoView() {
	scrollIntoView(w.menu, w.itemRefs[w.state.HighlightedIndex])
}

func (w *Autocomplete[T, N]) setIgnoreBlur(ignore bool) {
	w.ignoreBlur = ignore
}

func (w *Autocomplete[T, N]) highlightItemFromMouse(index int) {
	w.setState(func(s *State) { s.HighlightedIndex = index }, nil)
}

func (w *Autocomplete[T, N]) selectItemFromMouse(item T) {
	value := w.props.itemValue(item)
	onSelect := w.props.OnSelect
	// The menu goes away before the pointer can leave it.
	w.setIgnoreBlur(false)
	w.setState(func(s *State) {
		s.IsOpen = false
		s.HighlightedIndex = NoHighlight
	}, func() {
		if onSelect != nil {
			onSelect(value, item)
		}
	})
}

func (w *Autocomplete[T, N]) currentScrollOffset() ScrollOffset {
	if w.window == nil {
		return ScrollOffset{}
	}
	return w.window.ScrollOffset()
}

func (w *Autocomplete[T, N]) scrollTo(off ScrollOffset) {
	if w.window != nil {
		w.window.ScrollTo(off.X, off.Y)
	}
}

// tick is a deferred call used when no scheduler is configured.
type tick struct {
	f       func()
	stopped bool
}

func (t *tick) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (w *Autocomplete[T, N]) schedule(d time.Duration, f func()) Timer {
	if w.scheduler != nil {
		return w.scheduler.AfterFunc(d, f)
	}
	t := &tick{f: f}
	w.ticks = append(w.ticks, t)
	return t
}

func (w *Autocomplete[T, N]) hasTicks() bool {
	return len(w.ticks) > 0
}

func (w *Autocomplete[T, N]) runTicks() {
	ticks := w.ticks
	w.ticks = nil
	for _, t := range ticks {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}
