// Package tui hosts the autocomplete widget in a terminal. It turns tcell
// events into the widget's key, focus and pointer events, and draws the
// views the widget renders.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

const (
	fieldMaxWidth = 40
	noRow         = -1
)

// Options describe the page around the widget.
type Options struct {
	Title string
	Intro string
	Label string

	Items []types.Suggestion

	// WatchPath reloads the suggestions whenever this file changes.
	WatchPath string

	// Delay answers queries after a pause, as a remote source would.
	Delay time.Duration

	// Input holds extra input attributes such as required or maxlength.
	Input autocomplete.Attrs

	AutoFocus    bool
	ExitOnSubmit bool

	Logger *output.Logger
}

// Result is what the page held when the app stopped.
type Result struct {
	Value     string            `json:"value"`
	Item      *types.Suggestion `json:"item,omitempty"`
	Submitted bool              `json:"submitted"`
}

type pressTarget int

const (
	pressNone pressTarget = iota
	pressField
	pressMenu
	pressButton
)

type quitSignal struct{}

// App runs the widget on a tcell screen.
type App struct {
	screen tcell.Screen
	theme  Theme
	log    *output.Logger

	title, intro, label string
	placeholder         string
	watchPath           string
	delay               time.Duration
	autoFocus           bool
	exitOnSubmit        bool

	widget    *autocomplete.Autocomplete[types.Suggestion, Node]
	props     autocomplete.Props[types.Suggestion]
	view      autocomplete.View[Node]
	catalog   *catalog
	remote    bool
	highlight *search.Fuzzy

	field  *TextField
	button *Button
	menu   *Menu
	page   *Page
	sched  *loopScheduler

	focused     focusable
	termBlurred bool

	buttonDown bool
	pressed    pressTarget
	pressedRow int
	inMenu     bool
	hoverRow   int

	pasting bool
	pasted  []rune

	loading bool
	request autocomplete.Timer

	selected  *types.Suggestion
	submitted bool
	status    string
	statusErr bool
	showHelp  bool
	quit      bool
}

// New builds the app. The screen is initialised by Run.
func New(screen tcell.Screen, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme, err := NewTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = output.GetGlobalLogger()
	}

	a := &App{
		screen:       screen,
		theme:        theme,
		log:          log.WithField("component", "tui"),
		title:        opts.Title,
		intro:        opts.Intro,
		label:        opts.Label,
		placeholder:  cfg.Menu.Placeholder,
		watchPath:    opts.WatchPath,
		delay:        opts.Delay,
		autoFocus:    opts.AutoFocus,
		exitOnSubmit: opts.ExitOnSubmit,
		remote:       cfg.Items.Grouped || opts.Delay > 0,
		highlight:    search.NewFuzzy().SetCaseSensitive(cfg.Match.CaseSensitive).SetMinScore(0),
		button:       &Button{label: "Submit"},
		menu:         NewMenu(cfg.Menu.MaxHeight),
		page:         &Page{},
		hoverRow:     noRow,
		pressedRow:   noRow,
	}
	if a.title == "" {
		a.title = "Autocomplete"
	}
	if a.label == "" {
		a.label = "Choose a state from the US"
	}
	a.field = NewTextField(a, cfg.Margins())
	a.sched = &loopScheduler{screen: screen, log: a.log}

	fuzzy := cfg.Fuzzy()
	text := types.Suggestion.Text
	a.catalog = &catalog{
		items:   opts.Items,
		match:   autocomplete.Predicate[types.Suggestion](search.PredicateFor(cfg.Match.Mode, fuzzy, text)),
		order:   autocomplete.Comparator[types.Suggestion](search.ComparatorFor(cfg.Sort.Mode, fuzzy, text)),
		grouped: cfg.Items.Grouped,
	}

	attrs := autocomplete.Attrs{"placeholder": cfg.Menu.Placeholder}
	maps.Copy(attrs, opts.Input)

	props := autocomplete.DefaultProps[types.Suggestion]()
	props.GetItemValue = types.Suggestion.DisplayValue
	props.IsItemSelectable = types.Suggestion.Selectable
	props.AutoHighlight = cfg.Widget.AutoHighlight
	props.SelectOnBlur = cfg.Widget.SelectOnBlur
	props.Debug = cfg.Widget.Debug
	props.Open = cfg.OpenControl()
	props.InputProps = attrs
	props.OnChange = a.handleChange
	props.OnSelect = a.handleSelect
	props.OnMenuVisibilityChange = a.handleVisibilityChange
	if a.remote {
		props.Items = a.catalog.query("")
	} else {
		props.Items = opts.Items
		props.ShouldItemRender = a.catalog.match
		props.SortItems = a.catalog.order
	}
	a.props = props

	a.widget = autocomplete.New(props, autocomplete.Renderers[types.Suggestion, Node]{
		RenderInput: a.renderInput,
		RenderItem:  a.renderItem,
		RenderMenu:  a.renderMenu,
	}, autocomplete.WithScheduler(a.sched), autocomplete.WithWindow(a.page), autocomplete.WithLogger(log))
	return a, nil
}

// Widget returns the hosted widget.
func (a *App) Widget() *autocomplete.Autocomplete[types.Suggestion, Node] {
	return a.widget
}

// Field returns the text field.
func (a *App) Field() *TextField { return a.field }

// Result returns the final value and the chosen suggestion, if any.
func (a *App) Result() Result {
	return Result{Value: a.props.Value, Item: a.selected, Submitted: a.submitted}
}

// Run initialises the screen and processes events until the user quits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return errors.TerminalInitError(err)
	}
	defer a.screen.Fini()

	a.screen.EnableMouse()
	a.screen.EnablePaste()
	a.screen.EnableFocus()
	a.screen.SetStyle(a.theme.Base)

	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	})
	defer stop()

	if a.watchPath != "" {
		w, err := config.WatchItems(a.watchPath, func(items []types.Suggestion, err error) {
			a.Post(func() { a.reloadItems(items, err) })
		}, config.WithWatchLogger(a.log))
		if err != nil {
			a.log.Warn("Not watching suggestions", map[string]any{"path": a.watchPath, "error": err.Error()})
			a.setStatus("Not watching "+a.watchPath, true)
		} else {
			defer w.Close()
		}
	}

	a.mount()
	a.log.Info("Terminal host started", map[string]any{"widget": a.widget.ID()})

	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.HandleEvent(ev)
	}

	if a.request != nil {
		a.request.Stop()
	}
	a.widget.Unmount()
	a.log.Info("Terminal host stopped", map[string]any{"value": a.props.Value, "submitted": a.submitted})
	return nil
}

// Post runs f on the event loop.
func (a *App) Post(f func()) {
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(f)); err != nil {
		a.log.Warn("Dropped posted call", map[string]any{"error": err.Error()})
	}
}

func (a *App) mount() {
	a.layout()
	a.widget.Mount(a.present)
	if a.autoFocus {
		a.focus(a.field)
	}
	a.flush()
}

// HandleEvent processes one terminal event and settles the widget.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		a.handleInterrupt(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.widget.Invalidate()
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventPaste:
		a.handlePaste(ev)
	case *tcell.EventFocus:
		a.handleTerminalFocus(ev.Focused)
	}
	a.flush()
}

// flush settles the widget against the current layout. The page can move
// the field while settling, so an open menu is re-anchored afterwards.
func (a *App) flush() {
	a.layout()
	a.widget.Reposition()
	a.widget.Flush(a.present)
	a.layout()
	if a.widget.Reposition() {
		a.widget.Flush(a.present)
		a.layout()
	}
}

func (a *App) present(v autocomplete.View[Node]) {
	a.view = v
	if v.InputProps.Ref != nil {
		v.InputProps.Ref(a.field)
	}
	if v.Menu == nil {
		a.menu.Reset()
		a.inMenu = false
		a.hoverRow = noRow
		return
	}
	v.Menu.Ref(a.menu)
	for _, row := range v.Menu.Items {
		if el, ok := row.Node.(autocomplete.ItemElement); ok && row.Ref != nil {
			row.Ref(el)
		}
	}
}

func (a *App) renderInput(p autocomplete.InputProps) Node {
	a.field.Apply(p)
	return a.field
}

func (a *App) renderItem(item types.Suggestion, highlighted bool, _ autocomplete.ItemStyle) Node {
	var highlights []search.Range
	if value := a.props.Value; value != "" && !item.Header {
		if m, ok := a.highlight.SmartMatch(value, item.Text()); ok {
			highlights = m.Highlights
		}
	}
	return NewRow(item, highlighted, highlights)
}

func (a *App) renderMenu(items []autocomplete.ItemView[Node], value string, style autocomplete.MenuStyle) Node {
	w, h := a.screen.Size()
	a.menu.Update(items, a.menuMessage(len(items), value), style, a.field.rect, w, h)
	return a.menu
}

func (a *App) menuMessage(rows int, value string) string {
	switch {
	case a.loading:
		return "Loading..."
	case rows > 0:
		return ""
	case value == "":
		return a.placeholder
	default:
		return "No matches for " + value
	}
}

func (a *App) handleChange(_ autocomplete.ChangeEvent, value string) {
	a.props.Value = value
	a.selected = nil
	if a.remote {
		a.requestItems(value)
	}
	a.widget.SetProps(a.props)
}

// requestItems replaces the items with the answer for value, after the
// configured delay. A newer request cancels the one in flight.
func (a *App) requestItems(value string) {
	if a.delay <= 0 {
		a.props.Items = a.catalog.query(value)
		return
	}
	if a.request != nil {
		a.request.Stop()
	}
	a.loading = true
	if a.catalog.grouped {
		a.props.Items = nil
	}
	a.request = a.sched.AfterFunc(a.delay, func() {
		a.request = nil
		a.loading = false
		a.props.Items = a.catalog.query(value)
		a.widget.SetProps(a.props)
		a.log.Debug("Suggestions answered", map[string]any{"value": value, "count": len(a.props.Items)})
	})
}

func (a *App) handleSelect(value string, item types.Suggestion) {
	a.props.Value = value
	a.selected = &item
	if a.remote {
		a.props.Items = []types.Suggestion{item}
	}
	a.widget.SetProps(a.props)
	a.setStatus("Selected "+value, false)
	a.log.Info("Suggestion selected", map[string]any{"value": value, "abbr": item.Abbr})
}

func (a *App) handleVisibilityChange(open bool) {
	a.log.Debug("Menu visibility reported", map[string]any{"open": open})
}

func (a *App) reloadItems(items []types.Suggestion, err error) {
	if err != nil {
		a.setStatus(err.Error(), true)
		a.log.Warn("Suggestions not reloaded", map[string]any{"error": err.Error()})
		return
	}
	a.catalog.items = items
	if a.remote {
		a.props.Items = a.catalog.query(a.props.Value)
	} else {
		a.props.Items = items
	}
	a.widget.SetProps(a.props)
	a.setStatus(fmt.Sprintf("Reloaded %d suggestions", len(items)), false)
}

// cycleOpen steps the host's say over visibility: auto, open, closed.
func (a *App) cycleOpen() {
	switch a.props.Open {
	case autocomplete.OpenAuto:
		a.props.Open = autocomplete.OpenShown
	case autocomplete.OpenShown:
		a.props.Open = autocomplete.OpenHidden
	default:
		a.props.Open = autocomplete.OpenAuto
	}
	a.widget.SetProps(a.props)
	a.setStatus("Menu visibility: "+a.props.Open.String(), false)
}

func (a *App) submit() {
	if !a.widget.CheckValidity() {
		a.setStatus(a.field.ValidationMessage(), true)
		return
	}
	a.submitted = true
	a.setStatus(fmt.Sprintf("Submitted %q", a.props.Value), false)
	a.log.Info("Form submitted", map[string]any{"value": a.props.Value})
	if a.exitOnSubmit {
		a.quit = true
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a *App) focus(f focusable) {
	if a.focused == f {
		return
	}
	prev := a.focused
	a.focused = f
	if prev != nil {
		prev.setFocused(false, nameOf(f))
	}
	// a blur handler may have moved focus somewhere else already
	if a.focused != f || f == nil {
		return
	}
	f.setFocused(true, nameOf(prev))
}

func (a *App) focusedControl() focusable { return a.focused }

func nameOf(f focusable) string {
	if f == nil {
		return ""
	}
	return f.name()
}

func (a *App) handleInterrupt(ev *tcell.EventInterrupt) {
	switch data := ev.Data().(type) {
	case loopCall:
		data.run()
	case func():
		data()
	case quitSignal:
		a.quit = true
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.pasting {
		if ev.Key() == tcell.KeyRune {
			a.pasted = append(a.pasted, ev.Rune())
		}
		return
	}
	if a.showHelp {
		a.showHelp = false
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		a.quit = true
		return
	case tcell.KeyF1:
		a.showHelp = true
		return
	case tcell.KeyF2:
		a.cycleOpen()
		return
	case tcell.KeyPgUp:
		a.page.ScrollBy(-max(1, a.page.height/2))
		return
	case tcell.KeyPgDn:
		a.page.ScrollBy(max(1, a.page.height/2))
		return
	}

	switch a.focused {
	case a.field:
		a.handleFieldKey(ev)
	case a.button:
		a.handleButtonKey(ev)
	default:
		switch ev.Key() {
		case tcell.KeyTab:
			a.focus(a.field)
		case tcell.KeyBacktab:
			a.focus(a.button)
		}
	}
}

func (a *App) handleFieldKey(ev *tcell.EventKey) {
	if !a.field.KeyDown(ev) {
		return
	}
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		a.focus(a.button)
	case tcell.KeyEnter:
		a.submit()
	default:
		a.field.Edit(ev)
	}
}

func (a *App) handleButtonKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		a.focus(a.field)
	case tcell.KeyEnter:
		a.submit()
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			a.submit()
		}
	}
}

func (a *App) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		a.pasting = true
		a.pasted = a.pasted[:0]
		return
	}
	a.pasting = false
	if len(a.pasted) > 0 && a.field.Focused() {
		a.field.Insert(string(a.pasted))
	}
}

// handleTerminalFocus blurs the field while the terminal is in the
// background and gives focus back when it returns.
func (a *App) handleTerminalFocus(focused bool) {
	if !focused {
		if a.focused == focusable(a.field) {
			a.termBlurred = true
			a.focus(nil)
		}
		return
	}
	if a.termBlurred {
		a.termBlurred = false
		a.focus(a.field)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.scroll(x, y, -1)
		return
	case buttons&tcell.WheelDown != 0:
		a.scroll(x, y, 1)
		return
	}

	a.updateHover(x, y)

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !a.buttonDown:
		a.buttonDown = true
		a.mouseDown(x, y)
	case !primary && a.buttonDown:
		a.buttonDown = false
		a.mouseUp(x, y)
	}
}

func (a *App) scroll(x, y, dy int) {
	if a.view.Menu != nil && a.menu.Contains(x, y) {
		a.menu.SetScrollTop(a.menu.ScrollTop() + dy)
		return
	}
	a.page.ScrollBy(dy)
}

// updateHover reports the pointer entering and leaving the menu and its rows.
func (a *App) updateHover(x, y int) {
	menu := a.view.Menu
	if menu == nil {
		a.inMenu = false
		a.hoverRow = noRow
		return
	}

	inside := a.menu.Contains(x, y)
	if inside != a.inMenu {
		a.inMenu = inside
		if inside {
			menu.OnMouseEnter()
		} else {
			menu.OnMouseLeave()
			a.hoverRow = noRow
		}
	}
	if !inside {
		return
	}

	row := a.menu.RowAt(x, y)
	if row == a.hoverRow {
		return
	}
	a.hoverRow = row
	if row >= 0 && row < len(menu.Items) && menu.Items[row].OnMouseEnter != nil {
		menu.Items[row].OnMouseEnter()
	}
}

func (a *App) mouseDown(x, y int) {
	switch {
	case a.view.Menu != nil && a.menu.Contains(x, y):
		// the menu cannot take focus, so pressing it leaves nothing focused
		a.pressed = pressMenu
		a.pressedRow = a.menu.RowAt(x, y)
		a.focus(nil)
	case contains(a.field.rect, x, y):
		a.pressed = pressField
		a.focus(a.field)
		a.field.PlaceCaret(x)
	case contains(a.button.rect, x, y):
		a.pressed = pressButton
		a.focus(a.button)
	default:
		a.pressed = pressNone
		a.focus(nil)
	}
}

func (a *App) mouseUp(x, y int) {
	pressed, pressedRow := a.pressed, a.pressedRow
	a.pressed, a.pressedRow = pressNone, noRow

	switch pressed {
	case pressMenu:
		menu := a.view.Menu
		if menu == nil {
			return
		}
		row := a.menu.RowAt(x, y)
		if row >= 0 && row == pressedRow && row < len(menu.Items) && menu.Items[row].OnClick != nil {
			menu.Items[row].OnClick()
		}
	case pressField:
		if contains(a.field.rect, x, y) {
			a.field.click(autocomplete.ClickEvent{X: x - a.field.rect.Left, Y: y - a.field.rect.Top})
		}
	case pressButton:
		if contains(a.button.rect, x, y) {
			a.submit()
		}
	}
}

// layout rebuilds the page and places the controls on screen.
func (a *App) layout() {
	w, h := a.screen.Size()
	textWidth := max(1, w-2*pageMargin)
	base := a.theme.Base

	var lines []pageLine
	add := func(text string, style tcell.Style) {
		lines = append(lines, pageLine{text: text, style: style})
	}

	add(a.title, a.theme.Title)
	add("", base)
	if a.intro != "" {
		for _, l := range wrap(a.intro, textWidth) {
			add(l, base)
		}
		add("", base)
	}
	add(a.label, base)
	lines = append(lines, pageLine{slot: slotField})
	add("", base)
	lines = append(lines, pageLine{slot: slotButton})
	add("", base)
	for _, l := range a.statusLines() {
		add(truncate(l, textWidth), a.theme.Status)
	}
	if a.status != "" {
		style := a.theme.Status
		if a.statusErr {
			style = a.theme.Error
		}
		add(truncate(a.status, textWidth), style)
	}
	add("", base)
	add(truncate("Tab: next • ↑/↓: highlight • Enter: select • Esc: close • F1: help • Ctrl+C: quit", textWidth), a.theme.Muted)

	if len(a.view.Debug) > 0 {
		add("", base)
		add("Debug (most recent last)", a.theme.Title)
		for _, snap := range a.view.Debug {
			data, err := json.Marshal(snap.State)
			if err != nil {
				continue
			}
			add(truncate(fmt.Sprintf("#%d %s", snap.ID, data), textWidth), a.theme.Muted)
		}
	}

	a.page.SetLines(lines, h)

	fieldWidth := max(1, min(fieldMaxWidth, textWidth))
	if row, ok := a.page.screenRow(slotField); ok {
		a.field.rect = autocomplete.Rect{Left: pageMargin, Top: row, Width: fieldWidth, Height: 1}
	}
	if row, ok := a.page.screenRow(slotButton); ok {
		a.button.rect = autocomplete.Rect{Left: pageMargin, Top: row, Width: a.button.width(), Height: 1}
	}
}

func (a *App) statusLines() []string {
	selected := "none"
	if a.selected != nil {
		selected = a.selected.Value
		if a.selected.Abbr != "" {
			selected += " (" + a.selected.Abbr + ")"
		}
	}

	menu := "closed"
	if a.view.Visibility.Open() {
		menu = "open"
	}
	if a.view.Visibility.External() {
		menu += ", managed: " + a.props.Open.String()
	} else {
		menu += ", self-managed"
	}

	shown := 0
	for _, it := range a.widget.FilteredItems() {
		if it.Selectable() {
			shown++
		}
	}

	return []string{
		fmt.Sprintf("Value: %q", a.props.Value),
		"Selected: " + selected,
		"Menu: " + menu,
		fmt.Sprintf("Suggestions: %d of %d", shown, len(a.catalog.items)),
	}
}

func (a *App) draw() {
	s := a.screen
	s.SetStyle(a.theme.Base)
	s.Clear()
	s.HideCursor()

	w, h := s.Size()
	a.page.Draw(s, w)
	if a.field.rect.Top >= 0 && a.field.rect.Top < h {
		a.field.Draw(s, &a.theme)
	}
	if a.button.rect.Top >= 0 && a.button.rect.Top < h {
		a.button.Draw(s, &a.theme)
	}
	if a.view.Menu != nil {
		a.menu.Draw(s, &a.theme)
	}
	if a.showHelp {
		s.HideCursor()
		a.renderHelp(w, h)
	}
	s.Show()
}

var helpSections = []struct {
	title    string
	bindings [][2]string
}{
	{"Navigation", [][2]string{
		{"↑/↓", "Move the highlight"},
		{"Tab", "Next control"},
		{"Mouse", "Hover to highlight, click to choose"},
		{"PgUp/PgDn", "Scroll the page"},
	}},
	{"Editing", [][2]string{
		{"←/→ Home End", "Move the caret"},
		{"Backspace", "Delete before the caret"},
		{"Ctrl+A", "Select all"},
		{"Ctrl+U", "Delete to the start"},
	}},
	{"Selection", [][2]string{
		{"Enter", "Choose the highlighted suggestion"},
		{"Ctrl+J", "Confirm without choosing"},
		{"Esc", "Close the menu"},
	}},
	{"Advanced", [][2]string{
		{"F2", "Cycle menu visibility: auto, open, closed"},
		{"Ctrl+C", "Quit"},
	}},
}

func (a *App) renderHelp(w, h int) {
	var lines []string
	for _, sec := range helpSections {
		lines = append(lines, sec.title+":")
		for _, b := range sec.bindings {
			lines = append(lines, fmt.Sprintf("  %-14s %s", b[0], b[1]))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "Press any key to return...")

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := autocomplete.Rect{Width: min(width+4, w), Height: min(len(lines)+2, h)}
	box.Left = max(0, (w-box.Width)/2)
	box.Top = max(0, (h-box.Height)/2)

	drawBox(a.screen, box, a.theme.Border, a.theme.Base)
	for i, l := range lines {
		y := box.Top + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		style := a.theme.Base
		if strings.HasSuffix(l, ":") {
			style = a.theme.Title
		}
		drawText(a.screen, box.Left+2, y, box.Right()-1, l, style)
	}
}
