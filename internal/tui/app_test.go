package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

var testStates = []types.Suggestion{
	{Value: "Alabama", Abbr: "AL", Group: "South"},
	{Value: "Alaska", Abbr: "AK", Group: "West"},
	{Value: "Arizona", Abbr: "AZ", Group: "West"},
	{Value: "California", Abbr: "CA", Group: "West"},
	{Value: "Colorado", Abbr: "CO", Group: "West"},
	{Value: "Maine", Abbr: "ME", Group: "Northeast"},
	{Value: "Ohio", Abbr: "OH", Group: "Midwest"},
}

func newTestApp(t *testing.T, configure func(*config.Config), opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(80, 40)

	cfg := config.DefaultConfig()
	if configure != nil {
		configure(cfg)
	}
	if opts.Items == nil {
		opts.Items = testStates
	}
	opts.Logger = output.NewNopLogger()

	a, err := New(s, cfg, opts)
	require.NoError(t, err)
	a.mount()
	return a, s
}

func key(a *App, k tcell.Key) {
	a.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func mouse(a *App, x, y int, buttons tcell.ButtonMask) {
	a.HandleEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func screenLine(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	_, _, h := s.GetContents()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = screenLine(s, y)
	}
	return strings.Join(lines, "\n")
}

// waitForLoop feeds posted events to the app until an interrupt ran.
func waitForLoop(t *testing.T, a *App, s tcell.Screen) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		events := make(chan tcell.Event, 1)
		go func() { events <- s.PollEvent() }()
		select {
		case ev := <-events:
			require.NotNil(t, ev)
			a.HandleEvent(ev)
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the event loop")
		}
	}
}

func values(items []types.Suggestion) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

func TestApp_TypeFiltersAndEnterSelects(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})
	w := a.Widget()

	key(a, tcell.KeyTab)
	require.True(t, a.Field().Focused())
	assert.True(t, w.IsOpen(), "focus opens the menu")

	typeText(a, "al")
	assert.Equal(t, "al", a.Field().Value())
	assert.Equal(t, []string{"Alabama", "Alaska"}, values(w.FilteredItems()))
	assert.Equal(t, 0, w.State().HighlightedIndex)

	key(a, tcell.KeyDown)
	assert.Equal(t, 1, w.State().HighlightedIndex)

	key(a, tcell.KeyEnter)
	res := a.Result()
	assert.Equal(t, "Alaska", res.Value)
	require.NotNil(t, res.Item)
	assert.Equal(t, "AK", res.Item.Abbr)
	assert.False(t, res.Submitted, "choosing a suggestion does not submit")
	assert.False(t, w.IsOpen())
	assert.Equal(t, "Alaska", a.Field().Value())
	assert.Equal(t, 6, a.Field().Caret())
}

func TestApp_EnterWithoutHighlightSubmits(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	typeText(a, "zz")
	require.True(t, a.Widget().IsOpen())
	assert.Empty(t, a.Widget().FilteredItems())
	assert.Equal(t, "No matches for zz", a.menu.Message())

	key(a, tcell.KeyEnter)
	assert.False(t, a.Widget().IsOpen())
	assert.True(t, a.Result().Submitted)
	start, end := a.Field().Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end, "closing with Enter selects the text")
}

func TestApp_SubmitChecksValidity(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{Input: autocomplete.Attrs{"required": ""}})

	key(a, tcell.KeyTab)
	key(a, tcell.KeyEnter)
	assert.False(t, a.Result().Submitted)
	assert.Equal(t, "Please fill out this field.", a.status)
	assert.True(t, a.statusErr)
}

func TestApp_LineFeedNeverSelects(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	typeText(a, "oh")
	require.Equal(t, 0, a.Widget().State().HighlightedIndex)

	key(a, tcell.KeyLF)
	assert.Nil(t, a.Result().Item)
	assert.Equal(t, "oh", a.Result().Value)
	assert.True(t, a.Widget().IsOpen())

	key(a, tcell.KeyEsc)
	assert.False(t, a.Widget().IsOpen())
	assert.Equal(t, autocomplete.NoHighlight, a.Widget().State().HighlightedIndex)
}

func TestApp_TabMovesFocusAndCloses(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	typeText(a, "c")
	require.True(t, a.Widget().IsOpen())

	key(a, tcell.KeyTab)
	assert.False(t, a.Widget().IsOpen())
	assert.False(t, a.Field().Focused())
	assert.True(t, a.button.Focused())
	assert.Nil(t, a.Result().Item)

	key(a, tcell.KeyBacktab)
	assert.True(t, a.Field().Focused())
}

func TestApp_SelectOnBlur(t *testing.T) {
	a, _ := newTestApp(t, func(c *config.Config) { c.Widget.SelectOnBlur = true }, Options{})

	key(a, tcell.KeyTab)
	typeText(a, "ma")
	key(a, tcell.KeyTab)

	require.NotNil(t, a.Result().Item)
	assert.Equal(t, "Maine", a.Result().Value)
}

func TestApp_MouseSelect(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})
	w := a.Widget()

	key(a, tcell.KeyTab)
	require.True(t, w.IsOpen())
	require.True(t, w.State().Menu.Set)

	box := a.menu.Rect()
	assert.Equal(t, a.Field().BoundingRect().Bottom(), box.Top, "the menu hangs under the field")
	want := w.FilteredItems()[2].Value
	x, y := box.Left+2, box.Top+1+2

	mouse(a, x, y, tcell.ButtonNone)
	assert.Equal(t, 2, w.State().HighlightedIndex, "hovering highlights")

	mouse(a, x, y, tcell.Button1)
	assert.True(t, a.Field().Focused(), "pressing the menu keeps the field focused")
	assert.True(t, w.IsOpen())

	mouse(a, x, y, tcell.ButtonNone)
	assert.Equal(t, want, a.Result().Value)
	assert.False(t, w.IsOpen())
	assert.True(t, a.Field().Focused())
}

func TestApp_ClickElsewhereBlurs(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	r := a.Field().BoundingRect()
	mouse(a, r.Left+1, r.Top, tcell.Button1)
	mouse(a, r.Left+1, r.Top, tcell.ButtonNone)
	require.True(t, a.Field().Focused())
	require.True(t, a.Widget().IsOpen())

	mouse(a, 70, 0, tcell.Button1)
	mouse(a, 70, 0, tcell.ButtonNone)
	assert.False(t, a.Field().Focused())
	assert.False(t, a.Widget().IsOpen())
}

func TestApp_ClickReopensFocusedField(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	key(a, tcell.KeyEsc)
	require.False(t, a.Widget().IsOpen())

	r := a.Field().BoundingRect()
	mouse(a, r.Left, r.Top, tcell.Button1)
	mouse(a, r.Left, r.Top, tcell.ButtonNone)
	assert.True(t, a.Widget().IsOpen())
}

func TestApp_ManagedVisibility(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})
	w := a.Widget()

	key(a, tcell.KeyF2)
	assert.True(t, w.IsOpen(), "forced open without focus")
	assert.True(t, w.Visibility().External())

	key(a, tcell.KeyF2)
	key(a, tcell.KeyTab)
	typeText(a, "o")
	assert.False(t, w.IsOpen(), "forced closed while typing")

	key(a, tcell.KeyF2)
	assert.True(t, w.IsOpen(), "back to the widget's own state")
	assert.False(t, w.Visibility().External())
}

func TestApp_DelayedGroupedItems(t *testing.T) {
	a, s := newTestApp(t, func(c *config.Config) { c.Items.Grouped = true }, Options{Delay: 10 * time.Millisecond})
	w := a.Widget()

	key(a, tcell.KeyTab)
	typeText(a, "c")
	assert.Empty(t, w.FilteredItems())
	assert.Equal(t, "Loading...", a.menu.Message())

	waitForLoop(t, a, s)

	items := w.FilteredItems()
	require.Len(t, items, 3)
	assert.True(t, items[0].Header)
	assert.Equal(t, "West", items[0].Text())
	assert.Equal(t, []string{"California", "Colorado"}, values(items[1:]))
	assert.Equal(t, 1, w.State().HighlightedIndex, "the header is skipped")
	assert.Empty(t, a.menu.Message())

	key(a, tcell.KeyEnter)
	assert.Equal(t, "California", a.Result().Value)
	assert.Equal(t, []types.Suggestion{testStates[3]}, a.props.Items)
}

func TestApp_TerminalFocus(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	require.True(t, a.Widget().IsOpen())

	a.HandleEvent(tcell.NewEventFocus(false))
	assert.False(t, a.Field().Focused())
	assert.False(t, a.Widget().IsOpen())

	a.HandleEvent(tcell.NewEventFocus(true))
	assert.True(t, a.Field().Focused())
	assert.True(t, a.Widget().IsOpen())
}

func TestApp_Paste(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	key(a, tcell.KeyTab)
	a.HandleEvent(tcell.NewEventPaste(true))
	typeText(a, "Ohio")
	assert.Empty(t, a.Field().Value(), "nothing lands before the paste ends")
	a.HandleEvent(tcell.NewEventPaste(false))

	assert.Equal(t, "Ohio", a.Field().Value())
	assert.Equal(t, []string{"Ohio"}, values(a.Widget().FilteredItems()))
}

func TestApp_Draw(t *testing.T) {
	a, s := newTestApp(t, nil, Options{Title: "States"})

	key(a, tcell.KeyTab)
	typeText(a, "oh")
	a.draw()

	text := screenText(s)
	assert.Contains(t, text, "States")
	assert.Contains(t, text, `Value: "oh"`)
	assert.Contains(t, text, "Ohio")
	assert.Contains(t, text, "OH")

	row := screenLine(s, a.menu.Rect().Top+1)
	assert.Contains(t, row, "Ohio")
}

func TestApp_DebugPanel(t *testing.T) {
	a, s := newTestApp(t, func(c *config.Config) { c.Widget.Debug = true }, Options{})

	key(a, tcell.KeyTab)
	a.draw()

	assert.NotEmpty(t, a.view.Debug)
	assert.LessOrEqual(t, len(a.view.Debug), 5)
	assert.Contains(t, screenText(s), `"highlightedIndex"`)
}

func TestApp_HelpOverlay(t *testing.T) {
	a, s := newTestApp(t, nil, Options{})

	key(a, tcell.KeyF1)
	a.draw()
	assert.Contains(t, screenText(s), "Press any key to return")

	key(a, tcell.KeyRune)
	assert.False(t, a.showHelp)
}

func TestApp_WheelScrollsPage(t *testing.T) {
	a, s := newTestApp(t, nil, Options{})
	s.SetSize(80, 6)
	a.HandleEvent(tcell.NewEventResize(80, 6))

	top := a.Field().BoundingRect().Top
	mouse(a, 0, 0, tcell.WheelDown)
	assert.Equal(t, 1, a.page.ScrollOffset().Y)
	assert.Equal(t, top-1, a.Field().BoundingRect().Top)
}

func TestApp_MenuFollowsScrolledField(t *testing.T) {
	a, s := newTestApp(t, nil, Options{})
	s.SetSize(80, 8)
	a.HandleEvent(tcell.NewEventResize(80, 8))

	key(a, tcell.KeyTab)
	typeText(a, "A")
	require.True(t, a.Widget().IsOpen())
	require.Equal(t, a.Field().BoundingRect().Bottom(), a.menu.Rect().Top)

	top := a.Field().BoundingRect().Top
	mouse(a, 0, 0, tcell.WheelDown)
	require.Equal(t, 1, a.page.ScrollOffset().Y)
	assert.Equal(t, top-1, a.Field().BoundingRect().Top)
	assert.True(t, a.Widget().IsOpen())
	assert.Equal(t, a.Field().BoundingRect().Bottom(), a.menu.Rect().Top)

	key(a, tcell.KeyPgUp)
	assert.Equal(t, 0, a.page.ScrollOffset().Y)
	assert.Equal(t, top, a.Field().BoundingRect().Top)
	assert.Equal(t, a.Field().BoundingRect().Bottom(), a.menu.Rect().Top)
}

func TestApp_ReloadItems(t *testing.T) {
	a, _ := newTestApp(t, nil, Options{})

	a.reloadItems([]types.Suggestion{{Value: "Utah"}}, nil)
	a.flush()
	assert.Equal(t, []string{"Utah"}, values(a.Widget().FilteredItems()))
	assert.Equal(t, "Reloaded 1 suggestions", a.status)

	a.reloadItems(nil, assert.AnError)
	assert.True(t, a.statusErr)
}

func TestApp_RunStopsWithContext(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	a, err := New(s, nil, Options{Items: testStates, Logger: output.NewNopLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	assert.False(t, a.Widget().Mounted())
}
