package autocomplete

import "unicode/utf8"

// compose runs the widget's handler and then the caller's.
func compose[E any](internal, external func(E)) func(E) {
	if external == nil {
		return internal
	}
	return func(e E) {
		internal(e)
		external(e)
	}
}

func (w *Autocomplete[T, N]) handleKeyDown(ev *KeyEvent) {
	w.log.Trace("Key down", map[string]any{"key": ev.Key.String(), "code": ev.Code})

	switch ev.Key {
	case KeyArrowDown:
		w.highlightNext(ev)
	case KeyArrowUp:
		w.highlightPrev(ev)
	case KeyEnter:
		w.commitHighlighted(ev)
	case KeyEscape:
		w.setIgnoreBlur(false)
		w.setState(func(s *State) {
			s.HighlightedIndex = NoHighlight
			s.IsOpen = false
		}, nil)
	case KeyTab:
		w.setIgnoreBlur(false)
	default:
		if !w.IsOpen() {
			w.setState(func(s *State) { s.IsOpen = true }, nil)
		}
	}
}

func (w *Autocomplete[T, N]) highlightNext(ev *KeyEvent) {
	ev.PreventDefault()
	items := w.FilteredItems()
	index, ok := nextSelectable(items, w.state.HighlightedIndex, w.props.selectable)
	if !ok {
		return
	}
	w.setState(func(s *State) {
		s.HighlightedIndex = index
		s.IsOpen = true
	}, nil)
}

func (w *Autocomplete[T, N]) highlightPrev(ev *KeyEvent) {
	ev.PreventDefault()
	items := w.FilteredItems()
	index, ok := prevSelectable(items, w.state.HighlightedIndex, w.props.selectable)
	if !ok {
		return
	}
	w.setState(func(s *State) {
		s.HighlightedIndex = index
		s.IsOpen = true
	}, nil)
}

func (w *Autocomplete[T, N]) commitHighlighted(ev *KeyEvent) {
	if ev.Code != KeyCodeEnter {
		return
	}
	w.setIgnoreBlur(false)

	if !w.IsOpen() {
		return
	}

	if !w.state.Highlighted() {
		w.setState(func(s *State) { s.IsOpen = false }, func() {
			if w.input != nil {
				w.input.Select()
			}
		})
		return
	}

	ev.PreventDefault()
	items := w.FilteredItems()
	if w.state.HighlightedIndex >= len(items) {
		return
	}
	item := items[w.state.HighlightedIndex]
	value := w.props.itemValue(item)
	onSelect := w.props.OnSelect
	w.setState(func(s *State) {
		s.IsOpen = false
		s.HighlightedIndex = NoHighlight
	}, func() {
		if w.input != nil {
			end := utf8.RuneCountInString(value)
			w.input.SetSelectionRange(end, end)
		}
		if onSelect != nil {
			onSelect(value, item)
		}
	})
}

func (w *Autocomplete[T, N]) handleChange(ev ChangeEvent) {
	if w.props.OnChange != nil {
		w.props.OnChange(ev, ev.Value)
	}
}

func (w *Autocomplete[T, N]) handleBlur(ev FocusEvent) {
	if w.ignoreBlur {
		// The pointer is over the menu: this blur comes from pressing it.
		w.ignoreFocus = true
		off := w.currentScrollOffset()
		w.scrollOffset = &off
		w.log.Trace("Blur ignored while over menu", map[string]any{"x": off.X, "y": off.Y})
		if w.input != nil {
			w.input.Focus()
		}
		return
	}

	var done func()
	if w.props.SelectOnBlur && w.state.Highlighted() {
		items := w.FilteredItems()
		if idx := w.state.HighlightedIndex; idx < len(items) && w.props.selectable(items[idx]) {
			item := items[idx]
			value := w.props.itemValue(item)
			onSelect := w.props.OnSelect
			done = func() {
				if onSelect != nil {
					onSelect(value, item)
				}
			}
		}
	}
	w.setState(func(s *State) {
		s.IsOpen = false
		s.HighlightedIndex = NoHighlight
	}, done)

	if w.props.InputHandlers.OnBlur != nil {
		w.props.InputHandlers.OnBlur(ev)
	}
}

func (w *Autocomplete[T, N]) handleFocus(ev FocusEvent) {
	if w.ignoreFocus && w.scrollOffset != nil {
		w.ignoreFocus = false
		off := *w.scrollOffset
		w.scrollOffset = nil
		// Refocusing may scroll the page; put it back now and again on
		// the next tick for hosts that scroll after focus handlers run.
		w.scrollTo(off)
		if w.scrollTimer != nil {
			w.scrollTimer.Stop()
		}
		w.scrollTimer = w.schedule(0, func() {
			w.scrollTimer = nil
			w.scrollTo(off)
		})
		return
	}

	w.setState(func(s *State) { s.IsOpen = true }, nil)
	if w.props.InputHandlers.OnFocus != nil {
		w.props.InputHandlers.OnFocus(ev)
	}
}

func (w *Autocomplete[T, N]) handleClick(ClickEvent) {
	if w.input != nil && w.input.Focused() && !w.IsOpen() {
		w.setState(func(s *State) { s.IsOpen = true }, nil)
	}
}
