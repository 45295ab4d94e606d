package autocomplete

// The methods below forward to the mounted input and do nothing when no
// input is mounted.

// Focus focuses the input.
func (w *Autocomplete[T, N]) Focus() {
	if w.input != nil {
		w.input.Focus()
	}
}

// Blur removes focus from the input.
func (w *Autocomplete[T, N]) Blur() {
	if w.input != nil {
		w.input.Blur()
	}
}

// Click clicks the input.
func (w *Autocomplete[T, N]) Click() {
	if w.input != nil {
		w.input.Click()
	}
}

// Select selects all input text.
func (w *Autocomplete[T, N]) Select() {
	if w.input != nil {
		w.input.Select()
	}
}

// CheckValidity reports the input's validity. It is false with no input.
func (w *Autocomplete[T, N]) CheckValidity() bool {
	if w.input == nil {
		return false
	}
	return w.input.CheckValidity()
}

// SetCustomValidity sets the input's custom validation message.
func (w *Autocomplete[T, N]) SetCustomValidity(message string) {
	if w.input != nil {
		w.input.SetCustomValidity(message)
	}
}

// SetSelectionRange selects runes [start, end) of the input.
func (w *Autocomplete[T, N]) SetSelectionRange(start, end int) {
	if w.input != nil {
		w.input.SetSelectionRange(start, end)
	}
}

// SetRangeText replaces runes [start, end) of the input text.
func (w *Autocomplete[T, N]) SetRangeText(replacement string, start, end int) {
	if w.input != nil {
		w.input.SetRangeText(replacement, start, end)
	}
}
