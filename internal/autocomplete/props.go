package autocomplete

import "maps"

// Attrs are pass-through attributes for the input or the wrapper.
type Attrs map[string]string

// Clone returns a copy that is safe to modify.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a)+4)
	maps.Copy(out, a)
	return out
}

// InputHandlers are caller handlers run after the widget's own.
type InputHandlers struct {
	OnFocus   func(FocusEvent)
	OnBlur    func(FocusEvent)
	OnKeyDown func(*KeyEvent)
	OnClick   func(ClickEvent)
}

// Props is everything the host supplies on each render.
type Props[T any] struct {
	Items        []T
	Value        string
	GetItemValue func(item T) string

	ShouldItemRender Predicate[T]
	SortItems        Comparator[T]
	IsItemSelectable func(item T) bool

	Open          OpenControl
	AutoHighlight bool
	SelectOnBlur  bool
	Debug         bool

	InputProps    Attrs
	WrapperProps  Attrs
	InputHandlers InputHandlers

	OnChange               func(ev ChangeEvent, value string)
	OnSelect               func(value string, item T)
	OnMenuVisibilityChange func(open bool)
}

// DefaultProps returns props with auto-highlighting on and the menu self-managed.
func DefaultProps[T any]() Props[T] {
	return Props[T]{
		AutoHighlight: true,
		Open:          OpenAuto,
	}
}

func (p *Props[T]) selectable(item T) bool {
	if p.IsItemSelectable == nil {
		return true
	}
	return p.IsItemSelectable(item)
}

func (p *Props[T]) itemValue(item T) string {
	if p.GetItemValue == nil {
		return ""
	}
	return p.GetItemValue(item)
}
