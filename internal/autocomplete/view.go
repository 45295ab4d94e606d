package autocomplete

// MenuStyle is the anchoring handed to the menu renderer.
type MenuStyle struct {
	Left       int
	Top        int
	MinWidth   int
	Positioned bool
}

// ItemStyle is handed to the item renderer.
type ItemStyle struct {
	Cursor string
}

var itemStyle = ItemStyle{Cursor: "default"}

// InputProps is everything the input renderer must wire into its element.
type InputProps struct {
	Attrs Attrs
	Value string

	Ref       func(InputElement)
	OnFocus   func(FocusEvent)
	OnBlur    func(FocusEvent)
	OnChange  func(ChangeEvent)
	OnKeyDown func(*KeyEvent)
	OnClick   func(ClickEvent)
}

// ItemView is one rendered menu row. Rows for items that are not
// selectable have nil handlers.
type ItemView[N any] struct {
	Node        N
	Index       int
	Highlighted bool

	OnMouseEnter func()
	OnClick      func()
	Ref          func(ItemElement)
}

// Interactive reports whether the row reacts to the pointer.
func (v ItemView[N]) Interactive() bool {
	return v.OnClick != nil
}

// MenuView is the rendered menu and the pointer handlers for its region.
type MenuView[N any] struct {
	Node  N
	Items []ItemView[N]
	Style MenuStyle

	Ref          func(MenuElement)
	OnMouseEnter func()
	OnMouseLeave func()
	OnTouchStart func()
}

// View is the output of one render.
type View[N any] struct {
	Wrapper    Attrs
	Input      N
	InputProps InputProps
	Menu       *MenuView[N]
	Visibility Visibility
	Debug      []Snapshot
}

// Renderers turn widget output into host nodes.
type Renderers[T, N any] struct {
	RenderInput func(props InputProps) N
	RenderItem  func(item T, highlighted bool, style ItemStyle) N
	RenderMenu  func(items []ItemView[N], value string, style MenuStyle) N
}
