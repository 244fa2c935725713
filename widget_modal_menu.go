package gui

import "fmt"

// MenuDataSource provides the items a modal menu lists. The menu only
// displays them; what they stand for is up to the source.
type MenuDataSource interface {
	// Count returns the number of items that pass the current filter.
	Count() int

	// Label returns the text of item index.
	Label(index int) string

	// IsMarked reports whether item index is drawn with a marker, e.g. the
	// current choice.
	IsMarked(index int) bool

	// Filter narrows the items to those matching query. An empty query
	// shows all items.
	Filter(query string)
}

// MenuDelegate receives the menu's decisions. Callbacks run after the
// frame's render pass.
type MenuDelegate interface {
	// OnSelect is called when the highlighted item changes.
	OnSelect(index int)

	// OnConfirm is called when an item is clicked or Enter is pressed.
	OnConfirm(index int)

	// OnCancel is called when Escape closes the menu.
	OnCancel()
}

// ModalMenu is a searchable list in a centered modal panel. Typing goes to
// the search box; Up/Down, PageUp/PageDown and the mouse wheel move the
// highlight, and controller focus moves it too. The menu keeps its own
// state, so one value serves across frames.
//
// Usage:
//
//	menu := gui.NewModalMenu("vehicles", "Spawn vehicle", 20, 400, 10)
//	menu.SetDataSource(vehicles)
//	menu.SetDelegate(spawner)
//	menu.Open()
//
//	// in the declaration callback:
//	menu.Draw(ctx)
type ModalMenu struct {
	id         string
	title      string
	fontSize   float32
	width      float32
	maxVisible int

	source   MenuDataSource
	delegate MenuDelegate

	open     bool
	selected int
	scroll   int
	search   string
}

// NewModalMenu creates a closed menu. id must be unique among the frame's
// explicit ids; width is in virtual units.
func NewModalMenu(id, title string, fontSize, width float32, maxVisible int) *ModalMenu {
	return &ModalMenu{
		id:         id,
		title:      title,
		fontSize:   fontSize,
		width:      width,
		maxVisible: max(maxVisible, 1),
	}
}

func (m *ModalMenu) SetDataSource(ds MenuDataSource) { m.source = ds }
func (m *ModalMenu) SetDelegate(d MenuDelegate)      { m.delegate = d }

// Open opens the menu with the search cleared and the first item
// highlighted.
func (m *ModalMenu) Open() {
	m.open = true
	m.selected = 0
	m.scroll = 0
	m.search = ""
	if m.source != nil {
		m.source.Filter("")
	}
}

func (m *ModalMenu) Close() { m.open = false }

func (m *ModalMenu) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

func (m *ModalMenu) IsOpen() bool         { return m.open }
func (m *ModalMenu) SelectedIndex() int   { return m.selected }
func (m *ModalMenu) SearchText() string   { return m.search }
func (m *ModalMenu) searchID() ID         { return HashID(m.id + "_search") }
func (m *ModalMenu) rowID(i int) string   { return fmt.Sprintf("%s_item_%d", m.id, i) }
func (m *ModalMenu) visibleEnd(n int) int { return min(m.scroll+m.maxVisible, n) }

// Draw declares the open menu as an overlay above the rest of the frame.
// Call it from the declaration callback in both passes.
func (m *ModalMenu) Draw(ctx *Context) {
	if !m.open || m.source == nil {
		return
	}
	ctx.Overlay(func() { m.declare(ctx) })
}

func (m *ModalMenu) declare(ctx *Context) {
	style := ctx.Style()
	count := m.source.Count()
	m.clamp(count)

	ctx.StartGroup(LayoutVerticalLeft, 0, m.id)
	ctx.PositionGroup(AlignCenter, AlignCenter, Vec2{})
	ctx.ModalGroup()
	ctx.ColorBackground(style.PanelColor)
	ctx.StartGroup(LayoutVerticalLeft, SpaceSM, "")
	ctx.SetMargin(UniformMargin(SpaceLG))

	ctx.Label(m.title, m.fontSize)

	// Typing anywhere in the menu starts a search.
	if ctx.pass == PassRender && len(ctx.Input.InputChars) > 0 && ctx.gui.editing != m.searchID() {
		ctx.gui.beginEdit(m.searchID(), m.search)
	}
	if ctx.Edit(m.fontSize, Vec2{X: m.width}, m.id+"_search", &m.search, WithPlaceholder("Type to search...")) == EditUpdated {
		// Queued after the edit box's own write, so the new text is set.
		ctx.deferWrite(func() { m.refilter(ctx) })
	}
	ctx.HintStatus(m.fontSize*0.8, "%d items", count)

	for i := m.scroll; i < m.visibleEnd(count); i++ {
		m.row(ctx, i)
	}
	if count == 0 {
		ctx.HintEmpty(m.fontSize, "No matches")
	}
	ctx.HintFooterNav(m.fontSize * 0.8)
	ctx.EndGroup()

	if ctx.pass == PassRender {
		m.handleKeys(ctx, count)
	}
	ctx.EndGroup()
}

func (m *ModalMenu) row(ctx *Context, i int) {
	style := ctx.Style()
	ctx.StartGroup(LayoutOverlayStart, 0, m.rowID(i))
	ev := ctx.CheckEvent()
	if i == m.selected {
		ctx.SetDefaultFocus()
	}
	var bg uint32
	switch {
	case i == m.selected:
		bg = style.SelectionColor
	case ev.Has(EventHover):
		bg = style.ButtonHoveredColor
	}
	ctx.ColorBackground(bg)
	ctx.Spacer(Vec2{X: m.width, Y: m.fontSize + style.ButtonPadding*2})
	label := m.source.Label(i)
	if m.source.IsMarked(i) {
		label = "* " + label
	}
	ctx.Label(label, m.fontSize, WithMargin(UniformMargin(style.ButtonPadding)))

	if ctx.pass == PassRender {
		// Focus moved by a controller or a press highlights the row.
		if ctx.HasFocus() && i != m.selected {
			ctx.deferWrite(func() { m.selectIndex(ctx, i) })
		}
		if ev.Clicked() {
			ctx.deferWrite(func() { m.confirm(i) })
		}
	}
	ctx.drawFocus()
	ctx.EndGroup()
}

func (m *ModalMenu) handleKeys(ctx *Context, count int) {
	in := ctx.Input
	next := m.selected
	switch {
	case in.KeyRepeated(KeyUp):
		next--
	case in.KeyRepeated(KeyDown):
		next++
	case in.KeyRepeated(KeyPageUp):
		next -= m.maxVisible
	case in.KeyRepeated(KeyPageDown):
		next += m.maxVisible
	}
	if ctx.gui.editing != m.searchID() {
		// Home and End move the search cursor while typing.
		switch {
		case in.KeyPressed(KeyHome):
			next = 0
		case in.KeyPressed(KeyEnd):
			next = count - 1
		}
	}
	if in.WheelY != 0 {
		next -= int(in.WheelY * 3)
	}
	next = clampi(next, 0, max(count-1, 0))
	if next != m.selected {
		ctx.deferWrite(func() { m.selectIndex(ctx, next) })
	}

	switch {
	case in.KeyPressed(KeyEscape):
		ctx.deferWrite(m.cancel)
	case in.KeyPressed(KeyEnter) && count > 0:
		sel := m.selected
		ctx.deferWrite(func() { m.confirm(sel) })
	}
}

// selectIndex highlights item i, scrolls it into view and moves focus to
// its row so controller navigation continues from there.
func (m *ModalMenu) selectIndex(ctx *Context, i int) {
	m.selected = i
	if i < m.scroll {
		m.scroll = i
	}
	if i >= m.scroll+m.maxVisible {
		m.scroll = i - m.maxVisible + 1
	}
	ctx.gui.focus = HashID(m.rowID(i))
	if m.delegate != nil {
		m.delegate.OnSelect(i)
	}
}

func (m *ModalMenu) refilter(ctx *Context) {
	m.source.Filter(m.search)
	m.selected = 0
	m.scroll = 0
	ctx.gui.focus = HashID(m.rowID(0))
}

func (m *ModalMenu) confirm(i int) {
	if m.delegate != nil {
		m.delegate.OnConfirm(i)
	}
}

func (m *ModalMenu) cancel() {
	m.Close()
	if m.delegate != nil {
		m.delegate.OnCancel()
	}
}

// clamp keeps the highlight and the scroll window inside n items.
func (m *ModalMenu) clamp(n int) {
	m.scroll = clampi(m.scroll, 0, max(n-m.maxVisible, 0))
	m.selected = clampi(m.selected, 0, max(n-1, 0))
}
