package gui

// scrollWheelStep is how far one wheel notch scrolls, in virtual units.
const scrollWheelStep = 40

// scrollFrame is an open scroll view.
type scrollFrame struct {
	idx    int32
	offset *Vec2
	events Event
}

// StartScroll opens a scroll view of a fixed size. Its children are laid
// out vertically, shifted by *offset (virtual units) and clipped to the
// view. The view scrolls with the mouse wheel and by dragging its
// background. Close it with EndScroll.
func (ctx *Context) StartScroll(size Vec2, offset *Vec2, id string) {
	idx := ctx.startFixedGroup("StartScroll", LayoutVerticalLeft, id, ctx.pxVec(size), true)
	if ctx.pass == PassLayout {
		ctx.tree.nodes[idx].scroll = ctx.pxVec(*offset)
	}
	ev := ctx.CheckEvent()
	ctx.scrolls = append(ctx.scrolls, scrollFrame{idx: idx, offset: offset, events: ev})
}

// EndScroll closes the innermost scroll view. The new offset, clamped to
// the content, is written to the caller's offset after the render pass.
func (ctx *Context) EndScroll() {
	ctx.checkActive("EndScroll")
	if len(ctx.scrolls) == 0 {
		fault("EndScroll", FaultUnmatchedEnd, ctx.tree.depth(), ctx.pass)
	}
	f := ctx.scrolls[len(ctx.scrolls)-1]
	ctx.scrolls = ctx.scrolls[:len(ctx.scrolls)-1]
	if ctx.tree.top() != f.idx {
		fault("EndScroll", FaultUnmatchedStart, ctx.tree.depth(), ctx.pass)
	}
	ctx.EndGroup()

	n := &ctx.tree.nodes[f.idx]
	maxPx := Vec2i{X: max(0, n.content.X-n.size.X), Y: max(0, n.content.Y-n.size.Y)}
	if ctx.pass == PassLayout {
		n.scroll = Vec2i{X: clampi(n.scroll.X, 0, maxPx.X), Y: clampi(n.scroll.Y, 0, maxPx.Y)}
		return
	}

	state := StateOf(ctx.Store(), n.id, ScrollState{})
	state.ContentSize = n.content
	ev := f.events
	next := *f.offset
	src := ctx.gui.sourceFor(n.id)

	if ev.Has(EventStartDrag) {
		state.Dragging = true
		state.DragStart = ctx.gui.sources[src].dragStart
		state.DragOffset = *f.offset
		ctx.gui.capture(n.id)
	}
	if state.Dragging && ev.Any(EventStartDrag|EventIsDragging) {
		d := ctx.Input.Pointers[src].Pos.Sub(state.DragStart)
		next = Vec2{X: state.DragOffset.X - ctx.ToVirtual(d.X), Y: state.DragOffset.Y - ctx.ToVirtual(d.Y)}
	}
	if ev.Any(EventEndDrag | EventWentUp) {
		state.Dragging = false
		ctx.gui.release(n.id)
	}

	in := ctx.Input
	if !ctx.wheelUsed && (in.WheelX != 0 || in.WheelY != 0) &&
		int(f.idx) >= ctx.gui.boundary && n.hitRect().Contains(in.Pointers[0].Pos) {
		ctx.wheelUsed = true
		next.X -= in.WheelX * scrollWheelStep
		next.Y -= in.WheelY * scrollWheelStep
	}

	maxV := Vec2{X: ctx.ToVirtual(maxPx.X), Y: ctx.ToVirtual(maxPx.Y)}
	next = Vec2{X: clampf(next.X, 0, maxV.X), Y: clampf(next.Y, 0, maxV.Y)}
	if next != *f.offset {
		offset := f.offset
		ctx.deferWrite(func() { *offset = next })
	}

	ctx.drawScrollIndicators(n, maxPx)
}

// drawScrollIndicators draws thin bars along the right and bottom edges of
// a scroll view whose content overflows.
func (ctx *Context) drawScrollIndicators(n *node, maxPx Vec2i) {
	style := ctx.Style()
	r := n.rect()
	thick := max(ctx.px(4), 1)
	if maxPx.Y > 0 {
		bar := max(r.H*r.H/n.content.Y, thick)
		y := r.Y + n.scroll.Y*(r.H-bar)/maxPx.Y
		ctx.DrawList.AddRect(float32(r.X+r.W-thick), float32(y), float32(thick), float32(bar), style.ScrollbarGrabColor)
	}
	if maxPx.X > 0 {
		bar := max(r.W*r.W/n.content.X, thick)
		x := r.X + n.scroll.X*(r.W-bar)/maxPx.X
		ctx.DrawList.AddRect(float32(x), float32(r.Y+r.H-thick), float32(bar), float32(thick), style.ScrollbarGrabColor)
	}
}

// Scrollable wraps StartScroll/EndScroll around fn.
//
// Usage:
//
//	ctx.Scrollable(gui.Vec2{X: 400, Y: 300}, &listScroll, "items")(func() {
//	    for _, item := range items {
//	        ctx.Label(item, 30)
//	    }
//	})
func (ctx *Context) Scrollable(size Vec2, offset *Vec2, id string) func(func()) {
	return func(fn func()) {
		ctx.StartScroll(size, offset, id)
		fn()
		ctx.EndScroll()
	}
}

// EnsureScrollVisible adjusts a vertical scroll offset so that the span
// [targetY, targetY+targetH] of the content is inside a viewport of height
// viewportH, keeping padding on both sides. All values are virtual units.
//
// Usage:
//
//	// When selection changes via keyboard:
//	gui.EnsureScrollVisible(&listScroll, 300, float32(selected)*rowH, rowH, rowH)
func EnsureScrollVisible(offset *Vec2, viewportH, targetY, targetH, padding float32) {
	top := offset.Y + padding
	bottom := offset.Y + viewportH - padding
	switch {
	case targetY < top:
		offset.Y = max(targetY-padding, 0)
	case targetY+targetH > bottom:
		offset.Y = targetY + targetH + padding - viewportH
	}
}
