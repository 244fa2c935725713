package gui

// Pass is the phase of a frame during which the declaration callback runs.
type Pass uint8

const (
	PassNone   Pass = iota // Outside Run
	PassLayout             // Pass 1: build and measure the tree
	PassRender             // Pass 2: replay, report events, draw
)

func (p Pass) String() string {
	switch p {
	case PassLayout:
		return "layout"
	case PassRender:
		return "render"
	default:
		return "none"
	}
}

// Context is handed to the declaration callback. The same callback runs
// twice per frame: once to measure and once to render. Declarations must be
// identical in both passes.
//
// Sizes, margins, spacing and offsets passed to Context methods are in
// virtual units; see Config.VirtualResolution.
type Context struct {
	gui  *GUI
	pass Pass
	tree tree

	// cursor is the index of the last node replayed in the render pass.
	cursor int32

	// Input for the current frame.
	Input *InputState
	// DrawList receives primitives during the render pass.
	DrawList *DrawList
	// FrameCount is the number of the frame being run, starting at 1.
	FrameCount uint64
	// DeltaTime is the frame time in seconds.
	DeltaTime float32

	scale  float32
	screen Vec2i

	text      TextStyle
	textColor uint32

	deferred  []func()
	overlays  []func()
	scrolls   []scrollFrame
	wheelUsed bool
}

func newContext(g *GUI) *Context {
	return &Context{gui: g, scale: 1}
}

// beginPass resets per-pass state. The layout pass rebuilds the tree; the
// render pass replays it from the start.
func (ctx *Context) beginPass(p Pass) {
	ctx.pass = p
	ctx.text = defaultTextStyle(ctx.gui.style.Fonts)
	ctx.textColor = ctx.gui.style.TextColor
	ctx.scrolls = ctx.scrolls[:0]
	ctx.overlays = ctx.overlays[:0]
	ctx.wheelUsed = false
	switch p {
	case PassLayout:
		ctx.tree.reset()
		ctx.tree.nodes[0].size = ctx.screen
		ctx.deferred = ctx.deferred[:0]
	case PassRender:
		ctx.tree.stack = append(ctx.tree.stack[:0], 0)
		ctx.cursor = 0
		ctx.DrawList = AcquireDrawList()
	}
}

// discard drops everything produced by a failed frame.
func (ctx *Context) discard() {
	ctx.deferred = ctx.deferred[:0]
	ctx.overlays = ctx.overlays[:0]
	if ctx.DrawList != nil {
		ReleaseDrawList(ctx.DrawList)
		ctx.DrawList = nil
	}
	ctx.pass = PassNone
}

// applyDeferred runs the value writes queued by widgets during the render
// pass, in declaration order.
func (ctx *Context) applyDeferred() {
	for _, f := range ctx.deferred {
		f()
	}
	ctx.deferred = ctx.deferred[:0]
}

// deferWrite queues f until the frame's render pass has completed, so the
// rest of the pass sees the same values as the layout pass.
func (ctx *Context) deferWrite(f func()) {
	ctx.deferred = append(ctx.deferred, f)
}

// Overlay queues fn to be declared at the top level once the declaration
// callback returns. Groups it opens are laid out against the screen and
// follow everything else in the tree, so they draw on top and a ModalGroup
// among them blocks the whole frame. Overlays may queue more overlays.
//
// Call Overlay in both passes, like any other declaration.
func (ctx *Context) Overlay(fn func()) {
	ctx.checkActive("Overlay")
	ctx.overlays = append(ctx.overlays, fn)
}

// finishPass declares the queued overlays and checks that every group of
// the pass was closed.
func (ctx *Context) finishPass() {
	if ctx.tree.depth() == 0 {
		for i := 0; i < len(ctx.overlays); i++ {
			ctx.overlays[i]()
		}
	}
	ctx.overlays = ctx.overlays[:0]
	if d := ctx.tree.depth(); d != 0 {
		fault("Run", FaultUnmatchedStart, d, ctx.pass)
	}
}

// Pass returns the current pass.
func (ctx *Context) Pass() Pass { return ctx.pass }

// IsLayoutPass reports whether the callback is measuring.
func (ctx *Context) IsLayoutPass() bool { return ctx.pass == PassLayout }

// Scale returns the number of physical pixels per virtual unit.
func (ctx *Context) Scale() float32 { return ctx.scale }

// ScreenSize returns the window size in physical pixels.
func (ctx *Context) ScreenSize() Vec2i { return ctx.screen }

// ToPhysical converts a virtual length to physical pixels.
func (ctx *Context) ToPhysical(v float32) int { return VirtualToPhysical(v, ctx.scale) }

// ToVirtual converts a physical length to virtual units.
func (ctx *Context) ToVirtual(p int) float32 { return PhysicalToVirtual(p, ctx.scale) }

func (ctx *Context) px(v float32) int { return VirtualToPhysical(v, ctx.scale) }

func (ctx *Context) pxVec(v Vec2) Vec2i {
	return Vec2i{X: ctx.px(v.X), Y: ctx.px(v.Y)}
}

func (ctx *Context) insets(m Margin) insets {
	return insets{left: ctx.px(m.Left), top: ctx.px(m.Top), right: ctx.px(m.Right), bottom: ctx.px(m.Bottom)}
}

// Style returns the active style.
func (ctx *Context) Style() *Style { return &ctx.gui.style }

// Store returns the persistent widget state store.
func (ctx *Context) Store() *Store { return ctx.gui.store }

// Diagnostics returns the frame's diagnostic channel.
func (ctx *Context) Diagnostics() *Diagnostics { return ctx.gui.diag }

// Assets returns the asset provider, or nil.
func (ctx *Context) Assets() AssetProvider { return ctx.gui.assets }

// Clipboard returns the clipboard used by edit boxes.
func (ctx *Context) Clipboard() ClipboardProvider { return ctx.gui.clipboard }

func (ctx *Context) checkActive(op string) {
	if ctx.pass == PassNone {
		panic(&StructuralError{Op: op, Kind: FaultOutsideCallback, Pass: PassNone})
	}
}

// node declares (layout pass) or replays (render pass) the next node.
func (ctx *Context) node(kind nodeKind, op string) int32 {
	ctx.checkActive(op)
	if ctx.pass == PassLayout {
		return ctx.tree.add(kind)
	}
	ctx.cursor++
	if int(ctx.cursor) >= len(ctx.tree.nodes) {
		fault(op, FaultDivergentPass, ctx.tree.depth(), ctx.pass)
	}
	n := &ctx.tree.nodes[ctx.cursor]
	if n.kind != kind || n.parent != ctx.tree.top() {
		fault(op, FaultDivergentPass, ctx.tree.depth(), ctx.pass)
	}
	return ctx.cursor
}

// assignID sets the id of a node declared in the layout pass.
func (ctx *Context) assignID(idx int32, explicit, salt string) ID {
	n := &ctx.tree.nodes[idx]
	if explicit != "" {
		n.id = HashID(explicit)
	} else {
		p := &ctx.tree.nodes[n.parent]
		n.id = childID(p.id, salt, p.childCount-1)
	}
	return n.id
}

// group returns the innermost open group, faulting when none is open.
func (ctx *Context) group(op string) *node {
	ctx.checkActive(op)
	top := ctx.tree.top()
	if top == 0 {
		fault(op, FaultNoGroup, 0, ctx.pass)
	}
	return &ctx.tree.nodes[top]
}

// StartGroup opens a group. Spacing is the gap between children along the
// primary axis. Every StartGroup needs a matching EndGroup in the same pass.
func (ctx *Context) StartGroup(layout Layout, spacing float32, id string) {
	ctx.startGroup("StartGroup", layout, spacing, id)
}

func (ctx *Context) startGroup(op string, layout Layout, spacing float32, id string) int32 {
	idx := ctx.node(kindGroup, op)
	if ctx.pass == PassLayout {
		n := &ctx.tree.nodes[idx]
		n.layout = layout
		n.spacing = ctx.px(spacing)
		ctx.assignID(idx, id, "group")
	}
	ctx.tree.push(idx)
	return idx
}

// startGroupID opens a group with a precomputed id.
func (ctx *Context) startGroupID(op string, layout Layout, spacing float32, id ID) int32 {
	idx := ctx.startGroup(op, layout, spacing, "")
	if ctx.pass == PassLayout {
		ctx.tree.nodes[idx].id = id
	}
	return idx
}

// startFixedGroup opens a group whose size is given rather than measured.
// A clipping group also clips its children to its rectangle.
func (ctx *Context) startFixedGroup(op string, layout Layout, id string, size Vec2i, clips bool) int32 {
	idx := ctx.startGroup(op, layout, 0, id)
	n := &ctx.tree.nodes[idx]
	switch ctx.pass {
	case PassLayout:
		n.fixedSize = true
		n.size = size
		n.clips = clips
	case PassRender:
		if n.clips {
			r := n.hitRect()
			ctx.DrawList.PushClipRect(float32(r.X), float32(r.Y), float32(r.X+r.W), float32(r.Y+r.H))
		}
	}
	return idx
}

// EndGroup closes the innermost group. In the layout pass it measures the
// group from its children.
func (ctx *Context) EndGroup() {
	ctx.checkActive("EndGroup")
	idx := ctx.tree.pop()
	if idx == noNode {
		fault("EndGroup", FaultUnmatchedEnd, 0, ctx.pass)
	}
	n := &ctx.tree.nodes[idx]
	switch ctx.pass {
	case PassLayout:
		size := measureGroup(ctx.tree.nodes, n)
		if n.fixedSize {
			n.content = size
		} else {
			n.size = size
		}
	case PassRender:
		if n.clips {
			ctx.DrawList.PopClipRect()
		}
	}
}

// Group wraps StartGroup/EndGroup around fn.
//
// Usage:
//
//	ctx.Group(gui.LayoutVerticalCenter, 10, "menu")(func() {
//	    ctx.Label("Title", 40)
//	})
func (ctx *Context) Group(layout Layout, spacing float32, id string) func(func()) {
	return func(fn func()) {
		ctx.StartGroup(layout, spacing, id)
		fn()
		ctx.EndGroup()
	}
}

// SetMargin sets the margin of the innermost group.
func (ctx *Context) SetMargin(m Margin) {
	n := ctx.group("SetMargin")
	if ctx.pass == PassLayout {
		n.margin = ctx.insets(m)
	}
}

// PositionGroup aligns the innermost group within the screen and moves it
// by offset. Only the offset applies to groups nested in another group.
func (ctx *Context) PositionGroup(horizontal, vertical Alignment, offset Vec2) {
	n := ctx.group("PositionGroup")
	if ctx.pass == PassLayout {
		n.rootAlign = [2]Alignment{horizontal, vertical}
		n.offset = ctx.pxVec(offset)
	}
}

// ModalGroup makes the innermost group modal: elements declared before it
// receive no events this frame.
func (ctx *Context) ModalGroup() {
	n := ctx.group("ModalGroup")
	if ctx.pass == PassLayout {
		n.modal = true
	}
}

// SetDefaultFocus makes the innermost group the focus target when nothing
// is focused.
func (ctx *Context) SetDefaultFocus() {
	n := ctx.group("SetDefaultFocus")
	if ctx.pass == PassLayout {
		n.defaultFocus = true
		n.interactive = true
	}
}

// ColorBackground fills the innermost group. Call it right after StartGroup
// so the fill is drawn below the children.
func (ctx *Context) ColorBackground(color uint32) {
	n := ctx.group("ColorBackground")
	switch ctx.pass {
	case PassLayout:
		n.bgColor = color
	case PassRender:
		r := n.rect()
		ctx.DrawList.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color)
	}
}

// ImageBackground stretches tex over the innermost group.
func (ctx *Context) ImageBackground(tex Texture) {
	n := ctx.group("ImageBackground")
	switch ctx.pass {
	case PassLayout:
		n.bgTex = tex
	case PassRender:
		if tex == nil {
			return
		}
		r := n.rect()
		ctx.DrawList.AddImage(float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			tex.TextureID(), [2]float32{0, 0}, [2]float32{1, 1}, ColorWhite)
		ctx.DrawList.SetTexture(0)
	}
}

// ImageBackgroundNinePatch draws tex over the innermost group, stretching
// only the center and edges described by patch.
func (ctx *Context) ImageBackgroundNinePatch(tex Texture, patch NinePatch) {
	n := ctx.group("ImageBackgroundNinePatch")
	switch ctx.pass {
	case PassLayout:
		n.bgTex, n.bgPatch, n.bgNine = tex, patch, true
	case PassRender:
		if tex == nil {
			return
		}
		r := n.rect()
		ctx.DrawList.AddNinePatch(float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			tex.TextureID(), tex.Size(), patch, ColorWhite)
		ctx.DrawList.SetTexture(0)
	}
}

// CheckEvent makes the innermost group interactive and returns its events
// for this frame. It always returns EventNone in the layout pass.
func (ctx *Context) CheckEvent() Event {
	n := ctx.group("CheckEvent")
	if ctx.pass == PassLayout {
		n.interactive = true
		return EventNone
	}
	return n.events
}

// eventsOf returns this frame's events of the element with id. Only valid
// in the render pass.
func (ctx *Context) eventsOf(id ID) Event {
	if i, ok := ctx.gui.byID[id]; ok {
		return ctx.tree.nodes[i].events
	}
	return EventNone
}

// CurrentID returns the id of the innermost group.
func (ctx *Context) CurrentID() ID {
	return ctx.group("CurrentID").id
}

// CurrentRect returns the placed rectangle of the innermost group. It is
// only meaningful in the render pass.
func (ctx *Context) CurrentRect() Rect {
	return ctx.group("CurrentRect").rect()
}

// HasFocus reports whether the innermost group has navigation focus.
func (ctx *Context) HasFocus() bool {
	n := ctx.group("HasFocus")
	return n.id == ctx.gui.focus
}

// CapturePointer routes the pointer that pressed the innermost group to it
// until ReleasePointer, regardless of what lies under the pointer.
func (ctx *Context) CapturePointer() {
	n := ctx.group("CapturePointer")
	if ctx.pass == PassRender {
		ctx.gui.capture(n.id)
	}
}

// ReleasePointer ends a capture held by the innermost group.
func (ctx *Context) ReleasePointer() {
	n := ctx.group("ReleasePointer")
	if ctx.pass == PassRender {
		ctx.gui.release(n.id)
	}
}

// PointerPos returns the position of the pointer interacting with the
// innermost group, or of the mouse when none is.
func (ctx *Context) PointerPos() Vec2i {
	n := ctx.group("PointerPos")
	return ctx.Input.Pointers[ctx.gui.sourceFor(n.id)].Pos
}

// DragStart returns where the pointer interacting with the innermost group
// was pressed.
func (ctx *Context) DragStart() Vec2i {
	n := ctx.group("DragStart")
	return ctx.gui.sources[ctx.gui.sourceFor(n.id)].dragStart
}

// SetDragPayload attaches a value to the drag in progress. It is cleared on
// the frame after the drag ends.
func (ctx *Context) SetDragPayload(v Value) {
	ctx.checkActive("SetDragPayload")
	if ctx.pass == PassRender {
		ctx.gui.payload = v
	}
}

// DragPayload returns the payload of the current or just-ended drag.
func (ctx *Context) DragPayload() (Value, bool) {
	ctx.checkActive("DragPayload")
	p := ctx.gui.payload
	return p, !p.IsNone()
}

// SetTextColor sets the color of subsequent text in this pass.
func (ctx *Context) SetTextColor(color uint32) {
	ctx.checkActive("SetTextColor")
	ctx.textColor = color
}

// SetTextFont selects the font fallback list for subsequent text. It
// returns false, keeping the previous fonts, when none of them is loaded.
func (ctx *Context) SetTextFont(names ...string) bool {
	ctx.checkActive("SetTextFont")
	fp := ctx.gui.fonts
	if fp == nil || len(names) == 0 {
		return false
	}
	for _, name := range names {
		if fp.HasFont(name) {
			ctx.text.Fonts = names
			return true
		}
	}
	if ctx.pass == PassLayout {
		ctx.gui.diag.Reportf(DiagResource, "no font loaded among %v", names)
	}
	return false
}

// SetTextLocale sets the BCP 47 locale for subsequent text.
func (ctx *Context) SetTextLocale(locale string) {
	ctx.checkActive("SetTextLocale")
	ctx.text.Locale = locale
}

// SetTextDirection sets the writing direction for subsequent text.
func (ctx *Context) SetTextDirection(dir TextDirection) {
	ctx.checkActive("SetTextDirection")
	ctx.text.Direction = dir
}

// SetTextLineHeightScale scales the distance between lines.
func (ctx *Context) SetTextLineHeightScale(s float32) {
	ctx.checkActive("SetTextLineHeightScale")
	ctx.text.LineHeightScale = s
}

// SetTextKerningScale scales kerning adjustments.
func (ctx *Context) SetTextKerningScale(s float32) {
	ctx.checkActive("SetTextKerningScale")
	ctx.text.KerningScale = s
}

// layoutText shapes text with the current text state. Without a font
// provider, or when none of the fonts is loaded, it falls back to the
// renderer's bitmap font.
func (ctx *Context) layoutText(text string, size, maxWidth int) *TextLayout {
	st := ctx.text
	st.Size = size
	st.MaxWidth = maxWidth
	if fp := ctx.gui.fonts; fp != nil {
		if tl, ok := fp.LayoutText(text, st); ok {
			return tl
		}
		if ctx.pass == PassLayout {
			ctx.gui.diag.Reportf(DiagResource, "no font among %v for %q", st.Fonts, text)
		}
	}
	var tex uint32
	if ctx.gui.renderer != nil {
		tex = ctx.gui.renderer.FontTextureID()
	}
	return layoutBitmapText(text, size, maxWidth, tex)
}

// MeasureText returns the size of text in physical pixels at fontSize.
func (ctx *Context) MeasureText(text string, fontSize float32) Vec2i {
	ctx.checkActive("MeasureText")
	return ctx.layoutText(text, ctx.px(fontSize), 0).Size
}

func (ctx *Context) drawText(pos Vec2i, tl *TextLayout, color uint32) {
	if tl == nil || len(tl.Glyphs) == 0 {
		return
	}
	ctx.DrawList.SetTexture(tl.TextureID)
	ctx.DrawList.AddGlyphQuads(float32(pos.X), float32(pos.Y), tl.Glyphs, color)
	ctx.DrawList.SetTexture(0)
}

// leaf declares a leaf node with common options applied.
func (ctx *Context) leaf(kind nodeKind, op, salt string, o options) (int32, *node) {
	idx := ctx.node(kind, op)
	n := &ctx.tree.nodes[idx]
	if ctx.pass == PassLayout {
		n.margin = ctx.insets(GetOpt(o, OptMargin))
		ctx.assignID(idx, GetOpt(o, OptID), salt)
	}
	return idx, n
}

// Label draws a single line of text. fontSize is the line height.
func (ctx *Context) Label(text string, fontSize float32, opts ...Option) {
	ctx.textLeaf("Label", text, fontSize, 0, opts)
}

// TextArea draws text wrapped at word boundaries to maxWidth.
func (ctx *Context) TextArea(text string, fontSize, maxWidth float32, opts ...Option) {
	ctx.textLeaf("TextArea", text, fontSize, maxWidth, opts)
}

func (ctx *Context) textLeaf(op, text string, fontSize, maxWidth float32, opts []Option) {
	o := applyOptions(opts)
	_, n := ctx.leaf(kindLabel, op, text, o)
	switch ctx.pass {
	case PassLayout:
		n.text = ctx.layoutText(text, ctx.px(fontSize), ctx.px(maxWidth))
		n.size = n.text.Size
	case PassRender:
		color := ctx.textColor
		if HasOpt(o, OptColor) {
			color = GetOpt(o, OptColor)
		}
		ctx.drawText(n.pos, n.text, color)
	}
}

// Image draws tex scaled to height, keeping its aspect ratio. A nil texture
// takes no space. It returns whether anything was drawn.
func (ctx *Context) Image(tex Texture, height float32, opts ...Option) bool {
	o := applyOptions(opts)
	_, n := ctx.leaf(kindImage, "Image", "image", o)
	switch ctx.pass {
	case PassLayout:
		n.tex = tex
		if tex != nil {
			ts := tex.Size()
			h := ctx.px(height)
			w := 0
			if ts.Y > 0 {
				w = VirtualToPhysical(float32(ts.X)/float32(ts.Y), float32(h))
			}
			n.size = Vec2i{X: w, Y: h}
		}
	case PassRender:
		if n.tex == nil {
			return false
		}
		r := n.rect()
		ctx.DrawList.AddImage(float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			n.tex.TextureID(), [2]float32{0, 0}, [2]float32{1, 1}, GetOpt(o, OptTint))
		ctx.DrawList.SetTexture(0)
	}
	return n.tex != nil
}

// ImageByName resolves name through the asset provider and draws it like
// Image. A missing texture is reported once per frame and takes no space.
func (ctx *Context) ImageByName(name string, height float32, opts ...Option) bool {
	ctx.checkActive("ImageByName")
	tex := ctx.texture(name)
	return ctx.Image(tex, height, opts...)
}

// texture looks up a named texture, reporting misses during the layout pass.
func (ctx *Context) texture(name string) Texture {
	if ctx.gui.assets != nil {
		if tex, ok := ctx.gui.assets.Texture(name); ok {
			return tex
		}
	}
	if ctx.pass == PassLayout {
		ctx.gui.diag.Reportf(DiagResource, "texture %q not found", name)
	}
	return nil
}

// CustomElement reserves an interactive rectangle of the given size. In the
// render pass draw is called with its placed position and size, and the
// element's events are returned.
func (ctx *Context) CustomElement(size Vec2, id string, draw func(pos, size Vec2i)) Event {
	idx, n := ctx.leaf(kindCustom, "CustomElement", "custom", options{})
	switch ctx.pass {
	case PassLayout:
		n.size = ctx.pxVec(size)
		n.interactive = true
		if id != "" {
			ctx.assignID(idx, id, "")
		}
		return EventNone
	default:
		if draw != nil {
			draw(n.pos, n.size)
		}
		return n.events
	}
}

// Spacer reserves empty space of the given size.
func (ctx *Context) Spacer(size Vec2) {
	ctx.box("Spacer", ctx.pxVec(size))
}

// box declares a non-interactive leaf of a physical size and returns it so
// widgets can draw into its placed rectangle.
func (ctx *Context) box(op string, size Vec2i) *node {
	_, n := ctx.leaf(kindCustom, op, "box", options{})
	if ctx.pass == PassLayout {
		n.size = size
	}
	return n
}
