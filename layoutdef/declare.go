package layoutdef

import (
	"strconv"

	"github.com/go-theft-auto/flatgui"
)

// defaultFontSize is used by text nodes without font_size.
const defaultFontSize = 20

// Bindings holds the values that nodes bind to by key. Values live for as
// long as the Bindings, so widget writes applied after a frame land here.
type Bindings struct {
	bools   map[string]*bool
	floats  map[string]*float32
	texts   map[string]*string
	offsets map[string]*gui.Vec2

	// OnEvent receives node events: button clicks, toggles, slider moves and
	// finished edits. The name is the node's event, or its id, or its bind
	// key, whichever is set first.
	OnEvent func(name string)
}

// NewBindings returns empty bindings.
func NewBindings() *Bindings {
	return &Bindings{
		bools:   make(map[string]*bool),
		floats:  make(map[string]*float32),
		texts:   make(map[string]*string),
		offsets: make(map[string]*gui.Vec2),
	}
}

func binding[T any](m map[string]*T, key string) *T {
	p, ok := m[key]
	if !ok {
		p = new(T)
		m[key] = p
	}
	return p
}

// Bool returns the bool bound to key, creating it false.
func (b *Bindings) Bool(key string) *bool { return binding(b.bools, key) }

// Float returns the float bound to key, creating it zero.
func (b *Bindings) Float(key string) *float32 { return binding(b.floats, key) }

// Text returns the string bound to key, creating it empty.
func (b *Bindings) Text(key string) *string { return binding(b.texts, key) }

// Offset returns the scroll offset bound to key.
func (b *Bindings) Offset(key string) *gui.Vec2 { return binding(b.offsets, key) }

func (b *Bindings) emit(n *Node, fallback string) {
	if b.OnEvent == nil {
		return
	}
	for _, name := range []string{n.Event, n.ID, n.Bind, fallback} {
		if name != "" {
			b.OnEvent(name)
			return
		}
	}
}

// Declare declares the document's tree into ctx. Call it from the
// declaration function passed to gui.Run; it runs in both passes. Invalid
// nodes and their subtrees are skipped and reported once per frame, during
// the layout pass.
func (d *Document) Declare(ctx *gui.Context, b *Bindings) {
	if b == nil {
		b = NewBindings()
	}
	declareNode(ctx, b, &d.Root, "root")
}

func declareNode(ctx *gui.Context, b *Bindings, n *Node, path string) {
	if err := n.check(); err != nil {
		if ctx.IsLayoutPass() {
			ctx.Diagnostics().Reportf(gui.DiagMalformedData, "layout definition %s: %v", path, err)
		}
		return
	}

	fontSize := n.FontSize
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	opts := []gui.Option{gui.WithDisabled(n.Disabled)}
	if m, _ := parseMargin(n.Margin); m != (gui.Margin{}) {
		opts = append(opts, gui.WithMargin(m))
	}

	switch n.kind() {
	case kindGroup:
		layout, _ := gui.ParseLayout(n.Group)
		ctx.StartGroup(layout, n.Spacing, n.ID)
		applyGroupModifiers(ctx, n)
		declareChildren(ctx, b, n, path)
		ctx.EndGroup()

	case kindScroll:
		ctx.StartScroll(vec(n.Size), b.Offset(n.Scroll), n.ID)
		applyGroupModifiers(ctx, n)
		declareChildren(ctx, b, n, path)
		ctx.EndScroll()

	case kindLabel:
		ctx.Label(n.Label, fontSize, opts...)

	case kindText:
		ctx.TextArea(n.Text, fontSize, n.Width, opts...)

	case kindButton:
		if ctx.TextButton(n.Button, fontSize, n.ID, opts...).Clicked() {
			b.emit(n, n.Button)
		}

	case kindImageButton:
		tex, ok := texture(ctx, n.ImageButton)
		if !ok {
			return
		}
		if ctx.ImageButton(tex, n.Height, n.ID, opts...).Clicked() {
			b.emit(n, n.ImageButton)
		}

	case kindCheckbox:
		key := n.Bind
		if key == "" {
			key = n.Checkbox
		}
		if ctx.Checkbox(n.Checkbox, fontSize, b.Bool(key), n.ID, opts...) {
			b.emit(n, key)
		}

	case kindSlider:
		if n.Min != nil || n.Max != nil {
			lo, hi := float32(0), float32(1)
			if n.Min != nil {
				lo = *n.Min
			}
			if n.Max != nil {
				hi = *n.Max
			}
			opts = append(opts, gui.WithRange(lo, hi))
		}
		if ctx.Slider(vec(n.Size), b.Float(n.Slider), n.ID, opts...) {
			b.emit(n, n.Slider)
		}

	case kindEdit:
		if n.Placeholder != "" {
			opts = append(opts, gui.WithPlaceholder(n.Placeholder))
		}
		if n.MaxLength > 0 {
			opts = append(opts, gui.WithMaxLength(n.MaxLength))
		}
		if ctx.Edit(fontSize, vec(n.Size), n.ID, b.Text(n.Edit), opts...) == gui.EditFinished {
			b.emit(n, n.Edit)
		}

	case kindImage:
		ctx.ImageByName(n.Image, n.Height, opts...)

	case kindSpacer:
		ctx.Spacer(vec(n.Spacer))
	}
}

func declareChildren(ctx *gui.Context, b *Bindings, n *Node, path string) {
	for i := range n.Children {
		declareNode(ctx, b, &n.Children[i], path+"/"+strconv.Itoa(i))
	}
}

// applyGroupModifiers applies the modifiers of the group just started.
func applyGroupModifiers(ctx *gui.Context, n *Node) {
	if m, _ := parseMargin(n.Margin); m != (gui.Margin{}) {
		ctx.SetMargin(m)
	}
	if p := n.Position; p != nil {
		h, _ := gui.ParseAlignment(p.X)
		v, _ := gui.ParseAlignment(p.Y)
		var off gui.Vec2
		if len(p.Offset) == 2 {
			off = vec(p.Offset)
		}
		ctx.PositionGroup(h, v, off)
	}
	if n.Modal {
		ctx.ModalGroup()
	}
	if n.DefaultFocus {
		ctx.SetDefaultFocus()
	}
	if c, _ := parseColor(n.Background); c != 0 {
		ctx.ColorBackground(c)
	}
	if n.BackgroundImage != "" {
		tex, ok := texture(ctx, n.BackgroundImage)
		switch {
		case !ok:
		case len(n.NinePatch) == 4:
			ctx.ImageBackgroundNinePatch(tex, gui.NinePatch{
				Left: n.NinePatch[0], Top: n.NinePatch[1], Right: n.NinePatch[2], Bottom: n.NinePatch[3],
			})
		default:
			ctx.ImageBackground(tex)
		}
	}
}

// texture resolves an asset, reporting a resource diagnostic when it is
// missing.
func texture(ctx *gui.Context, name string) (gui.Texture, bool) {
	if assets := ctx.Assets(); assets != nil {
		if tex, ok := assets.Texture(name); ok {
			return tex, true
		}
	}
	if ctx.IsLayoutPass() {
		ctx.Diagnostics().Reportf(gui.DiagResource, "layout definition: no texture %q", name)
	}
	return nil, false
}

func vec(v []float32) gui.Vec2 {
	return gui.Vec2{X: v[0], Y: v[1]}
}
