package gui

// SectionState is the stored open flag of a collapsible section.
type SectionState struct {
	Open bool
}

// Section creates a collapsible section. The header toggles it; the content
// closure only runs while the section is open and is indented below the
// header. Sections nest.
//
// Usage:
//
//	ctx.Section("Graphics", 20, "graphics", gui.WithDefaultOpen())(func() {
//	    ctx.Checkbox("VSync", 20, &vsync, "vsync")
//	    ctx.Section("Advanced", 20, "graphics-advanced")(func() {
//	        ctx.Label("Nested content", 20)
//	    })
//	})
func (ctx *Context) Section(label string, fontSize float32, id string, opts ...Option) func(func()) {
	return func(contents func()) {
		if !ctx.BeginSection(label, fontSize, id, opts...) {
			return
		}
		contents()
		ctx.EndSection()
	}
}

// BeginSection starts a collapsible section and reports whether it is open.
// EndSection must follow only when it returns true:
//
//	if ctx.BeginSection("Settings", 20, "settings") {
//	    ctx.Label("Content", 20)
//	    ctx.EndSection()
//	}
//
// A toggle takes effect on the next frame, so both passes of a frame see
// the same tree.
func (ctx *Context) BeginSection(label string, fontSize float32, id string, opts ...Option) bool {
	o := applyOptions(opts)
	style := ctx.Style()

	ctx.StartGroup(LayoutVerticalLeft, SpaceXS, id)
	state := StateOf(ctx.Store(), ctx.CurrentID(), SectionState{Open: GetOpt(o, OptDefaultOpen)})
	bound := GetOpt(o, OptOpen)
	if bound != nil {
		state.Open = *bound
	}
	open := state.Open

	headerID := ""
	if id != "" {
		headerID = id + "_header"
	}
	ctx.StartGroup(LayoutHorizontalCenter, SpaceSM, headerID)
	ctx.SetMargin(Margin{Left: SpaceXS, Top: SpaceXS, Right: SpaceMD, Bottom: SpaceXS})
	ev := ctx.CheckEvent()
	ctx.ColorBackground(ctx.buttonColor(ev, false))

	side := ctx.px(fontSize * 0.6)
	arrow := ctx.box("Section", Vec2i{X: side, Y: side})
	if ctx.pass == PassRender {
		x, y, s := float32(arrow.pos.X), float32(arrow.pos.Y), float32(side)
		if open {
			ctx.DrawList.AddTriangle(x, y+s*0.2, x+s, y+s*0.2, x+s/2, y+s*0.9, style.TextColor)
		} else {
			ctx.DrawList.AddTriangle(x+s*0.2, y, x+s*0.9, y+s/2, x+s*0.2, y+s, style.TextColor)
		}
	}
	ctx.Label(label, fontSize)
	ctx.drawFocus()
	ctx.EndGroup()

	if ev.Clicked() {
		next := !open
		ctx.deferWrite(func() {
			state.Open = next
			if bound != nil {
				*bound = next
			}
		})
	}

	if !open {
		ctx.EndGroup()
		return false
	}
	ctx.StartGroup(LayoutVerticalLeft, SpaceSM, "")
	ctx.SetMargin(Margin{Left: SpaceXL})
	return true
}

// EndSection closes a section whose BeginSection returned true.
func (ctx *Context) EndSection() {
	ctx.EndGroup()
	ctx.EndGroup()
}

// SetSectionOpen opens or closes the section with the given id from outside
// the declaration, e.g. from a keyboard shortcut.
func SetSectionOpen(g *GUI, id string, open bool) {
	StateOf(g.Store(), HashID(id), SectionState{}).Open = open
}

// IsSectionOpen reports whether the section with the given id is open.
func IsSectionOpen(g *GUI, id string) bool {
	s, ok := LookupState[SectionState](g.Store(), HashID(id))
	return ok && s.Open
}
