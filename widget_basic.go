package gui

// buttonColor picks a button background for the frame's events.
func (ctx *Context) buttonColor(ev Event, disabled bool) uint32 {
	style := ctx.Style()
	switch {
	case disabled:
		return style.ButtonColor &^ 0x80000000
	case ev.Any(EventIsDown | EventWentDown):
		return style.ButtonActiveColor
	case ev.Has(EventHover) || ctx.HasFocus():
		return style.ButtonHoveredColor
	default:
		return style.ButtonColor
	}
}

// drawFocus outlines the innermost group when it has focus.
func (ctx *Context) drawFocus() {
	if ctx.pass != PassRender || !ctx.HasFocus() {
		return
	}
	r := ctx.CurrentRect()
	style := ctx.Style()
	ctx.DrawList.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), style.FocusColor, style.BorderSize)
}

// TextButton draws a button with a text label and returns its events.
// A button is clicked when ev.Clicked() is true.
//
// Usage:
//
//	if ctx.TextButton("Play", 40, "play").Clicked() {
//	    startGame()
//	}
func (ctx *Context) TextButton(text string, fontSize float32, id string, opts ...Option) Event {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)
	style := ctx.Style()

	ctx.StartGroup(LayoutHorizontalCenter, 0, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}
	ctx.ColorBackground(ctx.buttonColor(ev, disabled))
	textColor := style.TextColor
	if disabled {
		textColor = style.TextDisabledColor
	}
	ctx.Label(text, fontSize, WithMargin(UniformMargin(style.ButtonPadding)), WithColor(textColor))
	ctx.drawFocus()
	ctx.EndGroup()
	return ev
}

// ImageButton draws a button showing tex scaled to height and returns its
// events.
func (ctx *Context) ImageButton(tex Texture, height float32, id string, opts ...Option) Event {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)
	style := ctx.Style()

	ctx.StartGroup(LayoutHorizontalCenter, 0, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}
	ctx.ColorBackground(ctx.buttonColor(ev, disabled))
	tint := GetOpt(o, OptTint)
	if disabled {
		tint = style.TextDisabledColor
	}
	ctx.Image(tex, height, WithMargin(UniformMargin(style.ButtonPadding)), WithTint(tint))
	ctx.drawFocus()
	ctx.EndGroup()
	return ev
}

// Checkbox draws a box with a label. Clicking toggles *value after the
// frame's render pass. Returns true if the value changes.
func (ctx *Context) Checkbox(label string, fontSize float32, value *bool, id string, opts ...Option) bool {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)
	style := ctx.Style()

	ctx.StartGroup(LayoutHorizontalCenter, style.ButtonPadding, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}

	side := ctx.px(fontSize)
	box := ctx.box("Checkbox", Vec2i{X: side, Y: side})
	if ctx.pass == PassRender {
		x, y, s := float32(box.pos.X), float32(box.pos.Y), float32(side)
		bg := style.InputBgColor
		if ev.Has(EventHover) || ctx.HasFocus() {
			bg = style.InputFocusedBgColor
		}
		ctx.DrawList.AddRect(x, y, s, s, bg)
		ctx.DrawList.AddRectOutline(x, y, s, s, style.InputBorderColor, style.BorderSize)
		if *value {
			pad := s * 0.2
			thick := max(s*0.12, 1)
			ctx.DrawList.AddLine(x+pad, y+s*0.55, x+s*0.42, y+s-pad, style.CheckMarkColor, thick)
			ctx.DrawList.AddLine(x+s*0.42, y+s-pad, x+s-pad, y+pad, style.CheckMarkColor, thick)
		}
	}

	textColor := style.TextColor
	if disabled {
		textColor = style.TextDisabledColor
	}
	if label != "" {
		ctx.Label(label, fontSize, WithColor(textColor))
	}

	changed := false
	if ev.Clicked() {
		changed = true
		next := !*value
		ctx.deferWrite(func() { *value = next })
	}
	ctx.drawFocus()
	ctx.EndGroup()
	return changed
}
