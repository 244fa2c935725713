package gui

// ComboBox draws a header showing items[*selectedIndex]. Clicking it opens
// a list of the items below the header. The list is modal: nothing else in
// the frame receives events until an item is picked, Escape is pressed or a
// pointer goes down outside the list. Controller focus starts on the
// selected item.
//
// The pick is written to *selectedIndex after the frame's render pass, and
// opening or closing the list takes effect on the next frame. Returns true
// if the selection changes.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox(items, 20, &quality, "quality") {
//	    applyQuality(quality)
//	}
func (ctx *Context) ComboBox(items []string, fontSize float32, selectedIndex *int, id string, opts ...Option) bool {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)
	style := ctx.Style()

	ctx.StartGroup(LayoutHorizontalCenter, SpaceSM, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}
	comboID := ctx.CurrentID()
	state := StateOf(ctx.Store(), comboID, ComboBoxState{})
	open := state.Open && !disabled
	ctx.ColorBackground(ctx.buttonColor(ev, disabled))

	// The header is as wide as the widest item so it does not jump when
	// the selection changes.
	pad := ctx.px(style.ButtonPadding)
	fontPx := ctx.px(fontSize)
	textW := 0
	if ctx.pass == PassLayout {
		for _, item := range items {
			textW = max(textW, ctx.MeasureText(item, fontSize).X)
		}
	}
	text := ctx.box("ComboBox", Vec2i{X: textW + pad*2, Y: fontPx + pad*2})
	side := ctx.px(fontSize * 0.6)
	arrow := ctx.box("ComboBox", Vec2i{X: side, Y: side})
	ctx.Spacer(Vec2{X: style.ButtonPadding})

	changed := false
	popupID := childID(comboID, "popup", 0)
	if ctx.pass == PassRender {
		color := style.TextColor
		if disabled {
			color = style.TextDisabledColor
		}
		if i := *selectedIndex; i >= 0 && i < len(items) {
			r := text.rect()
			tl := ctx.layoutText(items[i], fontPx, 0)
			ctx.drawText(Vec2i{X: r.X + pad, Y: r.Y + (r.H-tl.Size.Y)/2}, tl, color)
		}
		x, y, s := float32(arrow.pos.X), float32(arrow.pos.Y), float32(side)
		if open {
			ctx.DrawList.AddTriangle(x, y+s*0.8, x+s/2, y+s*0.2, x+s, y+s*0.8, color)
		} else {
			ctx.DrawList.AddTriangle(x, y+s*0.2, x+s, y+s*0.2, x+s/2, y+s*0.8, color)
		}
		state.Anchor = ctx.CurrentRect()

		switch {
		case open:
			for i := range items {
				if !ctx.eventsOf(comboRowID(popupID, i)).Clicked() {
					continue
				}
				ctx.deferWrite(func() { state.Open = false })
				if i != *selectedIndex {
					changed = true
					next := i
					ctx.deferWrite(func() { *selectedIndex = next })
				}
			}
		case ev.Clicked():
			rowH := fontSize + style.ButtonPadding*2
			first := max(*selectedIndex-GetOpt(o, OptMaxVisible)+1, 0)
			ctx.deferWrite(func() {
				state.Open = true
				state.Scroll = Vec2{Y: float32(first) * rowH}
			})
		}
	}
	ctx.drawFocus()
	ctx.EndGroup()

	if open {
		selected := *selectedIndex
		ctx.Overlay(func() { ctx.comboPopup(state, popupID, items, fontSize, selected, o) })
	}
	return changed
}

// comboRowID is the id of row i of the popup popupID.
func comboRowID(popupID ID, i int) ID {
	return childID(popupID, "row", i)
}

// comboPopup declares the open list of a combo box at the top level, right
// below the header's last known rectangle.
func (ctx *Context) comboPopup(state *ComboBoxState, popupID ID, items []string, fontSize float32, selected int, o options) {
	style := ctx.Style()
	anchor := state.Anchor
	width := ctx.ToVirtual(anchor.W)
	rowH := fontSize + style.ButtonPadding*2

	ctx.startGroupID("ComboBox", LayoutVerticalLeft, 0, popupID)
	ctx.PositionGroup(AlignStart, AlignStart, Vec2{X: ctx.ToVirtual(anchor.X), Y: ctx.ToVirtual(anchor.Y + anchor.H)})
	ctx.ModalGroup()
	ctx.ColorBackground(style.PanelColor)

	rows := func() {
		for i, item := range items {
			ctx.startGroupID("ComboBox", LayoutOverlayStart, 0, comboRowID(popupID, i))
			ev := ctx.CheckEvent()
			if i == selected {
				ctx.SetDefaultFocus()
			}
			var bg uint32
			switch {
			case i == selected:
				bg = style.SelectionColor
			case ev.Has(EventHover) || ctx.HasFocus():
				bg = style.ButtonHoveredColor
			}
			ctx.ColorBackground(bg)
			ctx.Spacer(Vec2{X: width, Y: rowH})
			ctx.Label(item, fontSize, WithMargin(UniformMargin(style.ButtonPadding)))
			ctx.drawFocus()
			ctx.EndGroup()
		}
	}
	if n := GetOpt(o, OptMaxVisible); n > 0 && len(items) > n {
		ctx.Scrollable(Vec2{X: width, Y: rowH * float32(n)}, &state.Scroll, "")(rows)
	} else {
		rows()
	}

	if ctx.pass == PassRender {
		if ctx.Input.KeyPressed(KeyEscape) || ctx.pressedElsewhere(ctx.CurrentRect()) {
			ctx.deferWrite(func() { state.Open = false })
		}
	}
	ctx.EndGroup()
}
