package gui

import "fmt"

// RadioGroup draws one radio button per item, stacked vertically. Clicking
// an item sets *selectedIndex after the frame's render pass. Returns true if
// the selection changes.
//
// Item ids are derived from id as "<id>_<index>", so give each group a
// unique id when it needs focus or keyboard activation.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.RadioGroup(items, 20, &quality, "quality") {
//	    applyQuality(quality)
//	}
func (ctx *Context) RadioGroup(items []string, fontSize float32, selectedIndex *int, id string, opts ...Option) bool {
	return ctx.radioGroup(LayoutVerticalLeft, items, fontSize, selectedIndex, id, opts)
}

// RadioGroupHorizontal is RadioGroup with the items in a row.
func (ctx *Context) RadioGroupHorizontal(items []string, fontSize float32, selectedIndex *int, id string, opts ...Option) bool {
	return ctx.radioGroup(LayoutHorizontalCenter, items, fontSize, selectedIndex, id, opts)
}

func (ctx *Context) radioGroup(layout Layout, items []string, fontSize float32, selectedIndex *int, id string, opts []Option) bool {
	changed := false

	spacing := SpaceSM
	if layout.Dir == DirHorizontal {
		spacing = SpaceLG
	}
	ctx.StartGroup(layout, spacing, id)
	for i, item := range items {
		itemID := ""
		if id != "" {
			itemID = fmt.Sprintf("%s_%d", id, i)
		}
		if ctx.radioButton(item, fontSize, i == *selectedIndex, itemID, opts) {
			changed = true
			next := i
			ctx.deferWrite(func() { *selectedIndex = next })
		}
	}
	ctx.EndGroup()
	return changed
}

// radioButton draws a round-ish marker and a label and reports a click on
// an unselected item.
func (ctx *Context) radioButton(label string, fontSize float32, selected bool, id string, opts []Option) bool {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)
	style := ctx.Style()

	ctx.StartGroup(LayoutHorizontalCenter, style.ButtonPadding, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}

	side := ctx.px(fontSize)
	marker := ctx.box("RadioButton", Vec2i{X: side, Y: side})
	if ctx.pass == PassRender {
		x, y, s := float32(marker.pos.X), float32(marker.pos.Y), float32(side)
		bg := style.InputBgColor
		if ev.Has(EventHover) || ctx.HasFocus() {
			bg = style.InputFocusedBgColor
		}
		// A diamond reads as a radio marker without a circle primitive.
		cx, cy := x+s/2, y+s/2
		ctx.DrawList.AddTriangle(cx, y, x+s, cy, x, cy, bg)
		ctx.DrawList.AddTriangle(x, cy, x+s, cy, cx, y+s, bg)
		if selected {
			d := s * 0.25
			ctx.DrawList.AddTriangle(cx, cy-d, cx+d, cy, cx-d, cy, style.CheckMarkColor)
			ctx.DrawList.AddTriangle(cx-d, cy, cx+d, cy, cx, cy+d, style.CheckMarkColor)
		}
	}

	textColor := style.TextColor
	if disabled {
		textColor = style.TextDisabledColor
	}
	ctx.Label(label, fontSize, WithColor(textColor))
	ctx.drawFocus()
	ctx.EndGroup()
	return ev.Clicked() && !selected
}
