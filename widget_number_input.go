package gui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// NumberInput draws a numeric field. Dragging it sideways changes the value
// by one for every WithDragSpeed virtual units of travel (default 1).
// Clicking it, or pressing Accept while it has focus, edits the value as
// text; Enter or a press elsewhere applies the text and Escape drops it.
//
// WithRange clamps the value, WithStep snaps it and WithFormat sets how it
// is shown (default "%.2f"). A zero size component is sized to the text.
//
// New values are written to *value after the frame's render pass. Returns
// true if the value changes.
//
// Usage:
//
//	ctx.Group(gui.LayoutHorizontalCenter, 10, "scale")(func() {
//	    ctx.NumberInput(20, gui.Vec2{X: 80}, &scaleX, "scale-x", gui.WithStep(0.1))
//	    ctx.NumberInput(20, gui.Vec2{X: 80}, &scaleY, "scale-y", gui.WithStep(0.1))
//	})
func (ctx *Context) NumberInput(fontSize float32, size Vec2, value *float32, id string, opts ...Option) bool {
	o := applyOptions(opts)
	disabled := GetOpt(o, OptDisabled)

	ctx.StartGroup(LayoutOverlayStart, 0, id)
	ev := EventNone
	if !disabled {
		ev = ctx.CheckEvent()
	}
	groupID := ctx.CurrentID()
	state := StateOf(ctx.Store(), groupID, NumberInputState{})
	if state.Editing {
		changed := ctx.numberEdit(fontSize, size, value, state, o)
		ctx.EndGroup()
		return changed
	}

	style := ctx.Style()
	label := formatNumber(GetOpt(o, OptFormat), *value)
	pad := ctx.px(style.InputPadding)
	fontPx := ctx.px(fontSize)
	boxSize := ctx.pxVec(size)
	if ctx.pass == PassLayout {
		if boxSize.X == 0 {
			boxSize.X = ctx.layoutText(label, fontPx, 0).Size.X + pad*2
		}
		if boxSize.Y == 0 {
			boxSize.Y = fontPx + pad*2
		}
	}
	field := ctx.box("NumberInput", boxSize)
	if ctx.pass == PassLayout {
		ctx.EndGroup()
		return false
	}

	changed := false
	if ev.Has(EventStartDrag) {
		state.DragStartValue = *value
		ctx.CapturePointer()
	}
	if ev.Any(EventStartDrag | EventIsDragging) {
		speed := GetOpt(o, OptDragSpeed)
		if speed <= 0 {
			speed = 1
		}
		travel := ctx.ToVirtual(ctx.PointerPos().X - ctx.DragStart().X)
		next := snapNumber(state.DragStartValue+travel/speed, o)
		if next != *value {
			changed = true
			ctx.deferWrite(func() { *value = next })
		}
	}
	if ev.Has(EventEndDrag) {
		ctx.ReleasePointer()
	}
	if ev.Clicked() {
		// The edit box is the group's first child in the editing layout.
		editID := childID(groupID, "edit", 0)
		ctx.deferWrite(func() {
			state.Editing = true
			state.Text = label
			ctx.gui.beginEdit(editID, label).SelectAll(utf8.RuneCountInString(label))
		})
	}

	r := field.rect()
	bg := style.InputBgColor
	if ev.Any(EventHover | EventStartDrag | EventIsDragging) {
		bg = style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg)
	border := style.InputBorderColor
	if ctx.HasFocus() {
		border = style.FocusColor
	}
	ctx.DrawList.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), border, style.BorderSize)

	color := style.TextColor
	if disabled {
		color = style.TextDisabledColor
	}
	tl := ctx.layoutText(label, fontPx, 0)
	ctx.drawText(Vec2i{X: r.X + (r.W-tl.Size.X)/2, Y: r.Y + (r.H-tl.Size.Y)/2}, tl, color)

	ctx.EndGroup()
	return changed
}

// numberEdit runs the text editing mode of a number input.
func (ctx *Context) numberEdit(fontSize float32, size Vec2, value *float32, state *NumberInputState, o options) bool {
	switch ctx.Edit(fontSize, size, "", &state.Text) {
	case EditFinished:
		ctx.deferWrite(func() { state.Editing = false })
		v, err := strconv.ParseFloat(strings.TrimSpace(state.Text), 32)
		if err != nil {
			ctx.gui.diag.Reportf(DiagMalformedData, "number input: %q is not a number", state.Text)
			return false
		}
		next := snapNumber(float32(v), o)
		if next != *value {
			ctx.deferWrite(func() { *value = next })
			return true
		}
	case EditCanceled:
		ctx.deferWrite(func() { state.Editing = false })
	}
	return false
}

// snapNumber rounds v to the step option and clamps it to the range option.
func snapNumber(v float32, o options) float32 {
	if step := GetOpt(o, OptStep); step > 0 {
		v = float32(math.Round(float64(v/step))) * step
	}
	if rng := GetOpt(o, OptRange); rng.HasRange {
		v = clampf(v, rng.Min, rng.Max)
	}
	return v
}

// formatNumber formats v with format. Integer verbs get v truncated.
func formatNumber(format string, v float32) string {
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}
