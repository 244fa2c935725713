package gui

// Slider draws a horizontal slider of the given size. The knob is a square
// with the slider's height; the value spans the remaining track. Pressing
// outside the knob jumps it under the pointer, then dragging moves it by
// the pointer's travel. The value is 0..1 unless WithRange is given.
//
// The new value is written to *value after the frame's render pass.
// Returns true if the value changes.
//
// Usage:
//
//	if ctx.Slider(gui.Vec2{X: 300, Y: 30}, &volume, "volume") {
//	    updateVolume(volume)
//	}
func (ctx *Context) Slider(size Vec2, value *float32, id string, opts ...Option) bool {
	o := applyOptions(opts)
	ctx.startFixedGroup("Slider", LayoutOverlayStart, id, ctx.pxVec(size), false)
	ev := ctx.CheckEvent()
	if ctx.pass == PassLayout {
		ctx.EndGroup()
		return false
	}

	lo, hi := float32(0), float32(1)
	if rng := GetOpt(o, OptRange); rng.HasRange {
		lo, hi = rng.Min, rng.Max
	}
	r := ctx.CurrentRect()
	knob := min(r.H, r.W)
	travel := r.W - knob
	state := StateOf(ctx.Store(), ctx.CurrentID(), SliderState{})

	ratio := float32(0)
	if hi != lo {
		ratio = clampf((*value-lo)/(hi-lo), 0, 1)
	}

	changed := false
	disabled := GetOpt(o, OptDisabled)
	if !disabled && travel > 0 {
		newRatio, moved := ctx.dragAlongTrack(ev, state, 0, r.X, travel, knob, ratio)
		if moved {
			newValue := lo + newRatio*(hi-lo)
			if newValue != *value {
				changed = true
				ctx.deferWrite(func() { *value = newValue })
			}
		}
	}

	// Draw track, fill up to the knob center, then the knob. The knob shows
	// *value as of this frame; a drag is drawn once the write lands.
	style := ctx.Style()
	knobX := r.X + int(ratio*float32(travel))
	trackH := max(r.H/3, 1)
	trackY := r.Y + (r.H-trackH)/2
	ctx.DrawList.AddRect(float32(r.X), float32(trackY), float32(r.W), float32(trackH), style.SliderTrackColor)
	ctx.DrawList.AddRect(float32(r.X), float32(trackY), float32(knobX-r.X+knob/2), float32(trackH), style.SliderFillColor)

	knobColor := style.SliderGrabColor
	switch {
	case disabled:
		knobColor = style.ScrollbarGrabColor
	case state.Dragging:
		knobColor = style.SliderGrabActive
	case ev.Has(EventHover) || ctx.HasFocus():
		knobColor = style.SliderGrabHovered
	}
	ctx.DrawList.AddRect(float32(knobX), float32(r.Y), float32(knob), float32(knob), knobColor)
	if ctx.HasFocus() {
		ctx.DrawList.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), style.FocusColor, style.BorderSize)
	}

	ctx.EndGroup()
	return changed
}

// ScrollBar draws a scroll bar of the given size. It is vertical when
// taller than wide. thumbRatio is the visible fraction of the content
// (0..1) and sets the thumb length; *value is the scroll position, 0..1.
// Returns true if the value changes; the write is deferred like Slider's.
func (ctx *Context) ScrollBar(size Vec2, thumbRatio float32, value *float32, id string, opts ...Option) bool {
	o := applyOptions(opts)
	ctx.startFixedGroup("ScrollBar", LayoutOverlayStart, id, ctx.pxVec(size), false)
	ev := ctx.CheckEvent()
	if ctx.pass == PassLayout {
		ctx.EndGroup()
		return false
	}

	r := ctx.CurrentRect()
	axis, origin, length, thickness := 0, r.X, r.W, r.H
	if r.H > r.W {
		axis, origin, length, thickness = 1, r.Y, r.H, r.W
	}
	thumb := max(int(clampf(thumbRatio, 0, 1)*float32(length)), thickness)
	thumb = min(thumb, length)
	travel := length - thumb
	state := StateOf(ctx.Store(), ctx.CurrentID(), SliderState{})
	ratio := clampf(*value, 0, 1)

	changed := false
	if !GetOpt(o, OptDisabled) && travel > 0 {
		newRatio, moved := ctx.dragAlongTrack(ev, state, axis, origin, travel, thumb, ratio)
		if moved && newRatio != *value {
			changed = true
			ctx.deferWrite(func() { *value = newRatio })
		}
	}

	style := ctx.Style()
	ctx.DrawList.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), style.ScrollbarBgColor)
	pos := origin + int(ratio*float32(travel))
	color := style.ScrollbarGrabColor
	if state.Dragging || ev.Has(EventHover) {
		color = style.ScrollbarGrabHovered
	}
	if axis == 0 {
		ctx.DrawList.AddRect(float32(pos), float32(r.Y), float32(thumb), float32(r.H), color)
	} else {
		ctx.DrawList.AddRect(float32(r.X), float32(pos), float32(r.W), float32(thumb), color)
	}

	ctx.EndGroup()
	return changed
}

// dragAlongTrack runs the shared knob interaction of sliders and scroll
// bars along one axis. It returns the new 0..1 ratio and whether the knob
// was moved this frame.
func (ctx *Context) dragAlongTrack(ev Event, state *SliderState, axis, origin, travel, knob int, ratio float32) (float32, bool) {
	if ev.Has(EventWentDown) {
		state.DragSource = ctx.gui.sourceFor(ctx.CurrentID())
	}
	// Follow the pointer that grabbed the knob even when another one is
	// pressed somewhere else.
	src := state.DragSource
	if src < 0 || src >= MaxPointers || !ctx.Input.Pointers[src].Active {
		src = ctx.gui.sourceFor(ctx.CurrentID())
	}
	pointer := ctx.Input.Pointers[src].Pos.axis(axis)
	moved := false
	switch {
	case ev.Has(EventWentDown):
		ctx.CapturePointer()
		state.Dragging = true
		state.DragStartPos = pointer
		knobPos := origin + int(ratio*float32(travel))
		if pointer < knobPos || pointer >= knobPos+knob {
			ratio = clampf(float32(pointer-origin-knob/2)/float32(travel), 0, 1)
			moved = true
		}
		state.DragStartValue = ratio
	case state.Dragging && ev.Any(EventIsDown|EventIsDragging):
		ratio = clampf(state.DragStartValue+float32(pointer-state.DragStartPos)/float32(travel), 0, 1)
		moved = true
	}
	if ev.Has(EventWentUp) {
		state.Dragging = false
		ctx.ReleasePointer()
	}
	return ratio, moved
}
