package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

func TestSliderDragFromKnob(t *testing.T) {
	f := newFrames(t)
	var value float32
	var changed []bool
	decl := func(ctx *gui.Context) {
		c := ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "volume")
		if !ctx.IsLayoutPass() {
			changed = append(changed, c)
		}
	}

	// Press inside the knob: no jump.
	f.in.SetPointerPos(0, 5, 5)
	f.in.SetMouseButton(true)
	f.run(decl)
	if value != 0 {
		t.Fatalf("value after press = %v, want 0", value)
	}

	f.in.SetPointerPos(0, 55, 5)
	f.run(decl)
	if value != 0.5 {
		t.Errorf("value after drag = %v, want 0.5", value)
	}

	// Dragging past the end clamps.
	f.in.SetPointerPos(0, 400, 300)
	f.run(decl)
	if value != 1 {
		t.Errorf("value past end = %v, want 1", value)
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	want := []bool{false, true, true, false}
	for i := range want {
		if changed[i] != want[i] {
			t.Errorf("frame %d: changed = %v, want %v", i+1, changed[i], want[i])
		}
	}
}

func TestSliderDrawsConfirmedValue(t *testing.T) {
	f := newFrames(t)
	var value float32
	decl := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "volume")
	}
	active := gui.DefaultStyle().SliderGrabActive
	knobX := func() float32 {
		t.Helper()
		knobs := f.r.rectsOf(active)
		if len(knobs) != 1 {
			t.Fatalf("got %d active knobs, want 1", len(knobs))
		}
		return knobs[0].X
	}

	f.in.SetPointerPos(0, 5, 5)
	f.in.SetMouseButton(true)
	f.run(decl)

	// The drag frame still draws the value the frame started with.
	f.in.SetPointerPos(0, 55, 5)
	f.run(decl)
	if x := knobX(); x != 0 {
		t.Errorf("knob drawn at x=%v in the drag frame, want 0", x)
	}
	if value != 0.5 {
		t.Errorf("value after drag frame = %v, want 0.5", value)
	}

	f.run(decl)
	if x := knobX(); x != 50 {
		t.Errorf("knob drawn at x=%v after the write, want 50", x)
	}
}

func TestSliderFollowsGrabbingTouch(t *testing.T) {
	f := newFrames(t)
	var value float32
	decl := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "volume")
	}

	f.in.SetPointerPos(3, 5, 5)
	f.in.SetPointerButton(3, true)
	f.run(decl)

	// The mouse moves elsewhere; only the touch drives the knob.
	f.in.SetPointerPos(0, 300, 5)
	f.in.SetPointerPos(3, 35, 5)
	f.run(decl)
	if value != 0.3 {
		t.Errorf("value = %v, want 0.3", value)
	}

	f.in.SetPointerButton(3, false)
	f.run(decl)
	f.in.SetPointerPos(0, 80, 5)
	f.run(decl)
	if value != 0.3 {
		t.Errorf("value after release = %v, want 0.3", value)
	}
}

func TestSliderJumpOnTrackPress(t *testing.T) {
	f := newFrames(t)
	value := float32(20)
	decl := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "range", gui.WithRange(0, 100))
	}

	// Knob is at 20% (x 20..30). Pressing at x=85 centers it there.
	f.in.SetPointerPos(0, 85, 5)
	f.in.SetMouseButton(true)
	f.run(decl)
	if value != 80 {
		t.Errorf("value after track press = %v, want 80", value)
	}
}

func TestSliderWriteIsDeferred(t *testing.T) {
	f := newFrames(t)
	var value float32
	var seen []float32
	decl := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "s")
		seen = append(seen, value)
	}

	f.in.SetPointerPos(0, 5, 5)
	f.in.SetMouseButton(true)
	f.run(decl)
	f.in.SetPointerPos(0, 55, 5)
	f.run(decl)

	// Both passes of the second frame saw the old value.
	if len(seen) != 4 || seen[2] != 0 || seen[3] != 0 {
		t.Errorf("values seen by passes = %v, want [0 0 0 0]", seen)
	}
	if value != 0.5 {
		t.Errorf("value = %v, want 0.5", value)
	}
}

func TestSliderWriteDroppedOnFault(t *testing.T) {
	f := newFrames(t)
	var value float32
	good := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "s")
	}
	bad := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "s")
		if !ctx.IsLayoutPass() {
			ctx.StartGroup(gui.LayoutVerticalLeft, 0, "")
		}
	}

	f.in.SetPointerPos(0, 5, 5)
	f.in.SetMouseButton(true)
	f.run(good)

	f.in.SetPointerPos(0, 55, 5)
	if err := f.ui.Run(f.in, window, bad); err == nil {
		t.Fatal("expected a structural fault")
	}
	if value != 0 {
		t.Errorf("value after aborted frame = %v, want 0", value)
	}
}

func TestSliderDisabled(t *testing.T) {
	f := newFrames(t)
	var value float32
	decl := func(ctx *gui.Context) {
		ctx.Slider(gui.Vec2{X: 110, Y: 10}, &value, "s", gui.WithDisabled(true))
	}

	f.in.SetPointerPos(0, 80, 5)
	f.in.SetMouseButton(true)
	f.run(decl)
	if value != 0 {
		t.Errorf("disabled slider moved to %v", value)
	}
}

func TestVerticalScrollBar(t *testing.T) {
	f := newFrames(t)
	var value float32
	decl := func(ctx *gui.Context) {
		ctx.ScrollBar(gui.Vec2{X: 10, Y: 200}, 0.5, &value, "bar")
	}

	// Thumb is 100 tall at the top; travel is 100.
	f.in.SetPointerPos(0, 5, 50)
	f.in.SetMouseButton(true)
	f.run(decl)
	f.in.SetPointerPos(0, 5, 75)
	f.run(decl)
	if value != 0.25 {
		t.Errorf("value = %v, want 0.25", value)
	}
	thumb := gui.DefaultStyle().ScrollbarGrabHovered
	if got := f.r.rectsOf(thumb); len(got) != 1 || got[0].Y != 0 {
		t.Errorf("thumb in the drag frame = %v, want one at y=0", got)
	}
	f.run(decl)
	if got := f.r.rectsOf(thumb); len(got) != 1 || got[0].Y != 25 {
		t.Errorf("thumb after the write = %v, want one at y=25", got)
	}
}
