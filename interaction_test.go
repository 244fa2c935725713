package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

// frames drives a GUI one frame at a time, resetting input transitions
// between frames the way an input adapter does.
type frames struct {
	t  *testing.T
	ui *gui.GUI
	r  *mockRenderer
	in *gui.InputState
}

func newFrames(t *testing.T, opts ...gui.GUIOption) *frames {
	ui, r := newTestGUI(opts...)
	in := gui.NewInputState()
	in.SetPointerPos(0, 900, 900)
	return &frames{t: t, ui: ui, r: r, in: in}
}

func (f *frames) run(decl func(*gui.Context)) {
	f.t.Helper()
	if err := f.ui.Run(f.in, window, decl); err != nil {
		f.t.Fatalf("frame %d: %v", f.ui.FrameCount(), err)
	}
	f.in.Reset()
}

// box declares an interactive 100x100 group and records its events.
func box(ctx *gui.Context, id string, events map[string]gui.Event, body func()) {
	ctx.StartGroup(gui.LayoutOverlayStart, 0, id)
	ctx.Spacer(gui.Vec2{X: 100, Y: 100})
	ev := ctx.CheckEvent()
	if body != nil {
		body()
	}
	if !ctx.IsLayoutPass() {
		events[id] = ev
	}
	ctx.EndGroup()
}

// row lays out boxes a and b side by side at the top-left of the screen.
func row(events map[string]gui.Event) func(*gui.Context) {
	return func(ctx *gui.Context) {
		ctx.Group(gui.LayoutHorizontalTop, 0, "row")(func() {
			box(ctx, "a", events, nil)
			box(ctx, "b", events, nil)
		})
	}
}

func TestWentUpOnlyToPressedElement(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := row(events)

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(decl)
	if !events["a"].Has(gui.EventWentDown) {
		t.Fatalf("a = %s, want WentDown", events["a"])
	}

	f.in.SetPointerPos(0, 150, 50)
	f.run(decl)
	if !events["a"].Has(gui.EventIsDown | gui.EventStartDrag) {
		t.Errorf("a = %s, want IsDown|StartDrag", events["a"])
	}
	if events["b"] != gui.EventHover {
		t.Errorf("b = %s, want Hover", events["b"])
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	if !events["a"].Has(gui.EventWentUp | gui.EventEndDrag) {
		t.Errorf("a = %s, want WentUp|EndDrag", events["a"])
	}
	if events["a"].Clicked() {
		t.Error("a release after a drag reported a click")
	}
	if events["b"].Has(gui.EventWentUp) {
		t.Errorf("b = %s, must not receive WentUp", events["b"])
	}
}

func TestClickWithoutDrag(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := row(events)

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(decl)

	f.in.SetPointerPos(0, 55, 50)
	f.run(decl)
	if got := events["a"]; got != gui.EventIsDown|gui.EventHover {
		t.Errorf("a = %s, want IsDown|Hover", got)
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	if !events["a"].Clicked() {
		t.Errorf("a = %s, want a click", events["a"])
	}
}

func TestDragThresholdSequence(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := row(events)

	steps := []struct {
		name string
		x    int
		down bool
		want gui.Event
	}{
		{"press", 10, true, gui.EventWentDown},
		{"below threshold", 15, true, gui.EventIsDown},
		{"exactly at threshold", 18, true, gui.EventIsDown},
		{"past threshold", 30, true, gui.EventIsDown | gui.EventStartDrag},
		{"hold", 30, true, gui.EventIsDown | gui.EventIsDragging},
		{"move", 40, true, gui.EventIsDown | gui.EventIsDragging},
		{"release", 40, false, gui.EventWentUp | gui.EventEndDrag},
	}
	for _, s := range steps {
		f.in.SetPointerPos(0, s.x, 10)
		f.in.SetMouseButton(s.down)
		f.run(decl)
		if got := events["a"].Without(gui.EventHover); got != s.want {
			t.Errorf("%s: a = %s, want %s", s.name, got, s.want)
		}
	}
}

func TestModalGroupBlocksEarlierElements(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := func(ctx *gui.Context) {
		box(ctx, "a", events, nil)
		ctx.Group(gui.LayoutOverlayStart, 0, "modal")(func() {
			ctx.ModalGroup()
			ctx.Spacer(gui.Vec2{X: 200, Y: 200})
		})
		box(ctx, "c", events, func() {
			ctx.PositionGroup(gui.AlignStart, gui.AlignStart, gui.Vec2{X: 300})
		})
	}

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(decl)
	if events["a"] != gui.EventNone {
		t.Errorf("a behind modal = %s, want None", events["a"])
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	f.in.SetPointerPos(0, 350, 50)
	f.in.SetMouseButton(true)
	f.run(decl)
	if !events["c"].Has(gui.EventWentDown | gui.EventHover) {
		t.Errorf("c after modal = %s, want WentDown|Hover", events["c"])
	}
}

func TestTouchDoesNotHover(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := row(events)

	f.in.SetPointerPos(1, 50, 50)
	f.in.SetPointerButton(1, true)
	f.run(decl)
	if events["a"] != gui.EventWentDown {
		t.Errorf("touch press: a = %s, want WentDown only", events["a"])
	}

	f.in.SetPointerButton(1, false)
	f.run(decl)
	if events["a"] != gui.EventWentUp {
		t.Errorf("touch release: a = %s, want WentUp only", events["a"])
	}

	// The lifted touch is inactive from the next frame on.
	f.run(decl)
	if events["a"] != gui.EventNone {
		t.Errorf("after touch: a = %s, want None", events["a"])
	}

	f.in.SetPointerPos(0, 50, 50)
	f.run(decl)
	if events["a"] != gui.EventHover {
		t.Errorf("mouse over a = %s, want Hover", events["a"])
	}
}

func TestTwoPointersPressDifferentElements(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := row(events)

	f.in.SetPointerPos(1, 50, 50)
	f.in.SetPointerButton(1, true)
	f.in.SetPointerPos(2, 150, 50)
	f.in.SetPointerButton(2, true)
	f.run(decl)
	if !events["a"].Has(gui.EventWentDown) || !events["b"].Has(gui.EventWentDown) {
		t.Fatalf("a = %s, b = %s, want WentDown on both", events["a"], events["b"])
	}

	f.in.SetPointerButton(2, false)
	f.run(decl)
	if events["a"] != gui.EventIsDown {
		t.Errorf("a = %s, want IsDown", events["a"])
	}
	if events["b"] != gui.EventWentUp {
		t.Errorf("b = %s, want WentUp", events["b"])
	}
}

func TestCapturePointer(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := func(ctx *gui.Context) {
		ctx.Group(gui.LayoutHorizontalTop, 0, "row")(func() {
			box(ctx, "a", events, func() {
				ev := ctx.CheckEvent()
				if ev.Has(gui.EventWentDown) {
					ctx.CapturePointer()
				}
				if ev.Has(gui.EventWentUp) {
					ctx.ReleasePointer()
				}
			})
			box(ctx, "b", events, nil)
		})
	}

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(decl)

	f.in.SetPointerPos(0, 150, 50)
	f.run(decl)
	if !events["a"].Has(gui.EventIsDown | gui.EventStartDrag) {
		t.Errorf("captured a = %s, want IsDown|StartDrag", events["a"])
	}
	if events["b"] != gui.EventNone {
		t.Errorf("b under captured pointer = %s, want None", events["b"])
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	if !events["a"].Has(gui.EventWentUp) {
		t.Errorf("a = %s, want WentUp", events["a"])
	}

	f.run(decl)
	if events["b"] != gui.EventHover {
		t.Errorf("b after release = %s, want Hover", events["b"])
	}
}

func TestDragEndsOnCapturingElement(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := func(ctx *gui.Context) {
		ctx.Group(gui.LayoutHorizontalTop, 0, "row")(func() {
			box(ctx, "a", events, nil)
			box(ctx, "b", events, func() {
				ev := ctx.CheckEvent()
				if events["a"].Has(gui.EventWentDown) {
					ctx.CapturePointer()
				}
				if ev.Has(gui.EventEndDrag) {
					ctx.ReleasePointer()
				}
			})
		})
	}

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(decl)

	f.in.SetPointerPos(0, 50, 90)
	f.run(decl)
	if events["a"] != gui.EventNone {
		t.Errorf("pressed a while b captures = %s, want None", events["a"])
	}
	if events["b"] != gui.EventStartDrag {
		t.Errorf("b = %s, want StartDrag", events["b"])
	}

	f.in.SetPointerPos(0, 60, 90)
	f.run(decl)
	if events["b"] != gui.EventIsDragging {
		t.Errorf("b = %s, want IsDragging", events["b"])
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	if events["a"] != gui.EventWentUp {
		t.Errorf("a on release = %s, want WentUp", events["a"])
	}
	if events["b"] != gui.EventEndDrag {
		t.Errorf("b on release = %s, want EndDrag", events["b"])
	}

	f.run(decl)
	if events["a"] != gui.EventHover {
		t.Errorf("a after release = %s, want Hover", events["a"])
	}
}

func TestControllerNavigation(t *testing.T) {
	f := newFrames(t)
	events := map[string]gui.Event{}
	decl := func(ctx *gui.Context) {
		ctx.Group(gui.LayoutHorizontalTop, 10, "row")(func() {
			box(ctx, "a", events, ctx.SetDefaultFocus)
			box(ctx, "b", events, nil)
		})
	}

	f.run(decl)
	if f.ui.Focus() != gui.HashID("a") {
		t.Fatalf("default focus = %v, want a", f.ui.Focus())
	}

	f.in.SetController(0, gui.ControllerRight, true)
	f.run(decl)
	if f.ui.Focus() != gui.HashID("b") {
		t.Fatalf("focus after Right = %v, want b", f.ui.Focus())
	}

	// Nothing further right: focus stays.
	f.in.SetController(0, gui.ControllerRight, false)
	f.run(decl)
	f.in.SetController(0, gui.ControllerRight, true)
	f.run(decl)
	if f.ui.Focus() != gui.HashID("b") {
		t.Fatalf("focus after second Right = %v, want b", f.ui.Focus())
	}

	f.in.SetController(0, gui.ControllerRight, false)
	f.in.SetController(0, gui.ControllerAccept, true)
	f.run(decl)
	if events["b"] != gui.EventWentDown {
		t.Errorf("b on Accept = %s, want WentDown", events["b"])
	}
	f.run(decl)
	if events["b"] != gui.EventIsDown {
		t.Errorf("b on held Accept = %s, want IsDown", events["b"])
	}
	f.in.SetController(0, gui.ControllerAccept, false)
	f.run(decl)
	if !events["b"].Clicked() {
		t.Errorf("b on Accept release = %s, want a click", events["b"])
	}

	f.in.SetController(0, gui.ControllerLeft, true)
	f.run(decl)
	if f.ui.Focus() != gui.HashID("a") {
		t.Errorf("focus after Left = %v, want a", f.ui.Focus())
	}
}

func TestEventListenerReceivesRecords(t *testing.T) {
	var got []gui.EventRecord
	f := newFrames(t, gui.WithEventListener(func(r gui.EventRecord) {
		got = append(got, r)
	}))
	events := map[string]gui.Event{}

	f.in.SetPointerPos(0, 50, 50)
	f.in.SetMouseButton(true)
	f.run(row(events))

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1: %v", len(got), got)
	}
	rec := got[0]
	if rec.ID != gui.HashID("a") || rec.Source != 0 || rec.Frame != 1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Events != gui.EventWentDown|gui.EventHover {
		t.Errorf("record events = %s, want WentDown|Hover", rec.Events)
	}
	if len(f.ui.Events()) != 1 {
		t.Errorf("Events() has %d records, want 1", len(f.ui.Events()))
	}
}
