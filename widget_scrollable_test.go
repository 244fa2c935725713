package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

// scrollList declares a 100x50 scroll view holding three 100x40 rows
// (120 units of content, so the offset ranges over 0..70).
func scrollList(offset *gui.Vec2, inner *gui.Vec2) func(*gui.Context) {
	return func(ctx *gui.Context) {
		ctx.Scrollable(gui.Vec2{X: 100, Y: 50}, offset, "list")(func() {
			for i := 0; i < 3; i++ {
				ctx.Spacer(gui.Vec2{X: 100, Y: 40})
			}
			if inner != nil {
				ctx.Scrollable(gui.Vec2{X: 100, Y: 20}, inner, "inner")(func() {
					ctx.Spacer(gui.Vec2{X: 100, Y: 100})
				})
			}
		})
	}
}

func TestScrollableMouseWheelScrolls(t *testing.T) {
	f := newFrames(t)
	var offset gui.Vec2
	decl := scrollList(&offset, nil)

	f.in.SetPointerPos(0, 50, 25)
	f.in.SetMouseWheel(0, -1)
	f.run(decl)
	if offset.Y != 40 {
		t.Errorf("offset after one notch = %v, want 40", offset.Y)
	}

	f.in.SetMouseWheel(0, -1)
	f.run(decl)
	if offset.Y != 70 {
		t.Errorf("offset clamped = %v, want 70", offset.Y)
	}

	f.in.SetMouseWheel(0, 5)
	f.run(decl)
	if offset.Y != 0 {
		t.Errorf("offset scrolled back = %v, want 0", offset.Y)
	}
}

func TestScrollableWheelOutsideIgnored(t *testing.T) {
	f := newFrames(t)
	var offset gui.Vec2
	f.in.SetPointerPos(0, 500, 500)
	f.in.SetMouseWheel(0, -1)
	f.run(scrollList(&offset, nil))
	if offset.Y != 0 {
		t.Errorf("offset = %v, want 0", offset.Y)
	}
}

func TestScrollableClampsCallerOffset(t *testing.T) {
	f := newFrames(t)
	offset := gui.Vec2{X: 30, Y: 500}
	f.run(scrollList(&offset, nil))
	if offset != (gui.Vec2{Y: 70}) {
		t.Errorf("offset = %v, want {0 70}", offset)
	}
}

func TestScrollableDrag(t *testing.T) {
	f := newFrames(t)
	var offset gui.Vec2
	decl := scrollList(&offset, nil)

	f.in.SetPointerPos(0, 50, 45)
	f.in.SetMouseButton(true)
	f.run(decl)

	f.in.SetPointerPos(0, 50, 25)
	f.run(decl)
	if offset.Y != 20 {
		t.Errorf("offset after drag = %v, want 20", offset.Y)
	}

	// The view keeps the pointer after it leaves the view.
	f.in.SetPointerPos(0, 50, 0)
	f.run(decl)
	if offset.Y != 45 {
		t.Errorf("offset after dragging further = %v, want 45", offset.Y)
	}

	f.in.SetMouseButton(false)
	f.run(decl)
	f.in.SetPointerPos(0, 50, 45)
	f.run(decl)
	if offset.Y != 45 {
		t.Errorf("offset after release = %v, want 45", offset.Y)
	}
}

func TestScrollableWheelGoesToInnermost(t *testing.T) {
	f := newFrames(t)
	var outer, inner gui.Vec2
	decl := scrollList(&outer, &inner)

	// Scroll the outer view to its end so the nested view (content y
	// 120..140) shows at y 30..50.
	outer.Y = 90
	f.run(decl)
	if outer.Y != 90 {
		t.Fatalf("outer offset = %v, want 90", outer.Y)
	}

	f.in.SetPointerPos(0, 50, 40)
	f.in.SetMouseWheel(0, -1)
	f.run(decl)
	if inner.Y != 40 {
		t.Errorf("inner offset = %v, want 40", inner.Y)
	}
	if outer.Y != 90 {
		t.Errorf("outer offset = %v, want unchanged 90", outer.Y)
	}
}

func TestScrollableUnmatchedEnd(t *testing.T) {
	ui, _ := newTestGUI()
	err := ui.Run(gui.NewInputState(), window, func(ctx *gui.Context) {
		ctx.EndScroll()
	})
	if err == nil {
		t.Fatal("EndScroll without StartScroll should fail")
	}
}

func TestEnsureScrollVisible(t *testing.T) {
	tests := []struct {
		name    string
		offset  float32
		targetY float32
		want    float32
	}{
		{"already visible", 0, 20, 0},
		{"below viewport", 0, 150, 80},
		{"above viewport", 80, 50, 40},
		{"near top clamps to zero", 30, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := gui.Vec2{Y: tt.offset}
			gui.EnsureScrollVisible(&offset, 100, tt.targetY, 20, 10)
			if offset.Y != tt.want {
				t.Errorf("offset = %v, want %v", offset.Y, tt.want)
			}
		})
	}
}
