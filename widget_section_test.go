package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

// click presses and releases pointer 0 at (x, y) over two frames.
func (f *frames) click(x, y int, decl func(*gui.Context)) {
	f.t.Helper()
	f.in.SetPointerPos(0, x, y)
	f.in.SetMouseButton(true)
	f.run(decl)
	f.in.SetMouseButton(false)
	f.run(decl)
}

func TestSectionToggle(t *testing.T) {
	f := newFrames(t)
	var declared []bool
	decl := func(ctx *gui.Context) {
		ran := false
		ctx.Section("Audio", 20, "audio")(func() {
			ran = true
			ctx.Label("volume", 20)
		})
		if !ctx.IsLayoutPass() {
			declared = append(declared, ran)
		}
	}

	f.run(decl)
	f.click(5, 5, decl)
	f.run(decl)

	// The toggle lands after the click frame.
	want := []bool{false, false, false, true}
	for i := range want {
		if declared[i] != want[i] {
			t.Errorf("frame %d: content declared = %v, want %v", i+1, declared[i], want[i])
		}
	}
	if !gui.IsSectionOpen(f.ui, "audio") {
		t.Error("IsSectionOpen = false after toggle")
	}

	gui.SetSectionOpen(f.ui, "audio", false)
	f.run(decl)
	if declared[len(declared)-1] {
		t.Error("content declared after SetSectionOpen(false)")
	}
}

func TestSectionOptions(t *testing.T) {
	t.Run("default open", func(t *testing.T) {
		f := newFrames(t)
		ran := false
		f.run(func(ctx *gui.Context) {
			ctx.Section("Video", 20, "video", gui.WithDefaultOpen())(func() { ran = true })
		})
		if !ran {
			t.Error("content not declared for a default-open section")
		}
	})

	t.Run("bound flag", func(t *testing.T) {
		f := newFrames(t)
		open := true
		decl := func(ctx *gui.Context) {
			ctx.Section("Input", 20, "input", gui.WithOpen(&open))(func() {
				ctx.Label("bindings", 20)
			})
		}
		f.run(decl)
		f.click(5, 5, decl)
		if open {
			t.Error("bound flag still true after clicking the header")
		}
	})
}
