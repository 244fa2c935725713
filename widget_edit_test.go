package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

type editHarness struct {
	*frames
	text   string
	status gui.EditStatus
	opts   []gui.Option
}

func newEditHarness(t *testing.T, text string, opts ...gui.Option) *editHarness {
	return &editHarness{frames: newFrames(t), text: text, opts: opts}
}

func (h *editHarness) frame() gui.EditStatus {
	h.t.Helper()
	h.run(func(ctx *gui.Context) {
		st := ctx.Edit(20, gui.Vec2{}, "name", &h.text, h.opts...)
		if !ctx.IsLayoutPass() {
			h.status = st
		}
	})
	return h.status
}

// click presses and releases the mouse over the edit box over two frames.
func (h *editHarness) click() {
	h.t.Helper()
	h.in.SetPointerPos(0, 5, 5)
	h.in.SetMouseButton(true)
	if st := h.frame(); st != gui.EditEditing {
		h.t.Fatalf("status on click = %s, want editing", st)
	}
	h.in.SetMouseButton(false)
}

func (h *editHarness) key(k gui.Key) gui.EditStatus {
	h.t.Helper()
	h.in.SetKey(k, true)
	st := h.frame()
	h.in.SetKey(k, false)
	return st
}

func TestEditTypeUndoCancel(t *testing.T) {
	h := newEditHarness(t, "ab")
	h.click()

	h.in.AddInputChar('c')
	if st := h.key(gui.KeyEnd); st != gui.EditUpdated || h.text != "abc" {
		t.Fatalf("after End+c: status %s text %q, want updated \"abc\"", st, h.text)
	}

	h.in.ModCtrl = true
	if st := h.key(gui.KeyZ); st != gui.EditUpdated || h.text != "ab" {
		t.Errorf("after Ctrl+Z: status %s text %q, want updated \"ab\"", st, h.text)
	}
	if st := h.key(gui.KeyY); st != gui.EditUpdated || h.text != "abc" {
		t.Errorf("after Ctrl+Y: status %s text %q, want updated \"abc\"", st, h.text)
	}
	h.in.ModCtrl = false

	if st := h.key(gui.KeyEscape); st != gui.EditCanceled {
		t.Errorf("status on Escape = %s, want canceled", st)
	}
	if h.text != "ab" {
		t.Errorf("text after cancel = %q, want \"ab\"", h.text)
	}
	if st := h.frame(); st != gui.EditInactive {
		t.Errorf("status after cancel = %s, want inactive", st)
	}
}

func TestEditEnterFinishes(t *testing.T) {
	h := newEditHarness(t, "ab")
	h.click()

	// The click landed left of the first character.
	h.in.AddInputChar('x')
	if st := h.frame(); st != gui.EditUpdated {
		t.Fatalf("status after typing = %s, want updated", st)
	}
	if st := h.key(gui.KeyEnter); st != gui.EditFinished {
		t.Errorf("status on Enter = %s, want finished", st)
	}
	if h.text != "xab" {
		t.Errorf("text = %q, want \"xab\"", h.text)
	}
	if st := h.frame(); st != gui.EditInactive {
		t.Errorf("status after Enter = %s, want inactive", st)
	}
}

func TestEditClickElsewhereFinishes(t *testing.T) {
	h := newEditHarness(t, "ab")
	h.click()
	h.frame()

	h.in.SetPointerPos(0, 500, 500)
	h.in.SetMouseButton(true)
	if st := h.frame(); st != gui.EditFinished {
		t.Errorf("status on outside press = %s, want finished", st)
	}
}

func TestEditBackspaceAndSelection(t *testing.T) {
	h := newEditHarness(t, "hello world")
	h.click()

	h.in.ModCtrl = true
	h.key(gui.KeyA)
	h.in.ModCtrl = false
	h.in.AddInputChar('x')
	if st := h.frame(); st != gui.EditUpdated || h.text != "x" {
		t.Fatalf("typing over selection: status %s text %q, want updated \"x\"", st, h.text)
	}
	if st := h.key(gui.KeyBackspace); st != gui.EditUpdated || h.text != "" {
		t.Errorf("after Backspace: status %s text %q, want updated \"\"", st, h.text)
	}
	if st := h.key(gui.KeyBackspace); st != gui.EditEditing {
		t.Errorf("Backspace on empty text: status %s, want editing", st)
	}
}

func TestEditMaxLength(t *testing.T) {
	h := newEditHarness(t, "ab", gui.WithMaxLength(3))
	h.click()

	for _, r := range "xyz" {
		h.in.AddInputChar(r)
	}
	h.frame()
	if h.text != "xab" {
		t.Errorf("text = %q, want \"xab\"", h.text)
	}
}

func TestEditClipboard(t *testing.T) {
	clip := &gui.MemoryClipboard{}
	h := newEditHarness(t, "copy")
	h.frames = newFrames(t, gui.WithClipboard(clip))
	h.click()

	h.in.ModCtrl = true
	h.key(gui.KeyA)
	h.key(gui.KeyC)
	if got := clip.GetText(); got != "copy" {
		t.Errorf("clipboard = %q, want \"copy\"", got)
	}
	h.key(gui.KeyEnd)
	h.key(gui.KeyV)
	h.in.ModCtrl = false
	if h.text != "copycopy" {
		t.Errorf("text after paste = %q, want \"copycopy\"", h.text)
	}
}

func TestEditDisabledIgnoresClicks(t *testing.T) {
	h := newEditHarness(t, "ab", gui.WithDisabled(true))
	h.in.SetPointerPos(0, 5, 5)
	h.in.SetMouseButton(true)
	if st := h.frame(); st != gui.EditInactive {
		t.Errorf("status = %s, want inactive", st)
	}
}

func TestEditDrawsConfirmedText(t *testing.T) {
	f := newFrames(t)
	const ink = 0xFF2040E0
	text := "ab"
	decl := func(ctx *gui.Context) {
		ctx.SetTextColor(ink)
		ctx.Edit(20, gui.Vec2{X: 200}, "name", &text)
	}
	glyphs := func() int { return len(f.r.rectsOf(ink)) }

	f.in.SetPointerPos(0, 150, 5)
	f.in.SetMouseButton(true)
	f.run(decl)
	f.in.SetMouseButton(false)

	f.in.AddInputChar('c')
	f.run(decl)
	if text != "abc" {
		t.Fatalf("text = %q, want \"abc\"", text)
	}
	if n := glyphs(); n != 2 {
		t.Errorf("typing frame drew %d glyphs, want 2", n)
	}

	f.run(decl)
	if n := glyphs(); n != 3 {
		t.Errorf("next frame drew %d glyphs, want 3", n)
	}
}

func TestEditStateCreatedOnRender(t *testing.T) {
	f := newFrames(t)
	text := "ab"
	var inLayout, inRender bool
	f.run(func(ctx *gui.Context) {
		ctx.Edit(20, gui.Vec2{}, "name", &text)
		_, ok := gui.LookupState[gui.EditState](ctx.Store(), gui.HashID("name"))
		if ctx.IsLayoutPass() {
			inLayout = ok
		} else {
			inRender = ok
		}
	})
	if inLayout {
		t.Error("layout pass created edit state")
	}
	if !inRender {
		t.Error("render pass has no edit state")
	}
}
