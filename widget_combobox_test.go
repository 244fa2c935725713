package gui_test

import (
	"testing"

	"github.com/go-theft-auto/flatgui"
)

type comboHarness struct {
	*frames
	selected int
	changed  []bool
	goClicks int
}

// The header of a 20 unit combo box over these items is 110x32 at the
// origin; popup rows are 32 high and start at y=32. The "Go" button sits
// at x=120.
var comboItems = []string{"Low", "Medium", "High"}

func newComboHarness(t *testing.T) *comboHarness {
	return &comboHarness{frames: newFrames(t)}
}

func (h *comboHarness) decl(ctx *gui.Context) {
	ctx.Group(gui.LayoutHorizontalTop, 10, "row")(func() {
		c := ctx.ComboBox(comboItems, 20, &h.selected, "quality")
		if ctx.TextButton("Go", 20, "go").Clicked() {
			h.goClicks++
		}
		if !ctx.IsLayoutPass() {
			h.changed = append(h.changed, c)
		}
	})
}

func (h *comboHarness) isOpen() bool {
	s, ok := gui.LookupState[gui.ComboBoxState](h.ui.Store(), gui.HashID("quality"))
	return ok && s.Open
}

func TestComboBoxPick(t *testing.T) {
	h := newComboHarness(t)
	h.click(5, 5, h.decl)
	if !h.isOpen() {
		t.Fatal("popup not open after clicking the header")
	}

	h.click(5, 110, h.decl)
	if h.selected != 2 {
		t.Errorf("selected = %d, want 2", h.selected)
	}
	if h.isOpen() {
		t.Error("popup still open after a pick")
	}
	if got := h.changed[len(h.changed)-1]; !got {
		t.Error("pick frame did not report a change")
	}

	// Picking the current item closes without a change.
	h.click(5, 5, h.decl)
	h.click(5, 110, h.decl)
	if h.changed[len(h.changed)-1] {
		t.Error("re-picking the selected item reported a change")
	}
}

func TestComboBoxPopupIsModal(t *testing.T) {
	h := newComboHarness(t)
	h.click(5, 5, h.decl)

	// The press outside the list closes it and never reaches the button.
	h.click(130, 10, h.decl)
	if h.isOpen() {
		t.Error("popup open after pressing outside")
	}
	if h.goClicks != 0 {
		t.Errorf("button clicked %d times through the popup", h.goClicks)
	}

	h.click(130, 10, h.decl)
	if h.goClicks != 1 {
		t.Errorf("button clicks after close = %d, want 1", h.goClicks)
	}
}

func TestComboBoxEscapeCloses(t *testing.T) {
	h := newComboHarness(t)
	h.selected = 1
	h.click(5, 5, h.decl)

	h.in.SetKey(gui.KeyEscape, true)
	h.run(h.decl)
	h.in.SetKey(gui.KeyEscape, false)
	if h.isOpen() {
		t.Error("popup open after Escape")
	}
	if h.selected != 1 {
		t.Errorf("selected = %d after Escape, want 1", h.selected)
	}
}

func TestComboBoxControllerPick(t *testing.T) {
	h := newComboHarness(t)
	h.selected = 0
	h.click(5, 5, h.decl)

	// Focus starts on the selected row; Down then Accept picks the next.
	press := func(b gui.ControllerButton) {
		h.in.SetController(0, b, true)
		h.run(h.decl)
		h.in.SetController(0, b, false)
		h.run(h.decl)
	}
	h.run(h.decl)
	press(gui.ControllerDown)
	press(gui.ControllerAccept)
	if h.selected != 1 {
		t.Errorf("selected = %d, want 1", h.selected)
	}
}
