package gui_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-theft-auto/flatgui"
)

type vehicleList struct {
	all, shown []string
	query      string
	current    string
}

func newVehicleList(current string, names ...string) *vehicleList {
	return &vehicleList{all: names, shown: names, current: current}
}

func (v *vehicleList) Count() int          { return len(v.shown) }
func (v *vehicleList) Label(i int) string  { return v.shown[i] }
func (v *vehicleList) IsMarked(i int) bool { return v.shown[i] == v.current }
func (v *vehicleList) Filter(query string) {
	v.query = query
	v.shown = nil
	for _, name := range v.all {
		if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
			v.shown = append(v.shown, name)
		}
	}
}

type menuLog struct {
	calls []string
}

func (l *menuLog) OnSelect(i int)  { l.calls = append(l.calls, fmt.Sprintf("select %d", i)) }
func (l *menuLog) OnConfirm(i int) { l.calls = append(l.calls, fmt.Sprintf("confirm %d", i)) }
func (l *menuLog) OnCancel()       { l.calls = append(l.calls, "cancel") }

type menuHarness struct {
	*frames
	menu     *gui.ModalMenu
	list     *vehicleList
	log      *menuLog
	goClicks int
}

func newMenuHarness(t *testing.T, maxVisible int) *menuHarness {
	h := &menuHarness{
		frames: newFrames(t),
		menu:   gui.NewModalMenu("vehicles", "Spawn vehicle", 20, 300, maxVisible),
		list:   newVehicleList("Cheetah", "Banshee", "Infernus", "Cheetah", "Bullet"),
		log:    &menuLog{},
	}
	h.menu.SetDataSource(h.list)
	h.menu.SetDelegate(h.log)
	h.menu.Open()
	return h
}

func (h *menuHarness) decl(ctx *gui.Context) {
	if ctx.TextButton("Go", 20, "go").Clicked() {
		h.goClicks++
	}
	h.menu.Draw(ctx)
}

func (h *menuHarness) key(k gui.Key) {
	h.t.Helper()
	h.in.SetKey(k, true)
	h.run(h.decl)
	h.in.SetKey(k, false)
}

func (h *menuHarness) button(b gui.ControllerButton) {
	h.t.Helper()
	h.in.SetController(0, b, true)
	h.run(h.decl)
	h.in.SetController(0, b, false)
	h.run(h.decl)
}

func (h *menuHarness) wantCalls(want ...string) {
	h.t.Helper()
	if !slices.Equal(h.log.calls, want) {
		h.t.Errorf("delegate calls = %q, want %q", h.log.calls, want)
	}
}

func TestModalMenuKeyboard(t *testing.T) {
	h := newMenuHarness(t, 10)
	h.run(h.decl)
	h.key(gui.KeyDown)
	h.key(gui.KeyDown)
	h.key(gui.KeyUp)
	h.key(gui.KeyEnter)
	h.wantCalls("select 1", "select 2", "select 1", "confirm 1")

	h.key(gui.KeyEscape)
	if h.menu.IsOpen() {
		t.Error("menu open after Escape")
	}
	if got := h.log.calls[len(h.log.calls)-1]; got != "cancel" {
		t.Errorf("last delegate call = %q, want cancel", got)
	}
}

func TestModalMenuTypeToSearch(t *testing.T) {
	h := newMenuHarness(t, 10)
	h.run(h.decl)

	h.in.AddInputChar('b')
	h.run(h.decl)
	if h.menu.SearchText() != "b" || h.list.query != "b" {
		t.Fatalf("search %q, filter %q, want both \"b\"", h.menu.SearchText(), h.list.query)
	}
	if !slices.Equal(h.list.shown, []string{"Banshee", "Bullet"}) {
		t.Errorf("shown = %q", h.list.shown)
	}

	// Navigation keeps working while the search box has the keyboard.
	h.key(gui.KeyDown)
	h.key(gui.KeyDown)
	if h.menu.SelectedIndex() != 1 {
		t.Errorf("selected = %d, want 1 (clamped to the filtered list)", h.menu.SelectedIndex())
	}
}

func TestModalMenuScrollsToSelection(t *testing.T) {
	h := newMenuHarness(t, 2)
	h.run(h.decl)
	h.key(gui.KeyEnd)
	h.run(h.decl)
	if h.menu.SelectedIndex() != 3 {
		t.Errorf("selected = %d, want 3", h.menu.SelectedIndex())
	}

	// The last row is declared, so Enter confirms it.
	h.key(gui.KeyEnter)
	h.wantCalls("select 3", "confirm 3")
}

func TestModalMenuControllerFocus(t *testing.T) {
	h := newMenuHarness(t, 10)
	h.run(h.decl)
	h.button(gui.ControllerDown)
	h.button(gui.ControllerAccept)
	h.wantCalls("select 1", "confirm 1")
}

func TestModalMenuBlocksContent(t *testing.T) {
	h := newMenuHarness(t, 10)
	h.click(5, 5, h.decl)
	if h.goClicks != 0 {
		t.Errorf("button under the menu clicked %d times", h.goClicks)
	}

	h.menu.Close()
	h.click(5, 5, h.decl)
	if h.goClicks != 1 {
		t.Errorf("button clicks after close = %d, want 1", h.goClicks)
	}
}
