package gui

import (
	"math"
	"testing"
)

func TestToastOpacity(t *testing.T) {
	tests := []struct {
		elapsed float32
		want    float32
	}{
		{0, 0},
		{0.075, 0.5},
		{1, 1},
		{2.1, 1},
		{2.55, 0.5},
		{3, 0},
	}
	for _, tt := range tests {
		toast := ToastNotification{Duration: 3, Elapsed: tt.elapsed}
		if got := toast.opacity(); math.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("opacity at %vs = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestToastUpdateExpires(t *testing.T) {
	var ts ToastState
	ts.ToastInfo("saved")
	ts.Toast("short", ToastTypeWarning, 1)

	ts.Update(0.5)
	if len(ts.Toasts) != 2 {
		t.Fatalf("len = %d after 0.5s, want 2", len(ts.Toasts))
	}
	ts.Update(0.5)
	if len(ts.Toasts) != 1 || ts.Toasts[0].Message != "saved" {
		t.Fatalf("toasts after 1s = %+v, want only the default-duration one", ts.Toasts)
	}
	ts.Update(DefaultToastDuration)
	if len(ts.Toasts) != 0 {
		t.Errorf("len = %d after expiry, want 0", len(ts.Toasts))
	}
}

func TestToastQueueIsCapped(t *testing.T) {
	var ts ToastState
	for range ToastMaxVisible*2 + 1 {
		ts.ToastError("boom")
	}
	if len(ts.Toasts) != ToastMaxVisible {
		t.Errorf("len = %d, want %d", len(ts.Toasts), ToastMaxVisible)
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(*DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32  { return 1 }
func (nopRenderer) Resize(int, int)        {}

func TestToastsDeclareAtBottomRight(t *testing.T) {
	ui := New(nopRenderer{})
	var ts ToastState
	ts.ToastSuccess("ok")
	ts.Update(1)

	var rect Rect
	err := ui.Run(NewInputState(), Vec2i{X: 1000, Y: 1000}, func(ctx *Context) {
		ctx.Toasts(&ts, 20)
		if !ctx.IsLayoutPass() {
			root := ctx.tree.nodes[ctx.tree.nodes[0].firstChild]
			rect = root.rect()
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// One toast: 12 + "+" (12) + 8 + "ok" (24) + 12 wide, 8 + 20 + 8 high,
	// 8 from the corner.
	want := Rect{X: 1000 - 8 - 68, Y: 1000 - 8 - 36, W: 68, H: 36}
	if rect != want {
		t.Errorf("toast stack rect = %+v, want %+v", rect, want)
	}
}
