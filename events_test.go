package gui

import "testing"

func TestEventSetOperations(t *testing.T) {
	e := EventWentUp | EventEndDrag

	if !e.Has(EventWentUp) || !e.Has(EventWentUp|EventEndDrag) {
		t.Error("Has() missed a present event")
	}
	if e.Has(EventWentUp | EventHover) {
		t.Error("Has() matched a partially present set")
	}
	if e.Has(EventNone) {
		t.Error("Has(EventNone) should be false")
	}
	if !e.Any(EventHover | EventEndDrag) {
		t.Error("Any() missed EndDrag")
	}
	if got := e.Without(EventEndDrag); got != EventWentUp {
		t.Errorf("Without() = %s", got)
	}
	if got := e.Intersect(EventEndDrag | EventHover); got != EventEndDrag {
		t.Errorf("Intersect() = %s", got)
	}
	if got := EventNone.Union(EventHover); got != EventHover {
		t.Errorf("Union() = %s", got)
	}
}

func TestEventClicked(t *testing.T) {
	tests := []struct {
		e    Event
		want bool
	}{
		{EventWentUp, true},
		{EventWentUp | EventHover, true},
		{EventWentUp | EventEndDrag, false},
		{EventWentDown, false},
		{EventNone, false},
	}
	for _, tt := range tests {
		if got := tt.e.Clicked(); got != tt.want {
			t.Errorf("%s.Clicked() = %v, want %v", tt.e, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	if got := (EventWentDown | EventHover).String(); got != "WentDown|Hover" {
		t.Errorf("String() = %q", got)
	}
	if got := EventNone.String(); got != "None" {
		t.Errorf("String() = %q", got)
	}
}

func TestHashIDIsNeverNull(t *testing.T) {
	if HashID("") == NullID {
		t.Error("HashID(\"\") is NullID")
	}
	if HashID("a") != HashID("a") || HashID("a") == HashID("b") {
		t.Error("HashID is not a stable hash")
	}
	if childID(1, "x", 0) == childID(1, "x", 1) {
		t.Error("siblings at different positions share an id")
	}
}
