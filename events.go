package gui

import "strings"

// Event is a set of interaction events resolved for one element in one frame.
// Several events can be present at once, e.g. WentUp and EndDrag on release.
type Event uint16

const (
	EventNone Event = 0
	// EventWentUp is delivered on release, only to the element that received EventWentDown.
	EventWentUp Event = 1 << iota
	// EventWentDown is delivered when a source goes down over the element.
	EventWentDown
	// EventIsDown is delivered on every frame after EventWentDown while the source stays down.
	EventIsDown
	// EventStartDrag is delivered once when movement since EventWentDown exceeds the drag threshold.
	EventStartDrag
	// EventEndDrag is delivered once when a dragging source releases.
	EventEndDrag
	// EventIsDragging is delivered on every frame after EventStartDrag until release.
	EventIsDragging
	// EventHover is delivered to the element under a mouse pointer.
	EventHover
)

var eventNames = []struct {
	ev   Event
	name string
}{
	{EventWentUp, "WentUp"},
	{EventWentDown, "WentDown"},
	{EventIsDown, "IsDown"},
	{EventStartDrag, "StartDrag"},
	{EventEndDrag, "EndDrag"},
	{EventIsDragging, "IsDragging"},
	{EventHover, "Hover"},
}

// Has reports whether every event in other is present in e.
func (e Event) Has(other Event) bool {
	return other != EventNone && e&other == other
}

// Any reports whether at least one event in other is present in e.
func (e Event) Any(other Event) bool {
	return e&other != 0
}

// Union returns the events present in either set.
func (e Event) Union(other Event) Event {
	return e | other
}

// Intersect returns the events present in both sets.
func (e Event) Intersect(other Event) Event {
	return e & other
}

// Without returns e with the events of other removed.
func (e Event) Without(other Event) Event {
	return e &^ other
}

// Clicked reports a release that completed a press on the same element
// without turning into a drag.
func (e Event) Clicked() bool {
	return e.Has(EventWentUp) && !e.Has(EventEndDrag)
}

func (e Event) String() string {
	if e == EventNone {
		return "None"
	}
	var parts []string
	for _, n := range eventNames {
		if e&n.ev != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// EventRecord describes one resolved event set, for diagnostics.
type EventRecord struct {
	Frame  uint64
	ID     ID
	Source int // pointer index, or MaxPointers + controller index
	Events Event
}

// EventListener receives every resolved event set.
type EventListener func(EventRecord)
