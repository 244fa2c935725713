package gui

// NavDirection is a direction of focus movement.
type NavDirection uint8

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "up"
	case NavDown:
		return "down"
	case NavLeft:
		return "left"
	case NavRight:
		return "right"
	}
	return "unknown"
}

// unit returns d as a screen-space step (y grows downwards).
func (d NavDirection) unit() Vec2i {
	switch d {
	case NavUp:
		return Vec2i{Y: -1}
	case NavDown:
		return Vec2i{Y: 1}
	case NavLeft:
		return Vec2i{X: -1}
	case NavRight:
		return Vec2i{X: 1}
	}
	return Vec2i{}
}

// navButtons are the controller buttons that move focus.
var navButtons = [...]struct {
	button ControllerButton
	dir    NavDirection
}{
	{ControllerUp, NavUp},
	{ControllerDown, NavDown},
	{ControllerLeft, NavLeft},
	{ControllerRight, NavRight},
}

// focusItem is an element that can receive navigation focus.
type focusItem struct {
	ID   ID
	Rect Rect
}

// focusRegistry holds the focusable elements of the current frame in
// declaration order. It is rebuilt after every layout pass from the
// interactive elements that are not blocked by a modal group.
type focusRegistry struct {
	items []focusItem
}

func (r *focusRegistry) reset() {
	r.items = r.items[:0]
}

func (r *focusRegistry) register(id ID, rect Rect) {
	r.items = append(r.items, focusItem{ID: id, Rect: rect})
}

func (r *focusRegistry) indexOf(id ID) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// first returns the first focusable element.
func (r *focusRegistry) first() (ID, bool) {
	if len(r.items) == 0 {
		return NullID, false
	}
	return r.items[0].ID, true
}

// navigate returns the element to focus when moving from focus in dir.
// Without a current focus it picks the first element. Among the elements
// whose center lies in dir, the nearest wins, with distance across the
// direction of travel counting double.
func (r *focusRegistry) navigate(focus ID, dir NavDirection) (ID, bool) {
	cur := r.indexOf(focus)
	if cur < 0 {
		id, ok := r.first()
		focusLogger.Debug("navigate: no focus, picking first", "id", id, "ok", ok)
		return id, ok
	}
	from := r.items[cur].Rect.Center()
	step := dir.unit()

	best := -1
	bestDist := 0
	for i, item := range r.items {
		if i == cur || item.ID == focus {
			continue
		}
		c := item.Rect.Center()
		dx, dy := c.X-from.X, c.Y-from.Y
		// Distance along the direction of travel, and across it.
		primary := dx*step.X + dy*step.Y
		secondary := dx*step.Y + dy*step.X
		if primary <= 0 {
			continue
		}
		if secondary < 0 {
			secondary = -secondary
		}
		dist := primary + secondary*2
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		focusLogger.Debug("navigate: nothing in direction", "dir", dir, "from", focus)
		return focus, false
	}
	focusLogger.Debug("navigate: moved", "dir", dir, "from", focus, "to", r.items[best].ID)
	return r.items[best].ID, true
}
