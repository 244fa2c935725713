package gui

// Sources are numbered pointers first, then controllers.
const sourceCount = MaxPointers + MaxControllers

func controllerSource(c int) int { return MaxPointers + c }

// sourceState is the per-source interaction state carried across frames.
type sourceState struct {
	pressed   ID // element that received WentDown, until WentUp
	captured  ID // element holding pointer capture
	dragStart Vec2i
	dragging  bool
}

// capture makes id the capture target of every source that pressed it, or
// of the mouse when none did.
func (g *GUI) capture(id ID) {
	found := false
	for i := 0; i < MaxPointers; i++ {
		if g.sources[i].pressed == id {
			g.sources[i].captured = id
			found = true
		}
	}
	if !found {
		g.sources[0].captured = id
	}
}

func (g *GUI) release(id ID) {
	for i := range g.sources {
		if g.sources[i].captured == id {
			g.sources[i].captured = NullID
		}
	}
}

// sourceFor returns the pointer interacting with id, defaulting to the mouse.
func (g *GUI) sourceFor(id ID) int {
	for i := 0; i < MaxPointers; i++ {
		s := &g.sources[i]
		if id != NullID && (s.captured == id || s.pressed == id) {
			return i
		}
	}
	return 0
}

// resolver computes the events of one frame from the measured tree and the
// frame's input.
type resolver struct {
	g        *GUI
	nodes    []node
	boundary int
	frame    uint64
	records  []EventRecord
}

func (r *resolver) eligible(i int32) bool {
	return i > 0 && int(i) >= r.boundary && r.nodes[i].interactive
}

// lookup finds the first eligible element with this id.
func (r *resolver) lookup(id ID) int32 {
	if id == NullID {
		return noNode
	}
	if i, ok := r.g.byID[id]; ok {
		return i
	}
	return noNode
}

// hit returns the topmost eligible element under pos. Later declarations
// are drawn on top, so the search runs backwards.
func (r *resolver) hit(pos Vec2i) int32 {
	for i := int32(len(r.nodes) - 1); i > 0; i-- {
		if r.eligible(i) && r.nodes[i].hitRect().Contains(pos) {
			return i
		}
	}
	return noNode
}

func (r *resolver) add(i int32, source int, ev Event) {
	if i == noNode {
		return
	}
	r.nodes[i].events |= ev
	id := r.nodes[i].id
	for k := range r.records {
		if rec := &r.records[k]; rec.ID == id && rec.Source == source {
			rec.Events |= ev
			return
		}
	}
	r.records = append(r.records, EventRecord{Frame: r.frame, ID: id, Source: source, Events: ev})
}

// resolveEvents assigns this frame's events to the tree. It runs once per
// frame between the layout and render passes.
func (g *GUI) resolveEvents(nodes []node, in *InputState, scale float32) {
	if g.clearPayload {
		g.payload = Value{}
		g.clearPayload = false
	}

	r := resolver{g: g, nodes: nodes, frame: g.frame, records: g.records[:0]}
	for i := range nodes {
		nodes[i].events = EventNone
		if nodes[i].modal {
			r.boundary = i
		}
	}

	g.boundary = r.boundary
	clear(g.byID)
	g.focusables.reset()
	for i := int32(1); i < int32(len(nodes)); i++ {
		if !r.eligible(i) {
			continue
		}
		id := nodes[i].id
		if _, dup := g.byID[id]; !dup {
			g.byID[id] = i
			g.focusables.register(id, nodes[i].hitRect())
		}
	}

	for i := range g.sources {
		if s := &g.sources[i]; s.captured != NullID && r.lookup(s.captured) == noNode {
			s.captured = NullID
		}
	}

	threshold := VirtualToPhysical(g.cfg.DragThreshold, scale)
	for i := 0; i < MaxPointers; i++ {
		p := &in.Pointers[i]
		if !p.Active {
			g.sources[i].pressed = NullID
			g.sources[i].captured = NullID
			continue
		}
		g.resolvePointer(&r, i, p, threshold)
	}

	if g.editing != NullID && r.lookup(g.editing) == noNode {
		g.editing = NullID
	}
	if g.focus != NullID && r.lookup(g.focus) == noNode {
		g.focus = NullID
	}
	if g.focus == NullID {
		for i := int32(1); i < int32(len(nodes)); i++ {
			if nodes[i].defaultFocus && r.eligible(i) {
				g.focus = nodes[i].id
				break
			}
		}
	}

	for c := 0; c < MaxControllers; c++ {
		if in.Controllers[c].Connected {
			g.resolveController(&r, c, &in.Controllers[c])
		}
	}

	g.records = r.records
	if g.listener != nil {
		for _, rec := range r.records {
			g.listener(rec)
		}
	}
}

func (g *GUI) resolvePointer(r *resolver, i int, p *Pointer, threshold int) {
	s := &g.sources[i]
	target := r.hit(p.Pos)
	if s.captured != NullID {
		target = r.lookup(s.captured)
	}

	if p.WentDown {
		s.pressed = NullID
		s.dragging = false
		s.dragStart = p.Pos
		if target != noNode {
			s.pressed = r.nodes[target].id
			r.add(target, i, EventWentDown)
			g.focus = s.pressed
		}
	}

	if p.Down && s.pressed != NullID {
		pressed := r.lookup(s.pressed)
		if !p.WentDown && (s.captured == NullID || s.captured == s.pressed) {
			r.add(pressed, i, EventIsDown)
		}
		dest := pressed
		if s.captured != NullID {
			dest = r.lookup(s.captured)
		}
		if !s.dragging {
			d := p.Pos.Sub(s.dragStart)
			if d.X*d.X+d.Y*d.Y > threshold*threshold {
				s.dragging = true
				r.add(dest, i, EventStartDrag)
			}
		} else if !p.WentDown {
			r.add(dest, i, EventIsDragging)
		}
	}

	if p.WentUp && s.pressed != NullID {
		r.add(r.lookup(s.pressed), i, EventWentUp)
		if s.dragging {
			// The drag ends where it was delivered, which is the capturing
			// element when there is one.
			dest := r.lookup(s.pressed)
			if s.captured != NullID {
				dest = r.lookup(s.captured)
			}
			r.add(dest, i, EventEndDrag)
			g.clearPayload = true
		}
		s.pressed = NullID
		s.dragging = false
	}

	if i == 0 && p.Kind == PointerMouse && s.captured == NullID && target != noNode {
		r.add(target, i, EventHover)
	}
}

// resolveController moves focus with the directional buttons and presses
// the focused element with Accept.
func (g *GUI) resolveController(r *resolver, c int, cs *ControllerState) {
	src := controllerSource(c)
	s := &g.sources[src]

	if g.editing == NullID {
		for _, nb := range navButtons {
			if cs.Buttons[nb.button].WentDown {
				if id, ok := g.focusables.navigate(g.focus, nb.dir); ok {
					g.focus = id
				}
			}
		}
	}

	accept := &cs.Buttons[ControllerAccept]
	focused := r.lookup(g.focus)
	if accept.WentDown && focused != noNode {
		s.pressed = g.focus
		r.add(focused, src, EventWentDown)
	}
	if accept.Down && !accept.WentDown && s.pressed != NullID {
		r.add(r.lookup(s.pressed), src, EventIsDown)
	}
	if accept.WentUp && s.pressed != NullID {
		r.add(r.lookup(s.pressed), src, EventWentUp)
		s.pressed = NullID
	}
}
