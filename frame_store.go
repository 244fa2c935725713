package gui

// storeEntry wraps a state value with frame tracking for staleness detection.
type storeEntry struct {
	value     any // always a pointer, *T
	lastFrame uint64
}

// Store holds engine-owned widget bookkeeping keyed by element ID: slider
// drag origins, edit cursors, scroll drag state. Each GUI owns one Store.
//
// Entries that are not accessed for Config.StateRetainFrames frames are
// removed at the end of a frame, so widgets that stop being declared do not
// leak state.
//
// Usage in widget code:
//
//	st := gui.StateOf(ctx.Store(), id, SliderState{})
//	st.Dragging = true // st is *SliderState
type Store struct {
	states map[ID]*storeEntry
	frame  uint64
	retain uint64
}

func newStore(retain uint64) *Store {
	return &Store{states: make(map[ID]*storeEntry), retain: retain}
}

// StateOf returns the state for id, creating it from def when absent.
// The returned pointer stays valid while the entry is alive.
//
// If id already holds a value of another type (two widgets of different
// kinds sharing an id) the entry is replaced.
func StateOf[T any](s *Store, id ID, def T) *T {
	if e, ok := s.states[id]; ok {
		if p, ok := e.value.(*T); ok {
			e.lastFrame = s.frame
			return p
		}
	}
	p := new(T)
	*p = def
	s.states[id] = &storeEntry{value: p, lastFrame: s.frame}
	return p
}

// LookupState returns the state for id without creating or touching it.
func LookupState[T any](s *Store, id ID) (*T, bool) {
	e, ok := s.states[id]
	if !ok {
		return nil, false
	}
	p, ok := e.value.(*T)
	return p, ok
}

// Delete removes the state for id.
func (s *Store) Delete(id ID) {
	delete(s.states, id)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
// Useful for resetting state (e.g., when switching scenes).
func (s *Store) Clear() {
	s.states = make(map[ID]*storeEntry)
}

// setFrame marks the frame that subsequent accesses belong to.
func (s *Store) setFrame(frame uint64) {
	s.frame = frame
}

// cleanup removes entries not accessed during the last retain frames.
func (s *Store) cleanup() {
	for id, e := range s.states {
		if e.lastFrame+s.retain < s.frame {
			delete(s.states, id)
		}
	}
}
