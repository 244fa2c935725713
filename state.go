package gui

// Widget bookkeeping kept in the Store between frames. Caller-owned values
// (the slider ratio, the edit text) are never stored here.

// SliderState tracks a slider or scrollbar drag.
type SliderState struct {
	Dragging       bool    // True while the knob is being dragged
	DragSource     int     // Pointer index that started the drag
	DragStartPos   int     // Pointer position along the track axis when the drag started
	DragStartValue float32 // Value when the drag started
}

// ScrollState tracks a scroll view drag and the measured content size.
type ScrollState struct {
	Dragging    bool
	DragStart   Vec2i // Pointer position when the drag started
	DragOffset  Vec2  // Offset when the drag started
	ContentSize Vec2i // Measured content size in the layout pass
}

// ComboBoxState is the popup state of a combo box.
type ComboBoxState struct {
	Open   bool
	Anchor Rect // header rectangle as of the last render pass
	Scroll Vec2 // popup scroll offset in virtual units
}

// NumberInputState tracks a number input between frames.
type NumberInputState struct {
	Editing        bool    // The value is being typed
	Text           string  // Text of the edit box while Editing
	DragStartValue float32 // Value when the drag started
}

// EditState tracks state for edit boxes.
// Supports cursor positioning, text selection, and undo/redo.
type EditState struct {
	// Original is the text when editing started, restored on cancel.
	Original string

	// Text is the working copy. The caller's string is updated from it
	// after the frame's render pass.
	Text string

	// CursorPos is the cursor position in runes.
	CursorPos int

	// SelectionStart and SelectionEnd define the selected range in runes.
	// -1 means no selection. SelectionStart can be > SelectionEnd.
	SelectionStart int
	SelectionEnd   int

	// ScrollOffset is the horizontal scroll in physical pixels for long text.
	ScrollOffset int

	history textHistory

	// CursorBlinkTime drives cursor blinking.
	CursorBlinkTime float32
}

// HasSelection returns true if there is an active text selection.
func (s *EditState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the normalized selection range (start <= end).
// Returns -1, -1 if no selection.
func (s *EditState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *EditState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects the entire text.
func (s *EditState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// PushUndo records text as the state to return to on Undo. It drops any
// redo history.
func (s *EditState) PushUndo(text string) { s.history.push(text) }

// Undo returns the text before the last recorded change. current becomes
// the Redo target.
func (s *EditState) Undo(current string) (string, bool) { return s.history.undo(current) }

// Redo returns the text Undo last replaced.
func (s *EditState) Redo(current string) (string, bool) { return s.history.redo(current) }

const maxUndo = 50

// textHistory is a pair of stacks: past holds states to undo to, future
// the states undone since the last edit.
type textHistory struct {
	past, future []string
}

func (h *textHistory) push(text string) {
	h.future = h.future[:0]
	if n := len(h.past); n > 0 && h.past[n-1] == text {
		return
	}
	h.past = append(h.past, text)
	if len(h.past) > maxUndo {
		h.past = append(h.past[:0], h.past[1:]...)
	}
}

func (h *textHistory) undo(current string) (string, bool) {
	return swapTop(&h.past, &h.future, current)
}

func (h *textHistory) redo(current string) (string, bool) {
	return swapTop(&h.future, &h.past, current)
}

// swapTop pops from, pushes current onto to and returns the popped text.
func swapTop(from, to *[]string, current string) (string, bool) {
	n := len(*from)
	if n == 0 {
		return "", false
	}
	text := (*from)[n-1]
	*from = (*from)[:n-1]
	*to = append(*to, current)
	return text, true
}
