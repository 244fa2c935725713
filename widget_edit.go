package gui

import "unicode/utf8"

// EditStatus is the state of an edit box after a frame.
type EditStatus uint8

const (
	EditInactive EditStatus = iota // Not being edited
	EditEditing                    // Being edited, text unchanged this frame
	EditUpdated                    // Being edited, text changed this frame
	EditFinished                   // Editing ended with Enter or by clicking elsewhere
	EditCanceled                   // Editing ended with Escape; the original text was restored
)

func (s EditStatus) String() string {
	switch s {
	case EditEditing:
		return "editing"
	case EditUpdated:
		return "updated"
	case EditFinished:
		return "finished"
	case EditCanceled:
		return "canceled"
	default:
		return "inactive"
	}
}

// Edit draws a single-line edit box for *text. Clicking it (or pressing
// Accept while it has focus) starts editing. A zero size component is
// sized to the text: the width to the current text plus padding, the
// height to fontSize plus padding.
//
// Changes are written to *text after the frame's render pass. Escape
// cancels and restores the text the edit started with.
//
// Usage:
//
//	switch ctx.Edit(30, gui.Vec2{X: 300}, "name", &name) {
//	case gui.EditFinished:
//	    save(name)
//	}
func (ctx *Context) Edit(fontSize float32, size Vec2, id string, text *string, opts ...Option) EditStatus {
	o := applyOptions(opts)
	_, n := ctx.leaf(kindEdit, "Edit", "edit", o)
	if ctx.pass == PassLayout && id != "" {
		n.id = HashID(id)
	}
	editing := ctx.gui.editing == n.id
	pad := ctx.px(ctx.Style().InputPadding)
	fontPx := ctx.px(fontSize)

	// Both passes measure and draw the confirmed *text. Keystrokes reach it
	// through the deferred write, so they show from the next frame on.
	if ctx.pass == PassLayout {
		n.interactive = !GetOpt(o, OptDisabled)
		n.size = ctx.pxVec(size)
		if n.size.X == 0 {
			n.size.X = ctx.layoutText(*text, fontPx, 0).Size.X + pad*2
		}
		if n.size.Y == 0 {
			n.size.Y = fontPx + pad*2
		}
		return EditInactive
	}

	state := StateOf(ctx.Store(), n.id, EditState{SelectionStart: -1, SelectionEnd: -1})
	ev := n.events
	status := EditInactive
	if editing {
		status = EditEditing
	}
	r := n.rect()
	textX := r.X + pad

	switch {
	case !editing && ev.Has(EventWentDown):
		editing = true
		status = EditEditing
		state = ctx.gui.beginEdit(n.id, *text)
		tl := ctx.layoutText(state.Text, fontPx, 0)
		if src := ctx.gui.sourceFor(n.id); r.Contains(ctx.Input.Pointers[src].Pos) {
			state.CursorPos = nearestCaret(tl.Carets, ctx.Input.Pointers[src].Pos.X-textX)
		}
	case editing:
		switch {
		case ctx.Input.KeyPressed(KeyEscape):
			status = EditCanceled
		case ctx.Input.KeyPressed(KeyEnter):
			status = EditFinished
		case ctx.pressedElsewhere(r):
			status = EditFinished
		case ev.Has(EventWentDown):
			tl := ctx.layoutText(state.Text, fontPx, 0)
			state.CursorPos = nearestCaret(tl.Carets, ctx.PointerPos().X-textX+state.ScrollOffset)
			state.ClearSelection()
			state.CursorBlinkTime = 0
		default:
			if ctx.processEditKeyboard(state, GetOpt(o, OptMaxLength)) {
				status = EditUpdated
			}
		}
	}

	switch status {
	case EditUpdated:
		newText := state.Text
		ctx.deferWrite(func() { *text = newText })
	case EditCanceled:
		original := state.Original
		state.Text = original
		ctx.deferWrite(func() { *text = original })
	}
	if status == EditFinished || status == EditCanceled {
		ctx.gui.editing = NullID
		editing = false
	}

	ctx.drawEdit(n, state, *text, editing, fontPx, pad, GetOpt(o, OptPlaceholder))
	return status
}

// beginEdit makes id the edit box being edited and resets its state to
// text with the cursor at the end.
func (g *GUI) beginEdit(id ID, text string) *EditState {
	g.editing = id
	state := StateOf(g.store, id, EditState{})
	*state = EditState{
		Original:       text,
		Text:           text,
		CursorPos:      utf8.RuneCountInString(text),
		SelectionStart: -1,
		SelectionEnd:   -1,
	}
	return state
}

// pressedElsewhere reports whether a pointer went down outside r.
func (ctx *Context) pressedElsewhere(r Rect) bool {
	for i := range ctx.Input.Pointers {
		p := &ctx.Input.Pointers[i]
		if p.Active && p.WentDown && !r.Contains(p.Pos) {
			return true
		}
	}
	return false
}

func (ctx *Context) drawEdit(n *node, state *EditState, display string, editing bool, fontPx, pad int, placeholder string) {
	style := ctx.Style()
	r := n.rect()
	dl := ctx.DrawList

	bg := style.InputBgColor
	if editing {
		bg = style.InputFocusedBgColor
	}
	dl.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg)
	border := style.InputBorderColor
	if n.id == ctx.gui.focus {
		border = style.FocusColor
	}
	dl.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), border, style.BorderSize)

	tl := ctx.layoutText(display, fontPx, 0)
	inner := r.W - pad*2
	if editing {
		cursorX := caretAt(tl.Carets, state.CursorPos)
		if cursorX-state.ScrollOffset > inner {
			state.ScrollOffset = cursorX - inner
		}
		if cursorX < state.ScrollOffset {
			state.ScrollOffset = cursorX
		}
		state.ScrollOffset = max(state.ScrollOffset, 0)
	} else {
		state.ScrollOffset = 0
	}
	textX := r.X + pad - state.ScrollOffset
	textY := r.Y + (r.H-tl.Size.Y)/2

	clip := r.Intersect(n.clip)
	dl.PushClipRect(float32(clip.X), float32(clip.Y), float32(clip.X+clip.W), float32(clip.Y+clip.H))
	if editing && state.HasSelection() {
		start, end := state.SelectedRange()
		x0, x1 := caretAt(tl.Carets, start), caretAt(tl.Carets, end)
		if x1 < x0 {
			// Right-to-left text has decreasing carets.
			x0, x1 = x1, x0
		}
		dl.AddRect(float32(textX+x0), float32(textY), float32(x1-x0), float32(tl.Size.Y), style.SelectionColor)
	}
	if display == "" && !editing && placeholder != "" {
		ph := ctx.layoutText(placeholder, fontPx, 0)
		ctx.drawText(Vec2i{X: textX, Y: r.Y + (r.H-ph.Size.Y)/2}, ph, style.TextDisabledColor)
	} else {
		ctx.drawText(Vec2i{X: textX, Y: textY}, tl, ctx.textColor)
	}
	if editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			x := float32(textX + caretAt(tl.Carets, state.CursorPos))
			dl.AddRect(x, float32(textY), float32(max(ctx.px(2), 1)), float32(tl.Size.Y), style.CursorColor)
		}
	}
	dl.PopClipRect()
}

// caretAt returns the x offset of rune boundary i.
func caretAt(carets []int, i int) int {
	if len(carets) == 0 {
		return 0
	}
	return carets[clampi(i, 0, len(carets)-1)]
}

// nearestCaret returns the rune boundary closest to x.
func nearestCaret(carets []int, x int) int {
	best := 0
	for i, c := range carets {
		if abs(c-x) < abs(carets[best]-x) {
			best = i
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// processEditKeyboard applies this frame's keys and typed characters to
// the edit state. Returns true if the text changed.
func (ctx *Context) processEditKeyboard(state *EditState, maxLength int) bool {
	input := ctx.Input
	clipboard := ctx.gui.clipboard
	runes := []rune(state.Text)
	textLen := len(runes)
	state.CursorPos = clampi(state.CursorPos, 0, textLen)
	changed := false

	set := func(r []rune) {
		runes = r
		state.Text = string(r)
		changed = true
	}

	// Helper to delete selected text
	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.SelectedRange()
		state.PushUndo(state.Text)
		set(append(runes[:start:start], runes[end:]...))
		state.CursorPos = start
		state.ClearSelection()
		return true
	}

	insert := func(ins []rune) {
		deleteSelection()
		if maxLength > 0 && len(runes)+len(ins) > maxLength {
			ins = ins[:max(maxLength-len(runes), 0)]
		}
		if len(ins) == 0 {
			return
		}
		state.PushUndo(state.Text)
		out := make([]rune, 0, len(runes)+len(ins))
		out = append(out, runes[:state.CursorPos]...)
		out = append(out, ins...)
		out = append(out, runes[state.CursorPos:]...)
		set(out)
		state.CursorPos += len(ins)
	}

	// moveCursor moves to pos, extending the selection with Shift.
	moveCursor := func(pos int) {
		if input.ModShift {
			if state.SelectionStart < 0 {
				state.SelectionStart = state.CursorPos
			}
			state.SelectionEnd = pos
		} else {
			state.ClearSelection()
		}
		state.CursorPos = pos
		state.CursorBlinkTime = 0
	}

	if input.ModCtrl {
		switch {
		case input.KeyPressed(KeyA):
			state.SelectAll(textLen)
			return false
		case input.KeyPressed(KeyC):
			if state.HasSelection() && clipboard != nil {
				start, end := state.SelectedRange()
				clipboard.SetText(string(runes[start:end]))
			}
			return false
		case input.KeyPressed(KeyX):
			if state.HasSelection() && clipboard != nil {
				start, end := state.SelectedRange()
				clipboard.SetText(string(runes[start:end]))
				deleteSelection()
			}
			return changed
		case input.KeyPressed(KeyV):
			if clipboard != nil {
				if text := clipboard.GetText(); text != "" {
					insert([]rune(text))
				}
			}
			return changed
		case input.KeyPressed(KeyZ) && !input.ModShift:
			if undone, ok := state.Undo(state.Text); ok {
				set([]rune(undone))
				state.CursorPos = len(runes)
				state.ClearSelection()
			}
			return changed
		case input.KeyPressed(KeyY), input.KeyPressed(KeyZ):
			if redone, ok := state.Redo(state.Text); ok {
				set([]rune(redone))
				state.CursorPos = len(runes)
				state.ClearSelection()
			}
			return changed
		}
	}

	if input.KeyRepeated(KeyLeft) && state.CursorPos > 0 {
		if input.ModCtrl {
			moveCursor(findWordBoundaryLeft(runes, state.CursorPos))
		} else {
			moveCursor(state.CursorPos - 1)
		}
	}
	if input.KeyRepeated(KeyRight) && state.CursorPos < textLen {
		if input.ModCtrl {
			moveCursor(findWordBoundaryRight(runes, state.CursorPos))
		} else {
			moveCursor(state.CursorPos + 1)
		}
	}
	if input.KeyPressed(KeyHome) {
		moveCursor(0)
	}
	if input.KeyPressed(KeyEnd) {
		moveCursor(textLen)
	}

	if input.KeyRepeated(KeyBackspace) {
		if !deleteSelection() && state.CursorPos > 0 {
			state.PushUndo(state.Text)
			set(append(runes[:state.CursorPos-1:state.CursorPos-1], runes[state.CursorPos:]...))
			state.CursorPos--
		}
		state.CursorBlinkTime = 0
	}
	if input.KeyRepeated(KeyDelete) {
		if !deleteSelection() && state.CursorPos < len(runes) {
			state.PushUndo(state.Text)
			set(append(runes[:state.CursorPos:state.CursorPos], runes[state.CursorPos+1:]...))
		}
		state.CursorBlinkTime = 0
	}

	// Text input (printable characters)
	var typed []rune
	for _, ch := range input.InputChars {
		if ch >= 32 {
			typed = append(typed, ch)
		}
	}
	if len(typed) > 0 {
		insert(typed)
		state.CursorBlinkTime = 0
	}
	input.ConsumeInputChars()

	return changed
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	// Skip whitespace
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	// Find start of word
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	// Skip current word
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	// Skip whitespace
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
