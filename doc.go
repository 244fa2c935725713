/*
Package gui provides a flat, immediate-mode GUI for games, driven by a
two-pass layout over a declaration callback.

# Overview

The UI is declared every frame by one function. The GUI calls it twice:
the layout pass builds a tree of groups and leaf elements and measures it;
the render pass replays the same declarations with every element placed,
reports interaction events and draws. The callback must declare the same
elements in the same order in both passes; a mismatch aborts the frame.

Widgets never own caller data. A slider or edit box receives a pointer to
the caller's value and writes the new value after the render pass, so both
passes of a frame observe the same values.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))
	input := gui.NewInputState()
	adapter := opengl.NewInputAdapter(window, input)

	// Game loop
	for !window.ShouldClose() {
	    adapter.Poll(deltaTime)

	    err := ui.Run(input, gui.Vec2i{X: 1280, Y: 720}, func(ctx *gui.Context) {
	        ctx.Group(gui.LayoutVerticalCenter, 10, "menu")(func() {
	            ctx.PositionGroup(gui.AlignCenter, gui.AlignCenter, gui.Vec2{})
	            ctx.Label("Hello World", 40)
	            if ctx.TextButton("Play", 40, "play").Clicked() {
	                // Button was clicked
	            }
	        })
	    })
	    if err != nil {
	        log.Printf("frame: %v", err)
	    }
	    window.SwapBuffers()
	}

# Coordinates

Sizes, margins, spacing and offsets are given in virtual units. The window's
smaller dimension is Config.VirtualResolution units (1000 by default), so a
layout keeps its proportions at any window size. Conversion to pixels
rounds half up; positions in InputState and in events are physical pixels.

# Groups

	ctx.StartGroup(layout Layout, spacing float32, id string)
	ctx.EndGroup()
	ctx.Group(layout, spacing, id)(func() { ... })

A horizontal or vertical group places its children one after the other
with spacing between them and aligns them along the other axis. An overlay
group stacks its children and aligns them on both axes. Modifiers apply to
the innermost open group:

	ctx.SetMargin(m Margin)
	ctx.PositionGroup(h, v Alignment, offset Vec2)   // top-level groups align on the screen
	ctx.ColorBackground(color uint32)
	ctx.ImageBackground(tex Texture)
	ctx.ImageBackgroundNinePatch(tex Texture, patch NinePatch)
	ctx.ModalGroup()                                 // earlier elements get no events
	ctx.SetDefaultFocus()
	ctx.CheckEvent() Event                           // makes the group interactive

# Elements

	ctx.Label(text string, fontSize float32, opts ...Option)
	ctx.TextArea(text string, fontSize, maxWidth float32, opts ...Option)
	ctx.Image(tex Texture, height float32, opts ...Option) bool
	ctx.ImageByName(name string, height float32, opts ...Option) bool
	ctx.Spacer(size Vec2)
	ctx.CustomElement(size Vec2, id string, draw func(pos, size Vec2i)) Event

# Widgets

	ctx.TextButton(text string, fontSize float32, id string, opts ...Option) Event
	ctx.ImageButton(tex Texture, height float32, id string, opts ...Option) Event
	ctx.Checkbox(label string, fontSize float32, value *bool, id string, opts ...Option) bool
	ctx.Slider(size Vec2, value *float32, id string, opts ...Option) bool
	ctx.ScrollBar(size Vec2, thumbRatio float32, value *float32, id string, opts ...Option) bool
	ctx.StartScroll(size Vec2, offset *Vec2, id string) / ctx.EndScroll()
	ctx.Edit(fontSize float32, size Vec2, id string, text *string, opts ...Option) EditStatus
	ctx.RadioGroup(items []string, fontSize float32, selected *int, id string, opts ...Option) bool
	ctx.Section(label string, fontSize float32, id string, opts ...Option)(func() { ... })
	ctx.VirtualList(size Vec2, rowHeight float32, count int, offset *Vec2, id string, row func(i int))
	ctx.Toasts(ts *ToastState, fontSize float32)
	ctx.HintFooter(fontSize float32, hints ...HintAction)
	ctx.ComboBox(items []string, fontSize float32, selectedIndex *int, id string, opts ...Option) bool
	ctx.NumberInput(fontSize float32, size Vec2, value *float32, id string, opts ...Option) bool
	menu.Draw(ctx)  // menu := NewModalMenu(id, title, fontSize, width, maxVisible)

VirtualList declares only the rows a ListClipper finds visible, so lists
of any length cost the same per frame. ToastState is owned by the caller;
call its Update once per frame.

Popups go through ctx.Overlay, which declares them at the root after the
rest of the frame so they draw on top. ComboBox and ModalMenu use it with
ModalGroup, so presses outside the popup never reach the content below.

Options: WithID, WithDisabled, WithMargin, WithTint, WithColor, WithRange,
WithPlaceholder, WithMaxLength, WithDefaultOpen, WithOpen, WithMaxVisible,
WithFormat, WithStep, WithDragSpeed.

# Style

Config.Style picks DefaultStyle or GTAStyle and Config.Colors overrides
single colors by name:

	style: gta
	colors:
	  button: "#283c50"
	  toast_error: "#a01e1eff"

# Events

Each interactive element receives a set of events per frame:

	WentDown    a pointer or Accept went down over the element
	IsDown      held since WentDown, on every later frame
	WentUp      released; only the element that got WentDown receives it
	StartDrag   the pointer moved past Config.DragThreshold
	IsDragging  every frame after StartDrag until release
	EndDrag     released after dragging
	Hover       the mouse is over the element

The topmost element under a pointer receives its events. An element that
calls CapturePointer keeps receiving the pointer until ReleasePointer.
Controllers move focus between interactive elements with the directional
buttons and press the focused element with Accept.

# Edit Box Shortcuts

Navigation:

	Left Arrow       Move cursor one character left
	Right Arrow      Move cursor one character right
	Ctrl+Left        Move cursor one word left
	Ctrl+Right       Move cursor one word right
	Home             Jump to start of text
	End              Jump to end of text

Selection:

	Shift+Left       Extend selection one character left
	Shift+Right      Extend selection one character right
	Shift+Home       Select from cursor to start
	Shift+End        Select from cursor to end
	Ctrl+A           Select all text

Clipboard Operations:

	Ctrl+C           Copy selected text to clipboard
	Ctrl+X           Cut selected text to clipboard
	Ctrl+V           Paste from clipboard

Undo/Redo:

	Ctrl+Z           Undo last change
	Ctrl+Y           Redo (alternative 1)
	Ctrl+Shift+Z     Redo (alternative 2)

Control:

	Enter            Finish editing
	Escape           Cancel and restore the original text
	Backspace        Delete character before cursor (or delete selection)
	Delete           Delete character after cursor (or delete selection)

# Errors and Diagnostics

Structural mistakes (an EndGroup without StartGroup, a group left open,
declarations that differ between passes) abort the frame and Run returns
a *StructuralError matching ErrStructural. Calling a Context method outside
Run panics. Missing textures, fonts and malformed layout data are reported
through Diagnostics, rate limited per frame, and the frame continues.

# Providers

Text, textures, animation and the clipboard come from providers passed to
New: WithFontProvider (see package font), WithAssets (backend/opengl),
WithAnimation (package motion) and WithClipboard. Without a font provider
text uses the renderer's built-in bitmap font.
*/
package gui
