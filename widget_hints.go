package gui

import "fmt"

// HintKey is the key or button name shown in a hint chip.
type HintKey string

// Standard hint keys. ASCII only so the built-in font can draw them.
const (
	HintKeyUpDown    HintKey = "Up/Down"
	HintKeyLeftRight HintKey = "Left/Right"
	HintKeyArrows    HintKey = "Arrows"
	HintKeyEnter     HintKey = "Enter"
	HintKeyEscape    HintKey = "Esc"
	HintKeyTab       HintKey = "Tab"
	HintKeyBackspace HintKey = "Bksp"
	HintKeyType      HintKey = "Type"
	HintKeyScroll    HintKey = "Scroll"
	HintKeyClick     HintKey = "Click"
	HintKeyDrag      HintKey = "Drag"
	HintKeyA         HintKey = "A"
	HintKeyB         HintKey = "B"
)

// HintAction pairs a key with its action description.
type HintAction struct {
	Key    HintKey
	Action string
}

// Hint creates a HintAction for use with HintFooter.
func Hint(key HintKey, action string) HintAction {
	return HintAction{Key: key, Action: action}
}

// HintFooter draws a row of key chips with their actions.
//
// Usage:
//
//	ctx.HintFooter(16,
//	    gui.Hint(gui.HintKeyUpDown, "Navigate"),
//	    gui.Hint(gui.HintKeyEnter, "Select"),
//	    gui.Hint(gui.HintKeyEscape, "Close"),
//	)
func (ctx *Context) HintFooter(fontSize float32, hints ...HintAction) {
	if len(hints) == 0 {
		return
	}
	style := ctx.Style()
	ctx.StartGroup(LayoutHorizontalCenter, SpaceLG, "")
	for _, h := range hints {
		ctx.StartGroup(LayoutHorizontalCenter, SpaceSM, "")
		ctx.StartGroup(LayoutHorizontalCenter, 0, "")
		ctx.ColorBackground(style.InputBgColor)
		ctx.Label(string(h.Key), fontSize, WithMargin(Margin{Left: SpaceSM, Top: SpaceXS, Right: SpaceSM, Bottom: SpaceXS}))
		ctx.EndGroup()
		ctx.Label(h.Action, fontSize, WithColor(style.TextDisabledColor))
		ctx.EndGroup()
	}
	ctx.EndGroup()
}

// HintStatus draws a dimmed status line such as "3/10 visible".
func (ctx *Context) HintStatus(fontSize float32, format string, args ...any) {
	ctx.Label(fmt.Sprintf(format, args...), fontSize, WithColor(ctx.Style().TextDisabledColor))
}

// HintEmpty draws the empty state of a list. An empty text shows "(none)".
func (ctx *Context) HintEmpty(fontSize float32, text string) {
	if text == "" {
		text = "(none)"
	}
	ctx.Label(text, fontSize, WithColor(ctx.Style().TextDisabledColor))
}

// HintFooterNav draws the navigation hints for controller and keyboard
// focus movement.
func (ctx *Context) HintFooterNav(fontSize float32) {
	ctx.HintFooter(fontSize,
		Hint(HintKeyArrows, "Navigate"),
		Hint(HintKeyEnter, "Select"),
		Hint(HintKeyEscape, "Close"),
	)
}

// HintFooterConfirm draws confirm and cancel hints.
func (ctx *Context) HintFooterConfirm(fontSize float32) {
	ctx.HintFooter(fontSize,
		Hint(HintKeyEnter, "Confirm"),
		Hint(HintKeyEscape, "Cancel"),
	)
}
