package gui

import "slices"

// ToastType defines the type of toast notification.
type ToastType uint8

const (
	ToastTypeInfo ToastType = iota
	ToastTypeSuccess
	ToastTypeWarning
	ToastTypeError
)

// ToastNotification represents a single toast message.
type ToastNotification struct {
	Message  string
	Type     ToastType
	Duration float32 // Total duration in seconds
	Elapsed  float32 // Time elapsed since shown
}

// ToastState holds the queued notifications. The application owns it, calls
// Update once per frame outside Run and passes it to Context.Toasts.
type ToastState struct {
	Toasts []ToastNotification
}

// DefaultToastDuration is the default duration for toast messages.
const DefaultToastDuration float32 = 3.0

// ToastMaxVisible is the maximum number of visible toasts at once.
const ToastMaxVisible = 5

const (
	toastFadeIn       = float32(0.15)
	toastFadeOutStart = float32(0.7) // fraction of the duration
)

// Toast queues a notification. A zero duration uses DefaultToastDuration.
func (ts *ToastState) Toast(message string, toastType ToastType, duration float32) {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	ts.Toasts = append(ts.Toasts, ToastNotification{
		Message:  message,
		Type:     toastType,
		Duration: duration,
	})
	if len(ts.Toasts) > ToastMaxVisible*2 {
		ts.Toasts = ts.Toasts[len(ts.Toasts)-ToastMaxVisible:]
	}
}

// Shorthands for Toast with the default duration.
func (ts *ToastState) ToastInfo(message string)    { ts.Toast(message, ToastTypeInfo, 0) }
func (ts *ToastState) ToastSuccess(message string) { ts.Toast(message, ToastTypeSuccess, 0) }
func (ts *ToastState) ToastWarning(message string) { ts.Toast(message, ToastTypeWarning, 0) }
func (ts *ToastState) ToastError(message string)   { ts.Toast(message, ToastTypeError, 0) }

// Update advances the timers by dt seconds and drops expired toasts.
func (ts *ToastState) Update(dt float32) {
	ts.Toasts = slices.DeleteFunc(ts.Toasts, func(t ToastNotification) bool {
		return t.Elapsed+dt >= t.Duration
	})
	for i := range ts.Toasts {
		ts.Toasts[i].Elapsed += dt
	}
}

// opacity fades a toast in over toastFadeIn seconds and out over the last
// 30% of its duration.
func (t ToastNotification) opacity() float32 {
	switch {
	case t.Elapsed < toastFadeIn:
		return t.Elapsed / toastFadeIn
	case t.Elapsed > t.Duration*toastFadeOutStart:
		return 1 - (t.Elapsed-t.Duration*toastFadeOutStart)/(t.Duration*(1-toastFadeOutStart))
	}
	return 1
}

// Toasts declares the newest ToastMaxVisible notifications as a top-level
// group in the bottom-right corner, newest at the bottom. Call it at the
// top level of the declaration, after the rest of the UI.
func (ctx *Context) Toasts(ts *ToastState, fontSize float32) {
	if ts == nil || len(ts.Toasts) == 0 {
		return
	}
	first := max(len(ts.Toasts)-ToastMaxVisible, 0)

	ctx.StartGroup(LayoutVerticalRight, SpaceSM, "")
	ctx.PositionGroup(AlignEnd, AlignEnd, Vec2{X: -SpaceMD, Y: -SpaceMD})
	for _, t := range ts.Toasts[first:] {
		alpha := clampf(t.opacity(), 0, 1)
		if alpha <= 0 {
			continue
		}
		ctx.StartGroup(LayoutHorizontalCenter, SpaceMD, "")
		ctx.SetMargin(Margin{Left: SpaceLG, Top: SpaceMD, Right: SpaceLG, Bottom: SpaceMD})
		ctx.ColorBackground(withAlpha(ctx.toastColor(t.Type), 230*alpha))
		textColor := withAlpha(ColorWhite, 255*alpha)
		ctx.Label(toastIcon(t.Type), fontSize, WithColor(textColor))
		ctx.Label(t.Message, fontSize, WithColor(textColor))
		ctx.EndGroup()
	}
	ctx.EndGroup()
}

func withAlpha(c uint32, a float32) uint32 {
	r, g, b, _ := UnpackRGBA(c)
	return RGBA(r, g, b, uint8(a))
}

func (ctx *Context) toastColor(t ToastType) uint32 {
	style := ctx.Style()
	switch t {
	case ToastTypeSuccess:
		return style.ToastSuccessColor
	case ToastTypeWarning:
		return style.ToastWarningColor
	case ToastTypeError:
		return style.ToastErrorColor
	default:
		return style.ToastInfoColor
	}
}

func toastIcon(t ToastType) string {
	switch t {
	case ToastTypeSuccess:
		return "+"
	case ToastTypeWarning:
		return "!"
	case ToastTypeError:
		return "X"
	default:
		return "i"
	}
}
