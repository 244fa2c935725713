package gui

import "github.com/go-gl/mathgl/mgl32"

// CurveKind selects how an animation approaches its target.
type CurveKind uint8

const (
	// CurveEase follows a cubic bezier ease-in-out shaped by Bias.
	CurveEase CurveKind = iota
	// CurveSpring overshoots and settles; Bias controls damping.
	CurveSpring
)

func (k CurveKind) String() string {
	switch k {
	case CurveSpring:
		return "spring"
	default:
		return "ease"
	}
}

// AnimCurve describes an animation curve. TypicalTotalTime is the duration
// of a move of TypicalDelta; shorter moves finish proportionally sooner.
// Bias is in 0..1.
type AnimCurve struct {
	Kind             CurveKind
	TypicalDelta     float32
	TypicalTotalTime float32
	Bias             float32
}

// AnimationProvider owns id-keyed animated vectors. The GUI advances it
// once per frame before the layout pass, reads values in both passes, and
// only retargets during the render pass. Start must not change the value
// returned by Value until the next Advance.
type AnimationProvider interface {
	// Value returns the current value for id.
	Value(id ID) (mgl32.Vec4, bool)
	// Start animates id from its current value (or from, when it has none)
	// toward to.
	Start(id ID, from, to mgl32.Vec4, curve AnimCurve)
	// Advance steps every animation by dt seconds.
	Advance(dt float32)
}

// Animatable returns the animated value for id, or initial when the
// provider has none. Without an AnimationProvider it always returns initial.
func (ctx *Context) Animatable(id string, initial mgl32.Vec4) mgl32.Vec4 {
	ctx.checkActive("Animatable")
	anim := ctx.gui.anim
	if anim == nil {
		return initial
	}
	hid := HashID(id)
	if v, ok := anim.Value(hid); ok {
		return v
	}
	if ctx.pass == PassRender {
		// Seed the provider so a later StartAnimation starts from initial.
		anim.Start(hid, initial, initial, AnimCurve{})
	}
	return initial
}

// StartAnimation retargets id. It has no effect during the layout pass, so
// both passes of a frame see the same value.
func (ctx *Context) StartAnimation(id string, target mgl32.Vec4, curve AnimCurve) {
	ctx.checkActive("StartAnimation")
	anim := ctx.gui.anim
	if anim == nil || ctx.pass != PassRender {
		return
	}
	hid := HashID(id)
	from, ok := anim.Value(hid)
	if !ok {
		from = target
	}
	anim.Start(hid, from, target, curve)
}

// AnimatableFloat is Animatable for a scalar.
func (ctx *Context) AnimatableFloat(id string, initial float32) float32 {
	return ctx.Animatable(id, mgl32.Vec4{initial})[0]
}

// StartAnimationFloat is StartAnimation for a scalar.
func (ctx *Context) StartAnimationFloat(id string, target float32, curve AnimCurve) {
	ctx.StartAnimation(id, mgl32.Vec4{target}, curve)
}
