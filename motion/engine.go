// Package motion animates id-keyed vectors for the gui package. Engine
// implements gui.AnimationProvider with bezier ease and spring curves.
//
// Example usage:
//
//	anim := motion.NewEngine()
//	ui := gui.New(renderer, gui.WithAnimation(anim))
//
// The GUI calls Advance once per frame with the input's DeltaTime.
package motion

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/flatgui"
)

// DefaultRetain is how many Advance calls an animation survives without
// being read or started.
const DefaultRetain = 120

// maxSpringStep bounds the integration step so large frame times stay
// stable.
const maxSpringStep = 1.0 / 240

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for debug tracing of starts and evictions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRetain sets how many idle Advance calls an animation is kept for.
func WithRetain(n int) Option {
	return func(e *Engine) { e.retain = n }
}

type start struct {
	from, to mgl32.Vec4
	curve    gui.AnimCurve
}

type animation struct {
	value    mgl32.Vec4
	velocity mgl32.Vec4 // springs only
	from, to mgl32.Vec4
	curve    gui.AnimCurve
	ease     func(float64) float64
	elapsed  float32
	duration float32
	// Spring parameters, derived from the curve at start.
	omega, zeta float32
	epsilon     float32
	moving      bool
	idle        int
}

// Engine implements gui.AnimationProvider. It is not safe for concurrent
// use.
type Engine struct {
	anims   map[gui.ID]*animation
	pending map[gui.ID]start
	retain  int
	log     *slog.Logger
}

// NewEngine returns an engine with no animations.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		anims:   make(map[gui.ID]*animation),
		pending: make(map[gui.ID]start),
		retain:  DefaultRetain,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "motion")
	return e
}

// Value implements gui.AnimationProvider.
func (e *Engine) Value(id gui.ID) (mgl32.Vec4, bool) {
	a, ok := e.anims[id]
	if !ok {
		return mgl32.Vec4{}, false
	}
	a.idle = 0
	return a.value, true
}

// Start implements gui.AnimationProvider. The new target takes effect on
// the next Advance; until then Value keeps returning the current value.
// Restarting toward the target already in flight is a no-op.
func (e *Engine) Start(id gui.ID, from, to mgl32.Vec4, curve gui.AnimCurve) {
	if a, ok := e.anims[id]; ok {
		a.idle = 0
		if a.to == to && a.curve == curve {
			delete(e.pending, id)
			return
		}
	}
	e.pending[id] = start{from: from, to: to, curve: curve}
}

// Advance implements gui.AnimationProvider.
func (e *Engine) Advance(dt float32) {
	for id, s := range e.pending {
		e.apply(id, s)
		delete(e.pending, id)
	}
	for id, a := range e.anims {
		if a.moving {
			a.step(dt)
			continue
		}
		a.idle++
		if e.retain > 0 && a.idle > e.retain {
			delete(e.anims, id)
			e.log.Debug("animation evicted", "id", id)
		}
	}
}

// Active reports how many animations are still moving. Applications can
// stop redrawing when it is zero.
func (e *Engine) Active() int {
	n := len(e.pending)
	for _, a := range e.anims {
		if a.moving {
			n++
		}
	}
	return n
}

// Forget drops the animation for id.
func (e *Engine) Forget(id gui.ID) {
	delete(e.anims, id)
	delete(e.pending, id)
}

func (e *Engine) apply(id gui.ID, s start) {
	a, ok := e.anims[id]
	if !ok {
		a = &animation{value: s.from}
		e.anims[id] = a
	}
	a.from = a.value
	a.to = s.to
	a.curve = s.curve
	a.elapsed = 0
	a.idle = 0

	delta := s.to.Sub(a.from).Len()
	a.duration = scaledDuration(s.curve, delta)
	a.moving = a.duration > 0 && delta > 0
	if !a.moving {
		a.value = s.to
		a.velocity = mgl32.Vec4{}
		return
	}

	switch s.curve.Kind {
	case gui.CurveSpring:
		// Bias 0 bounces, bias 1 is critically damped. The spring settles
		// to within ~2% in about 4/(zeta*omega) seconds.
		a.zeta = 0.2 + 0.8*clamp01(s.curve.Bias)
		a.omega = 4 / (a.zeta * a.duration)
		a.epsilon = max(delta, 1) * 1e-4
	default:
		a.ease = biasCurve(s.curve.Bias)
		a.velocity = mgl32.Vec4{}
	}
	e.log.Debug("animation started", "id", id, "curve", s.curve.Kind, "duration", a.duration)
}

// scaledDuration is the curve's typical time scaled by how far this move
// goes relative to the typical move.
func scaledDuration(c gui.AnimCurve, delta float32) float32 {
	if c.TypicalDelta <= 0 || c.TypicalTotalTime <= 0 {
		return 0
	}
	return c.TypicalTotalTime * delta / c.TypicalDelta
}

func (a *animation) step(dt float32) {
	if dt <= 0 {
		return
	}
	if a.curve.Kind == gui.CurveSpring {
		a.stepSpring(dt)
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.value = a.to
		a.moving = false
		return
	}
	t := float32(a.ease(float64(a.elapsed / a.duration)))
	a.value = a.from.Add(a.to.Sub(a.from).Mul(t))
}

// stepSpring integrates a damped spring toward the target with
// semi-implicit Euler.
func (a *animation) stepSpring(dt float32) {
	k := a.omega * a.omega
	c := 2 * a.zeta * a.omega
	for dt > 0 {
		h := min(dt, maxSpringStep)
		dt -= h
		accel := a.to.Sub(a.value).Mul(k).Sub(a.velocity.Mul(c))
		a.velocity = a.velocity.Add(accel.Mul(h))
		a.value = a.value.Add(a.velocity.Mul(h))
	}
	if a.to.Sub(a.value).Len() < a.epsilon && a.velocity.Len() < a.epsilon {
		a.value = a.to
		a.velocity = mgl32.Vec4{}
		a.moving = false
	}
}

func clamp01(v float32) float32 {
	return float32(math.Max(0, math.Min(1, float64(v))))
}
