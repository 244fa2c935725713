package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/flatgui"
)

var ease = gui.AnimCurve{Kind: gui.CurveEase, TypicalDelta: 10, TypicalTotalTime: 1, Bias: 0.5}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestStartTakesEffectOnAdvance(t *testing.T) {
	e := NewEngine()
	id := gui.HashID("x")

	e.Start(id, mgl32.Vec4{0}, mgl32.Vec4{0}, gui.AnimCurve{})
	if _, ok := e.Value(id); ok {
		t.Fatal("new animation visible before Advance")
	}
	e.Advance(0)
	if v, ok := e.Value(id); !ok || v[0] != 0 {
		t.Fatalf("seeded value = %v, %v; want 0, true", v, ok)
	}

	e.Start(id, mgl32.Vec4{0}, mgl32.Vec4{10}, ease)
	if v, _ := e.Value(id); v[0] != 0 {
		t.Errorf("value changed by Start to %v", v[0])
	}
	e.Advance(0.5)
	if v, _ := e.Value(id); !near(v[0], 5) {
		t.Errorf("symmetric ease at half time = %v, want 5", v[0])
	}
	e.Advance(0.5)
	if v, _ := e.Value(id); v[0] != 10 {
		t.Errorf("value at end = %v, want 10", v[0])
	}
	if e.Active() != 0 {
		t.Errorf("Active = %d after finishing, want 0", e.Active())
	}
}

func TestDurationScalesWithDistance(t *testing.T) {
	tests := []struct {
		name   string
		to     float32
		after  float32
		done   bool
		within float32
	}{
		{"half distance finishes in half time", 5, 0.5, true, 0},
		{"double distance takes twice as long", 20, 1, false, 0},
		{"double distance done", 20, 2, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			id := gui.HashID("x")
			e.Start(id, mgl32.Vec4{}, mgl32.Vec4{tt.to}, ease)
			e.Advance(0)
			e.Advance(tt.after)
			v, _ := e.Value(id)
			if got := v[0] == tt.to; got != tt.done {
				t.Errorf("after %vs value = %v, done = %v, want %v", tt.after, v[0], got, tt.done)
			}
		})
	}
}

func TestZeroCurveSnaps(t *testing.T) {
	e := NewEngine()
	id := gui.HashID("x")
	e.Start(id, mgl32.Vec4{1, 2}, mgl32.Vec4{3, 4}, gui.AnimCurve{})
	e.Advance(0.016)
	if v, _ := e.Value(id); v != (mgl32.Vec4{3, 4}) {
		t.Errorf("value = %v, want {3 4 0 0}", v)
	}
}

func TestRestartSameTargetKeepsProgress(t *testing.T) {
	e := NewEngine()
	id := gui.HashID("x")
	e.Start(id, mgl32.Vec4{}, mgl32.Vec4{10}, ease)
	e.Advance(0)
	e.Advance(0.5)
	e.Start(id, mgl32.Vec4{}, mgl32.Vec4{10}, ease)
	e.Advance(0.5)
	if v, _ := e.Value(id); v[0] != 10 {
		t.Errorf("value = %v, want 10", v[0])
	}
}

func TestSpringConverges(t *testing.T) {
	tests := []struct {
		name      string
		bias      float32
		overshoot bool
	}{
		{"bouncy", 0, true},
		{"critically damped", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			id := gui.HashID("x")
			curve := gui.AnimCurve{Kind: gui.CurveSpring, TypicalDelta: 10, TypicalTotalTime: 1, Bias: tt.bias}
			e.Start(id, mgl32.Vec4{}, mgl32.Vec4{10}, curve)

			var peak float32
			for i := 0; i < 300; i++ {
				e.Advance(1.0 / 60)
				v, _ := e.Value(id)
				peak = max(peak, v[0])
			}
			v, _ := e.Value(id)
			if v[0] != 10 {
				t.Errorf("value after 5s = %v, want settled at 10", v[0])
			}
			if e.Active() != 0 {
				t.Errorf("spring still active")
			}
			if got := peak > 10.01; got != tt.overshoot {
				t.Errorf("peak = %v, overshoot = %v, want %v", peak, got, tt.overshoot)
			}
		})
	}
}

func TestIdleAnimationsEvicted(t *testing.T) {
	e := NewEngine(WithRetain(2))
	id := gui.HashID("x")
	e.Start(id, mgl32.Vec4{1}, mgl32.Vec4{1}, gui.AnimCurve{})
	e.Advance(0)

	e.Value(id)
	e.Advance(0)
	e.Advance(0)
	if _, ok := e.Value(id); !ok {
		t.Fatal("animation evicted while within retention")
	}
	for i := 0; i < 3; i++ {
		e.Advance(0)
	}
	if _, ok := e.Value(id); ok {
		t.Error("idle animation was not evicted")
	}
}

func TestBiasCurveEndpoints(t *testing.T) {
	for _, bias := range []float32{0, 0.25, 0.5, 0.75, 1} {
		f := biasCurve(bias)
		if f(0) != 0 || f(1) != 1 {
			t.Errorf("bias %v: f(0)=%v f(1)=%v", bias, f(0), f(1))
		}
		prev := 0.0
		for i := 1; i < 100; i++ {
			y := f(float64(i) / 100)
			if y < prev-1e-9 {
				t.Errorf("bias %v: curve decreases at %d", bias, i)
				break
			}
			prev = y
		}
	}
}
