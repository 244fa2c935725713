package gui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ValueKind is the type held by a Value.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindString
	KindHandle
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindString:
		return "string"
	case KindHandle:
		return "handle"
	default:
		return "none"
	}
}

// Value is a tagged variant carried between widgets, e.g. as a drag payload.
// The zero Value has KindNone.
type Value struct {
	kind   ValueKind
	num    int64
	vec    mgl32.Vec4
	str    string
	handle any
}

func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

func IntValue(i int64) Value       { return Value{kind: KindInt, num: i} }
func FloatValue(f float32) Value   { return Value{kind: KindFloat, vec: mgl32.Vec4{f}} }
func Vec2Value(x mgl32.Vec2) Value { return Value{kind: KindVec2, vec: x.Vec4(0, 0)} }
func Vec3Value(x mgl32.Vec3) Value { return Value{kind: KindVec3, vec: x.Vec4(0)} }
func Vec4Value(x mgl32.Vec4) Value { return Value{kind: KindVec4, vec: x} }
func StringValue(s string) Value   { return Value{kind: KindString, str: s} }

// HandleValue wraps an opaque application object.
func HandleValue(h any) Value { return Value{kind: KindHandle, handle: h} }

// Kind returns the type held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether v holds nothing.
func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) Bool() (bool, bool) { return v.num != 0, v.kind == KindBool }
func (v Value) Int() (int64, bool) { return v.num, v.kind == KindInt }

func (v Value) Float() (float32, bool) { return v.vec[0], v.kind == KindFloat }

func (v Value) Vec2() (mgl32.Vec2, bool) { return v.vec.Vec2(), v.kind == KindVec2 }
func (v Value) Vec3() (mgl32.Vec3, bool) { return v.vec.Vec3(), v.kind == KindVec3 }
func (v Value) Vec4() (mgl32.Vec4, bool) { return v.vec, v.kind == KindVec4 }

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprint(v.num != 0)
	case KindInt:
		return fmt.Sprint(v.num)
	case KindFloat:
		return fmt.Sprint(v.vec[0])
	case KindVec2:
		return fmt.Sprint(v.vec.Vec2())
	case KindVec3:
		return fmt.Sprint(v.vec.Vec3())
	case KindVec4:
		return fmt.Sprint(v.vec)
	case KindString:
		return v.str
	case KindHandle:
		return fmt.Sprintf("handle(%T)", v.handle)
	default:
		return "none"
	}
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Handle returns the opaque object held by v.
func (v Value) Handle() (any, bool) { return v.handle, v.kind == KindHandle }
