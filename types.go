package gui

// Vec2 is a size or offset in virtual units. Declarations use Vec2; the
// tree converts it to Vec2i with the frame's scale.
type Vec2 struct {
	X, Y float32
}

// Vec2i is a point or size in physical pixels. Layout and hit testing run
// entirely on Vec2i.
type Vec2i struct {
	X, Y int
}

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }
func (v Vec2i) Sub(o Vec2i) Vec2i { return Vec2i{v.X - o.X, v.Y - o.Y} }

// axis returns the X (0) or Y (1) component.
func (v Vec2i) axis(a int) int {
	if a == 0 {
		return v.X
	}
	return v.Y
}

func (v *Vec2i) setAxis(a, value int) {
	if a == 0 {
		v.X = value
		return
	}
	v.Y = value
}

// Rect is an axis aligned rectangle in physical pixels. X and Y are the
// top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p is inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2i) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o. Disjoint rectangles give a
// zero-sized rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Center() Vec2i {
	return Vec2i{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Margin is space around an element in virtual units, clockwise from the
// left.
type Margin struct {
	Left, Top, Right, Bottom float32
}

// UniformMargin returns a margin of m on every side.
func UniformMargin(m float32) Margin {
	return Margin{Left: m, Top: m, Right: m, Bottom: m}
}

// insets is a Margin in physical pixels.
type insets struct {
	left, top, right, bottom int
}

func (in insets) size() Vec2i {
	return Vec2i{X: in.left + in.right, Y: in.top + in.bottom}
}

// Vertex is one corner of a draw list triangle. Its layout is the vertex
// attribute layout of backend/opengl.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed 0xAABBGGRR
}

// DrawCmd is a run of indices drawn with one texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2 in physical pixels
	TextureID    uint32     // 0 draws solid colors
	VertexOffset uint32     // base vertex added to every index
	IndexOffset  uint32
}

// Colors are packed as 0xAABBGGRR, the byte order GL reads for
// UNSIGNED_BYTE RGBA attributes on little-endian hosts.
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorGray  uint32 = 0xFF808080
)

// RGBA packs 8-bit components.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA is the inverse of RGBA.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampi(v, lo, hi int) int         { return max(lo, min(v, hi)) }
func clampf(v, lo, hi float32) float32 { return max(lo, min(v, hi)) }
