package gui

import (
	"math"
	"sync"
)

// maxCmdVertices is the most vertices one command can address with its
// 16-bit indices. Indices are relative to DrawCmd.VertexOffset.
const maxCmdVertices = math.MaxUint16 + 1

// noClip is the clip rectangle outside any clipping group.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// drawListPool reuses DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the frame's primitives as indexed triangles.
// Consecutive primitives that share a texture and clip rectangle land in
// one DrawCmd. A command is split when its vertices would overflow the
// 16-bit indices.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to each command's VertexOffset

	clipStack [][4]float32
	clip      [4]float32
	textureID uint32
	open      bool // CmdBuffer's last command still takes primitives
}

// Clear resets the DrawList for a new frame, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.textureID = 0
	dl.open = false
}

// PushClipRect clips subsequent primitives to (x1, y1)-(x2, y2)
// intersected with the current clip rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	c := dl.clip
	dl.setClip([4]float32{max(x1, c[0]), max(y1, c[1]), min(x2, c[2]), min(y2, c[3])})
}

// PopClipRect restores the clip rectangle from before the matching
// PushClipRect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	c := dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.setClip(c)
}

// ClipRect returns the current clip rectangle.
func (dl *DrawList) ClipRect() [4]float32 { return dl.clip }

func (dl *DrawList) setClip(c [4]float32) {
	if c != dl.clip {
		dl.clip = c
		dl.closeCmd()
	}
}

// SetTexture sets the texture for subsequent primitives. 0 draws solid
// colors.
func (dl *DrawList) SetTexture(textureID uint32) {
	if textureID != dl.textureID {
		dl.textureID = textureID
		dl.closeCmd()
	}
}

// closeCmd ends the current command; the next primitive starts a new one.
func (dl *DrawList) closeCmd() {
	if !dl.open {
		return
	}
	dl.open = false
	cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	cmd.ElemCount = uint32(len(dl.IdxBuffer)) - cmd.IndexOffset
}

// reserve makes room for n more vertices in the current command, starting
// a new one when needed, and returns the index of the first of them.
func (dl *DrawList) reserve(n int) uint16 {
	if dl.open {
		cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		if len(dl.VtxBuffer)-int(cmd.VertexOffset)+n > maxCmdVertices {
			dl.closeCmd()
		}
	}
	if !dl.open {
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ClipRect:     dl.clip,
			TextureID:    dl.textureID,
			VertexOffset: uint32(len(dl.VtxBuffer)),
			IndexOffset:  uint32(len(dl.IdxBuffer)),
		})
		dl.open = true
	}
	cmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
	return uint16(len(dl.VtxBuffer) - int(cmd.VertexOffset))
}

// quad appends four corners in clockwise order as two triangles.
func (dl *DrawList) quad(a, b, c, d Vertex) {
	i := dl.reserve(4)
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
}

func transparent(color uint32) bool { return color&0xFF000000 == 0 }

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	dl.quad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline inside (x, y, w, h).
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) || thickness <= 0 {
		return
	}
	if 2*thickness >= w || 2*thickness >= h {
		dl.AddRect(x, y, w, h, color)
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Half-thickness normal.
	k := thickness * 0.5 / length
	nx, ny := -dy*k, dx*k
	dl.quad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if transparent(color) {
		return
	}
	i := dl.reserve(3)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2)
}

// GlyphQuad is one glyph's rectangle relative to its text block and its
// atlas UVs.
type GlyphQuad struct {
	X0, Y0 float32 // top-left
	X1, Y1 float32 // bottom-right
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads offset by (x, y). The current texture
// must be the glyphs' atlas.
func (dl *DrawList) AddGlyphQuads(x, y float32, quads []GlyphQuad, color uint32) {
	if transparent(color) {
		return
	}
	for _, q := range quads {
		dl.texturedQuad(x+q.X0, y+q.Y0, x+q.X1, y+q.Y1, [2]float32{q.U0, q.V0}, [2]float32{q.U1, q.V1}, color)
	}
}

// AddImage draws a textured quad. It switches the current texture; callers
// that batch other primitives afterwards set theirs again.
func (dl *DrawList) AddImage(x, y, w, h float32, textureID uint32, uv0, uv1 [2]float32, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(textureID)
	dl.texturedQuad(x, y, x+w, y+h, uv0, uv1, color)
}

// AddNinePatch draws a texture split into a 3x3 grid. patch holds the UV
// insets of the stretchable center; corners keep texSize*inset pixels,
// scaled down when the destination is smaller than the corners.
func (dl *DrawList) AddNinePatch(x, y, w, h float32, textureID uint32, texSize Vec2i, patch NinePatch, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	l := patch.Left * float32(texSize.X)
	r := patch.Right * float32(texSize.X)
	t := patch.Top * float32(texSize.Y)
	b := patch.Bottom * float32(texSize.Y)
	if l+r > w {
		k := w / (l + r)
		l, r = l*k, r*k
	}
	if t+b > h {
		k := h / (t + b)
		t, b = t*k, b*k
	}
	xs := [4]float32{x, x + l, x + w - r, x + w}
	ys := [4]float32{y, y + t, y + h - b, y + h}
	us := [4]float32{0, patch.Left, 1 - patch.Right, 1}
	vs := [4]float32{0, patch.Top, 1 - patch.Bottom, 1}

	dl.SetTexture(textureID)
	for row := range 3 {
		for col := range 3 {
			if xs[col+1] <= xs[col] || ys[row+1] <= ys[row] {
				continue
			}
			dl.texturedQuad(xs[col], ys[row], xs[col+1], ys[row+1],
				[2]float32{us[col], vs[row]}, [2]float32{us[col+1], vs[row+1]}, color)
		}
	}
}

func (dl *DrawList) texturedQuad(x0, y0, x1, y1 float32, uv0, uv1 [2]float32, color uint32) {
	dl.quad(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: uv0, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{uv1[0], uv0[1]}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: uv1, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{uv0[0], uv1[1]}, Color: color},
	)
}

// Finalize closes the last command and drops empty ones. Run calls it
// before handing the list to the renderer.
func (dl *DrawList) Finalize() {
	dl.closeCmd()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
