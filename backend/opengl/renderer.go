// Package opengl provides an OpenGL 4.1 backend for the GUI package: a
// draw list renderer, texture loading, and a GLFW input adapter.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/flatgui"
)

// Renderer draws GUI draw lists with OpenGL. All methods must be called on
// the goroutine that owns the GL context.
type Renderer struct {
	prog          program
	vao, vbo, ebo uint32
	fontTex       uint32
	width, height int

	// Textures sampled as full color. Everything else is alpha-only in the
	// red channel and tinted by the vertex color.
	rgbaTextures map[uint32]bool
}

// NewRenderer creates a renderer for a framebuffer of the given size. The
// GL context must be current and gl.Init must have been called.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	if r.prog, err = newProgram(); err != nil {
		return nil, fmt.Errorf("gui shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v gui.Vertex
	stride := int32(unsafe.Sizeof(v))
	attribs := []struct {
		size       int32
		xtype      uint32
		normalized bool
		offset     uintptr
	}{
		{2, gl.FLOAT, false, unsafe.Offsetof(v.Pos)},
		{2, gl.FLOAT, false, unsafe.Offsetof(v.TexCoord)},
		{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(v.Color)}, // 0xAABBGGRR as RGBA bytes
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.xtype, a.normalized, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindVertexArray(0)

	if r.fontTex, err = r.UploadAlpha(bitmapFontAtlas()); err != nil {
		r.Delete()
		return nil, fmt.Errorf("gui font texture: %w", err)
	}
	return r, nil
}

// FontTextureID returns the texture of the built-in bitmap font.
func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize updates the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// glState is the GL state Render changes and puts back, so the GUI can be
// drawn over a 3D scene.
type glState struct {
	program                int32
	blendSrc, blendDst     int32
	scissorBox             [4]int32
	blend, depth, cull, sc bool
}

func saveGLState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.sc = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	setEnabled(gl.SCISSOR_TEST, s.sc)
	b := s.scissorBox
	gl.Scissor(b[0], b[1], b[2], b[3])
	gl.BindVertexArray(0)
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Render draws a finalized draw list over whatever is in the framebuffer.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.prog.id)
	proj := mgl32.Ortho2D(0, float32(r.width), float32(r.height), 0)
	gl.UniformMatrix4fv(r.prog.proj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.prog.tex, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	bound := ^uint32(0)
	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if cmd.ElemCount == 0 || !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		if cmd.TextureID != bound {
			bound = cmd.TextureID
			gl.BindTexture(gl.TEXTURE_2D, bound)
			gl.Uniform1i(r.prog.mode, r.textureMode(bound))
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl render: error 0x%04x", code)
	}
	return nil
}

func (r *Renderer) textureMode(tex uint32) int32 {
	switch {
	case tex == 0:
		return modeSolid
	case r.rgbaTextures[tex]:
		return modeRGBA
	}
	return modeAlpha
}

// scissor converts a top-left based clip rectangle to GL window
// coordinates, clamped to the framebuffer.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	x0 := max(int32(clip[0]), 0)
	y1 := min(int32(clip[3]), int32(r.height))
	x1 := min(int32(clip[2]), int32(r.width))
	y0 := max(int32(clip[1]), 0)
	// GL's origin is the bottom-left corner.
	x, y, w, h = x0, int32(r.height)-y1, x1-x0, y1-y0
	return x, y, w, h, w > 0 && h > 0
}

// Delete releases all GL resources owned by the renderer. Textures created
// with UploadAlpha or LoadTexture are owned by the caller.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog.id != 0 {
		gl.DeleteProgram(r.prog.id)
	}
}

// Atlas layout of the built-in font. Must match the cell grid the gui
// package assumes when no font provider is set.
const (
	atlasCols  = 16
	atlasRows  = 6
	cellWidth  = 8
	cellHeight = 13
)

// bitmapFontAtlas rasterizes ASCII 32-127 from basicfont's 7x13 face into a
// 16x6 grid of 8x13 cells.
func bitmapFontAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellWidth, atlasRows*cellHeight))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < atlasCols*atlasRows; i++ {
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*cellWidth, row*cellHeight+face.Ascent)
		d.DrawString(string(rune(32 + i)))
	}
	return img
}
