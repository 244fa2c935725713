package font

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glyphPadding keeps linear filtering from bleeding between neighbours.
const glyphPadding = 1

type glyphKey struct {
	face font.Face
	r    rune
}

// glyph is a rasterized glyph. Offsets are from the pen position on the
// baseline to the top-left of the bitmap.
type glyph struct {
	offX, offY int
	w, h       int
	u0, v0     float32
	u1, v1     float32
}

// atlas packs glyph bitmaps into one alpha image using rows of shelves.
type atlas struct {
	img    *image.Alpha
	size   int
	x, y   int
	rowH   int
	glyphs map[glyphKey]glyph
	dirty  bool
}

func newAtlas(size int) *atlas {
	a := &atlas{size: size}
	a.reset()
	return a
}

// reset drops every glyph. Glyphs still in use are rasterized again on
// their next layout.
func (a *atlas) reset() {
	a.img = image.NewAlpha(image.Rect(0, 0, a.size, a.size))
	a.x, a.y, a.rowH = glyphPadding, glyphPadding, 0
	a.glyphs = make(map[glyphKey]glyph)
	a.dirty = true
}

// alloc reserves a w x h cell. It returns false when the atlas is full.
func (a *atlas) alloc(w, h int) (image.Point, bool) {
	if w+2*glyphPadding > a.size || h+2*glyphPadding > a.size {
		return image.Point{}, false
	}
	if a.x+w+glyphPadding > a.size {
		a.x = glyphPadding
		a.y += a.rowH + glyphPadding
		a.rowH = 0
	}
	if a.y+h+glyphPadding > a.size {
		return image.Point{}, false
	}
	p := image.Pt(a.x, a.y)
	a.x += w + glyphPadding
	a.rowH = max(a.rowH, h)
	return p, true
}

// lookup returns the glyph for key, rasterizing it on first use.
func (a *atlas) lookup(key glyphKey) (glyph, bool) {
	if g, ok := a.glyphs[key]; ok {
		return g, true
	}
	dr, mask, maskp, _, ok := key.face.Glyph(fixed.Point26_6{}, key.r)
	if !ok {
		return glyph{}, false
	}
	g := glyph{offX: dr.Min.X, offY: dr.Min.Y, w: dr.Dx(), h: dr.Dy()}
	if g.w > 0 && g.h > 0 {
		p, ok := a.alloc(g.w, g.h)
		if !ok {
			return glyph{}, false
		}
		draw.DrawMask(a.img, image.Rect(p.X, p.Y, p.X+g.w, p.Y+g.h), image.Opaque, image.Point{}, mask, maskp, draw.Src)
		s := float32(a.size)
		g.u0, g.v0 = float32(p.X)/s, float32(p.Y)/s
		g.u1, g.v1 = float32(p.X+g.w)/s, float32(p.Y+g.h)/s
		a.dirty = true
	}
	a.glyphs[key] = g
	return g, true
}
