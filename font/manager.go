// Package font lays out text for the gui package from OpenType and bitmap
// fonts, rasterizing glyphs on demand into a single texture atlas.
//
// Example usage:
//
//	fonts := font.NewManager(renderer)
//	if err := fonts.LoadFile("serif", "assets/NotoSerif.ttf"); err != nil {
//		return err
//	}
//	ui := gui.New(renderer, gui.WithFontProvider(fonts))
//
// Every manager has two fonts loaded: "goregular" (the Go font) and
// "basic" (a fixed 7x13 bitmap face). Text styles with no font list use
// them in that order.
package font

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/flatgui"
)

// Names of the built-in fonts.
const (
	GoRegular = "goregular"
	Basic     = "basic"
)

// DefaultAtlasSize is the width and height of the glyph atlas in texels.
const DefaultAtlasSize = 1024

// defaultSize is the line height used when a style has none.
const defaultSize = 16

// TextureUploader creates and updates single-channel textures. The
// OpenGL renderer implements it.
type TextureUploader interface {
	UploadAlpha(img *image.Alpha) (uint32, error)
	UpdateAlpha(tex uint32, img *image.Alpha) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for load and atlas messages.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithAtlasSize sets the atlas width and height in texels.
func WithAtlasSize(size int) Option {
	return func(m *Manager) { m.atlasSize = size }
}

// Manager implements gui.FontProvider. It is not safe for concurrent use;
// call it from the goroutine that runs the GUI.
type Manager struct {
	up        TextureUploader
	log       *slog.Logger
	atlasSize int
	atlas     *atlas
	tex       uint32
	sources   map[string]*source
	defaults  []string
}

// NewManager returns a manager uploading its atlas through up. A nil
// uploader lays text out without a texture, which is enough to measure.
func NewManager(up TextureUploader, opts ...Option) *Manager {
	m := &Manager{
		up:        up,
		log:       slog.Default(),
		atlasSize: DefaultAtlasSize,
		sources:   make(map[string]*source),
		defaults:  []string{GoRegular, Basic},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("component", "font")
	m.atlas = newAtlas(m.atlasSize)

	m.sources[Basic] = newBasicSource(Basic, basicfont.Face7x13)
	if err := m.LoadTTF(GoRegular, goregular.TTF); err != nil {
		// Embedded font; only a broken build gets here.
		m.log.Error("failed to load built-in font", "font", GoRegular, "error", err)
	}
	return m
}

// LoadTTF registers a TrueType or OpenType font under name, replacing any
// font with that name.
func (m *Manager) LoadTTF(name string, data []byte) error {
	src, err := newOpenTypeSource(name, data)
	if err != nil {
		return err
	}
	if old, ok := m.sources[name]; ok {
		old.close()
		m.atlas.reset()
	}
	m.sources[name] = src
	m.log.Debug("font loaded", "font", name, "bytes", len(data))
	return nil
}

// LoadFile reads a font file and registers it under name.
func (m *Manager) LoadFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font: %w", err)
	}
	return m.LoadTTF(name, data)
}

// SetDefaults sets the fonts used by styles with an empty font list.
func (m *Manager) SetDefaults(names ...string) {
	m.defaults = append([]string(nil), names...)
}

// HasFont implements gui.FontProvider.
func (m *Manager) HasFont(name string) bool {
	_, ok := m.sources[name]
	return ok
}

// TextureID returns the atlas texture, 0 before the first upload.
func (m *Manager) TextureID() uint32 {
	return m.tex
}

// Close releases all faces. The atlas texture belongs to the uploader.
func (m *Manager) Close() {
	for _, s := range m.sources {
		s.close()
	}
}

// fontList resolves the style's font names to loaded fonts, skipping
// unknown names.
func (m *Manager) fontList(names []string) []*source {
	if len(names) == 0 {
		names = m.defaults
	}
	list := make([]*source, 0, len(names))
	for _, n := range names {
		if s, ok := m.sources[n]; ok {
			list = append(list, s)
		}
	}
	return list
}

// pick returns the first font in list with a glyph for r. When none has
// one, the first font draws its missing-glyph box.
func pick(list []*source, r rune) *source {
	for _, s := range list {
		if s.has(r) {
			return s
		}
	}
	return list[0]
}

// run is one shaped rune with the face it was resolved to.
type run struct {
	r    rune
	face font.Face
	adv  fixed.Int26_6
}

// LayoutText implements gui.FontProvider.
func (m *Manager) LayoutText(text string, style gui.TextStyle) (*gui.TextLayout, bool) {
	list := m.fontList(style.Fonts)
	if len(list) == 0 {
		return nil, false
	}
	size := style.Size
	if size <= 0 {
		size = defaultSize
	}
	lineScale := style.LineHeightScale
	if lineScale <= 0 {
		lineScale = 1
	}

	primary, err := list[0].face(size)
	if err != nil {
		m.log.Warn("failed to open face", "error", err)
		return nil, false
	}
	metrics := primary.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := max(int(float32(metrics.Height.Ceil())*lineScale+0.5), 1)
	dir := resolveDirection(text, style)

	lines := gui.WrapLines(text, style.MaxWidth, func(s string) int {
		return m.shape(s, list, size, style.KerningScale).width
	})

	tl := &gui.TextLayout{
		LineHeight: lineHeight,
		Direction:  dir,
	}
	shaped := make([]shapedLine, len(lines))
	for i, line := range lines {
		shaped[i] = m.shape(line, list, size, style.KerningScale)
		tl.Size.X = max(tl.Size.X, shaped[i].width)
	}
	tl.Size.Y = max(len(lines), 1) * lineHeight

	full := false
	for li, sl := range shaped {
		if !m.place(tl, sl, li*lineHeight+ascent, dir, &full) {
			// The atlas filled up mid-text: start over with an empty atlas
			// so this text at least gets all of its glyphs.
			m.atlas.reset()
			tl.Glyphs = tl.Glyphs[:0]
			full = false
			for lj := 0; lj < len(shaped); lj++ {
				m.place(tl, shaped[lj], lj*lineHeight+ascent, dir, &full)
			}
			if full {
				m.log.Warn("glyph atlas too small for text", "atlas", m.atlasSize, "runes", utf8.RuneCountInString(text))
			}
			break
		}
	}

	if len(shaped) > 0 {
		tl.Carets = shaped[0].carets(tl.Size.X, dir)
	} else {
		tl.Carets = []int{0}
	}

	if err := m.upload(); err != nil {
		m.log.Error("failed to upload glyph atlas", "error", err)
		return nil, false
	}
	tl.TextureID = m.tex
	return tl, true
}

// shapedLine holds the advances of one line in logical order.
type shapedLine struct {
	runs  []run
	pen   []int // pen x before each rune, len(runs)+1
	width int
}

// shape resolves fonts per rune and accumulates advances with kerning
// between runes of the same face.
func (m *Manager) shape(line string, list []*source, size int, kernScale float32) shapedLine {
	if kernScale == 0 {
		kernScale = 1
	}
	sl := shapedLine{pen: []int{0}}
	var x fixed.Int26_6
	for _, r := range line {
		src := pick(list, r)
		face, err := src.face(size)
		if err != nil {
			// Keep the rune so carets still line up with the text.
			m.log.Warn("failed to open face", "error", err)
			sl.runs = append(sl.runs, run{r: r})
			sl.pen = append(sl.pen, x.Round())
			continue
		}
		adv, _ := face.GlyphAdvance(r)
		if n := len(sl.runs); n > 0 && sl.runs[n-1].face == face {
			x += fixed.Int26_6(float32(face.Kern(sl.runs[n-1].r, r)) * kernScale)
			sl.pen[n] = x.Round()
		}
		sl.runs = append(sl.runs, run{r: r, face: face, adv: adv})
		x += adv
		sl.pen = append(sl.pen, x.Round())
	}
	sl.width = x.Round()
	return sl
}

// carets returns the x of every rune boundary. Right-to-left lines are
// right aligned in a block of the given width and run from right to left.
func (sl shapedLine) carets(blockWidth int, dir gui.TextDirection) []int {
	c := make([]int, len(sl.pen))
	for i, p := range sl.pen {
		if dir == gui.TextDirectionRTL {
			c[i] = blockWidth - p
		} else {
			c[i] = p
		}
	}
	return c
}

// place appends the glyph quads of one line. It reports false when a glyph
// did not fit in the atlas; full is set in that case.
func (m *Manager) place(tl *gui.TextLayout, sl shapedLine, baseline int, dir gui.TextDirection, full *bool) bool {
	for i, rn := range sl.runs {
		if rn.face == nil {
			continue
		}
		g, ok := m.atlas.lookup(glyphKey{face: rn.face, r: rn.r})
		if !ok {
			*full = true
			return false
		}
		if g.w == 0 || g.h == 0 {
			continue
		}
		x := sl.pen[i]
		if dir == gui.TextDirectionRTL {
			x = tl.Size.X - sl.pen[i+1]
		}
		x0 := float32(x + g.offX)
		y0 := float32(baseline + g.offY)
		tl.Glyphs = append(tl.Glyphs, gui.GlyphQuad{
			X0: x0, Y0: y0, X1: x0 + float32(g.w), Y1: y0 + float32(g.h),
			U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
		})
	}
	return true
}

// upload pushes the atlas to the GPU if glyphs were added since the last
// upload.
func (m *Manager) upload() error {
	if m.up == nil || !m.atlas.dirty {
		return nil
	}
	if m.tex == 0 {
		tex, err := m.up.UploadAlpha(m.atlas.img)
		if err != nil {
			return err
		}
		m.tex = tex
	} else if err := m.up.UpdateAlpha(m.tex, m.atlas.img); err != nil {
		return err
	}
	m.atlas.dirty = false
	return nil
}
