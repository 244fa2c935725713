package font

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// source is one loaded font: either a scalable OpenType font or a fixed
// size bitmap face.
type source struct {
	name  string
	otf   *opentype.Font
	basic *basicfont.Face
	buf   sfnt.Buffer
	faces map[int]font.Face // by requested line height
}

func newOpenTypeSource(name string, data []byte) (*source, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", name, err)
	}
	return &source{name: name, otf: f, faces: make(map[int]font.Face)}, nil
}

func newBasicSource(name string, face *basicfont.Face) *source {
	return &source{name: name, basic: face, faces: make(map[int]font.Face)}
}

// has reports whether the font has a real glyph for r, not a fallback box.
func (s *source) has(r rune) bool {
	if s.basic != nil {
		for _, rng := range s.basic.Ranges {
			if r >= rng.Low && r < rng.High {
				return true
			}
		}
		return false
	}
	idx, err := s.otf.GlyphIndex(&s.buf, r)
	return err == nil && idx != 0
}

// face returns a face whose line height is as close to size pixels as the
// font allows. Bitmap faces ignore size.
func (s *source) face(size int) (font.Face, error) {
	if s.basic != nil {
		return s.basic, nil
	}
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := s.openFace(float64(size))
	if err != nil {
		return nil, err
	}
	// Faces are sized by em; rescale so the line height matches.
	if h := float64(f.Metrics().Height) / 64; h > 0 && math.Abs(h-float64(size)) >= 0.5 {
		_ = f.Close()
		if f, err = s.openFace(float64(size) * float64(size) / h); err != nil {
			return nil, err
		}
	}
	s.faces[size] = f
	return f, nil
}

func (s *source) openFace(em float64) (font.Face, error) {
	f, err := opentype.NewFace(s.otf, &opentype.FaceOptions{
		Size:    em,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q at %.1fpx: %w", s.name, em, err)
	}
	return f, nil
}

func (s *source) close() {
	for size, f := range s.faces {
		_ = f.Close()
		delete(s.faces, size)
	}
}
