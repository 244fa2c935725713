package gui

import (
	"strings"
	"unicode/utf8"
)

// FontProvider lays out text for the GUI. The GUI package does not depend
// on any concrete font implementation; applications inject one (see the
// font package) with WithFontProvider.
//
// Example usage:
//
//	fonts := font.NewManager(renderer)
//	fonts.LoadTTF("regular", goregular.TTF)
//	ui := gui.New(renderer, gui.WithFontProvider(fonts))
//
// Without a provider, text is drawn with the renderer's built-in 8x13
// bitmap font.
type FontProvider interface {
	// LayoutText shapes text with the given style. Glyph quads are relative
	// to the top-left of the text block, in physical pixels. It returns
	// false when none of the requested fonts is available.
	LayoutText(text string, style TextStyle) (*TextLayout, bool)

	// HasFont reports whether a font with this name is loaded.
	HasFont(name string) bool
}

// TextDirection selects the writing direction.
type TextDirection uint8

const (
	TextDirectionAuto TextDirection = iota // From the text and locale
	TextDirectionLTR
	TextDirectionRTL
)

func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return "auto"
	}
}

// TextStyle is the text state in effect for a label or edit box.
type TextStyle struct {
	// Fonts is the fallback list; the first font with a glyph wins per rune.
	Fonts []string
	// Size is the line height in physical pixels.
	Size int
	// Locale is a BCP 47 tag such as "en-US" or "ar".
	Locale    string
	Direction TextDirection
	// LineHeightScale multiplies the distance between lines (1 = font default).
	LineHeightScale float32
	// KerningScale multiplies kerning adjustments (1 = font default).
	KerningScale float32
	// MaxWidth wraps text at word boundaries when positive, in physical pixels.
	MaxWidth int
}

// TextLayout is the result of laying out text.
type TextLayout struct {
	Size       Vec2i
	Glyphs     []GlyphQuad
	TextureID  uint32
	LineHeight int
	Direction  TextDirection
	// Carets holds the x offset of every rune boundary of the first line,
	// len(runes)+1 entries. Used for cursor placement in edit boxes.
	Carets []int
}

// defaultTextStyle is the style at the start of each pass.
func defaultTextStyle(fonts []string) TextStyle {
	return TextStyle{
		Fonts:           fonts,
		LineHeightScale: 1,
		KerningScale:    1,
	}
}

// Cell size of the renderer's built-in font atlas, in texels. The atlas is
// a 16x6 grid covering ASCII 32-127.
const (
	bitmapCellW = 8
	bitmapCellH = 13
)

// layoutBitmapText lays out text with the built-in monospace bitmap font
// scaled so that a cell is size pixels tall. Lines break at '\n' and, when
// maxWidth is positive, at word boundaries.
func layoutBitmapText(text string, size, maxWidth int, texID uint32) *TextLayout {
	if size <= 0 {
		size = bitmapCellH
	}
	cw := max(size*bitmapCellW/bitmapCellH, 1)
	measure := func(s string) int { return utf8.RuneCountInString(s) * cw }
	lines := WrapLines(text, maxWidth, measure)

	tl := &TextLayout{
		TextureID:  texID,
		LineHeight: size,
		Direction:  TextDirectionLTR,
	}
	for li, line := range lines {
		y := float32(li * size)
		runes := []rune(line)
		if li == 0 {
			tl.Carets = make([]int, len(runes)+1)
			for i := range tl.Carets {
				tl.Carets[i] = i * cw
			}
		}
		tl.Size.X = max(tl.Size.X, len(runes)*cw)
		for i, r := range runes {
			char := unicodeFallback(r)
			if char < 32 || char > 127 {
				char = '?'
			}
			idx := int(char - 32)
			col := float32(idx % 16)
			row := float32(idx / 16)
			x := float32(i * cw)
			tl.Glyphs = append(tl.Glyphs, GlyphQuad{
				X0: x, Y0: y, X1: x + float32(cw), Y1: y + float32(size),
				U0: col / 16, V0: row / 6,
				U1: (col + 1) / 16, V1: (row + 1) / 6,
			})
		}
	}
	tl.Size.Y = max(len(lines), 1) * size
	if tl.Carets == nil {
		tl.Carets = []int{0}
	}
	return tl
}

// WrapLines splits text at newlines and wraps each paragraph at word
// boundaries so that no line is wider than maxWidth, unless a single word
// is. maxWidth <= 0 disables wrapping. Font providers use it with their own
// measure function.
func WrapLines(text string, maxWidth int, measure func(string) int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if maxWidth <= 0 || measure(para) <= maxWidth {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			test := word
			if current != "" {
				test = current + " " + word
			}
			if measure(test) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = test
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
