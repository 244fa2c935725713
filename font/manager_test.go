package font

import (
	"image"
	"testing"

	"github.com/go-theft-auto/flatgui"
)

type fakeUploader struct {
	uploads, updates int
}

func (f *fakeUploader) UploadAlpha(img *image.Alpha) (uint32, error) {
	f.uploads++
	return 7, nil
}

func (f *fakeUploader) UpdateAlpha(tex uint32, img *image.Alpha) error {
	f.updates++
	return nil
}

func basicStyle() gui.TextStyle {
	return gui.TextStyle{Fonts: []string{Basic}, Size: 20, LineHeightScale: 1, KerningScale: 1}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLayoutBasicFont(t *testing.T) {
	m := NewManager(nil)
	tl, ok := m.LayoutText("abc", basicStyle())
	if !ok {
		t.Fatal("LayoutText failed")
	}
	if tl.Size != (gui.Vec2i{X: 21, Y: 13}) {
		t.Errorf("size = %v, want {21 13}", tl.Size)
	}
	if tl.LineHeight != 13 {
		t.Errorf("line height = %d, want 13", tl.LineHeight)
	}
	if want := []int{0, 7, 14, 21}; !equalInts(tl.Carets, want) {
		t.Errorf("carets = %v, want %v", tl.Carets, want)
	}
	if len(tl.Glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(tl.Glyphs))
	}
	if g := tl.Glyphs[0]; g.X0 != 0 || g.Y0 != 0 {
		t.Errorf("first glyph at (%v, %v), want (0, 0)", g.X0, g.Y0)
	}
	if g := tl.Glyphs[1]; g.X0 != 7 {
		t.Errorf("second glyph x = %v, want 7", g.X0)
	}
	if tl.Direction != gui.TextDirectionLTR {
		t.Errorf("direction = %s, want ltr", tl.Direction)
	}
}

func TestLayoutWrapAndLineHeight(t *testing.T) {
	m := NewManager(nil)
	tests := []struct {
		name       string
		text       string
		maxWidth   int
		lineScale  float32
		size       gui.Vec2i
		lineHeight int
	}{
		{"single line", "hello hello", 0, 1, gui.Vec2i{X: 77, Y: 13}, 13},
		{"wrapped", "hello hello hello", 40, 1, gui.Vec2i{X: 35, Y: 39}, 13},
		{"two words per line", "hello hello hello", 80, 1, gui.Vec2i{X: 77, Y: 26}, 13},
		{"newline doubled height", "a\nb", 0, 2, gui.Vec2i{X: 7, Y: 52}, 26},
		{"empty", "", 0, 1, gui.Vec2i{X: 0, Y: 13}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := basicStyle()
			st.MaxWidth = tt.maxWidth
			st.LineHeightScale = tt.lineScale
			tl, ok := m.LayoutText(tt.text, st)
			if !ok {
				t.Fatal("LayoutText failed")
			}
			if tl.Size != tt.size || tl.LineHeight != tt.lineHeight {
				t.Errorf("size %v line height %d, want %v %d", tl.Size, tl.LineHeight, tt.size, tt.lineHeight)
			}
		})
	}
}

func TestLayoutFontList(t *testing.T) {
	m := NewManager(nil)
	if _, ok := m.LayoutText("x", gui.TextStyle{Fonts: []string{"nope"}}); ok {
		t.Error("layout with only unknown fonts succeeded")
	}
	if _, ok := m.LayoutText("x", gui.TextStyle{Fonts: []string{"nope", Basic}}); !ok {
		t.Error("unknown font did not fall through to basic")
	}
	if _, ok := m.LayoutText("x", gui.TextStyle{}); !ok {
		t.Error("layout with default fonts failed")
	}
	if !m.HasFont(GoRegular) || !m.HasFont(Basic) || m.HasFont("nope") {
		t.Error("HasFont does not match the built-in fonts")
	}
}

func TestPickFallsBackPerRune(t *testing.T) {
	m := NewManager(nil)
	basic, goreg := m.sources[Basic], m.sources[GoRegular]
	list := []*source{basic, goreg}

	var missing rune
	for r := rune(0x370); r < 0x2000; r++ {
		if goreg.has(r) && !basic.has(r) {
			missing = r
			break
		}
	}
	if missing == 0 {
		t.Skip("no rune found that only the Go font has")
	}
	if got := pick(list, 'a'); got != basic {
		t.Errorf("pick('a') = %s, want basic", got.name)
	}
	if got := pick(list, missing); got != goreg {
		t.Errorf("pick(%U) = %s, want goregular", missing, got.name)
	}
	if got := pick(list, '\U0010FFFD'); got != basic {
		t.Errorf("pick of unknown rune = %s, want the first font", got.name)
	}
}

func TestLayoutRightToLeft(t *testing.T) {
	m := NewManager(nil)
	st := basicStyle()
	st.Direction = gui.TextDirectionRTL
	tl, ok := m.LayoutText("abc", st)
	if !ok {
		t.Fatal("LayoutText failed")
	}
	if want := []int{21, 14, 7, 0}; !equalInts(tl.Carets, want) {
		t.Errorf("carets = %v, want %v", tl.Carets, want)
	}
	if g := tl.Glyphs[0]; g.X0 != 14 {
		t.Errorf("first rune x = %v, want 14", g.X0)
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		text, locale string
		explicit     gui.TextDirection
		want         gui.TextDirection
	}{
		{"abc", "", gui.TextDirectionAuto, gui.TextDirectionLTR},
		{"שלום", "", gui.TextDirectionAuto, gui.TextDirectionRTL},
		{"مرحبا", "en", gui.TextDirectionAuto, gui.TextDirectionRTL},
		{"123", "ar", gui.TextDirectionAuto, gui.TextDirectionRTL},
		{"123", "he-IL", gui.TextDirectionAuto, gui.TextDirectionRTL},
		{"123", "en-US", gui.TextDirectionAuto, gui.TextDirectionLTR},
		{"123", "not a locale!", gui.TextDirectionAuto, gui.TextDirectionLTR},
		{"abc", "ar", gui.TextDirectionAuto, gui.TextDirectionLTR},
		{"abc", "", gui.TextDirectionRTL, gui.TextDirectionRTL},
	}
	for _, tt := range tests {
		st := gui.TextStyle{Locale: tt.locale, Direction: tt.explicit}
		if got := resolveDirection(tt.text, st); got != tt.want {
			t.Errorf("resolveDirection(%q, %q, %s) = %s, want %s", tt.text, tt.locale, tt.explicit, got, tt.want)
		}
	}
}

func TestAtlasUploadsOnlyNewGlyphs(t *testing.T) {
	up := &fakeUploader{}
	m := NewManager(up)

	tl, _ := m.LayoutText("ab", basicStyle())
	if up.uploads != 1 || up.updates != 0 {
		t.Fatalf("after first layout: %d uploads %d updates, want 1 0", up.uploads, up.updates)
	}
	if tl.TextureID != 7 || m.TextureID() != 7 {
		t.Errorf("texture id = %d, want 7", tl.TextureID)
	}

	m.LayoutText("ba", basicStyle())
	if up.uploads != 1 || up.updates != 0 {
		t.Errorf("cached glyphs caused an upload: %d uploads %d updates", up.uploads, up.updates)
	}

	m.LayoutText("abc", basicStyle())
	if up.updates != 1 {
		t.Errorf("new glyph: %d updates, want 1", up.updates)
	}
}

func TestAtlasFullKeepsLayout(t *testing.T) {
	// 32x32 holds two rows of four 6x13 basic glyphs.
	m := NewManager(nil, WithAtlasSize(32))
	tl, ok := m.LayoutText("abcdefghij", basicStyle())
	if !ok {
		t.Fatal("LayoutText failed")
	}
	if tl.Size.X != 70 {
		t.Errorf("width = %d, want 70", tl.Size.X)
	}
	if len(tl.Glyphs) != 8 {
		t.Errorf("got %d glyphs, want the 8 that fit", len(tl.Glyphs))
	}
	if len(tl.Carets) != 11 {
		t.Errorf("got %d carets, want 11", len(tl.Carets))
	}
}

func TestGoRegularSizing(t *testing.T) {
	m := NewManager(nil)
	st := gui.TextStyle{Fonts: []string{GoRegular}, Size: 16, LineHeightScale: 1, KerningScale: 1}
	tl, ok := m.LayoutText("WWW iii", st)
	if !ok {
		t.Fatal("LayoutText failed")
	}
	if d := tl.LineHeight - 16; d < -1 || d > 1 {
		t.Errorf("line height = %d, want about 16", tl.LineHeight)
	}
	wide, _ := m.LayoutText("WWW", st)
	narrow, _ := m.LayoutText("iii", st)
	if wide.Size.X <= narrow.Size.X {
		t.Errorf("WWW (%d) not wider than iii (%d)", wide.Size.X, narrow.Size.X)
	}
	if tl.Carets[len(tl.Carets)-1] != tl.Size.X {
		t.Errorf("last caret %d != width %d", tl.Carets[len(tl.Carets)-1], tl.Size.X)
	}
}
