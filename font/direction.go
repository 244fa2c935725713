package font

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/go-theft-auto/flatgui"
)

// rtlScripts are the ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Syrc": true, "Thaa": true,
	"Nkoo": true, "Adlm": true, "Rohg": true, "Samr": true, "Mand": true,
}

// localeDirection returns the writing direction of a BCP 47 locale, or
// auto when the locale is empty or does not parse.
func localeDirection(locale string) gui.TextDirection {
	if locale == "" {
		return gui.TextDirectionAuto
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return gui.TextDirectionAuto
	}
	script, conf := tag.Script()
	if conf == language.No {
		return gui.TextDirectionAuto
	}
	if rtlScripts[script.String()] {
		return gui.TextDirectionRTL
	}
	return gui.TextDirectionLTR
}

// firstStrong returns the direction of the first strongly directional
// rune in text.
func firstStrong(text string) gui.TextDirection {
	for _, r := range text {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return gui.TextDirectionLTR
		case bidi.R, bidi.AL:
			return gui.TextDirectionRTL
		}
	}
	return gui.TextDirectionAuto
}

// resolveDirection picks the paragraph direction: an explicit style
// direction wins, then the text's first strong character, then the locale.
// Text with no strong characters in an unknown locale is left to right.
func resolveDirection(text string, style gui.TextStyle) gui.TextDirection {
	if style.Direction != gui.TextDirectionAuto {
		return style.Direction
	}
	if d := firstStrong(text); d != gui.TextDirectionAuto {
		return d
	}
	if d := localeDirection(style.Locale); d != gui.TextDirectionAuto {
		return d
	}
	return gui.TextDirectionLTR
}
