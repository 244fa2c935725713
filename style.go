package gui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Spacing constants for consistent layout, in virtual units.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
)

// Style defines the colors and metrics used by the built-in widgets.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Panels (ColorBackground callers usually pick PanelColor)
	PanelColor       uint32
	PanelBorderColor uint32

	// Buttons
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Edit boxes
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	SelectionColor      uint32
	CursorColor         uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Slider
	SliderTrackColor  uint32 // Background track
	SliderFillColor   uint32 // Filled portion
	SliderGrabColor   uint32 // Knob
	SliderGrabHovered uint32 // Knob when hovered
	SliderGrabActive  uint32 // Knob when dragging

	// Checkbox
	CheckMarkColor uint32

	// Focus indicator for controller navigation
	FocusColor uint32

	// Toast backgrounds by kind
	ToastInfoColor    uint32
	ToastSuccessColor uint32
	ToastWarningColor uint32
	ToastErrorColor   uint32

	// Fonts tried in order for text; empty uses the provider's default.
	Fonts []string

	// Metrics in virtual units
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:       RGBA(20, 20, 20, 200),
		PanelBorderColor: RGBA(80, 80, 80, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		SelectionColor:      RGBA(50, 100, 150, 160),
		CursorColor:         ColorWhite,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		CheckMarkColor: RGBA(50, 100, 150, 255),
		FocusColor:     RGBA(0, 255, 255, 255),

		ToastInfoColor:    RGBA(50, 70, 100, 255),
		ToastSuccessColor: RGBA(40, 110, 60, 255),
		ToastWarningColor: RGBA(150, 110, 20, 255),
		ToastErrorColor:   RGBA(140, 40, 40, 255),

		ButtonPadding: 6,
		InputPadding:  4,
		BorderSize:    1,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		PanelColor:       RGBA(0, 0, 0, 220),
		PanelBorderColor: RGBA(100, 100, 100, 255),

		ButtonColor:        RGBA(40, 40, 40, 255),
		ButtonHoveredColor: RGBA(60, 80, 100, 255),
		ButtonActiveColor:  RGBA(0, 150, 200, 255), // Cyan when active

		InputBgColor:        RGBA(20, 20, 20, 255),
		InputFocusedBgColor: RGBA(30, 40, 50, 255),
		InputBorderColor:    RGBA(0, 150, 200, 255),
		SelectionColor:      RGBA(0, 120, 180, 160),
		CursorColor:         RGBA(255, 200, 0, 255), // GTA yellow

		ScrollbarBgColor:     RGBA(20, 20, 20, 255),
		ScrollbarGrabColor:   RGBA(0, 100, 150, 255),
		ScrollbarGrabHovered: RGBA(0, 150, 200, 255),

		SliderTrackColor:  RGBA(30, 30, 30, 255),
		SliderFillColor:   RGBA(0, 120, 180, 255),
		SliderGrabColor:   RGBA(0, 150, 200, 255),
		SliderGrabHovered: RGBA(0, 180, 230, 255),
		SliderGrabActive:  RGBA(0, 200, 255, 255),

		CheckMarkColor: RGBA(255, 200, 0, 255),
		FocusColor:     RGBA(0, 200, 255, 255),

		ToastInfoColor:    RGBA(0, 90, 130, 255),
		ToastSuccessColor: RGBA(30, 120, 50, 255),
		ToastWarningColor: RGBA(200, 150, 0, 255),
		ToastErrorColor:   RGBA(160, 30, 30, 255),

		ButtonPadding: 8,
		InputPadding:  6,
		BorderSize:    1,
	}
}

// colorFields maps the names used by Config.Colors to s's color fields.
func (s *Style) colorFields() map[string]*uint32 {
	return map[string]*uint32{
		"text":                   &s.TextColor,
		"text_disabled":          &s.TextDisabledColor,
		"panel":                  &s.PanelColor,
		"panel_border":           &s.PanelBorderColor,
		"button":                 &s.ButtonColor,
		"button_hovered":         &s.ButtonHoveredColor,
		"button_active":          &s.ButtonActiveColor,
		"input_bg":               &s.InputBgColor,
		"input_focused_bg":       &s.InputFocusedBgColor,
		"input_border":           &s.InputBorderColor,
		"selection":              &s.SelectionColor,
		"cursor":                 &s.CursorColor,
		"scrollbar_bg":           &s.ScrollbarBgColor,
		"scrollbar_grab":         &s.ScrollbarGrabColor,
		"scrollbar_grab_hovered": &s.ScrollbarGrabHovered,
		"slider_track":           &s.SliderTrackColor,
		"slider_fill":            &s.SliderFillColor,
		"slider_grab":            &s.SliderGrabColor,
		"slider_grab_hovered":    &s.SliderGrabHovered,
		"slider_grab_active":     &s.SliderGrabActive,
		"check_mark":             &s.CheckMarkColor,
		"focus":                  &s.FocusColor,
		"toast_info":             &s.ToastInfoColor,
		"toast_success":          &s.ToastSuccessColor,
		"toast_warning":          &s.ToastWarningColor,
		"toast_error":            &s.ToastErrorColor,
	}
}

// WithColors returns s with the named colors replaced. Values are parsed
// with ParseColor.
func (s Style) WithColors(colors map[string]string) (Style, error) {
	fields := s.colorFields()
	for _, name := range slices.Sorted(maps.Keys(colors)) {
		field, ok := fields[name]
		if !ok {
			return Style{}, fmt.Errorf("unknown style color %q", name)
		}
		c, err := ParseColor(colors[name])
		if err != nil {
			return Style{}, fmt.Errorf("style color %s: %w", name, err)
		}
		*field = c
	}
	return s, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into a packed color. The
// leading '#' is optional; alpha defaults to opaque.
func ParseColor(hex string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
