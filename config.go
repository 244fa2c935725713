package gui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds engine settings. It can be loaded from YAML:
//
//	virtual_resolution: 1000
//	drag_threshold: 8
//	max_diagnostics_per_frame: 10
//	state_retain_frames: 2
//	style: gta
//	colors:
//	  button: "#283c50"
//	  focus: "#00c8ffff"
//	verbose: false
type Config struct {
	// VirtualResolution is the number of virtual units along the window's
	// smaller dimension.
	VirtualResolution float32 `yaml:"virtual_resolution"`
	// DragThreshold is the pointer travel, in virtual units, past which a
	// press becomes a drag.
	DragThreshold float32 `yaml:"drag_threshold"`
	// MaxDiagnosticsPerFrame caps diagnostic messages reported per frame.
	MaxDiagnosticsPerFrame int `yaml:"max_diagnostics_per_frame"`
	// StateRetainFrames is how many frames an untouched Store entry survives.
	StateRetainFrames uint64 `yaml:"state_retain_frames"`
	// Style selects a built-in style: "default" or "gta".
	Style string `yaml:"style,omitempty"`
	// Colors overrides colors of the selected style by name, see
	// Style.WithColors.
	Colors map[string]string `yaml:"colors,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		VirtualResolution:      1000,
		DragThreshold:          8,
		MaxDiagnosticsPerFrame: 10,
		StateRetainFrames:      2,
		Style:                  "default",
	}
}

// ParseConfig parses YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse gui config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read gui config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.VirtualResolution <= 0:
		return fmt.Errorf("gui config: virtual_resolution must be positive, got %v", c.VirtualResolution)
	case c.DragThreshold < 0:
		return fmt.Errorf("gui config: drag_threshold must not be negative, got %v", c.DragThreshold)
	case c.MaxDiagnosticsPerFrame < 0:
		return fmt.Errorf("gui config: max_diagnostics_per_frame must not be negative, got %d", c.MaxDiagnosticsPerFrame)
	}
	if _, err := c.style(); err != nil {
		return fmt.Errorf("gui config: %w", err)
	}
	return nil
}

// style returns the selected style with Colors applied.
func (c Config) style() (Style, error) {
	base, ok := styleByName(c.Style)
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q", c.Style)
	}
	return base.WithColors(c.Colors)
}

func styleByName(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultStyle(), true
	case "gta":
		return GTAStyle(), true
	}
	return Style{}, false
}
