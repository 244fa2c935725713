package gui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, c Config)
	}{
		{
			name: "empty uses defaults",
			yaml: "",
			check: func(t *testing.T, c Config) {
				if !reflect.DeepEqual(c, DefaultConfig()) {
					t.Errorf("config = %+v, want defaults", c)
				}
			},
		},
		{
			name: "overrides",
			yaml: "virtual_resolution: 720\ndrag_threshold: 4\nstyle: gta\n",
			check: func(t *testing.T, c Config) {
				if c.VirtualResolution != 720 || c.DragThreshold != 4 || c.Style != "gta" {
					t.Errorf("config = %+v", c)
				}
				if c.MaxDiagnosticsPerFrame != 10 {
					t.Errorf("unset field lost its default: %d", c.MaxDiagnosticsPerFrame)
				}
			},
		},
		{name: "zero resolution", yaml: "virtual_resolution: 0\n", wantErr: "virtual_resolution"},
		{name: "negative threshold", yaml: "drag_threshold: -1\n", wantErr: "drag_threshold"},
		{name: "unknown style", yaml: "style: neon\n", wantErr: "unknown style"},
		{
			name: "color overrides",
			yaml: "style: gta\ncolors:\n  button: \"#102030\"\n  focus: \"#ff000080\"\n",
			check: func(t *testing.T, c Config) {
				s, err := c.style()
				if err != nil {
					t.Fatal(err)
				}
				if s.ButtonColor != RGBA(0x10, 0x20, 0x30, 0xFF) || s.FocusColor != RGBA(0xFF, 0, 0, 0x80) {
					t.Errorf("colors not applied: button %08x focus %08x", s.ButtonColor, s.FocusColor)
				}
				if s.CursorColor != GTAStyle().CursorColor {
					t.Error("unlisted color changed")
				}
			},
		},
		{name: "unknown color", yaml: "colors:\n  buton: \"#000000\"\n", wantErr: "buton"},
		{name: "bad color", yaml: "colors:\n  button: \"#12345\"\n", wantErr: "button"},
		{name: "bad yaml", yaml: "virtual_resolution: [\n", wantErr: "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseConfig() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || !reflect.DeepEqual(c, DefaultConfig()) {
		t.Errorf("LoadConfig(missing) = %+v, %v; want defaults", c, err)
	}

	path := filepath.Join(dir, "gui.yaml")
	if err := os.WriteFile(path, []byte("state_retain_frames: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.StateRetainFrames != 5 {
		t.Errorf("StateRetainFrames = %d, want 5", c.StateRetainFrames)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ff8000", RGBA(0xFF, 0x80, 0x00, 0xFF), false},
		{"ff800040", RGBA(0xFF, 0x80, 0x00, 0x40), false},
		{" #FFFFFF ", ColorWhite, false},
		{"#fff", 0, true},
		{"#gg0000", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColor(%q) = %08x, %v; want %08x, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
