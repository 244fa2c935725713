// Package layoutdef declares GUI trees from YAML definitions.
//
// A definition is a versioned document with one root node:
//
//	version: 1.0.0
//	name: settings
//	root:
//	  group: vertical-center
//	  spacing: 8
//	  background: "#202020e0"
//	  children:
//	    - label: Settings
//	      font_size: 32
//	    - checkbox: Sound
//	      bind: sound
//	    - slider: volume
//	      size: [300, 20]
//	    - button: Close
//	      event: close
//
// Each node names its kind by setting exactly one of the kind keys (group,
// scroll, label, text, button, image_button, checkbox, slider, edit, image,
// spacer). Nodes that fail validation are skipped at declare time and
// reported to the GUI as malformed-data diagnostics; the rest of the tree
// is still declared.
package layoutdef

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/flatgui"
)

// SupportedMajor is the document major version this package reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for documents with a missing, invalid
// or unsupported version.
var ErrUnsupportedVersion = errors.New("unsupported layout definition version")

// Document is a parsed layout definition.
type Document struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
	Root    Node   `yaml:"root"`
}

// Position places a top-level group on the screen.
type Position struct {
	X      string    `yaml:"x"`
	Y      string    `yaml:"y"`
	Offset []float32 `yaml:"offset"`
}

// Node is one group or element. Sizes are in virtual units.
type Node struct {
	// Kind keys; exactly one must be set.
	Group       string    `yaml:"group"`
	Scroll      string    `yaml:"scroll"`
	Label       string    `yaml:"label"`
	Text        string    `yaml:"text"`
	Button      string    `yaml:"button"`
	ImageButton string    `yaml:"image_button"`
	Checkbox    string    `yaml:"checkbox"`
	Slider      string    `yaml:"slider"`
	Edit        string    `yaml:"edit"`
	Image       string    `yaml:"image"`
	Spacer      []float32 `yaml:"spacer"`

	ID       string    `yaml:"id"`
	Bind     string    `yaml:"bind"`
	Event    string    `yaml:"event"`
	FontSize float32   `yaml:"font_size"`
	Size     []float32 `yaml:"size"`
	Height   float32   `yaml:"height"`
	Width    float32   `yaml:"width"`
	Disabled bool      `yaml:"disabled"`

	// Group and scroll modifiers.
	Spacing         float32   `yaml:"spacing"`
	Margin          []float32 `yaml:"margin"`
	Background      string    `yaml:"background"`
	BackgroundImage string    `yaml:"background_image"`
	NinePatch       []float32 `yaml:"nine_patch"`
	Position        *Position `yaml:"position"`
	Modal           bool      `yaml:"modal"`
	DefaultFocus    bool      `yaml:"default_focus"`
	Children        []Node    `yaml:"children"`

	// Slider and edit settings.
	Min         *float32 `yaml:"min"`
	Max         *float32 `yaml:"max"`
	Placeholder string   `yaml:"placeholder"`
	MaxLength   int      `yaml:"max_length"`
}

// Parse decodes and version-checks a definition. Unknown keys are errors;
// problems inside individual nodes are not, see Validate.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout definition: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses a definition file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout definition: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func checkVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: version is missing", ErrUnsupportedVersion)
	}
	sv := v
	if !strings.HasPrefix(sv, "v") {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(sv); major != SupportedMajor {
		return fmt.Errorf("%w: major %s, want %s", ErrUnsupportedVersion, major, SupportedMajor)
	}
	return nil
}

// Validate returns every node problem in the document, with node paths.
func (d *Document) Validate() []error {
	var errs []error
	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		if err := n.check(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return
		}
		for i := range n.Children {
			walk(&n.Children[i], fmt.Sprintf("%s/%d", path, i))
		}
	}
	walk(&d.Root, "root")
	return errs
}

type nodeKind int

const (
	kindInvalid nodeKind = iota
	kindGroup
	kindScroll
	kindLabel
	kindText
	kindButton
	kindImageButton
	kindCheckbox
	kindSlider
	kindEdit
	kindImage
	kindSpacer
)

func (n *Node) kinds() []nodeKind {
	var ks []nodeKind
	add := func(set bool, k nodeKind) {
		if set {
			ks = append(ks, k)
		}
	}
	add(n.Group != "", kindGroup)
	add(n.Scroll != "", kindScroll)
	add(n.Label != "", kindLabel)
	add(n.Text != "", kindText)
	add(n.Button != "", kindButton)
	add(n.ImageButton != "", kindImageButton)
	add(n.Checkbox != "", kindCheckbox)
	add(n.Slider != "", kindSlider)
	add(n.Edit != "", kindEdit)
	add(n.Image != "", kindImage)
	add(n.Spacer != nil, kindSpacer)
	return ks
}

func (n *Node) kind() nodeKind {
	if ks := n.kinds(); len(ks) == 1 {
		return ks[0]
	}
	return kindInvalid
}

// check validates the node's own fields, not its children.
func (n *Node) check() error {
	ks := n.kinds()
	switch {
	case len(ks) == 0:
		return errors.New("node has no kind")
	case len(ks) > 1:
		return errors.New("node sets more than one kind")
	}
	k := ks[0]
	if len(n.Children) > 0 && k != kindGroup && k != kindScroll {
		return errors.New("only group and scroll nodes have children")
	}
	switch k {
	case kindGroup:
		if _, ok := gui.ParseLayout(n.Group); !ok {
			return fmt.Errorf("unknown layout %q", n.Group)
		}
	case kindScroll, kindSlider:
		if len(n.Size) != 2 {
			return errors.New("size must be [width, height]")
		}
	case kindSpacer:
		if len(n.Spacer) != 2 {
			return errors.New("spacer must be [width, height]")
		}
	}
	if n.Min != nil && n.Max != nil && *n.Min >= *n.Max {
		return fmt.Errorf("min %v is not below max %v", *n.Min, *n.Max)
	}
	if n.Size != nil && len(n.Size) != 2 {
		return errors.New("size must be [width, height]")
	}
	if _, err := parseMargin(n.Margin); err != nil {
		return err
	}
	if _, err := parseColor(n.Background); err != nil {
		return err
	}
	if n.NinePatch != nil && len(n.NinePatch) != 4 {
		return errors.New("nine_patch must be [left, top, right, bottom]")
	}
	if p := n.Position; p != nil {
		if _, ok := gui.ParseAlignment(p.X); !ok {
			return fmt.Errorf("unknown alignment %q", p.X)
		}
		if _, ok := gui.ParseAlignment(p.Y); !ok {
			return fmt.Errorf("unknown alignment %q", p.Y)
		}
		if p.Offset != nil && len(p.Offset) != 2 {
			return errors.New("position offset must be [x, y]")
		}
	}
	return nil
}

// parseMargin accepts one value (all sides), two (vertical, horizontal)
// or four (left, top, right, bottom).
func parseMargin(v []float32) (gui.Margin, error) {
	switch len(v) {
	case 0:
		return gui.Margin{}, nil
	case 1:
		return gui.UniformMargin(v[0]), nil
	case 2:
		return gui.Margin{Left: v[1], Top: v[0], Right: v[1], Bottom: v[0]}, nil
	case 4:
		return gui.Margin{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
	}
	return gui.Margin{}, fmt.Errorf("margin has %d values, want 1, 2 or 4", len(v))
}

// parseColor parses "#rrggbb" or "#rrggbbaa". The empty string is no color.
func parseColor(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("color %q is not #rrggbb or #rrggbbaa", s)
	}
	var c [4]uint8
	c[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		var b uint8
		if _, err := fmt.Sscanf(hex[2*i:2*i+2], "%02x", &b); err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		c[i] = b
	}
	return gui.RGBA(c[0], c[1], c[2], c[3]), nil
}
