package layoutdef_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/flatgui"
	"github.com/go-theft-auto/flatgui/layoutdef"
)

type nopRenderer struct{}

func (nopRenderer) Render(*gui.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32      { return 1 }
func (nopRenderer) Resize(int, int)            {}

var window = gui.Vec2i{X: 1000, Y: 1000}

func mustParse(t *testing.T, src string) *layoutdef.Document {
	t.Helper()
	doc, err := layoutdef.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{`"1.0.0"`, true},
		{`"v1.4.2"`, true},
		{`"1"`, true},
		{`"2.0.0"`, false},
		{`"v0.9.0"`, false},
		{`"one"`, false},
		{`""`, false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			src := "version: " + tt.version + "\nroot:\n  label: hi\n"
			_, err := layoutdef.Parse([]byte(src))
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, layoutdef.ErrUnsupportedVersion) {
				t.Errorf("error = %v, want ErrUnsupportedVersion", err)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := layoutdef.Parse([]byte("version: \"1.0.0\"\nroot:\n  label: hi\n  colour: red\n"))
	if err == nil {
		t.Fatal("unknown key accepted")
	}
	if !strings.Contains(err.Error(), "failed to parse layout definition") {
		t.Errorf("error = %v", err)
	}
}

const malformed = `
version: "1.0.0"
root:
  group: vertical-left
  children:
    - label: fine
    - group: diagonal
      children:
        - label: never declared
    - label: two
      button: kinds
    - spacer: [1, 2, 3]
    - label: colored
      background: "#12"
`

func TestValidateReportsPaths(t *testing.T) {
	errs := mustParse(t, malformed).Validate()
	want := []string{"root/1:", "root/2:", "root/3:", "root/4:"}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(errs[i].Error(), prefix) {
			t.Errorf("error %d = %q, want prefix %q", i, errs[i], prefix)
		}
	}
}

func TestDeclareSkipsMalformedNodes(t *testing.T) {
	doc := mustParse(t, malformed)
	var diags []gui.Diagnostic
	ui := gui.New(nopRenderer{}, gui.WithDiagnosticHandler(func(d gui.Diagnostic) {
		diags = append(diags, d)
	}))

	in := gui.NewInputState()
	for frame := 0; frame < 2; frame++ {
		if err := ui.Run(in, window, func(ctx *gui.Context) {
			doc.Declare(ctx, nil)
		}); err != nil {
			t.Fatalf("frame %d: %v", frame+1, err)
		}
		in.Reset()
	}

	if len(diags) != 8 {
		t.Fatalf("got %d diagnostics over two frames, want 8: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Kind != gui.DiagMalformedData {
			t.Errorf("diagnostic kind = %s, want malformed-data", d.Kind)
		}
	}
}

func TestDeclareBindingsAndEvents(t *testing.T) {
	doc := mustParse(t, `
version: "1.0.0"
root:
  group: vertical-left
  children:
    - slider: volume
      id: vol
      size: [110, 20]
    - button: OK
      event: ok
`)
	b := layoutdef.NewBindings()
	var events []string
	b.OnEvent = func(name string) { events = append(events, name) }

	ui := gui.New(nopRenderer{})
	in := gui.NewInputState()
	run := func() {
		t.Helper()
		if err := ui.Run(in, window, func(ctx *gui.Context) { doc.Declare(ctx, b) }); err != nil {
			t.Fatalf("Run: %v", err)
		}
		in.Reset()
	}

	// The knob is 20 wide on a 110 track; pressing at 55 centers it at 0.5.
	in.SetPointerPos(0, 55, 10)
	in.SetMouseButton(true)
	run()
	if got := *b.Float("volume"); got != 0.5 {
		t.Errorf("volume = %v, want 0.5", got)
	}
	in.SetMouseButton(false)
	run()

	in.SetPointerPos(0, 5, 25)
	in.SetMouseButton(true)
	run()
	in.SetMouseButton(false)
	run()

	if len(events) != 2 || events[0] != "vol" || events[1] != "ok" {
		t.Errorf("events = %v, want [vol ok]", events)
	}
}

func TestBindingsAreStable(t *testing.T) {
	b := layoutdef.NewBindings()
	if b.Float("x") != b.Float("x") || b.Bool("x") != b.Bool("x") || b.Text("x") != b.Text("x") {
		t.Error("bindings return different pointers for one key")
	}
	*b.Text("name") = "abc"
	if *b.Text("name") != "abc" {
		t.Error("text binding lost its value")
	}
}
