// Command gen renders widget screenshots into doc/imgs/. Each layout
// definition in doc/layouts/ becomes one JPEG named after the file, plus a
// few shots declared in code for widgets that need live state.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flatgui"
	"github.com/go-theft-auto/flatgui/backend/opengl"
	"github.com/go-theft-auto/flatgui/font"
	"github.com/go-theft-auto/flatgui/layoutdef"
)

const (
	maxWidth  = 800
	maxHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	layoutDir := flag.String("layouts", filepath.Join("doc", "layouts"), "directory of layout definitions")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*layoutDir, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // declaration
	frames int                    // frames to render (0 = default 2)
}

func run(layoutDir, outDir string) error {
	shots, err := layoutScreenshots(layoutDir)
	if err != nil {
		return err
	}
	shots = append(shots, codeScreenshots()...)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(maxWidth, maxHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(maxWidth, maxHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts := font.NewManager(renderer)
	defer fonts.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots {
		if err := capture(renderer, fonts, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// layoutScreenshots turns every *.yaml file in dir into a screenshot. The
// document's name, if set, overrides the file name.
func layoutScreenshots(dir string) ([]screenshot, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	var shots []screenshot
	for _, path := range paths {
		doc, err := layoutdef.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if problems := doc.Validate(); len(problems) > 0 {
			return nil, fmt.Errorf("%s: %w", path, problems[0])
		}
		name := doc.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		bindings := layoutdef.NewBindings()
		shots = append(shots, screenshot{
			name: name, width: 400, height: 300,
			draw: func(ctx *gui.Context) { doc.Declare(ctx, bindings) },
		})
	}
	return shots, nil
}

// codeScreenshots covers widgets whose look depends on state a definition
// cannot set, such as a focused edit box.
func codeScreenshots() []screenshot {
	var (
		checked = true
		volume  = float32(0.65)
		name    = "Hello, world!"
		offset  gui.Vec2
	)
	return []screenshot{
		{
			name: "widgets", width: 400, height: 220,
			draw: func(ctx *gui.Context) {
				ctx.Group(gui.LayoutVerticalLeft, 8, "widgets")(func() {
					ctx.SetMargin(gui.UniformMargin(12))
					ctx.Label("Plain label", 20)
					ctx.Checkbox("Enabled feature", 20, &checked, "check")
					ctx.Slider(gui.Vec2{X: 300, Y: 20}, &volume, "volume")
					ctx.Edit(20, gui.Vec2{X: 300, Y: 30}, "name", &name)
					ctx.TextButton("Standard Button", 20, "button")
				})
			},
		},
		{
			name: "scroll", width: 300, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.Scrollable(gui.Vec2{X: 280, Y: 180}, &offset, "scroll")(func() {
					for i := range 12 {
						ctx.Label(fmt.Sprintf("Row %d", i+1), 20)
					}
				})
			},
		},
	}
}

func capture(renderer *opengl.Renderer, fonts *font.Manager, s screenshot, outDir string) error {
	// Only update the renderer projection. GLFW resizes asynchronously, so
	// the hidden window stays at maxWidth x maxHeight.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so no state leaks between captures. The
	// virtual resolution matches the viewport so sizes read as pixels.
	cfg := gui.DefaultConfig()
	cfg.VirtualResolution = float32(min(s.width, s.height))
	cfg.Style = "gta"
	ui := gui.New(renderer, gui.WithConfig(cfg), gui.WithFontProvider(fonts))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	input := gui.NewInputState()
	input.SetPointerPos(0, -1, -1)
	size := gui.Vec2i{X: s.width, Y: s.height}
	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		input.Reset()
		input.DeltaTime = 1.0 / 60
		if err := ui.Run(input, size, s.draw); err != nil {
			return err
		}
	}

	img := readPixels(s.width, s.height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// readPixels reads the framebuffer's bottom-left w x h corner into a
// top-down image.
func readPixels(w, h int) *image.RGBA {
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := (h - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img
}
