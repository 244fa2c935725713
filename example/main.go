// Example opens a window with a settings panel declared from a layout
// definition and a small HUD declared in code.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-config gui.yaml   engine settings (virtual resolution, style, ...)
//	-layout menu.yaml  replace the embedded settings panel
//	-assets dir        load every image in dir as a texture named after the file
//	-font file.ttf     load an extra font and put it first in the default list
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flatgui"
	"github.com/go-theft-auto/flatgui/backend/opengl"
	"github.com/go-theft-auto/flatgui/font"
	"github.com/go-theft-auto/flatgui/layoutdef"
	"github.com/go-theft-auto/flatgui/motion"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "flatgui example"
)

//go:embed menu.yaml
var menuYAML []byte

// hudSlide moves the HUD in and out over roughly a third of a second.
var hudSlide = gui.AnimCurve{Kind: gui.CurveSpring, TypicalDelta: 300, TypicalTotalTime: 0.35, Bias: 0.6}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "engine config file (YAML)")
	layoutPath := flag.String("layout", "", "layout definition replacing the embedded menu")
	assetDir := flag.String("assets", "", "directory of images to load as textures")
	fontPath := flag.String("font", "", "TrueType or OpenType font to prefer")
	flag.Parse()

	if err := run(*configPath, *layoutPath, *assetDir, *fontPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, layoutPath, assetDir, fontPath string) error {
	cfg := gui.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = gui.LoadConfig(configPath); err != nil {
			return err
		}
	}

	doc, err := loadMenu(layoutPath)
	if err != nil {
		return err
	}
	for _, problem := range doc.Validate() {
		slog.Warn("layout definition", "problem", problem)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	fonts := font.NewManager(renderer)
	defer fonts.Close()
	if fontPath != "" {
		if err := fonts.LoadFile("custom", fontPath); err != nil {
			return err
		}
		fonts.SetDefaults("custom", font.GoRegular, font.Basic)
	}

	assets := opengl.NewAssets(renderer)
	defer assets.Delete()
	if assetDir != "" {
		if err := assets.LoadDir(assetDir); err != nil {
			return err
		}
	}

	input := gui.NewInputState()
	adapter := opengl.NewInputAdapter(window, input)

	ui := gui.New(renderer,
		gui.WithConfig(cfg),
		gui.WithFontProvider(fonts),
		gui.WithAssets(assets),
		gui.WithAnimation(motion.NewEngine()),
		gui.WithClipboard(opengl.NewClipboard(window)),
	)

	bindings := layoutdef.NewBindings()
	*bindings.Float("volume") = 0.5
	*bindings.Bool("sound") = true
	showMenu := true
	bindings.OnEvent = func(name string) {
		switch name {
		case "close":
			showMenu = false
		case "sound":
			slog.Info("sound toggled", "on", *bindings.Bool("sound"))
		}
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		adapter.Poll(dt)
		size := adapter.FramebufferSize()

		gl.Viewport(0, 0, int32(size.X), int32(size.Y))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		err := ui.Run(input, size, func(ctx *gui.Context) {
			if showMenu {
				doc.Declare(ctx, bindings)
			}
			hud(ctx, &showMenu, bindings)
		})
		if err != nil {
			return fmt.Errorf("gui frame: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

func loadMenu(path string) (*layoutdef.Document, error) {
	if path != "" {
		return layoutdef.LoadFile(path)
	}
	return layoutdef.Parse(menuYAML)
}

// hud draws a status bar along the bottom edge. It slides down out of view
// while the settings panel is open.
func hud(ctx *gui.Context, showMenu *bool, b *layoutdef.Bindings) {
	target := float32(0)
	if *showMenu {
		target = 80
	}
	offset := ctx.AnimatableFloat("hud-offset", target)
	ctx.StartAnimationFloat("hud-offset", target, hudSlide)

	ctx.StartGroup(gui.LayoutHorizontalCenter, 12, "hud")
	ctx.PositionGroup(gui.AlignCenter, gui.AlignEnd, gui.Vec2{Y: offset - 20})
	ctx.SetMargin(gui.Margin{Left: 16, Top: 8, Right: 16, Bottom: 8})
	ctx.ColorBackground(gui.RGBA(0, 0, 0, 180))

	name := *b.Text("player")
	if name == "" {
		name = "anonymous"
	}
	ctx.Label(fmt.Sprintf("%s  volume %.0f%%", name, *b.Float("volume")*100), 20)
	if ctx.TextButton("Settings", 20, "open-settings", gui.WithDisabled(*showMenu)).Clicked() {
		*showMenu = true
	}
	ctx.EndGroup()
}
