package gui

import (
	"fmt"
	"log/slog"
)

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system. A GUI is not safe for
// concurrent use; Run must be called from one goroutine.
type GUI struct {
	renderer  Renderer
	cfg       Config
	style     Style
	styleSet  bool
	ctx       *Context
	store     *Store
	diag      *Diagnostics
	logger    *slog.Logger
	fonts     FontProvider
	assets    AssetProvider
	anim      AnimationProvider
	clipboard ClipboardProvider
	listener  EventListener

	frame   uint64
	running bool
	window  Vec2i

	// Interaction state carried across frames
	sources      [sourceCount]sourceState
	focus        ID
	editing      ID
	boundary     int
	payload      Value
	clearPayload bool
	byID         map[ID]int32
	focusables   focusRegistry
	records      []EventRecord
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithConfig sets the engine configuration. The config's style is used
// unless WithStyle is also given.
func WithConfig(cfg Config) GUIOption {
	return func(g *GUI) { g.cfg = cfg }
}

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) {
		g.style = style
		g.styleSet = true
	}
}

// WithFontProvider sets the font provider used for all text.
func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.fonts = fp }
}

// WithAssets sets the provider that resolves named textures.
func WithAssets(a AssetProvider) GUIOption {
	return func(g *GUI) { g.assets = a }
}

// WithAnimation sets the animation provider.
func WithAnimation(a AnimationProvider) GUIOption {
	return func(g *GUI) { g.anim = a }
}

// WithClipboard sets the clipboard used by edit boxes.
func WithClipboard(c ClipboardProvider) GUIOption {
	return func(g *GUI) { g.clipboard = c }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.logger = l }
}

// WithDiagnosticHandler routes diagnostics to h instead of the logger.
func WithDiagnosticHandler(h DiagnosticHandler) GUIOption {
	return func(g *GUI) { g.diag.handler = h }
}

// WithEventListener receives every resolved event record.
func WithEventListener(l EventListener) GUIOption {
	return func(g *GUI) { g.listener = l }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:  renderer,
		cfg:       DefaultConfig(),
		logger:    guiLogger,
		clipboard: &MemoryClipboard{},
		byID:      make(map[ID]int32),
		diag:      newDiagnostics(0, guiLogger),
	}

	for _, opt := range opts {
		opt(g)
	}

	if !g.styleSet {
		style, err := g.cfg.style()
		if err != nil {
			g.logger.Warn("invalid style config, using default", "error", err)
			style = DefaultStyle()
		}
		g.style = style
	}
	if g.cfg.Verbose {
		SetVerbose(true)
	}
	g.diag.limit = g.cfg.MaxDiagnosticsPerFrame
	g.diag.logger = g.logger
	g.store = newStore(g.cfg.StateRetainFrames)
	g.ctx = newContext(g)
	return g
}

// Run executes one frame: a layout pass, event resolution, a render pass
// and submission to the renderer. decl is called exactly twice and must
// declare the same elements both times.
//
// A structural fault (unbalanced groups, a declaration that differs
// between passes) aborts the frame: nothing is rendered, no deferred value
// writes are applied, and an error wrapping ErrStructural is returned.
// Calling Run from inside decl returns ErrReentrant.
func (g *GUI) Run(input *InputState, windowSize Vec2i, decl func(*Context)) (err error) {
	if g.running {
		return ErrReentrant
	}
	g.running = true
	defer func() { g.running = false }()

	g.frame++
	ctx := g.ctx
	ctx.Input = input
	ctx.FrameCount = g.frame
	ctx.DeltaTime = input.DeltaTime
	ctx.screen = windowSize
	ctx.scale = viewportScale(windowSize, g.cfg.VirtualResolution)

	if windowSize != g.window {
		g.window = windowSize
		if g.renderer != nil {
			g.renderer.Resize(windowSize.X, windowSize.Y)
		}
	}

	g.diag.beginFrame(g.frame)
	defer g.diag.endFrame()
	g.store.setFrame(g.frame)
	input.UpdateKeyRepeat(input.DeltaTime)
	if g.anim != nil {
		g.anim.Advance(input.DeltaTime)
	}

	defer func() {
		if r := recover(); r != nil {
			ctx.discard()
			err = recoverFault(r)
			g.logger.Debug("frame aborted", "frame", g.frame, "err", err)
		}
	}()

	ctx.beginPass(PassLayout)
	decl(ctx)
	ctx.finishPass()
	placeTree(ctx.tree.nodes, windowSize)

	g.resolveEvents(ctx.tree.nodes, input, ctx.scale)

	ctx.beginPass(PassRender)
	decl(ctx)
	ctx.finishPass()
	if int(ctx.cursor) != len(ctx.tree.nodes)-1 {
		fault("Run", FaultDivergentPass, 0, PassRender)
	}
	ctx.pass = PassNone
	ctx.applyDeferred()

	dl := ctx.DrawList
	ctx.DrawList = nil
	dl.Finalize()
	if g.renderer != nil {
		err = g.renderer.Render(dl)
	}
	ReleaseDrawList(dl)
	g.store.cleanup()
	if err != nil {
		return fmt.Errorf("render frame %d: %w", g.frame, err)
	}
	return nil
}

// Config returns the engine configuration.
func (g *GUI) Config() Config { return g.cfg }

// Style returns the current GUI style.
func (g *GUI) Style() Style { return g.style }

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) { g.style = style }

// Store returns the persistent widget state store.
func (g *GUI) Store() *Store { return g.store }

// Diagnostics returns the diagnostic channel.
func (g *GUI) Diagnostics() *Diagnostics { return g.diag }

// FrameCount returns the number of frames run so far.
func (g *GUI) FrameCount() uint64 { return g.frame }

// SetEventListener replaces the event listener; nil removes it.
func (g *GUI) SetEventListener(l EventListener) { g.listener = l }

// Events returns the event records resolved in the last frame. The slice is
// reused by the next Run.
func (g *GUI) Events() []EventRecord { return g.records }

// Focus returns the id of the focused element, or NullID.
func (g *GUI) Focus() ID { return g.focus }

// SetFocus focuses the element with the explicit id. It takes effect if the
// element exists in the next frame.
func (g *GUI) SetFocus(id string) {
	if id == "" {
		g.focus = NullID
		return
	}
	g.focus = HashID(id)
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.window = Vec2i{X: width, Y: height}
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}

// FontProvider returns the current font provider, or nil if not set.
func (g *GUI) FontProvider() FontProvider { return g.fonts }
