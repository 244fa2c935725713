package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/flatgui"
)

// Controller slots. The keyboard drives controller 0 with the arrow keys
// and Enter; gamepads fill the remaining slots in joystick order.
const (
	keyboardController = 0
	firstGamepad       = 1
)

// stickDeadzone is how far a stick must be pushed to count as a direction.
const stickDeadzone = 0.5

// InputAdapter fills a gui.InputState from a GLFW window. It owns the
// window's input callbacks.
type InputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
	// Cursor to framebuffer scale, for HiDPI windows.
	scaleX, scaleY float64
}

// NewInputAdapter installs input callbacks on window. A nil input creates
// a fresh state.
func NewInputAdapter(window *glfw.Window, input *gui.InputState) *InputAdapter {
	if input == nil {
		input = gui.NewInputState()
	}
	a := &InputAdapter{window: window, input: input, scaleX: 1, scaleY: 1}
	a.input.Controllers[keyboardController].Connected = true

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCursorEnterCallback(a.cursorEnterCallback)
	return a
}

// Poll starts a new input frame: it clears last frame's transitions,
// processes pending window events and samples modifiers and gamepads.
// Call it once per frame before gui.Run.
func (a *InputAdapter) Poll(dt float32) *gui.InputState {
	a.input.Reset()
	a.input.DeltaTime = dt
	a.updateScale()

	glfw.PollEvents()

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl) || a.pressed(glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift) || a.pressed(glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt) || a.pressed(glfw.KeyRightAlt)
	a.input.ModSuper = a.pressed(glfw.KeyLeftSuper) || a.pressed(glfw.KeyRightSuper)

	a.pollGamepads()
	return a.input
}

// Input returns the state filled by Poll.
func (a *InputAdapter) Input() *gui.InputState {
	return a.input
}

// FramebufferSize is the window size in physical pixels, as gui.Run expects.
func (a *InputAdapter) FramebufferSize() gui.Vec2i {
	w, h := a.window.GetFramebufferSize()
	return gui.Vec2i{X: w, Y: h}
}

func (a *InputAdapter) pressed(k glfw.Key) bool {
	return a.window.GetKey(k) == glfw.Press
}

func (a *InputAdapter) updateScale() {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		a.scaleX = float64(fw) / float64(ww)
		a.scaleY = float64(fh) / float64(wh)
	}
}

func (a *InputAdapter) pollGamepads() {
	slot := firstGamepad
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast && slot < gui.MaxControllers; joy++ {
		if !joy.IsGamepad() {
			continue
		}
		st := joy.GetGamepadState()
		if st == nil {
			continue
		}
		c := &a.input.Controllers[slot]
		c.Connected = true
		down := func(b glfw.GamepadButton) bool { return st.Buttons[b] == glfw.Press }
		lx, ly := st.Axes[glfw.AxisLeftX], st.Axes[glfw.AxisLeftY]
		c.Buttons[gui.ControllerUp].Set(down(glfw.ButtonDpadUp) || ly < -stickDeadzone)
		c.Buttons[gui.ControllerDown].Set(down(glfw.ButtonDpadDown) || ly > stickDeadzone)
		c.Buttons[gui.ControllerLeft].Set(down(glfw.ButtonDpadLeft) || lx < -stickDeadzone)
		c.Buttons[gui.ControllerRight].Set(down(glfw.ButtonDpadRight) || lx > stickDeadzone)
		c.Buttons[gui.ControllerAccept].Set(down(glfw.ButtonA))
		slot++
	}
	// Unplugged pads release their buttons so no press is left dangling.
	for ; slot < gui.MaxControllers; slot++ {
		c := &a.input.Controllers[slot]
		if c.Connected {
			for b := range c.Buttons {
				c.Buttons[b].Set(false)
			}
			c.Connected = false
		}
	}
}

func (a *InputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		// The GUI generates its own repeats from hold time.
		return
	}
	down := action == glfw.Press
	if b, ok := controllerButton(key); ok {
		a.input.Controllers[keyboardController].Buttons[b].Set(down)
	}
	if k := glfwKeyToGUIKey(key); k != gui.KeyNone {
		a.input.SetKey(k, down)
	}
}

func (a *InputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	a.input.SetMouseButton(action == glfw.Press)
}

func (a *InputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos*a.scaleX), float32(ypos*a.scaleY))
}

// A mouse outside the window hovers nothing, but keeps a held button so
// drags that leave the window still end with a release.
func (a *InputAdapter) cursorEnterCallback(_ *glfw.Window, entered bool) {
	a.input.Pointers[0].Active = entered || a.input.Pointers[0].Down
}

func controllerButton(key glfw.Key) (gui.ControllerButton, bool) {
	switch key {
	case glfw.KeyUp:
		return gui.ControllerUp, true
	case glfw.KeyDown:
		return gui.ControllerDown, true
	case glfw.KeyLeft:
		return gui.ControllerLeft, true
	case glfw.KeyRight:
		return gui.ControllerRight, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.ControllerAccept, true
	}
	return 0, false
}

func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	case glfw.KeyY:
		return gui.KeyY
	case glfw.KeyZ:
		return gui.KeyZ
	default:
		return gui.KeyNone
	}
}

// Clipboard is the system clipboard through GLFW. It implements
// gui.ClipboardProvider and must be used on the main thread.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard returns a clipboard bound to window.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
