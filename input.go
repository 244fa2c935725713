package gui

// Input source limits. Pointer sources are indexed 0..MaxPointers-1,
// controllers follow at MaxPointers+i.
const (
	MaxPointers    = 8
	MaxControllers = 4
)

// PointerKind distinguishes mouse-class pointers (which hover) from touches.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// ButtonState is the state of one button plus its transitions this frame.
type ButtonState struct {
	Down     bool
	WentDown bool // True on the frame the button was pressed
	WentUp   bool // True on the frame the button was released
}

// Set records a new down state and its transition.
// A press and release within one frame leaves both transitions set.
func (b *ButtonState) Set(down bool) {
	if down && !b.Down {
		b.WentDown = true
	}
	if !down && b.Down {
		b.WentUp = true
	}
	b.Down = down
}

func (b *ButtonState) clearTransitions() {
	b.WentDown = false
	b.WentUp = false
}

// Pointer is one pointer-class input source: the mouse or a touch.
type Pointer struct {
	ButtonState
	Pos    Vec2i // Physical pixels
	Kind   PointerKind
	Active bool // False for touch slots with no finger
}

// ControllerButton names the buttons of a keyboard or gamepad controller.
type ControllerButton int

const (
	ControllerUp ControllerButton = iota
	ControllerDown
	ControllerLeft
	ControllerRight
	ControllerAccept
	ControllerButtonCount
)

// ControllerState is one keyboard or gamepad source used for focus navigation.
type ControllerState struct {
	Buttons   [ControllerButtonCount]ButtonState
	Connected bool
}

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Held keys repeat after KeyRepeatDelay, then every KeyRepeatInterval
// seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// keyState is a ButtonState plus how long the key has been held, before
// and after this frame's UpdateKeyRepeat.
type keyState struct {
	ButtonState
	held, prevHeld float32
}

// repeated reports whether a repeat tick fell between prevHeld and held.
func (k *keyState) repeated() bool {
	if k.WentDown {
		return true
	}
	if !k.Down || k.held < KeyRepeatDelay {
		return false
	}
	if k.prevHeld < KeyRepeatDelay {
		return true
	}
	ticks := func(t float32) int { return int((t - KeyRepeatDelay) / KeyRepeatInterval) }
	return ticks(k.held) > ticks(k.prevHeld)
}

// InputState is one frame of input. An adapter (see backend/opengl) or a
// test fills it before Run; Reset clears the per-frame transitions after.
type InputState struct {
	Pointers    [MaxPointers]Pointer
	Controllers [MaxControllers]ControllerState

	WheelX, WheelY float32 // notches

	keys [KeyCount]keyState

	// InputChars is the text typed this frame.
	InputChars []rune

	ModCtrl, ModShift, ModAlt, ModSuper bool

	DeltaTime float32 // seconds
}

// NewInputState creates a new InputState. Pointer 0 is the mouse.
func NewInputState() *InputState {
	s := &InputState{
		InputChars: make([]rune, 0, 16),
	}
	s.Pointers[0].Active = true
	for i := 1; i < MaxPointers; i++ {
		s.Pointers[i].Kind = PointerTouch
	}
	return s
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.Pointers {
		p := &s.Pointers[i]
		p.clearTransitions()
		if p.Kind == PointerTouch && !p.Down {
			p.Active = false
		}
	}
	for i := range s.Controllers {
		for b := range s.Controllers[i].Buttons {
			s.Controllers[i].Buttons[b].clearTransitions()
		}
	}
	for i := range s.keys {
		s.keys[i].clearTransitions()
	}
	s.InputChars = s.InputChars[:0]
	s.WheelX = 0
	s.WheelY = 0
}

// SetPointerPos sets the position of a pointer in physical pixels.
func (s *InputState) SetPointerPos(i, x, y int) {
	if i < 0 || i >= MaxPointers {
		return
	}
	s.Pointers[i].Pos = Vec2i{X: x, Y: y}
}

// SetPointerButton sets the down state of a pointer. Touch pointers become
// active on press; they stay active for the release frame.
func (s *InputState) SetPointerButton(i int, down bool) {
	if i < 0 || i >= MaxPointers {
		return
	}
	p := &s.Pointers[i]
	if down {
		p.Active = true
	}
	p.Set(down)
}

// SetMousePos sets the mouse position (pointer 0).
func (s *InputState) SetMousePos(x, y float32) {
	s.SetPointerPos(0, int(x), int(y))
}

// SetMouseButton sets the primary mouse button state (pointer 0).
func (s *InputState) SetMouseButton(down bool) {
	s.SetPointerButton(0, down)
}

// SetController sets a controller button state.
func (s *InputState) SetController(i int, b ControllerButton, down bool) {
	if i < 0 || i >= MaxControllers || b < 0 || b >= ControllerButtonCount {
		return
	}
	s.Controllers[i].Connected = true
	s.Controllers[i].Buttons[b].Set(down)
}

func validKey(key Key) bool { return key > KeyNone && key < KeyCount }

// SetKey records a key press or release. Either one restarts the hold
// timer.
func (s *InputState) SetKey(key Key, down bool) {
	if !validKey(key) {
		return
	}
	k := &s.keys[key]
	if down != k.Down {
		k.held, k.prevHeld = 0, 0
	}
	k.Set(down)
}

// UpdateKeyRepeat advances hold timers by dt. Run calls it once per frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for i := range s.keys {
		k := &s.keys[i]
		k.prevHeld = k.held
		if k.Down {
			k.held += dt
		}
	}
}

// SetMouseWheel sets the wheel movement for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.WheelX, s.WheelY = x, y
}

// AddInputChar appends a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// Key returns the state of key. Unknown keys are never down.
func (s *InputState) Key(key Key) ButtonState {
	if !validKey(key) {
		return ButtonState{}
	}
	return s.keys[key].ButtonState
}

func (s *InputState) KeyDown(key Key) bool    { return s.Key(key).Down }
func (s *InputState) KeyPressed(key Key) bool { return s.Key(key).WentDown }

// KeyRepeated reports whether a held key fires this frame: on the press,
// then at the repeat rate once KeyRepeatDelay has passed.
func (s *InputState) KeyRepeated(key Key) bool {
	return validKey(key) && s.keys[key].repeated()
}

// ConsumeInputChars drops the typed text so later widgets do not see it.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
