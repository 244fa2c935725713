package gui

// Option configures one widget declaration.
type Option func(*options)

// options is the set of values given to one declaration. Widgets take a
// handful of options at most, so a slice scanned from the end beats a map;
// the last value set for a key wins.
type options struct {
	vals []optVal
}

type optVal struct {
	key string
	val any
}

func (o *options) lookup(key string) (any, bool) {
	for i := len(o.vals) - 1; i >= 0; i-- {
		if o.vals[i].key == key {
			return o.vals[i].val, true
		}
	}
	return nil, false
}

// OptKey names an option of type T and holds its default. Packages that
// build widgets on top of Context define their own keys:
//
//	var OptGlow = gui.NewOptKey[uint32]("mywidgets.glow", 0)
//
//	func WithGlow(c uint32) gui.Option { return gui.WithOpt(OptGlow, c) }
//
//	glow := gui.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey returns a key whose unset value is def. Names must be unique
// across packages.
func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		o.vals = append(o.vals, optVal{key.name, value})
	}
}

// GetOpt returns the value set for key, or its default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.lookup(key.name); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.lookup(key.name)
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet returns key's value among opts.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// RangeValue maps a slider's 0..1 track to [Min, Max].
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptMargin   = NewOptKey("margin", Margin{})
	OptTint     = NewOptKey("tint", ColorWhite)
	OptColor    = NewOptKey[uint32]("color", 0)

	OptRange = NewOptKey("range", RangeValue{})

	OptPlaceholder = NewOptKey("placeholder", "")
	OptMaxLength   = NewOptKey("maxLength", 0)

	OptDefaultOpen = NewOptKey("defaultOpen", false)
	OptOpen        = NewOptKey[*bool]("open", nil)

	OptMaxVisible = NewOptKey("maxVisible", 8)

	OptFormat    = NewOptKey("format", "%.2f")
	OptStep      = NewOptKey[float32]("step", 0)
	OptDragSpeed = NewOptKey[float32]("dragSpeed", 1)
)

// WithID gives an element an explicit id. The string is hashed on its own,
// so the element keeps its state wherever it is declared.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled greys the widget out and drops its events.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithMargin sets the margin of a leaf element.
func WithMargin(m Margin) Option { return WithOpt(OptMargin, m) }

func WithTint(color uint32) Option { return WithOpt(OptTint, color) }

// WithColor overrides the text color of one element.
func WithColor(color uint32) Option { return WithOpt(OptColor, color) }

// WithRange maps a slider's track to [lo, hi].
func WithRange(lo, hi float32) Option {
	return WithOpt(OptRange, RangeValue{Min: lo, Max: hi, HasRange: true})
}

// WithPlaceholder sets the text an empty edit box shows while not editing.
func WithPlaceholder(text string) Option { return WithOpt(OptPlaceholder, text) }

// WithMaxLength limits an edit box to n runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithDefaultOpen makes a section start expanded.
func WithDefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithOpen binds a section's open flag to *open. Toggles are written back
// after the frame's render pass.
func WithOpen(open *bool) Option { return WithOpt(OptOpen, open) }

// WithMaxVisible sets how many rows a combo box popup shows
// before it scrolls.
func WithMaxVisible(n int) Option { return WithOpt(OptMaxVisible, n) }

// WithFormat sets the fmt verb a number input displays its value with.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps a number input's value to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithDragSpeed sets how far, in virtual units, a number input must be
// dragged to change its value by one.
func WithDragSpeed(units float32) Option { return WithOpt(OptDragSpeed, units) }
