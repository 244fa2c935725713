package gui

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural matches every *StructuralError via errors.Is.
	ErrStructural = errors.New("gui: structural fault")
	// ErrReentrant is returned by Run when called from inside a declaration callback.
	ErrReentrant = errors.New("gui: reentrant Run")
)

// FaultKind identifies the category of a structural fault.
type FaultKind int

const (
	// FaultUnknown indicates a fault of unknown type.
	FaultUnknown FaultKind = iota
	// FaultUnmatchedStart indicates groups still open when the callback returned.
	FaultUnmatchedStart
	// FaultUnmatchedEnd indicates EndGroup with no open group.
	FaultUnmatchedEnd
	// FaultOutsideCallback indicates a declaration call outside Run.
	FaultOutsideCallback
	// FaultDivergentPass indicates the render pass declared a different tree than the layout pass.
	FaultDivergentPass
	// FaultNoGroup indicates a group modifier with no open group.
	FaultNoGroup
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnmatchedStart:
		return "unmatched-start"
	case FaultUnmatchedEnd:
		return "unmatched-end"
	case FaultOutsideCallback:
		return "outside-callback"
	case FaultDivergentPass:
		return "divergent-pass"
	case FaultNoGroup:
		return "no-group"
	default:
		return "unknown"
	}
}

// StructuralError reports a malformed declaration sequence. The frame that
// produced it is discarded.
type StructuralError struct {
	// Op is the declaration call that detected the fault (e.g. "EndGroup").
	Op string
	// Kind categorizes the fault.
	Kind FaultKind
	// Depth is the number of open groups when the fault was detected.
	Depth int
	// Pass is the pass in which the fault occurred.
	Pass Pass
	// Err is an optional underlying cause.
	Err error
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("gui: %s [%s] depth=%d pass=%s", e.Op, e.Kind, e.Depth, e.Pass)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStructural.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// fault aborts the current pass. Run recovers it and returns it as an error.
func fault(op string, kind FaultKind, depth int, pass Pass) {
	panic(&StructuralError{Op: op, Kind: kind, Depth: depth, Pass: pass})
}

// recoverFault converts a structural fault panic into an error. Any other
// panic value is re-raised.
func recoverFault(r any) error {
	if r == nil {
		return nil
	}
	if se, ok := r.(*StructuralError); ok {
		return se
	}
	panic(r)
}
