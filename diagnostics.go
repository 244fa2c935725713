package gui

import (
	"fmt"
	"log/slog"
)

// DiagnosticKind categorizes a non-fatal problem.
type DiagnosticKind int

const (
	// DiagResource is a missing texture, font or glyph.
	DiagResource DiagnosticKind = iota
	// DiagMalformedData is invalid external data such as a layout definition.
	DiagMalformedData
	// DiagUsage is a recoverable API misuse, e.g. an unknown pointer index.
	DiagUsage
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagResource:
		return "resource"
	case DiagMalformedData:
		return "malformed-data"
	case DiagUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Frame   uint64
	Kind    DiagnosticKind
	Message string
}

// DiagnosticHandler receives diagnostics that passed the per-frame limit.
type DiagnosticHandler func(Diagnostic)

// Diagnostics is a rate-limited report channel. At most limit messages are
// delivered per frame; the rest are counted and summarized once at frame end.
type Diagnostics struct {
	limit   int
	count   int
	dropped int
	frame   uint64
	logger  *slog.Logger
	handler DiagnosticHandler
}

func newDiagnostics(limit int, logger *slog.Logger) *Diagnostics {
	return &Diagnostics{limit: limit, logger: logger}
}

// Reportf reports a diagnostic unless this frame's limit is exhausted.
func (d *Diagnostics) Reportf(kind DiagnosticKind, format string, args ...any) {
	if d == nil {
		return
	}
	if d.count >= d.limit {
		d.dropped++
		return
	}
	d.count++
	diag := Diagnostic{Frame: d.frame, Kind: kind, Message: fmt.Sprintf(format, args...)}
	if d.handler != nil {
		d.handler(diag)
		return
	}
	d.logger.Warn(diag.Message, "kind", kind, "frame", diag.Frame)
}

// Dropped returns how many messages were suppressed in the current frame.
func (d *Diagnostics) Dropped() int {
	return d.dropped
}

// beginFrame resets the per-frame budget.
func (d *Diagnostics) beginFrame(frame uint64) {
	d.frame = frame
	d.count = 0
	d.dropped = 0
}

// endFrame logs the number of suppressed messages, if any.
func (d *Diagnostics) endFrame() {
	if d.dropped > 0 {
		d.logger.Warn("diagnostics suppressed", "frame", d.frame, "dropped", d.dropped, "limit", d.limit)
	}
}
