package gui

import (
	"math"
	"strings"
)

// Direction is how a group arranges its children.
type Direction uint8

const (
	DirHorizontal Direction = iota // Children left to right
	DirVertical                    // Children top to bottom
	DirOverlay                     // Children stacked on top of each other
)

func (d Direction) String() string {
	switch d {
	case DirHorizontal:
		return "horizontal"
	case DirVertical:
		return "vertical"
	case DirOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// primaryAxis returns 0 for horizontal, 1 for vertical and -1 for overlay.
func (d Direction) primaryAxis() int {
	switch d {
	case DirHorizontal:
		return 0
	case DirVertical:
		return 1
	default:
		return -1
	}
}

// Alignment places a child along the secondary axis of a linear group, or
// along both axes of an overlay group.
type Alignment uint8

const (
	AlignStart  Alignment = iota // Top or left
	AlignCenter                  // Centered
	AlignEnd                     // Bottom or right
)

// Named alignments for readability at call sites.
const (
	AlignTop    = AlignStart
	AlignLeft   = AlignStart
	AlignBottom = AlignEnd
	AlignRight  = AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// offset returns the position of an extent of size ext inside avail.
func (a Alignment) offset(avail, ext int) int {
	switch a {
	case AlignCenter:
		return (avail - ext) / 2
	case AlignEnd:
		return avail - ext
	default:
		return 0
	}
}

// Layout is a group's direction and alignment.
type Layout struct {
	Dir   Direction
	Align Alignment
}

// Common layouts.
var (
	LayoutHorizontalTop    = Layout{Dir: DirHorizontal, Align: AlignTop}
	LayoutHorizontalCenter = Layout{Dir: DirHorizontal, Align: AlignCenter}
	LayoutHorizontalBottom = Layout{Dir: DirHorizontal, Align: AlignBottom}
	LayoutVerticalLeft     = Layout{Dir: DirVertical, Align: AlignLeft}
	LayoutVerticalCenter   = Layout{Dir: DirVertical, Align: AlignCenter}
	LayoutVerticalRight    = Layout{Dir: DirVertical, Align: AlignRight}
	LayoutOverlayStart     = Layout{Dir: DirOverlay, Align: AlignStart}
	LayoutOverlayCenter    = Layout{Dir: DirOverlay, Align: AlignCenter}
	LayoutOverlayEnd       = Layout{Dir: DirOverlay, Align: AlignEnd}
)

func (l Layout) String() string {
	return l.Dir.String() + "-" + l.Align.String()
}

// ParseLayout parses names such as "vertical-center", "horizontal-top" or
// "overlay". Top/left map to start and bottom/right to end.
func ParseLayout(s string) (Layout, bool) {
	dir, align, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	var l Layout
	switch dir {
	case "horizontal":
		l.Dir = DirHorizontal
	case "vertical":
		l.Dir = DirVertical
	case "overlay":
		l.Dir = DirOverlay
	default:
		return Layout{}, false
	}
	a, ok := ParseAlignment(align)
	if !ok {
		return Layout{}, false
	}
	l.Align = a
	return l, true
}

// ParseAlignment parses "start", "center", "end" and their top/left/bottom/right aliases.
// The empty string is AlignStart.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start", "top", "left":
		return AlignStart, true
	case "center", "middle":
		return AlignCenter, true
	case "end", "bottom", "right":
		return AlignEnd, true
	}
	return AlignStart, false
}

// viewportScale is the number of physical pixels per virtual unit: the
// window's smaller dimension divided by the virtual resolution.
func viewportScale(window Vec2i, virtualResolution float32) float32 {
	m := min(window.X, window.Y)
	if m <= 0 || virtualResolution <= 0 {
		return 1
	}
	return float32(m) / virtualResolution
}

// VirtualToPhysical converts virtual units to physical pixels, rounding
// half up. Every virtual size, margin, spacing and offset goes through it.
func VirtualToPhysical(v, scale float32) int {
	return int(math.Floor(float64(v)*float64(scale) + 0.5))
}

// PhysicalToVirtual converts physical pixels to virtual units.
// VirtualToPhysical(PhysicalToVirtual(p, s), s) == p for every p.
func PhysicalToVirtual(p int, scale float32) float32 {
	return float32(float64(p) / float64(scale))
}

// measureGroup computes a group's size from its children in pass 1.
//
// Linear: primary = sum of child extents + spacing*(n-1), secondary = max.
// Overlay: each axis is the max of the child extents.
func measureGroup(nodes []node, g *node) Vec2i {
	var size Vec2i
	n := 0
	axis := g.layout.Dir.primaryAxis()
	for c := g.firstChild; c != noNode; c = nodes[c].nextSibling {
		ext := nodes[c].extent()
		if axis < 0 {
			size.X = max(size.X, ext.X)
			size.Y = max(size.Y, ext.Y)
		} else {
			cross := 1 - axis
			size.setAxis(axis, size.axis(axis)+ext.axis(axis))
			size.setAxis(cross, max(size.axis(cross), ext.axis(cross)))
		}
		n++
	}
	if axis >= 0 && n > 1 {
		size.setAxis(axis, size.axis(axis)+g.spacing*(n-1))
	}
	return size
}

// placeChildren positions the children of group gi. The group itself must
// already be placed. Children of the screen root are aligned individually
// per PositionGroup.
func placeChildren(nodes []node, gi int32) {
	g := &nodes[gi]
	origin := g.pos.Sub(g.scroll)
	clip := g.clip
	if g.clips {
		clip = clip.Intersect(g.rect())
	}
	axis := g.layout.Dir.primaryAxis()
	cursor := 0
	for c := g.firstChild; c != noNode; c = nodes[c].nextSibling {
		ch := &nodes[c]
		ext := ch.extent()
		var off Vec2i
		switch {
		case g.kind == kindScreen:
			off.X = ch.rootAlign[0].offset(g.size.X, ext.X)
			off.Y = ch.rootAlign[1].offset(g.size.Y, ext.Y)
		case axis < 0:
			off.X = g.layout.Align.offset(g.size.X, ext.X)
			off.Y = g.layout.Align.offset(g.size.Y, ext.Y)
		default:
			cross := 1 - axis
			off.setAxis(axis, cursor)
			off.setAxis(cross, g.layout.Align.offset(g.size.axis(cross), ext.axis(cross)))
			cursor += ext.axis(axis) + g.spacing
		}
		ch.pos = Vec2i{
			X: origin.X + off.X + ch.margin.left + ch.offset.X,
			Y: origin.Y + off.Y + ch.margin.top + ch.offset.Y,
		}
		ch.clip = clip
	}
}

// placeTree positions every node. Parents precede their children in the
// arena, so one forward sweep places the whole tree top-down.
func placeTree(nodes []node, screen Vec2i) {
	if len(nodes) == 0 {
		return
	}
	root := &nodes[0]
	root.size = screen
	root.pos = Vec2i{}
	root.clip = Rect{W: screen.X, H: screen.Y}
	for i := range nodes {
		if nodes[i].isGroup() {
			placeChildren(nodes, int32(i))
		}
	}
}
