package gui

// nodeKind is the kind of a tree node.
type nodeKind uint8

const (
	kindScreen nodeKind = iota // implicit root, one per pass
	kindGroup
	kindImage
	kindLabel
	kindEdit
	kindCustom
)

func (k nodeKind) String() string {
	switch k {
	case kindScreen:
		return "screen"
	case kindGroup:
		return "group"
	case kindImage:
		return "image"
	case kindLabel:
		return "label"
	case kindEdit:
		return "edit"
	case kindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// noNode terminates child and sibling links.
const noNode int32 = -1

// node is one element of the per-frame tree. Nodes live in an arena slice
// in declaration order; children are linked by index.
type node struct {
	kind nodeKind
	id   ID

	parent      int32
	firstChild  int32
	lastChild   int32
	nextSibling int32
	childCount  int

	// Layout inputs, physical pixels
	layout    Layout
	spacing   int
	margin    insets
	size      Vec2i // content box; measured for groups unless fixedSize
	fixedSize bool
	offset    Vec2i
	rootAlign [2]Alignment // horizontal, vertical; top-level groups only
	scroll    Vec2i
	clips     bool

	// Layout outputs
	pos     Vec2i // top-left of the content box
	clip    Rect  // inherited clip rectangle
	content Vec2i // measured children size of a fixed-size group

	// Interaction
	interactive  bool
	modal        bool
	defaultFocus bool
	events       Event

	// Background
	bgColor uint32
	bgTex   Texture
	bgPatch NinePatch
	bgNine  bool

	// Leaf payload
	tex  Texture
	text *TextLayout
}

func (n *node) isGroup() bool {
	return n.kind == kindScreen || n.kind == kindGroup
}

// extent is the size including margins.
func (n *node) extent() Vec2i {
	return n.size.Add(n.margin.size())
}

// rect is the placed content box.
func (n *node) rect() Rect {
	return Rect{X: n.pos.X, Y: n.pos.Y, W: n.size.X, H: n.size.Y}
}

// hitRect is the part of the content box that is visible through the clip.
func (n *node) hitRect() Rect {
	return n.rect().Intersect(n.clip)
}

// tree is the per-frame arena plus the explicit stack of open groups.
type tree struct {
	nodes []node
	stack []int32 // open groups; stack[0] is the screen root
}

// reset clears the arena for a new layout pass, keeping capacity.
func (t *tree) reset() {
	t.nodes = t.nodes[:0]
	t.stack = t.stack[:0]
	t.nodes = append(t.nodes, node{
		kind:        kindScreen,
		parent:      noNode,
		firstChild:  noNode,
		lastChild:   noNode,
		nextSibling: noNode,
		layout:      LayoutOverlayStart,
	})
	t.stack = append(t.stack, 0)
}

// depth is the number of open groups, not counting the screen root.
func (t *tree) depth() int {
	return len(t.stack) - 1
}

func (t *tree) top() int32 {
	return t.stack[len(t.stack)-1]
}

// add appends a node as the last child of the innermost open group and
// returns its index.
func (t *tree) add(kind nodeKind) int32 {
	idx := int32(len(t.nodes))
	parent := t.top()
	t.nodes = append(t.nodes, node{
		kind:        kind,
		parent:      parent,
		firstChild:  noNode,
		lastChild:   noNode,
		nextSibling: noNode,
	})
	p := &t.nodes[parent]
	if p.lastChild == noNode {
		p.firstChild = idx
	} else {
		t.nodes[p.lastChild].nextSibling = idx
	}
	p.lastChild = idx
	p.childCount++
	return idx
}

// push opens a group node.
func (t *tree) push(idx int32) {
	t.stack = append(t.stack, idx)
}

// pop closes the innermost group and returns its index, or noNode when
// only the screen root is open.
func (t *tree) pop() int32 {
	if len(t.stack) <= 1 {
		return noNode
	}
	idx := t.top()
	t.stack = t.stack[:len(t.stack)-1]
	return idx
}
