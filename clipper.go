package gui

import "fmt"

// ListClipper computes the visible index range of a list of equal-height
// rows, so long lists only declare the rows in view. All lengths are in
// virtual units.
//
// Usage:
//
//	clip := gui.NewListClipper(len(items), rowH, viewH, offset.Y)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    // declare row i
//	}
type ListClipper struct {
	StartIdx   int     // First visible item index (inclusive)
	EndIdx     int     // Last visible item index (exclusive)
	ItemHeight float32 // Height of each item
	TotalItems int     // Total number of items in the list
}

// NewListClipper calculates the visible item range for a view of
// visibleHeight scrolled down by scrollY. One extra row is kept on each
// side for partially visible rows.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}
	c.StartIdx = min(max(int(scrollY/itemHeight), 0), totalItems)
	c.EndIdx = min(c.StartIdx+int(visibleHeight/itemHeight)+2, totalItems)
	return c
}

// ShouldRender returns true if the item at the given index is in range.
func (c ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of items in range.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of all items.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// MaxScroll returns the maximum valid scroll offset.
func (c ListClipper) MaxScroll(visibleHeight float32) float32 {
	return max(c.ContentHeight()-visibleHeight, 0)
}

// ScrollToItem returns the scroll offset that brings item idx into view,
// or currentScroll when it already is.
func (c ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}

// VirtualList is a vertical scroll view over count rows of rowHeight that
// only declares the rows in view. Spacers stand in for the rows above and
// below, so the scroll range covers the whole list. row is called with
// each visible index inside a fixed-size row group.
//
// Rows get ids "<id>_<index>" so their widget state follows the item as
// the list scrolls.
//
// Usage:
//
//	ctx.VirtualList(gui.Vec2{X: 300, Y: 400}, 24, len(names), &scroll, "names", func(i int) {
//	    ctx.Label(names[i], 20)
//	})
func (ctx *Context) VirtualList(size Vec2, rowHeight float32, count int, offset *Vec2, id string, row func(i int)) {
	clip := NewListClipper(count, rowHeight, size.Y, offset.Y)

	ctx.StartScroll(size, offset, id)
	ctx.Spacer(Vec2{Y: float32(clip.StartIdx) * rowHeight})
	rowSize := ctx.pxVec(Vec2{X: size.X, Y: rowHeight})
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		rowID := ""
		if id != "" {
			rowID = fmt.Sprintf("%s_%d", id, i)
		}
		ctx.startFixedGroup("VirtualList", LayoutVerticalLeft, rowID, rowSize, false)
		row(i)
		ctx.EndGroup()
	}
	ctx.Spacer(Vec2{Y: float32(count-clip.EndIdx) * rowHeight})
	ctx.EndScroll()
}
