package gui

// ClipboardProvider abstracts system clipboard access for edit boxes.
// Install one with WithClipboard; backend/opengl provides a GLFW version.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// MemoryClipboard is an in-process clipboard, used when no system
// clipboard is available.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) GetText() string     { return c.text }
func (c *MemoryClipboard) SetText(text string) { c.text = text }
