package editor

import "github.com/colonyops/mdpad/internal/core/document"

// Cursor is a position in the document. Row is always within
// [0, MaxLines-1]; Col never exceeds the current line length or MaxLineLen.
type Cursor struct {
	Row int
	Col int
}

// clamp forces c into bounds for doc.
func (c Cursor) clamp(doc *document.Document) Cursor {
	c.Row = clampInt(c.Row, 0, document.MaxLines-1)
	c.Col = clampInt(c.Col, 0, min(doc.Get(c.Row).Len(), document.MaxLineLen))
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
