package tui

import (
	"strings"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/markup"
	"github.com/colonyops/mdpad/internal/core/styles"
)

var _ editor.Renderer = (*Screen)(nil)

// Screen is the editor.Renderer behind the TUI. It keeps the last painted
// spans of every row so View can compose a frame at any time.
type Screen struct {
	rows   [document.MaxLines][]markup.Span
	status editor.Status
}

// NewScreen creates a blank screen.
func NewScreen() *Screen {
	return &Screen{}
}

// PaintLine stores the spans of row. Out of range rows are ignored.
func (s *Screen) PaintLine(row int, spans []markup.Span) {
	if row < 0 || row >= document.MaxLines {
		return
	}
	s.rows[row] = markup.Compact(spans)
}

// ClearLine blanks row.
func (s *Screen) ClearLine(row int) {
	if row < 0 || row >= document.MaxLines {
		return
	}
	s.rows[row] = nil
}

// PaintStatus stores the status line content.
func (s *Screen) PaintStatus(st editor.Status) {
	s.status = st
}

// Status returns the last painted status.
func (s *Screen) Status() editor.Status {
	return s.status
}

// Spans returns the painted spans of row.
func (s *Screen) Spans(row int) []markup.Span {
	if row < 0 || row >= document.MaxLines {
		return nil
	}
	return s.rows[row]
}

// Text returns the plain text of row.
func (s *Screen) Text(row int) string {
	return markup.Text(s.Spans(row))
}

// RenderRow styles row for display. When cursor >= 0 the character at that
// column is drawn in reverse video; a cursor past the end of the text is
// drawn on a blank cell.
func (s *Screen) RenderRow(row, cursor int) string {
	return RenderSpans(s.Spans(row), cursor)
}

// RenderSpans styles spans for display with an optional cursor column.
func RenderSpans(spans []markup.Span, cursor int) string {
	var b strings.Builder
	col := 0
	drawn := false

	for _, sp := range spans {
		style := styles.MarkupStyle(sp.Style)
		end := col + len(sp.Text)

		if cursor >= col && cursor < end {
			at := cursor - col
			if at > 0 {
				b.WriteString(style.Render(sp.Text[:at]))
			}
			b.WriteString(styles.CursorStyle.Inherit(style).Render(sp.Text[at : at+1]))
			if at+1 < len(sp.Text) {
				b.WriteString(style.Render(sp.Text[at+1:]))
			}
			drawn = true
		} else {
			b.WriteString(style.Render(sp.Text))
		}
		col = end
	}

	if cursor >= 0 && !drawn {
		if cursor > col {
			b.WriteString(strings.Repeat(" ", cursor-col))
		}
		b.WriteString(styles.CursorStyle.Render(" "))
	}
	return b.String()
}
