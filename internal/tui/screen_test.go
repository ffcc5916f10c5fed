package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/markup"
	"github.com/colonyops/mdpad/pkg/tuitest"
)

func TestScreen_PaintAndClear(t *testing.T) {
	s := NewScreen()

	s.PaintLine(2, markup.Tokenize("a **b**"))
	assert.Equal(t, "a **b**", s.Text(2))
	assert.Equal(t, []markup.Span{
		{Text: "a ", Style: markup.Normal},
		{Text: "**b**", Style: markup.Bold},
	}, s.Spans(2))

	s.ClearLine(2)
	assert.Empty(t, s.Spans(2))

	s.PaintLine(-1, markup.Tokenize("x"))
	s.PaintLine(document.MaxLines, markup.Tokenize("x"))
	assert.Nil(t, s.Spans(document.MaxLines))
}

func TestScreen_PaintStatus(t *testing.T) {
	s := NewScreen()
	s.PaintStatus(editor.Status{Row: 2, Lines: document.MaxLines})

	assert.Equal(t, 2, s.Status().Row)
	assert.Equal(t, "Line: 3/21", StatusLine(s.Status()))
}

func TestRenderSpans_Cursor(t *testing.T) {
	spans := markup.Compact(markup.Tokenize("ab *c*"))

	assert.Equal(t, "ab *c*", tuitest.StripANSI(RenderSpans(spans, -1)))
	assert.Equal(t, "ab *c*", tuitest.StripANSI(RenderSpans(spans, 4)))
	// Cursor past the end draws on a blank cell; StripANSI trims it.
	assert.Equal(t, "ab *c*", tuitest.StripANSI(RenderSpans(spans, 6)))
	assert.Equal(t, "ab *c*    x", tuitest.StripANSI(RenderSpans(spans, 9)+"x"))
}

func TestRenderDocument(t *testing.T) {
	doc := document.FromLines([]string{"# H", "", "'code'"})
	assert.Equal(t, "# H\n\n'code'", tuitest.StripANSI(RenderDocument(doc)))
}
