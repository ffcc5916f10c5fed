package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/markup"
	"github.com/colonyops/mdpad/internal/core/styles"
)

const (
	previewMargin = 4
	previewChrome = 6 // title + divider + help + border/padding
)

var previewClose = key.NewBinding(key.WithKeys("esc", "q", "f9"))

// RenderMarkdown renders text with glamour using the active theme, wrapped
// at width columns.
func RenderMarkdown(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// RenderDocument styles every row of doc the way the editor paints it,
// without a cursor.
func RenderDocument(doc *document.Document) string {
	lines := doc.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = RenderSpans(markup.Compact(markup.Tokenize(line)), -1)
	}
	return strings.Join(out, "\n")
}

// PreviewDialog shows the document rendered as full markdown in a
// scrollable viewport.
type PreviewDialog struct {
	viewport viewport.Model
	width    int
	height   int
	closed   bool
}

// NewPreviewDialog renders doc for a screen of the given size. Rendering
// failures fall back to the raw text.
func NewPreviewDialog(doc *document.Document, width, height int) *PreviewDialog {
	w := max(width-previewMargin, 20)
	h := max(height-previewMargin, previewChrome+1)

	vp := viewport.New(w-4, h-previewChrome)
	content, err := RenderMarkdown(doc.Text(), w-6)
	if err != nil {
		content = doc.Text()
	}
	vp.SetContent(content)

	return &PreviewDialog{viewport: vp, width: w, height: h}
}

// Update scrolls the viewport or closes the dialog.
func (p *PreviewDialog) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, previewClose) {
		p.closed = true
		return nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// Closed reports whether the dialog was dismissed.
func (p *PreviewDialog) Closed() bool { return p.closed }

// View renders the dialog.
func (p *PreviewDialog) View() string {
	title := "Preview"
	if p.viewport.TotalLineCount() > p.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", p.viewport.ScrollPercent()*100))
	}

	divider := styles.DividerStyle.Render(strings.Repeat("─", max(p.width-6, 1)))
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		divider,
		p.viewport.View(),
		styles.ModalHelpStyle.Render("↑/↓ scroll  esc close"),
	)
	return styles.ModalStyle.Width(p.width - 2).Render(content)
}
