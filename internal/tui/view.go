package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/styles"
	"github.com/colonyops/mdpad/internal/tui/components"
)

// bannerTitle is the first banner line.
const bannerTitle = "--=== Markdown Editor ===--"

// bannerLines is the number of lines above the edit area.
const bannerLines = 3

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	base := m.renderEditor()

	switch m.state {
	case stateSaving:
		return components.Overlay(base, m.saveDialog.View(), m.width, m.height)
	case stateLoading:
		return components.Overlay(base, m.loadDialog.View(), m.width, m.height)
	case stateConfirmingNew:
		return components.Overlay(base, m.confirm.View(), m.width, m.height)
	case stateShowingHelp:
		return m.help.Overlay(base, m.width, m.height)
	case stateShowingInfo:
		return m.info.Overlay(base, m.width, m.height)
	case statePreviewing:
		return components.Overlay(base, m.preview.View(), m.width, m.height)
	case stateConfirmingQuit:
		return m.quitModal.Overlay(base, m.width, m.height)
	}
	return base
}

// renderEditor draws the banner, the edit rows, and the status line.
func (m Model) renderEditor() string {
	width := max(m.width, document.LineCapacity)
	cur := m.session.Cursor()
	showCursor := m.state == stateEditing

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.BannerStyle.Render(bannerTitle)))
	b.WriteByte('\n')
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.TextMutedStyle.Render(m.build.Subtitle())))
	b.WriteString("\n\n")

	for row := 0; row < document.MaxLines; row++ {
		col := -1
		if showCursor && row == cur.Row {
			col = cur.Col
		}
		b.WriteString(m.screen.RenderRow(row, col))
		b.WriteByte('\n')
	}

	b.WriteString(m.renderStatus(m.screen.Status(), width))
	return b.String()
}

// renderStatus draws the status line: key hints and line number on the left,
// document name and modified marker on the right.
func (m Model) renderStatus(st editor.Status, width int) string {
	left := fmt.Sprintf("%s  %s", m.keys.StatusHints(), StatusLine(st))

	name := st.Name
	if name == "" {
		name = "[untitled]"
	}
	right := styles.StatusBarStyle.Render(name)
	if st.Modified {
		right += styles.StatusDirtyStyle.Render(" [+]")
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.StatusBarStyle.Render(left+components.Pad(gap)) + right
}

// StatusLine formats the line indicator, e.g. "Line: 3/21".
func StatusLine(st editor.Status) string {
	return fmt.Sprintf("Line: %d/%d", st.Row+1, st.Lines)
}
