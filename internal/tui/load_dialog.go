package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/styles"
	"github.com/colonyops/mdpad/internal/tui/components"
)

// loadPageSize is the number of files shown per page of the load dialog.
const loadPageSize = 11

var loadKeys = struct {
	Up, Down, PageUp, PageDown, Select, Cancel key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "left")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "right")),
	Select:   key.NewBinding(key.WithKeys("enter")),
	Cancel:   key.NewBinding(key.WithKeys("esc")),
}

// LoadDialog is a paged file picker.
type LoadDialog struct {
	entries   []editor.Entry
	selected  int
	chosen    bool
	cancelled bool
}

// NewLoadDialog creates a picker over entries. entries must not be empty.
func NewLoadDialog(entries []editor.Entry) LoadDialog {
	return LoadDialog{entries: entries}
}

// Update handles input for the load dialog.
func (d LoadDialog) Update(msg tea.Msg) (LoadDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	last := len(d.entries) - 1
	switch {
	case key.Matches(keyMsg, loadKeys.Up):
		d.selected = max(d.selected-1, 0)
	case key.Matches(keyMsg, loadKeys.Down):
		d.selected = min(d.selected+1, last)
	case key.Matches(keyMsg, loadKeys.PageUp):
		d.selected = max(d.selected-loadPageSize, 0)
	case key.Matches(keyMsg, loadKeys.PageDown):
		d.selected = min(d.selected+loadPageSize, last)
	case key.Matches(keyMsg, loadKeys.Select):
		d.chosen = len(d.entries) > 0
	case key.Matches(keyMsg, loadKeys.Cancel):
		d.cancelled = true
	}
	return d, nil
}

// Selected returns the highlighted entry.
func (d LoadDialog) Selected() editor.Entry {
	if len(d.entries) == 0 {
		return editor.Entry{}
	}
	return d.entries[d.selected]
}

// Chosen reports whether Enter was pressed.
func (d LoadDialog) Chosen() bool { return d.chosen }

// Cancelled reports whether Esc was pressed.
func (d LoadDialog) Cancelled() bool { return d.cancelled }

// Page returns the zero-based page of the selection and the page count.
func (d LoadDialog) Page() (page, pages int) {
	pages = max((len(d.entries)+loadPageSize-1)/loadPageSize, 1)
	return d.selected / loadPageSize, pages
}

// View renders the current page of the file list.
func (d LoadDialog) View() string {
	page, pages := d.Page()
	start := page * loadPageSize
	end := min(start+loadPageSize, len(d.entries))

	nameWidth := 0
	for _, e := range d.entries[start:end] {
		nameWidth = max(nameWidth, len(e.Name))
	}

	lines := make([]string, 0, loadPageSize)
	for i := start; i < end; i++ {
		e := d.entries[i]
		name := e.Name + components.Pad(nameWidth-len(e.Name))
		size := styles.ListMetaStyle.Render(humanize.Bytes(uint64(max(e.Size, 0))))
		if i == d.selected {
			lines = append(lines, styles.ListSelectedStyle.Render("> "+name)+"  "+size)
			continue
		}
		lines = append(lines, styles.ListNormalStyle.Render("  "+name)+"  "+size)
	}

	footer := fmt.Sprintf("Page %d/%d  ↑/↓ select  enter load  esc cancel", page+1, pages)
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Load File"),
		"",
		strings.Join(lines, "\n"),
		styles.ModalHelpStyle.Render(footer),
	)
	return styles.ModalStyle.Render(content)
}
