package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mdpad/internal/core/config"
	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/styles"
)

// SaveDialog prompts for the document file name.
type SaveDialog struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewSaveDialog creates a save prompt prefilled with name.
func NewSaveDialog(name string) SaveDialog {
	ti := textinput.New()
	ti.Prompt = "Filename: "
	ti.CharLimit = config.MaxNameLen
	ti.Width = config.MaxNameLen + 1
	ti.SetValue(name)
	ti.CursorEnd()
	ti.Focus()

	return SaveDialog{input: ti}
}

// Update handles input for the save dialog.
func (d SaveDialog) Update(msg tea.Msg) (SaveDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		if config.ValidateName(d.input.Value()) == nil {
			d.submitted = true
		}
		return d, nil
	case tea.KeyEsc:
		d.cancelled = true
		return d, nil
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range keyMsg.Runes {
			if !document.IsPrintable(r) {
				return d, nil
			}
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// Value returns the entered name.
func (d SaveDialog) Value() string {
	return d.input.Value()
}

// Submitted reports whether Enter was pressed on a valid name.
func (d SaveDialog) Submitted() bool {
	return d.submitted
}

// Cancelled reports whether Esc was pressed.
func (d SaveDialog) Cancelled() bool {
	return d.cancelled
}

// View renders the save dialog.
func (d SaveDialog) View() string {
	errLine := ""
	if err := config.ValidateName(d.input.Value()); err != nil && d.input.Value() != "" {
		errLine = styles.TextErrorStyle.Render(err.Error())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Save File"),
		"",
		d.input.View(),
		errLine,
		styles.ModalHelpStyle.Render("enter save  esc cancel"),
	)
	return styles.ModalStyle.Render(content)
}
