package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mdpad/internal/core/styles"
)

// InfoStatus represents the status of an info item.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoDialog is a short message box dismissed by any key.
type InfoDialog struct {
	title    string
	message  string
	status   InfoStatus
	helpText string
}

// NewInfoDialog creates a new info dialog.
func NewInfoDialog(title, message string, status InfoStatus) *InfoDialog {
	return &InfoDialog{
		title:    title,
		message:  message,
		status:   status,
		helpText: "Press any key...",
	}
}

// NewErrorDialog creates a failure dialog titled "Error".
func NewErrorDialog(message string) *InfoDialog {
	return NewInfoDialog("Error", message, InfoStatusFail)
}

// Title returns the dialog title.
func (d *InfoDialog) Title() string { return d.title }

// Message returns the dialog message.
func (d *InfoDialog) Message() string { return d.message }

// Status returns the dialog status.
func (d *InfoDialog) Status() InfoStatus { return d.status }

// View renders the dialog.
func (d *InfoDialog) View() string {
	msg := d.message
	if icon := statusIcon(d.status); icon != "" {
		msg = fmt.Sprintf("%s %s", icon, messageStyle(d.status).Render(msg))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title),
		"",
		msg,
		styles.ModalHelpStyle.Render(d.helpText),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the dialog centered over the provided background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	return Overlay(background, d.View(), width, height)
}

func messageStyle(s InfoStatus) lipgloss.Style {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle
	case InfoStatusWarn:
		return styles.TextWarningStyle
	case InfoStatusFail:
		return styles.TextErrorStyle
	default:
		return styles.ListNormalStyle
	}
}

func statusIcon(s InfoStatus) string {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔")
	case InfoStatusWarn:
		return styles.TextWarningStyle.Render("●")
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘")
	default:
		return ""
	}
}
