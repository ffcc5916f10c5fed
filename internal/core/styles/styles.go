// Package styles provides shared lipgloss styles for the editor TUI and CLI output.
package styles

import (
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/mdpad/internal/core/markup"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorAccent     lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Editor chrome.
	BannerStyle      lipgloss.Style
	StatusBarStyle   lipgloss.Style
	StatusKeyStyle   lipgloss.Style
	StatusDirtyStyle lipgloss.Style
	CursorStyle      lipgloss.Style

	// Markup span styles.
	MarkupNormalStyle  lipgloss.Style
	MarkupBoldStyle    lipgloss.Style
	MarkupItalicStyle  lipgloss.Style
	MarkupHeader1Style lipgloss.Style
	MarkupHeader2Style lipgloss.Style
	MarkupMonoStyle    lipgloss.Style

	// TUI shared styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	ListSelectedStyle lipgloss.Style
	ListNormalStyle   lipgloss.Style
	ListMetaStyle     lipgloss.Style

	TextMutedStyle   lipgloss.Style
	TextErrorStyle   lipgloss.Style
	TextSuccessStyle lipgloss.Style
	TextWarningStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorAccent = p.Accent
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface)
	StatusKeyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true)
	StatusDirtyStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Background(ColorSurface)
	CursorStyle = lipgloss.NewStyle().
		Reverse(true)

	MarkupNormalStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	MarkupBoldStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	MarkupItalicStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Italic(true)
	MarkupHeader1Style = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true)
	MarkupHeader2Style = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	MarkupMonoStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	ListSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ListNormalStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	ListMetaStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
}

// MarkupStyle returns the lipgloss style used to paint a span of the given
// markup style. Unknown styles paint as normal text.
func MarkupStyle(s markup.Style) lipgloss.Style {
	switch s {
	case markup.Bold:
		return MarkupBoldStyle
	case markup.Italic:
		return MarkupItalicStyle
	case markup.Header1:
		return MarkupHeader1Style
	case markup.Header2:
		return MarkupHeader2Style
	case markup.Mono:
		return MarkupMonoStyle
	default:
		return MarkupNormalStyle
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	accent := colorHexPtr(ColorAccent)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)
	success := colorHexPtr(ColorSuccess)
	errc := colorHexPtr(ColorError)

	cfg.Document.Color = fg

	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = accent
	cfg.H3.Color = primary
	cfg.H4.Color = primary
	cfg.H5.Color = primary
	cfg.H6.Color = primary

	cfg.Strong.Color = primary
	cfg.Emph.Color = errc

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = success
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
