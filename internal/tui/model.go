// Package tui implements the Bubble Tea front end of the editor: it turns
// terminal keys into editor events, paints the session through Screen, and
// hosts the save, load, new, help, and preview dialogs.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/mdpad/internal/core/config"
	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/core/logging"
	"github.com/colonyops/mdpad/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateEditing UIState = iota
	stateSaving
	stateLoading
	stateConfirmingNew
	stateShowingHelp
	stateShowingInfo
	statePreviewing
	stateConfirmingQuit
)

// Default screen size used until the terminal reports its size.
const (
	defaultWidth  = document.LineCapacity
	defaultHeight = document.MaxLines + bannerLines + 1
)

// Options configures the TUI.
type Options struct {
	Context  context.Context    // used for storage calls; defaults to Background
	Store    editor.Storage     // required
	Document *document.Document // initial content; defaults to empty
	Name     string             // name Document was loaded from
	Build    BuildInfo
}

// Model is the main Bubble Tea model for the editor.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	store   editor.Storage
	session *editor.Session
	screen  *Screen
	keys    KeyMap
	build   BuildInfo
	log     zerolog.Logger

	state      UIState
	saveDialog SaveDialog
	loadDialog LoadDialog
	confirm    components.ConfirmModal
	help       *components.HelpDialog
	info       *components.InfoDialog
	preview    *PreviewDialog
	quitModal  Modal

	width    int
	height   int
	quitting bool
}

// New creates the TUI model. The session is painted immediately so the first
// View shows the document.
func New(cfg *config.Config, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	screen := NewScreen()
	session := editor.NewSession(editor.Options{
		Renderer: screen,
		Document: opts.Document,
		Name:     opts.Name,
	})
	session.Redraw()

	return Model{
		ctx:     ctx,
		cfg:     cfg,
		store:   opts.Store,
		session: session,
		screen:  screen,
		keys:    NewKeyMap(cfg.Keybindings),
		build:   opts.Build,
		log:     logging.Component("tui"),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Session returns the edit session driven by the model.
func (m Model) Session() *editor.Session { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages such as cursor blinks only matter to the open dialog.
	var cmd tea.Cmd
	switch m.state {
	case stateSaving:
		m.saveDialog, cmd = m.saveDialog.Update(msg)
	case statePreviewing:
		cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// handleKey routes a key to the open dialog or, when none is open, to the
// edit session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.requestQuit()
	}

	switch m.state {
	case stateConfirmingQuit:
		return m.handleQuitModalKey(msg)
	case stateSaving:
		return m.handleSaveKey(msg)
	case stateLoading:
		return m.handleLoadKey(msg)
	case stateConfirmingNew:
		return m.handleConfirmNewKey(msg)
	case stateShowingHelp, stateShowingInfo:
		m.state = stateEditing
		m.help, m.info = nil, nil
		return m, nil
	case statePreviewing:
		cmd := m.preview.Update(msg)
		if m.preview.Closed() {
			m.state = stateEditing
			m.preview = nil
		}
		return m, cmd
	}

	for _, ev := range m.keys.Translate(msg) {
		if req := m.session.Handle(ev); req != editor.RequestNone {
			return m.handleRequest(req)
		}
	}
	return m, nil
}

// handleRequest opens the dialog for a function key.
func (m Model) handleRequest(req editor.Request) (tea.Model, tea.Cmd) {
	m.log.Debug().Stringer("request", req).Msg("function key")

	switch req {
	case editor.RequestSave:
		name := m.session.Name()
		if name == "" {
			name = m.cfg.DefaultName
		}
		m.saveDialog = NewSaveDialog(name)
		m.state = stateSaving
		return m, textinput.Blink

	case editor.RequestLoad:
		entries, err := m.store.List(m.ctx, m.cfg.Pattern)
		if err != nil {
			m.log.Error().Err(err).Msg("list documents")
			return m.showError(fmt.Sprintf("Could not list files: %v", err))
		}
		if len(entries) == 0 {
			return m.showError(noFilesMessage(m.cfg.Pattern))
		}
		m.loadDialog = NewLoadDialog(entries)
		m.state = stateLoading
		return m, nil

	case editor.RequestNew:
		m.confirm = components.NewConfirmModal("New File", "Clear all text? (Y/N)")
		m.state = stateConfirmingNew
		return m, nil

	case editor.RequestHelp:
		m.help = components.NewHelpDialog("Help", m.keys.HelpSections())
		m.state = stateShowingHelp
		return m, nil

	case editor.RequestPreview:
		m.preview = NewPreviewDialog(m.session.Snapshot(), m.width, m.height)
		m.state = statePreviewing
		return m, nil

	case editor.RequestQuit:
		return m.requestQuit()
	}
	return m, nil
}

// requestQuit exits right away when the document is saved and asks first
// when it is not. A second quit key while asking exits.
func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if !m.session.Modified() || m.state == stateConfirmingQuit {
		return m.quit()
	}
	m.quitModal = NewModal("Quit", "Discard unsaved changes?")
	m.state = stateConfirmingQuit
	return m, nil
}

func (m Model) handleQuitModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.quitModal.ConfirmSelected() {
			return m.quit()
		}
		m.state = stateEditing
	case "esc":
		m.state = stateEditing
	case "left", "right", "h", "l", "tab":
		m.quitModal.ToggleSelection()
	}
	return m, nil
}

func (m Model) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.saveDialog, cmd = m.saveDialog.Update(msg)

	switch {
	case m.saveDialog.Cancelled():
		m.state = stateEditing
		return m, nil
	case m.saveDialog.Submitted():
		name := m.saveDialog.Value()
		if err := m.session.Save(m.ctx, m.store, name); err != nil {
			return m.showError(fmt.Sprintf("Could not create file! %s", storageReason(err)))
		}
		return m.showInfo("Success", "File saved: "+name, components.InfoStatusPass)
	}
	return m, cmd
}

func (m Model) handleLoadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.loadDialog, _ = m.loadDialog.Update(msg)

	switch {
	case m.loadDialog.Cancelled():
		m.state = stateEditing
	case m.loadDialog.Chosen():
		name := m.loadDialog.Selected().Name
		if err := m.session.Load(m.ctx, m.store, name); err != nil {
			return m.showError(fmt.Sprintf("Could not open file! %s", storageReason(err)))
		}
		m.state = stateEditing
	}
	return m, nil
}

func (m Model) handleConfirmNewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)
	if m.confirm.Confirmed() {
		m.session.Reset()
	}
	if m.confirm.Done() {
		m.state = stateEditing
	}
	return m, nil
}

func (m Model) showError(message string) (tea.Model, tea.Cmd) {
	return m.showInfo("Error", message, components.InfoStatusFail)
}

func (m Model) showInfo(title, message string, status components.InfoStatus) (tea.Model, tea.Cmd) {
	m.info = components.NewInfoDialog(title, message, status)
	m.state = stateShowingInfo
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.session.Modified() {
		m.log.Warn().Str("name", m.session.Name()).Msg("quit with unsaved changes")
	}
	return m, tea.Quit
}

// noFilesMessage reports an empty listing, e.g. "No .md files found!" for
// the pattern "*.md".
func noFilesMessage(pattern string) string {
	if ext, ok := strings.CutPrefix(pattern, "*"); ok && ext != "" && !strings.ContainsAny(ext, "*?[{") {
		return fmt.Sprintf("No %s files found!", ext)
	}
	return fmt.Sprintf("No files matching %s found!", pattern)
}

// storageReason turns a storage error into a short user-facing reason.
func storageReason(err error) string {
	switch {
	case errors.Is(err, editor.ErrNotFound):
		return "File does not exist."
	case errors.Is(err, editor.ErrInvalidName):
		return "Invalid file name."
	case errors.Is(err, editor.ErrUnavailable):
		return "Storage unavailable."
	default:
		return err.Error()
	}
}
