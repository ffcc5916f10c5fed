package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mdpad/internal/core/config"
	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/store/textfile"
	"github.com/colonyops/mdpad/pkg/tuitest"
)

func newTestModel(t *testing.T, lines ...string) (Model, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Keybindings = config.DefaultKeybindings()

	m := New(&cfg, Options{
		Store:    textfile.New(dir, cfg.MaxListed),
		Document: document.FromLines(lines),
	})
	return m, dir
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func view(m Model) string {
	return tuitest.StripANSI(m.View())
}

func TestModel_InitialViewShowsBannerAndStatus(t *testing.T) {
	m, _ := newTestModel(t, "# Title", "body")

	out := view(m)
	assert.Contains(t, out, bannerTitle)
	assert.Contains(t, out, "# Title")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "F1:Save  F3:Load  F5:New  F7:Help  Line: 1/21")
	assert.Contains(t, out, "[untitled]")
}

func TestModel_TypingOverwritesAtCursor(t *testing.T) {
	m, _ := newTestModel(t, "abc")

	m, _ = send(t, m, tuitest.Type("xy")...)

	assert.Equal(t, "xyc", m.Session().Line(0))
	assert.Equal(t, editor.Cursor{Row: 0, Col: 2}, m.Session().Cursor())
	assert.Contains(t, view(m), "[+]")
}

func TestModel_PasteTypesEachCharacter(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tuitest.Paste("ab\ncd"))

	assert.Equal(t, "ab", m.Session().Line(0))
	assert.Equal(t, "cd", m.Session().Line(1))
}

func TestModel_SaveWritesFile(t *testing.T) {
	m, dir := newTestModel(t)
	m, _ = send(t, m, tuitest.Type("hello")...)

	m, _ = send(t, m, tuitest.Key(tea.KeyF1))
	require.Equal(t, stateSaving, m.state)
	assert.Contains(t, view(m), "Save File")
	assert.Equal(t, "md.txt", m.saveDialog.Value())

	m, _ = send(t, m, tuitest.KeyEnter())
	require.Equal(t, stateShowingInfo, m.state)
	assert.Contains(t, view(m), "File saved: md.txt")

	data, err := os.ReadFile(filepath.Join(dir, "md.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
	assert.False(t, m.Session().Modified())
	assert.Equal(t, editor.Cursor{Row: 0, Col: 5}, m.Session().Cursor())

	m, _ = send(t, m, tuitest.KeyPress('x'))
	assert.Equal(t, stateEditing, m.state)
	assert.Equal(t, "hello", m.Session().Line(0), "dismiss key is not typed")
}

func TestModel_SaveCustomName(t *testing.T) {
	m, dir := newTestModel(t, "text")

	m, _ = send(t, m, tuitest.Key(tea.KeyF1))
	for range len("md.txt") {
		m, _ = send(t, m, tuitest.KeyBackspace())
	}
	m, _ = send(t, m, tuitest.Type("notes.md")...)
	m, _ = send(t, m, tuitest.KeyEnter())

	assert.FileExists(t, filepath.Join(dir, "notes.md"))
	assert.Equal(t, "notes.md", m.Session().Name())
}

func TestModel_SaveRejectsInvalidName(t *testing.T) {
	m, _ := newTestModel(t, "text")

	m, _ = send(t, m, tuitest.Key(tea.KeyF1))
	m, _ = send(t, m, tuitest.KeyPress('/'))
	m, _ = send(t, m, tuitest.KeyEnter())

	assert.Equal(t, stateSaving, m.state)
	assert.Contains(t, view(m), "path separators")
}

func TestModel_SaveEscCancels(t *testing.T) {
	m, dir := newTestModel(t, "text")

	m, _ = send(t, m, tuitest.Key(tea.KeyF1), tuitest.KeyEsc())

	assert.Equal(t, stateEditing, m.state)
	assert.NoFileExists(t, filepath.Join(dir, "md.txt"))
}

func TestModel_LoadWithNoFiles(t *testing.T) {
	m, _ := newTestModel(t, "keep")

	m, _ = send(t, m, tuitest.Key(tea.KeyF3))

	require.Equal(t, stateShowingInfo, m.state)
	assert.Contains(t, view(m), "No .md files found!")
	assert.Equal(t, "keep", m.Session().Line(0))
}

func TestModel_LoadPicksFile(t *testing.T) {
	m, dir := newTestModel(t, "old")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("first\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("**second**\nline two\n"), 0o644))

	m, _ = send(t, m, tuitest.Key(tea.KeyF3))
	require.Equal(t, stateLoading, m.state)
	out := view(m)
	assert.Contains(t, out, "Load File")
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, "b.md")

	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyEnter())

	assert.Equal(t, stateEditing, m.state)
	assert.Equal(t, "**second**", m.Session().Line(0))
	assert.Equal(t, "line two", m.Session().Line(1))
	assert.Equal(t, "b.md", m.Session().Name())
	assert.Equal(t, editor.Cursor{}, m.Session().Cursor())
}

func TestModel_LoadEscKeepsDocument(t *testing.T) {
	m, dir := newTestModel(t, "old")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("first\n"), 0o644))

	m, _ = send(t, m, tuitest.Key(tea.KeyF3), tuitest.KeyEsc())

	assert.Equal(t, stateEditing, m.state)
	assert.Equal(t, "old", m.Session().Line(0))
}

func TestModel_NewFileConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		answer tea.KeyMsg
		want   string
	}{
		{name: "yes clears", answer: tuitest.KeyPress('y'), want: ""},
		{name: "upper Y clears", answer: tuitest.KeyPress('Y'), want: ""},
		{name: "no keeps", answer: tuitest.KeyPress('n'), want: "text"},
		{name: "enter keeps", answer: tuitest.KeyEnter(), want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, "text")

			m, _ = send(t, m, tuitest.Key(tea.KeyF5))
			require.Equal(t, stateConfirmingNew, m.state)
			assert.Contains(t, view(m), "Clear all text? (Y/N)")

			m, _ = send(t, m, tt.answer)
			assert.Equal(t, stateEditing, m.state)
			assert.Equal(t, tt.want, m.Session().Line(0))
		})
	}
}

func TestModel_HelpDialog(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tuitest.Key(tea.KeyF7))
	require.Equal(t, stateShowingHelp, m.state)
	out := view(m)
	assert.Contains(t, out, "save document")
	assert.Contains(t, out, "f1/ctrl+s")

	m, _ = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateEditing, m.state)
}

func TestModel_PreviewDialog(t *testing.T) {
	m, _ := newTestModel(t, "# Heading", "some **bold** words")
	m, _ = send(t, m, tuitest.WindowSize(100, 30))

	m, _ = send(t, m, tuitest.Key(tea.KeyF9))
	require.Equal(t, statePreviewing, m.state)
	out := view(m)
	assert.Contains(t, out, "Preview")
	assert.Contains(t, out, "bold")

	m, _ = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateEditing, m.state)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, tuitest.Key(tea.KeyCtrlQ))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_QuitWithUnsavedChangesAsks(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tuitest.KeyPress('a'))

	m, cmd := send(t, m, tuitest.Key(tea.KeyCtrlQ))
	assert.Nil(t, cmd)
	require.Equal(t, stateConfirmingQuit, m.state)
	assert.Contains(t, view(m), "Discard unsaved changes?")

	// Enter on the default button cancels.
	m, cmd = send(t, m, tuitest.KeyEnter())
	assert.Nil(t, cmd)
	assert.Equal(t, stateEditing, m.state)

	m, _ = send(t, m, tuitest.Key(tea.KeyCtrlQ), tuitest.Key(tea.KeyLeft))
	m, cmd = send(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_SecondQuitKeyExits(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tuitest.KeyPress('a'), tuitest.Key(tea.KeyCtrlC))
	require.Equal(t, stateConfirmingQuit, m.state)

	_, cmd := send(t, m, tuitest.Key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestNoFilesMessage(t *testing.T) {
	assert.Equal(t, "No .md files found!", noFilesMessage("*.md"))
	assert.Equal(t, "No files matching *.{md,txt} found!", noFilesMessage("*.{md,txt}"))
	assert.Equal(t, "No files matching notes found!", noFilesMessage("notes"))
}
