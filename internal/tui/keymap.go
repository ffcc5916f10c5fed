package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/mdpad/internal/core/config"
	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/internal/core/editor"
	"github.com/colonyops/mdpad/internal/tui/components"
)

// KeyMap maps terminal keys to editor key events. Function key bindings come
// from config; cursor and editing keys are fixed.
type KeyMap struct {
	Save    key.Binding
	Load    key.Binding
	New     key.Binding
	Help    key.Binding
	Preview key.Binding
	Quit    key.Binding

	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Backspace key.Binding
}

// NewKeyMap builds a key map from action -> keys bindings as found in
// config.Config.Keybindings.
func NewKeyMap(bindings map[string][]string) KeyMap {
	bind := func(action, desc string) key.Binding {
		keys := bindings[action]
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	return KeyMap{
		Save:    bind(config.ActionSave, "save document"),
		Load:    bind(config.ActionLoad, "load document"),
		New:     bind(config.ActionNew, "clear document"),
		Help:    bind(config.ActionHelp, "show this help"),
		Preview: bind(config.ActionPreview, "preview rendered markdown"),
		Quit:    bind(config.ActionQuit, "quit"),

		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "line up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "line down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "column left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "column right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete to end of line")),
	}
}

// DefaultKeyMap returns the key map for the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeybindings())
}

// Translate converts a terminal key message into editor events. Printable
// ASCII characters become character events; a paste yields one event per
// character. Unmapped keys yield nothing.
func (k KeyMap) Translate(msg tea.KeyMsg) []editor.KeyEvent {
	if kind, ok := k.kindFor(msg); ok {
		return []editor.KeyEvent{editor.Key(kind)}
	}

	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return nil
	}

	events := make([]editor.KeyEvent, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == '\n' && msg.Paste {
			events = append(events, editor.Key(editor.KeyEnter))
			continue
		}
		if !document.IsPrintable(r) {
			continue
		}
		events = append(events, editor.Char(byte(r)))
	}
	return events
}

func (k KeyMap) kindFor(msg tea.KeyMsg) (editor.KeyKind, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return editor.KeyQuit, true
	case key.Matches(msg, k.Save):
		return editor.KeySave, true
	case key.Matches(msg, k.Load):
		return editor.KeyLoad, true
	case key.Matches(msg, k.New):
		return editor.KeyNew, true
	case key.Matches(msg, k.Help):
		return editor.KeyHelp, true
	case key.Matches(msg, k.Preview):
		return editor.KeyPreview, true
	case key.Matches(msg, k.Up):
		return editor.KeyUp, true
	case key.Matches(msg, k.Down):
		return editor.KeyDown, true
	case key.Matches(msg, k.Left):
		return editor.KeyLeft, true
	case key.Matches(msg, k.Right):
		return editor.KeyRight, true
	case key.Matches(msg, k.Enter):
		return editor.KeyEnter, true
	case key.Matches(msg, k.Backspace):
		return editor.KeyBackspace, true
	}
	return editor.KeyNone, false
}

// StatusHints returns the "F1:Save  F3:Load  F5:New  F7:Help" portion of the
// status line, using the first key bound to each action.
func (k KeyMap) StatusHints() string {
	hints := []struct {
		b    key.Binding
		name string
	}{
		{k.Save, "Save"},
		{k.Load, "Load"},
		{k.New, "New"},
		{k.Help, "Help"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		keys := h.b.Keys()
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, strings.ToUpper(keys[0])+":"+h.name)
	}
	return strings.Join(parts, "  ")
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Files", []key.Binding{k.Save, k.Load, k.New, k.Preview}},
		{"Editing", []key.Binding{k.arrows(), k.Enter, k.Backspace}},
		{"General", []key.Binding{k.Help, k.Quit}},
	}

	sections := make([]components.HelpDialogSection, 0, len(groups))
	for _, g := range groups {
		section := components.HelpDialogSection{Title: g.title}
		for _, b := range g.bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			section.Entries = append(section.Entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		sections = append(sections, section)
	}
	return sections
}

// arrows folds the four cursor keys into one help entry.
func (k KeyMap) arrows() key.Binding {
	var keys []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Left, k.Right} {
		keys = append(keys, b.Keys()...)
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp("↑/↓/←/→", "move cursor"))
}
