// Package input maps terminal key messages onto state machine events.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/monkeytype-cli/internal/session"
)

const spacebar = " "

// KeyMap binds raw keys to abstract events.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings. Letters are never bound so
// that every printable key stays available for typing.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		Submit:    key.NewBinding(key.WithKeys(spacebar), key.WithHelp("space", "next word")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Translate converts one key message into events. Unmapped keys, pastes and
// alt-modified keys yield no events.
func (k KeyMap) Translate(msg tea.KeyMsg) []session.Event {
	if msg.Paste {
		return nil
	}
	switch {
	case key.Matches(msg, k.Quit):
		return []session.Event{session.Quit}
	case key.Matches(msg, k.Confirm):
		return []session.Event{session.Confirm}
	case key.Matches(msg, k.Cancel):
		return []session.Event{session.Cancel}
	case key.Matches(msg, k.Backspace):
		return []session.Event{session.Backspace}
	case key.Matches(msg, k.Up):
		return []session.Event{session.MoveUp}
	case key.Matches(msg, k.Down):
		return []session.Event{session.MoveDown}
	case key.Matches(msg, k.Submit):
		return []session.Event{session.Submit}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	events := make([]session.Event, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		switch {
		case r == ' ':
			events = append(events, session.Submit)
		case session.IsPrintable(r):
			events = append(events, session.Char(r))
		}
	}
	if len(events) == 0 {
		return nil
	}
	return events
}

// HelpFor returns the bindings worth showing on a screen.
func (k KeyMap) HelpFor(screen session.State) []key.Binding {
	switch screen {
	case session.StateMainMenu:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
	case session.StateOptions, session.StateThemeSelect:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
	case session.StateWordCountEntry:
		return []key.Binding{k.Backspace, k.Confirm, k.Cancel}
	case session.StateTypingTest:
		return []key.Binding{k.Submit, k.Backspace, k.Cancel}
	default:
		return []key.Binding{k.Quit}
	}
}
