// Package tui provides the Bubble Tea front end: it feeds key messages to the
// session state machine and renders its view snapshots.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/monkeytype-cli/internal/input"
	"github.com/verte-zerg/monkeytype-cli/internal/session"
)

type blinkMsg struct {
	token uint64
}

// Model implements tea.Model around a session.Machine.
type Model struct {
	machine *session.Machine
	keys    input.KeyMap
	help    help.Model

	width  int
	height int
}

// NewModel constructs the typing TUI model.
func NewModel(machine *session.Machine) *Model {
	return &Model{
		machine: machine,
		keys:    input.DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.apply(m.machine.Start())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case blinkMsg:
		if m.machine.Blink(msg.token) {
			return m, blinkCmd(msg.token)
		}
		return m, nil
	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, ev := range m.keys.Translate(msg) {
			eff := m.machine.Handle(ev)
			if eff.Quit {
				return m, tea.Quit
			}
			if cmd := m.apply(eff); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return render(m.machine.View(), m.keys, m.help, m.width, m.height)
}

func (m *Model) apply(eff session.Effect) tea.Cmd {
	if eff.Quit {
		return tea.Quit
	}
	if eff.ArmBlink {
		return blinkCmd(eff.BlinkToken)
	}
	return nil
}

func blinkCmd(token uint64) tea.Cmd {
	return tea.Tick(session.BlinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{token: token}
	})
}
