package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
	"github.com/verte-zerg/monkeytype-cli/internal/session"
)

type repeatWords []model.Word

func (r repeatWords) Generate(_ []model.Word, count int) []model.Word {
	out := make([]model.Word, count)
	for i := range out {
		out[i] = r[i%len(r)]
	}
	return out
}

func newTestModel(t *testing.T) (*Model, *session.Machine) {
	t.Helper()
	machine, err := session.New(
		model.Settings{WordCount: 2},
		[]model.Theme{testTheme()},
		session.WithWordSource(repeatWords{"go", "on"}),
	)
	if err != nil {
		t.Fatalf("new machine: %v", err)
	}
	return NewModel(machine), machine
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitArmsBlink(t *testing.T) {
	m, _ := newTestModel(t)
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected blink command from Init")
	}
}

func TestModelTypingFlow(t *testing.T) {
	m, machine := newTestModel(t)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if machine.State() != session.StateTypingTest {
		t.Fatalf("expected typing test, got %s", machine.State())
	}
	if !strings.Contains(m.View(), "Words: 2") {
		t.Fatalf("expected typing header in view:\n%s", m.View())
	}

	m.Update(keyRunes("go"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(keyRunes("on"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if machine.State() != session.StateResults {
		t.Fatalf("expected results, got %s", machine.State())
	}
	if !strings.Contains(m.View(), "Test Results") {
		t.Fatalf("expected results in view:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if machine.State() != session.StateMainMenu {
		t.Fatalf("expected main menu, got %s", machine.State())
	}
	if cmd == nil {
		t.Fatalf("expected blink to be re-armed on returning to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModelStaleBlinkIgnored(t *testing.T) {
	m, machine := newTestModel(t)
	eff := machine.Start()

	_, cmd := m.Update(blinkMsg{token: eff.BlinkToken})
	if cmd == nil {
		t.Fatalf("expected current blink to re-arm")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(blinkMsg{token: eff.BlinkToken})
	if cmd != nil {
		t.Fatalf("expected stale blink to be dropped")
	}
}

func TestModelIgnoresUnmappedKeys(t *testing.T) {
	m, machine := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Fatalf("expected no command for unmapped key")
	}
	if machine.State() != session.StateMainMenu {
		t.Fatalf("expected state unchanged, got %s", machine.State())
	}
}
