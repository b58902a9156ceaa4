package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

// styles resolves a theme's role tokens into lipgloss styles.
type styles struct {
	title       lipgloss.Style
	subtle      lipgloss.Style
	correct     lipgloss.Style
	incorrect   lipgloss.Style
	pending     lipgloss.Style
	currentWord lipgloss.Style
	cursor      lipgloss.Style
	selected    lipgloss.Style
	item        lipgloss.Style
	box         lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	fg := func(role model.Role) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Token(role)))
	}
	primary := fg(model.RolePrimary)
	return styles{
		title:       primary.Bold(true),
		subtle:      fg(model.RoleSecondary),
		correct:     fg(model.RoleCorrect),
		incorrect:   fg(model.RoleIncorrect),
		pending:     fg(model.RoleNeutral),
		currentWord: primary,
		cursor:      primary.Underline(true),
		selected:    primary.Bold(true),
		item:        fg(model.RoleNeutral),
		box: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(theme.Token(model.RoleSecondary))),
	}
}
