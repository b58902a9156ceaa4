package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/monkeytype-cli/internal/input"
	"github.com/verte-zerg/monkeytype-cli/internal/session"
	"github.com/verte-zerg/monkeytype-cli/internal/stats"
)

const (
	appTitle     = "CLI Monkeytype"
	blinkGlyph   = "_"
	contentRatio = 0.70
)

func render(vs session.ViewState, keys input.KeyMap, h help.Model, width, height int) string {
	st := newStyles(vs.Theme)
	var body string
	switch vs.Screen {
	case session.StateMainMenu:
		body = renderMainMenu(vs, st)
	case session.StateOptions, session.StateThemeSelect:
		body = renderMenu(vs.Menu, st)
	case session.StateWordCountEntry:
		body = renderEntry(vs.Entry, st)
	case session.StateTypingTest:
		body = renderTyping(vs.Typing, st, width)
	case session.StateResults:
		body = renderResults(vs.Results, st)
	}

	h.Styles.ShortKey = st.currentWord
	h.Styles.ShortDesc = st.subtle
	h.Styles.ShortSeparator = st.subtle
	helpLine := h.ShortHelpView(keys.HelpFor(vs.Screen))

	content := lipgloss.JoinVertical(lipgloss.Left, body, "", helpLine)
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderTitle(vs session.ViewState, st styles) string {
	cursor := " "
	if vs.Screen == session.StateMainMenu && vs.Blink {
		cursor = blinkGlyph
	}
	return st.title.Render(appTitle + cursor)
}

func renderSettingsLine(vs session.ViewState, st styles) string {
	line := fmt.Sprintf("Words: %d | Theme: %s | Scoring: %s", vs.Settings.WordCount, vs.Theme.Name, vs.Settings.Scoring)
	return st.subtle.Render(line)
}

func renderMainMenu(vs session.ViewState, st styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTitle(vs, st),
		renderSettingsLine(vs, st),
		"",
		renderMenuItems(vs.Menu, st),
	)
}

func renderMenu(menu session.MenuView, st styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(menu.Title),
		"",
		renderMenuItems(menu, st),
	)
}

func renderMenuItems(menu session.MenuView, st styles) string {
	lines := make([]string, len(menu.Items))
	for i, item := range menu.Items {
		if i == menu.Selected {
			lines[i] = st.selected.Render("> " + item)
		} else {
			lines[i] = st.item.Render("  " + item)
		}
	}
	return strings.Join(lines, "\n")
}

func renderEntry(entry session.EntryView, st styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(entry.Label),
		st.subtle.Render(fmt.Sprintf("Current: %d", entry.Current)),
		"",
		st.item.Render("> ")+st.currentWord.Render(entry.Buffer)+st.cursor.Render(" "),
		"",
		st.subtle.Render(fmt.Sprintf("Digits only, up to %d. Empty or 0 keeps the current value.", entry.MaxDigits)),
	)
}

func renderTyping(tv session.TypingView, st styles, width int) string {
	header := st.title.Render(appTitle) + "  " + st.subtle.Render(fmt.Sprintf("Words: %d | Press ESC to quit", tv.Total))

	runes := buildStyledRunes(tv, st)
	words := renderStyledRunes(runes)
	if width > 0 {
		contentWidth := int(float64(width) * contentRatio)
		if contentWidth < 1 {
			contentWidth = 1
		}
		words = lipgloss.NewStyle().Width(contentWidth).Render(wrapStyledRunes(runes, contentWidth))
	}

	inputStyle := st.correct
	if !tv.InputOK {
		inputStyle = st.incorrect
	}
	inputLine := inputStyle.Render(tv.Input) + st.cursor.Render(" ")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		words,
		"",
		inputLine,
		"",
		renderProgress(tv, st),
	)
}

func renderProgress(tv session.TypingView, st styles) string {
	progress := 0
	if tv.Total > 0 {
		progress = int(float64(tv.Index) / float64(tv.Total) * 100)
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress), fmt.Sprintf("Word %d/%d", min(tv.Index+1, tv.Total), tv.Total)}
	if !tv.Started {
		segments = append(segments, "Timer starts on your first key")
	}
	return st.subtle.Render(strings.Join(segments, "  "))
}

func renderResults(rv session.ResultsView, st styles) string {
	res := rv.Result
	rows := [][]string{
		{"Time:", fmt.Sprintf("%.2f seconds", res.ElapsedSeconds())},
		{"Words Per Minute (WPM):", fmt.Sprintf("%d", res.WPM)},
		{"Accuracy:", fmt.Sprintf("%d%%", res.Accuracy)},
		{"Characters Typed:", fmt.Sprintf("%d", res.TotalTyped)},
		{"Mistakes:", fmt.Sprintf("%d", res.Mistakes)},
		{"Scoring:", rv.Scoring.String()},
	}
	lines := []string{st.title.Render("Test Results"), ""}
	for _, line := range stats.FormatTable(nil, rows, map[int]bool{1: true}) {
		lines = append(lines, st.item.Render(line))
	}
	if rv.HasSummary && rv.Summary.Tests > 0 {
		s := rv.Summary
		lines = append(lines, "",
			st.subtle.Render(fmt.Sprintf("Recent tests: %d  Best %d WPM  Avg %.1f WPM · %.1f%%", s.Tests, s.BestWPM, s.AvgWPM, s.AvgAccuracy)),
			st.subtle.Render("WPM trend ")+st.currentWord.Render("["+s.Sparkline+"]"),
		)
	}
	lines = append(lines, "", st.correct.Render("Press any key to continue..."))
	return st.box.Render(strings.Join(lines, "\n"))
}
