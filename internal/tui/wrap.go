package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/monkeytype-cli/internal/session"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(tv session.TypingView, st styles) []styledRune {
	out := []styledRune{}
	add := func(r rune, style func(...string) string) {
		out = append(out, styledRune{
			s:       style(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	space := func() {
		out = append(out, styledRune{s: " ", width: 1, isSpace: true})
	}

	for _, w := range tv.Done {
		style := st.correct
		if !w.Correct {
			style = st.incorrect
		}
		for _, r := range w.Text {
			add(r, style.Render)
		}
		space()
	}

	cursorIndex := len([]rune(tv.Input))
	for i, c := range tv.Current {
		style := st.currentWord
		switch c.Class {
		case session.CharCorrect:
			style = st.correct
		case session.CharIncorrect, session.CharExtra:
			style = st.incorrect
		}
		if i == cursorIndex && c.Class == session.CharPending {
			style = st.cursor
		}
		add(c.Char, style.Render)
	}

	for _, w := range tv.Upcoming {
		space()
		for _, r := range w {
			add(r, st.pending.Render)
		}
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
