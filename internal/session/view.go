package session

import "github.com/verte-zerg/monkeytype-cli/internal/model"

// CharClass classifies one character of the word in progress.
type CharClass int

const (
	CharPending CharClass = iota
	CharCorrect
	CharIncorrect
	// CharExtra is a typed character past the end of the expected word.
	CharExtra
)

// CharView is one classified character.
type CharView struct {
	Char  rune
	Class CharClass
}

// WordView is a submitted word and whether it matched.
type WordView struct {
	Text    string
	Correct bool
}

// MenuView lists selectable items.
type MenuView struct {
	Title    string
	Items    []string
	Selected int
}

// EntryView is the word count input buffer.
type EntryView struct {
	Label     string
	Buffer    string
	Current   int
	MaxDigits int
}

// TypingView describes the test in progress.
type TypingView struct {
	Done     []WordView
	Current  []CharView
	Upcoming []string
	Input    string
	// InputOK is true while Input is a prefix of the current word.
	InputOK bool
	Index   int
	Total   int
	Started bool
}

// ResultsView is the score of the just-finished test.
type ResultsView struct {
	Result     model.Result
	Words      int
	Scoring    model.ScoringMode
	Summary    model.RunSummary
	HasSummary bool
}

// ViewState is a snapshot of everything the renderer needs. Only the
// section matching Screen is populated.
type ViewState struct {
	Screen   State
	Theme    model.Theme
	Settings model.Settings
	// Blink is the main menu blink element's visibility.
	Blink   bool
	Menu    MenuView
	Entry   EntryView
	Typing  TypingView
	Results ResultsView
}

func copyTheme(t model.Theme) model.Theme {
	tokens := make(map[model.Role]string, len(t.Tokens))
	for role, token := range t.Tokens {
		tokens[role] = token
	}
	return model.Theme{Name: t.Name, Tokens: tokens}
}

func classify(expected model.Word, input string) ([]CharView, bool) {
	want := []rune(string(expected))
	got := []rune(input)
	chars := make([]CharView, 0, max(len(want), len(got)))
	ok := len(got) <= len(want)
	for i, r := range want {
		class := CharPending
		if i < len(got) {
			if got[i] == r {
				class = CharCorrect
			} else {
				class = CharIncorrect
				ok = false
			}
		}
		chars = append(chars, CharView{Char: r, Class: class})
	}
	for i := len(want); i < len(got); i++ {
		chars = append(chars, CharView{Char: got[i], Class: CharExtra})
	}
	return chars, ok
}
