// Package session implements the typing test state machine. It consumes
// abstract input events, owns the settings and the active test, and produces
// declarative view snapshots. It performs no terminal I/O.
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/generator"
	"github.com/verte-zerg/monkeytype-cli/internal/model"
	"github.com/verte-zerg/monkeytype-cli/internal/stats"
	"github.com/verte-zerg/monkeytype-cli/internal/wordlist"
)

const (
	// DefaultWordCount is the number of words per test unless configured.
	DefaultWordCount = 30
	// MaxWordCountDigits caps the word count entry buffer.
	MaxWordCountDigits = 4
	// BlinkInterval is the main menu blink period.
	BlinkInterval = 500 * time.Millisecond
)

// State is a screen of the machine.
type State int

const (
	StateMainMenu State = iota
	StateOptions
	StateWordCountEntry
	StateThemeSelect
	StateTypingTest
	StateResults
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StateOptions:
		return "options"
	case StateWordCountEntry:
		return "word-count"
	case StateThemeSelect:
		return "theme-select"
	case StateTypingTest:
		return "typing-test"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

const (
	mainStart = iota
	mainOptions
	mainThemes
	mainExit
)

var mainMenuItems = []string{"Start Test", "Options", "Themes", "Exit"}

const (
	optionWordCount = iota
	optionScoring
	optionBack
)

const optionCount = 3

// Effect tells the caller what to do after an event.
type Effect struct {
	Quit bool
	// ArmBlink asks for a blink tick carrying BlinkToken after BlinkInterval.
	ArmBlink   bool
	BlinkToken uint64
	// Result is set when a test has just finished.
	Result *model.Result
}

// WordSource draws the words of a test.
type WordSource interface {
	Generate(words []model.Word, count int) []model.Word
}

// Recorder stores finished tests and summarizes the run.
type Recorder interface {
	Record(ctx context.Context, stats model.SessionStats) (model.RunSummary, error)
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithWordSource overrides the random word source.
func WithWordSource(src WordSource) Option {
	return func(m *Machine) {
		m.source = src
	}
}

// WithVocabulary overrides the vocabulary.
func WithVocabulary(words []model.Word) Option {
	return func(m *Machine) {
		m.vocab = words
	}
}

// WithRecorder attaches run history.
func WithRecorder(r Recorder) Option {
	return func(m *Machine) {
		m.recorder = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// Machine is the typing test state machine. It is not safe for concurrent
// use; events must be handled in arrival order by a single goroutine.
type Machine struct {
	settings model.Settings
	themes   []model.Theme
	vocab    []model.Word
	source   WordSource
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time

	state        State
	mainIndex    int
	optionsIndex int
	themeIndex   int
	entry        string

	session    *Session
	result     model.Result
	summary    model.RunSummary
	hasSummary bool

	blinkToken uint64
	blinkOn    bool
}

// New returns a machine in the main menu. A non-positive word count falls
// back to DefaultWordCount and an out-of-range theme to the first theme.
func New(settings model.Settings, themes []model.Theme, opts ...Option) (*Machine, error) {
	if len(themes) == 0 {
		return nil, errors.New("at least one theme is required")
	}
	if settings.WordCount <= 0 {
		settings.WordCount = DefaultWordCount
	}
	if settings.Theme < 0 || settings.Theme >= len(themes) {
		settings.Theme = 0
	}
	m := &Machine{
		settings: settings,
		themes:   themes,
		state:    StateMainMenu,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.vocab == nil {
		m.vocab = wordlist.Default()
	}
	if len(m.vocab) == 0 {
		return nil, errors.New("vocabulary is empty")
	}
	if m.source == nil {
		m.source = generator.New()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m, nil
}

// Start arms the main menu blink for the initial screen.
func (m *Machine) Start() Effect {
	if m.state != StateMainMenu {
		return Effect{}
	}
	m.blinkToken++
	m.blinkOn = true
	return Effect{ArmBlink: true, BlinkToken: m.blinkToken}
}

// Blink handles a blink tick. Ticks armed before the machine last left the
// main menu are stale and ignored. It reports whether the tick was current,
// in which case the caller re-arms it with the same token.
func (m *Machine) Blink(token uint64) bool {
	if m.state != StateMainMenu || token != m.blinkToken {
		return false
	}
	m.blinkOn = !m.blinkOn
	return true
}

// State returns the current screen.
func (m *Machine) State() State {
	return m.state
}

// Settings returns the current settings.
func (m *Machine) Settings() model.Settings {
	return m.settings
}

// Session returns a copy of the active or just-finished test.
func (m *Machine) Session() (Session, bool) {
	if m.session == nil {
		return Session{}, false
	}
	return m.session.clone(), true
}

// Handle applies one event.
func (m *Machine) Handle(ev Event) Effect {
	if ev.Kind == EventQuit {
		m.logger.Debug("quit requested", "state", m.state)
		return Effect{Quit: true}
	}
	switch m.state {
	case StateMainMenu:
		return m.handleMainMenu(ev)
	case StateOptions:
		return m.handleOptions(ev)
	case StateWordCountEntry:
		return m.handleWordCount(ev)
	case StateThemeSelect:
		return m.handleThemeSelect(ev)
	case StateTypingTest:
		return m.handleTyping(ev)
	case StateResults:
		m.session = nil
		return m.enter(StateMainMenu)
	default:
		return Effect{}
	}
}

func (m *Machine) enter(next State) Effect {
	prev := m.state
	m.state = next
	if prev != next {
		m.logger.Debug("transition", "from", prev, "to", next)
	}
	if prev == StateMainMenu && next != StateMainMenu {
		// Invalidate any pending blink tick.
		m.blinkToken++
		m.blinkOn = false
	}
	if next == StateMainMenu && prev != StateMainMenu {
		m.blinkToken++
		m.blinkOn = true
		return Effect{ArmBlink: true, BlinkToken: m.blinkToken}
	}
	return Effect{}
}

func (m *Machine) handleMainMenu(ev Event) Effect {
	switch ev.Kind {
	case EventMoveUp:
		m.mainIndex = cycle(m.mainIndex, -1, len(mainMenuItems))
	case EventMoveDown:
		m.mainIndex = cycle(m.mainIndex, 1, len(mainMenuItems))
	case EventConfirm:
		switch m.mainIndex {
		case mainStart:
			m.session = newSession(m.source.Generate(m.vocab, m.settings.WordCount))
			return m.enter(StateTypingTest)
		case mainOptions:
			m.optionsIndex = optionWordCount
			return m.enter(StateOptions)
		case mainThemes:
			m.themeIndex = m.settings.Theme
			return m.enter(StateThemeSelect)
		case mainExit:
			return Effect{Quit: true}
		}
	}
	return Effect{}
}

func (m *Machine) handleOptions(ev Event) Effect {
	switch ev.Kind {
	case EventMoveUp:
		m.optionsIndex = cycle(m.optionsIndex, -1, optionCount)
	case EventMoveDown:
		m.optionsIndex = cycle(m.optionsIndex, 1, optionCount)
	case EventConfirm:
		switch m.optionsIndex {
		case optionWordCount:
			m.entry = strconv.Itoa(m.settings.WordCount)
			return m.enter(StateWordCountEntry)
		case optionScoring:
			if m.settings.Scoring == model.ScoringWholeWord {
				m.settings.Scoring = model.ScoringPerChar
			} else {
				m.settings.Scoring = model.ScoringWholeWord
			}
		case optionBack:
			return m.enter(StateMainMenu)
		}
	case EventCancel:
		return m.enter(StateMainMenu)
	}
	return Effect{}
}

func (m *Machine) handleWordCount(ev Event) Effect {
	switch ev.Kind {
	case EventChar:
		if ev.Char >= '0' && ev.Char <= '9' && len(m.entry) < MaxWordCountDigits {
			m.entry += string(ev.Char)
		}
	case EventBackspace:
		if len(m.entry) > 0 {
			m.entry = m.entry[:len(m.entry)-1]
		}
	case EventConfirm:
		if n, err := strconv.Atoi(m.entry); err == nil && n > 0 {
			m.settings.WordCount = n
		} else {
			m.logger.Debug("ignoring invalid word count", "input", m.entry)
		}
		m.entry = ""
		return m.enter(StateOptions)
	case EventCancel:
		m.entry = ""
		return m.enter(StateOptions)
	}
	return Effect{}
}

func (m *Machine) handleThemeSelect(ev Event) Effect {
	switch ev.Kind {
	case EventMoveUp:
		m.themeIndex = cycle(m.themeIndex, -1, len(m.themes))
	case EventMoveDown:
		m.themeIndex = cycle(m.themeIndex, 1, len(m.themes))
	case EventConfirm:
		m.settings.Theme = m.themeIndex
		return m.enter(StateMainMenu)
	case EventCancel:
		return m.enter(StateMainMenu)
	}
	return Effect{}
}

func (m *Machine) handleTyping(ev Event) Effect {
	s := m.session
	switch ev.Kind {
	case EventChar:
		if ev.Char == ' ' {
			return m.submit()
		}
		if !IsPrintable(ev.Char) {
			return Effect{}
		}
		if !s.Started() {
			s.StartedAt = m.now()
		}
		s.Input += string(ev.Char)
	case EventBackspace:
		if len(s.Input) > 0 {
			s.Input = s.Input[:len(s.Input)-1]
		}
	case EventSubmit:
		return m.submit()
	case EventCancel:
		m.logger.Debug("test aborted", "index", s.Index, "words", len(s.Words))
		m.session = nil
		return m.enter(StateMainMenu)
	}
	return Effect{}
}

func (m *Machine) submit() Effect {
	s := m.session
	if s.Input == "" || s.Done() {
		return Effect{}
	}
	correct := s.Tally.Record(s.current(), s.Input, m.settings.Scoring)
	s.Outcomes = append(s.Outcomes, correct)
	s.Index++
	s.Input = ""
	if !s.Done() {
		return Effect{}
	}
	return m.finish()
}

func (m *Machine) finish() Effect {
	s := m.session
	endedAt := m.now()
	m.result = stats.Finalize(s.StartedAt, endedAt, s.Tally.TotalTyped, s.Tally.Mistakes)
	m.hasSummary = false
	if m.recorder != nil {
		summary, err := m.recorder.Record(context.Background(), model.SessionStats{
			FinishedAt: endedAt,
			Words:      len(s.Words),
			Scoring:    m.settings.Scoring,
			Result:     m.result,
		})
		if err != nil {
			m.logger.Warn("failed to record session", "err", err)
		} else {
			m.summary = summary
			m.hasSummary = true
		}
	}
	m.logger.Debug("test finished", "wpm", m.result.WPM, "accuracy", m.result.Accuracy)
	eff := m.enter(StateResults)
	result := m.result
	eff.Result = &result
	return eff
}

// View returns a fresh snapshot of the current screen.
func (m *Machine) View() ViewState {
	theme := m.themes[m.settings.Theme]
	if m.state == StateThemeSelect {
		theme = m.themes[m.themeIndex]
	}
	vs := ViewState{
		Screen:   m.state,
		Theme:    copyTheme(theme),
		Settings: m.settings,
	}
	switch m.state {
	case StateMainMenu:
		vs.Blink = m.blinkOn
		vs.Menu = MenuView{
			Title:    "Main Menu",
			Items:    append([]string(nil), mainMenuItems...),
			Selected: m.mainIndex,
		}
	case StateOptions:
		vs.Menu = MenuView{
			Title: "Options",
			Items: []string{
				"Word Count: " + strconv.Itoa(m.settings.WordCount),
				"Scoring: " + m.settings.Scoring.String(),
				"Back",
			},
			Selected: m.optionsIndex,
		}
	case StateWordCountEntry:
		vs.Entry = EntryView{
			Label:     "Word Count",
			Buffer:    m.entry,
			Current:   m.settings.WordCount,
			MaxDigits: MaxWordCountDigits,
		}
	case StateThemeSelect:
		items := make([]string, len(m.themes))
		for i, t := range m.themes {
			items[i] = t.Name
		}
		vs.Menu = MenuView{Title: "Themes", Items: items, Selected: m.themeIndex}
	case StateTypingTest:
		vs.Typing = m.typingView()
	case StateResults:
		vs.Results = ResultsView{
			Result:     m.result,
			Scoring:    m.settings.Scoring,
			Summary:    m.summary,
			HasSummary: m.hasSummary,
		}
		if m.session != nil {
			vs.Results.Words = len(m.session.Words)
		}
	}
	return vs
}

func (m *Machine) typingView() TypingView {
	s := m.session
	tv := TypingView{
		Input:   s.Input,
		InputOK: true,
		Index:   s.Index,
		Total:   len(s.Words),
		Started: s.Started(),
	}
	tv.Done = make([]WordView, s.Index)
	for i := 0; i < s.Index; i++ {
		tv.Done[i] = WordView{Text: string(s.Words[i]), Correct: s.Outcomes[i]}
	}
	if !s.Done() {
		tv.Current, tv.InputOK = classify(s.current(), s.Input)
		tv.Upcoming = make([]string, 0, len(s.Words)-s.Index-1)
		for _, w := range s.Words[s.Index+1:] {
			tv.Upcoming = append(tv.Upcoming, string(w))
		}
	}
	return tv
}

func cycle(index, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}
