package session

import (
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
	"github.com/verte-zerg/monkeytype-cli/internal/stats"
)

// Session is the mutable state of one typing test.
type Session struct {
	Words     []model.Word
	Index     int
	Input     string
	StartedAt time.Time
	Tally     stats.Tally
	// Outcomes holds the correctness of each submitted word.
	Outcomes []bool
}

func newSession(words []model.Word) *Session {
	return &Session{
		Words:    words,
		Outcomes: make([]bool, 0, len(words)),
	}
}

// Mistakes returns the mistakes charged so far.
func (s *Session) Mistakes() int {
	return s.Tally.Mistakes
}

// TotalTyped returns the characters and separators charged so far.
func (s *Session) TotalTyped() int {
	return s.Tally.TotalTyped
}

// Started reports whether the first keystroke has happened.
func (s *Session) Started() bool {
	return !s.StartedAt.IsZero()
}

// Done reports whether every word has been submitted.
func (s *Session) Done() bool {
	return s.Index >= len(s.Words)
}

func (s *Session) current() model.Word {
	if s.Done() {
		return ""
	}
	return s.Words[s.Index]
}

func (s *Session) clone() Session {
	c := *s
	c.Words = append([]model.Word(nil), s.Words...)
	c.Outcomes = append([]bool(nil), s.Outcomes...)
	return c
}
