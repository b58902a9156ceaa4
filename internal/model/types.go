// Package model defines shared data structures.
package model

import "time"

// Word is a single vocabulary token.
type Word string

// ScoringMode selects how a mistyped word is charged.
type ScoringMode int

const (
	// ScoringWholeWord charges one mistake per mismatched word.
	ScoringWholeWord ScoringMode = iota
	// ScoringPerChar charges the edit distance between typed and expected text.
	ScoringPerChar
)

// String returns the display label of the mode.
func (m ScoringMode) String() string {
	switch m {
	case ScoringPerChar:
		return "Per character"
	default:
		return "Whole word"
	}
}

// Role is a semantic styling role a theme assigns a token to.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleCorrect
	RoleIncorrect
	RoleNeutral
)

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	case RoleCorrect:
		return "correct"
	case RoleIncorrect:
		return "incorrect"
	case RoleNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Roles lists every role in display order.
var Roles = []Role{RolePrimary, RoleSecondary, RoleCorrect, RoleIncorrect, RoleNeutral}

// Theme maps semantic roles to opaque style tokens.
type Theme struct {
	Name   string
	Tokens map[Role]string
}

// Token returns the style token for a role, or "" when unset.
func (t Theme) Token(r Role) string {
	return t.Tokens[r]
}

// Settings holds the run-wide test configuration.
type Settings struct {
	WordCount int
	Theme     int
	Scoring   ScoringMode
}

// Result is the finalized score of a typing session.
type Result struct {
	Elapsed    time.Duration
	WPM        int
	Accuracy   int
	TotalTyped int
	Mistakes   int
}

// ElapsedSeconds returns the elapsed time in seconds.
func (r Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// SessionStats captures a completed typing session for the run history.
type SessionStats struct {
	FinishedAt time.Time
	Words      int
	Scoring    ScoringMode
	Result     Result
}

// SessionAggregate summarizes a stored session.
type SessionAggregate struct {
	SessionID int64
	EndedAt   time.Time
	WPM       int
	Accuracy  int
}

// RunSummary aggregates the sessions finished during this run.
type RunSummary struct {
	Tests       int
	BestWPM     int
	AvgWPM      float64
	AvgAccuracy float64
	Sparkline   string
}
