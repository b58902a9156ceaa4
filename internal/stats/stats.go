// Package stats contains scoring and run-history calculations.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

const sparkChars = " .:-=+*#%@"

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// Tally accumulates per-word submissions of a session.
type Tally struct {
	TotalTyped int
	Mistakes   int
}

// Record charges one submitted word. Every word costs its expected length
// plus one trailing separator, regardless of what was typed. It reports
// whether typed matched expected exactly.
func (t *Tally) Record(expected model.Word, typed string, mode model.ScoringMode) bool {
	t.TotalTyped += len(expected) + 1
	correct := typed == string(expected)
	if correct {
		return true
	}
	switch mode {
	case model.ScoringPerChar:
		t.Mistakes += EditDistance(typed, string(expected))
	default:
		t.Mistakes++
	}
	return false
}

// Finalize computes the score of a session. A zero start means the session
// ended before any keystroke.
func Finalize(start, end time.Time, totalTyped, mistakes int) model.Result {
	result := model.Result{
		TotalTyped: totalTyped,
		Mistakes:   mistakes,
	}
	if !start.IsZero() && end.After(start) {
		result.Elapsed = end.Sub(start)
	}
	if minutes := result.Elapsed.Minutes(); minutes > 0 {
		result.WPM = int(math.Round((float64(totalTyped) / charsPerWord) / minutes))
	}
	if totalTyped > 0 {
		acc := int(math.Round(float64(totalTyped-mistakes) / float64(totalTyped) * 100))
		if acc < 0 {
			acc = 0
		}
		result.Accuracy = acc
	}
	return result
}

// Summarize aggregates the sessions of this run, oldest first.
func Summarize(sessions []model.SessionAggregate) model.RunSummary {
	if len(sessions) == 0 {
		return model.RunSummary{}
	}
	summary := model.RunSummary{Tests: len(sessions)}
	wpms := make([]float64, len(sessions))
	var totalWPM, totalAcc float64
	for i, s := range sessions {
		wpms[i] = float64(s.WPM)
		totalWPM += float64(s.WPM)
		totalAcc += float64(s.Accuracy)
		if s.WPM > summary.BestWPM {
			summary.BestWPM = s.WPM
		}
	}
	count := float64(len(sessions))
	summary.AvgWPM = totalWPM / count
	summary.AvgAccuracy = totalAcc / count
	summary.Sparkline = Sparkline(wpms)
	return summary
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
