package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

func TestTallyRecordCorrectWord(t *testing.T) {
	var tally Tally
	if !tally.Record("the", "the", model.ScoringWholeWord) {
		t.Fatalf("expected exact match to be correct")
	}
	if tally.TotalTyped != 4 || tally.Mistakes != 0 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestTallyRecordWholeWordMismatch(t *testing.T) {
	var tally Tally
	if tally.Record("the", "teh", model.ScoringWholeWord) {
		t.Fatalf("expected mismatch")
	}
	if tally.TotalTyped != 4 {
		t.Fatalf("expected totalTyped 4, got %d", tally.TotalTyped)
	}
	if tally.Mistakes != 1 {
		t.Fatalf("expected 1 mistake, got %d", tally.Mistakes)
	}

	tally.Record("be", "beeeeeee", model.ScoringWholeWord)
	if tally.TotalTyped != 7 || tally.Mistakes != 2 {
		t.Fatalf("typed length must not affect charges: %+v", tally)
	}
}

func TestTallyRecordPerChar(t *testing.T) {
	var tally Tally
	tally.Record("the", "teh", model.ScoringPerChar)
	if tally.Mistakes != 2 {
		t.Fatalf("expected 2 mistakes for transposition, got %d", tally.Mistakes)
	}
	tally.Record("about", "abot", model.ScoringPerChar)
	if tally.Mistakes != 3 {
		t.Fatalf("expected 3 mistakes, got %d", tally.Mistakes)
	}
	if tally.TotalTyped != 10 {
		t.Fatalf("expected totalTyped 10, got %d", tally.TotalTyped)
	}
}

func TestTallyRecordIdempotentAcrossSessions(t *testing.T) {
	var a, b Tally
	a.Record("people", "people", model.ScoringWholeWord)
	a.Record("people", "people", model.ScoringWholeWord)
	b.Record("people", "people", model.ScoringWholeWord)
	b.Record("people", "people", model.ScoringWholeWord)
	if a != b {
		t.Fatalf("expected identical tallies, got %+v and %+v", a, b)
	}
}

func TestFinalize(t *testing.T) {
	start := time.Unix(1000, 0)
	res := Finalize(start, start.Add(30*time.Second), 100, 5)
	if res.WPM != 40 {
		t.Fatalf("expected 40 wpm, got %d", res.WPM)
	}
	if res.Accuracy != 95 {
		t.Fatalf("expected 95%% accuracy, got %d", res.Accuracy)
	}
	if res.ElapsedSeconds() != 30 {
		t.Fatalf("expected 30s elapsed, got %v", res.ElapsedSeconds())
	}
	if res.TotalTyped != 100 || res.Mistakes != 5 {
		t.Fatalf("counters not carried: %+v", res)
	}
}

func TestFinalizeRounds(t *testing.T) {
	start := time.Unix(0, 0)
	res := Finalize(start, start.Add(7*time.Second), 10, 1)
	// (10/5) / (7/60) = 17.14
	if res.WPM != 17 {
		t.Fatalf("expected 17 wpm, got %d", res.WPM)
	}
	if res.Accuracy != 90 {
		t.Fatalf("expected 90%% accuracy, got %d", res.Accuracy)
	}
	res = Finalize(start, start.Add(time.Minute), 3, 1)
	// 66.67%
	if res.Accuracy != 67 {
		t.Fatalf("expected 67%% accuracy, got %d", res.Accuracy)
	}
}

func TestFinalizeZeroTyped(t *testing.T) {
	start := time.Unix(0, 0)
	for _, elapsed := range []time.Duration{0, time.Second, time.Hour} {
		res := Finalize(start, start.Add(elapsed), 0, 0)
		if res.WPM != 0 || res.Accuracy != 0 {
			t.Fatalf("expected zero score for no typing after %v, got %+v", elapsed, res)
		}
	}
}

func TestFinalizeZeroElapsed(t *testing.T) {
	start := time.Unix(0, 0)
	res := Finalize(start, start, 10, 0)
	if res.WPM != 0 {
		t.Fatalf("expected 0 wpm for zero elapsed, got %d", res.WPM)
	}
	if res.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %d", res.Accuracy)
	}
}

func TestFinalizeNotStarted(t *testing.T) {
	res := Finalize(time.Time{}, time.Now(), 10, 0)
	if res.Elapsed != 0 || res.WPM != 0 {
		t.Fatalf("expected zero elapsed and wpm without a start time, got %+v", res)
	}
}

func TestFinalizeClampsAccuracy(t *testing.T) {
	start := time.Unix(0, 0)
	res := Finalize(start, start.Add(time.Second), 4, 9)
	if res.Accuracy != 0 {
		t.Fatalf("expected accuracy clamped to 0, got %d", res.Accuracy)
	}
}

func TestSummarize(t *testing.T) {
	sessions := []model.SessionAggregate{
		{SessionID: 1, WPM: 40, Accuracy: 90},
		{SessionID: 2, WPM: 60, Accuracy: 100},
		{SessionID: 3, WPM: 50, Accuracy: 95},
	}
	summary := Summarize(sessions)
	if summary.Tests != 3 || summary.BestWPM != 60 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AvgWPM != 50 || summary.AvgAccuracy != 95 {
		t.Fatalf("unexpected averages: %+v", summary)
	}
	if summary.Sparkline != " @+" {
		t.Fatalf("unexpected sparkline: %q", summary.Sparkline)
	}
	if got := Summarize(nil); got != (model.RunSummary{}) {
		t.Fatalf("expected empty summary, got %+v", got)
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
}
