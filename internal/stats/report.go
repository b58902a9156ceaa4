package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
	"github.com/verte-zerg/monkeytype-cli/internal/store"
)

// historyWindow bounds how many recent sessions feed the run summary.
const historyWindow = 20

// History records finished sessions and summarizes the current run.
type History struct {
	store *store.Store
}

// NewHistory wraps a store.
func NewHistory(st *store.Store) *History {
	return &History{store: st}
}

// Record stores a finished session and returns the updated run summary.
func (h *History) Record(ctx context.Context, stats model.SessionStats) (model.RunSummary, error) {
	if _, err := h.store.InsertSession(ctx, stats); err != nil {
		return model.RunSummary{}, fmt.Errorf("failed to save session: %w", err)
	}
	return BuildReport(ctx, h.store)
}

// BuildReport summarizes the most recent sessions of the run.
func BuildReport(ctx context.Context, st *store.Store) (model.RunSummary, error) {
	sessions, err := st.ListSessions(ctx, historyWindow)
	if err != nil {
		return model.RunSummary{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	return Summarize(sessions), nil
}
