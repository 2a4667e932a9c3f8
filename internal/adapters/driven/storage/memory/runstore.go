package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
// Reports are held newest-last.
type RunStore struct {
	mu      sync.RWMutex
	reports []domain.RunReport
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Record logs a completed run.
func (s *RunStore) Record(_ context.Context, report *domain.RunReport) error {
	if report == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, *report)
	return nil
}

// LastRun returns the most recent recorded run, or nil when none exists.
func (s *RunStore) LastRun(_ context.Context) (*domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.reports) == 0 {
		return nil, nil
	}
	report := s.reports[len(s.reports)-1]
	return &report, nil
}

// History returns recent runs, most recent first.
func (s *RunStore) History(_ context.Context, limit int) ([]domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.reports)
	if limit > n {
		limit = n
	}
	history := make([]domain.RunReport, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		history = append(history, s.reports[i])
	}
	return history, nil
}

// Prune keeps only the most recent 'keep' runs.
func (s *RunStore) Prune(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep < 0 {
		return domain.ErrInvalidInput
	}
	if len(s.reports) > keep {
		s.reports = append([]domain.RunReport(nil), s.reports[len(s.reports)-keep:]...)
	}
	return nil
}
