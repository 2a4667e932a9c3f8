package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driving"
)

// mockOrchestrator implements driving.Orchestrator for command tests.
type mockOrchestrator struct {
	report    *domain.RunReport
	err       error
	state     domain.ScheduleState
	startErr  error
	stopped   bool
	ranJob    string
	ranAll    bool
	periodicI time.Duration
}

var _ driving.Orchestrator = (*mockOrchestrator)(nil)

func (m *mockOrchestrator) RunAll(_ context.Context, _ domain.Trigger) (*domain.RunReport, error) {
	m.ranAll = true
	return m.report, m.err
}

func (m *mockOrchestrator) RunJob(_ context.Context, name string, _ domain.Trigger) (*domain.RunReport, error) {
	m.ranJob = name
	return m.report, m.err
}

func (m *mockOrchestrator) StartPeriodic(_ context.Context, interval time.Duration) error {
	m.periodicI = interval
	return m.startErr
}

func (m *mockOrchestrator) StopPeriodic() bool {
	wasActive := !m.stopped && m.state.PeriodicActive
	m.stopped = true
	return wasActive
}

func (m *mockOrchestrator) Status() domain.ScheduleState {
	return m.state
}

// setupCommandTest swaps the wired services for mocks and returns a
// cleanup function restoring them.
func setupCommandTest(mock *mockOrchestrator) func() {
	oldOrch := orchestrator
	oldRuns := runStore
	orchestrator = mock
	runStore = nil
	return func() {
		orchestrator = oldOrch
		runStore = oldRuns
	}
}

func successReport() *domain.RunReport {
	started := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return &domain.RunReport{
		ID:      "run-1",
		Trigger: domain.TriggerManual,
		Success: true,
		Jobs: []domain.JobResult{
			{
				Name:    "products",
				Success: true,
				Result:  &domain.SyncResult{Created: 2, Updated: 5, Deleted: 1},
			},
		},
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}
}
