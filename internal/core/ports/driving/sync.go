package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// Orchestrator coordinates reconciliation runs across named jobs.
type Orchestrator interface {
	// RunAll executes every registered job concurrently and returns the
	// aggregate report. A trigger while a run is in flight returns a
	// report with Skipped=true without invoking any reader or store.
	// Job failures are reported per job; RunAll itself only errors for
	// programming mistakes in its own control flow.
	RunAll(ctx context.Context, trigger domain.Trigger) (*domain.RunReport, error)

	// RunJob executes a single named job under the same overlap guard.
	// Returns domain.ErrNotFound for an unknown job name.
	RunJob(ctx context.Context, name string, trigger domain.Trigger) (*domain.RunReport, error)

	// StartPeriodic arms the interval timer: one immediate run, then one
	// run per interval. The interval must be between 1 and 60 minutes.
	// Starting while a timer is active replaces it; only one timer is
	// ever armed.
	StartPeriodic(ctx context.Context, interval time.Duration) error

	// StopPeriodic disarms the timer. Returns false when no timer was
	// active; stopping an inactive scheduler is a no-op, not an error.
	StopPeriodic() bool

	// Status returns a snapshot of the orchestrator state.
	Status() domain.ScheduleState
}
