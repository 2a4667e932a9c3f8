package driven

import (
	"context"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// RunStore persists run reports for status reporting across restarts.
type RunStore interface {
	// Record logs a completed run. Skipped runs are not recorded.
	Record(ctx context.Context, report *domain.RunReport) error

	// LastRun returns the most recent recorded run.
	// Returns nil and no error when no run has been recorded.
	LastRun(ctx context.Context) (*domain.RunReport, error)

	// History returns recent runs, most recent first.
	History(ctx context.Context, limit int) ([]domain.RunReport, error)

	// Prune removes old runs beyond the retention limit.
	// Keeps the most recent 'keep' runs.
	Prune(ctx context.Context, keep int) error
}
