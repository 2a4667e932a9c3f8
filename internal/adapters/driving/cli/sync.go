package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync [job]",
	Short: "Run a reconciliation sync now",
	Long: `Triggers a reconciliation run against the configured sources.
If a job name is provided, only that job runs. Otherwise all jobs run
concurrently. Partial failure is reported per job and does not fail
the command; only configuration and orchestration errors do.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if orchestrator == nil {
		return errors.New("sync service not configured")
	}

	ctx := cmd.Context()

	var report *domain.RunReport
	var err error
	if len(args) > 0 {
		cmd.Printf("Syncing job: %s...\n", args[0])
		report, err = orchestrator.RunJob(ctx, args[0], domain.TriggerManual)
	} else {
		cmd.Println("Syncing all jobs...")
		report, err = orchestrator.RunAll(ctx, domain.TriggerManual)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printReport(cmd, report)
	return nil
}

// printReport writes a per-job summary of a run report.
func printReport(cmd *cobra.Command, report *domain.RunReport) {
	if report.Skipped {
		cmd.Println("Another sync is already in progress; nothing was run.")
		return
	}

	for _, job := range report.Jobs {
		if !job.Success {
			cmd.Printf("  %s: FAILED: %s\n", job.Name, job.Error)
			continue
		}

		result := job.Result
		cmd.Printf("  %s: %d created, %d updated, %d deleted, %d skipped\n",
			job.Name, result.Created, result.Updated, result.Deleted, result.Skipped)
		for _, recordErr := range result.Errors {
			cmd.Printf("    record %s: %s\n", recordErr.Key, recordErr.Message)
		}
	}

	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	if report.Success {
		cmd.Printf("Sync completed in %s.\n", elapsed)
	} else {
		cmd.Printf("Sync completed with failures in %s.\n", elapsed)
	}
}
