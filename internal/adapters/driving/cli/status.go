package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync and schedule state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if orchestrator == nil {
		return errors.New("sync service not configured")
	}

	state := orchestrator.Status()

	if state.Running {
		cmd.Println("Sync: running")
	} else {
		cmd.Println("Sync: idle")
	}

	if state.PeriodicActive {
		cmd.Printf("Periodic: active, every %s\n", state.Interval)
	} else {
		cmd.Println("Periodic: inactive")
	}

	printLastRun(cmd, state.LastRun)
	return nil
}

// printLastRun shows the most recent recorded run, preferring the
// persisted history so status works across process restarts.
func printLastRun(cmd *cobra.Command, inProcess time.Time) {
	if runStore != nil {
		last, err := runStore.LastRun(cmd.Context())
		if err == nil && last != nil {
			outcome := "ok"
			if !last.Success {
				outcome = "failed"
			}
			cmd.Printf("Last run: %s (%s, %s, %d jobs)\n",
				last.FinishedAt.Local().Format(time.RFC3339),
				last.Trigger, outcome, len(last.Jobs))
			return
		}
	}

	if inProcess.IsZero() {
		cmd.Println("Last run: never")
		return
	}
	cmd.Printf("Last run: %s\n", inProcess.Local().Format(time.RFC3339))
}
