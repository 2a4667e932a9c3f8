package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var scheduleInterval int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the periodic sync timer",
}

var scheduleStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run periodic syncs until interrupted",
	Long: `Arms the periodic timer and keeps the process in the foreground.
A sync runs immediately, then once per interval, until the process
receives an interrupt. Intervals are bounded between 1 and 60 minutes.`,
	RunE: runScheduleStart,
}

var scheduleStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Disarm the periodic sync timer",
	RunE:  runScheduleStop,
}

func init() {
	scheduleStartCmd.Flags().IntVarP(&scheduleInterval, "interval", "i", 15,
		"minutes between periodic syncs")
	scheduleCmd.AddCommand(scheduleStartCmd)
	scheduleCmd.AddCommand(scheduleStopCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleStart(cmd *cobra.Command, _ []string) error {
	if orchestrator == nil {
		return errors.New("sync service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(scheduleInterval) * time.Minute
	if err := orchestrator.StartPeriodic(ctx, interval); err != nil {
		return fmt.Errorf("starting periodic sync: %w", err)
	}

	cmd.Printf("Periodic sync armed every %s. Press Ctrl+C to stop.\n", interval)
	<-ctx.Done()

	orchestrator.StopPeriodic()
	cmd.Println("Periodic sync stopped.")
	return nil
}

func runScheduleStop(cmd *cobra.Command, _ []string) error {
	if orchestrator == nil {
		return errors.New("sync service not configured")
	}

	if orchestrator.StopPeriodic() {
		cmd.Println("Periodic sync stopped.")
	} else {
		cmd.Println("No periodic sync was active.")
	}
	return nil
}
