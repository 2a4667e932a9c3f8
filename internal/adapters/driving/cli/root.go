// Package cli implements the contentsync command line interface using cobra.
//
// Commands talk to the core through the driving ports; the concrete
// services are injected at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Services wired in at startup.
var (
	orchestrator driving.Orchestrator
	runStore     driven.RunStore
)

var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "contentsync",
	Short: "Reconcile spreadsheet and Drive content into the local store",
	Long: `contentsync pulls rows from Google Sheets and documents from Google
Drive folders and reconciles them into a local content store. Each run
reads the sources in full, then creates, updates and deletes local
records so the store mirrors what the sources hold.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices wires the core services the commands depend on.
func SetServices(orch driving.Orchestrator, runs driven.RunStore) {
	orchestrator = orch
	runStore = runs
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
