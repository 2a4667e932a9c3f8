// Command contentsync reconciles Google Sheets rows and Google Drive
// folders into a local content store.
package main

import (
	"context"
	"fmt"
	"os"

	driveapi "google.golang.org/api/drive/v3"
	sheetsapi "google.golang.org/api/sheets/v4"

	configfile "github.com/custodia-labs/contentsync-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/contentsync-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/contentsync-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/contentsync-cli/internal/connectors/google"
	gdrive "github.com/custodia-labs/contentsync-cli/internal/connectors/google/drive"
	gsheets "github.com/custodia-labs/contentsync-cli/internal/connectors/google/sheets"
	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/core/services"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// sourceType distinguishes sheet-backed jobs from Drive-backed jobs.
type sourceType int

const (
	sourceSheet sourceType = iota
	sourceDrive
)

// jobDefs fixes the known jobs: which kind each reconciles and where
// its records come from. Locators live in the config file.
var jobDefs = map[string]struct {
	kind   domain.RecordKind
	source sourceType
	mode   gdrive.Mode
}{
	"settings": {kind: domain.KindSettings, source: sourceSheet},
	"products": {kind: domain.KindProduct, source: sourceSheet},
	"blogs":    {kind: domain.KindBlog, source: sourceDrive, mode: gdrive.ModeDocs},
	"books":    {kind: domain.KindBook, source: sourceDrive, mode: gdrive.ModeFolders},
}

func main() {
	cli.SetVersion(version)

	if err := wire(); err != nil {
		// version and help still work unwired; commands that need the
		// services report "not configured" themselves.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire loads configuration and connects the storage, readers and
// orchestrator to the CLI.
func wire() error {
	cfg, err := configfile.Load("")
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}

	jobs, err := buildJobs(context.Background(), cfg)
	if err != nil {
		return err
	}

	orch := services.NewOrchestrator(store.RecordStore(), store.RunStore(), jobs)
	cli.SetServices(orch, store.RunStore())
	return nil
}

// buildJobs constructs a reader per enabled job from its locator.
func buildJobs(ctx context.Context, cfg *configfile.Config) ([]services.Job, error) {
	credentials, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	ts, err := google.TokenSourceFromFile(ctx, credentials)
	if err != nil {
		return nil, err
	}

	var sheetsSvc *sheetsapi.Service
	var driveSvc *driveapi.Service

	var jobs []services.Job
	for _, name := range cfg.EnabledJobs() {
		def, ok := jobDefs[name]
		if !ok {
			logger.Warn("ignoring unknown job %q in config", name)
			continue
		}

		locator := cfg.Jobs[name]
		var reader driven.SourceReader

		switch def.source {
		case sourceSheet:
			if sheetsSvc == nil {
				if sheetsSvc, err = google.NewSheetsService(ctx, ts); err != nil {
					return nil, fmt.Errorf("creating sheets service: %w", err)
				}
			}
			reader, err = gsheets.NewReader(sheetsSvc, gsheets.Config{
				SpreadsheetID: locator.SpreadsheetID,
				Sheet:         locator.Sheet,
				Range:         locator.Range,
				KeyColumn:     locator.KeyColumn,
			}, def.kind)
			if err != nil {
				return nil, fmt.Errorf("job %s: %w", name, err)
			}
		case sourceDrive:
			if driveSvc == nil {
				if driveSvc, err = google.NewDriveService(ctx, ts); err != nil {
					return nil, fmt.Errorf("creating drive service: %w", err)
				}
			}
			reader, err = gdrive.NewReader(driveSvc, gdrive.Config{
				FolderID: locator.FolderID,
				Mode:     def.mode,
			}, def.kind)
			if err != nil {
				return nil, fmt.Errorf("job %s: %w", name, err)
			}
		}

		jobs = append(jobs, services.Job{
			Name:            name,
			Kind:            def.kind,
			Reader:          reader,
			PreserveOnEmpty: locator.PreserveOnEmpty,
		})
	}

	return jobs, nil
}
