package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

func TestSyncCmd_Use(t *testing.T) {
	assert.Equal(t, "sync [job]", syncCmd.Use)
}

func TestSyncCmd_Short(t *testing.T) {
	assert.Equal(t, "Run a reconciliation sync now", syncCmd.Short)
}

func TestSyncCmd_ExecutesWithoutArgs(t *testing.T) {
	mock := &mockOrchestrator{report: successReport()}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, mock.ranAll)
	assert.Contains(t, buf.String(), "Syncing all jobs...")
	assert.Contains(t, buf.String(), "products: 2 created, 5 updated, 1 deleted, 0 skipped")
	assert.Contains(t, buf.String(), "Sync completed in 2s.")
}

func TestSyncCmd_ExecutesWithJobName(t *testing.T) {
	mock := &mockOrchestrator{report: successReport()}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync", "products"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "products", mock.ranJob)
	assert.Contains(t, buf.String(), "Syncing job: products...")
}

func TestSyncCmd_ReportsSkippedRun(t *testing.T) {
	mock := &mockOrchestrator{report: &domain.RunReport{Skipped: true}}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "already in progress")
}

func TestSyncCmd_ReportsJobFailure(t *testing.T) {
	report := successReport()
	report.Success = false
	report.Jobs = append(report.Jobs, domain.JobResult{
		Name:  "blogs",
		Error: "source unavailable",
	})
	mock := &mockOrchestrator{report: report}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	// Partial failure is a report, not a command error.
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "blogs: FAILED: source unavailable")
	assert.Contains(t, buf.String(), "completed with failures")
}

func TestSyncCmd_ReportsRecordErrors(t *testing.T) {
	report := successReport()
	report.Jobs[0].Result.Errors = []domain.RecordError{
		{Key: "42", Message: "upsert failed"},
	}
	mock := &mockOrchestrator{report: report}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "record 42: upsert failed")
}

func TestSyncCmd_OrchestrationError(t *testing.T) {
	mock := &mockOrchestrator{err: errors.New("boom")}
	cleanup := setupCommandTest(mock)
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
}

func TestSyncCmd_NotConfigured(t *testing.T) {
	cleanup := setupCommandTest(nil)
	orchestrator = nil
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"sync"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
