package domain

import "time"

// RecordError captures a single record that failed to apply.
type RecordError struct {
	// Key is the record's identity, or a label when no identity exists.
	Key string

	// Message is the failure description.
	Message string
}

// SyncResult is the outcome of one reconciliation run for one kind.
// It is mutated as records are applied and returned at the end of the run.
type SyncResult struct {
	// Created is the number of records inserted.
	Created int

	// Updated is the number of records overwritten in place.
	Updated int

	// Deleted is the number of records removed.
	Deleted int

	// Skipped is the number of source rows dropped at read time
	// (malformed, or no identity could be derived).
	Skipped int

	// Errors lists records that failed to apply, in apply order.
	// A record error never aborts the rest of the batch.
	Errors []RecordError
}

// AddError appends a record failure without stopping the run.
func (r *SyncResult) AddError(key, message string) {
	r.Errors = append(r.Errors, RecordError{Key: key, Message: message})
}

// Trigger identifies what started a run.
type Trigger string

const (
	// TriggerManual is a run requested via the CLI.
	TriggerManual Trigger = "manual"

	// TriggerPeriodic is a run fired by the interval timer.
	TriggerPeriodic Trigger = "periodic"
)

// JobResult is the outcome of one named job within a run.
type JobResult struct {
	// Name is the job name ("settings", "products", ...).
	Name string

	// Success is false when the job failed before applying could start
	// (configuration or source error). Record-level errors do not make
	// a job unsuccessful.
	Success bool

	// Result holds counts and record errors when the job ran.
	Result *SyncResult

	// Error is the job-level failure message when Success is false.
	Error string

	// StartedAt is when the job began.
	StartedAt time.Time

	// FinishedAt is when the job completed.
	FinishedAt time.Time
}

// RunReport aggregates the outcome of one orchestrated run.
type RunReport struct {
	// ID uniquely identifies the run.
	ID string

	// Trigger is what started the run.
	Trigger Trigger

	// Skipped is true when the run was rejected because another run
	// was already in flight. No jobs execute for a skipped run.
	Skipped bool

	// Success is true when every job succeeded. Partial failure is
	// visible per job, not as an error from the trigger surface.
	Success bool

	// Jobs holds per-job outcomes, one entry per named job.
	Jobs []JobResult

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the last job completed.
	FinishedAt time.Time
}

// ScheduleState is a point-in-time snapshot of the orchestrator.
type ScheduleState struct {
	// Running indicates a run is currently in flight.
	Running bool

	// LastRun is when the last completed run finished. Zero if none.
	LastRun time.Time

	// PeriodicActive indicates the interval timer is armed.
	PeriodicActive bool

	// Interval is the periodic interval when active.
	Interval time.Duration
}
