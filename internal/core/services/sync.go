package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// runHistoryKeep is how many run reports are retained in the run store.
const runHistoryKeep = 100

// Ensure Orchestrator implements the interface.
var _ driving.Orchestrator = (*Orchestrator)(nil)

// Job is one named reconciliation unit: a reader feeding one record kind.
type Job struct {
	// Name identifies the job on the trigger surface ("products", ...).
	Name string

	// Kind is the record kind the job reconciles.
	Kind domain.RecordKind

	// Reader fetches the candidate records.
	Reader driven.SourceReader

	// PreserveOnEmpty suppresses deletions when the reader returns zero
	// candidates. Off by default: an emptied source then empties the
	// store, matching the original behaviour. Jobs whose source can go
	// transiently empty should set it to avoid mass deletion.
	PreserveOnEmpty bool
}

// Orchestrator coordinates reconciliation runs. One run may be in flight
// at a time; overlapping triggers are rejected, not queued. The guard is
// in-process only: separate processes each carry their own.
type Orchestrator struct {
	jobs     []Job
	store    driven.RecordStore
	runStore driven.RunStore // optional
	applier  *Applier

	mu       sync.Mutex
	running  bool
	lastRun  time.Time
	periodic *periodicTimer
}

// NewOrchestrator creates an orchestrator over the given jobs.
// Jobs keep registration order in reports; execution is concurrent.
// runStore may be nil, disabling persisted run history.
func NewOrchestrator(store driven.RecordStore, runStore driven.RunStore, jobs []Job) *Orchestrator {
	return &Orchestrator{
		jobs:     jobs,
		store:    store,
		runStore: runStore,
		applier:  NewApplier(store),
	}
}

// Jobs returns the names of the registered jobs, in order.
func (o *Orchestrator) Jobs() []string {
	names := make([]string, len(o.jobs))
	for i, job := range o.jobs {
		names[i] = job.Name
	}
	return names
}

// RunAll executes every registered job concurrently.
func (o *Orchestrator) RunAll(ctx context.Context, trigger domain.Trigger) (*domain.RunReport, error) {
	return o.run(ctx, trigger, o.jobs)
}

// RunJob executes a single named job under the same overlap guard.
func (o *Orchestrator) RunJob(ctx context.Context, name string, trigger domain.Trigger) (*domain.RunReport, error) {
	for _, job := range o.jobs {
		if job.Name == name {
			return o.run(ctx, trigger, []Job{job})
		}
	}
	return nil, fmt.Errorf("job %q: %w", name, domain.ErrNotFound)
}

// Status returns a snapshot of the orchestrator state.
func (o *Orchestrator) Status() domain.ScheduleState {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := domain.ScheduleState{
		Running: o.running,
		LastRun: o.lastRun,
	}
	if o.periodic != nil {
		state.PeriodicActive = true
		state.Interval = o.periodic.interval
	}
	return state
}

// run is the shared trigger path for RunAll and RunJob.
// The running flag is tested and set under one lock, so concurrent
// triggers resolve to exactly one run and the rest are rejected.
func (o *Orchestrator) run(ctx context.Context, trigger domain.Trigger, jobs []Job) (*domain.RunReport, error) {
	report := &domain.RunReport{
		ID:        uuid.NewString(),
		Trigger:   trigger,
		StartedAt: time.Now(),
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		logger.Info("Sync trigger rejected: run already in progress")
		report.Skipped = true
		report.FinishedAt = report.StartedAt
		return report, nil
	}
	o.running = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.lastRun = time.Now()
		o.mu.Unlock()
	}()

	logger.Info("Starting sync run %s (%s, %d jobs)", report.ID, trigger, len(jobs))

	// Fan out: jobs are independent and run concurrently. Each slot is
	// written by exactly one goroutine, so the join needs no lock.
	report.Jobs = make([]domain.JobResult, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			report.Jobs[i] = o.runJob(ctx, job)
		}(i, job)
	}
	wg.Wait()

	report.FinishedAt = time.Now()
	report.Success = true
	for _, jr := range report.Jobs {
		if !jr.Success {
			report.Success = false
		}
	}

	o.record(ctx, report)

	logger.Info("Sync run %s complete: success=%v", report.ID, report.Success)
	return report, nil
}

// runJob executes one job: read, reconcile, apply. Job failures become
// a failed JobResult and never propagate; a panic in a reader is treated
// the same way so one broken job cannot abort its siblings.
func (o *Orchestrator) runJob(ctx context.Context, job Job) (jr domain.JobResult) {
	jr = domain.JobResult{
		Name:      job.Name,
		StartedAt: time.Now(),
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Job %s panicked: %v", job.Name, r)
			jr.Success = false
			jr.Error = fmt.Sprintf("panic: %v", r)
		}
		jr.FinishedAt = time.Now()
	}()

	candidates, skipped, err := job.Reader.Read(ctx)
	if err != nil {
		logger.Warn("Job %s: read failed: %v", job.Name, err)
		jr.Error = err.Error()
		return jr
	}

	persisted, err := o.store.ListIDs(ctx, job.Kind)
	if err != nil {
		jr.Error = fmt.Sprintf("list persisted records: %v", err)
		return jr
	}

	plan := Reconcile(candidates, persisted)
	if len(candidates) == 0 && job.PreserveOnEmpty && len(plan.ToDelete) > 0 {
		logger.Warn("Job %s: source empty, preserving %d persisted records", job.Name, len(plan.ToDelete))
		plan.ToDelete = nil
	}

	result := o.applier.Apply(ctx, job.Kind, plan)
	result.Skipped = skipped

	jr.Success = true
	jr.Result = result
	logger.Info("Job %s: %d created, %d updated, %d deleted, %d errors",
		job.Name, result.Created, result.Updated, result.Deleted, len(result.Errors))
	return jr
}

// record persists the run report. History failures are logged, never
// surfaced: status reporting is best effort.
func (o *Orchestrator) record(ctx context.Context, report *domain.RunReport) {
	if o.runStore == nil {
		return
	}
	if err := o.runStore.Record(ctx, report); err != nil {
		logger.Warn("Failed to record run %s: %v", report.ID, err)
		return
	}
	if err := o.runStore.Prune(ctx, runHistoryKeep); err != nil {
		logger.Warn("Failed to prune run history: %v", err)
	}
}
