package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Periodic interval bounds. Intervals outside this range are rejected.
const (
	MinInterval = 1 * time.Minute
	MaxInterval = 60 * time.Minute
)

// periodicTimer is the state of one armed interval timer.
type periodicTimer struct {
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// StartPeriodic arms the interval timer: one immediate run, then one run
// per interval. Starting while a timer is active replaces it, so at most
// one timer fires at a time.
func (o *Orchestrator) StartPeriodic(ctx context.Context, interval time.Duration) error {
	if interval < MinInterval || interval > MaxInterval {
		return fmt.Errorf("%w: interval must be between %s and %s",
			domain.ErrInvalidInput, MinInterval, MaxInterval)
	}

	// Replace any active timer. The reference is dropped under the lock
	// before stopCh closes, so StopPeriodic cannot close it twice.
	o.mu.Lock()
	prev := o.periodic
	o.periodic = nil
	if prev != nil {
		close(prev.stopCh)
	}
	o.mu.Unlock()
	if prev != nil {
		<-prev.doneCh
	}

	timer := &periodicTimer{
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	o.mu.Lock()
	o.periodic = timer
	o.mu.Unlock()

	logger.Info("Periodic sync armed: every %s", interval)
	go o.periodicLoop(ctx, timer)
	return nil
}

// StopPeriodic disarms the timer. Returns false when nothing was active.
func (o *Orchestrator) StopPeriodic() bool {
	o.mu.Lock()
	timer := o.periodic
	if timer == nil {
		o.mu.Unlock()
		return false
	}
	o.periodic = nil
	close(timer.stopCh)
	o.mu.Unlock()

	<-timer.doneCh
	logger.Info("Periodic sync stopped")
	return true
}

// periodicLoop fires an immediate run, then one per tick, until stopped
// or the context is cancelled. A tick that lands while a run is still in
// flight is absorbed by the overlap guard.
func (o *Orchestrator) periodicLoop(ctx context.Context, timer *periodicTimer) {
	defer close(timer.doneCh)

	o.periodicRun(ctx)

	ticker := time.NewTicker(timer.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			o.clearPeriodic(timer)
			return
		case <-timer.stopCh:
			return
		case <-ticker.C:
			o.periodicRun(ctx)
		}
	}
}

// periodicRun triggers one run; errors only occur for programming
// mistakes, so they are logged and the timer keeps going.
func (o *Orchestrator) periodicRun(ctx context.Context) {
	report, err := o.RunAll(ctx, domain.TriggerPeriodic)
	if err != nil {
		logger.Warn("Periodic run failed: %v", err)
		return
	}
	if report.Skipped {
		logger.Debug("Periodic tick skipped: run already in progress")
	}
}

// clearPeriodic drops the timer reference if it is still the active one.
func (o *Orchestrator) clearPeriodic(timer *periodicTimer) {
	o.mu.Lock()
	if o.periodic == timer {
		o.periodic = nil
	}
	o.mu.Unlock()
}
