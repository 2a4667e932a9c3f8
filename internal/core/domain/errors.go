package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration indicates a required source locator or credential
	// is missing. Fatal to the affected job, not to sibling jobs.
	ErrConfiguration = errors.New("configuration error")

	// ErrSourceUnavailable indicates the external read failed (network,
	// auth, rate limit). Fatal to that job's run.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSyncInProgress indicates a run was requested while another was
	// already in flight. The trigger is rejected, not queued.
	ErrSyncInProgress = errors.New("sync in progress")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
