// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services reach infrastructure only through the driven ports, so the
// whole reconciliation pipeline is testable with in-memory doubles.
package services
