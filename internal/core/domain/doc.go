// Package domain defines the core business entities for contentsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CandidateRecord: An item freshly read from the external source
//   - PersistedRecord: The store's durable representation of an item
//   - SyncResult: Counts and per-record errors for one reconciliation run
//   - RunReport: The aggregate outcome of one orchestrated run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
