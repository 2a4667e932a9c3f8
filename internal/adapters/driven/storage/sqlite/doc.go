// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - RecordStore: Reconciled record persistence
//   - RunStore: Run report history
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. The records table carries a UNIQUE key over
// (kind, source_id), which enforces the one-record-per-identity invariant.
//
// # Data Location
//
// By default, the database is stored at ~/.contentsync/data/contentsync.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
