package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/contentsync-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the record and run store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.contentsync/data/contentsync.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".contentsync", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "contentsync.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordStore returns a RecordStore interface backed by this store.
func (s *Store) RecordStore() driven.RecordStore {
	return &recordStore{store: s}
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Record Store ====================

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// Upsert inserts or overwrites the record identified by (kind, source_id).
func (s *recordStore) Upsert(ctx context.Context, record domain.PersistedRecord) error {
	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO records (kind, source_id, fields, slug, excerpt, last_synced_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, source_id) DO UPDATE SET
			fields = excluded.fields,
			slug = excluded.slug,
			excerpt = excluded.excerpt,
			last_synced_at = excluded.last_synced_at
	`, string(record.Kind), record.SourceID, string(fieldsJSON),
		record.Slug, record.Excerpt, record.LastSyncedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("upserting record: %w", err)
	}
	return nil
}

// Delete removes a record. Absent records are not an error.
func (s *recordStore) Delete(ctx context.Context, kind domain.RecordKind, sourceID string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM records WHERE kind = ? AND source_id = ?", string(kind), sourceID)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}

// Get retrieves one record.
func (s *recordStore) Get(ctx context.Context, kind domain.RecordKind, sourceID string) (*domain.PersistedRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT kind, source_id, fields, slug, excerpt, last_synced_at
		FROM records WHERE kind = ? AND source_id = ?
	`, string(kind), sourceID)

	record, err := scanRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns all records of a kind, ordered by source ID.
func (s *recordStore) List(ctx context.Context, kind domain.RecordKind) ([]domain.PersistedRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT kind, source_id, fields, slug, excerpt, last_synced_at
		FROM records WHERE kind = ? ORDER BY source_id
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.PersistedRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// ListIDs returns the source IDs of all records of a kind, ordered.
func (s *recordStore) ListIDs(ctx context.Context, kind domain.RecordKind) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT source_id FROM records WHERE kind = ? ORDER BY source_id", string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying record IDs: %w", err)
	}
	defer rows.Close()

	var ids []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning record ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record IDs: %w", err)
	}
	return ids, nil
}

// scanRecord scans one records row via the given scan function.
func scanRecord(scan func(...any) error) (*domain.PersistedRecord, error) {
	var record domain.PersistedRecord
	var kind, fieldsJSON, syncedAt string
	if err := scan(&kind, &record.SourceID, &fieldsJSON, &record.Slug, &record.Excerpt, &syncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	record.Kind = domain.RecordKind(kind)
	if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
		return nil, fmt.Errorf("unmarshalling fields: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, syncedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing last_synced_at: %w", err)
	}
	record.LastSyncedAt = ts

	return &record, nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Record logs a completed run. Per-job outcomes are stored as JSON.
func (s *runStore) Record(ctx context.Context, report *domain.RunReport) error {
	if report == nil {
		return domain.ErrInvalidInput
	}

	jobsJSON, err := json.Marshal(report.Jobs)
	if err != nil {
		return fmt.Errorf("marshalling job results: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, trigger_type, success, jobs, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, report.ID, string(report.Trigger), boolToInt(report.Success), string(jobsJSON),
		report.StartedAt.UTC().Format(time.RFC3339Nano),
		report.FinishedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// LastRun returns the most recent recorded run, or nil when none exists.
func (s *runStore) LastRun(ctx context.Context) (*domain.RunReport, error) {
	runs, err := s.History(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// History returns recent runs, most recent first.
func (s *runStore) History(ctx context.Context, limit int) ([]domain.RunReport, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, trigger_type, success, jobs, started_at, finished_at
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunReport //nolint:prealloc // size unknown from query
	for rows.Next() {
		var report domain.RunReport
		var trigger, jobsJSON, startedAt, finishedAt string
		var success int
		if err := rows.Scan(&report.ID, &trigger, &success, &jobsJSON, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		report.Trigger = domain.Trigger(trigger)
		report.Success = success != 0
		if err := json.Unmarshal([]byte(jobsJSON), &report.Jobs); err != nil {
			return nil, fmt.Errorf("unmarshalling job results: %w", err)
		}
		if report.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		if report.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("parsing finished_at: %w", err)
		}
		runs = append(runs, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Prune keeps only the most recent 'keep' runs.
func (s *runStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}
	return nil
}

// boolToInt converts a bool to a SQLite integer.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
