package driven

import (
	"context"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// RecordStore persists reconciled records.
// Each operation is its own unit: there is no cross-record atomicity.
type RecordStore interface {
	// Upsert inserts or overwrites the record identified by
	// (record.Kind, record.SourceID).
	Upsert(ctx context.Context, record domain.PersistedRecord) error

	// Delete removes the record identified by (kind, sourceID).
	// Deleting a record that does not exist is not an error.
	Delete(ctx context.Context, kind domain.RecordKind, sourceID string) error

	// Get retrieves one record. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, kind domain.RecordKind, sourceID string) (*domain.PersistedRecord, error)

	// List returns all records of a kind.
	List(ctx context.Context, kind domain.RecordKind) ([]domain.PersistedRecord, error)

	// ListIDs returns the source IDs of all records of a kind.
	ListIDs(ctx context.Context, kind domain.RecordKind) ([]string, error)
}
