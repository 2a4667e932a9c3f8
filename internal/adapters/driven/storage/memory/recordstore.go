package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// recordKey identifies a record within the store.
type recordKey struct {
	kind     domain.RecordKind
	sourceID string
}

// RecordStore is an in-memory implementation of driven.RecordStore.
type RecordStore struct {
	mu      sync.RWMutex
	records map[recordKey]domain.PersistedRecord
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[recordKey]domain.PersistedRecord),
	}
}

// Upsert inserts or overwrites a record.
func (s *RecordStore) Upsert(_ context.Context, record domain.PersistedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey{record.Kind, record.SourceID}] = record
	return nil
}

// Delete removes a record. Absent records are not an error.
func (s *RecordStore) Delete(_ context.Context, kind domain.RecordKind, sourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, recordKey{kind, sourceID})
	return nil
}

// Get retrieves one record.
func (s *RecordStore) Get(_ context.Context, kind domain.RecordKind, sourceID string) (*domain.PersistedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[recordKey{kind, sourceID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns all records of a kind, ordered by source ID.
func (s *RecordStore) List(_ context.Context, kind domain.RecordKind) ([]domain.PersistedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []domain.PersistedRecord
	for key, record := range s.records {
		if key.kind == kind {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].SourceID < records[j].SourceID
	})
	return records, nil
}

// ListIDs returns the source IDs of all records of a kind, ordered.
func (s *RecordStore) ListIDs(_ context.Context, kind domain.RecordKind) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for key := range s.records {
		if key.kind == kind {
			ids = append(ids, key.sourceID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
