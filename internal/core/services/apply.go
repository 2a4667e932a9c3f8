package services

import (
	"context"
	"time"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Applier executes a reconciliation plan against the record store.
// Each record is its own unit of work: a failure is recorded in the
// result and the rest of the batch continues.
type Applier struct {
	store driven.RecordStore

	// now is replaceable for tests.
	now func() time.Time
}

// NewApplier creates an applier over the given store.
func NewApplier(store driven.RecordStore) *Applier {
	return &Applier{store: store, now: time.Now}
}

// Apply executes the plan for one kind and returns the populated result.
// Creates and updates both go through Upsert; updates deliberately
// overwrite the whole record so every sync touches LastSyncedAt and
// regenerates the derived fields.
func (a *Applier) Apply(ctx context.Context, kind domain.RecordKind, plan Plan) *domain.SyncResult {
	result := &domain.SyncResult{}
	syncedAt := a.now()

	for _, cand := range plan.ToCreate {
		if err := a.store.Upsert(ctx, a.enrich(cand, syncedAt)); err != nil {
			logger.Debug("Create %s/%s failed: %v", kind, cand.Key, err)
			result.AddError(cand.Key, err.Error())
			continue
		}
		result.Created++
	}

	for _, cand := range plan.ToUpdate {
		if err := a.store.Upsert(ctx, a.enrich(cand, syncedAt)); err != nil {
			logger.Debug("Update %s/%s failed: %v", kind, cand.Key, err)
			result.AddError(cand.Key, err.Error())
			continue
		}
		result.Updated++
	}

	for _, id := range plan.ToDelete {
		if err := a.store.Delete(ctx, kind, id); err != nil {
			logger.Debug("Delete %s/%s failed: %v", kind, id, err)
			result.AddError(id, err.Error())
			continue
		}
		result.Deleted++
	}

	return result
}

// enrich builds the persisted form of a candidate: derived slug and
// excerpt, plus the sync timestamp.
func (a *Applier) enrich(cand domain.CandidateRecord, syncedAt time.Time) domain.PersistedRecord {
	rec := domain.PersistedRecord{
		SourceID:     cand.Key,
		Kind:         cand.Kind,
		Fields:       cand.Fields,
		LastSyncedAt: syncedAt,
	}
	if title, ok := cand.Fields["title"].(string); ok {
		rec.Slug = domain.Slugify(title)
	}
	if content, ok := cand.Fields["content"].(string); ok {
		rec.Excerpt = domain.Excerpt(content)
	}
	return rec
}
