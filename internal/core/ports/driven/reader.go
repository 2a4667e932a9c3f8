package driven

import (
	"context"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// SourceReader fetches candidate records from an external source.
// Each reader type (spreadsheet, Drive folder) implements this interface.
type SourceReader interface {
	// Kind returns the record kind this reader produces.
	Kind() domain.RecordKind

	// Read fetches all candidate records for one run, eagerly and in
	// source order. The int is the count of source items skipped at read
	// time (malformed, or no identity derivable); skips are never errors.
	//
	// Returns domain.ErrConfiguration (wrapped) when a required source
	// locator is missing, and domain.ErrSourceUnavailable (wrapped) when
	// the external call fails. An empty source returns an empty slice
	// and nil error.
	//
	// Read must not mutate local state.
	Read(ctx context.Context) ([]domain.CandidateRecord, int, error)
}
