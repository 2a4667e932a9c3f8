// Package sheets reads candidate records from a Google Sheets tab.
//
// The first row is treated as a header naming the fields. Identity comes
// from a configured key column; rows without a key are skipped and counted,
// never fatal.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/contentsync-cli/internal/connectors/google"
	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Reader reads one spreadsheet tab into candidate records.
type Reader struct {
	svc     *sheets.Service
	cfg     Config
	kind    domain.RecordKind
	limiter *google.RateLimiter
}

var _ driven.SourceReader = (*Reader)(nil)

// NewReader creates a Reader for the given spreadsheet location.
// Returns domain.ErrConfiguration when a required locator is missing.
func NewReader(svc *sheets.Service, cfg Config, kind domain.RecordKind) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown record kind %q", domain.ErrConfiguration, kind)
	}

	return &Reader{
		svc:     svc,
		cfg:     cfg,
		kind:    kind,
		limiter: google.NewRateLimiter(google.ServiceSheets),
	}, nil
}

// Kind returns the record kind this reader produces.
func (r *Reader) Kind() domain.RecordKind {
	return r.kind
}

// Read fetches the configured range and converts data rows to candidate
// records. The int is the count of rows skipped for a missing key.
func (r *Reader) Read(ctx context.Context) ([]domain.CandidateRecord, int, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	resp, err := r.svc.Spreadsheets.Values.
		Get(r.cfg.SpreadsheetID, r.cfg.readRange()).
		Context(ctx).Do()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading sheet %s: %w",
			domain.ErrSourceUnavailable, r.cfg.Sheet, google.WrapError(err))
	}

	records, skipped := parseRows(resp.Values, r.cfg.KeyColumn, r.kind)
	return records, skipped, nil
}

// parseRows converts raw sheet values to candidate records. The first row
// is the header; remaining rows become records keyed by the key column.
func parseRows(values [][]any, keyColumn string, kind domain.RecordKind) ([]domain.CandidateRecord, int) {
	if len(values) < 2 {
		// Header only or nothing at all reads as empty, not as an error.
		return nil, 0
	}

	headers, keyIndex := parseHeader(values[0], keyColumn)
	if keyIndex < 0 {
		// Without the key column no row can carry identity.
		logger.Debug("sheets: key column %q not in header, skipping all rows", keyColumn)
		return nil, len(values) - 1
	}

	var records []domain.CandidateRecord
	skipped := 0
	for _, row := range values[1:] {
		key := cellKey(row, keyIndex)
		if key == "" {
			skipped++
			continue
		}

		fields := make(map[string]any, len(headers))
		for i, name := range headers {
			if name == "" || i >= len(row) {
				continue
			}
			if value := cellValue(row[i]); value != nil {
				fields[name] = value
			}
		}

		records = append(records, domain.CandidateRecord{
			Key:    key,
			Kind:   kind,
			Fields: fields,
		})
	}

	return records, skipped
}

// parseHeader extracts trimmed header names and the index of the key column.
// Duplicate header names keep their first occurrence; later duplicates are
// blanked so their cells are not read.
func parseHeader(row []any, keyColumn string) ([]string, int) {
	headers := make([]string, len(row))
	seen := make(map[string]bool, len(row))
	keyIndex := -1

	for i, cell := range row {
		name := strings.TrimSpace(cellString(cell))
		if name == "" {
			continue
		}
		if seen[name] {
			logger.Debug("sheets: duplicate header %q at column %d dropped", name, i)
			continue
		}
		seen[name] = true
		headers[i] = name
		if name == keyColumn {
			keyIndex = i
		}
	}

	return headers, keyIndex
}

// cellKey extracts the identity value of a row, trimmed. Empty means the
// row has no identity.
func cellKey(row []any, keyIndex int) string {
	if keyIndex >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[keyIndex]))
}

// cellValue converts a sheet cell to a field value. Only string, float64
// and bool survive; empty strings are dropped.
func cellValue(cell any) any {
	switch v := cell.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		return trimmed
	case float64:
		return v
	case bool:
		return v
	case nil:
		return nil
	default:
		return fmt.Sprintf("%v", v)
	}
}

// cellString renders a cell as a string without dropping zero values.
func cellString(cell any) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", cell)
}
