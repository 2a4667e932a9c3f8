package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "complete",
			cfg:  Config{SpreadsheetID: "abc", Sheet: "Products", KeyColumn: "id"},
		},
		{
			name:    "missing spreadsheet ID",
			cfg:     Config{Sheet: "Products", KeyColumn: "id"},
			wantErr: true,
		},
		{
			name:    "missing sheet",
			cfg:     Config{SpreadsheetID: "abc", KeyColumn: "id"},
			wantErr: true,
		},
		{
			name:    "missing key column",
			cfg:     Config{SpreadsheetID: "abc", Sheet: "Products"},
			wantErr: true,
		},
		{
			name:    "whitespace only",
			cfg:     Config{SpreadsheetID: "  ", Sheet: "Products", KeyColumn: "id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigReadRange(t *testing.T) {
	cfg := Config{Sheet: "Products"}
	assert.Equal(t, "Products", cfg.readRange())

	cfg.Range = "A:F"
	assert.Equal(t, "Products!A:F", cfg.readRange())
}

func TestParseRowsBasic(t *testing.T) {
	values := [][]any{
		{"id", "title", "price", "active"},
		{"1", "Walnut Desk", 249.5, true},
		{"2", "Oak Chair", 89.0, false},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "1", records[0].Key)
	assert.Equal(t, domain.KindProduct, records[0].Kind)
	assert.Equal(t, "Walnut Desk", records[0].Fields["title"])
	assert.Equal(t, 249.5, records[0].Fields["price"])
	assert.Equal(t, true, records[0].Fields["active"])

	assert.Equal(t, "2", records[1].Key)
	assert.Equal(t, false, records[1].Fields["active"])
}

func TestParseRowsNumericKey(t *testing.T) {
	values := [][]any{
		{"id", "title"},
		{float64(7), "Walnut Desk"},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "7", records[0].Key)
}

func TestParseRowsSkipsMissingKey(t *testing.T) {
	values := [][]any{
		{"id", "title"},
		{"1", "Walnut Desk"},
		{"", "no identity"},
		{"  ", "whitespace identity"},
		{"2", "Oak Chair"},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "1", records[0].Key)
	assert.Equal(t, "2", records[1].Key)
}

func TestParseRowsShortRow(t *testing.T) {
	values := [][]any{
		{"id", "title", "price"},
		{"1", "Walnut Desk"},
		{"2"},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "Walnut Desk", records[0].Fields["title"])
	_, hasPrice := records[0].Fields["price"]
	assert.False(t, hasPrice)
	assert.Empty(t, records[1].Fields["title"])
}

func TestParseRowsDuplicateHeaderFirstWins(t *testing.T) {
	values := [][]any{
		{"id", "title", "title"},
		{"1", "first", "second"},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "first", records[0].Fields["title"])
}

func TestParseRowsKeyColumnAbsent(t *testing.T) {
	values := [][]any{
		{"title", "price"},
		{"Walnut Desk", 249.5},
		{"Oak Chair", 89.0},
	}

	records, skipped := parseRows(values, "id", domain.KindProduct)
	assert.Empty(t, records)
	assert.Equal(t, 2, skipped)
}

func TestParseRowsHeaderOnly(t *testing.T) {
	records, skipped := parseRows([][]any{{"id", "title"}}, "id", domain.KindProduct)
	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestParseRowsEmpty(t *testing.T) {
	records, skipped := parseRows(nil, "id", domain.KindProduct)
	assert.Empty(t, records)
	assert.Equal(t, 0, skipped)
}

func TestParseRowsDropsEmptyCells(t *testing.T) {
	values := [][]any{
		{"id", "title", "notes"},
		{"1", "Walnut Desk", "  "},
	}

	records, _ := parseRows(values, "id", domain.KindProduct)
	require.Len(t, records, 1)
	_, hasNotes := records[0].Fields["notes"]
	assert.False(t, hasNotes)
}

func TestNewReaderValidates(t *testing.T) {
	_, err := NewReader(nil, Config{}, domain.KindProduct)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = NewReader(nil, Config{SpreadsheetID: "abc", Sheet: "S", KeyColumn: "id"}, domain.RecordKind("bogus"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	reader, err := NewReader(nil, Config{SpreadsheetID: "abc", Sheet: "S", KeyColumn: "id"}, domain.KindSettings)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSettings, reader.Kind())
}
