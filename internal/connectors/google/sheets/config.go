package sheets

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// Config holds one spreadsheet source location.
type Config struct {
	// SpreadsheetID is the Google Sheets document ID.
	SpreadsheetID string
	// Sheet is the tab name within the spreadsheet.
	Sheet string
	// Range limits reading to an A1-notation column range (optional).
	// When empty the whole sheet is read.
	Range string
	// KeyColumn is the header name of the column holding record identity.
	KeyColumn string
}

// Validate checks that all required locators are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("%w: spreadsheet_id is required", domain.ErrConfiguration)
	}
	if strings.TrimSpace(c.Sheet) == "" {
		return fmt.Errorf("%w: sheet is required", domain.ErrConfiguration)
	}
	if strings.TrimSpace(c.KeyColumn) == "" {
		return fmt.Errorf("%w: key_column is required", domain.ErrConfiguration)
	}
	return nil
}

// readRange builds the A1-notation range for the values request.
func (c Config) readRange() string {
	if c.Range == "" {
		return c.Sheet
	}
	return c.Sheet + "!" + c.Range
}
