package drive

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// Mode identifies what a Drive reader lists inside its folder.
type Mode string

const (
	// ModeDocs lists Google Docs files, exporting their text content.
	ModeDocs Mode = "docs"
	// ModeFolders lists immediate child folders, metadata only.
	ModeFolders Mode = "folders"
)

// Config holds one Drive folder source location.
type Config struct {
	// FolderID is the Drive folder whose children are read.
	FolderID string
	// Mode selects files or child folders.
	Mode Mode
	// MaxResults is the page size for API requests.
	MaxResults int64
}

// DefaultMaxResults is the page size used when none is configured.
const DefaultMaxResults = 100

// Validate checks that all required locators are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FolderID) == "" {
		return fmt.Errorf("%w: folder_id is required", domain.ErrConfiguration)
	}
	switch c.Mode {
	case ModeDocs, ModeFolders:
	default:
		return fmt.Errorf("%w: unknown drive mode %q", domain.ErrConfiguration, c.Mode)
	}
	return nil
}

// pageSize returns the configured page size or the default.
func (c Config) pageSize() int64 {
	if c.MaxResults > 0 {
		return c.MaxResults
	}
	return DefaultMaxResults
}
