package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

// JobConfig holds the source locator for one sync job. Sheet jobs use the
// spreadsheet fields, Drive jobs use the folder field.
type JobConfig struct {
	// SpreadsheetID is the Google Sheets document ID (sheet jobs).
	SpreadsheetID string `toml:"spreadsheet_id"`
	// Sheet is the tab name within the spreadsheet (sheet jobs).
	Sheet string `toml:"sheet"`
	// Range limits reading to an A1-notation range (sheet jobs, optional).
	Range string `toml:"range"`
	// KeyColumn names the identity column (sheet jobs).
	KeyColumn string `toml:"key_column"`

	// FolderID is the Drive folder to list (Drive jobs).
	FolderID string `toml:"folder_id"`

	// PreserveOnEmpty suppresses deletions when the source reads empty.
	PreserveOnEmpty bool `toml:"preserve_on_empty"`
	// Disabled removes the job from runs without deleting its locator.
	Disabled bool `toml:"disabled"`
}

// Config is the full contentsync configuration.
type Config struct {
	// CredentialsPath points at the Google service account JSON key.
	CredentialsPath string `toml:"credentials_path"`
	// DataDir overrides the default ~/.contentsync/data directory.
	DataDir string `toml:"data_dir"`
	// Jobs maps job name to its source locator.
	Jobs map[string]JobConfig `toml:"jobs"`
}

// DefaultPath returns the default config file location,
// ~/.contentsync/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".contentsync", "config.toml"), nil
}

// Load reads and parses the config file at path. An empty path means the
// default location. A missing or unparsable file is a configuration error.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %s does not exist", domain.ErrConfiguration, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrConfiguration, path, err)
	}

	if cfg.Jobs == nil {
		cfg.Jobs = make(map[string]JobConfig)
	}
	return &cfg, nil
}

// Save writes the config to path with restricted permissions, creating the
// parent directory when needed.
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Job looks up one job's locator. Returns domain.ErrConfiguration when the
// job has no entry or is disabled.
func (c *Config) Job(name string) (JobConfig, error) {
	job, ok := c.Jobs[name]
	if !ok {
		return JobConfig{}, fmt.Errorf("%w: no locator for job %q", domain.ErrConfiguration, name)
	}
	if job.Disabled {
		return JobConfig{}, fmt.Errorf("%w: job %q is disabled", domain.ErrConfiguration, name)
	}
	return job, nil
}

// EnabledJobs returns the names of all jobs that are present and enabled,
// sorted for deterministic wiring.
func (c *Config) EnabledJobs() []string {
	names := make([]string, 0, len(c.Jobs))
	for name, job := range c.Jobs {
		if !job.Disabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Credentials returns the credentials path, falling back to the
// GOOGLE_APPLICATION_CREDENTIALS environment variable.
func (c *Config) Credentials() (string, error) {
	path := strings.TrimSpace(c.CredentialsPath)
	if path == "" {
		path = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if path == "" {
		return "", fmt.Errorf("%w: credentials_path is not set", domain.ErrConfiguration)
	}
	return path, nil
}
