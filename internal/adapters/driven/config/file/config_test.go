package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
credentials_path = "/secrets/sa.json"
data_dir = "/var/lib/contentsync"

[jobs.products]
spreadsheet_id = "sheet-abc"
sheet = "Products"
range = "A:F"
key_column = "id"

[jobs.blogs]
folder_id = "folder-xyz"
preserve_on_empty = true

[jobs.books]
folder_id = "folder-books"
disabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/secrets/sa.json", cfg.CredentialsPath)
	assert.Equal(t, "/var/lib/contentsync", cfg.DataDir)

	products, err := cfg.Job("products")
	require.NoError(t, err)
	assert.Equal(t, "sheet-abc", products.SpreadsheetID)
	assert.Equal(t, "Products", products.Sheet)
	assert.Equal(t, "A:F", products.Range)
	assert.Equal(t, "id", products.KeyColumn)
	assert.False(t, products.PreserveOnEmpty)

	blogs, err := cfg.Job("blogs")
	require.NoError(t, err)
	assert.Equal(t, "folder-xyz", blogs.FolderID)
	assert.True(t, blogs.PreserveOnEmpty)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "credentials_path = [broken")

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestJobMissing(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	_, err = cfg.Job("products")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestJobDisabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[jobs.books]\nfolder_id = \"f\"\ndisabled = true\n"))
	require.NoError(t, err)

	_, err = cfg.Job("books")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestEnabledJobs(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[jobs.products]
spreadsheet_id = "s"

[jobs.blogs]
folder_id = "f"

[jobs.books]
folder_id = "g"
disabled = true
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"blogs", "products"}, cfg.EnabledJobs())
}

func TestCredentialsFallback(t *testing.T) {
	cfg := &Config{}

	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	_, err := cfg.Credentials()
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/env/sa.json")
	path, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "/env/sa.json", path)

	cfg.CredentialsPath = "/file/sa.json"
	path, err = cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "/file/sa.json", path)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := &Config{
		CredentialsPath: "/secrets/sa.json",
		Jobs: map[string]JobConfig{
			"products": {SpreadsheetID: "sheet-abc", Sheet: "Products", KeyColumn: "id"},
		},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.CredentialsPath, loaded.CredentialsPath)

	job, err := loaded.Job("products")
	require.NoError(t, err)
	assert.Equal(t, "sheet-abc", job.SpreadsheetID)
}
