package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googledrive "google.golang.org/api/drive/v3"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "docs mode",
			cfg:  Config{FolderID: "abc", Mode: ModeDocs},
		},
		{
			name: "folders mode",
			cfg:  Config{FolderID: "abc", Mode: ModeFolders},
		},
		{
			name:    "missing folder ID",
			cfg:     Config{Mode: ModeDocs},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			cfg:     Config{FolderID: "abc", Mode: "everything"},
			wantErr: true,
		},
		{
			name:    "empty mode",
			cfg:     Config{FolderID: "abc"},
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

func TestConfigPageSize(t *testing.T) {
	assert.Equal(t, int64(DefaultMaxResults), Config{}.pageSize())
	assert.Equal(t, int64(25), Config{MaxResults: 25}.pageSize())
}

func TestReaderQuery(t *testing.T) {
	docs := &Reader{cfg: Config{FolderID: "folder1", Mode: ModeDocs}}
	assert.Equal(t,
		"'folder1' in parents and mimeType = 'application/vnd.google-apps.document' and trashed = false",
		docs.query())

	folders := &Reader{cfg: Config{FolderID: "folder1", Mode: ModeFolders}}
	assert.Equal(t,
		"'folder1' in parents and mimeType = 'application/vnd.google-apps.folder' and trashed = false",
		folders.query())
}

func TestFileRecordDoc(t *testing.T) {
	file := &googledrive.File{
		Id:           "doc-1",
		Name:         "Spring Collection",
		ModifiedTime: "2026-03-14T10:00:00Z",
		WebViewLink:  "https://docs.google.com/document/d/doc-1",
	}

	record := fileRecord(file, domain.KindBlog, "Our spring picks.\n")
	assert.Equal(t, "doc-1", record.Key)
	assert.Equal(t, domain.KindBlog, record.Kind)
	assert.Equal(t, "Spring Collection", record.Fields["title"])
	assert.Equal(t, "2026-03-14T10:00:00Z", record.Fields["modified_time"])
	assert.Equal(t, "https://docs.google.com/document/d/doc-1", record.Fields["web_link"])
	assert.Equal(t, "Our spring picks.", record.Fields["content"])
}

func TestFileRecordFolderNoContent(t *testing.T) {
	file := &googledrive.File{Id: "folder-1", Name: "Cookbook"}

	record := fileRecord(file, domain.KindBook, "")
	assert.Equal(t, "folder-1", record.Key)
	assert.Equal(t, "Cookbook", record.Fields["title"])

	_, hasContent := record.Fields["content"]
	assert.False(t, hasContent)
	_, hasModified := record.Fields["modified_time"]
	assert.False(t, hasModified)
}

func TestNewReaderValidates(t *testing.T) {
	_, err := NewReader(nil, Config{}, domain.KindBlog)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = NewReader(nil, Config{FolderID: "abc", Mode: ModeDocs}, domain.RecordKind("bogus"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	reader, err := NewReader(nil, Config{FolderID: "abc", Mode: ModeFolders}, domain.KindBook)
	require.NoError(t, err)
	assert.Equal(t, domain.KindBook, reader.Kind())
}
