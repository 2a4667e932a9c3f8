// Package drive reads candidate records from a Google Drive folder.
//
// Identity is the Drive file or folder ID, treated as opaque. In docs mode
// each Google Doc in the folder becomes a record with its exported text as
// content; in folders mode each immediate child folder becomes a record
// with metadata only.
package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/contentsync-cli/internal/connectors/google"
	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Drive MIME types the reader queries for.
const (
	MimeTypeGoogleDoc = "application/vnd.google-apps.document"
	MimeTypeFolder    = "application/vnd.google-apps.folder"
)

// ExportMimeText is the export format for Google Docs content.
const ExportMimeText = "text/plain"

// MaxExportSize is the maximum size for exported content (5MB).
const MaxExportSize = 5 * 1024 * 1024

// listFields limits the file metadata fetched per page.
const listFields = "nextPageToken, files(id, name, mimeType, modifiedTime, webViewLink, trashed)"

// Reader reads one Drive folder into candidate records.
type Reader struct {
	svc     *drive.Service
	cfg     Config
	kind    domain.RecordKind
	limiter *google.RateLimiter
}

var _ driven.SourceReader = (*Reader)(nil)

// NewReader creates a Reader for the given folder.
// Returns domain.ErrConfiguration when a required locator is missing.
func NewReader(svc *drive.Service, cfg Config, kind domain.RecordKind) (*Reader, error) {
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
		limiter: google.NewRateLimiter(google.ServiceDrive),
	}, nil
}

// Kind returns the record kind this reader produces.
func (r *Reader) Kind() domain.RecordKind {
	return r.kind
}

// Read lists the folder's children and converts them to candidate records.
// The int is the count of entries skipped for a missing identity.
func (r *Reader) Read(ctx context.Context) ([]domain.CandidateRecord, int, error) {
	files, err := r.listChildren(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: listing folder %s: %w",
			domain.ErrSourceUnavailable, r.cfg.FolderID, google.WrapError(err))
	}

	var records []domain.CandidateRecord
	skipped := 0
	for _, file := range files {
		if file.Id == "" {
			skipped++
			continue
		}

		content := ""
		if r.cfg.Mode == ModeDocs {
			content, err = r.exportText(ctx, file.Id)
			if err != nil {
				// Metadata still identifies the record; content stays empty.
				logger.Debug("drive: exporting %s failed: %v", file.Id, err)
			}
		}

		records = append(records, fileRecord(file, r.kind, content))
	}

	return records, skipped, nil
}

// listChildren pages through the folder's children matching the mode's query.
func (r *Reader) listChildren(ctx context.Context) ([]*drive.File, error) {
	var files []*drive.File
	pageToken := ""

	for {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := r.svc.Files.List().
			Q(r.query()).
			PageSize(r.cfg.pageSize()).
			Fields(listFields).
			OrderBy("name").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, err
		}

		files = append(files, resp.Files...)
		pageToken = resp.NextPageToken
		if pageToken == "" {
			return files, nil
		}
	}
}

// query builds the Drive search query for the mode.
func (r *Reader) query() string {
	mime := MimeTypeGoogleDoc
	if r.cfg.Mode == ModeFolders {
		mime = MimeTypeFolder
	}
	return fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false",
		r.cfg.FolderID, mime)
}

// exportText exports a Google Doc to plain text, bounded by MaxExportSize.
func (r *Reader) exportText(ctx context.Context, fileID string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := r.svc.Files.Export(fileID, ExportMimeText).Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("export file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxExportSize))
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}

	return string(data), nil
}

// fileRecord converts a Drive file or folder to a candidate record.
func fileRecord(file *drive.File, kind domain.RecordKind, content string) domain.CandidateRecord {
	fields := map[string]any{
		"title": file.Name,
	}
	if file.ModifiedTime != "" {
		fields["modified_time"] = file.ModifiedTime
	}
	if file.WebViewLink != "" {
		fields["web_link"] = file.WebViewLink
	}
	if content = strings.TrimSpace(content); content != "" {
		fields["content"] = content
	}

	return domain.CandidateRecord{
		Key:    file.Id,
		Kind:   kind,
		Fields: fields,
	}
}
