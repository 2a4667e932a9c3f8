package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ReadScopes are the read-only scopes the readers need.
var ReadScopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	drive.DriveReadonlyScope,
}

// TokenSourceFromFile builds a TokenSource from a service account
// credentials JSON file.
func TokenSourceFromFile(ctx context.Context, path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data)
}

// TokenSourceFromJSON builds a TokenSource from service account
// credentials JSON data.
func TokenSourceFromJSON(ctx context.Context, data []byte) (oauth2.TokenSource, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, ReadScopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return creds.TokenSource, nil
}

// NewSheetsService creates a Google Sheets API service using the provided TokenSource.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}
