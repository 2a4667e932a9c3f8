// Package google provides shared infrastructure for Google API connectors.
//
// This package contains common utilities used by the sheets and drive
// readers including:
//   - Service factories for creating Google API clients from a service
//     account credentials file
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each Google reader (sheets, drive) uses this package to create
// authenticated API clients:
//
//	ts, err := google.TokenSourceFromFile(ctx, credentialsPath)
//	svc, err := google.NewSheetsService(ctx, ts)
//
// # OAuth2 Scopes
//
// Google readers use read-only scopes:
//   - https://www.googleapis.com/auth/spreadsheets.readonly
//   - https://www.googleapis.com/auth/drive.readonly
package google
