// Package connectors provides implementations of the SourceReader interface
// for the external systems contentsync pulls from. Each connector knows how
// to fetch candidate records from a specific source type (Google Sheets
// spreadsheets, Google Drive folders).
package connectors
