package domain

import "time"

// RecordKind identifies which reconciliation job a record belongs to.
// Each kind maps to one external source shape and one store partition.
type RecordKind string

const (
	// KindSettings is a row in the site settings spreadsheet.
	KindSettings RecordKind = "settings-row"

	// KindProduct is a row in the products spreadsheet.
	KindProduct RecordKind = "product-row"

	// KindBlog is a document file in the blogs Drive folder.
	KindBlog RecordKind = "blog-doc"

	// KindBook is a child folder in the books Drive folder.
	KindBook RecordKind = "book-folder"
)

// Valid reports whether the kind is one of the known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case KindSettings, KindProduct, KindBlog, KindBook:
		return true
	default:
		return false
	}
}

// CandidateRecord is one item as read from the external source on this run.
// It is rebuilt fresh on every sync and never persisted itself.
type CandidateRecord struct {
	// Key is the stable identity used to match against persisted records:
	// the designated key column for spreadsheet rows, or the Drive
	// file/folder ID for Drive sources.
	Key string

	// Kind tags which job produced the record.
	Kind RecordKind

	// Fields holds the normalised source values. Values are string,
	// float64 or bool.
	Fields map[string]any
}

// PersistedRecord is the store's durable representation of an item.
type PersistedRecord struct {
	// SourceID is the external identity, matching CandidateRecord.Key.
	// At most one persisted record exists per (Kind, SourceID).
	SourceID string

	// Kind tags the record's partition.
	Kind RecordKind

	// Fields holds the last synced source values.
	Fields map[string]any

	// Slug is derived locally from the record's title field.
	Slug string

	// Excerpt is derived locally from the record's content field.
	Excerpt string

	// LastSyncedAt is when this record was last written by a sync run.
	LastSyncedAt time.Time
}

// FieldString returns the named field as a string, or "" if absent or
// not a string.
func (r *PersistedRecord) FieldString(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}
