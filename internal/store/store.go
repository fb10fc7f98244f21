// Package store holds the durable persistence boundary for the content plan
// and its post log. The dispatch pipeline only ever reads a full snapshot and
// writes single fields back by row key.
package store

import "github.com/globalbiznex/biznexbot/internal/models"

// Row couples a stored content item with its opaque row key. The key is a
// storage locator only; it never carries business meaning.
type Row struct {
	Key  uint
	Item models.ContentItem
}

// RecordStore is the durable content plan.
type RecordStore interface {
	// Append persists a new item with the next content id
	// (max existing + 1, 1 when the store is empty) and returns that id.
	Append(item models.ContentItem) (int, error)
	// ReadAll returns every row in store order with its row key.
	ReadAll() ([]Row, error)
	// UpdateField performs a single-field in-place update by row key.
	UpdateField(key uint, field, value string) error
	// AppendPostLog appends one post log entry. Entries are never updated.
	AppendPostLog(entry models.PostLogEntry) error
	// PostLog returns all log entries, newest first.
	PostLog() ([]models.PostLogEntry, error)
}
