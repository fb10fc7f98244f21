package store

import (
	"fmt"
	"sync"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// MemoryStore is an in-process record store used in simulate mode and tests.
// It mirrors GormStore's id and row-key behavior.
type MemoryStore struct {
	mu      sync.Mutex
	rows    []Row
	log     []models.PostLogEntry
	nextKey uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextKey: 1}
}

func (s *MemoryStore) Append(item models.ContentItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := 1
	for _, row := range s.rows {
		if row.Item.ContentID >= nextID {
			nextID = row.Item.ContentID + 1
		}
	}

	item.ID = s.nextKey
	item.ContentID = nextID
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	s.rows = append(s.rows, Row{Key: s.nextKey, Item: item})
	s.nextKey++
	return nextID, nil
}

func (s *MemoryStore) ReadAll() ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *MemoryStore) UpdateField(key uint, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].Key != key {
			continue
		}
		item := &s.rows[i].Item
		switch field {
		case "status":
			item.Status = value
		case "date":
			item.Date = value
		case "time":
			item.Time = value
		case "platforms":
			item.Platforms = value
		case "idea":
			item.Idea = value
		case "caption":
			item.Caption = value
		case "image_url":
			item.ImageURL = value
		case "hashtags":
			item.Hashtags = value
		case "groups":
			item.Groups = value
		default:
			return fmt.Errorf("unknown field %q", field)
		}
		return nil
	}
	return fmt.Errorf("row %d not found", key)
}

func (s *MemoryStore) AppendPostLog(entry models.PostLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uint(len(s.log) + 1)
	s.log = append(s.log, entry)
	return nil
}

func (s *MemoryStore) PostLog() ([]models.PostLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PostLogEntry, 0, len(s.log))
	for i := len(s.log) - 1; i >= 0; i-- {
		out = append(out, s.log[i])
	}
	return out, nil
}
