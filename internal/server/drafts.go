package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/globalbiznex/biznexbot/internal/models"
)

// draftSessions holds drafts between extraction and confirmation so the user
// can edit them. One mutable draft per session id.
type draftSessions struct {
	mu     sync.Mutex
	drafts map[string]models.Draft
}

func newDraftSessions() *draftSessions {
	return &draftSessions{drafts: make(map[string]models.Draft)}
}

func (s *draftSessions) create(d models.Draft) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.drafts[id] = d
	s.mu.Unlock()
	return id
}

func (s *draftSessions) get(id string) (models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	return d, ok
}

func (s *draftSessions) set(id string, d models.Draft) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return false
	}
	s.drafts[id] = d
	return true
}

func (s *draftSessions) remove(id string) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}
