// Package draft keeps the per-contract edited-body overrides produced by
// edit mode. Overrides live in process memory only: they stand in for the
// current viewing session and are gone after a restart.
package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Draft is a committed edit of a merged document body.
type Draft struct {
	Body      string    `json:"body"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a thread-safe override registry keyed by contract id.
type Store struct {
	mu     sync.Mutex
	drafts map[string]Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[string]Draft)}
}

// Put commits an edited body and returns the new revision id.
func (s *Store) Put(contractID, body string) Draft {
	d := Draft{
		Body:      body,
		Revision:  uuid.NewString(),
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[contractID] = d
	return d
}

// Get returns the override for a contract, if any.
func (s *Store) Get(contractID string) (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[contractID]
	return d, ok
}

// Discard drops the override so the next view re-merges from the template.
func (s *Store) Discard(contractID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, contractID)
}
