// Package registry holds the read-only in-memory snapshot of contracts,
// parties and properties this service works from. The records are owned and
// mutated by the external CRUD layer; here they are only looked up, and a
// missing reference is an ordinary (value, false) answer, never an abort.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/imobly/docforge/internal/contract"
)

// Snapshot is a thread-safe record store.
type Snapshot struct {
	mu         sync.RWMutex
	contracts  map[string]contract.Contract
	parties    map[string]contract.Party
	properties map[string]contract.Property
}

func New() *Snapshot {
	return &Snapshot{
		contracts:  make(map[string]contract.Contract),
		parties:    make(map[string]contract.Party),
		properties: make(map[string]contract.Property),
	}
}

// seedFile is the JSON shape of a snapshot seed.
type seedFile struct {
	Contracts  []contract.Contract `json:"contracts"`
	Parties    []contract.Party    `json:"parties"`
	Properties []contract.Property `json:"properties"`
}

// LoadSeed replaces the snapshot contents from a JSON seed file.
func (s *Snapshot) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = make(map[string]contract.Contract, len(seed.Contracts))
	for _, c := range seed.Contracts {
		s.contracts[c.ID] = c
	}
	s.parties = make(map[string]contract.Party, len(seed.Parties))
	for _, p := range seed.Parties {
		s.parties[p.ID] = p
	}
	s.properties = make(map[string]contract.Property, len(seed.Properties))
	for _, p := range seed.Properties {
		s.properties[p.ID] = p
	}
	return nil
}

func (s *Snapshot) Contract(id string) (contract.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contracts[id]
	return c, ok
}

func (s *Snapshot) Party(id string) (contract.Party, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parties[id]
	return p, ok
}

func (s *Snapshot) Property(id string) (contract.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	return p, ok
}

// Contracts lists all contracts ordered by id, for the listing endpoint.
func (s *Snapshot) Contracts() []contract.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]contract.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutContract upserts a contract. Used by tests and by hosts that push
// fresh snapshots instead of seeding from disk.
func (s *Snapshot) PutContract(c contract.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts[c.ID] = c
}

// PutParty upserts a party record.
func (s *Snapshot) PutParty(p contract.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[p.ID] = p
}

// PutProperty upserts a property record.
func (s *Snapshot) PutProperty(p contract.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID] = p
}
