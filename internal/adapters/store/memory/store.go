// Package memory provides the in-process quotation store.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// Store keeps quotation requests in insertion order.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []domain.QuotationRequest
	index   map[int64]int // id -> position in records
	lastID  int64         // highest id ever assigned
}

// New creates an empty store.
func New() *Store {
	return &Store{
		index: make(map[int64]int),
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store-memory"
}

// Check implements ports.HealthChecker. The in-process store is always available.
func (s *Store) Check(_ context.Context) error {
	return nil
}

// List returns a copy of every record in insertion order.
func (s *Store) List(_ context.Context) ([]domain.QuotationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.QuotationRequest, len(s.records))
	copy(out, s.records)

	return out, nil
}

// GetByID returns a copy of the record with the given id.
func (s *Store) GetByID(_ context.Context, id int64) (*domain.QuotationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, domain.NewQuotationNotFound(id)
	}

	rec := s.records[pos]

	return &rec, nil
}

// Insert appends a record under the next identifier.
func (s *Store) Insert(_ context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	rec := domain.QuotationRequest{ID: s.lastID, QuotationFields: fields}

	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec)

	return &rec, nil
}

// Update replaces the fields of an existing record in place.
func (s *Store) Update(_ context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, domain.NewQuotationNotFound(id)
	}

	s.records[pos].QuotationFields = fields
	rec := s.records[pos]

	return &rec, nil
}

// Delete removes a record and reindexes the records after it.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return domain.NewQuotationNotFound(id)
	}

	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)

	for i := pos; i < len(s.records); i++ {
		s.index[s.records[i].ID] = i
	}

	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
