package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/regportal/backend/internal/domain"
)

// MemoryStore is an in-process record store used by tests and local runs.
type MemoryStore struct {
	mu      sync.Mutex
	records []domain.UserRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.UserRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Append(_ context.Context, rec domain.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.UserName == rec.UserName {
			return domain.ErrDuplicateEntry
		}
	}

	s.records = append(s.records, rec)
	return nil
}

func (s *MemoryStore) UpdateApproval(_ context.Context, id uuid.UUID, status domain.ApprovalStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].IsApproved = status
			return nil
		}
	}
	return domain.ErrNotFound
}
