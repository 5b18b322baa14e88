package repository

import (
	"context"
	"fmt"

	"github.com/okian/racelens/internal/domain/model"
)

// MemoryStore is an immutable in-memory Store indexed by overall position.
type MemoryStore struct {
	runners    []model.Runner
	byPosition map[int]int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore copies runners into a new store. Duplicate positions keep
// the first occurrence in the index.
func NewMemoryStore(runners []model.Runner) *MemoryStore {
	s := &MemoryStore{
		runners:    append([]model.Runner(nil), runners...),
		byPosition: make(map[int]int, len(runners)),
	}
	for i, r := range s.runners {
		if _, dup := s.byPosition[r.Position]; !dup {
			s.byPosition[r.Position] = i
		}
	}
	return s
}

// All implements Store.
func (s *MemoryStore) All(_ context.Context) []model.Runner {
	return s.runners
}

// ByPosition implements Store.
func (s *MemoryStore) ByPosition(_ context.Context, position int) (model.Runner, error) {
	i, ok := s.byPosition[position]
	if !ok {
		return model.Runner{}, fmt.Errorf("%w: position %d", ErrNotFound, position)
	}
	return s.runners[i], nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	return len(s.runners)
}
