package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/azulboard/internal/model"
	"github.com/mcoot/azulboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu     sync.RWMutex
	boards map[model.BoardID]*model.BoardRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		boards: make(map[model.BoardID]*model.BoardRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Records are copied on the way in and out so callers never share state with the store

func (s *Storage) SaveBoard(ctx context.Context, record *model.BoardRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[record.ID] = cloneRecord(record)
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, id model.BoardID) (*model.BoardRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.boards[id]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return cloneRecord(record), nil
}

func (s *Storage) ListBoards(ctx context.Context) ([]*model.BoardRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.BoardRecord, 0, len(s.boards))
	for _, record := range s.boards {
		records = append(records, cloneRecord(record))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (s *Storage) DeleteBoard(ctx context.Context, id model.BoardID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, id)
	return nil
}

func cloneRecord(r *model.BoardRecord) *model.BoardRecord {
	c := *r
	c.State.PatternLines = append([]string(nil), r.State.PatternLines...)
	c.State.Wall = append([]string(nil), r.State.Wall...)
	return &c
}
