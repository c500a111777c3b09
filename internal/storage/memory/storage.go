package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/game2048/internal/model"
	"github.com/mcoot/game2048/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameID]*model.GameRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.GameRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, record *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[record.ID] = cloneRecord(record)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneRecord(record), nil
}

func (s *Storage) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.GameRecord, 0, len(s.games))
	for _, record := range s.games {
		records = append(records, cloneRecord(record))
	}

	slices.SortFunc(records, func(a, b *model.GameRecord) int {
		if c := b.EndedAt.Compare(a.EndedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// cloneRecord copies a record so callers never share the stored cells
func cloneRecord(r *model.GameRecord) *model.GameRecord {
	c := *r
	c.Cells = make([][]int, len(r.Cells))
	for i, row := range r.Cells {
		c.Cells[i] = slices.Clone(row)
	}
	return &c
}
