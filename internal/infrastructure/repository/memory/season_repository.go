package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type SeasonRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]season.Season
}

func NewSeasonRepository() *SeasonRepository {
	return &SeasonRepository{items: make(map[int64]season.Season)}
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *SeasonRepository) GetByYear(_ context.Context, year int) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Year == year {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *SeasonRepository) List(_ context.Context, offset, limit int) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]season.Season, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *SeasonRepository) Create(_ context.Context, s season.Season) (season.Season, error) {
	if err := s.Validate(); err != nil {
		return season.Season{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Year == s.Year {
			return season.Season{}, fmt.Errorf("season year %d: %w", s.Year, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = s
	return s, nil
}

func (r *SeasonRepository) Update(_ context.Context, s season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.ID]; !ok {
		return fmt.Errorf("season %d does not exist", s.ID)
	}
	r.items[s.ID] = s
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
