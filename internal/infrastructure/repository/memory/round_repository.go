package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type RoundRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]round.Round
}

func NewRoundRepository() *RoundRepository {
	return &RoundRepository{items: make(map[int64]round.Round)}
}

func (r *RoundRepository) GetByID(_ context.Context, id int64) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *RoundRepository) GetByReference(_ context.Context, reference string) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Reference == reference {
			return item, true, nil
		}
	}
	return round.Round{}, false, nil
}

func (r *RoundRepository) List(_ context.Context, offset, limit int) ([]round.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]round.Round, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *RoundRepository) ListBySeason(_ context.Context, seasonID int64, offset, limit int) ([]round.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]round.Round, 0)
	for _, id := range sortedIDs(r.items) {
		if r.items[id].SeasonID == seasonID {
			matched = append(matched, r.items[id])
		}
	}

	offset, limit = clampPage(len(matched), offset, limit)
	return matched[offset : offset+limit], nil
}

func (r *RoundRepository) Create(_ context.Context, item round.Round) (round.Round, error) {
	if err := item.Validate(); err != nil {
		return round.Round{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Reference == item.Reference {
			return round.Round{}, fmt.Errorf("round %q: %w", item.Reference, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *RoundRepository) Update(_ context.Context, item round.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("round %d does not exist", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *RoundRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
