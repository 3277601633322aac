package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/result"
)

type ResultRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]result.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{items: make(map[int64]result.Result)}
}

func (r *ResultRepository) GetByID(_ context.Context, id int64) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *ResultRepository) List(_ context.Context, offset, limit int) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]result.Result, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *ResultRepository) ListBySession(_ context.Context, sessionID int64, offset, limit int) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]result.Result, 0)
	for _, id := range sortedIDs(r.items) {
		if r.items[id].SessionID == sessionID {
			matched = append(matched, r.items[id])
		}
	}

	offset, limit = clampPage(len(matched), offset, limit)
	return matched[offset : offset+limit], nil
}

func (r *ResultRepository) Create(_ context.Context, item result.Result) (result.Result, error) {
	if err := item.Validate(); err != nil {
		return result.Result{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *ResultRepository) Update(_ context.Context, item result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("result %d does not exist", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *ResultRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
