package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/circuit"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type CircuitRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]circuit.Circuit
}

func NewCircuitRepository() *CircuitRepository {
	return &CircuitRepository{items: make(map[int64]circuit.Circuit)}
}

func (r *CircuitRepository) GetByID(_ context.Context, id int64) (circuit.Circuit, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *CircuitRepository) GetByReference(_ context.Context, reference string) (circuit.Circuit, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Reference == reference {
			return item, true, nil
		}
	}
	return circuit.Circuit{}, false, nil
}

func (r *CircuitRepository) List(_ context.Context, offset, limit int) ([]circuit.Circuit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]circuit.Circuit, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *CircuitRepository) Create(_ context.Context, c circuit.Circuit) (circuit.Circuit, error) {
	if err := c.Validate(); err != nil {
		return circuit.Circuit{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Reference == c.Reference {
			return circuit.Circuit{}, fmt.Errorf("circuit %q: %w", c.Reference, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = c
	return c, nil
}

func (r *CircuitRepository) Update(_ context.Context, c circuit.Circuit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		return fmt.Errorf("circuit %d does not exist", c.ID)
	}
	r.items[c.ID] = c
	return nil
}

func (r *CircuitRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
