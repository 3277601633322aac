package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/driver"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type DriverRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]driver.Driver
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{items: make(map[int64]driver.Driver)}
}

func (r *DriverRepository) GetByID(_ context.Context, id int64) (driver.Driver, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *DriverRepository) GetByReference(_ context.Context, reference string) (driver.Driver, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Reference == reference {
			return item, true, nil
		}
	}
	return driver.Driver{}, false, nil
}

func (r *DriverRepository) List(_ context.Context, offset, limit int) ([]driver.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]driver.Driver, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *DriverRepository) Create(_ context.Context, d driver.Driver) (driver.Driver, error) {
	if err := d.Validate(); err != nil {
		return driver.Driver{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Reference == d.Reference {
			return driver.Driver{}, fmt.Errorf("driver %q: %w", d.Reference, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	d.ID = r.nextID
	r.items[d.ID] = d
	return d, nil
}

func (r *DriverRepository) Update(_ context.Context, d driver.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[d.ID]; !ok {
		return fmt.Errorf("driver %d does not exist", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

func (r *DriverRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
