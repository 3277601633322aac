package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type ImportJobRepository struct {
	mu    sync.RWMutex
	items map[string]importjob.Job
}

func NewImportJobRepository() *ImportJobRepository {
	return &ImportJobRepository{items: make(map[string]importjob.Job)}
}

func (r *ImportJobRepository) GetByID(_ context.Context, id string) (importjob.Job, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *ImportJobRepository) List(_ context.Context, offset, limit int) ([]importjob.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]importjob.Job, 0, len(r.items))
	for _, item := range r.items {
		all = append(all, item)
	}
	// Newest first, matching the SQL ordering.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	offset, limit = clampPage(len(all), offset, limit)
	return all[offset : offset+limit], nil
}

func (r *ImportJobRepository) Create(_ context.Context, j importjob.Job) (importjob.Job, error) {
	if err := j.Validate(); err != nil {
		return importjob.Job{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[j.ID]; ok {
		return importjob.Job{}, fmt.Errorf("import job %q: %w", j.ID, storage.ErrDuplicateKey)
	}
	r.items[j.ID] = j
	return j, nil
}

func (r *ImportJobRepository) Update(_ context.Context, j importjob.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[j.ID]; !ok {
		return fmt.Errorf("import job %q does not exist", j.ID)
	}
	r.items[j.ID] = j
	return nil
}

func (r *ImportJobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
