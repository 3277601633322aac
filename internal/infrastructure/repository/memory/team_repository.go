package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[int64]team.Team)}
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *TeamRepository) GetByReference(_ context.Context, reference string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Reference == reference {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context, offset, limit int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]team.Team, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	if err := t.Validate(); err != nil {
		return team.Team{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.Reference == t.Reference {
			return team.Team{}, fmt.Errorf("team %q: %w", t.Reference, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	t.ID = r.nextID
	r.items[t.ID] = t
	return t, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		return fmt.Errorf("team %d does not exist", t.ID)
	}
	r.items[t.ID] = t
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
