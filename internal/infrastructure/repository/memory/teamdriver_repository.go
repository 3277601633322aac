package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/domain/teamdriver"
)

type TeamDriverRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]teamdriver.TeamDriver
}

func NewTeamDriverRepository() *TeamDriverRepository {
	return &TeamDriverRepository{items: make(map[int64]teamdriver.TeamDriver)}
}

func (r *TeamDriverRepository) GetByID(_ context.Context, id int64) (teamdriver.TeamDriver, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *TeamDriverRepository) GetByTriple(_ context.Context, teamID, driverID int64, seasonYear int) (teamdriver.TeamDriver, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.TeamID == teamID && item.DriverID == driverID && item.SeasonYear == seasonYear {
			return item, true, nil
		}
	}
	return teamdriver.TeamDriver{}, false, nil
}

func (r *TeamDriverRepository) List(_ context.Context, offset, limit int) ([]teamdriver.TeamDriver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]teamdriver.TeamDriver, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *TeamDriverRepository) ListBySeasonYear(_ context.Context, seasonYear int, offset, limit int) ([]teamdriver.TeamDriver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]teamdriver.TeamDriver, 0)
	for _, id := range sortedIDs(r.items) {
		if r.items[id].SeasonYear == seasonYear {
			matched = append(matched, r.items[id])
		}
	}

	offset, limit = clampPage(len(matched), offset, limit)
	return matched[offset : offset+limit], nil
}

func (r *TeamDriverRepository) Create(_ context.Context, td teamdriver.TeamDriver) (teamdriver.TeamDriver, error) {
	if err := td.Validate(); err != nil {
		return teamdriver.TeamDriver{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.TeamID == td.TeamID && item.DriverID == td.DriverID && item.SeasonYear == td.SeasonYear {
			return teamdriver.TeamDriver{}, fmt.Errorf("pairing %d/%d/%d: %w",
				td.TeamID, td.DriverID, td.SeasonYear, storage.ErrDuplicateKey)
		}
	}

	r.nextID++
	td.ID = r.nextID
	r.items[td.ID] = td
	return td, nil
}

func (r *TeamDriverRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
