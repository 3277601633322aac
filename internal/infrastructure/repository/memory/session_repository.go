package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gridline/f1-mirror/internal/domain/session"
)

// SessionRepository enforces no uniqueness: sessions carry no natural key
// and every create appends.
type SessionRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]session.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{items: make(map[int64]session.Session)}
}

func (r *SessionRepository) GetByID(_ context.Context, id int64) (session.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *SessionRepository) List(_ context.Context, offset, limit int) ([]session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := sortedIDs(r.items)
	offset, limit = clampPage(len(ids), offset, limit)

	out := make([]session.Session, 0, limit)
	for _, id := range ids[offset : offset+limit] {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *SessionRepository) ListByRound(_ context.Context, roundID int64, offset, limit int) ([]session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]session.Session, 0)
	for _, id := range sortedIDs(r.items) {
		if r.items[id].RoundID == roundID {
			matched = append(matched, r.items[id])
		}
	}

	offset, limit = clampPage(len(matched), offset, limit)
	return matched[offset : offset+limit], nil
}

func (r *SessionRepository) Create(_ context.Context, s session.Session) (session.Session, error) {
	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = s
	return s, nil
}

func (r *SessionRepository) Update(_ context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.ID]; !ok {
		return fmt.Errorf("session %d does not exist", s.ID)
	}
	r.items[s.ID] = s
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
