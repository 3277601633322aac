package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/platform/logging"
)

// reconcileParams parameterizes the shared fetch → key-lookup →
// skip-or-create control flow that every natural-key importer follows.
type reconcileParams[U any] struct {
	// entity names the kind for logging.
	entity string
	// fetch loads the upstream records for the requested scope.
	fetch func(ctx context.Context) ([]U, error)
	// key extracts the natural key; ok=false drops the record silently
	// (out-of-range season years, records the caller filters out).
	key func(rec U) (key string, ok bool)
	// exists answers whether the natural key is already persisted.
	exists func(ctx context.Context, key string) (bool, error)
	// create persists one record. A storage.ErrDuplicateKey return is
	// treated as "already exists": another job won the insert race.
	create func(ctx context.Context, rec U) error
}

// reconcile runs one importer routine. Fetch failures collapse to a zero
// count so a partial upstream outage degrades the run instead of aborting
// it; per-record lookup failures skip that record only. Storage failures
// other than the duplicate-key race abort the routine.
func reconcile[U any](ctx context.Context, logger *logging.Logger, p reconcileParams[U]) (int, error) {
	if logger == nil {
		logger = logging.Default()
	}

	records, err := p.fetch(ctx)
	if err != nil {
		logger.WarnContext(ctx, "fetch failed, importing nothing for this routine",
			"entity", p.entity, "error", err)
		return 0, nil
	}

	created := 0
	for _, rec := range records {
		key, ok := p.key(rec)
		if !ok {
			continue
		}

		found, err := p.exists(ctx, key)
		if err != nil {
			logger.ErrorContext(ctx, "existence lookup failed, skipping record",
				"entity", p.entity, "key", key, "error", err)
			continue
		}
		if found {
			continue
		}

		if err := p.create(ctx, rec); err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				logger.DebugContext(ctx, "lost create race, record already exists",
					"entity", p.entity, "key", key)
				continue
			}
			return created, fmt.Errorf("create %s %q: %w", p.entity, key, err)
		}
		created++
	}

	return created, nil
}
