package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/platform/logging"
)

type reconcileHarness struct {
	records    []string
	fetchErr   error
	existing   map[string]bool
	badKeys    map[string]bool
	createErrs map[string]error

	created []string
}

func (h *reconcileHarness) params() reconcileParams[string] {
	return reconcileParams[string]{
		entity: "widget",
		fetch: func(context.Context) ([]string, error) {
			return h.records, h.fetchErr
		},
		key: func(rec string) (string, bool) {
			return rec, !h.badKeys[rec]
		},
		exists: func(_ context.Context, key string) (bool, error) {
			return h.existing[key], nil
		},
		create: func(_ context.Context, rec string) error {
			if err := h.createErrs[rec]; err != nil {
				return err
			}
			h.created = append(h.created, rec)
			return nil
		},
	}
}

func TestReconcileCreatesOnlyMissing(t *testing.T) {
	t.Parallel()

	h := &reconcileHarness{
		records:  []string{"a", "b", "c"},
		existing: map[string]bool{"b": true},
	}

	created, err := reconcile(context.Background(), logging.NewNop(), h.params())
	require.NoError(t, err)
	require.Equal(t, 2, created)
	require.Equal(t, []string{"a", "c"}, h.created)
}

func TestReconcileFetchFailureYieldsZero(t *testing.T) {
	t.Parallel()

	h := &reconcileHarness{fetchErr: errors.New("upstream down")}

	created, err := reconcile(context.Background(), logging.NewNop(), h.params())
	require.NoError(t, err)
	require.Zero(t, created)
}

func TestReconcileDropsUnkeyedRecords(t *testing.T) {
	t.Parallel()

	h := &reconcileHarness{
		records: []string{"a", "junk", "b"},
		badKeys: map[string]bool{"junk": true},
	}

	created, err := reconcile(context.Background(), logging.NewNop(), h.params())
	require.NoError(t, err)
	require.Equal(t, 2, created)
}

func TestReconcileDuplicateKeyIsNotCounted(t *testing.T) {
	t.Parallel()

	h := &reconcileHarness{
		records: []string{"a", "b"},
		createErrs: map[string]error{
			"a": fmt.Errorf("insert widget: %w", storage.ErrDuplicateKey),
		},
	}

	created, err := reconcile(context.Background(), logging.NewNop(), h.params())
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Equal(t, []string{"b"}, h.created)
}

func TestReconcileStorageFailureAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	h := &reconcileHarness{
		records:    []string{"a", "b", "c"},
		createErrs: map[string]error{"b": boom},
	}

	created, err := reconcile(context.Background(), logging.NewNop(), h.params())
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, created)
}
