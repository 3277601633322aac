package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
)

type importJobTableModel struct {
	ID         string     `db:"id"`
	Kind       string     `db:"kind"`
	StartYear  *int       `db:"start_year"`
	EndYear    *int       `db:"end_year"`
	Year       *int       `db:"year"`
	Status     string     `db:"status"`
	Counts     []byte     `db:"counts"`
	Error      string     `db:"error"`
	CreatedAt  time.Time  `db:"created_at"`
	StartedAt  *time.Time `db:"started_at"`
	FinishedAt *time.Time `db:"finished_at"`
}

func (m importJobTableModel) toDomain() (importjob.Job, error) {
	j := importjob.Job{
		ID:   m.ID,
		Kind: importjob.Kind(m.Kind),
		Scope: importjob.Scope{
			StartYear: m.StartYear,
			EndYear:   m.EndYear,
			Year:      m.Year,
		},
		Status:     importjob.Status(m.Status),
		Error:      m.Error,
		CreatedAt:  m.CreatedAt,
		StartedAt:  m.StartedAt,
		FinishedAt: m.FinishedAt,
	}
	if len(m.Counts) > 0 {
		if err := sonic.Unmarshal(m.Counts, &j.Counts); err != nil {
			return importjob.Job{}, fmt.Errorf("decode import job counts: %w", err)
		}
	}
	return j, nil
}

func encodeJobCounts(counts map[string]int) ([]byte, error) {
	if counts == nil {
		counts = map[string]int{}
	}
	raw, err := sonic.Marshal(counts)
	if err != nil {
		return nil, fmt.Errorf("encode import job counts: %w", err)
	}
	return raw, nil
}

var importJobColumns = []string{
	"id", "kind", "start_year", "end_year", "year",
	"status", "counts", "error", "created_at", "started_at", "finished_at",
}
