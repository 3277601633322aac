package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type ImportJobRepository struct {
	db *sqlx.DB
}

func NewImportJobRepository(db *sqlx.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

func (r *ImportJobRepository) GetByID(ctx context.Context, id string) (importjob.Job, bool, error) {
	query, args, err := psql.Select(importJobColumns...).
		From("import_jobs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return importjob.Job{}, false, fmt.Errorf("build select import job query: %w", err)
	}

	var row importJobTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return importjob.Job{}, false, nil
		}
		return importjob.Job{}, false, fmt.Errorf("select import job %q: %w", id, err)
	}

	j, err := row.toDomain()
	if err != nil {
		return importjob.Job{}, false, err
	}
	return j, true, nil
}

func (r *ImportJobRepository) List(ctx context.Context, offset, limit int) ([]importjob.Job, error) {
	query, args, err := psql.Select(importJobColumns...).
		From("import_jobs").
		OrderBy("created_at DESC", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list import jobs query: %w", err)
	}

	var rows []importJobTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list import jobs: %w", err)
	}

	out := make([]importjob.Job, 0, len(rows))
	for _, row := range rows {
		j, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *ImportJobRepository) Create(ctx context.Context, j importjob.Job) (importjob.Job, error) {
	if err := j.Validate(); err != nil {
		return importjob.Job{}, err
	}

	counts, err := encodeJobCounts(j.Counts)
	if err != nil {
		return importjob.Job{}, err
	}

	query, args, err := psql.Insert("import_jobs").
		Columns("id", "kind", "start_year", "end_year", "year",
			"status", "counts", "error", "created_at", "started_at", "finished_at").
		Values(j.ID, string(j.Kind), j.Scope.StartYear, j.Scope.EndYear, j.Scope.Year,
			string(j.Status), counts, j.Error, j.CreatedAt, j.StartedAt, j.FinishedAt).
		ToSql()
	if err != nil {
		return importjob.Job{}, fmt.Errorf("build insert import job query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return importjob.Job{}, fmt.Errorf("import job %q: %w", j.ID, storage.ErrDuplicateKey)
		}
		return importjob.Job{}, fmt.Errorf("insert import job %q: %w", j.ID, err)
	}

	return j, nil
}

func (r *ImportJobRepository) Update(ctx context.Context, j importjob.Job) error {
	counts, err := encodeJobCounts(j.Counts)
	if err != nil {
		return err
	}

	query, args, err := psql.Update("import_jobs").
		Set("status", string(j.Status)).
		Set("counts", counts).
		Set("error", j.Error).
		Set("started_at", j.StartedAt).
		Set("finished_at", j.FinishedAt).
		Where(sq.Eq{"id": j.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update import job query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update import job %q: %w", j.ID, err)
	}
	return nil
}

func (r *ImportJobRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("import_jobs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete import job query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete import job %q: %w", id, err)
	}
	return nil
}
