package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	query, args, err := psql.Select("id", "year", "url").
		From("seasons").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season %d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) GetByYear(ctx context.Context, year int) (season.Season, bool, error) {
	query, args, err := psql.Select("id", "year", "url").
		From("seasons").
		Where(sq.Eq{"year": year}).
		ToSql()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season by year query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season year %d: %w", year, err)
	}

	return row.toDomain(), true, nil
}

func (r *SeasonRepository) List(ctx context.Context, offset, limit int) ([]season.Season, error) {
	query, args, err := psql.Select("id", "year", "url").
		From("seasons").
		OrderBy("year").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (season.Season, error) {
	if err := s.Validate(); err != nil {
		return season.Season{}, err
	}

	query, args, err := psql.Insert("seasons").
		Columns("year", "url").
		Values(s.Year, s.URL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	if err := r.db.GetContext(ctx, &s.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return season.Season{}, fmt.Errorf("season %d: %w", s.Year, storage.ErrDuplicateKey)
		}
		return season.Season{}, fmt.Errorf("insert season %d: %w", s.Year, err)
	}

	return s, nil
}

func (r *SeasonRepository) Update(ctx context.Context, s season.Season) error {
	query, args, err := psql.Update("seasons").
		Set("year", s.Year).
		Set("url", s.URL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update season %d: %w", s.ID, err)
	}
	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("seasons").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete season %d: %w", id, err)
	}
	return nil
}
