package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

func (r *RoundRepository) getOne(ctx context.Context, pred sq.Eq) (round.Round, bool, error) {
	query, args, err := psql.Select(roundColumns...).
		From("rounds").
		Where(pred).
		ToSql()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build select round query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("select round: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, id int64) (round.Round, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *RoundRepository) GetByReference(ctx context.Context, reference string) (round.Round, bool, error) {
	return r.getOne(ctx, sq.Eq{"reference": reference})
}

func (r *RoundRepository) list(ctx context.Context, pred any, offset, limit int) ([]round.Round, error) {
	builder := psql.Select(roundColumns...).
		From("rounds").
		OrderBy("season_id", "number").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rounds query: %w", err)
	}

	var rows []roundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RoundRepository) List(ctx context.Context, offset, limit int) ([]round.Round, error) {
	return r.list(ctx, nil, offset, limit)
}

func (r *RoundRepository) ListBySeason(ctx context.Context, seasonID int64, offset, limit int) ([]round.Round, error) {
	return r.list(ctx, sq.Eq{"season_id": seasonID}, offset, limit)
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) (round.Round, error) {
	if err := item.Validate(); err != nil {
		return round.Round{}, err
	}

	query, args, err := psql.Insert("rounds").
		Columns("season_id", "circuit_id", "reference", "name", "number", "date", "time").
		Values(item.SeasonID, item.CircuitID, item.Reference, item.Name, item.Number, item.Date, item.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return round.Round{}, fmt.Errorf("build insert round query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return round.Round{}, fmt.Errorf("round %q: %w", item.Reference, storage.ErrDuplicateKey)
		}
		return round.Round{}, fmt.Errorf("insert round %q: %w", item.Reference, err)
	}

	return item, nil
}

func (r *RoundRepository) Update(ctx context.Context, item round.Round) error {
	query, args, err := psql.Update("rounds").
		Set("season_id", item.SeasonID).
		Set("circuit_id", item.CircuitID).
		Set("reference", item.Reference).
		Set("name", item.Name).
		Set("number", item.Number).
		Set("date", item.Date).
		Set("time", item.Time).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update round query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update round %d: %w", item.ID, err)
	}
	return nil
}

func (r *RoundRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("rounds").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete round query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete round %d: %w", id, err)
	}
	return nil
}
