package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/result"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByID(ctx context.Context, id int64) (result.Result, bool, error) {
	query, args, err := psql.Select(resultColumns...).
		From("results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return result.Result{}, false, fmt.Errorf("build select result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, fmt.Errorf("select result %d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *ResultRepository) list(ctx context.Context, pred any, offset, limit int) ([]result.Result, error) {
	builder := psql.Select(resultColumns...).
		From("results").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ResultRepository) List(ctx context.Context, offset, limit int) ([]result.Result, error) {
	return r.list(ctx, nil, offset, limit)
}

func (r *ResultRepository) ListBySession(ctx context.Context, sessionID int64, offset, limit int) ([]result.Result, error) {
	return r.list(ctx, sq.Eq{"session_id": sessionID}, offset, limit)
}

func (r *ResultRepository) Create(ctx context.Context, item result.Result) (result.Result, error) {
	if err := item.Validate(); err != nil {
		return result.Result{}, err
	}

	query, args, err := psql.Insert("results").
		Columns("session_id", "driver_id", "team_id", "position", "position_text",
			"points", "grid", "laps", "status", "time_text", "milliseconds").
		Values(item.SessionID, item.DriverID, item.TeamID, item.Position, item.PositionText,
			item.Points, item.Grid, item.Laps, item.Status, item.TimeText, item.Milliseconds).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return result.Result{}, fmt.Errorf("build insert result query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return result.Result{}, fmt.Errorf("insert result for session %d: %w", item.SessionID, err)
	}

	return item, nil
}

func (r *ResultRepository) Update(ctx context.Context, item result.Result) error {
	query, args, err := psql.Update("results").
		Set("session_id", item.SessionID).
		Set("driver_id", item.DriverID).
		Set("team_id", item.TeamID).
		Set("position", item.Position).
		Set("position_text", item.PositionText).
		Set("points", item.Points).
		Set("grid", item.Grid).
		Set("laps", item.Laps).
		Set("status", item.Status).
		Set("time_text", item.TimeText).
		Set("milliseconds", item.Milliseconds).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update result %d: %w", item.ID, err)
	}
	return nil
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("results").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete result %d: %w", id, err)
	}
	return nil
}
