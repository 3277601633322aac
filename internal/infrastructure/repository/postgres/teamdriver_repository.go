package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/domain/teamdriver"
)

type TeamDriverRepository struct {
	db *sqlx.DB
}

func NewTeamDriverRepository(db *sqlx.DB) *TeamDriverRepository {
	return &TeamDriverRepository{db: db}
}

func (r *TeamDriverRepository) getOne(ctx context.Context, pred sq.Eq) (teamdriver.TeamDriver, bool, error) {
	query, args, err := psql.Select(teamDriverColumns...).
		From("team_drivers").
		Where(pred).
		ToSql()
	if err != nil {
		return teamdriver.TeamDriver{}, false, fmt.Errorf("build select team driver query: %w", err)
	}

	var row teamDriverTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamdriver.TeamDriver{}, false, nil
		}
		return teamdriver.TeamDriver{}, false, fmt.Errorf("select team driver: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamDriverRepository) GetByID(ctx context.Context, id int64) (teamdriver.TeamDriver, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *TeamDriverRepository) GetByTriple(ctx context.Context, teamID, driverID int64, seasonYear int) (teamdriver.TeamDriver, bool, error) {
	return r.getOne(ctx, sq.Eq{
		"team_id":     teamID,
		"driver_id":   driverID,
		"season_year": seasonYear,
	})
}

func (r *TeamDriverRepository) list(ctx context.Context, pred any, offset, limit int) ([]teamdriver.TeamDriver, error) {
	builder := psql.Select(teamDriverColumns...).
		From("team_drivers").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list team drivers query: %w", err)
	}

	var rows []teamDriverTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team drivers: %w", err)
	}

	out := make([]teamdriver.TeamDriver, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamDriverRepository) List(ctx context.Context, offset, limit int) ([]teamdriver.TeamDriver, error) {
	return r.list(ctx, nil, offset, limit)
}

func (r *TeamDriverRepository) ListBySeasonYear(ctx context.Context, seasonYear int, offset, limit int) ([]teamdriver.TeamDriver, error) {
	return r.list(ctx, sq.Eq{"season_year": seasonYear}, offset, limit)
}

func (r *TeamDriverRepository) Create(ctx context.Context, td teamdriver.TeamDriver) (teamdriver.TeamDriver, error) {
	if err := td.Validate(); err != nil {
		return teamdriver.TeamDriver{}, err
	}

	query, args, err := psql.Insert("team_drivers").
		Columns("team_id", "driver_id", "season_year").
		Values(td.TeamID, td.DriverID, td.SeasonYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return teamdriver.TeamDriver{}, fmt.Errorf("build insert team driver query: %w", err)
	}

	if err := r.db.GetContext(ctx, &td.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return teamdriver.TeamDriver{}, fmt.Errorf("pairing %d/%d/%d: %w",
				td.TeamID, td.DriverID, td.SeasonYear, storage.ErrDuplicateKey)
		}
		return teamdriver.TeamDriver{}, fmt.Errorf("insert team driver: %w", err)
	}

	return td, nil
}

func (r *TeamDriverRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("team_drivers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete team driver query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team driver %d: %w", id, err)
	}
	return nil
}
