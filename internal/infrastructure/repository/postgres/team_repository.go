package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) getOne(ctx context.Context, pred sq.Eq) (team.Team, bool, error) {
	query, args, err := psql.Select(teamColumns...).
		From("teams").
		Where(pred).
		ToSql()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *TeamRepository) GetByReference(ctx context.Context, reference string) (team.Team, bool, error) {
	return r.getOne(ctx, sq.Eq{"reference": reference})
}

func (r *TeamRepository) List(ctx context.Context, offset, limit int) ([]team.Team, error) {
	query, args, err := psql.Select(teamColumns...).
		From("teams").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	if err := t.Validate(); err != nil {
		return team.Team{}, err
	}

	query, args, err := psql.Insert("teams").
		Columns("reference", "name", "nationality", "constructor_id").
		Values(t.Reference, t.Name, t.Nationality, t.ConstructorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := r.db.GetContext(ctx, &t.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, fmt.Errorf("team %q: %w", t.Reference, storage.ErrDuplicateKey)
		}
		return team.Team{}, fmt.Errorf("insert team %q: %w", t.Reference, err)
	}

	return t, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := psql.Update("teams").
		Set("reference", t.Reference).
		Set("name", t.Name).
		Set("nationality", t.Nationality).
		Set("constructor_id", t.ConstructorID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team %d: %w", t.ID, err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("teams").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team %d: %w", id, err)
	}
	return nil
}
