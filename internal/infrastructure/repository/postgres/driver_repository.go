package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/driver"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type DriverRepository struct {
	db *sqlx.DB
}

func NewDriverRepository(db *sqlx.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) getOne(ctx context.Context, pred sq.Eq) (driver.Driver, bool, error) {
	query, args, err := psql.Select(driverColumns...).
		From("drivers").
		Where(pred).
		ToSql()
	if err != nil {
		return driver.Driver{}, false, fmt.Errorf("build select driver query: %w", err)
	}

	var row driverTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return driver.Driver{}, false, nil
		}
		return driver.Driver{}, false, fmt.Errorf("select driver: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (driver.Driver, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *DriverRepository) GetByReference(ctx context.Context, reference string) (driver.Driver, bool, error) {
	return r.getOne(ctx, sq.Eq{"reference": reference})
}

func (r *DriverRepository) List(ctx context.Context, offset, limit int) ([]driver.Driver, error) {
	query, args, err := psql.Select(driverColumns...).
		From("drivers").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list drivers query: %w", err)
	}

	var rows []driverTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	out := make([]driver.Driver, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DriverRepository) Create(ctx context.Context, d driver.Driver) (driver.Driver, error) {
	if err := d.Validate(); err != nil {
		return driver.Driver{}, err
	}

	query, args, err := psql.Insert("drivers").
		Columns("reference", "forename", "surname",
			"abbreviation", "number", "nationality", "date_of_birth").
		Values(d.Reference, d.Forename, d.Surname,
			d.Abbreviation, d.Number, d.Nationality, d.DateOfBirth).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return driver.Driver{}, fmt.Errorf("build insert driver query: %w", err)
	}

	if err := r.db.GetContext(ctx, &d.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return driver.Driver{}, fmt.Errorf("driver %q: %w", d.Reference, storage.ErrDuplicateKey)
		}
		return driver.Driver{}, fmt.Errorf("insert driver %q: %w", d.Reference, err)
	}

	return d, nil
}

func (r *DriverRepository) Update(ctx context.Context, d driver.Driver) error {
	query, args, err := psql.Update("drivers").
		Set("reference", d.Reference).
		Set("forename", d.Forename).
		Set("surname", d.Surname).
		Set("abbreviation", d.Abbreviation).
		Set("number", d.Number).
		Set("nationality", d.Nationality).
		Set("date_of_birth", d.DateOfBirth).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update driver query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update driver %d: %w", d.ID, err)
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("drivers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete driver query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete driver %d: %w", id, err)
	}
	return nil
}
