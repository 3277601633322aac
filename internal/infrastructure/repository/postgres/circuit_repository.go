package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/circuit"
	"github.com/gridline/f1-mirror/internal/domain/storage"
)

type CircuitRepository struct {
	db *sqlx.DB
}

func NewCircuitRepository(db *sqlx.DB) *CircuitRepository {
	return &CircuitRepository{db: db}
}

func (r *CircuitRepository) getOne(ctx context.Context, pred sq.Eq) (circuit.Circuit, bool, error) {
	query, args, err := psql.Select(circuitColumns...).
		From("circuits").
		Where(pred).
		ToSql()
	if err != nil {
		return circuit.Circuit{}, false, fmt.Errorf("build select circuit query: %w", err)
	}

	var row circuitTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return circuit.Circuit{}, false, nil
		}
		return circuit.Circuit{}, false, fmt.Errorf("select circuit: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *CircuitRepository) GetByID(ctx context.Context, id int64) (circuit.Circuit, bool, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *CircuitRepository) GetByReference(ctx context.Context, reference string) (circuit.Circuit, bool, error) {
	return r.getOne(ctx, sq.Eq{"reference": reference})
}

func (r *CircuitRepository) List(ctx context.Context, offset, limit int) ([]circuit.Circuit, error) {
	query, args, err := psql.Select(circuitColumns...).
		From("circuits").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list circuits query: %w", err)
	}

	var rows []circuitTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list circuits: %w", err)
	}

	out := make([]circuit.Circuit, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CircuitRepository) Create(ctx context.Context, c circuit.Circuit) (circuit.Circuit, error) {
	if err := c.Validate(); err != nil {
		return circuit.Circuit{}, err
	}

	query, args, err := psql.Insert("circuits").
		Columns("reference", "name", "locality", "country",
			"latitude", "longitude", "country_code", "altitude").
		Values(c.Reference, c.Name, c.Locality, c.Country,
			c.Latitude, c.Longitude, c.CountryCode, c.Altitude).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("build insert circuit query: %w", err)
	}

	if err := r.db.GetContext(ctx, &c.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return circuit.Circuit{}, fmt.Errorf("circuit %q: %w", c.Reference, storage.ErrDuplicateKey)
		}
		return circuit.Circuit{}, fmt.Errorf("insert circuit %q: %w", c.Reference, err)
	}

	return c, nil
}

func (r *CircuitRepository) Update(ctx context.Context, c circuit.Circuit) error {
	query, args, err := psql.Update("circuits").
		Set("reference", c.Reference).
		Set("name", c.Name).
		Set("locality", c.Locality).
		Set("country", c.Country).
		Set("latitude", c.Latitude).
		Set("longitude", c.Longitude).
		Set("country_code", c.CountryCode).
		Set("altitude", c.Altitude).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update circuit query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update circuit %d: %w", c.ID, err)
	}
	return nil
}

func (r *CircuitRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("circuits").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete circuit query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete circuit %d: %w", id, err)
	}
	return nil
}
