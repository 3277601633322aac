package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/gridline/f1-mirror/internal/domain/session"
)

// SessionRepository has no uniqueness to enforce: sessions carry no
// natural key, so inserts always append.
type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (session.Session, bool, error) {
	query, args, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return session.Session{}, false, fmt.Errorf("build select session query: %w", err)
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, fmt.Errorf("select session %d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *SessionRepository) list(ctx context.Context, pred any, offset, limit int) ([]session.Session, error) {
	builder := psql.Select(sessionColumns...).
		From("sessions").
		OrderBy("id").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	if pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}

	var rows []sessionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]session.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SessionRepository) List(ctx context.Context, offset, limit int) ([]session.Session, error) {
	return r.list(ctx, nil, offset, limit)
}

func (r *SessionRepository) ListByRound(ctx context.Context, roundID int64, offset, limit int) ([]session.Session, error) {
	return r.list(ctx, sq.Eq{"round_id": roundID}, offset, limit)
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (session.Session, error) {
	if err := s.Validate(); err != nil {
		return session.Session{}, err
	}

	query, args, err := psql.Insert("sessions").
		Columns("round_id", "type", "date", "time", "status").
		Values(s.RoundID, string(s.Type), s.Date, s.Time, s.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return session.Session{}, fmt.Errorf("build insert session query: %w", err)
	}

	if err := r.db.GetContext(ctx, &s.ID, query, args...); err != nil {
		return session.Session{}, fmt.Errorf("insert session for round %d: %w", s.RoundID, err)
	}

	return s, nil
}

func (r *SessionRepository) Update(ctx context.Context, s session.Session) error {
	query, args, err := psql.Update("sessions").
		Set("round_id", s.RoundID).
		Set("type", string(s.Type)).
		Set("date", s.Date).
		Set("time", s.Time).
		Set("status", s.Status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update session %d: %w", s.ID, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	return nil
}
