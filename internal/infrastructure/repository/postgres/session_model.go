package postgres

import (
	"time"

	"github.com/gridline/f1-mirror/internal/domain/session"
)

type sessionTableModel struct {
	ID      int64      `db:"id"`
	RoundID int64      `db:"round_id"`
	Type    string     `db:"type"`
	Date    *time.Time `db:"date"`
	Time    *string    `db:"time"`
	Status  string     `db:"status"`
}

func (m sessionTableModel) toDomain() session.Session {
	return session.Session{
		ID:      m.ID,
		RoundID: m.RoundID,
		Type:    session.Type(m.Type),
		Date:    m.Date,
		Time:    m.Time,
		Status:  m.Status,
	}
}

var sessionColumns = []string{"id", "round_id", "type", "date", "time", "status"}
