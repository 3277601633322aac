package postgres

import (
	"time"

	"github.com/gridline/f1-mirror/internal/domain/round"
)

type roundTableModel struct {
	ID        int64      `db:"id"`
	SeasonID  int64      `db:"season_id"`
	CircuitID int64      `db:"circuit_id"`
	Reference string     `db:"reference"`
	Name      string     `db:"name"`
	Number    int        `db:"number"`
	Date      *time.Time `db:"date"`
	Time      *string    `db:"time"`
}

func (m roundTableModel) toDomain() round.Round {
	return round.Round{
		ID:        m.ID,
		SeasonID:  m.SeasonID,
		CircuitID: m.CircuitID,
		Reference: m.Reference,
		Name:      m.Name,
		Number:    m.Number,
		Date:      m.Date,
		Time:      m.Time,
	}
}

var roundColumns = []string{
	"id", "season_id", "circuit_id", "reference", "name", "number", "date", "time",
}
