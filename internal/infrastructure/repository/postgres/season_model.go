package postgres

import "github.com/gridline/f1-mirror/internal/domain/season"

type seasonTableModel struct {
	ID   int64  `db:"id"`
	Year int    `db:"year"`
	URL  string `db:"url"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:   m.ID,
		Year: m.Year,
		URL:  m.URL,
	}
}
