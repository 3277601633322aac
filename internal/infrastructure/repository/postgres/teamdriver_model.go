package postgres

import "github.com/gridline/f1-mirror/internal/domain/teamdriver"

type teamDriverTableModel struct {
	ID         int64 `db:"id"`
	TeamID     int64 `db:"team_id"`
	DriverID   int64 `db:"driver_id"`
	SeasonYear int   `db:"season_year"`
}

func (m teamDriverTableModel) toDomain() teamdriver.TeamDriver {
	return teamdriver.TeamDriver{
		ID:         m.ID,
		TeamID:     m.TeamID,
		DriverID:   m.DriverID,
		SeasonYear: m.SeasonYear,
	}
}

var teamDriverColumns = []string{"id", "team_id", "driver_id", "season_year"}
