package postgres

import "github.com/gridline/f1-mirror/internal/domain/result"

type resultTableModel struct {
	ID           int64   `db:"id"`
	SessionID    int64   `db:"session_id"`
	DriverID     int64   `db:"driver_id"`
	TeamID       int64   `db:"team_id"`
	Position     *int    `db:"position"`
	PositionText string  `db:"position_text"`
	Points       float64 `db:"points"`
	Grid         *int    `db:"grid"`
	Laps         *int    `db:"laps"`
	Status       string  `db:"status"`
	TimeText     *string `db:"time_text"`
	Milliseconds *int    `db:"milliseconds"`
}

func (m resultTableModel) toDomain() result.Result {
	return result.Result{
		ID:           m.ID,
		SessionID:    m.SessionID,
		DriverID:     m.DriverID,
		TeamID:       m.TeamID,
		Position:     m.Position,
		PositionText: m.PositionText,
		Points:       m.Points,
		Grid:         m.Grid,
		Laps:         m.Laps,
		Status:       m.Status,
		TimeText:     m.TimeText,
		Milliseconds: m.Milliseconds,
	}
}

var resultColumns = []string{
	"id", "session_id", "driver_id", "team_id", "position", "position_text",
	"points", "grid", "laps", "status", "time_text", "milliseconds",
}
