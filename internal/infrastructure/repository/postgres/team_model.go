package postgres

import "github.com/gridline/f1-mirror/internal/domain/team"

type teamTableModel struct {
	ID            int64  `db:"id"`
	Reference     string `db:"reference"`
	Name          string `db:"name"`
	Nationality   string `db:"nationality"`
	ConstructorID string `db:"constructor_id"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:            m.ID,
		Reference:     m.Reference,
		Name:          m.Name,
		Nationality:   m.Nationality,
		ConstructorID: m.ConstructorID,
	}
}

var teamColumns = []string{"id", "reference", "name", "nationality", "constructor_id"}
