package postgres

import (
	"time"

	"github.com/gridline/f1-mirror/internal/domain/driver"
)

type driverTableModel struct {
	ID           int64      `db:"id"`
	Reference    string     `db:"reference"`
	Forename     string     `db:"forename"`
	Surname      string     `db:"surname"`
	Abbreviation *string    `db:"abbreviation"`
	Number       *int       `db:"number"`
	Nationality  string     `db:"nationality"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
}

func (m driverTableModel) toDomain() driver.Driver {
	return driver.Driver{
		ID:           m.ID,
		Reference:    m.Reference,
		Forename:     m.Forename,
		Surname:      m.Surname,
		Abbreviation: m.Abbreviation,
		Number:       m.Number,
		Nationality:  m.Nationality,
		DateOfBirth:  m.DateOfBirth,
	}
}

var driverColumns = []string{
	"id", "reference", "forename", "surname",
	"abbreviation", "number", "nationality", "date_of_birth",
}
