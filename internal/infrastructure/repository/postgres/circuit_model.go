package postgres

import "github.com/gridline/f1-mirror/internal/domain/circuit"

type circuitTableModel struct {
	ID          int64    `db:"id"`
	Reference   string   `db:"reference"`
	Name        string   `db:"name"`
	Locality    string   `db:"locality"`
	Country     string   `db:"country"`
	Latitude    *float64 `db:"latitude"`
	Longitude   *float64 `db:"longitude"`
	CountryCode *string  `db:"country_code"`
	Altitude    *float64 `db:"altitude"`
}

func (m circuitTableModel) toDomain() circuit.Circuit {
	return circuit.Circuit{
		ID:          m.ID,
		Reference:   m.Reference,
		Name:        m.Name,
		Locality:    m.Locality,
		Country:     m.Country,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		CountryCode: m.CountryCode,
		Altitude:    m.Altitude,
	}
}

var circuitColumns = []string{
	"id", "reference", "name", "locality", "country",
	"latitude", "longitude", "country_code", "altitude",
}
