package circuit

import "fmt"

// Circuit is a race venue. Reference is the upstream circuit id and the
// natural key. CountryCode and Altitude exist in the schema but are never
// filled by import; the upstream feed does not carry them.
type Circuit struct {
	ID          int64
	Reference   string
	Name        string
	Locality    string
	Country     string
	Latitude    *float64
	Longitude   *float64
	CountryCode *string
	Altitude    *float64
}

func (c Circuit) Validate() error {
	if c.Reference == "" {
		return fmt.Errorf("circuit reference is required")
	}
	if c.Name == "" {
		return fmt.Errorf("circuit name is required")
	}

	return nil
}
