package driver

import (
	"fmt"
	"time"
)

// Driver is a racing driver. Reference is the upstream driver id and the
// natural key.
type Driver struct {
	ID           int64
	Reference    string
	Forename     string
	Surname      string
	Abbreviation *string
	Number       *int
	Nationality  string
	DateOfBirth  *time.Time
}

func (d Driver) Validate() error {
	if d.Reference == "" {
		return fmt.Errorf("driver reference is required")
	}
	if d.Forename == "" && d.Surname == "" {
		return fmt.Errorf("driver name is required")
	}

	return nil
}
