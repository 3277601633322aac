package teamdriver

import "fmt"

// TeamDriver links one team and one driver for one season year. The
// (team, driver, year) triple is the composite natural key.
type TeamDriver struct {
	ID         int64
	TeamID     int64
	DriverID   int64
	SeasonYear int
}

func (td TeamDriver) Validate() error {
	if td.TeamID == 0 {
		return fmt.Errorf("team driver team id is required")
	}
	if td.DriverID == 0 {
		return fmt.Errorf("team driver driver id is required")
	}
	if td.SeasonYear <= 0 {
		return fmt.Errorf("team driver season year is required")
	}

	return nil
}
