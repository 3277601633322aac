package result

import "fmt"

// Result is one classified entry within a session. No natural key.
type Result struct {
	ID           int64
	SessionID    int64
	DriverID     int64
	TeamID       int64
	Position     *int
	PositionText string
	Points       float64
	Grid         *int
	Laps         *int
	Status       string
	TimeText     *string
	Milliseconds *int
}

func (r Result) Validate() error {
	if r.SessionID == 0 {
		return fmt.Errorf("result session id is required")
	}
	if r.DriverID == 0 {
		return fmt.Errorf("result driver id is required")
	}
	if r.TeamID == 0 {
		return fmt.Errorf("result team id is required")
	}

	return nil
}
