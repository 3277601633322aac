package round

import (
	"fmt"
	"time"
)

// Round is one race weekend within a season. Reference is the derived
// natural key "{year}-{round_number}".
type Round struct {
	ID        int64
	SeasonID  int64
	CircuitID int64
	Reference string
	Name      string
	Number    int
	Date      *time.Time
	Time      *string
}

// ReferenceFor derives the round natural key from its season year and
// round number.
func ReferenceFor(year, number int) string {
	return fmt.Sprintf("%d-%d", year, number)
}

func (r Round) Validate() error {
	if r.Reference == "" {
		return fmt.Errorf("round reference is required")
	}
	if r.SeasonID == 0 {
		return fmt.Errorf("round season id is required")
	}
	if r.CircuitID == 0 {
		return fmt.Errorf("round circuit id is required")
	}

	return nil
}
