package season

import "fmt"

// Season is one championship year. Year is the natural key.
type Season struct {
	ID   int64
	Year int
	URL  string
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year is required")
	}

	return nil
}
