package team

import "fmt"

// Team is a constructor entering rounds. Reference is the upstream
// constructor id and the natural key; ConstructorID stores the same value
// again as a plain attribute, mirroring the upstream record shape.
type Team struct {
	ID            int64
	Reference     string
	Name          string
	Nationality   string
	ConstructorID string
}

func (t Team) Validate() error {
	if t.Reference == "" {
		return fmt.Errorf("team reference is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
