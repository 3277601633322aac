package session

import (
	"fmt"
	"time"
)

// Type is the kind of timed activity within a round.
type Type string

const (
	TypeRace       Type = "race"
	TypeQualifying Type = "qualifying"
	TypeSprint     Type = "sprint"
	TypePractice1  Type = "practice1"
	TypePractice2  Type = "practice2"
	TypePractice3  Type = "practice3"
)

// Session is one timed activity within a round. Sessions carry no natural
// key: import always appends, so re-importing a round duplicates its
// sessions. Known gap, kept deliberately.
type Session struct {
	ID      int64
	RoundID int64
	Type    Type
	Date    *time.Time
	Time    *string
	Status  string
}

func (s Session) Validate() error {
	if s.RoundID == 0 {
		return fmt.Errorf("session round id is required")
	}
	switch s.Type {
	case TypeRace, TypeQualifying, TypeSprint, TypePractice1, TypePractice2, TypePractice3:
	default:
		return fmt.Errorf("unknown session type %q", s.Type)
	}

	return nil
}
