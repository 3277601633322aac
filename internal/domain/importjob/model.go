package importjob

import (
	"fmt"
	"time"
)

// Kind names one triggerable import routine.
type Kind string

const (
	KindAll         Kind = "all"
	KindSeasons     Kind = "seasons"
	KindCircuits    Kind = "circuits"
	KindDrivers     Kind = "drivers"
	KindTeams       Kind = "teams"
	KindRounds      Kind = "rounds"
	KindTeamDrivers Kind = "teamdrivers"
)

// Status is the lifecycle state of a triggered job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Scope carries the year parameters of a job. Which fields are set depends
// on the kind: all/seasons use the range, rounds/teamdrivers use Year.
type Scope struct {
	StartYear *int
	EndYear   *int
	Year      *int
}

// Job is one tracked background import. Created on trigger, updated at
// each phase boundary, retained until explicitly cleared.
type Job struct {
	ID         string
	Kind       Kind
	Scope      Scope
	Status     Status
	Counts     map[string]int
	Error      string
	CreatedAt  time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
}

func (j Job) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("import job id is required")
	}
	switch j.Kind {
	case KindAll, KindSeasons, KindCircuits, KindDrivers, KindTeams, KindRounds, KindTeamDrivers:
	default:
		return fmt.Errorf("unknown import job kind %q", j.Kind)
	}

	return nil
}
