package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
	"github.com/gridline/f1-mirror/internal/infrastructure/repository/memory"
	"github.com/gridline/f1-mirror/internal/platform/logging"
	"github.com/gridline/f1-mirror/internal/usecase"
)

type stubRunner struct {
	all         func(ctx context.Context, startYear, endYear int) (usecase.ImportSummary, error)
	seasons     func(ctx context.Context, startYear, endYear int) (int, error)
	rounds      func(ctx context.Context, year int) (int, error)
	teamDrivers func(ctx context.Context, year int) (int, error)
}

func (r *stubRunner) ImportAll(ctx context.Context, startYear, endYear int) (usecase.ImportSummary, error) {
	if r.all == nil {
		return usecase.ImportSummary{}, nil
	}
	return r.all(ctx, startYear, endYear)
}

func (r *stubRunner) ImportSeasons(ctx context.Context, startYear, endYear int) (int, error) {
	if r.seasons == nil {
		return 0, nil
	}
	return r.seasons(ctx, startYear, endYear)
}

func (r *stubRunner) ImportCircuits(context.Context) (int, error) { return 0, nil }
func (r *stubRunner) ImportDrivers(context.Context) (int, error)  { return 0, nil }
func (r *stubRunner) ImportTeams(context.Context) (int, error)    { return 0, nil }

func (r *stubRunner) ImportRoundsForSeason(ctx context.Context, year int) (int, error) {
	if r.rounds == nil {
		return 0, nil
	}
	return r.rounds(ctx, year)
}

func (r *stubRunner) ImportTeamDriversForSeason(ctx context.Context, year int) (int, error) {
	if r.teamDrivers == nil {
		return 0, nil
	}
	return r.teamDrivers(ctx, year)
}

func newJobService(t *testing.T, runner usecase.ImportRunner) *usecase.ImportJobService {
	t.Helper()

	service, err := usecase.NewImportJobService(runner, memory.NewImportJobRepository(), 2, logging.NewNop())
	if err != nil {
		t.Fatalf("new job service: %v", err)
	}
	t.Cleanup(service.Close)
	return service
}

func waitForOutcome(t *testing.T, service *usecase.ImportJobService, id string) importjob.Job {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		j, err := service.GetJob(context.Background(), id)
		if err != nil {
			t.Fatalf("get job: %v", err)
		}
		if j.Status == importjob.StatusSucceeded || j.Status == importjob.StatusFailed {
			return j
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never finished", id)
	return importjob.Job{}
}

func TestTriggerAllRunsInBackground(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{
		all: func(_ context.Context, startYear, endYear int) (usecase.ImportSummary, error) {
			if startYear != 2020 || endYear != 2021 {
				t.Errorf("unexpected range %d-%d", startYear, endYear)
			}
			return usecase.ImportSummary{Seasons: 2, Rounds: 40}, nil
		},
	}
	service := newJobService(t, runner)

	job, err := service.TriggerAll(context.Background(), 2020, 2021)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if job.ID == "" {
		t.Fatal("trigger should assign a job id")
	}
	if job.Status != importjob.StatusPending {
		t.Fatalf("trigger should return a pending job, got %s", job.Status)
	}
	if job.Scope.StartYear == nil || *job.Scope.StartYear != 2020 {
		t.Fatalf("scope start year not recorded: %+v", job.Scope)
	}

	done := waitForOutcome(t, service, job.ID)
	if done.Status != importjob.StatusSucceeded {
		t.Fatalf("expected success, got %s (error %q)", done.Status, done.Error)
	}
	if done.Counts["seasons"] != 2 || done.Counts["rounds"] != 40 {
		t.Fatalf("counts not recorded: %v", done.Counts)
	}
	if done.StartedAt == nil || done.FinishedAt == nil {
		t.Fatal("phase timestamps should be recorded")
	}
}

func TestTriggerRecordsFailure(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{
		rounds: func(context.Context, int) (int, error) {
			return 0, errors.New("database gone")
		},
	}
	service := newJobService(t, runner)

	job, err := service.TriggerRounds(context.Background(), 2021)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}

	done := waitForOutcome(t, service, job.ID)
	if done.Status != importjob.StatusFailed {
		t.Fatalf("expected failure, got %s", done.Status)
	}
	if done.Error == "" {
		t.Fatal("failure cause should be recorded on the job")
	}
}

func TestTriggerValidation(t *testing.T) {
	t.Parallel()

	service := newJobService(t, &stubRunner{})

	if _, err := service.TriggerRounds(context.Background(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("rounds without a year: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.TriggerTeamDrivers(context.Background(), -3); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("team drivers without a year: expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.TriggerSeasons(context.Background(), 2022, 2020); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("inverted season range: expected ErrInvalidInput, got %v", err)
	}
}

func TestGetJobNotFound(t *testing.T) {
	t.Parallel()

	service := newJobService(t, &stubRunner{})
	if _, err := service.GetJob(context.Background(), "no-such-job"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClearJob(t *testing.T) {
	t.Parallel()

	service := newJobService(t, &stubRunner{})
	ctx := context.Background()

	job, err := service.TriggerCircuits(ctx)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	waitForOutcome(t, service, job.ID)

	if err := service.ClearJob(ctx, job.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := service.GetJob(ctx, job.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("cleared job should be gone, got %v", err)
	}
	if err := service.ClearJob(ctx, job.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("clearing twice should be ErrNotFound, got %v", err)
	}
}

func TestClearJobsDropsEverything(t *testing.T) {
	t.Parallel()

	service := newJobService(t, &stubRunner{})
	ctx := context.Background()

	for range 3 {
		job, err := service.TriggerDrivers(ctx)
		if err != nil {
			t.Fatalf("trigger: %v", err)
		}
		waitForOutcome(t, service, job.ID)
	}

	if err := service.ClearJobs(ctx); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	jobs, err := service.ListJobs(ctx, 0, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty registry, got %d jobs", len(jobs))
	}
}
