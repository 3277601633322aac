package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
	"github.com/gridline/f1-mirror/internal/platform/logging"
)

// ImportRunner is the slice of ImportService the job service dispatches to.
type ImportRunner interface {
	ImportAll(ctx context.Context, startYear, endYear int) (ImportSummary, error)
	ImportSeasons(ctx context.Context, startYear, endYear int) (int, error)
	ImportCircuits(ctx context.Context) (int, error)
	ImportDrivers(ctx context.Context) (int, error)
	ImportTeams(ctx context.Context) (int, error)
	ImportRoundsForSeason(ctx context.Context, year int) (int, error)
	ImportTeamDriversForSeason(ctx context.Context, year int) (int, error)
}

// ImportJobService turns import triggers into tracked background jobs.
// Triggering registers a pending job and returns immediately; a worker
// pool runs the import detached from the request context and records the
// outcome on the job record.
type ImportJobService struct {
	runner ImportRunner
	jobs   importjob.Repository
	pool   *ants.Pool
	logger *logging.Logger

	now   func() time.Time
	newID func() string
}

func NewImportJobService(runner ImportRunner, jobs importjob.Repository, workers int, logger *logging.Logger) (*ImportJobService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 2
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create import worker pool: %w", err)
	}

	return &ImportJobService{
		runner: runner,
		jobs:   jobs,
		pool:   pool,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Close drains the worker pool. In-flight jobs finish; queued ones are
// dropped.
func (s *ImportJobService) Close() {
	s.pool.Release()
}

func (s *ImportJobService) TriggerAll(ctx context.Context, startYear, endYear int) (importjob.Job, error) {
	if startYear > 0 && endYear > 0 && startYear > endYear {
		return importjob.Job{}, fmt.Errorf("%w: start year %d after end year %d", ErrInvalidInput, startYear, endYear)
	}

	scope := importjob.Scope{StartYear: optionalYear(startYear), EndYear: optionalYear(endYear)}
	return s.trigger(ctx, importjob.KindAll, scope, func(jobCtx context.Context) (map[string]int, error) {
		summary, err := s.runner.ImportAll(jobCtx, startYear, endYear)
		return summary.Counts(), err
	})
}

func (s *ImportJobService) TriggerSeasons(ctx context.Context, startYear, endYear int) (importjob.Job, error) {
	if startYear > 0 && endYear > 0 && startYear > endYear {
		return importjob.Job{}, fmt.Errorf("%w: start year %d after end year %d", ErrInvalidInput, startYear, endYear)
	}

	scope := importjob.Scope{StartYear: optionalYear(startYear), EndYear: optionalYear(endYear)}
	return s.trigger(ctx, importjob.KindSeasons, scope, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportSeasons(jobCtx, startYear, endYear)
		return map[string]int{"seasons": n}, err
	})
}

func (s *ImportJobService) TriggerCircuits(ctx context.Context) (importjob.Job, error) {
	return s.trigger(ctx, importjob.KindCircuits, importjob.Scope{}, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportCircuits(jobCtx)
		return map[string]int{"circuits": n}, err
	})
}

func (s *ImportJobService) TriggerDrivers(ctx context.Context) (importjob.Job, error) {
	return s.trigger(ctx, importjob.KindDrivers, importjob.Scope{}, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportDrivers(jobCtx)
		return map[string]int{"drivers": n}, err
	})
}

func (s *ImportJobService) TriggerTeams(ctx context.Context) (importjob.Job, error) {
	return s.trigger(ctx, importjob.KindTeams, importjob.Scope{}, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportTeams(jobCtx)
		return map[string]int{"teams": n}, err
	})
}

func (s *ImportJobService) TriggerRounds(ctx context.Context, year int) (importjob.Job, error) {
	if year <= 0 {
		return importjob.Job{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	scope := importjob.Scope{Year: optionalYear(year)}
	return s.trigger(ctx, importjob.KindRounds, scope, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportRoundsForSeason(jobCtx, year)
		return map[string]int{"rounds": n}, err
	})
}

func (s *ImportJobService) TriggerTeamDrivers(ctx context.Context, year int) (importjob.Job, error) {
	if year <= 0 {
		return importjob.Job{}, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	scope := importjob.Scope{Year: optionalYear(year)}
	return s.trigger(ctx, importjob.KindTeamDrivers, scope, func(jobCtx context.Context) (map[string]int, error) {
		n, err := s.runner.ImportTeamDriversForSeason(jobCtx, year)
		return map[string]int{"team_drivers": n}, err
	})
}

func (s *ImportJobService) GetJob(ctx context.Context, id string) (importjob.Job, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportJobService.GetJob")
	defer span.End()

	j, found, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return importjob.Job{}, fmt.Errorf("get import job: %w", err)
	}
	if !found {
		return importjob.Job{}, fmt.Errorf("%w: import job %q", ErrNotFound, id)
	}
	return j, nil
}

func (s *ImportJobService) ListJobs(ctx context.Context, offset, limit int) ([]importjob.Job, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportJobService.ListJobs")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	jobs, err := s.jobs.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list import jobs: %w", err)
	}
	return jobs, nil
}

func (s *ImportJobService) ClearJob(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportJobService.ClearJob")
	defer span.End()

	_, found, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get import job: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: import job %q", ErrNotFound, id)
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete import job: %w", err)
	}
	return nil
}

// ClearJobs drops every retained job record.
func (s *ImportJobService) ClearJobs(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportJobService.ClearJobs")
	defer span.End()

	for {
		jobs, err := s.jobs.List(ctx, 0, 500)
		if err != nil {
			return fmt.Errorf("list import jobs: %w", err)
		}
		if len(jobs) == 0 {
			return nil
		}
		for _, j := range jobs {
			if err := s.jobs.Delete(ctx, j.ID); err != nil {
				return fmt.Errorf("delete import job %q: %w", j.ID, err)
			}
		}
	}
}

func (s *ImportJobService) trigger(ctx context.Context, kind importjob.Kind, scope importjob.Scope, run func(context.Context) (map[string]int, error)) (importjob.Job, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportJobService.Trigger")
	defer span.End()

	job := importjob.Job{
		ID:        s.newID(),
		Kind:      kind,
		Scope:     scope,
		Status:    importjob.StatusPending,
		Counts:    map[string]int{},
		CreatedAt: s.now().UTC(),
	}

	job, err := s.jobs.Create(ctx, job)
	if err != nil {
		return importjob.Job{}, fmt.Errorf("register import job: %w", err)
	}

	if err := s.pool.Submit(func() { s.execute(job, run) }); err != nil {
		s.markFailed(job, fmt.Errorf("submit to worker pool: %w", err))
		return importjob.Job{}, fmt.Errorf("schedule import job: %w", err)
	}

	s.logger.InfoContext(ctx, "import job scheduled", "job_id", job.ID, "kind", string(kind))
	return job, nil
}

// execute runs on a pool worker, detached from the request context so the
// import outlives the triggering call.
func (s *ImportJobService) execute(job importjob.Job, run func(context.Context) (map[string]int, error)) {
	ctx := context.Background()

	startedAt := s.now().UTC()
	job.Status = importjob.StatusRunning
	job.StartedAt = &startedAt
	if err := s.jobs.Update(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "mark import job running", "job_id", job.ID, "error", err)
	}

	counts, runErr := run(ctx)

	finishedAt := s.now().UTC()
	job.FinishedAt = &finishedAt
	if counts != nil {
		job.Counts = counts
	}
	if runErr != nil {
		job.Status = importjob.StatusFailed
		job.Error = runErr.Error()
		s.logger.ErrorContext(ctx, "import job failed", "job_id", job.ID, "kind", string(job.Kind), "error", runErr)
	} else {
		job.Status = importjob.StatusSucceeded
		s.logger.InfoContext(ctx, "import job finished", "job_id", job.ID, "kind", string(job.Kind), "counts", job.Counts)
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "record import job outcome", "job_id", job.ID, "error", err)
	}
}

func (s *ImportJobService) markFailed(job importjob.Job, cause error) {
	ctx := context.Background()
	finishedAt := s.now().UTC()
	job.Status = importjob.StatusFailed
	job.Error = cause.Error()
	job.FinishedAt = &finishedAt
	if err := s.jobs.Update(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "mark import job failed", "job_id", job.ID, "error", err)
	}
}

func optionalYear(year int) *int {
	if year <= 0 {
		return nil
	}
	return &year
}
