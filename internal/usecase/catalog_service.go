package usecase

import (
	"context"
	"fmt"

	"github.com/gridline/f1-mirror/internal/domain/circuit"
	"github.com/gridline/f1-mirror/internal/domain/driver"
	"github.com/gridline/f1-mirror/internal/domain/result"
	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/session"
	"github.com/gridline/f1-mirror/internal/domain/team"
	"github.com/gridline/f1-mirror/internal/domain/teamdriver"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

// pageBounds normalizes caller paging. Limit lands in [1, 500] with a
// default of 100; negative offsets collapse to zero.
func pageBounds(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}

// CatalogService serves the mirrored data back out. Reads are plain
// pass-throughs over the repositories; nothing here touches upstream.
type CatalogService struct {
	seasons     season.Repository
	circuits    circuit.Repository
	drivers     driver.Repository
	teams       team.Repository
	rounds      round.Repository
	sessions    session.Repository
	results     result.Repository
	teamDrivers teamdriver.Repository
}

func NewCatalogService(
	seasons season.Repository,
	circuits circuit.Repository,
	drivers driver.Repository,
	teams team.Repository,
	rounds round.Repository,
	sessions session.Repository,
	results result.Repository,
	teamDrivers teamdriver.Repository,
) *CatalogService {
	return &CatalogService{
		seasons:     seasons,
		circuits:    circuits,
		drivers:     drivers,
		teams:       teams,
		rounds:      rounds,
		sessions:    sessions,
		results:     results,
		teamDrivers: teamDrivers,
	}
}

func (s *CatalogService) ListSeasons(ctx context.Context, offset, limit int) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSeasons")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.seasons.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return out, nil
}

func (s *CatalogService) GetSeason(ctx context.Context, id int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetSeason")
	defer span.End()

	item, found, err := s.seasons.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !found {
		return season.Season{}, fmt.Errorf("%w: season %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListCircuits(ctx context.Context, offset, limit int) ([]circuit.Circuit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListCircuits")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.circuits.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list circuits: %w", err)
	}
	return out, nil
}

func (s *CatalogService) GetCircuit(ctx context.Context, id int64) (circuit.Circuit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetCircuit")
	defer span.End()

	item, found, err := s.circuits.GetByID(ctx, id)
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("get circuit: %w", err)
	}
	if !found {
		return circuit.Circuit{}, fmt.Errorf("%w: circuit %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListDrivers(ctx context.Context, offset, limit int) ([]driver.Driver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListDrivers")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.drivers.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return out, nil
}

func (s *CatalogService) GetDriver(ctx context.Context, id int64) (driver.Driver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetDriver")
	defer span.End()

	item, found, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return driver.Driver{}, fmt.Errorf("get driver: %w", err)
	}
	if !found {
		return driver.Driver{}, fmt.Errorf("%w: driver %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListTeams(ctx context.Context, offset, limit int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.teams.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out, nil
}

func (s *CatalogService) GetTeam(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetTeam")
	defer span.End()

	item, found, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}
	return item, nil
}

// ListRounds optionally filters by season year. An unknown year is not an
// error; it just matches nothing.
func (s *CatalogService) ListRounds(ctx context.Context, year *int, offset, limit int) ([]round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListRounds")
	defer span.End()

	offset, limit = pageBounds(offset, limit)

	if year == nil {
		out, err := s.rounds.List(ctx, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("list rounds: %w", err)
		}
		return out, nil
	}

	seasonItem, found, err := s.seasons.GetByYear(ctx, *year)
	if err != nil {
		return nil, fmt.Errorf("resolve season year %d: %w", *year, err)
	}
	if !found {
		return []round.Round{}, nil
	}

	out, err := s.rounds.ListBySeason(ctx, seasonItem.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list rounds for season %d: %w", *year, err)
	}
	return out, nil
}

func (s *CatalogService) GetRound(ctx context.Context, id int64) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetRound")
	defer span.End()

	item, found, err := s.rounds.GetByID(ctx, id)
	if err != nil {
		return round.Round{}, fmt.Errorf("get round: %w", err)
	}
	if !found {
		return round.Round{}, fmt.Errorf("%w: round %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListSessions(ctx context.Context, offset, limit int) ([]session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSessions")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.sessions.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// ListSessionsByRound requires the round to exist so a typoed id reads as
// 404 rather than an empty list.
func (s *CatalogService) ListSessionsByRound(ctx context.Context, roundID int64, offset, limit int) ([]session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSessionsByRound")
	defer span.End()

	if _, err := s.GetRound(ctx, roundID); err != nil {
		return nil, err
	}

	offset, limit = pageBounds(offset, limit)
	out, err := s.sessions.ListByRound(ctx, roundID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions for round %d: %w", roundID, err)
	}
	return out, nil
}

func (s *CatalogService) GetSession(ctx context.Context, id int64) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetSession")
	defer span.End()

	item, found, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !found {
		return session.Session{}, fmt.Errorf("%w: session %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListResults(ctx context.Context, offset, limit int) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListResults")
	defer span.End()

	offset, limit = pageBounds(offset, limit)
	out, err := s.results.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return out, nil
}

func (s *CatalogService) ListResultsBySession(ctx context.Context, sessionID int64, offset, limit int) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListResultsBySession")
	defer span.End()

	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	offset, limit = pageBounds(offset, limit)
	out, err := s.results.ListBySession(ctx, sessionID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list results for session %d: %w", sessionID, err)
	}
	return out, nil
}

func (s *CatalogService) GetResult(ctx context.Context, id int64) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetResult")
	defer span.End()

	item, found, err := s.results.GetByID(ctx, id)
	if err != nil {
		return result.Result{}, fmt.Errorf("get result: %w", err)
	}
	if !found {
		return result.Result{}, fmt.Errorf("%w: result %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CatalogService) ListTeamDrivers(ctx context.Context, year *int, offset, limit int) ([]teamdriver.TeamDriver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeamDrivers")
	defer span.End()

	offset, limit = pageBounds(offset, limit)

	if year == nil {
		out, err := s.teamDrivers.List(ctx, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("list team drivers: %w", err)
		}
		return out, nil
	}

	out, err := s.teamDrivers.ListBySeasonYear(ctx, *year, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list team drivers for %d: %w", *year, err)
	}
	return out, nil
}

func (s *CatalogService) GetTeamDriver(ctx context.Context, id int64) (teamdriver.TeamDriver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetTeamDriver")
	defer span.End()

	item, found, err := s.teamDrivers.GetByID(ctx, id)
	if err != nil {
		return teamdriver.TeamDriver{}, fmt.Errorf("get team driver: %w", err)
	}
	if !found {
		return teamdriver.TeamDriver{}, fmt.Errorf("%w: team driver %d", ErrNotFound, id)
	}
	return item, nil
}
