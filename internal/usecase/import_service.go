package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gridline/f1-mirror/external/ergast"
	"github.com/gridline/f1-mirror/internal/domain/circuit"
	"github.com/gridline/f1-mirror/internal/domain/driver"
	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/session"
	"github.com/gridline/f1-mirror/internal/domain/storage"
	"github.com/gridline/f1-mirror/internal/domain/team"
	"github.com/gridline/f1-mirror/internal/domain/teamdriver"
	"github.com/gridline/f1-mirror/internal/platform/dates"
	"github.com/gridline/f1-mirror/internal/platform/logging"
)

// RaceDataFetcher is the upstream surface the importers consume. Satisfied
// by *ergast.Client; stubbed in tests.
type RaceDataFetcher interface {
	Seasons(ctx context.Context) ([]ergast.Season, error)
	Circuits(ctx context.Context) ([]ergast.Circuit, error)
	Drivers(ctx context.Context) ([]ergast.Driver, error)
	Constructors(ctx context.Context) ([]ergast.Constructor, error)
	Races(ctx context.Context, year int) ([]ergast.Race, error)
	QualifyingResults(ctx context.Context, year, round int) ([]ergast.QualifyingResult, error)
	SprintResults(ctx context.Context, year, round int) ([]ergast.SessionResult, error)
	DriverStandings(ctx context.Context, year int) ([]ergast.DriverStanding, error)
}

// ImportServiceConfig carries the year defaults for the import routines.
type ImportServiceConfig struct {
	// SeasonFloor is the earliest year season import considers (1950).
	SeasonFloor int
	// DefaultStartYear opens the full-import range when the caller gives
	// none (2020).
	DefaultStartYear int
}

// ImportSummary is the per-category outcome of a full import.
type ImportSummary struct {
	Seasons     int
	Circuits    int
	Drivers     int
	Teams       int
	Rounds      int
	TeamDrivers int
}

func (s ImportSummary) Counts() map[string]int {
	return map[string]int{
		"seasons":      s.Seasons,
		"circuits":     s.Circuits,
		"drivers":      s.Drivers,
		"teams":        s.Teams,
		"rounds":       s.Rounds,
		"team_drivers": s.TeamDrivers,
	}
}

// ImportService walks the upstream hierarchy and reconciles it into the
// local store. Natural-key entities are additive-only: once a key exists
// locally it is never re-created or overwritten.
type ImportService struct {
	fetcher     RaceDataFetcher
	seasons     season.Repository
	circuits    circuit.Repository
	drivers     driver.Repository
	teams       team.Repository
	rounds      round.Repository
	sessions    session.Repository
	teamDrivers teamdriver.Repository
	logger      *logging.Logger

	seasonFloor      int
	defaultStartYear int
	now              func() time.Time
}

func NewImportService(
	fetcher RaceDataFetcher,
	seasons season.Repository,
	circuits circuit.Repository,
	drivers driver.Repository,
	teams team.Repository,
	rounds round.Repository,
	sessions session.Repository,
	teamDrivers teamdriver.Repository,
	cfg ImportServiceConfig,
	logger *logging.Logger,
) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SeasonFloor <= 0 {
		cfg.SeasonFloor = 1950
	}
	if cfg.DefaultStartYear <= 0 {
		cfg.DefaultStartYear = 2020
	}

	return &ImportService{
		fetcher:          fetcher,
		seasons:          seasons,
		circuits:         circuits,
		drivers:          drivers,
		teams:            teams,
		rounds:           rounds,
		sessions:         sessions,
		teamDrivers:      teamDrivers,
		logger:           logger,
		seasonFloor:      cfg.SeasonFloor,
		defaultStartYear: cfg.DefaultStartYear,
		now:              time.Now,
	}
}

// ImportSeasons reconciles upstream seasons within [startYear, endYear].
// Zero startYear falls back to the season floor; zero endYear to the
// current calendar year. Returns the number of seasons created.
func (s *ImportService) ImportSeasons(ctx context.Context, startYear, endYear int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportSeasons")
	defer span.End()

	if startYear <= 0 {
		startYear = s.seasonFloor
	}
	if endYear <= 0 {
		endYear = s.now().Year()
	}

	return reconcile(ctx, s.logger, reconcileParams[ergast.Season]{
		entity: "season",
		fetch:  s.fetcher.Seasons,
		key: func(rec ergast.Season) (string, bool) {
			year, err := strconv.Atoi(strings.TrimSpace(rec.Season))
			if err != nil {
				s.logger.WarnContext(ctx, "unparseable season year, skipping", "value", rec.Season)
				return "", false
			}
			if year < startYear || year > endYear {
				return "", false
			}
			return rec.Season, true
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			year, _ := strconv.Atoi(key)
			_, found, err := s.seasons.GetByYear(ctx, year)
			return found, err
		},
		create: func(ctx context.Context, rec ergast.Season) error {
			year, _ := strconv.Atoi(strings.TrimSpace(rec.Season))
			_, err := s.seasons.Create(ctx, season.Season{Year: year, URL: rec.URL})
			return err
		},
	})
}

// ImportCircuits reconciles the full upstream circuit catalogue.
func (s *ImportService) ImportCircuits(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportCircuits")
	defer span.End()

	return reconcile(ctx, s.logger, reconcileParams[ergast.Circuit]{
		entity: "circuit",
		fetch:  s.fetcher.Circuits,
		key: func(rec ergast.Circuit) (string, bool) {
			return rec.CircuitID, rec.CircuitID != ""
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			_, found, err := s.circuits.GetByReference(ctx, key)
			return found, err
		},
		create: func(ctx context.Context, rec ergast.Circuit) error {
			_, err := s.circuits.Create(ctx, s.mapCircuit(ctx, rec))
			return err
		},
	})
}

// ImportDrivers reconciles the full upstream driver catalogue.
func (s *ImportService) ImportDrivers(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportDrivers")
	defer span.End()

	return reconcile(ctx, s.logger, reconcileParams[ergast.Driver]{
		entity: "driver",
		fetch:  s.fetcher.Drivers,
		key: func(rec ergast.Driver) (string, bool) {
			return rec.DriverID, rec.DriverID != ""
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			_, found, err := s.drivers.GetByReference(ctx, key)
			return found, err
		},
		create: func(ctx context.Context, rec ergast.Driver) error {
			_, err := s.drivers.Create(ctx, driver.Driver{
				Reference:    rec.DriverID,
				Forename:     rec.GivenName,
				Surname:      rec.FamilyName,
				Abbreviation: optionalString(rec.Code),
				Number:       s.parseOptionalInt(ctx, rec.PermanentNumber),
				Nationality:  rec.Nationality,
				DateOfBirth:  dates.Parse(ctx, rec.DateOfBirth),
			})
			return err
		},
	})
}

// ImportTeams reconciles the full upstream constructor catalogue. The
// constructor reference is stored twice, as the natural key and as the
// plain constructor_id attribute, mirroring the upstream record.
func (s *ImportService) ImportTeams(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTeams")
	defer span.End()

	return reconcile(ctx, s.logger, reconcileParams[ergast.Constructor]{
		entity: "team",
		fetch:  s.fetcher.Constructors,
		key: func(rec ergast.Constructor) (string, bool) {
			return rec.ConstructorID, rec.ConstructorID != ""
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			_, found, err := s.teams.GetByReference(ctx, key)
			return found, err
		},
		create: func(ctx context.Context, rec ergast.Constructor) error {
			_, err := s.teams.Create(ctx, team.Team{
				Reference:     rec.ConstructorID,
				Name:          rec.Name,
				Nationality:   rec.Nationality,
				ConstructorID: rec.ConstructorID,
			})
			return err
		},
	})
}

// ImportRoundsForSeason reconciles the race weekends of one year. The
// season must already exist locally or the routine is a no-op. Each newly
// created round cascades synchronously into session import, reusing the
// race record already in hand.
func (s *ImportService) ImportRoundsForSeason(ctx context.Context, year int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportRoundsForSeason")
	defer span.End()

	parent, found, err := s.seasons.GetByYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("get season %d: %w", year, err)
	}
	if !found {
		s.logger.ErrorContext(ctx, "season not imported yet, skipping round import", "year", year)
		return 0, nil
	}

	return reconcile(ctx, s.logger, reconcileParams[ergast.Race]{
		entity: "round",
		fetch: func(ctx context.Context) ([]ergast.Race, error) {
			return s.fetcher.Races(ctx, year)
		},
		key: func(rec ergast.Race) (string, bool) {
			number, err := strconv.Atoi(strings.TrimSpace(rec.Round))
			if err != nil {
				s.logger.WarnContext(ctx, "unparseable round number, skipping", "value", rec.Round, "year", year)
				return "", false
			}
			return round.ReferenceFor(year, number), true
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			_, found, err := s.rounds.GetByReference(ctx, key)
			return found, err
		},
		create: func(ctx context.Context, rec ergast.Race) error {
			number, _ := strconv.Atoi(strings.TrimSpace(rec.Round))

			venue, err := s.ensureCircuit(ctx, rec.Circuit)
			if err != nil {
				return fmt.Errorf("resolve circuit %q: %w", rec.Circuit.CircuitID, err)
			}

			created, err := s.rounds.Create(ctx, round.Round{
				SeasonID:  parent.ID,
				CircuitID: venue.ID,
				Reference: round.ReferenceFor(year, number),
				Name:      rec.RaceName,
				Number:    number,
				Date:      dates.Parse(ctx, rec.Date),
				Time:      optionalString(rec.Time),
			})
			if err != nil {
				return err
			}

			race := rec
			sessionCount, err := s.ImportSessionsForRound(ctx, year, number, created.ID, &race)
			if err != nil {
				s.logger.ErrorContext(ctx, "session import failed for new round",
					"round", created.Reference, "error", err)
				return nil
			}
			s.logger.InfoContext(ctx, "round imported",
				"round", created.Reference, "sessions", sessionCount)
			return nil
		},
	})
}

// ImportSessionsForRound creates the session rows for one round. Sessions
// carry no natural key, so every invocation appends: re-running this for a
// round duplicates its sessions. When race is nil the year's race list is
// fetched again and scanned for the round number, keeping the routine
// usable on its own.
func (s *ImportService) ImportSessionsForRound(
	ctx context.Context,
	year int,
	roundNumber int,
	roundID int64,
	race *ergast.Race,
) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportSessionsForRound")
	defer span.End()

	if race == nil {
		races, err := s.fetcher.Races(ctx, year)
		if err != nil {
			s.logger.WarnContext(ctx, "race list fetch failed, importing no sessions",
				"year", year, "round", roundNumber, "error", err)
			return 0, nil
		}
		for i := range races {
			if number, err := strconv.Atoi(strings.TrimSpace(races[i].Round)); err == nil && number == roundNumber {
				race = &races[i]
				break
			}
		}
		if race == nil {
			s.logger.ErrorContext(ctx, "race not found in upstream list, importing no sessions",
				"year", year, "round", roundNumber)
			return 0, nil
		}
	}

	created := 0
	addSession := func(kind session.Type, date *time.Time, timeOfDay *string) error {
		_, err := s.sessions.Create(ctx, session.Session{
			RoundID: roundID,
			Type:    kind,
			Date:    date,
			Time:    timeOfDay,
			Status:  "completed",
		})
		if err != nil {
			return fmt.Errorf("create %s session: %w", kind, err)
		}
		created++
		return nil
	}

	// The race session always exists.
	if err := addSession(session.TypeRace, dates.Parse(ctx, race.Date), optionalString(race.Time)); err != nil {
		return created, err
	}

	qualiRows, err := s.fetcher.QualifyingResults(ctx, year, roundNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "qualifying fetch failed, session omitted",
			"year", year, "round", roundNumber, "error", err)
		qualiRows = nil
	}
	if len(qualiRows) > 0 {
		date, timeOfDay := sessionTimeOrRace(ctx, race.Qualifying, race)
		if err := addSession(session.TypeQualifying, date, timeOfDay); err != nil {
			return created, err
		}
	}

	sprintRows, err := s.fetcher.SprintResults(ctx, year, roundNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "sprint fetch failed, session omitted",
			"year", year, "round", roundNumber, "error", err)
		sprintRows = nil
	}
	if len(sprintRows) > 0 {
		date, timeOfDay := sessionTimeOrRace(ctx, race.Sprint, race)
		if err := addSession(session.TypeSprint, date, timeOfDay); err != nil {
			return created, err
		}
	}

	// Practice sessions only exist in the modern era. Practice 3 is
	// gated on the ThirdPractice key being present at all, not on its
	// content, and sprint weekends never have one.
	if year >= 2000 {
		if err := addSession(session.TypePractice1, practiceDate(ctx, race.FirstPractice), practiceTime(race.FirstPractice)); err != nil {
			return created, err
		}
		if err := addSession(session.TypePractice2, practiceDate(ctx, race.SecondPractice), practiceTime(race.SecondPractice)); err != nil {
			return created, err
		}
		if len(sprintRows) == 0 && race.ThirdPractice != nil {
			if err := addSession(session.TypePractice3, practiceDate(ctx, race.ThirdPractice), practiceTime(race.ThirdPractice)); err != nil {
				return created, err
			}
		}
	}

	return created, nil
}

// ImportTeamDriversForSeason derives team/driver pairings for one year
// from the upstream driver standings. Pairings whose driver or team has
// not been imported yet are skipped with a logged error.
func (s *ImportService) ImportTeamDriversForSeason(ctx context.Context, year int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportTeamDriversForSeason")
	defer span.End()

	type pairing struct {
		teamID   int64
		driverID int64
	}

	return reconcile(ctx, s.logger, reconcileParams[pairing]{
		entity: "team_driver",
		fetch: func(ctx context.Context) ([]pairing, error) {
			standings, err := s.fetcher.DriverStandings(ctx, year)
			if err != nil {
				return nil, err
			}

			out := make([]pairing, 0, len(standings))
			for _, standing := range standings {
				pilot, found, err := s.drivers.GetByReference(ctx, standing.Driver.DriverID)
				if err != nil {
					s.logger.ErrorContext(ctx, "driver lookup failed, skipping pairing",
						"driver", standing.Driver.DriverID, "year", year, "error", err)
					continue
				}
				if !found {
					s.logger.ErrorContext(ctx, "driver not imported yet, skipping pairing",
						"driver", standing.Driver.DriverID, "year", year)
					continue
				}

				for _, constructor := range standing.Constructors {
					crew, found, err := s.teams.GetByReference(ctx, constructor.ConstructorID)
					if err != nil {
						s.logger.ErrorContext(ctx, "team lookup failed, skipping pairing",
							"team", constructor.ConstructorID, "year", year, "error", err)
						continue
					}
					if !found {
						s.logger.ErrorContext(ctx, "team not imported yet, skipping pairing",
							"team", constructor.ConstructorID, "year", year)
						continue
					}
					out = append(out, pairing{teamID: crew.ID, driverID: pilot.ID})
				}
			}

			return out, nil
		},
		key: func(rec pairing) (string, bool) {
			return fmt.Sprintf("%d:%d:%d", rec.teamID, rec.driverID, year), true
		},
		exists: func(ctx context.Context, key string) (bool, error) {
			var teamID, driverID int64
			var seasonYear int
			if _, err := fmt.Sscanf(key, "%d:%d:%d", &teamID, &driverID, &seasonYear); err != nil {
				return false, fmt.Errorf("malformed pairing key %q: %w", key, err)
			}
			_, found, err := s.teamDrivers.GetByTriple(ctx, teamID, driverID, seasonYear)
			return found, err
		},
		create: func(ctx context.Context, rec pairing) error {
			_, err := s.teamDrivers.Create(ctx, teamdriver.TeamDriver{
				TeamID:     rec.teamID,
				DriverID:   rec.driverID,
				SeasonYear: year,
			})
			return err
		},
	})
}

// ImportAll is the top-level composition: catalogue imports once, then
// rounds (with their session cascade) and team-driver pairings year by
// year, strictly sequentially.
func (s *ImportService) ImportAll(ctx context.Context, startYear, endYear int) (ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportAll")
	defer span.End()

	if startYear <= 0 {
		startYear = s.defaultStartYear
	}
	if endYear <= 0 {
		endYear = s.now().Year()
	}
	if startYear > endYear {
		return ImportSummary{}, fmt.Errorf("%w: start year %d after end year %d", ErrInvalidInput, startYear, endYear)
	}

	var summary ImportSummary
	var err error

	if summary.Seasons, err = s.ImportSeasons(ctx, startYear, endYear); err != nil {
		return summary, err
	}
	if summary.Circuits, err = s.ImportCircuits(ctx); err != nil {
		return summary, err
	}
	if summary.Drivers, err = s.ImportDrivers(ctx); err != nil {
		return summary, err
	}
	if summary.Teams, err = s.ImportTeams(ctx); err != nil {
		return summary, err
	}

	for year := startYear; year <= endYear; year++ {
		rounds, err := s.ImportRoundsForSeason(ctx, year)
		if err != nil {
			return summary, err
		}
		summary.Rounds += rounds

		pairings, err := s.ImportTeamDriversForSeason(ctx, year)
		if err != nil {
			return summary, err
		}
		summary.TeamDrivers += pairings
	}

	s.logger.InfoContext(ctx, "full import finished",
		"start_year", startYear, "end_year", endYear, "counts", summary.Counts())
	return summary, nil
}

// ensureCircuit resolves a round's venue, creating it from the embedded
// race payload when the circuit catalogue import has not seen it yet.
func (s *ImportService) ensureCircuit(ctx context.Context, rec ergast.Circuit) (circuit.Circuit, error) {
	if rec.CircuitID == "" {
		return circuit.Circuit{}, fmt.Errorf("race carries no circuit reference")
	}

	existing, found, err := s.circuits.GetByReference(ctx, rec.CircuitID)
	if err != nil {
		return circuit.Circuit{}, err
	}
	if found {
		return existing, nil
	}

	created, err := s.circuits.Create(ctx, s.mapCircuit(ctx, rec))
	if err == nil {
		return created, nil
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		winner, found, getErr := s.circuits.GetByReference(ctx, rec.CircuitID)
		if getErr != nil {
			return circuit.Circuit{}, getErr
		}
		if found {
			return winner, nil
		}
	}
	return circuit.Circuit{}, err
}

func (s *ImportService) mapCircuit(ctx context.Context, rec ergast.Circuit) circuit.Circuit {
	return circuit.Circuit{
		Reference: rec.CircuitID,
		Name:      rec.CircuitName,
		Locality:  rec.Location.Locality,
		Country:   rec.Location.Country,
		Latitude:  s.parseOptionalFloat(ctx, rec.Location.Lat),
		Longitude: s.parseOptionalFloat(ctx, rec.Location.Long),
		// CountryCode and Altitude stay absent: the upstream feed
		// does not carry them.
	}
}

func (s *ImportService) parseOptionalFloat(ctx context.Context, raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable number, treating as absent", "value", raw)
		return nil
	}
	return &value
}

func (s *ImportService) parseOptionalInt(ctx context.Context, raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		s.logger.WarnContext(ctx, "unparseable number, treating as absent", "value", raw)
		return nil
	}
	return &value
}

func optionalString(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}

// sessionTimeOrRace picks a sub-session's own date/time, falling back to
// the race's when the nested field is absent.
func sessionTimeOrRace(ctx context.Context, st *ergast.SessionTime, race *ergast.Race) (*time.Time, *string) {
	dateRaw := race.Date
	timeRaw := race.Time
	if st != nil && strings.TrimSpace(st.Date) != "" {
		dateRaw = st.Date
	}
	if st != nil && strings.TrimSpace(st.Time) != "" {
		timeRaw = st.Time
	}
	return dates.Parse(ctx, dateRaw), optionalString(timeRaw)
}

// practiceDate has no fallback: a practice entry without a date yields an
// absent date.
func practiceDate(ctx context.Context, st *ergast.SessionTime) *time.Time {
	if st == nil {
		return nil
	}
	return dates.Parse(ctx, st.Date)
}

func practiceTime(st *ergast.SessionTime) *string {
	if st == nil {
		return nil
	}
	return optionalString(st.Time)
}
