package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gridline/f1-mirror/external/ergast"
	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/infrastructure/repository/memory"
	"github.com/gridline/f1-mirror/internal/platform/logging"
	"github.com/gridline/f1-mirror/internal/usecase"
)

// emptyFetcher answers every upstream call with no records.
type emptyFetcher struct{}

func (emptyFetcher) Seasons(context.Context) ([]ergast.Season, error)           { return nil, nil }
func (emptyFetcher) Circuits(context.Context) ([]ergast.Circuit, error)         { return nil, nil }
func (emptyFetcher) Drivers(context.Context) ([]ergast.Driver, error)           { return nil, nil }
func (emptyFetcher) Constructors(context.Context) ([]ergast.Constructor, error) { return nil, nil }
func (emptyFetcher) Races(context.Context, int) ([]ergast.Race, error)          { return nil, nil }
func (emptyFetcher) QualifyingResults(context.Context, int, int) ([]ergast.QualifyingResult, error) {
	return nil, nil
}
func (emptyFetcher) SprintResults(context.Context, int, int) ([]ergast.SessionResult, error) {
	return nil, nil
}
func (emptyFetcher) DriverStandings(context.Context, int) ([]ergast.DriverStanding, error) {
	return nil, nil
}

type apiFixture struct {
	seasons *memory.SeasonRepository
	router  http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	seasons := memory.NewSeasonRepository()
	circuits := memory.NewCircuitRepository()
	drivers := memory.NewDriverRepository()
	teams := memory.NewTeamRepository()
	rounds := memory.NewRoundRepository()
	sessions := memory.NewSessionRepository()
	results := memory.NewResultRepository()
	teamDrivers := memory.NewTeamDriverRepository()

	catalog := usecase.NewCatalogService(seasons, circuits, drivers, teams, rounds, sessions, results, teamDrivers)

	importer := usecase.NewImportService(
		emptyFetcher{}, seasons, circuits, drivers, teams, rounds, sessions, teamDrivers,
		usecase.ImportServiceConfig{}, logging.NewNop(),
	)
	jobs, err := usecase.NewImportJobService(importer, memory.NewImportJobRepository(), 1, logging.NewNop())
	if err != nil {
		t.Fatalf("new job service: %v", err)
	}
	t.Cleanup(jobs.Close)

	handler := NewHandler(catalog, jobs, logging.NewNop())
	return &apiFixture{
		seasons: seasons,
		router:  NewRouter(handler, logging.NewNop(), nil),
	}
}

func (f *apiFixture) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListAndGetSeasons(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	created, err := f.seasons.Create(context.Background(), season.Season{Year: 2021, URL: "https://example.com/2021"})
	if err != nil {
		t.Fatalf("seed season: %v", err)
	}

	rec := f.do(t, http.MethodGet, "/v1/seasons")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var listEnvelope struct {
		Data []seasonDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &listEnvelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listEnvelope.Data) != 1 || listEnvelope.Data[0].Year != 2021 {
		t.Fatalf("unexpected list payload: %+v", listEnvelope.Data)
	}

	rec = f.do(t, http.MethodGet, "/v1/seasons/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("get %d: expected 200, got %d", created.ID, rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/v1/seasons/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing season: expected 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/v1/seasons/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: expected 400, got %d", rec.Code)
	}
}

func TestTriggerImportAcknowledges(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/v1/import/circuits")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d (%s)", rec.Code, rec.Body.String())
	}

	var ack importAckDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if ack.Status != "in_progress" {
		t.Fatalf("expected in_progress, got %q", ack.Status)
	}
	if ack.JobID == "" {
		t.Fatal("acknowledgement should carry a job id")
	}

	// The registered job eventually reaches a terminal status.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		rec = f.do(t, http.MethodGet, "/v1/import/status/"+ack.JobID)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: expected 200, got %d", rec.Code)
		}
		var envelope struct {
			Data importJobDTO `json:"data"`
		}
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		if envelope.Data.Status == "succeeded" {
			return
		}
		if envelope.Data.Status == "failed" {
			t.Fatalf("job failed: %s", envelope.Data.Error)
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job never finished")
}

func TestTriggerImportRoundsValidation(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodPost, "/v1/import/rounds/not-a-year")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportStatusNotFound(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/v1/import/status/unknown-job")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	rec = f.do(t, http.MethodDelete, "/v1/import/status/unknown-job")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", rec.Code)
	}
}

func TestListRoundsRejectsMalformedYear(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/v1/rounds?year=last")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
