package ergast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{BaseURL: srv.URL}, nil)
}

func TestSeasons_DecodesEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("expected limit=100, got %q", got)
		}
		_, _ = w.Write([]byte(`{"MRData":{"SeasonTable":{"Seasons":[
			{"season":"2019","url":"https://en.wikipedia.org/wiki/2019"},
			{"season":"2020","url":"https://en.wikipedia.org/wiki/2020"}
		]}}}`))
	})

	seasons, err := client.Seasons(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	if seasons[0].Season != "2019" {
		t.Fatalf("expected first season 2019, got %q", seasons[0].Season)
	}
}

func TestSeasons_MissingKeyPathYieldsEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"MRData":{"xmlns":"","total":"0"}}`))
	})

	seasons, err := client.Seasons(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons, got %d", len(seasons))
	}
}

func TestSeasons_Non200IsAnError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.Seasons(context.Background()); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}

func TestSeasons_MalformedJSONIsAnError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"MRData":`))
	})

	if _, err := client.Seasons(context.Background()); err == nil {
		t.Fatal("expected an error for malformed payload")
	}
}

func TestQualifyingResults_EmptyRaceListIsNoData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2020/1/qualifying.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[]}}}`))
	})

	rows, err := client.QualifyingResults(context.Background(), 2020, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no qualifying rows, got %d", len(rows))
	}
}

func TestRaceResults_DecodesClassification(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2021/1/results.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{
			"season":"2021","round":"1",
			"Results":[{
				"number":"44","position":"1","positionText":"1","points":"25",
				"grid":"2","laps":"56","status":"Finished",
				"Driver":{"driverId":"hamilton"},
				"Constructor":{"constructorId":"mercedes"},
				"Time":{"millis":"5523897","time":"1:32:03.897"}
			}]
		}]}}}`))
	})

	rows, err := client.RaceResults(context.Background(), 2021, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 result row, got %d", len(rows))
	}
	if rows[0].Driver.DriverID != "hamilton" || rows[0].Points != "25" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if rows[0].Time == nil || rows[0].Time.Millis != "5523897" {
		t.Fatalf("expected decoded finishing time, got %+v", rows[0].Time)
	}
}

func TestRaceResults_EmptyRaceListIsNoData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[]}}}`))
	})

	rows, err := client.RaceResults(context.Background(), 2021, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no result rows, got %d", len(rows))
	}
}

func TestRaces_DecodesPracticeKeys(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"MRData":{"RaceTable":{"Races":[{
			"season":"2023","round":"4","raceName":"Azerbaijan Grand Prix",
			"Circuit":{"circuitId":"baku","circuitName":"Baku City Circuit",
				"Location":{"lat":"40.3725","long":"49.8533","locality":"Baku","country":"Azerbaijan"}},
			"date":"2023-04-30","time":"11:00:00Z",
			"FirstPractice":{"date":"2023-04-28","time":"09:30:00Z"},
			"SecondPractice":{"date":"2023-04-29"},
			"Sprint":{"date":"2023-04-29","time":"13:30:00Z"}
		}]}}}`))
	})

	races, err := client.Races(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(races) != 1 {
		t.Fatalf("expected 1 race, got %d", len(races))
	}

	race := races[0]
	if race.FirstPractice == nil || race.FirstPractice.Date != "2023-04-28" {
		t.Fatalf("expected decoded first practice, got %+v", race.FirstPractice)
	}
	if race.ThirdPractice != nil {
		t.Fatal("expected absent third practice key to decode as nil")
	}
	if race.Sprint == nil {
		t.Fatal("expected sprint key to decode as non-nil")
	}
	if race.Circuit.Location.Lat != "40.3725" {
		t.Fatalf("unexpected circuit latitude %q", race.Circuit.Location.Lat)
	}
}

func TestDriverStandings_FlattensFirstList(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2020/driverStandings.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"MRData":{"StandingsTable":{"StandingsLists":[{
			"season":"2020","round":"17",
			"DriverStandings":[{
				"position":"1","points":"347","wins":"11",
				"Driver":{"driverId":"hamilton","givenName":"Lewis","familyName":"Hamilton"},
				"Constructors":[{"constructorId":"mercedes","name":"Mercedes"}]
			}]
		}]}}}`))
	})

	standings, err := client.DriverStandings(context.Background(), 2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(standings) != 1 {
		t.Fatalf("expected 1 standing, got %d", len(standings))
	}
	if standings[0].Driver.DriverID != "hamilton" {
		t.Fatalf("unexpected driver %q", standings[0].Driver.DriverID)
	}
	if len(standings[0].Constructors) != 1 || standings[0].Constructors[0].ConstructorID != "mercedes" {
		t.Fatalf("unexpected constructors %+v", standings[0].Constructors)
	}
}
