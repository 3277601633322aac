// Package ergast talks to an Ergast-compatible motorsport results API.
// One GET per logical fetch, no retries: a failed call is reported to the
// caller, who downgrades it to "no data" for that call only.
package ergast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/gridline/f1-mirror/internal/platform/logging"
)

const (
	DefaultBaseURL = "http://api.jolpi.ca/ergast/f1"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "f1-mirror/1.0"

	collectionLimit = "1000"
	seasonLimit     = "100"
)

type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Seasons fetches every championship year known upstream.
func (c *Client) Seasons(ctx context.Context) ([]Season, error) {
	env, err := c.getEnvelope(ctx, "/seasons.json", seasonLimit)
	if err != nil {
		return nil, err
	}
	if env.MRData.SeasonTable == nil {
		return nil, nil
	}
	return env.MRData.SeasonTable.Seasons, nil
}

// Circuits fetches the full circuit catalogue, unscoped by season.
func (c *Client) Circuits(ctx context.Context) ([]Circuit, error) {
	env, err := c.getEnvelope(ctx, "/circuits.json", collectionLimit)
	if err != nil {
		return nil, err
	}
	if env.MRData.CircuitTable == nil {
		return nil, nil
	}
	return env.MRData.CircuitTable.Circuits, nil
}

// Drivers fetches the full driver catalogue, unscoped by season.
func (c *Client) Drivers(ctx context.Context) ([]Driver, error) {
	env, err := c.getEnvelope(ctx, "/drivers.json", collectionLimit)
	if err != nil {
		return nil, err
	}
	if env.MRData.DriverTable == nil {
		return nil, nil
	}
	return env.MRData.DriverTable.Drivers, nil
}

// Constructors fetches the full constructor catalogue, unscoped by season.
func (c *Client) Constructors(ctx context.Context) ([]Constructor, error) {
	env, err := c.getEnvelope(ctx, "/constructors.json", collectionLimit)
	if err != nil {
		return nil, err
	}
	if env.MRData.ConstructorTable == nil {
		return nil, nil
	}
	return env.MRData.ConstructorTable.Constructors, nil
}

// Races fetches the race list for one season year.
func (c *Client) Races(ctx context.Context, year int) ([]Race, error) {
	env, err := c.getEnvelope(ctx, fmt.Sprintf("/%d.json", year), seasonLimit)
	if err != nil {
		return nil, err
	}
	if env.MRData.RaceTable == nil {
		return nil, nil
	}
	return env.MRData.RaceTable.Races, nil
}

// RaceResults fetches the race classification for one round. An empty race
// list upstream means "no data", not a failure.
func (c *Client) RaceResults(ctx context.Context, year, round int) ([]SessionResult, error) {
	race, err := c.getSingleRace(ctx, fmt.Sprintf("/%d/%d/results.json", year, round))
	if err != nil || race == nil {
		return nil, err
	}
	return race.Results, nil
}

// QualifyingResults fetches the qualifying classification for one round.
func (c *Client) QualifyingResults(ctx context.Context, year, round int) ([]QualifyingResult, error) {
	race, err := c.getSingleRace(ctx, fmt.Sprintf("/%d/%d/qualifying.json", year, round))
	if err != nil || race == nil {
		return nil, err
	}
	return race.QualifyingResults, nil
}

// SprintResults fetches the sprint classification for one round.
func (c *Client) SprintResults(ctx context.Context, year, round int) ([]SessionResult, error) {
	race, err := c.getSingleRace(ctx, fmt.Sprintf("/%d/%d/sprint.json", year, round))
	if err != nil || race == nil {
		return nil, err
	}
	return race.SprintResults, nil
}

// DriverStandings fetches the season-end driver standings for one year.
// Missing standings lists collapse to an empty slice.
func (c *Client) DriverStandings(ctx context.Context, year int) ([]DriverStanding, error) {
	env, err := c.getEnvelope(ctx, fmt.Sprintf("/%d/driverStandings.json", year), "")
	if err != nil {
		return nil, err
	}
	table := env.MRData.StandingsTable
	if table == nil || len(table.StandingsLists) == 0 {
		return nil, nil
	}
	return table.StandingsLists[0].DriverStandings, nil
}

func (c *Client) getSingleRace(ctx context.Context, path string) (*Race, error) {
	env, err := c.getEnvelope(ctx, path, "")
	if err != nil {
		return nil, err
	}
	table := env.MRData.RaceTable
	if table == nil || len(table.Races) == 0 {
		return nil, nil
	}
	return &table.Races[0], nil
}

func (c *Client) getEnvelope(ctx context.Context, path, limit string) (envelope, error) {
	var env envelope

	requestURL := c.baseURL + path
	if limit != "" {
		requestURL += "?" + url.Values{"limit": {limit}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return env, crerr.Wrapf(err, "build request %s", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "upstream request failed", "url", requestURL, "error", err)
		return env, crerr.Wrapf(err, "get %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, crerr.Wrapf(err, "read response %s", path)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "upstream returned non-200", "url", requestURL, "status", resp.StatusCode)
		return env, crerr.Newf("get %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := sonic.Unmarshal(body, &env); err != nil {
		c.logger.WarnContext(ctx, "upstream payload decode failed", "url", requestURL, "error", err)
		return env, crerr.Wrapf(err, "decode response %s", path)
	}

	return env, nil
}
