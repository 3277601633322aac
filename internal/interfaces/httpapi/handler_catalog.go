package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gridline/f1-mirror/internal/domain/circuit"
	"github.com/gridline/f1-mirror/internal/domain/driver"
	"github.com/gridline/f1-mirror/internal/domain/result"
	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/session"
	"github.com/gridline/f1-mirror/internal/domain/team"
	"github.com/gridline/f1-mirror/internal/domain/teamdriver"
)

const dateLayout = "2006-01-02"

type seasonDTO struct {
	ID   int64  `json:"id"`
	Year int    `json:"year"`
	URL  string `json:"url,omitempty"`
}

type circuitDTO struct {
	ID          int64    `json:"id"`
	Reference   string   `json:"reference"`
	Name        string   `json:"name"`
	Locality    string   `json:"locality,omitempty"`
	Country     string   `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CountryCode *string  `json:"countryCode,omitempty"`
	Altitude    *float64 `json:"altitude,omitempty"`
}

type driverDTO struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"reference"`
	Forename     string  `json:"forename"`
	Surname      string  `json:"surname"`
	Abbreviation *string `json:"abbreviation,omitempty"`
	Number       *int    `json:"number,omitempty"`
	Nationality  string  `json:"nationality,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
}

type teamDTO struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality,omitempty"`
	ConstructorID string `json:"constructorId"`
}

type roundDTO struct {
	ID        int64   `json:"id"`
	SeasonID  int64   `json:"seasonId"`
	CircuitID int64   `json:"circuitId"`
	Reference string  `json:"reference"`
	Name      string  `json:"name"`
	Number    int     `json:"number"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
}

type sessionDTO struct {
	ID      int64   `json:"id"`
	RoundID int64   `json:"roundId"`
	Type    string  `json:"type"`
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Status  string  `json:"status,omitempty"`
}

type resultDTO struct {
	ID           int64   `json:"id"`
	SessionID    int64   `json:"sessionId"`
	DriverID     int64   `json:"driverId"`
	TeamID       int64   `json:"teamId"`
	Position     *int    `json:"position,omitempty"`
	PositionText string  `json:"positionText,omitempty"`
	Points       float64 `json:"points"`
	Grid         *int    `json:"grid,omitempty"`
	Laps         *int    `json:"laps,omitempty"`
	Status       string  `json:"status,omitempty"`
	TimeText     *string `json:"time,omitempty"`
	Milliseconds *int    `json:"milliseconds,omitempty"`
}

type teamDriverDTO struct {
	ID         int64 `json:"id"`
	TeamID     int64 `json:"teamId"`
	DriverID   int64 `json:"driverId"`
	SeasonYear int   `json:"seasonYear"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{ID: v.ID, Year: v.Year, URL: v.URL}
}

func circuitToDTO(v circuit.Circuit) circuitDTO {
	return circuitDTO{
		ID:          v.ID,
		Reference:   v.Reference,
		Name:        v.Name,
		Locality:    v.Locality,
		Country:     v.Country,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		CountryCode: v.CountryCode,
		Altitude:    v.Altitude,
	}
}

func driverToDTO(v driver.Driver) driverDTO {
	return driverDTO{
		ID:           v.ID,
		Reference:    v.Reference,
		Forename:     v.Forename,
		Surname:      v.Surname,
		Abbreviation: v.Abbreviation,
		Number:       v.Number,
		Nationality:  v.Nationality,
		DateOfBirth:  formatDate(v.DateOfBirth),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		Reference:     v.Reference,
		Name:          v.Name,
		Nationality:   v.Nationality,
		ConstructorID: v.ConstructorID,
	}
}

func roundToDTO(v round.Round) roundDTO {
	return roundDTO{
		ID:        v.ID,
		SeasonID:  v.SeasonID,
		CircuitID: v.CircuitID,
		Reference: v.Reference,
		Name:      v.Name,
		Number:    v.Number,
		Date:      formatDate(v.Date),
		Time:      v.Time,
	}
}

func sessionToDTO(v session.Session) sessionDTO {
	return sessionDTO{
		ID:      v.ID,
		RoundID: v.RoundID,
		Type:    string(v.Type),
		Date:    formatDate(v.Date),
		Time:    v.Time,
		Status:  v.Status,
	}
}

func resultToDTO(v result.Result) resultDTO {
	return resultDTO{
		ID:           v.ID,
		SessionID:    v.SessionID,
		DriverID:     v.DriverID,
		TeamID:       v.TeamID,
		Position:     v.Position,
		PositionText: v.PositionText,
		Points:       v.Points,
		Grid:         v.Grid,
		Laps:         v.Laps,
		Status:       v.Status,
		TimeText:     v.TimeText,
		Milliseconds: v.Milliseconds,
	}
}

func teamDriverToDTO(v teamdriver.TeamDriver) teamDriverDTO {
	return teamDriverDTO{
		ID:         v.ID,
		TeamID:     v.TeamID,
		DriverID:   v.DriverID,
		SeasonYear: v.SeasonYear,
	}
}

func mapSlice[T, D any](in []T, f func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	offset, limit := paging(r)
	items, err := h.catalogService.ListSeasons(ctx, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, seasonToDTO))
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetSeason(ctx, id)
		return seasonToDTO(item), err
	})
}

func (h *Handler) ListCircuits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCircuits")
	defer span.End()

	offset, limit := paging(r)
	items, err := h.catalogService.ListCircuits(ctx, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list circuits failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, circuitToDTO))
}

func (h *Handler) GetCircuit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCircuit")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetCircuit(ctx, id)
		return circuitToDTO(item), err
	})
}

func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrivers")
	defer span.End()

	offset, limit := paging(r)
	items, err := h.catalogService.ListDrivers(ctx, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list drivers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, driverToDTO))
}

func (h *Handler) GetDriver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDriver")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetDriver(ctx, id)
		return driverToDTO(item), err
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	offset, limit := paging(r)
	items, err := h.catalogService.ListTeams(ctx, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamToDTO))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetTeam(ctx, id)
		return teamToDTO(item), err
	})
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	year, err := yearQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offset, limit := paging(r)
	items, err := h.catalogService.ListRounds(ctx, year, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, roundToDTO))
}

func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRound")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetRound(ctx, id)
		return roundToDTO(item), err
	})
}

func (h *Handler) ListSessionsByRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSessionsByRound")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offset, limit := paging(r)
	items, err := h.catalogService.ListSessionsByRound(ctx, id, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list sessions failed", "round_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, sessionToDTO))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetSession(ctx, id)
		return sessionToDTO(item), err
	})
}

func (h *Handler) ListResultsBySession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResultsBySession")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offset, limit := paging(r)
	items, err := h.catalogService.ListResultsBySession(ctx, id, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list results failed", "session_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, resultToDTO))
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResult")
	defer span.End()

	h.getOne(ctx, w, r, func(ctx context.Context, id int64) (any, error) {
		item, err := h.catalogService.GetResult(ctx, id)
		return resultToDTO(item), err
	})
}

func (h *Handler) ListTeamDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamDrivers")
	defer span.End()

	year, err := yearQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	offset, limit := paging(r)
	items, err := h.catalogService.ListTeamDrivers(ctx, year, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list team drivers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, teamDriverToDTO))
}

// getOne centralizes the id-parse → lookup → respond flow shared by every
// by-id endpoint.
func (h *Handler) getOne(ctx context.Context, w http.ResponseWriter, r *http.Request, lookup func(context.Context, int64) (any, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := lookup(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}
