package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gridline/f1-mirror/internal/domain/importjob"
)

type importAckDTO struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	JobID   string `json:"job_id"`
}

type importJobDTO struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	StartYear  *int           `json:"startYear,omitempty"`
	EndYear    *int           `json:"endYear,omitempty"`
	Year       *int           `json:"year,omitempty"`
	Status     string         `json:"status"`
	Counts     map[string]int `json:"counts"`
	Error      string         `json:"error,omitempty"`
	CreatedAt  string         `json:"createdAt"`
	StartedAt  *string        `json:"startedAt,omitempty"`
	FinishedAt *string        `json:"finishedAt,omitempty"`
}

type importRangeRequest struct {
	StartYear int `validate:"omitempty,gte=1900,lte=2100"`
	EndYear   int `validate:"omitempty,gte=1900,lte=2100"`
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func importJobToDTO(j importjob.Job) importJobDTO {
	counts := j.Counts
	if counts == nil {
		counts = map[string]int{}
	}
	return importJobDTO{
		ID:         j.ID,
		Kind:       string(j.Kind),
		StartYear:  j.Scope.StartYear,
		EndYear:    j.Scope.EndYear,
		Year:       j.Scope.Year,
		Status:     string(j.Status),
		Counts:     counts,
		Error:      j.Error,
		CreatedAt:  j.CreatedAt.UTC().Format(time.RFC3339),
		StartedAt:  formatTimestamp(j.StartedAt),
		FinishedAt: formatTimestamp(j.FinishedAt),
	}
}

func (h *Handler) writeImportAck(w http.ResponseWriter, r *http.Request, message string, job importjob.Job) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusAccepted, importAckDTO{
		Message: message,
		Status:  "in_progress",
		JobID:   job.ID,
	})
}

func (h *Handler) TriggerImportAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportAll")
	defer span.End()

	startYear, err := yearQueryParam(r, "start_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endYear, err := yearQueryParam(r, "end_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, importRangeRequest{StartYear: startYear, EndYear: endYear}); err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := h.importJobs.TriggerAll(ctx, startYear, endYear)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger full import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "full import started", job)
}

func (h *Handler) TriggerImportSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportSeasons")
	defer span.End()

	startYear, err := yearQueryParam(r, "start_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endYear, err := yearQueryParam(r, "end_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, importRangeRequest{StartYear: startYear, EndYear: endYear}); err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := h.importJobs.TriggerSeasons(ctx, startYear, endYear)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger season import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "season import started", job)
}

func (h *Handler) TriggerImportCircuits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportCircuits")
	defer span.End()

	job, err := h.importJobs.TriggerCircuits(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger circuit import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "circuit import started", job)
}

func (h *Handler) TriggerImportDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportDrivers")
	defer span.End()

	job, err := h.importJobs.TriggerDrivers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger driver import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "driver import started", job)
}

func (h *Handler) TriggerImportTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportTeams")
	defer span.End()

	job, err := h.importJobs.TriggerTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger team import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "team import started", job)
}

func (h *Handler) TriggerImportRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportRounds")
	defer span.End()

	year, err := pathYear(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := h.importJobs.TriggerRounds(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger round import failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "round import started", job)
}

func (h *Handler) TriggerImportTeamDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TriggerImportTeamDrivers")
	defer span.End()

	year, err := pathYear(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := h.importJobs.TriggerTeamDrivers(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "trigger team driver import failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeImportAck(w, r, "team driver import started", job)
}

func (h *Handler) ListImportJobs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListImportJobs")
	defer span.End()

	offset, limit := paging(r)
	jobs, err := h.importJobs.ListJobs(ctx, offset, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list import jobs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(jobs, importJobToDTO))
}

func (h *Handler) GetImportJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetImportJob")
	defer span.End()

	id := strings.TrimSpace(r.PathValue("id"))
	job, err := h.importJobs.GetJob(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importJobToDTO(job))
}

func (h *Handler) ClearImportJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearImportJob")
	defer span.End()

	id := strings.TrimSpace(r.PathValue("id"))
	if err := h.importJobs.ClearJob(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (h *Handler) ClearImportJobs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearImportJobs")
	defer span.End()

	if err := h.importJobs.ClearJobs(ctx); err != nil {
		h.logger.WarnContext(ctx, "clear import jobs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}
