package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gridline/f1-mirror/internal/platform/logging"
	"github.com/gridline/f1-mirror/internal/usecase"
)

type Handler struct {
	catalogService *usecase.CatalogService
	importJobs     *usecase.ImportJobService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	importJobs *usecase.ImportJobService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService: catalogService,
		importJobs:     importJobs,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses the {id} path segment. Anything non-numeric reads as
// invalid input rather than a routing miss.
func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

// paging reads skip/limit query parameters. Malformed values fall back to
// the defaults; clamping happens in the catalog service.
func paging(r *http.Request) (offset, limit int) {
	if raw := strings.TrimSpace(r.URL.Query().Get("skip")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			offset = v
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	return offset, limit
}

// yearQuery reads an optional ?year= parameter. A present but malformed
// value is reported instead of silently ignored.
func yearQuery(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return nil, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, raw)
	}
	return &year, nil
}

func yearQueryParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return year, nil
}

func pathYear(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("year"))
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: invalid year %q", usecase.ErrInvalidInput, raw)
	}
	return year, nil
}
