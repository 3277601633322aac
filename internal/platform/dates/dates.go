// Package dates is the single date-handling path for upstream payloads.
// Every importer goes through Parse; nothing else parses calendar dates.
package dates

import (
	"context"
	"strings"
	"time"

	"github.com/gridline/f1-mirror/internal/platform/logging"
)

const layout = "2006-01-02"

// Parse converts a strict YYYY-MM-DD string into a date. Empty input and
// malformed input both yield nil; malformed input is logged, never fatal.
func Parse(ctx context.Context, raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if len(trimmed) != len(layout) {
		logging.Default().WarnContext(ctx, "unparseable date, treating as absent", "value", raw)
		return nil
	}

	parsed, err := time.ParseInLocation(layout, trimmed, time.UTC)
	if err != nil {
		logging.Default().WarnContext(ctx, "unparseable date, treating as absent", "value", raw, "error", err)
		return nil
	}

	return &parsed
}
