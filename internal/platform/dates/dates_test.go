package dates

import (
	"context"
	"testing"
	"time"
)

func TestParse_ValidDate(t *testing.T) {
	t.Parallel()

	got := Parse(context.Background(), "2020-07-05")
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	want := time.Date(2020, time.July, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_EmptyIsAbsent(t *testing.T) {
	t.Parallel()

	if got := Parse(context.Background(), ""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := Parse(context.Background(), "   "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}

func TestParse_MalformedIsAbsent(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"2020-7-5", "05-07-2020", "2020/07/05", "not-a-date", "2020-13-40"} {
		if got := Parse(context.Background(), raw); got != nil {
			t.Fatalf("expected nil for %q, got %v", raw, got)
		}
	}
}
