package app

import (
	"strings"
	"testing"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	got := formatDBQueryForTrace(" SELECT   *\nFROM rounds \t WHERE season_id = $1 ")
	want := "SELECT * FROM rounds WHERE season_id = $1"
	if got != want {
		t.Fatalf("unexpected formatted query: %q", got)
	}
}

func TestFormatDBQueryForTraceTruncates(t *testing.T) {
	long := "SELECT " + strings.Repeat("x", 2*maxTracedQueryLength)
	got := formatDBQueryForTrace(long)
	if len(got) != maxTracedQueryLength+3 {
		t.Fatalf("expected truncated length %d, got %d", maxTracedQueryLength+3, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}
