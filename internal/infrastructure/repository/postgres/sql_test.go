package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows should be not-found")
	}
	if !isNotFound(fmt.Errorf("select season: %w", sql.ErrNoRows)) {
		t.Fatal("wrapped sql.ErrNoRows should be not-found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatal("arbitrary error should not be not-found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := &pq.Error{Code: uniqueViolationCode}
	if !isUniqueViolation(dup) {
		t.Fatal("code 23505 should be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert season: %w", dup)) {
		t.Fatal("wrapped 23505 should be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation should not match")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatal("arbitrary error should not match")
	}
}

func TestImportJobCountsRoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := encodeJobCounts(map[string]int{"seasons": 3, "rounds": 22})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	m := importJobTableModel{ID: "j1", Kind: "all", Status: "succeeded", Counts: raw}
	j, err := m.toDomain()
	if err != nil {
		t.Fatalf("toDomain: %v", err)
	}
	if j.Counts["seasons"] != 3 || j.Counts["rounds"] != 22 {
		t.Fatalf("counts not preserved: %#v", j.Counts)
	}
}

func TestEncodeJobCountsNil(t *testing.T) {
	t.Parallel()

	raw, err := encodeJobCounts(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("nil counts should encode as empty object, got %s", raw)
	}
}
