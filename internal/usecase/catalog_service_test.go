package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gridline/f1-mirror/internal/domain/result"
	"github.com/gridline/f1-mirror/internal/domain/round"
	"github.com/gridline/f1-mirror/internal/domain/season"
	"github.com/gridline/f1-mirror/internal/domain/session"
	"github.com/gridline/f1-mirror/internal/infrastructure/repository/memory"
	"github.com/gridline/f1-mirror/internal/usecase"
)

type catalogFixture struct {
	seasons     *memory.SeasonRepository
	circuits    *memory.CircuitRepository
	drivers     *memory.DriverRepository
	teams       *memory.TeamRepository
	rounds      *memory.RoundRepository
	sessions    *memory.SessionRepository
	results     *memory.ResultRepository
	teamDrivers *memory.TeamDriverRepository
	service     *usecase.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		seasons:     memory.NewSeasonRepository(),
		circuits:    memory.NewCircuitRepository(),
		drivers:     memory.NewDriverRepository(),
		teams:       memory.NewTeamRepository(),
		rounds:      memory.NewRoundRepository(),
		sessions:    memory.NewSessionRepository(),
		results:     memory.NewResultRepository(),
		teamDrivers: memory.NewTeamDriverRepository(),
	}
	f.service = usecase.NewCatalogService(
		f.seasons, f.circuits, f.drivers, f.teams,
		f.rounds, f.sessions, f.results, f.teamDrivers,
	)
	return f
}

func TestGetSeasonNotFound(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	if _, err := f.service.GetSeason(context.Background(), 99); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSeasonsDefaultPaging(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	ctx := context.Background()
	for year := 2019; year <= 2021; year++ {
		if _, err := f.seasons.Create(ctx, season.Season{Year: year}); err != nil {
			t.Fatalf("seed season %d: %v", year, err)
		}
	}

	// Zero limit falls back to the default page size.
	out, err := f.service.ListSeasons(ctx, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(out))
	}

	out, err = f.service.ListSeasons(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(out) != 1 || out[0].Year != 2020 {
		t.Fatalf("expected the middle season, got %+v", out)
	}
}

func TestListRoundsByYear(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	ctx := context.Background()

	s2021, err := f.seasons.Create(ctx, season.Season{Year: 2021})
	if err != nil {
		t.Fatalf("seed season: %v", err)
	}
	s2022, err := f.seasons.Create(ctx, season.Season{Year: 2022})
	if err != nil {
		t.Fatalf("seed season: %v", err)
	}

	for i, parent := range []season.Season{s2021, s2021, s2022} {
		_, err := f.rounds.Create(ctx, round.Round{
			SeasonID:  parent.ID,
			CircuitID: 1,
			Reference: round.ReferenceFor(parent.Year, i+1),
			Number:    i + 1,
		})
		if err != nil {
			t.Fatalf("seed round: %v", err)
		}
	}

	year := 2021
	out, err := f.service.ListRounds(ctx, &year, 0, 0)
	if err != nil {
		t.Fatalf("list by year: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rounds in 2021, got %d", len(out))
	}

	// A year with no imported season matches nothing rather than erroring.
	unknown := 1903
	out, err = f.service.ListRounds(ctx, &unknown, 0, 0)
	if err != nil {
		t.Fatalf("list unknown year: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no rounds, got %d", len(out))
	}

	out, err = f.service.ListRounds(ctx, nil, 0, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rounds total, got %d", len(out))
	}
}

func TestListSessionsByRoundRequiresRound(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.service.ListSessionsByRound(ctx, 404, 0, 0); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("unknown round should be ErrNotFound, got %v", err)
	}

	parent, err := f.rounds.Create(ctx, round.Round{
		SeasonID: 1, CircuitID: 1, Reference: "2021-1", Number: 1,
	})
	if err != nil {
		t.Fatalf("seed round: %v", err)
	}
	if _, err := f.sessions.Create(ctx, session.Session{RoundID: parent.ID, Type: session.TypeRace}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	out, err := f.service.ListSessionsByRound(ctx, parent.ID, 0, 0)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 session, got %d", len(out))
	}
}

func TestListResultsBySessionRequiresSession(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.service.ListResultsBySession(ctx, 404, 0, 0); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("unknown session should be ErrNotFound, got %v", err)
	}

	owner, err := f.sessions.Create(ctx, session.Session{RoundID: 1, Type: session.TypeRace})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if _, err := f.results.Create(ctx, result.Result{SessionID: owner.ID, DriverID: 1, TeamID: 1, PositionText: "1"}); err != nil {
		t.Fatalf("seed result: %v", err)
	}

	out, err := f.service.ListResultsBySession(ctx, owner.ID, 0, 0)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
}
