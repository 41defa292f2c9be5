package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/match"
	eventmock "github.com/riskibarqy/matchday/internal/mocks/domain/event"
	matchmock "github.com/riskibarqy/matchday/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func TestMatchService_CreateMatch_RejectsExtraTimeUsingMockery(t *testing.T) {
	t.Parallel()

	service := NewMatchService(matchmock.NewRepository(t), eventmock.NewRepository(t))

	_, err := service.CreateMatch(context.Background(), CreateMatchInput{
		Opponent:       "Virtus",
		MatchDate:      "2026-03-01",
		ExtraTimeFirst: 16,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_UpdateMatch_PartialPatchUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(matchRepo, eventmock.NewRepository(t))

	current := match.Session{ID: 4, Opponent: "Virtus", MatchDate: "2026-03-01", Phase: match.PhaseFinished}
	goalsFor := 3
	extra := 4

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(4)).
		Return(current, true, nil).
		Twice()
	matchRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(m match.Session) bool {
			return m.Opponent == "Virtus" && m.GoalsFor != nil && *m.GoalsFor == 3 &&
				m.GoalsAgainst == nil && m.ExtraTimeSecond == 4 && m.Phase == match.PhaseFinished
		})).
		Return(nil).
		Once()

	if _, err := service.UpdateMatch(ctx, 4, match.Patch{GoalsFor: &goalsFor, ExtraTimeSecond: &extra}); err != nil {
		t.Fatalf("update match: %v", err)
	}
}

func TestMatchService_ListEvents_UnknownMatchUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	eventRepo := eventmock.NewRepository(t)
	service := NewMatchService(matchRepo, eventRepo)

	matchRepo.
		On("GetByID", mock.Anything, int64(99)).
		Return(match.Session{}, false, nil).
		Once()

	if _, err := service.ListEvents(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	eventRepo.AssertNotCalled(t, "ListByMatch", mock.Anything, mock.Anything)
}

func TestMatchService_ListAllEventsUsingMockery(t *testing.T) {
	t.Parallel()

	eventRepo := eventmock.NewRepository(t)
	service := NewMatchService(matchmock.NewRepository(t), eventRepo)

	eventRepo.
		On("ListAll", mock.Anything).
		Return([]event.Event{{ID: 1, MatchID: 2, Type: event.TypeNote}}, nil).
		Once()

	items, err := service.ListAllEvents(context.Background())
	if err != nil {
		t.Fatalf("list all events: %v", err)
	}
	if len(items) != 1 || items[0].Type != event.TypeNote {
		t.Fatalf("unexpected events: %+v", items)
	}
}
