package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
	eventRepo event.Repository
}

func NewMatchService(matchRepo match.Repository, eventRepo event.Repository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		eventRepo: eventRepo,
	}
}

type CreateMatchInput struct {
	Opponent        string
	MatchDate       string
	IsHome          bool
	GoalsFor        *int
	GoalsAgainst    *int
	StartTime       *time.Time
	ExtraTimeFirst  int
	ExtraTimeSecond int
	FormationLabel  string
}

func (s *MatchService) ListMatches(ctx context.Context) ([]match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id int64) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	return getMatch(ctx, s.matchRepo, id)
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	item := match.Session{
		Opponent:        strings.TrimSpace(input.Opponent),
		MatchDate:       strings.TrimSpace(input.MatchDate),
		IsHome:          input.IsHome,
		GoalsFor:        input.GoalsFor,
		GoalsAgainst:    input.GoalsAgainst,
		StartTime:       input.StartTime,
		ExtraTimeFirst:  input.ExtraTimeFirst,
		ExtraTimeSecond: input.ExtraTimeSecond,
		FormationLabel:  strings.TrimSpace(input.FormationLabel),
		Phase:           match.PhaseNotStarted,
	}
	if err := item.Validate(); err != nil {
		return match.Session{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Session{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

// UpdateMatch applies a partial update of scores, extra time, date,
// opponent, formation label or start time. The live phase is not patchable.
func (s *MatchService) UpdateMatch(ctx context.Context, id int64, patch match.Patch) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	current, err := getMatch(ctx, s.matchRepo, id)
	if err != nil {
		return match.Session{}, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return match.Session{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Session{}, fmt.Errorf("update match: %w", err)
	}

	return getMatch(ctx, s.matchRepo, id)
}

// DeleteMatch drops the match with its formation and timeline. Player
// counters are left alone; see AdminService.DeleteMatchCompletely.
func (s *MatchService) DeleteMatch(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	if _, err := getMatch(ctx, s.matchRepo, id); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func (s *MatchService) ListAllEvents(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListAllEvents")
	defer span.End()

	items, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	return items, nil
}

func (s *MatchService) ListEvents(ctx context.Context, matchID int64) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListEvents")
	defer span.End()

	if _, err := getMatch(ctx, s.matchRepo, matchID); err != nil {
		return nil, err
	}

	items, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	return items, nil
}

func getMatch(ctx context.Context, repo match.Repository, id int64) (match.Session, error) {
	if id <= 0 {
		return match.Session{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		return match.Session{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Session{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return item, nil
}
