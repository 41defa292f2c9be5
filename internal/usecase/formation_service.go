package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/minutes"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

type FormationService struct {
	uow           store.UnitOfWork
	formationRepo formation.Repository
	matchRepo     match.Repository
}

func NewFormationService(uow store.UnitOfWork, formationRepo formation.Repository, matchRepo match.Repository) *FormationService {
	return &FormationService{
		uow:           uow,
		formationRepo: formationRepo,
		matchRepo:     matchRepo,
	}
}

type FormationEntry struct {
	PlayerID      int64
	Status        string
	MinutesPlayed *int
	MinuteEntered *int
}

type SaveFormationInput struct {
	MatchID int64
	Entries []FormationEntry
}

// SaveFormation upserts the formation rows of a match in one transaction.
// Status is always overwritten; minutes are only written when supplied.
func (s *FormationService) SaveFormation(ctx context.Context, input SaveFormationInput) ([]formation.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.SaveFormation")
	defer span.End()

	if input.MatchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if len(input.Entries) == 0 {
		return nil, fmt.Errorf("%w: formations are required", ErrInvalidInput)
	}

	items, err := normalizeFormationEntries(input.MatchID, input.Entries)
	if err != nil {
		return nil, err
	}
	if starters := formation.CountStarters(items); starters > formation.StartersRequired {
		return nil, fmt.Errorf("%w: %w: %d starters, at most %d allowed",
			ErrInvalidInput, formation.ErrInvalidFormation, starters, formation.StartersRequired)
	}

	var saved []formation.Assignment
	err = s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, input.MatchID)
		if err != nil {
			return err
		}
		if err := checkMinuteBounds(minutes.HalvesOf(m), items); err != nil {
			return err
		}
		if err := repos.Formations.UpsertBatch(ctx, items); err != nil {
			return fmt.Errorf("upsert formation: %w", err)
		}
		saved, err = repos.Formations.ListByMatch(ctx, input.MatchID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *FormationService) ListFormations(ctx context.Context) ([]formation.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.ListFormations")
	defer span.End()

	items, err := s.formationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	return items, nil
}

func (s *FormationService) GetFormation(ctx context.Context, matchID int64) ([]formation.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.GetFormation")
	defer span.End()

	if _, err := getMatch(ctx, s.matchRepo, matchID); err != nil {
		return nil, err
	}

	items, err := s.formationRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list formation: %w", err)
	}
	return items, nil
}

// UpdateMinutes overrides the stored minutes of one formation row.
func (s *FormationService) UpdateMinutes(ctx context.Context, update formation.MinutesUpdate) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.UpdateMinutes")
	defer span.End()

	if update.PlayerID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if update.MinutesPlayed == nil && update.MinuteEntered == nil {
		return fmt.Errorf("%w: minutesPlayed or minuteEntered is required", ErrInvalidInput)
	}

	m, err := getMatch(ctx, s.matchRepo, update.MatchID)
	if err != nil {
		return err
	}
	row := formation.Assignment{
		MatchID:       update.MatchID,
		PlayerID:      update.PlayerID,
		MinutesPlayed: update.MinutesPlayed,
		MinuteEntered: update.MinuteEntered,
	}
	if err := checkMinuteBounds(minutes.HalvesOf(m), []formation.Assignment{row}); err != nil {
		return err
	}

	found, err := s.formationRepo.UpdateMinutes(ctx, update)
	if err != nil {
		return fmt.Errorf("update minutes: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: formation match=%d player=%d", ErrNotFound, update.MatchID, update.PlayerID)
	}
	return nil
}

// normalizeFormationEntries validates the payload and collapses duplicate
// players; the last entry for a player wins.
func normalizeFormationEntries(matchID int64, entries []FormationEntry) ([]formation.Assignment, error) {
	index := make(map[int64]int, len(entries))
	out := make([]formation.Assignment, 0, len(entries))
	for i, entry := range entries {
		if entry.PlayerID <= 0 {
			return nil, fmt.Errorf("%w: formations[%d]: player id is required", ErrInvalidInput, i)
		}
		status, err := formation.ParseStatus(entry.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: formations[%d]: %w", ErrInvalidInput, i, err)
		}

		row := formation.Assignment{
			MatchID:       matchID,
			PlayerID:      entry.PlayerID,
			Status:        status,
			MinutesPlayed: entry.MinutesPlayed,
			MinuteEntered: entry.MinuteEntered,
		}
		if pos, dup := index[entry.PlayerID]; dup {
			out[pos] = row
			continue
		}
		index[entry.PlayerID] = len(out)
		out = append(out, row)
	}
	return out, nil
}

func checkMinuteBounds(h minutes.Halves, items []formation.Assignment) error {
	total := h.Total()
	for _, item := range items {
		if v := item.MinutesPlayed; v != nil && (*v < 0 || *v > total) {
			return fmt.Errorf("%w: player %d: minutes played must be between 0 and %d", ErrInvalidInput, item.PlayerID, total)
		}
		if v := item.MinuteEntered; v != nil && (*v < 0 || *v > total) {
			return fmt.Errorf("%w: player %d: minute entered must be between 0 and %d", ErrInvalidInput, item.PlayerID, total)
		}
	}
	return nil
}
