package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/store"
)

type AdminService struct {
	uow store.UnitOfWork
}

func NewAdminService(uow store.UnitOfWork) *AdminService {
	return &AdminService{uow: uow}
}

type CompleteDeletionResult struct {
	MatchID         int64
	EventsDeleted   int
	PlayersRestored int
}

// DeleteMatchCompletely erases a match and undoes what its finalisation did
// to the roster: one suspension day back to every formation player still
// serving a suspension, and, when the match was finalised, the card
// counters of its card events reverted.
func (s *AdminService) DeleteMatchCompletely(ctx context.Context, matchID int64) (CompleteDeletionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DeleteMatchCompletely")
	defer span.End()

	var out CompleteDeletionResult
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}

		items, err := repos.Events.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list match events: %w", err)
		}
		assignments, err := repos.Formations.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}

		removed, err := repos.Events.DeleteByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		if err := repos.Formations.ResetMinutes(ctx, matchID); err != nil {
			return fmt.Errorf("reset minutes: %w", err)
		}

		ids := make([]int64, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.PlayerID)
		}
		players, err := repos.Players.GetByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("get players: %w", err)
		}
		restored := 0
		for _, p := range players {
			if p.SuspensionDays > 0 {
				restored++
			}
		}
		if err := repos.Players.AdjustSuspensions(ctx, ids, 1); err != nil {
			return fmt.Errorf("restore suspensions: %w", err)
		}
		// only finalisation books cards onto the roster
		if m.Finalized() {
			if err := applyCards(ctx, repos, items, -1); err != nil {
				return err
			}
		}

		if err := repos.Matches.Delete(ctx, matchID); err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		out = CompleteDeletionResult{MatchID: matchID, EventsDeleted: removed, PlayersRestored: restored}
		return nil
	})
	if err != nil {
		return CompleteDeletionResult{}, err
	}
	return out, nil
}
