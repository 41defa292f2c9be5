package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/convocation"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

type ConvocationService struct {
	uow             store.UnitOfWork
	convocationRepo convocation.Repository
}

func NewConvocationService(uow store.UnitOfWork, convocationRepo convocation.Repository) *ConvocationService {
	return &ConvocationService{
		uow:             uow,
		convocationRepo: convocationRepo,
	}
}

type ConvocationInput struct {
	Name        string
	MatchDate   string
	Opponent    string
	PlayerIDs   []int64
	ArrivalTime string
	KickoffTime string
	Address     string
	Notes       string
}

func (in ConvocationInput) toConvocation() convocation.Convocation {
	return convocation.Convocation{
		Name:        strings.TrimSpace(in.Name),
		MatchDate:   strings.TrimSpace(in.MatchDate),
		Opponent:    strings.TrimSpace(in.Opponent),
		PlayerIDs:   append([]int64(nil), in.PlayerIDs...),
		ArrivalTime: strings.TrimSpace(in.ArrivalTime),
		KickoffTime: strings.TrimSpace(in.KickoffTime),
		Address:     strings.TrimSpace(in.Address),
		Notes:       strings.TrimSpace(in.Notes),
	}
}

type ConvocationFormation struct {
	Match     match.Session
	Formation []formation.Assignment
}

func (s *ConvocationService) ListConvocations(ctx context.Context) ([]convocation.Convocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.ListConvocations")
	defer span.End()

	items, err := s.convocationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list convocations: %w", err)
	}
	return items, nil
}

func (s *ConvocationService) GetConvocation(ctx context.Context, id int64) (convocation.Convocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.GetConvocation")
	defer span.End()

	return getConvocation(ctx, s.convocationRepo, id)
}

func (s *ConvocationService) CreateConvocation(ctx context.Context, input ConvocationInput) (convocation.Convocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.CreateConvocation")
	defer span.End()

	item := input.toConvocation()
	if err := item.Validate(); err != nil {
		return convocation.Convocation{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var created convocation.Convocation
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := checkRosterMembers(ctx, repos, item.PlayerIDs); err != nil {
			return err
		}
		var err error
		created, err = repos.Convocations.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create convocation: %w", err)
		}
		return nil
	})
	if err != nil {
		return convocation.Convocation{}, err
	}
	return created, nil
}

// UpdateConvocation replaces the whole call-up sheet, player list included.
func (s *ConvocationService) UpdateConvocation(ctx context.Context, id int64, input ConvocationInput) (convocation.Convocation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.UpdateConvocation")
	defer span.End()

	item := input.toConvocation()
	if err := item.Validate(); err != nil {
		return convocation.Convocation{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var updated convocation.Convocation
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		current, err := getConvocation(ctx, repos.Convocations, id)
		if err != nil {
			return err
		}
		if err := checkRosterMembers(ctx, repos, item.PlayerIDs); err != nil {
			return err
		}

		item.ID = current.ID
		item.CreatedAt = current.CreatedAt
		if err := repos.Convocations.Update(ctx, item); err != nil {
			return fmt.Errorf("update convocation: %w", err)
		}
		updated, err = getConvocation(ctx, repos.Convocations, id)
		return err
	})
	if err != nil {
		return convocation.Convocation{}, err
	}
	return updated, nil
}

func (s *ConvocationService) DeleteConvocation(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.DeleteConvocation")
	defer span.End()

	if _, err := getConvocation(ctx, s.convocationRepo, id); err != nil {
		return err
	}
	if err := s.convocationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete convocation: %w", err)
	}
	return nil
}

// BuildFormation turns a call-up sheet into the formation of its match,
// creating the match the first time. The chosen starters must be eleven
// called-up players; everyone else goes on the bench.
func (s *ConvocationService) BuildFormation(ctx context.Context, id int64, starters []int64) (ConvocationFormation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConvocationService.BuildFormation")
	defer span.End()

	var out ConvocationFormation
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		conv, err := getConvocation(ctx, repos.Convocations, id)
		if err != nil {
			return err
		}

		m, exists, err := repos.Matches.GetByConvocationID(ctx, conv.ID)
		if err != nil {
			return fmt.Errorf("get match by convocation: %w", err)
		}
		if !exists {
			convID := conv.ID
			m, err = repos.Matches.Create(ctx, match.Session{
				Opponent:      conv.Opponent,
				MatchDate:     conv.MatchDate,
				Phase:         match.PhaseNotStarted,
				ConvocationID: &convID,
			})
			if err != nil {
				return fmt.Errorf("create match: %w", err)
			}
		}
		if m.Phase != match.PhaseNotStarted {
			return fmt.Errorf("%w: match %d already kicked off", ErrConflict, m.ID)
		}

		items, err := formation.Build(m.ID, conv.PlayerIDs, starters)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if err := repos.Formations.DeleteByMatch(ctx, m.ID); err != nil {
			return fmt.Errorf("clear formation: %w", err)
		}
		if err := repos.Formations.UpsertBatch(ctx, items); err != nil {
			return fmt.Errorf("upsert formation: %w", err)
		}

		saved, err := repos.Formations.ListByMatch(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}
		out = ConvocationFormation{Match: m, Formation: saved}
		return nil
	})
	if err != nil {
		return ConvocationFormation{}, err
	}
	return out, nil
}

func getConvocation(ctx context.Context, repo convocation.Repository, id int64) (convocation.Convocation, error) {
	if id <= 0 {
		return convocation.Convocation{}, fmt.Errorf("%w: convocation id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		return convocation.Convocation{}, fmt.Errorf("get convocation: %w", err)
	}
	if !exists {
		return convocation.Convocation{}, fmt.Errorf("%w: convocation=%d", ErrNotFound, id)
	}
	return item, nil
}

func checkRosterMembers(ctx context.Context, repos store.Repositories, ids []int64) error {
	found, err := repos.Players.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get players: %w", err)
	}
	known := make(map[int64]struct{}, len(found))
	for _, p := range found {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: unknown player %d", ErrInvalidInput, id)
		}
	}
	return nil
}
