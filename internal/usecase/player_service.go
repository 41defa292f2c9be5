package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

type CreatePlayerInput struct {
	Name              string
	ShirtNumber       int
	Position          string
	ConvocationStatus string
	IsConvocato       bool
	SuspensionDays    int
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	position := player.Position(input.Position)
	status := player.ConvocationStatus(input.ConvocationStatus)
	item := player.Player{ConvocationStatus: player.StatusAvailable}.Apply(player.Patch{
		Name:              &name,
		ShirtNumber:       &input.ShirtNumber,
		Position:          &position,
		IsConvocato:       &input.IsConvocato,
		SuspensionDays:    &input.SuspensionDays,
		ConvocationStatus: &status,
	})
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// UpdatePlayer applies a partial update. Marking a player injured or sent
// off also drops the call-up.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	current, err := s.GetPlayer(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	updated := current.Apply(patch)
	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return s.GetPlayer(ctx, id)
}

// DeletePlayer removes a roster member. Timeline events that reference the
// player are kept.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if _, err := s.GetPlayer(ctx, id); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
