package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/player"
	playermock "github.com/riskibarqy/matchday/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_GetPlayer_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(42)).
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetPlayer(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_CreatePlayer_RejectsUnknownPositionUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	_, err := service.CreatePlayer(context.Background(), CreatePlayerInput{Name: "Rossi", Position: "striker"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, player.ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition in chain, got %v", err)
	}
}

func TestPlayerService_CreatePlayer_NormalizesInputUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
			return p.Name == "Luca Verdi" &&
				p.Position == player.PositionDefender &&
				p.ConvocationStatus == player.StatusInjured &&
				!p.IsConvocato
		})).
		Return(player.Player{ID: 9, Name: "Luca Verdi"}, nil).
		Once()

	created, err := service.CreatePlayer(ctx, CreatePlayerInput{
		Name:              "  Luca Verdi ",
		ShirtNumber:       4,
		Position:          "def",
		ConvocationStatus: "infortunato",
		IsConvocato:       true,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("unexpected id: %d", created.ID)
	}
}

func TestPlayerService_UpdatePlayer_SentOffDropsCallUpUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	current := player.Player{
		ID:                5,
		Name:              "Paolo Greco",
		ShirtNumber:       3,
		Position:          player.PositionDefender,
		ConvocationStatus: player.StatusAvailable,
		IsConvocato:       true,
	}
	expected := current
	expected.ConvocationStatus = player.StatusSentOff
	expected.IsConvocato = false

	playerRepo.
		On("GetByID", mock.Anything, int64(5)).
		Return(current, true, nil).
		Once()
	playerRepo.
		On("Update", mock.Anything, mock.MatchedBy(func(p player.Player) bool {
			return p.ID == 5 && p.ConvocationStatus == player.StatusSentOff && !p.IsConvocato
		})).
		Return(nil).
		Once()
	playerRepo.
		On("GetByID", mock.Anything, int64(5)).
		Return(expected, true, nil).
		Once()

	status := player.StatusSentOff
	called := true
	got, err := service.UpdatePlayer(ctx, 5, player.Patch{ConvocationStatus: &status, IsConvocato: &called})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if got.IsConvocato {
		t.Fatalf("expected sent-off player to be dropped from the call-up")
	}
}

func TestPlayerService_DeletePlayer_PropagatesRepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	boom := errors.New("db down")
	playerRepo.
		On("GetByID", mock.Anything, int64(3)).
		Return(player.Player{ID: 3}, true, nil).
		Once()
	playerRepo.
		On("Delete", mock.Anything, int64(3)).
		Return(boom).
		Once()

	if err := service.DeletePlayer(ctx, 3); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
