package memory

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

// SeedRoster is the demo squad loaded when the memory backend starts with
// seeding enabled.
func SeedRoster() []player.Player {
	roster := []struct {
		name     string
		number   int
		position player.Position
	}{
		{"Marco Rossi", 1, player.PositionGoalkeeper},
		{"Luca Bianchi", 12, player.PositionGoalkeeper},
		{"Andrea Conti", 2, player.PositionDefender},
		{"Paolo Greco", 3, player.PositionDefender},
		{"Davide Ricci", 4, player.PositionDefender},
		{"Simone Gallo", 5, player.PositionDefender},
		{"Matteo Costa", 13, player.PositionDefender},
		{"Giorgio Fontana", 6, player.PositionMidfielder},
		{"Federico Moretti", 8, player.PositionMidfielder},
		{"Alessio Barbieri", 10, player.PositionMidfielder},
		{"Stefano Lombardi", 14, player.PositionMidfielder},
		{"Nicola Marino", 16, player.PositionMidfielder},
		{"Riccardo Ferri", 7, player.PositionForward},
		{"Emanuele Villa", 9, player.PositionForward},
		{"Tommaso Longo", 11, player.PositionForward},
		{"Filippo Mancini", 19, player.PositionForward},
	}

	out := make([]player.Player, 0, len(roster))
	for _, r := range roster {
		out = append(out, player.Player{
			Name:              r.name,
			ShirtNumber:       r.number,
			Position:          r.position,
			ConvocationStatus: player.StatusAvailable,
			IsConvocato:       true,
		})
	}
	return out
}

// Seed inserts players through the regular repository path.
func (s *Store) Seed(ctx context.Context, players []player.Player) error {
	repo := s.Repositories().Players
	for _, p := range players {
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
