package sqlstore

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/player"
)

type playerTableModel struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	ShirtNumber       int       `db:"shirt_number"`
	Position          string    `db:"position"`
	ConvocationStatus string    `db:"convocation_status"`
	IsConvocato       bool      `db:"is_convocato"`
	SuspensionDays    int       `db:"suspension_days"`
	YellowCards       int       `db:"yellow_cards"`
	RedCards          int       `db:"red_cards"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	Name              string    `db:"name"`
	ShirtNumber       int       `db:"shirt_number"`
	Position          string    `db:"position"`
	ConvocationStatus string    `db:"convocation_status"`
	IsConvocato       bool      `db:"is_convocato"`
	SuspensionDays    int       `db:"suspension_days"`
	YellowCards       int       `db:"yellow_cards"`
	RedCards          int       `db:"red_cards"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

var playerSelectColumns = []string{
	"id",
	"name",
	"shirt_number",
	"position",
	"convocation_status",
	"is_convocato",
	"suspension_days",
	"yellow_cards",
	"red_cards",
	"created_at",
	"updated_at",
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                row.ID,
		Name:              row.Name,
		ShirtNumber:       row.ShirtNumber,
		Position:          player.Position(row.Position),
		ConvocationStatus: player.ConvocationStatus(row.ConvocationStatus),
		IsConvocato:       row.IsConvocato,
		SuspensionDays:    row.SuspensionDays,
		YellowCards:       row.YellowCards,
		RedCards:          row.RedCards,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
