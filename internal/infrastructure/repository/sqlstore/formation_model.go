package sqlstore

import (
	"database/sql"

	"github.com/riskibarqy/matchday/internal/domain/formation"
)

type formationTableModel struct {
	MatchID       int64         `db:"match_id"`
	PlayerID      int64         `db:"player_id"`
	Status        string        `db:"status"`
	MinutesPlayed sql.NullInt64 `db:"minutes_played"`
	MinuteEntered sql.NullInt64 `db:"minute_entered"`
}

var formationSelectColumns = []string{
	"match_id",
	"player_id",
	"status",
	"minutes_played",
	"minute_entered",
}

// Minutes columns keep their stored value when the incoming row leaves them NULL.
const formationUpsertSuffix = `ON CONFLICT (match_id, player_id) DO UPDATE SET
	status = EXCLUDED.status,
	minutes_played = COALESCE(EXCLUDED.minutes_played, formations.minutes_played),
	minute_entered = COALESCE(EXCLUDED.minute_entered, formations.minute_entered)`

func formationFromRow(row formationTableModel) formation.Assignment {
	return formation.Assignment{
		MatchID:       row.MatchID,
		PlayerID:      row.PlayerID,
		Status:        formation.Status(row.Status),
		MinutesPlayed: intPtr(row.MinutesPlayed),
		MinuteEntered: intPtr(row.MinuteEntered),
	}
}

func formationToRow(item formation.Assignment) formationTableModel {
	return formationTableModel{
		MatchID:       item.MatchID,
		PlayerID:      item.PlayerID,
		Status:        string(item.Status),
		MinutesPlayed: nullInt(item.MinutesPlayed),
		MinuteEntered: nullInt(item.MinuteEntered),
	}
}
