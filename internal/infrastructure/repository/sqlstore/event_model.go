package sqlstore

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/event"
)

type eventTableModel struct {
	ID             int64         `db:"id"`
	MatchID        int64         `db:"match_id"`
	PlayerID       sql.NullInt64 `db:"player_id"`
	SecondPlayerID sql.NullInt64 `db:"second_player_id"`
	Type           string        `db:"type"`
	Minute         int           `db:"minute"`
	Half           int           `db:"half"`
	Description    string        `db:"description"`
	Rating         sql.NullInt64 `db:"rating"`
	CreatedAt      time.Time     `db:"created_at"`
}

type eventInsertModel struct {
	MatchID        int64         `db:"match_id"`
	PlayerID       sql.NullInt64 `db:"player_id"`
	SecondPlayerID sql.NullInt64 `db:"second_player_id"`
	Type           string        `db:"type"`
	Minute         int           `db:"minute"`
	Half           int           `db:"half"`
	Description    string        `db:"description"`
	Rating         sql.NullInt64 `db:"rating"`
	CreatedAt      time.Time     `db:"created_at"`
}

var eventSelectColumns = []string{
	"id",
	"match_id",
	"player_id",
	"second_player_id",
	"type",
	"minute",
	"half",
	"description",
	"rating",
	"created_at",
}

var eventTimelineOrder = []string{"match_id", "half", "minute", "id"}

func eventFromRow(row eventTableModel) event.Event {
	return event.Event{
		ID:             row.ID,
		MatchID:        row.MatchID,
		PlayerID:       int64Ptr(row.PlayerID),
		SecondPlayerID: int64Ptr(row.SecondPlayerID),
		Type:           event.Type(row.Type),
		Minute:         row.Minute,
		Half:           row.Half,
		Description:    row.Description,
		Rating:         intPtr(row.Rating),
		CreatedAt:      row.CreatedAt,
	}
}

func eventToInsert(item event.Event, ts time.Time) eventInsertModel {
	return eventInsertModel{
		MatchID:        item.MatchID,
		PlayerID:       nullInt64(item.PlayerID),
		SecondPlayerID: nullInt64(item.SecondPlayerID),
		Type:           string(item.Type),
		Minute:         item.Minute,
		Half:           item.Half,
		Description:    item.Description,
		Rating:         nullInt(item.Rating),
		CreatedAt:      ts,
	}
}
