package sqlstore

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
)

type matchTableModel struct {
	ID              int64         `db:"id"`
	Opponent        string        `db:"opponent"`
	MatchDate       string        `db:"match_date"`
	IsHome          bool          `db:"is_home"`
	GoalsFor        sql.NullInt64 `db:"goals_for"`
	GoalsAgainst    sql.NullInt64 `db:"goals_against"`
	StartTime       sql.NullTime  `db:"start_time"`
	ExtraTimeFirst  int           `db:"extra_time_first"`
	ExtraTimeSecond int           `db:"extra_time_second"`
	FormationLabel  string        `db:"formation_label"`
	Phase           string        `db:"phase"`
	PhaseStartedAt  sql.NullTime  `db:"phase_started_at"`
	ConvocationID   sql.NullInt64 `db:"convocation_id"`
	FinalizedAt     sql.NullTime  `db:"finalized_at"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	Opponent        string        `db:"opponent"`
	MatchDate       string        `db:"match_date"`
	IsHome          bool          `db:"is_home"`
	GoalsFor        sql.NullInt64 `db:"goals_for"`
	GoalsAgainst    sql.NullInt64 `db:"goals_against"`
	StartTime       sql.NullTime  `db:"start_time"`
	ExtraTimeFirst  int           `db:"extra_time_first"`
	ExtraTimeSecond int           `db:"extra_time_second"`
	FormationLabel  string        `db:"formation_label"`
	Phase           string        `db:"phase"`
	PhaseStartedAt  sql.NullTime  `db:"phase_started_at"`
	ConvocationID   sql.NullInt64 `db:"convocation_id"`
	FinalizedAt     sql.NullTime  `db:"finalized_at"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

var matchSelectColumns = []string{
	"id",
	"opponent",
	"match_date",
	"is_home",
	"goals_for",
	"goals_against",
	"start_time",
	"extra_time_first",
	"extra_time_second",
	"formation_label",
	"phase",
	"phase_started_at",
	"convocation_id",
	"finalized_at",
	"created_at",
	"updated_at",
}

func matchFromRow(row matchTableModel) match.Session {
	phase, err := match.ParsePhase(row.Phase)
	if err != nil {
		phase = match.PhaseNotStarted
	}
	return match.Session{
		ID:              row.ID,
		Opponent:        row.Opponent,
		MatchDate:       row.MatchDate,
		IsHome:          row.IsHome,
		GoalsFor:        intPtr(row.GoalsFor),
		GoalsAgainst:    intPtr(row.GoalsAgainst),
		StartTime:       timePtr(row.StartTime),
		ExtraTimeFirst:  row.ExtraTimeFirst,
		ExtraTimeSecond: row.ExtraTimeSecond,
		FormationLabel:  row.FormationLabel,
		Phase:           phase,
		PhaseStartedAt:  timePtr(row.PhaseStartedAt),
		ConvocationID:   int64Ptr(row.ConvocationID),
		FinalizedAt:     timePtr(row.FinalizedAt),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
