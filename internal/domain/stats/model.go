package stats

import (
	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
)

// UnknownPlayerName labels events whose player was removed from the roster.
const UnknownPlayerName = "Unknown player"

// Dataset is everything the aggregator reads.
type Dataset struct {
	Players     []player.Player
	Matches     []match.Session
	Formations  []formation.Assignment
	Events      []event.Event
	Attendances []attendance.Attendance
}

// PlayerSummary is the season line of one roster member.
type PlayerSummary struct {
	PlayerID        int64
	Name            string
	ShirtNumber     int
	Position        player.Position
	Convocations    int
	Starts          int
	BenchSelections int
	Appearances     int
	Minutes         int
	Goals           int
	Assists         int
	YellowCards     int
	RedCards        int
	Wins            int
	Draws           int
	Losses          int
	// GoalsConceded is only filled for goalkeepers.
	GoalsConceded   int
	RatingCount     int
	RatingAverage   float64
	TrainingPresent int
	TrainingAbsent  int
	TrainingInjured int
}

type TimelineLine struct {
	EventID     int64
	Half        int
	Minute      int
	PlayerID    *int64
	PlayerName  string
	Description string
}

type SubstitutionLine struct {
	EventID int64
	Half    int
	Minute  int
	OutID   int64
	OutName string
	InID    int64
	InName  string
}

// MatchReport lists the key moments of one match with resolved names.
type MatchReport struct {
	Match         match.Session
	Result        match.Result
	Goals         []TimelineLine
	GoalsConceded []TimelineLine
	RedCards      []TimelineLine
	Substitutions []SubstitutionLine
}

type TeamRecord struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

type AttendanceSummary struct {
	PlayerID     int64
	Name         string
	Sessions     int
	Present      int
	Absent       int
	Injured      int
	PresenceRate float64
}
