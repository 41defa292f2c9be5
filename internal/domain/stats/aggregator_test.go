package stats

import (
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
)

func intp(v int) *int { return &v }
func idp(v int64) *int64 { return &v }

func fixtureDataset() Dataset {
	return Dataset{
		Players: []player.Player{
			{ID: 1, Name: "Keeper", Position: player.PositionGoalkeeper},
			{ID: 2, Name: "Striker", Position: player.PositionForward},
			{ID: 3, Name: "Sub", Position: player.PositionMidfielder},
		},
		Matches: []match.Session{
			{ID: 10, Opponent: "Alpha", GoalsFor: intp(2), GoalsAgainst: intp(1)},
			{ID: 11, Opponent: "Beta", GoalsFor: intp(0), GoalsAgainst: intp(3)},
			{ID: 12, Opponent: "Gamma"},
		},
		Formations: []formation.Assignment{
			{MatchID: 10, PlayerID: 1, Status: formation.StatusStarter, MinutesPlayed: intp(90)},
			{MatchID: 10, PlayerID: 2, Status: formation.StatusStarter, MinutesPlayed: intp(65)},
			{MatchID: 10, PlayerID: 3, Status: formation.StatusBench, MinutesPlayed: intp(25), MinuteEntered: intp(65)},
			{MatchID: 11, PlayerID: 1, Status: formation.StatusStarter, MinutesPlayed: intp(90)},
			{MatchID: 11, PlayerID: 3, Status: formation.StatusBench, MinutesPlayed: intp(0)},
		},
		Events: []event.Event{
			{ID: 1, MatchID: 10, Type: event.TypeGoal, PlayerID: idp(2), Half: 1, Minute: 10},
			{ID: 2, MatchID: 10, Type: event.TypeAssist, PlayerID: idp(3), Half: 2, Minute: 30},
			{ID: 3, MatchID: 10, Type: event.TypeGoal, PlayerID: idp(3), Half: 2, Minute: 30},
			{ID: 4, MatchID: 10, Type: event.TypeSubstitution, PlayerID: idp(2), SecondPlayerID: idp(3), Half: 2, Minute: 20},
			{ID: 5, MatchID: 11, Type: event.TypeRedCard, PlayerID: idp(99), Half: 1, Minute: 40},
			{ID: 6, MatchID: 11, Type: event.TypeRating, PlayerID: idp(1), Rating: intp(6), Half: 2, Minute: 45},
			{ID: 7, MatchID: 10, Type: event.TypeRating, PlayerID: idp(1), Rating: intp(8), Half: 2, Minute: 45},
		},
		Attendances: []attendance.Attendance{
			{Date: "2026-03-02", PlayerID: 1, Status: attendance.StatusPresent},
			{Date: "2026-03-04", PlayerID: 1, Status: attendance.StatusAbsent},
			{Date: "2026-03-02", PlayerID: 2, Status: attendance.StatusInjured},
		},
	}
}

func TestPlayerSummaries(t *testing.T) {
	items := PlayerSummaries(fixtureDataset())
	byID := make(map[int64]PlayerSummary, len(items))
	for _, item := range items {
		byID[item.PlayerID] = item
	}

	keeper := byID[1]
	if keeper.Convocations != 2 || keeper.Starts != 2 || keeper.Minutes != 180 {
		t.Fatalf("unexpected keeper usage: %+v", keeper)
	}
	if keeper.Wins != 1 || keeper.Losses != 1 || keeper.Draws != 0 {
		t.Fatalf("unexpected keeper record: %+v", keeper)
	}
	if keeper.GoalsConceded != 4 {
		t.Fatalf("unexpected goals conceded: %d", keeper.GoalsConceded)
	}
	if keeper.RatingCount != 2 || keeper.RatingAverage != 7 {
		t.Fatalf("unexpected rating: %+v", keeper)
	}
	if keeper.TrainingPresent != 1 || keeper.TrainingAbsent != 1 {
		t.Fatalf("unexpected training: %+v", keeper)
	}

	sub := byID[3]
	if sub.Convocations != 2 || sub.BenchSelections != 2 || sub.Appearances != 1 {
		t.Fatalf("unexpected sub usage: %+v", sub)
	}
	if sub.Goals != 1 || sub.Assists != 1 || sub.Wins != 1 || sub.Losses != 0 {
		t.Fatalf("unexpected sub output: %+v", sub)
	}
	if sub.GoalsConceded != 0 {
		t.Fatalf("outfield player should not carry goals conceded")
	}

	if items[0].Name != "Keeper" || items[2].Name != "Sub" {
		t.Fatalf("summaries not sorted by name: %+v", items)
	}
}

func TestMatchReport_ResolvesNames(t *testing.T) {
	ds := fixtureDataset()
	ix := NewIndex(ds)

	report := ix.Match(ds.Matches[0])
	if report.Result != match.ResultWin {
		t.Fatalf("unexpected result %q", report.Result)
	}
	if len(report.Goals) != 2 || report.Goals[0].PlayerName != "Striker" {
		t.Fatalf("unexpected goals: %+v", report.Goals)
	}
	if len(report.Substitutions) != 1 {
		t.Fatalf("unexpected substitutions: %+v", report.Substitutions)
	}
	sub := report.Substitutions[0]
	if sub.OutName != "Striker" || sub.InName != "Sub" {
		t.Fatalf("unexpected substitution names: %+v", sub)
	}

	other := ix.Match(ds.Matches[1])
	if len(other.RedCards) != 1 || other.RedCards[0].PlayerName != UnknownPlayerName {
		t.Fatalf("expected orphaned red card to resolve to unknown player: %+v", other.RedCards)
	}
}

func TestBuildTeamRecord(t *testing.T) {
	record := BuildTeamRecord(fixtureDataset().Matches)
	if record.Played != 2 || record.Wins != 1 || record.Losses != 1 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.GoalsFor != 2 || record.GoalsAgainst != 4 {
		t.Fatalf("unexpected goals: %+v", record)
	}
}

func TestAttendanceSummaries(t *testing.T) {
	ds := fixtureDataset()
	items := AttendanceSummaries(ds.Players, ds.Attendances)
	if len(items) != 3 {
		t.Fatalf("unexpected rows: %d", len(items))
	}
	if items[0].PlayerID != 1 || items[0].Sessions != 2 || items[0].PresenceRate != 0.5 {
		t.Fatalf("unexpected keeper attendance: %+v", items[0])
	}
	if items[1].Injured != 1 {
		t.Fatalf("unexpected striker attendance: %+v", items[1])
	}
	if items[2].Sessions != 0 || items[2].PresenceRate != 0 {
		t.Fatalf("unexpected sub attendance: %+v", items[2])
	}
}
