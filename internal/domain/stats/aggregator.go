package stats

import (
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
)

// Index is a read-only lookup over a Dataset. It is safe for concurrent use
// once built.
type Index struct {
	matches        map[int64]match.Session
	formationsBy   map[int64][]formation.Assignment
	eventsByPlayer map[int64][]event.Event
	eventsByMatch  map[int64][]event.Event
	attendanceBy   map[int64][]attendance.Attendance
	names          map[int64]string
}

func NewIndex(ds Dataset) *Index {
	ix := &Index{
		matches:        make(map[int64]match.Session, len(ds.Matches)),
		formationsBy:   make(map[int64][]formation.Assignment),
		eventsByPlayer: make(map[int64][]event.Event),
		eventsByMatch:  make(map[int64][]event.Event),
		attendanceBy:   make(map[int64][]attendance.Attendance),
		names:          make(map[int64]string, len(ds.Players)),
	}
	for _, m := range ds.Matches {
		ix.matches[m.ID] = m
	}
	for _, p := range ds.Players {
		ix.names[p.ID] = p.Name
	}
	for _, f := range ds.Formations {
		ix.formationsBy[f.PlayerID] = append(ix.formationsBy[f.PlayerID], f)
	}
	for _, e := range ds.Events {
		ix.eventsByMatch[e.MatchID] = append(ix.eventsByMatch[e.MatchID], e)
		if e.PlayerID != nil {
			ix.eventsByPlayer[*e.PlayerID] = append(ix.eventsByPlayer[*e.PlayerID], e)
		}
	}
	for _, a := range ds.Attendances {
		ix.attendanceBy[a.PlayerID] = append(ix.attendanceBy[a.PlayerID], a)
	}
	return ix
}

// Name resolves a player id, falling back to UnknownPlayerName.
func (ix *Index) Name(id int64) string {
	if name, ok := ix.names[id]; ok {
		return name
	}
	return UnknownPlayerName
}

func appeared(a formation.Assignment) bool {
	if a.MinutesPlayed == nil {
		return a.IsStarter()
	}
	return *a.MinutesPlayed > 0
}

// Player builds the summary of one roster member.
func (ix *Index) Player(p player.Player) PlayerSummary {
	out := PlayerSummary{
		PlayerID:    p.ID,
		Name:        p.Name,
		ShirtNumber: p.ShirtNumber,
		Position:    p.Position,
	}

	for _, f := range ix.formationsBy[p.ID] {
		m, ok := ix.matches[f.MatchID]
		if !ok {
			continue
		}
		out.Convocations++
		if f.IsStarter() {
			out.Starts++
		} else {
			out.BenchSelections++
		}
		out.Minutes += f.Minutes()
		if !appeared(f) {
			continue
		}
		out.Appearances++

		switch result, _ := m.Result(); result {
		case match.ResultWin:
			out.Wins++
		case match.ResultDraw:
			out.Draws++
		case match.ResultLoss:
			out.Losses++
		}

		// Keepers are charged every goal the team let in while they played.
		if p.IsGoalkeeper() {
			out.GoalsConceded += ix.goalsAgainst(m)
		}
	}

	ratingTotal := 0
	for _, e := range ix.eventsByPlayer[p.ID] {
		switch e.Type {
		case event.TypeGoal:
			out.Goals++
		case event.TypeAssist:
			out.Assists++
		case event.TypeYellowCard:
			out.YellowCards++
		case event.TypeRedCard:
			out.RedCards++
		case event.TypeRating:
			if e.Rating != nil {
				out.RatingCount++
				ratingTotal += *e.Rating
			}
		}
	}
	if out.RatingCount > 0 {
		out.RatingAverage = float64(ratingTotal) / float64(out.RatingCount)
	}

	for _, a := range ix.attendanceBy[p.ID] {
		switch a.Status {
		case attendance.StatusPresent:
			out.TrainingPresent++
		case attendance.StatusAbsent:
			out.TrainingAbsent++
		case attendance.StatusInjured:
			out.TrainingInjured++
		}
	}

	return out
}

func (ix *Index) goalsAgainst(m match.Session) int {
	if m.GoalsAgainst != nil {
		return *m.GoalsAgainst
	}
	_, against := event.Score(ix.eventsByMatch[m.ID])
	return against
}

// PlayerSummaries summarises every roster member, ordered by name.
func PlayerSummaries(ds Dataset) []PlayerSummary {
	ix := NewIndex(ds)
	out := make([]PlayerSummary, 0, len(ds.Players))
	for _, p := range ds.Players {
		out = append(out, ix.Player(p))
	}
	SortSummaries(out)
	return out
}

func SortSummaries(items []PlayerSummary) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].PlayerID < items[j].PlayerID
	})
}

// Match builds the report of one match from its timeline.
func (ix *Index) Match(m match.Session) MatchReport {
	items := append([]event.Event(nil), ix.eventsByMatch[m.ID]...)
	event.Sort(items)

	report := MatchReport{
		Match:         m,
		Goals:         make([]TimelineLine, 0),
		GoalsConceded: make([]TimelineLine, 0),
		RedCards:      make([]TimelineLine, 0),
		Substitutions: make([]SubstitutionLine, 0),
	}
	if result, ok := m.Result(); ok {
		report.Result = result
	}

	for _, e := range items {
		switch e.Type {
		case event.TypeGoal:
			report.Goals = append(report.Goals, ix.line(e))
		case event.TypeGoalConceded:
			report.GoalsConceded = append(report.GoalsConceded, ix.line(e))
		case event.TypeRedCard:
			report.RedCards = append(report.RedCards, ix.line(e))
		case event.TypeSubstitution:
			if e.PlayerID == nil || e.SecondPlayerID == nil {
				continue
			}
			report.Substitutions = append(report.Substitutions, SubstitutionLine{
				EventID: e.ID,
				Half:    e.Half,
				Minute:  e.Minute,
				OutID:   *e.PlayerID,
				OutName: ix.Name(*e.PlayerID),
				InID:    *e.SecondPlayerID,
				InName:  ix.Name(*e.SecondPlayerID),
			})
		}
	}
	return report
}

func (ix *Index) line(e event.Event) TimelineLine {
	line := TimelineLine{
		EventID:     e.ID,
		Half:        e.Half,
		Minute:      e.Minute,
		PlayerID:    e.PlayerID,
		Description: e.Description,
	}
	if e.PlayerID != nil {
		line.PlayerName = ix.Name(*e.PlayerID)
	}
	return line
}

// BuildTeamRecord totals the matches that have a final score.
func BuildTeamRecord(matches []match.Session) TeamRecord {
	var out TeamRecord
	for _, m := range matches {
		result, ok := m.Result()
		if !ok {
			continue
		}
		out.Played++
		out.GoalsFor += *m.GoalsFor
		out.GoalsAgainst += *m.GoalsAgainst
		switch result {
		case match.ResultWin:
			out.Wins++
		case match.ResultDraw:
			out.Draws++
		case match.ResultLoss:
			out.Losses++
		}
	}
	return out
}

// AttendanceSummaries counts training outcomes per roster member.
func AttendanceSummaries(players []player.Player, items []attendance.Attendance) []AttendanceSummary {
	byPlayer := make(map[int64]*AttendanceSummary, len(players))
	out := make([]AttendanceSummary, 0, len(players))
	for _, p := range players {
		out = append(out, AttendanceSummary{PlayerID: p.ID, Name: p.Name})
	}
	for i := range out {
		byPlayer[out[i].PlayerID] = &out[i]
	}

	for _, a := range items {
		row, ok := byPlayer[a.PlayerID]
		if !ok {
			continue
		}
		row.Sessions++
		switch a.Status {
		case attendance.StatusPresent:
			row.Present++
		case attendance.StatusAbsent:
			row.Absent++
		case attendance.StatusInjured:
			row.Injured++
		}
	}

	for i := range out {
		if out[i].Sessions > 0 {
			out[i].PresenceRate = float64(out[i].Present) / float64(out[i].Sessions)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
