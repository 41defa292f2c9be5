// Package minutes computes per-player minutes played from half lengths and
// substitution events. Live and offline flows both finalise through Compute.
package minutes

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
)

// DefaultMaxSubstitutions is the per-match substitution allowance.
const DefaultMaxSubstitutions = 5

var ErrSubstitutionsExhausted = crerr.New("substitutions exhausted")

// Halves holds the effective length of both halves.
type Halves struct {
	First  int
	Second int
}

func NewHalves(extraFirst, extraSecond int) Halves {
	return Halves{
		First:  match.RegulationHalfMinutes + extraFirst,
		Second: match.RegulationHalfMinutes + extraSecond,
	}
}

func HalvesOf(s match.Session) Halves {
	return NewHalves(s.ExtraTimeFirst, s.ExtraTimeSecond)
}

func (h Halves) Total() int {
	return h.First + h.Second
}

// Absolute converts a minute within a half to a minute since kick-off.
// Minutes past the end of the half are clamped to its length.
func (h Halves) Absolute(half, minute int) int {
	if minute < 0 {
		minute = 0
	}
	if half == 2 {
		if minute > h.Second {
			minute = h.Second
		}
		return h.First + minute
	}
	if minute > h.First {
		minute = h.First
	}
	return minute
}

// Moment is a point of the match clock.
type Moment struct {
	Half   int
	Minute int
}

// Substitution is one out/in swap read from the timeline.
type Substitution struct {
	Out    int64
	In     int64
	Half   int
	Minute int
}

// Substitutions extracts the swaps of a timeline in match order.
func Substitutions(items []event.Event) []Substitution {
	sorted := append([]event.Event(nil), items...)
	event.Sort(sorted)

	out := make([]Substitution, 0)
	for _, item := range sorted {
		if item.Type != event.TypeSubstitution || item.PlayerID == nil || item.SecondPlayerID == nil {
			continue
		}
		out = append(out, Substitution{
			Out:    *item.PlayerID,
			In:     *item.SecondPlayerID,
			Half:   item.Half,
			Minute: item.Minute,
		})
	}
	return out
}

// Replay validates the substitutions of a timeline against the formation.
func Replay(assignments []formation.Assignment, subs []Substitution, maxSubs int) (*formation.Roster, error) {
	roster := formation.NewRoster(assignments)
	for _, sub := range subs {
		if err := Check(roster, sub, maxSubs); err != nil {
			return nil, err
		}
		if err := roster.Substitute(sub.Out, sub.In); err != nil {
			return nil, err
		}
	}
	return roster, nil
}

// Check reports whether one more substitution is allowed on roster.
func Check(roster *formation.Roster, sub Substitution, maxSubs int) error {
	if maxSubs <= 0 {
		maxSubs = DefaultMaxSubstitutions
	}
	if roster.SubstitutionsUsed() >= maxSubs {
		return crerr.Wrapf(ErrSubstitutionsExhausted, "limit %d", maxSubs)
	}
	return nil
}

// Exit returns the minutes of a player going off at the given moment.
func (h Halves) Exit(half, minute int) int {
	return h.clamp(h.Absolute(half, minute))
}

// Entry returns the absolute entry minute and minutes played of a player
// coming on at the given moment and staying until the final whistle.
func (h Halves) Entry(half, minute int) (entered, played int) {
	entered = h.Absolute(half, minute)
	return entered, h.clamp(h.Total() - entered)
}

func (h Halves) clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > h.Total() {
		return h.Total()
	}
	return v
}

// Compute derives minutesPlayed and minuteEntered for every formation row.
// end is the final clock moment when the match was stopped early; nil means
// the full length was played.
func Compute(assignments []formation.Assignment, subs []Substitution, h Halves, end *Moment) []formation.MinutesUpdate {
	endAbs := h.Total()
	if end != nil {
		endAbs = h.Absolute(end.Half, end.Minute)
	}

	exitAt := make(map[int64]int, len(subs))
	enterAt := make(map[int64]int, len(subs))
	for _, sub := range subs {
		if _, seen := exitAt[sub.Out]; !seen {
			exitAt[sub.Out] = h.Absolute(sub.Half, sub.Minute)
		}
		if _, seen := enterAt[sub.In]; !seen {
			enterAt[sub.In] = h.Absolute(sub.Half, sub.Minute)
		}
	}

	out := make([]formation.MinutesUpdate, 0, len(assignments))
	for _, a := range assignments {
		update := formation.MinutesUpdate{MatchID: a.MatchID, PlayerID: a.PlayerID}

		start := -1
		if a.IsStarter() {
			start = 0
		} else if entered, ok := enterAt[a.PlayerID]; ok {
			start = entered
			update.MinuteEntered = intPtr(entered)
		}

		played := 0
		if start >= 0 {
			stop := endAbs
			if exited, ok := exitAt[a.PlayerID]; ok && exited < stop {
				stop = exited
			}
			played = h.clamp(stop - start)
		}
		update.MinutesPlayed = intPtr(played)
		out = append(out, update)
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
