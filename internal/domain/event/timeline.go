package event

import "sort"

// Sort orders events by half then minute; insertion order breaks ties.
func Sort(items []Event) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Half != b.Half {
			return a.Half < b.Half
		}
		if a.Minute != b.Minute {
			return a.Minute < b.Minute
		}
		return a.ID < b.ID
	})
}

// Filter returns the events of the given types, keeping order.
func Filter(items []Event, types ...Type) []Event {
	want := make(map[Type]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	out := make([]Event, 0)
	for _, item := range items {
		if _, ok := want[item.Type]; ok {
			out = append(out, item)
		}
	}
	return out
}

// GroupByMatch buckets events per match id.
func GroupByMatch(items []Event) map[int64][]Event {
	out := make(map[int64][]Event)
	for _, item := range items {
		out[item.MatchID] = append(out[item.MatchID], item)
	}
	return out
}

// Score counts goals for and against recorded on a timeline.
func Score(items []Event) (goalsFor, goalsAgainst int) {
	for _, item := range items {
		switch item.Type {
		case TypeGoal:
			goalsFor++
		case TypeGoalConceded:
			goalsAgainst++
		}
	}
	return goalsFor, goalsAgainst
}
