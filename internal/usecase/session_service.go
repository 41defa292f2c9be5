package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/minutes"
	"github.com/riskibarqy/matchday/internal/domain/store"
	"github.com/riskibarqy/matchday/internal/platform/livefeed"
)

// SessionService drives a match through its phases and records its
// timeline, either live event by event or offline as one batch.
type SessionService struct {
	uow     store.UnitOfWork
	repos   store.Repositories
	feed    *livefeed.Broker
	maxSubs int
	now     func() time.Time
}

func NewSessionService(uow store.UnitOfWork, repos store.Repositories, feed *livefeed.Broker, maxSubstitutions int) *SessionService {
	if maxSubstitutions <= 0 {
		maxSubstitutions = minutes.DefaultMaxSubstitutions
	}
	return &SessionService{
		uow:     uow,
		repos:   repos,
		feed:    feed,
		maxSubs: maxSubstitutions,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type EventInput struct {
	Type           string
	PlayerID       *int64
	SecondPlayerID *int64
	Minute         *int
	Half           *int
	Description    string
	Rating         *int
}

type EndMatchInput struct {
	// ClockMinute is the second-half minute the match was stopped at.
	ClockMinute  *int
	GoalsFor     *int
	GoalsAgainst *int
}

type TimelineInput struct {
	Events          []EventInput
	GoalsFor        *int
	GoalsAgainst    *int
	ExtraTimeFirst  *int
	ExtraTimeSecond *int
}

type TimelineResult struct {
	Match     match.Session
	Events    []event.Event
	Formation []formation.Assignment
}

// LiveState is the snapshot served to the live match screen.
type LiveState struct {
	Match             match.Session
	Phase             match.Phase
	Half              int
	ClockMinute       int
	GoalsFor          int
	GoalsAgainst      int
	OnPitch           []int64
	Available         []int64
	SubstitutionsUsed int
	SubstitutionsLeft int
	Events            []event.Event
}

// StartMatch kicks off the first half. It needs exactly eleven starters and
// wipes whatever timeline the match had.
func (s *SessionService) StartMatch(ctx context.Context, matchID int64) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.StartMatch")
	defer span.End()

	var out match.Session
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		next, err := m.Phase.Start()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}

		assignments, err := repos.Formations.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}
		if n := formation.CountStarters(assignments); n != formation.StartersRequired {
			return fmt.Errorf("%w: %w: expected %d starters, got %d",
				ErrInvalidInput, formation.ErrInvalidFormation, formation.StartersRequired, n)
		}

		if _, err := repos.Events.DeleteByMatch(ctx, matchID); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		if err := repos.Formations.ResetMinutes(ctx, matchID); err != nil {
			return fmt.Errorf("reset minutes: %w", err)
		}

		now := s.now()
		m.Phase = next
		m.PhaseStartedAt = &now
		if m.StartTime == nil {
			m.StartTime = &now
		}
		if err := repos.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return match.Session{}, err
	}

	s.publish(matchID, livefeed.KindPhase, out)
	return out, nil
}

func (s *SessionService) BreakHalf(ctx context.Context, matchID int64) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.BreakHalf")
	defer span.End()

	return s.transition(ctx, matchID, match.Phase.BreakHalf)
}

func (s *SessionService) ResumeSecondHalf(ctx context.Context, matchID int64) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.ResumeSecondHalf")
	defer span.End()

	return s.transition(ctx, matchID, match.Phase.ResumeSecondHalf)
}

func (s *SessionService) transition(ctx context.Context, matchID int64, step func(match.Phase) (match.Phase, error)) (match.Session, error) {
	var out match.Session
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		next, err := step(m.Phase)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}

		now := s.now()
		m.Phase = next
		m.PhaseStartedAt = &now
		if err := repos.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return match.Session{}, err
	}

	s.publish(matchID, livefeed.KindPhase, out)
	return out, nil
}

// EndMatch blows the final whistle and finalises minutes, score and the
// disciplinary counters of the match.
func (s *SessionService) EndMatch(ctx context.Context, matchID int64, input EndMatchInput) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.EndMatch")
	defer span.End()

	if input.ClockMinute != nil && (*input.ClockMinute < 0 || *input.ClockMinute > event.MaxMinute) {
		return match.Session{}, fmt.Errorf("%w: clock minute must be between 0 and %d", ErrInvalidInput, event.MaxMinute)
	}
	if err := checkScore(input.GoalsFor, input.GoalsAgainst); err != nil {
		return match.Session{}, err
	}

	var out match.Session
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		next, err := m.Phase.Finish()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}

		items, err := repos.Events.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list match events: %w", err)
		}

		var end *minutes.Moment
		if input.ClockMinute != nil {
			end = &minutes.Moment{Half: 2, Minute: *input.ClockMinute}
		}
		if err := s.finalize(ctx, repos, &m, items, end, input.GoalsFor, input.GoalsAgainst); err != nil {
			return err
		}

		m.Phase = next
		m.PhaseStartedAt = nil
		if err := repos.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return match.Session{}, err
	}

	s.publish(matchID, livefeed.KindPhase, out)
	return out, nil
}

// ResetMatch puts a match back to NOT_STARTED and clears its timeline and
// minutes. A finalised match gets its card counters and served suspension
// day back, so the replay is finalised again from scratch.
func (s *SessionService) ResetMatch(ctx context.Context, matchID int64) (match.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.ResetMatch")
	defer span.End()

	var out match.Session
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		if m.Finalized() {
			if err := s.undoFinalization(ctx, repos, m); err != nil {
				return err
			}
			m.FinalizedAt = nil
			m.GoalsFor = nil
			m.GoalsAgainst = nil
		}
		if _, err := repos.Events.DeleteByMatch(ctx, matchID); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		if err := repos.Formations.ResetMinutes(ctx, matchID); err != nil {
			return fmt.Errorf("reset minutes: %w", err)
		}

		m.Phase = match.PhaseNotStarted
		m.PhaseStartedAt = nil
		if err := repos.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		out = m
		return nil
	})
	if err != nil {
		return match.Session{}, err
	}

	s.publish(matchID, livefeed.KindPhase, out)
	return out, nil
}

func (s *SessionService) LiveState(ctx context.Context, matchID int64) (LiveState, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.LiveState")
	defer span.End()

	m, err := getMatch(ctx, s.repos.Matches, matchID)
	if err != nil {
		return LiveState{}, err
	}
	assignments, err := s.repos.Formations.ListByMatch(ctx, matchID)
	if err != nil {
		return LiveState{}, fmt.Errorf("list formation: %w", err)
	}
	items, err := s.repos.Events.ListByMatch(ctx, matchID)
	if err != nil {
		return LiveState{}, fmt.Errorf("list match events: %w", err)
	}

	roster, err := minutes.Replay(assignments, minutes.Substitutions(items), s.maxSubs)
	if err != nil {
		return LiveState{}, fmt.Errorf("%w: replay substitutions: %w", ErrConflict, err)
	}

	goalsFor, goalsAgainst := event.Score(items)
	state := LiveState{
		Match:             m,
		Phase:             m.Phase,
		Half:              m.Phase.Half(),
		ClockMinute:       m.ClockMinute(s.now()),
		GoalsFor:          goalsFor,
		GoalsAgainst:      goalsAgainst,
		OnPitch:           make([]int64, 0, formation.StartersRequired),
		Available:         make([]int64, 0),
		SubstitutionsUsed: roster.SubstitutionsUsed(),
		SubstitutionsLeft: max(0, s.maxSubs-roster.SubstitutionsUsed()),
		Events:            items,
	}
	for _, a := range assignments {
		switch {
		case roster.OnPitch(a.PlayerID):
			state.OnPitch = append(state.OnPitch, a.PlayerID)
		case roster.CanEnter(a.PlayerID):
			state.Available = append(state.Available, a.PlayerID)
		}
	}
	return state, nil
}

// AppendEvent records one live event. A substitution is checked against the
// roster replayed from the timeline, and the minutes of both players are
// written in the same transaction.
func (s *SessionService) AppendEvent(ctx context.Context, matchID int64, input EventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.AppendEvent")
	defer span.End()

	var saved event.Event
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}

		item, err := buildEvent(matchID, input, m.Phase.Half(), m.ClockMinute(s.now()))
		if err != nil {
			return err
		}

		var update []formation.MinutesUpdate
		if item.Type == event.TypeSubstitution || (m.Phase.Running() && onPitchOnly(item.Type)) {
			update, err = s.checkAgainstRoster(ctx, repos, m, item)
			if err != nil {
				return err
			}
		}

		saved, err = repos.Events.Append(ctx, item)
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
		if m.Finalized() {
			if err := applyCards(ctx, repos, []event.Event{saved}, 1); err != nil {
				return err
			}
		}
		for _, u := range update {
			if _, err := repos.Formations.UpdateMinutes(ctx, u); err != nil {
				return fmt.Errorf("update minutes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return event.Event{}, err
	}

	s.publish(matchID, livefeed.KindEvent, saved)
	return saved, nil
}

// DeleteEvent removes one timeline entry. Removing a substitution recomputes
// the minutes of the match from the remaining substitutions.
func (s *SessionService) DeleteEvent(ctx context.Context, eventID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.DeleteEvent")
	defer span.End()

	if eventID <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	var deleted event.Event
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		item, exists, err := repos.Events.GetByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: event=%d", ErrNotFound, eventID)
		}
		if err := repos.Events.Delete(ctx, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		deleted = item

		m, err := getMatch(ctx, repos.Matches, item.MatchID)
		if err != nil {
			return err
		}
		if m.Finalized() {
			if err := applyCards(ctx, repos, []event.Event{item}, -1); err != nil {
				return err
			}
		}
		if item.Type != event.TypeSubstitution {
			return nil
		}
		return s.recomputeMinutes(ctx, repos, m)
	})
	if err != nil {
		return err
	}

	s.publish(deleted.MatchID, livefeed.KindDeleted, deleted)
	return nil
}

// PurgeEvents deletes the whole timeline of a match and its minutes.
func (s *SessionService) PurgeEvents(ctx context.Context, matchID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.PurgeEvents")
	defer span.End()

	var removed int
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		if m.Finalized() {
			items, err := repos.Events.ListByMatch(ctx, matchID)
			if err != nil {
				return fmt.Errorf("list match events: %w", err)
			}
			if err := applyCards(ctx, repos, items, -1); err != nil {
				return err
			}
		}
		n, err := repos.Events.DeleteByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		if err := repos.Formations.ResetMinutes(ctx, matchID); err != nil {
			return fmt.Errorf("reset minutes: %w", err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publish(matchID, livefeed.KindTimeline, removed)
	return removed, nil
}

// SaveTimeline stores a match recorded offline. The batch replaces the
// timeline and finalises the match; nothing is written if any step fails.
func (s *SessionService) SaveTimeline(ctx context.Context, matchID int64, input TimelineInput) (TimelineResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.SaveTimeline")
	defer span.End()

	if err := checkScore(input.GoalsFor, input.GoalsAgainst); err != nil {
		return TimelineResult{}, err
	}
	items := make([]event.Event, 0, len(input.Events))
	for i, in := range input.Events {
		if in.Minute == nil {
			return TimelineResult{}, fmt.Errorf("%w: events[%d]: minute is required", ErrInvalidInput, i)
		}
		item, err := buildEvent(matchID, in, 1, 0)
		if err != nil {
			return TimelineResult{}, fmt.Errorf("events[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	event.Sort(items)

	var out TimelineResult
	err := s.uow.Do(ctx, func(ctx context.Context, repos store.Repositories) error {
		m, err := getMatch(ctx, repos.Matches, matchID)
		if err != nil {
			return err
		}
		if m.Phase.Running() || m.Phase == match.PhaseHalfTime {
			return fmt.Errorf("%w: match %d is being recorded live", ErrConflict, matchID)
		}

		m = m.Apply(match.Patch{ExtraTimeFirst: input.ExtraTimeFirst, ExtraTimeSecond: input.ExtraTimeSecond})
		if err := match.ValidateExtraTime(m.ExtraTimeFirst, m.ExtraTimeSecond); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		assignments, err := repos.Formations.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}
		if n := formation.CountStarters(assignments); n != formation.StartersRequired {
			return fmt.Errorf("%w: %w: expected %d starters, got %d",
				ErrInvalidInput, formation.ErrInvalidFormation, formation.StartersRequired, n)
		}

		rebooked := m.Finalized()
		if rebooked {
			previous, err := repos.Events.ListByMatch(ctx, matchID)
			if err != nil {
				return fmt.Errorf("list match events: %w", err)
			}
			if err := applyCards(ctx, repos, previous, -1); err != nil {
				return err
			}
		}
		if _, err := repos.Events.DeleteByMatch(ctx, matchID); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		if err := repos.Formations.ResetMinutes(ctx, matchID); err != nil {
			return fmt.Errorf("reset minutes: %w", err)
		}
		saved := []event.Event{}
		if len(items) > 0 {
			saved, err = repos.Events.AppendBatch(ctx, items)
			if err != nil {
				return fmt.Errorf("append events: %w", err)
			}
		}

		if err := s.finalize(ctx, repos, &m, saved, nil, input.GoalsFor, input.GoalsAgainst); err != nil {
			return err
		}
		if rebooked {
			if err := applyCards(ctx, repos, saved, 1); err != nil {
				return err
			}
		}
		m.Phase = match.PhaseFinished
		m.PhaseStartedAt = nil
		if err := repos.Matches.Update(ctx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}

		formations, err := repos.Formations.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list formation: %w", err)
		}
		out = TimelineResult{Match: m, Events: saved, Formation: formations}
		return nil
	})
	if err != nil {
		return TimelineResult{}, err
	}

	s.publish(matchID, livefeed.KindTimeline, out.Match)
	return out, nil
}

// finalize writes final minutes and score. Suspensions and card counters
// move only the first time a match is finalised.
func (s *SessionService) finalize(ctx context.Context, repos store.Repositories, m *match.Session, items []event.Event, end *minutes.Moment, goalsFor, goalsAgainst *int) error {
	assignments, err := repos.Formations.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list formation: %w", err)
	}

	subs := minutes.Substitutions(items)
	if _, err := minutes.Replay(assignments, subs, s.maxSubs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for _, u := range minutes.Compute(assignments, subs, minutes.HalvesOf(*m), end) {
		if _, err := repos.Formations.UpdateMinutes(ctx, u); err != nil {
			return fmt.Errorf("update minutes: %w", err)
		}
	}

	scoredFor, scoredAgainst := event.Score(items)
	if goalsFor == nil {
		goalsFor = &scoredFor
	}
	if goalsAgainst == nil {
		goalsAgainst = &scoredAgainst
	}
	m.GoalsFor = cloneIntPtr(goalsFor)
	m.GoalsAgainst = cloneIntPtr(goalsAgainst)

	if m.Finalized() {
		return nil
	}

	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.PlayerID)
	}
	if err := repos.Players.AdjustSuspensions(ctx, ids, -1); err != nil {
		return fmt.Errorf("decrement suspensions: %w", err)
	}
	if err := applyCards(ctx, repos, items, 1); err != nil {
		return err
	}

	now := s.now()
	m.FinalizedAt = &now
	return nil
}

// checkAgainstRoster validates item against who is on the pitch and returns
// the minutes writes a substitution implies.
func (s *SessionService) checkAgainstRoster(ctx context.Context, repos store.Repositories, m match.Session, item event.Event) ([]formation.MinutesUpdate, error) {
	assignments, err := repos.Formations.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list formation: %w", err)
	}
	existing, err := repos.Events.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	roster, err := minutes.Replay(assignments, minutes.Substitutions(existing), s.maxSubs)
	if err != nil {
		return nil, fmt.Errorf("%w: replay substitutions: %w", ErrConflict, err)
	}

	if item.Type != event.TypeSubstitution {
		if roster.InSquad(*item.PlayerID) && !roster.OnPitch(*item.PlayerID) {
			return nil, fmt.Errorf("%w: %w: player %d", ErrConflict, formation.ErrNotOnPitch, *item.PlayerID)
		}
		return nil, nil
	}

	sub := minutes.Substitution{Out: *item.PlayerID, In: *item.SecondPlayerID, Half: item.Half, Minute: item.Minute}
	if err := minutes.Check(roster, sub, s.maxSubs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err := roster.Substitute(sub.Out, sub.In); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return substitutionMinutes(m, sub), nil
}

// recomputeMinutes rewrites the minutes of m from its timeline: final
// minutes once the match is over, substitution minutes while it is not.
func (s *SessionService) recomputeMinutes(ctx context.Context, repos store.Repositories, m match.Session) error {
	assignments, err := repos.Formations.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list formation: %w", err)
	}
	items, err := repos.Events.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list match events: %w", err)
	}
	subs := minutes.Substitutions(items)
	if _, err := minutes.Replay(assignments, subs, s.maxSubs); err != nil {
		return fmt.Errorf("%w: remaining substitutions: %w", ErrConflict, err)
	}

	if err := repos.Formations.ResetMinutes(ctx, m.ID); err != nil {
		return fmt.Errorf("reset minutes: %w", err)
	}

	var updates []formation.MinutesUpdate
	if m.Phase == match.PhaseFinished {
		updates = minutes.Compute(assignments, subs, minutes.HalvesOf(m), nil)
	} else {
		for _, sub := range subs {
			updates = append(updates, substitutionMinutes(m, sub)...)
		}
	}
	for _, u := range updates {
		if _, err := repos.Formations.UpdateMinutes(ctx, u); err != nil {
			return fmt.Errorf("update minutes: %w", err)
		}
	}
	return nil
}

func (s *SessionService) publish(matchID int64, kind string, payload any) {
	s.feed.Publish(livefeed.Update{MatchID: matchID, Kind: kind, Payload: payload})
}

func substitutionMinutes(m match.Session, sub minutes.Substitution) []formation.MinutesUpdate {
	h := minutes.HalvesOf(m)
	outPlayed := h.Exit(sub.Half, sub.Minute)
	entered, inPlayed := h.Entry(sub.Half, sub.Minute)
	return []formation.MinutesUpdate{
		{MatchID: m.ID, PlayerID: sub.Out, MinutesPlayed: &outPlayed},
		{MatchID: m.ID, PlayerID: sub.In, MinutesPlayed: &inPlayed, MinuteEntered: &entered},
	}
}

// buildEvent turns client input into a validated event. Half and minute
// fall back to the given defaults when omitted.
func buildEvent(matchID int64, input EventInput, defaultHalf, defaultMinute int) (event.Event, error) {
	half := defaultHalf
	if half == 0 {
		half = 1
	}
	if input.Half != nil {
		half = *input.Half
	}
	minute := defaultMinute
	if input.Minute != nil {
		minute = *input.Minute
	}

	item := event.Event{
		MatchID:        matchID,
		PlayerID:       input.PlayerID,
		SecondPlayerID: input.SecondPlayerID,
		Type:           event.NormalizeType(input.Type),
		Minute:         minute,
		Half:           half,
		Description:    strings.TrimSpace(input.Description),
		Rating:         input.Rating,
	}
	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return item, nil
}

func onPitchOnly(t event.Type) bool {
	return t == event.TypeGoal || t == event.TypeAssist
}

type cardCount struct {
	yellow int
	red    int
}

// undoFinalization reverts the card counters of the current timeline and
// gives the formation one suspension day back.
func (s *SessionService) undoFinalization(ctx context.Context, repos store.Repositories, m match.Session) error {
	items, err := repos.Events.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list match events: %w", err)
	}
	if err := applyCards(ctx, repos, items, -1); err != nil {
		return err
	}
	assignments, err := repos.Formations.ListByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list formation: %w", err)
	}
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.PlayerID)
	}
	if err := repos.Players.AdjustSuspensions(ctx, ids, 1); err != nil {
		return fmt.Errorf("restore suspensions: %w", err)
	}
	return nil
}

// applyCards moves player card counters by sign for every card in items.
// Counters of a finalised match always track its current timeline.
func applyCards(ctx context.Context, repos store.Repositories, items []event.Event, sign int) error {
	for playerID, c := range cardTally(items) {
		if err := repos.Players.AdjustCards(ctx, playerID, sign*c.yellow, sign*c.red); err != nil {
			return fmt.Errorf("adjust cards: %w", err)
		}
	}
	return nil
}

func cardTally(items []event.Event) map[int64]cardCount {
	out := make(map[int64]cardCount)
	for _, item := range items {
		if item.PlayerID == nil {
			continue
		}
		c := out[*item.PlayerID]
		switch item.Type {
		case event.TypeYellowCard:
			c.yellow++
		case event.TypeRedCard:
			c.red++
		default:
			continue
		}
		out[*item.PlayerID] = c
	}
	return out
}

func checkScore(goalsFor, goalsAgainst *int) error {
	if goalsFor != nil && *goalsFor < 0 {
		return fmt.Errorf("%w: goals for cannot be negative", ErrInvalidInput)
	}
	if goalsAgainst != nil && *goalsAgainst < 0 {
		return fmt.Errorf("%w: goals against cannot be negative", ErrInvalidInput)
	}
	return nil
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
