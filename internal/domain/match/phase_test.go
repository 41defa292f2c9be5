package match

import (
	"errors"
	"testing"
	"time"
)

func TestPhase_HappyPath(t *testing.T) {
	phase := PhaseNotStarted
	steps := []struct {
		name string
		next func(Phase) (Phase, error)
		want Phase
	}{
		{name: "start", next: Phase.Start, want: PhaseFirstHalf},
		{name: "half time", next: Phase.BreakHalf, want: PhaseHalfTime},
		{name: "second half", next: Phase.ResumeSecondHalf, want: PhaseSecondHalf},
		{name: "finish", next: Phase.Finish, want: PhaseFinished},
	}

	for _, step := range steps {
		got, err := step.next(phase)
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got != step.want {
			t.Fatalf("%s: got %s want %s", step.name, got, step.want)
		}
		phase = got
	}
}

func TestPhase_RejectsSkipsAndBackwards(t *testing.T) {
	cases := []struct {
		name string
		from Phase
		next func(Phase) (Phase, error)
	}{
		{name: "finish before start", from: PhaseNotStarted, next: Phase.Finish},
		{name: "second half from first half", from: PhaseFirstHalf, next: Phase.ResumeSecondHalf},
		{name: "restart running match", from: PhaseSecondHalf, next: Phase.Start},
		{name: "half time twice", from: PhaseHalfTime, next: Phase.BreakHalf},
		{name: "finish twice", from: PhaseFinished, next: Phase.Finish},
	}

	for _, tc := range cases {
		got, err := tc.next(tc.from)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s: expected ErrInvalidTransition, got %v", tc.name, err)
		}
		if got != tc.from {
			t.Fatalf("%s: phase changed to %s", tc.name, got)
		}
	}
}

func TestSession_Result(t *testing.T) {
	two, one := 2, 1
	s := Session{GoalsFor: &two, GoalsAgainst: &one}
	if r, ok := s.Result(); !ok || r != ResultWin {
		t.Fatalf("expected win, got %s %t", r, ok)
	}
	s.GoalsAgainst = &two
	if r, _ := s.Result(); r != ResultDraw {
		t.Fatalf("expected draw, got %s", r)
	}
	s.GoalsFor = nil
	if _, ok := s.Result(); ok {
		t.Fatalf("expected no result without score")
	}
}

func TestSession_ClockMinute(t *testing.T) {
	started := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	s := Session{Phase: PhaseSecondHalf, PhaseStartedAt: &started}
	if got := s.ClockMinute(started.Add(12*time.Minute + 30*time.Second)); got != 12 {
		t.Fatalf("unexpected clock minute: %d", got)
	}
	s.Phase = PhaseHalfTime
	if got := s.ClockMinute(started.Add(time.Hour)); got != 0 {
		t.Fatalf("expected stopped clock, got %d", got)
	}
}

func TestValidateExtraTime(t *testing.T) {
	if err := ValidateExtraTime(1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateExtraTime(16, 0); err == nil {
		t.Fatalf("expected error for extra time above limit")
	}
}
