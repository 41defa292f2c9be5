package formation

import (
	"errors"
	"testing"
)

func squad(starters, bench int) []Assignment {
	out := make([]Assignment, 0, starters+bench)
	for i := 1; i <= starters; i++ {
		out = append(out, Assignment{MatchID: 1, PlayerID: int64(i), Status: StatusStarter})
	}
	for i := 1; i <= bench; i++ {
		out = append(out, Assignment{MatchID: 1, PlayerID: int64(100 + i), Status: StatusBench})
	}
	return out
}

func TestBuild(t *testing.T) {
	convocated := make([]int64, 0, 16)
	for i := int64(1); i <= 16; i++ {
		convocated = append(convocated, i)
	}

	items, err := Build(7, convocated, convocated[:11])
	if err != nil {
		t.Fatalf("build formation: %v", err)
	}
	if len(items) != 16 {
		t.Fatalf("unexpected row count: %d", len(items))
	}
	if got := CountStarters(items); got != StartersRequired {
		t.Fatalf("unexpected starters: %d", got)
	}
	for _, item := range items {
		if item.MatchID != 7 {
			t.Fatalf("unexpected match id: %d", item.MatchID)
		}
	}
}

func TestBuild_RejectsInvalidStarters(t *testing.T) {
	convocated := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	if _, err := Build(1, convocated, convocated[:10]); !errors.Is(err, ErrInvalidFormation) {
		t.Fatalf("expected ErrInvalidFormation for 10 starters, got %v", err)
	}

	outsider := append(append([]int64(nil), convocated[:10]...), 99)
	if _, err := Build(1, convocated, outsider); !errors.Is(err, ErrInvalidFormation) {
		t.Fatalf("expected ErrInvalidFormation for non convocated starter, got %v", err)
	}

	dup := append(append([]int64(nil), convocated[:10]...), 1)
	if _, err := Build(1, convocated, dup); !errors.Is(err, ErrInvalidFormation) {
		t.Fatalf("expected ErrInvalidFormation for duplicate starter, got %v", err)
	}
}

func TestRoster_Substitute(t *testing.T) {
	r := NewRoster(squad(11, 3))

	if err := r.Substitute(5, 101); err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if r.OnPitch(5) || !r.OnPitch(101) {
		t.Fatalf("pitch state not swapped")
	}
	if r.SubstitutionsUsed() != 1 {
		t.Fatalf("unexpected substitutions: %d", r.SubstitutionsUsed())
	}
	if len(r.OnPitchIDs()) != 11 {
		t.Fatalf("expected 11 on pitch, got %d", len(r.OnPitchIDs()))
	}

	if err := r.Substitute(101, 102); !errors.Is(err, ErrAlreadyUsed) {
		t.Fatalf("expected subbed-in player to stay on, got %v", err)
	}
	if err := r.Substitute(6, 5); !errors.Is(err, ErrCannotEnter) {
		t.Fatalf("expected subbed-out starter to be unable to return, got %v", err)
	}
	if err := r.Substitute(5, 103); !errors.Is(err, ErrAlreadyUsed) {
		t.Fatalf("expected ErrAlreadyUsed, got %v", err)
	}
	if err := r.Substitute(102, 103); !errors.Is(err, ErrNotOnPitch) {
		t.Fatalf("expected ErrNotOnPitch, got %v", err)
	}
	if err := r.Substitute(7, 999); !errors.Is(err, ErrNotInSquad) {
		t.Fatalf("expected ErrNotInSquad, got %v", err)
	}
}
