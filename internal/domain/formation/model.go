package formation

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Status marks whether a convocated player starts or sits on the bench.
type Status string

const (
	StatusStarter Status = "STARTER"
	StatusBench   Status = "BENCH"
)

// StartersRequired is the number of players that must start a match.
const StartersRequired = 11

var (
	ErrInvalidStatus    = crerr.New("invalid formation status")
	ErrInvalidFormation = crerr.New("invalid formation")
)

// Assignment is the per-match, per-player formation row.
type Assignment struct {
	MatchID       int64
	PlayerID      int64
	Status        Status
	MinutesPlayed *int
	MinuteEntered *int
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	switch status {
	case StatusStarter, StatusBench:
		return status, nil
	default:
		return "", crerr.Wrapf(ErrInvalidStatus, "%q", value)
	}
}

func (a Assignment) IsStarter() bool {
	return a.Status == StatusStarter
}

// Minutes returns the stored minutes, zero when not yet computed.
func (a Assignment) Minutes() int {
	if a.MinutesPlayed == nil {
		return 0
	}
	return *a.MinutesPlayed
}

// MinutesUpdate is a partial minutes write; nil fields are left untouched.
type MinutesUpdate struct {
	MatchID       int64
	PlayerID      int64
	MinutesPlayed *int
	MinuteEntered *int
}

// CountStarters returns how many assignments are STARTER rows.
func CountStarters(items []Assignment) int {
	n := 0
	for _, item := range items {
		if item.IsStarter() {
			n++
		}
	}
	return n
}

// Build derives the formation rows of a match from the convocated players and the chosen starters.
func Build(matchID int64, convocated, starters []int64) ([]Assignment, error) {
	if len(starters) != StartersRequired {
		return nil, crerr.Wrapf(ErrInvalidFormation, "expected %d starters, got %d", StartersRequired, len(starters))
	}

	called := make(map[int64]struct{}, len(convocated))
	for _, id := range convocated {
		called[id] = struct{}{}
	}

	starting := make(map[int64]struct{}, len(starters))
	for _, id := range starters {
		if _, ok := called[id]; !ok {
			return nil, crerr.Wrapf(ErrInvalidFormation, "starter %d is not convocated", id)
		}
		if _, dup := starting[id]; dup {
			return nil, crerr.Wrapf(ErrInvalidFormation, "starter %d listed twice", id)
		}
		starting[id] = struct{}{}
	}

	out := make([]Assignment, 0, len(convocated))
	seen := make(map[int64]struct{}, len(convocated))
	for _, id := range convocated {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		status := StatusBench
		if _, ok := starting[id]; ok {
			status = StatusStarter
		}
		out = append(out, Assignment{MatchID: matchID, PlayerID: id, Status: status})
	}
	return out, nil
}
