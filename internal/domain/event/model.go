package event

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// Type classifies a timeline entry.
type Type string

const (
	TypeGoal         Type = "GOAL"
	TypeAssist       Type = "ASSIST"
	TypeSubstitution Type = "SUBSTITUTION"
	TypeYellowCard   Type = "YELLOW_CARD"
	TypeRedCard      Type = "RED_CARD"
	TypeInjury       Type = "INJURY"
	TypePenalty      Type = "PENALTY"
	TypeCorner       Type = "CORNER"
	TypeOffside      Type = "OFFSIDE"
	TypeNote         Type = "NOTE"
	TypeGoalConceded Type = "GOAL_CONCEDED"
	TypeRating       Type = "RATING"
)

// MaxMinute bounds the minute stamp of any event, both halves and stoppage time included.
const MaxMinute = 120

var allTypes = map[Type]struct{}{
	TypeGoal:         {},
	TypeAssist:       {},
	TypeSubstitution: {},
	TypeYellowCard:   {},
	TypeRedCard:      {},
	TypeInjury:       {},
	TypePenalty:      {},
	TypeCorner:       {},
	TypeOffside:      {},
	TypeNote:         {},
	TypeGoalConceded: {},
	TypeRating:       {},
}

var playerRequired = map[Type]struct{}{
	TypeGoal:         {},
	TypeAssist:       {},
	TypeSubstitution: {},
	TypeYellowCard:   {},
	TypeRedCard:      {},
	TypeInjury:       {},
	TypeRating:       {},
}

var (
	ErrUnknownType    = crerr.New("unknown event type")
	ErrInvalidEvent   = crerr.New("invalid match event")
	ErrPlayerRequired = crerr.New("event requires a player")
)

// Event is one immutable entry of a match timeline.
type Event struct {
	ID             int64
	MatchID        int64
	PlayerID       *int64
	SecondPlayerID *int64
	Type           Type
	Minute         int
	Half           int
	Description    string
	Rating         *int
	CreatedAt      time.Time
}

// NormalizeType maps loose client input such as "yellow card" or "yellowCard" to a Type.
func NormalizeType(value string) Type {
	raw := strings.TrimSpace(value)
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z' && i > 0 && raw[i-1] >= 'a' && raw[i-1] <= 'z':
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return Type(strings.ToUpper(b.String()))
}

func (e Event) Validate() error {
	if _, ok := allTypes[e.Type]; !ok {
		return crerr.Wrapf(ErrUnknownType, "%q", e.Type)
	}
	if e.Half != 1 && e.Half != 2 {
		return crerr.Wrapf(ErrInvalidEvent, "half must be 1 or 2, got %d", e.Half)
	}
	if e.Minute < 0 || e.Minute > MaxMinute {
		return crerr.Wrapf(ErrInvalidEvent, "minute must be between 0 and %d, got %d", MaxMinute, e.Minute)
	}
	if _, ok := playerRequired[e.Type]; ok && e.PlayerID == nil {
		return crerr.Wrapf(ErrPlayerRequired, "%s", e.Type)
	}
	if e.Type == TypeSubstitution {
		if e.SecondPlayerID == nil {
			return crerr.Wrap(ErrInvalidEvent, "substitution requires the incoming player")
		}
		if *e.SecondPlayerID == *e.PlayerID {
			return crerr.Wrap(ErrInvalidEvent, "substitution needs two different players")
		}
	}
	if e.Type == TypeRating && e.Rating == nil {
		return crerr.Wrap(ErrInvalidEvent, "rating value is required")
	}
	if e.Rating != nil && (*e.Rating < 1 || *e.Rating > 10) {
		return crerr.Wrapf(ErrInvalidEvent, "rating must be between 1 and 10, got %d", *e.Rating)
	}
	return nil
}

// Involves reports whether the event references the player in either slot.
func (e Event) Involves(playerID int64) bool {
	return (e.PlayerID != nil && *e.PlayerID == playerID) ||
		(e.SecondPlayerID != nil && *e.SecondPlayerID == playerID)
}
