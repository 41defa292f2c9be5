package match

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Phase is the live state of a match session.
type Phase string

const (
	PhaseNotStarted Phase = "NOT_STARTED"
	PhaseFirstHalf  Phase = "FIRST_HALF"
	PhaseHalfTime   Phase = "HALF_TIME"
	PhaseSecondHalf Phase = "SECOND_HALF"
	PhaseFinished   Phase = "FINISHED"
)

var ErrInvalidTransition = crerr.New("invalid match phase transition")

func ParsePhase(value string) (Phase, error) {
	phase := Phase(strings.ToUpper(strings.TrimSpace(value)))
	switch phase {
	case "":
		return PhaseNotStarted, nil
	case PhaseNotStarted, PhaseFirstHalf, PhaseHalfTime, PhaseSecondHalf, PhaseFinished:
		return phase, nil
	default:
		return "", crerr.Newf("unknown match phase %q", value)
	}
}

// Start kicks off the first half.
func (p Phase) Start() (Phase, error) {
	return p.advance(PhaseNotStarted, PhaseFirstHalf)
}

// BreakHalf ends the first half.
func (p Phase) BreakHalf() (Phase, error) {
	return p.advance(PhaseFirstHalf, PhaseHalfTime)
}

// ResumeSecondHalf kicks off the second half.
func (p Phase) ResumeSecondHalf() (Phase, error) {
	return p.advance(PhaseHalfTime, PhaseSecondHalf)
}

// Finish ends the match.
func (p Phase) Finish() (Phase, error) {
	return p.advance(PhaseSecondHalf, PhaseFinished)
}

func (p Phase) advance(from, to Phase) (Phase, error) {
	if p != from {
		return p, crerr.Wrapf(ErrInvalidTransition, "%s -> %s", p, to)
	}
	return to, nil
}

// Running reports whether the ball is in play.
func (p Phase) Running() bool {
	return p == PhaseFirstHalf || p == PhaseSecondHalf
}

// Half returns the half number of a running phase, 0 otherwise.
func (p Phase) Half() int {
	switch p {
	case PhaseFirstHalf:
		return 1
	case PhaseSecondHalf:
		return 2
	default:
		return 0
	}
}
