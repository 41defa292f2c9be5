package match

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	RegulationHalfMinutes = 45
	MaxExtraTime          = 15
	DateLayout            = "2006-01-02"
)

// Result is the outcome of a match from the team's point of view.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

// Session is one played or scheduled match.
type Session struct {
	ID              int64
	Opponent        string
	MatchDate       string
	IsHome          bool
	GoalsFor        *int
	GoalsAgainst    *int
	StartTime       *time.Time
	ExtraTimeFirst  int
	ExtraTimeSecond int
	FormationLabel  string
	Phase           Phase
	PhaseStartedAt  *time.Time
	ConvocationID   *int64
	FinalizedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Opponent) == "" {
		return crerr.New("opponent is required")
	}
	if _, err := time.Parse(DateLayout, s.MatchDate); err != nil {
		return crerr.Wrapf(err, "match date %q", s.MatchDate)
	}
	if err := ValidateExtraTime(s.ExtraTimeFirst, s.ExtraTimeSecond); err != nil {
		return err
	}
	if s.GoalsFor != nil && *s.GoalsFor < 0 {
		return crerr.New("goals for cannot be negative")
	}
	if s.GoalsAgainst != nil && *s.GoalsAgainst < 0 {
		return crerr.New("goals against cannot be negative")
	}
	if _, err := ParsePhase(string(s.Phase)); err != nil {
		return err
	}
	return nil
}

func ValidateExtraTime(first, second int) error {
	if first < 0 || first > MaxExtraTime {
		return crerr.Newf("first half extra time must be between 0 and %d", MaxExtraTime)
	}
	if second < 0 || second > MaxExtraTime {
		return crerr.Newf("second half extra time must be between 0 and %d", MaxExtraTime)
	}
	return nil
}

func (s Session) HasScore() bool {
	return s.GoalsFor != nil && s.GoalsAgainst != nil
}

// Result returns the outcome, or false while the score is unknown.
func (s Session) Result() (Result, bool) {
	if !s.HasScore() {
		return "", false
	}
	switch {
	case *s.GoalsFor > *s.GoalsAgainst:
		return ResultWin, true
	case *s.GoalsFor < *s.GoalsAgainst:
		return ResultLoss, true
	default:
		return ResultDraw, true
	}
}

func (s Session) Finalized() bool {
	return s.FinalizedAt != nil
}

// ClockMinute is the display minute within the running half.
func (s Session) ClockMinute(now time.Time) int {
	if !s.Phase.Running() || s.PhaseStartedAt == nil {
		return 0
	}
	elapsed := now.Sub(*s.PhaseStartedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}

// Patch carries the fields of a partial match update; nil means untouched.
type Patch struct {
	Opponent        *string
	MatchDate       *string
	IsHome          *bool
	GoalsFor        *int
	GoalsAgainst    *int
	StartTime       *time.Time
	ExtraTimeFirst  *int
	ExtraTimeSecond *int
	FormationLabel  *string
}

func (s Session) Apply(p Patch) Session {
	if p.Opponent != nil {
		s.Opponent = strings.TrimSpace(*p.Opponent)
	}
	if p.MatchDate != nil {
		s.MatchDate = strings.TrimSpace(*p.MatchDate)
	}
	if p.IsHome != nil {
		s.IsHome = *p.IsHome
	}
	if p.GoalsFor != nil {
		v := *p.GoalsFor
		s.GoalsFor = &v
	}
	if p.GoalsAgainst != nil {
		v := *p.GoalsAgainst
		s.GoalsAgainst = &v
	}
	if p.StartTime != nil {
		v := *p.StartTime
		s.StartTime = &v
	}
	if p.ExtraTimeFirst != nil {
		s.ExtraTimeFirst = *p.ExtraTimeFirst
	}
	if p.ExtraTimeSecond != nil {
		s.ExtraTimeSecond = *p.ExtraTimeSecond
	}
	if p.FormationLabel != nil {
		s.FormationLabel = strings.TrimSpace(*p.FormationLabel)
	}
	return s
}
