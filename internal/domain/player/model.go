package player

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// Position represents the football role of a squad member.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// ConvocationStatus is the availability flag shown on the roster.
type ConvocationStatus string

const (
	StatusAvailable ConvocationStatus = "Disponibile"
	StatusInjured   ConvocationStatus = "Infortunato"
	StatusSentOff   ConvocationStatus = "Espulso"
)

var AllStatuses = map[ConvocationStatus]struct{}{
	StatusAvailable: {},
	StatusInjured:   {},
	StatusSentOff:   {},
}

var (
	ErrInvalidPosition = crerr.New("invalid player position")
	ErrInvalidStatus   = crerr.New("invalid convocation status")
)

// Player is one member of the team roster.
type Player struct {
	ID                int64
	Name              string
	ShirtNumber       int
	Position          Position
	ConvocationStatus ConvocationStatus
	IsConvocato       bool
	SuspensionDays    int
	YellowCards       int
	RedCards          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return crerr.New("player name is required")
	}
	if p.ShirtNumber < 0 || p.ShirtNumber > 99 {
		return crerr.Newf("shirt number %d out of range", p.ShirtNumber)
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return crerr.Wrapf(ErrInvalidPosition, "%q", p.Position)
	}
	if _, ok := AllStatuses[p.ConvocationStatus]; !ok {
		return crerr.Wrapf(ErrInvalidStatus, "%q", p.ConvocationStatus)
	}
	if p.SuspensionDays < 0 {
		return crerr.New("suspension days cannot be negative")
	}
	return nil
}

func (p Player) IsGoalkeeper() bool {
	return p.Position == PositionGoalkeeper
}

// Patch carries the fields of a partial roster update; nil means untouched.
type Patch struct {
	Name              *string
	ShirtNumber       *int
	Position          *Position
	ConvocationStatus *ConvocationStatus
	IsConvocato       *bool
	SuspensionDays    *int
}

// Apply returns p with the patch applied. An injured or sent-off player is
// never left called up, whatever the payload says about IsConvocato.
func (p Player) Apply(patch Patch) Player {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ShirtNumber != nil {
		p.ShirtNumber = *patch.ShirtNumber
	}
	if patch.Position != nil {
		p.Position = NormalizePosition(string(*patch.Position))
	}
	if patch.IsConvocato != nil {
		p.IsConvocato = *patch.IsConvocato
	}
	if patch.SuspensionDays != nil {
		p.SuspensionDays = *patch.SuspensionDays
	}
	if patch.ConvocationStatus != nil {
		p.ConvocationStatus = NormalizeStatus(string(*patch.ConvocationStatus))
		if p.ConvocationStatus.Unavailable() {
			p.IsConvocato = false
		}
	}
	return p
}

func (s ConvocationStatus) Unavailable() bool {
	return s == StatusInjured || s == StatusSentOff
}

func NormalizePosition(value string) Position {
	return Position(strings.ToUpper(strings.TrimSpace(value)))
}

func NormalizeStatus(value string) ConvocationStatus {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return StatusAvailable
	}
	for status := range AllStatuses {
		if strings.EqualFold(string(status), trimmed) {
			return status
		}
	}
	return ConvocationStatus(trimmed)
}
