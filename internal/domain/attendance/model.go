package attendance

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// Status is the outcome of one training session for one player.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusInjured Status = "Injured"
)

const DateLayout = "2006-01-02"

var ErrInvalidStatus = crerr.New("invalid attendance status")

// Attendance is unique per (date, player).
type Attendance struct {
	Date     string
	PlayerID int64
	Status   Status
}

func ParseStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)
	for _, s := range []Status{StatusPresent, StatusAbsent, StatusInjured} {
		if strings.EqualFold(string(s), trimmed) {
			return s, nil
		}
	}
	return "", crerr.Wrapf(ErrInvalidStatus, "%q", value)
}

func ValidateDate(value string) error {
	if _, err := time.Parse(DateLayout, strings.TrimSpace(value)); err != nil {
		return crerr.Wrapf(err, "training date %q", value)
	}
	return nil
}
