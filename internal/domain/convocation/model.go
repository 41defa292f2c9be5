package convocation

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const DateLayout = "2006-01-02"

// Convocation is the call-up sheet for one match.
type Convocation struct {
	ID          int64
	Name        string
	MatchDate   string
	Opponent    string
	PlayerIDs   []int64
	ArrivalTime string
	KickoffTime string
	Address     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Convocation) Validate() error {
	if strings.TrimSpace(c.Opponent) == "" {
		return crerr.New("opponent is required")
	}
	if _, err := time.Parse(DateLayout, c.MatchDate); err != nil {
		return crerr.Wrapf(err, "match date %q", c.MatchDate)
	}
	if len(c.PlayerIDs) == 0 {
		return crerr.New("at least one player must be called up")
	}
	seen := make(map[int64]struct{}, len(c.PlayerIDs))
	for _, id := range c.PlayerIDs {
		if _, dup := seen[id]; dup {
			return crerr.Newf("player %d called up twice", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
