package formation

import crerr "github.com/cockroachdb/errors"

var (
	ErrNotOnPitch  = crerr.New("player is not on the pitch")
	ErrCannotEnter = crerr.New("player cannot enter the pitch")
	ErrNotInSquad  = crerr.New("player is not in the match formation")
	ErrAlreadyUsed = crerr.New("player already took part in a substitution")
)

// Roster tracks who is on the pitch while a match is played.
type Roster struct {
	status  map[int64]Status
	onPitch map[int64]bool
	// touched holds players already involved in a substitution.
	touched map[int64]bool
	subs    int
}

func NewRoster(items []Assignment) *Roster {
	r := &Roster{
		status:  make(map[int64]Status, len(items)),
		onPitch: make(map[int64]bool, len(items)),
		touched: make(map[int64]bool),
	}
	for _, item := range items {
		r.status[item.PlayerID] = item.Status
		r.onPitch[item.PlayerID] = item.IsStarter()
	}
	return r
}

func (r *Roster) InSquad(playerID int64) bool {
	_, ok := r.status[playerID]
	return ok
}

func (r *Roster) OnPitch(playerID int64) bool {
	return r.onPitch[playerID]
}

// CanEnter reports whether a bench player is still available to come on.
func (r *Roster) CanEnter(playerID int64) bool {
	return r.status[playerID] == StatusBench && !r.touched[playerID]
}

// Substitute swaps out for in. A player subbed in cannot be subbed out later.
func (r *Roster) Substitute(out, in int64) error {
	if !r.InSquad(out) {
		return crerr.Wrapf(ErrNotInSquad, "player %d", out)
	}
	if !r.InSquad(in) {
		return crerr.Wrapf(ErrNotInSquad, "player %d", in)
	}
	if r.touched[out] {
		return crerr.Wrapf(ErrAlreadyUsed, "player %d", out)
	}
	if !r.OnPitch(out) {
		return crerr.Wrapf(ErrNotOnPitch, "player %d", out)
	}
	if !r.CanEnter(in) {
		return crerr.Wrapf(ErrCannotEnter, "player %d", in)
	}

	r.onPitch[out] = false
	r.onPitch[in] = true
	r.touched[out] = true
	r.touched[in] = true
	r.subs++
	return nil
}

func (r *Roster) SubstitutionsUsed() int {
	return r.subs
}

// OnPitchIDs lists the players currently on the pitch.
func (r *Roster) OnPitchIDs() []int64 {
	out := make([]int64, 0, StartersRequired)
	for id, on := range r.onPitch {
		if on {
			out = append(out, id)
		}
	}
	return out
}
