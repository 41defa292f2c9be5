package store

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/convocation"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
)

// ErrConstraint reports a write rejected by an integrity constraint of the
// backing store (duplicate key, dangling reference, failed check).
var ErrConstraint = crerr.New("store constraint violated")

// Repositories groups every repository bound to the same connection or transaction.
type Repositories struct {
	Players      player.Repository
	Matches      match.Repository
	Formations   formation.Repository
	Events       event.Repository
	Attendances  attendance.Repository
	Convocations convocation.Repository
}

// UnitOfWork runs fn against repositories sharing one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
