package cache

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/store"
)

// UnitOfWork drops cached roster entries after every transaction, since
// transactional repositories write past the cache.
type UnitOfWork struct {
	next    store.UnitOfWork
	players *PlayerRepository
}

var _ store.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(next store.UnitOfWork, players *PlayerRepository) *UnitOfWork {
	return &UnitOfWork{next: next, players: players}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	defer u.players.Invalidate(ctx)
	return u.next.Do(ctx, fn)
}
