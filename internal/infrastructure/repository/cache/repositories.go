package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/matchday/internal/domain/player"
	basecache "github.com/riskibarqy/matchday/internal/platform/cache"
)

const (
	playerListKey    = "player:list"
	playerByIDPrefix  = "player:id:"
)

// PlayerRepository caches roster reads. Every write drops the list and the
// touched ids.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKey(id), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	return r.next.GetByIDs(ctx, ids)
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}
	r.invalidate(ctx, created.ID)
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	defer r.invalidate(ctx, item.ID)
	return r.next.Update(ctx, item)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	defer r.invalidate(ctx, id)
	return r.next.Delete(ctx, id)
}

func (r *PlayerRepository) AdjustSuspensions(ctx context.Context, ids []int64, delta int) error {
	defer r.invalidate(ctx, ids...)
	return r.next.AdjustSuspensions(ctx, ids, delta)
}

func (r *PlayerRepository) AdjustCards(ctx context.Context, id int64, yellow, red int) error {
	defer r.invalidate(ctx, id)
	return r.next.AdjustCards(ctx, id, yellow, red)
}

func (r *PlayerRepository) invalidate(ctx context.Context, ids ...int64) {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, playerListKey)
	for _, id := range ids {
		keys = append(keys, playerKey(id))
	}
	r.cache.Delete(ctx, keys...)
}

// Invalidate drops every cached roster entry. Used after a transaction that
// wrote players through an uncached repository commits or rolls back.
func (r *PlayerRepository) Invalidate(ctx context.Context) {
	r.cache.Delete(ctx, playerListKey)
	r.cache.DeletePrefix(ctx, playerByIDPrefix)
}

func playerKey(id int64) string {
	return playerByIDPrefix + strconv.FormatInt(id, 10)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}
