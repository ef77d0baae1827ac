package lease

import (
	"context"
	"time"

	"baby-registry/internal/infra"
	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "registry:reservation:"

// KEYS[1]=lease key, ARGV[1]=holder, ARGV[2]=ttl ms.
// Returns {1, ttl} when acquired or refreshed, {0, pttl, holder} otherwise.
var acquireScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur == false or cur == ARGV[1] then
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
  return {1, tonumber(ARGV[2])}
end
return {0, redis.call('PTTL', KEYS[1]), cur}
`)

// KEYS[1]=lease key, ARGV[1]=holder.
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisStore struct {
	client redis.Cmdable
	clock  clock.Clock
}

func NewRedisStore(client redis.Cmdable, clk clock.Clock) *RedisStore {
	return &RedisStore{client: client, clock: clk}
}

func key(itemID uuid.UUID) string {
	return keyPrefix + itemID.String()
}

// Acquire takes or refreshes the lease. When another holder owns it, the
// returned lease describes that holder and acquired is false.
func (s *RedisStore) Acquire(ctx context.Context, itemID uuid.UUID, holder string, ttl time.Duration) (shared.Lease, bool, error) {
	res, err := acquireScript.Run(ctx, s.client, []string{key(itemID)}, holder, ttl.Milliseconds()).Slice()
	if err != nil {
		return shared.Lease{}, false, infra.WrapRepoErr("failed to acquire reservation", err, infra.KindCacheFailure)
	}
	if len(res) < 2 {
		return shared.Lease{}, false, infra.WrapRepoErr("unexpected reservation script reply", nil, infra.KindCacheFailure)
	}

	ok, _ := res[0].(int64)
	pttl, _ := res[1].(int64)
	lease := shared.Lease{
		ItemID:    itemID,
		Holder:    holder,
		ExpiresAt: s.clock.Now().Add(time.Duration(pttl) * time.Millisecond),
	}
	if ok == 1 {
		return lease, true, nil
	}
	if len(res) > 2 {
		lease.Holder, _ = res[2].(string)
	}
	return lease, false, nil
}

// Holder returns the current lease, or nil when the item is free.
func (s *RedisStore) Holder(ctx context.Context, itemID uuid.UUID) (*shared.Lease, error) {
	k := key(itemID)
	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, k)
	ttlCmd := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, infra.WrapRepoErr("failed to read reservation", err, infra.KindCacheFailure)
	}

	holder, err := getCmd.Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation", err, infra.KindCacheFailure)
	}

	return &shared.Lease{
		ItemID:    itemID,
		Holder:    holder,
		ExpiresAt: s.clock.Now().Add(ttlCmd.Val()),
	}, nil
}

// Release deletes the lease only if holder still owns it.
func (s *RedisStore) Release(ctx context.Context, itemID uuid.UUID, holder string) (bool, error) {
	n, err := releaseScript.Run(ctx, s.client, []string{key(itemID)}, holder).Int64()
	if err != nil {
		return false, infra.WrapRepoErr("failed to release reservation", err, infra.KindCacheFailure)
	}
	return n == 1, nil
}
