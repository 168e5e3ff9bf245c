package idgen

import (
	"context"
	"errors"
	"fmt"

	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var errCounterMissing = errors.New("counter not initialised")

type RedisAllocator struct {
	client *redis.Client
	marks  HighWaterMarks
}

// NewRedisAllocator builds an allocator whose missing counters are seeded from marks.
// A nil marks starts missing counters at zero.
func NewRedisAllocator(client *redis.Client, marks HighWaterMarks) Allocator {
	return &RedisAllocator{
		client: client,
		marks:  marks,
	}
}

// 計數器 key
func (a *RedisAllocator) counterKey(entity string) string {
	return fmt.Sprintf("counter:%s", entity)
}

func (a *RedisAllocator) Next(ctx context.Context, entity string) (string, error) {
	ids, err := a.NextN(ctx, entity, 1)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// NextN reserves a dense block with a single INCRBY, so the block is atomic with respect to
// every other allocation for the same entity. IDs reserved by a request that later fails are not reused.
// A counter lost by a Redis restart or flush is re-seeded from the store before anything is handed out.
func (a *RedisAllocator) NextN(ctx context.Context, entity string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: id count must be positive", apperrors.ErrInvalidInput)
	}

	last, err := a.incr(ctx, entity, n)
	if errors.Is(err, errCounterMissing) {
		if err := a.seed(ctx, entity); err != nil {
			return nil, err
		}
		last, err = a.incr(ctx, entity, n)
	}
	if err != nil {
		logger.WithComponent("idgen").Error("allocation failed", zap.String("entity", entity), zap.Error(err))
		return nil, fmt.Errorf("allocate %s id: %w", entity, err)
	}

	ids := make([]string, 0, n)
	for i := last - int64(n) + 1; i <= last; i++ {
		ids = append(ids, model.FormatID(entity, i))
	}
	return ids, nil
}

func (a *RedisAllocator) incr(ctx context.Context, entity string, n int) (int64, error) {
	script := `
		-- 計數器不存在時回傳 -1, 由呼叫端先預熱
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		return redis.call('INCRBY', KEYS[1], ARGV[1])
	`

	last, err := a.client.Eval(ctx, script, []string{a.counterKey(entity)}, n).Int64()
	if err != nil {
		return 0, err
	}
	if last < 0 {
		return 0, errCounterMissing
	}
	return last, nil
}

func (a *RedisAllocator) seed(ctx context.Context, entity string) error {
	var floor int64
	if a.marks != nil {
		var err error
		floor, err = a.marks.MaxIDSuffix(ctx, entity)
		if err != nil {
			return fmt.Errorf("seed %s counter: %w", entity, err)
		}
	}

	logger.WithComponent("idgen").Warn("counter missing, seeding from store",
		zap.String("entity", entity),
		zap.Int64("floor", floor),
	)
	return a.WarmUp(ctx, entity, floor)
}

// WarmUp only ever raises the stored value, so concurrent warm-ups and allocations never hand out an id twice.
func (a *RedisAllocator) WarmUp(ctx context.Context, entity string, floor int64) error {
	script := `
		local current = redis.call('GET', KEYS[1])
		local floor = tonumber(ARGV[1])
		if not current or tonumber(current) < floor then
			redis.call('SET', KEYS[1], floor)
			return floor
		end
		return tonumber(current)
	`

	if err := a.client.Eval(ctx, script, []string{a.counterKey(entity)}, floor).Err(); err != nil {
		return fmt.Errorf("warm up %s counter: %w", entity, err)
	}
	return nil
}
