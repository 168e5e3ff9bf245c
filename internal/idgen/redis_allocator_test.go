package idgen

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storedIDs stands in for the database: the highest generated suffix per entity.
type storedIDs struct {
	max map[string]int64
	err error
}

func (s *storedIDs) MaxIDSuffix(_ context.Context, entity string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.max[entity], nil
}

func newTestAllocatorWithStore(t *testing.T, marks HighWaterMarks) (Allocator, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisAllocator(client, marks), mr
}

func newTestAllocator(t *testing.T) (Allocator, *miniredis.Miniredis) {
	return newTestAllocatorWithStore(t, nil)
}

func TestRedisAllocator_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - dense and 1-based", func(t *testing.T) {
		allocator, _ := newTestAllocator(t)
		for _, want := range []string{"Screening1", "Screening2", "Screening3"} {
			id, err := allocator.Next(ctx, model.EntityScreening)
			assert.NoError(t, err)
			assert.Equal(t, want, id)
		}
	})

	t.Run("Success - counters are per entity", func(t *testing.T) {
		allocator, _ := newTestAllocator(t)
		film, err := allocator.Next(ctx, model.EntityFilm)
		assert.NoError(t, err)
		booking, err := allocator.Next(ctx, model.EntityBooking)
		assert.NoError(t, err)
		assert.Equal(t, "Film1", film)
		assert.Equal(t, "Booking1", booking)
	})

	t.Run("Failed - redis unavailable", func(t *testing.T) {
		allocator, mr := newTestAllocator(t)
		mr.Close()
		_, err := allocator.Next(ctx, model.EntityTicket)
		assert.Error(t, err)
	})
}

func TestRedisAllocator_NextN(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		allocator, mr := newTestAllocator(t)
		first, err := allocator.NextN(ctx, model.EntityTicket, 2)
		require.NoError(t, err)
		second, err := allocator.NextN(ctx, model.EntityTicket, 3)
		require.NoError(t, err)

		assert.Equal(t, []string{"Ticket1", "Ticket2"}, first)
		assert.Equal(t, []string{"Ticket3", "Ticket4", "Ticket5"}, second)
		count, err := mr.Get("counter:Ticket")
		assert.NoError(t, err)
		assert.Equal(t, "5", count)
	})

	t.Run("Failed - non positive count", func(t *testing.T) {
		allocator, _ := newTestAllocator(t)
		_, err := allocator.NextN(ctx, model.EntityTicket, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestRedisAllocator_ConcurrentNoDuplicates(t *testing.T) {
	ctx := context.Background()
	allocator, _ := newTestAllocator(t)

	const workers = 50
	const perWorker = 4

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]int)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := allocator.NextN(ctx, model.EntityTicket, perWorker)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			for _, id := range ids {
				seen[id]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s handed out more than once", id)
	}
}

func TestRedisAllocator_SeedsMissingCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - fresh redis continues after stored rows", func(t *testing.T) {
		allocator, _ := newTestAllocatorWithStore(t, &storedIDs{max: map[string]int64{model.EntityBooking: 5}})

		id, err := allocator.Next(ctx, model.EntityBooking)

		require.NoError(t, err)
		assert.Equal(t, "Booking6", id)
	})

	t.Run("Success - flush does not reissue ids", func(t *testing.T) {
		store := &storedIDs{max: map[string]int64{}}
		allocator, mr := newTestAllocatorWithStore(t, store)

		first, err := allocator.NextN(ctx, model.EntityTicket, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ticket1", "Ticket2"}, first)

		// both tickets were persisted before Redis lost its data
		store.max[model.EntityTicket] = 2
		mr.FlushAll()

		next, err := allocator.Next(ctx, model.EntityTicket)
		require.NoError(t, err)
		assert.Equal(t, "Ticket3", next)
	})

	t.Run("Failed - store unavailable while seeding", func(t *testing.T) {
		allocator, mr := newTestAllocatorWithStore(t, &storedIDs{err: errors.New("connection refused")})

		_, err := allocator.Next(ctx, model.EntityFilm)

		assert.Error(t, err)
		assert.False(t, mr.Exists("counter:Film"))
	})
}

func TestRedisAllocator_WarmUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - raises the counter", func(t *testing.T) {
		allocator, _ := newTestAllocator(t)

		require.NoError(t, allocator.WarmUp(ctx, model.EntityFilm, 7))
		id, err := allocator.Next(ctx, model.EntityFilm)

		require.NoError(t, err)
		assert.Equal(t, "Film8", id)
	})

	t.Run("Success - never lowers the counter", func(t *testing.T) {
		allocator, mr := newTestAllocator(t)
		_, err := allocator.NextN(ctx, model.EntityScreening, 10)
		require.NoError(t, err)

		require.NoError(t, allocator.WarmUp(ctx, model.EntityScreening, 3))

		count, err := mr.Get("counter:Screening")
		require.NoError(t, err)
		assert.Equal(t, "10", count)
		id, err := allocator.Next(ctx, model.EntityScreening)
		require.NoError(t, err)
		assert.Equal(t, "Screening11", id)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	allocator, _ := newTestAllocator(t)
	store := &storedIDs{max: map[string]int64{model.EntityBooking: 4, model.EntityTicket: 9}}

	require.NoError(t, Seed(ctx, allocator, store, model.Entities...))

	booking, err := allocator.Next(ctx, model.EntityBooking)
	require.NoError(t, err)
	ticket, err := allocator.Next(ctx, model.EntityTicket)
	require.NoError(t, err)
	film, err := allocator.Next(ctx, model.EntityFilm)
	require.NoError(t, err)

	assert.Equal(t, "Booking5", booking)
	assert.Equal(t, "Ticket10", ticket)
	assert.Equal(t, "Film1", film)
}
