package testutil

import (
	"context"
	"testing"

	"go-gin-cinema-booking/config"
	"go-gin-cinema-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup connects to the integration Postgres and Redis from config.LoadTestConfig, applies the schema
// and clears both. The test is skipped when either one is unreachable.
func Setup(t *testing.T) (*pgxpool.Pool, *redis.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}

	cfg := config.LoadTestConfig()
	ctx := context.Background()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { rdb.Close() })

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE tickets, bookings, screenings, ticket_types, theatres, films"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	if err := rdb.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}

	return pool, rdb
}
