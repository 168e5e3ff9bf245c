package repository_test

import (
	"context"
	"testing"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/internal/testutil"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 建立 2x2 影廳, 電影, 場次與訂位
func seedScreening(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	_, err := repository.NewFilmRepository(pool).Create(ctx, &model.Film{ID: "Film1", Name: "Heat"})
	require.NoError(t, err)
	_, err = repository.NewTheatreRepository(pool).Create(ctx, &model.Theatre{ID: "Theatre1", Capacity: 4, Rows: 2, Columns: 2})
	require.NoError(t, err)
	_, err = repository.NewBookingRepository(pool).Create(ctx, &model.Booking{ID: "Booking1", NoOfSeats: 2, Cost: 20, EmailAddress: "a@b.com"})
	require.NoError(t, err)

	inTx(t, pool, func(tx pgx.Tx) {
		_, err := repository.NewScreeningRepository(pool).Create(ctx, tx, &model.Screening{
			ID: "Screening1", FilmID: "Film1", TheatreID: "Theatre1", Date: "2024-05-01", StartTime: "19:30", SeatsRemaining: 4,
		})
		require.NoError(t, err)
	})
}

func inTx(t *testing.T, pool *pgxpool.Pool, fn func(tx pgx.Tx)) {
	t.Helper()
	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)
	fn(tx)
	require.NoError(t, tx.Commit(ctx))
}

func TestScreeningRepository_AdjustSeatsRemaining(t *testing.T) {
	pool, _ := testutil.Setup(t)
	seedScreening(t, pool)
	repo := repository.NewScreeningRepository(pool)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		err = repo.AdjustSeatsRemaining(ctx, tx, "Screening404", 1)

		assert.ErrorIs(t, err, apperrors.ErrScreeningNotFound)
	})

	t.Run("BelowZero", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		err = repo.AdjustSeatsRemaining(ctx, tx, "Screening1", -5)

		assert.ErrorIs(t, err, apperrors.ErrInsufficientSeats)
	})

	t.Run("CappedAtCapacity", func(t *testing.T) {
		inTx(t, pool, func(tx pgx.Tx) {
			require.NoError(t, repo.AdjustSeatsRemaining(ctx, tx, "Screening1", 3))
		})

		found, err := repo.FindByID(ctx, "Screening1")
		require.NoError(t, err)
		assert.Equal(t, 4, found.SeatsRemaining)
	})
}

func TestTicketRepository_SeatConstraintAndBookingDelete(t *testing.T) {
	pool, _ := testutil.Setup(t)
	seedScreening(t, pool)
	repo := repository.NewTicketRepository(pool)
	ctx := context.Background()

	inTx(t, pool, func(tx pgx.Tx) {
		_, err := repo.CreateBatch(ctx, tx, []*model.Ticket{
			{ID: "Ticket1", BookingID: "Booking1", ScreeningID: "Screening1", TicketType: "Default", SeatRow: 1, SeatColumn: 1},
			{ID: "Ticket2", BookingID: "Booking1", ScreeningID: "Screening1", TicketType: "Default", SeatRow: 1, SeatColumn: 2},
		})
		require.NoError(t, err)
	})

	t.Run("SeatTaken", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = repo.CreateBatch(ctx, tx, []*model.Ticket{
			{ID: "Ticket3", BookingID: "Booking1", ScreeningID: "Screening1", TicketType: "Default", SeatRow: 1, SeatColumn: 1},
		})

		assert.ErrorIs(t, err, apperrors.ErrSeatTaken)
		assert.NotContains(t, err.Error(), "screening_id")
	})

	t.Run("DeleteByBookingIDReturnsScreenings", func(t *testing.T) {
		inTx(t, pool, func(tx pgx.Tx) {
			deleted, err := repo.DeleteByBookingID(ctx, tx, "Booking1")
			require.NoError(t, err)
			assert.Equal(t, []string{"Screening1", "Screening1"}, deleted)

			again, err := repo.DeleteByBookingID(ctx, tx, "Booking1")
			require.NoError(t, err)
			assert.Empty(t, again)
		})
	})
}

func TestCounterRepository_MaxIDSuffix(t *testing.T) {
	pool, _ := testutil.Setup(t)
	ctx := context.Background()
	films := repository.NewFilmRepository(pool)
	repo := repository.NewCounterRepository(pool)

	t.Run("EmptyTable", func(t *testing.T) {
		n, err := repo.MaxIDSuffix(ctx, model.EntityBooking)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("IgnoresClientIDs", func(t *testing.T) {
		for _, id := range []string{"Film2", "Film10", "heat-1995", "Film9x"} {
			_, err := films.Create(ctx, &model.Film{ID: id, Name: id})
			require.NoError(t, err)
		}

		n, err := repo.MaxIDSuffix(ctx, model.EntityFilm)
		require.NoError(t, err)
		assert.Equal(t, int64(10), n)
	})

	t.Run("UnknownEntity", func(t *testing.T) {
		_, err := repo.MaxIDSuffix(ctx, "Seat")
		assert.Error(t, err)
	})
}
