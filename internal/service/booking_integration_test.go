package service_test

import (
	"context"
	"sync"
	"testing"

	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/internal/service"
	"go-gin-cinema-booking/internal/testutil"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cinema struct {
	films      service.FilmService
	theatres   service.TheatreService
	screenings service.ScreeningService
	bookings   service.BookingService
	tickets    service.TicketService
	rdb        *redis.Client
}

func setupCinema(t *testing.T) *cinema {
	pool, rdb := testutil.Setup(t)
	ids := idgen.NewRedisAllocator(rdb, repository.NewCounterRepository(pool))

	filmRepo := repository.NewFilmRepository(pool)
	theatreRepo := repository.NewTheatreRepository(pool)
	screeningRepo := repository.NewScreeningRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	bookings := service.NewBookingService(pool, bookingRepo, screeningRepo, theatreRepo, ticketRepo, ids)
	return &cinema{
		films:      service.NewFilmService(filmRepo, ids),
		theatres:   service.NewTheatreService(pool, theatreRepo, screeningRepo, ticketRepo, ids),
		screenings: service.NewScreeningService(pool, screeningRepo, filmRepo, theatreRepo, ticketRepo, ids),
		bookings:   bookings,
		tickets:    service.NewTicketService(pool, ticketRepo, bookingRepo, screeningRepo, theatreRepo, bookings),
		rdb:        rdb,
	}
}

// 建立 5x10 影廳, 電影與場次
func (c *cinema) seedScreening(t *testing.T) *model.Screening {
	t.Helper()
	ctx := context.Background()

	theatre, err := c.theatres.CreateTheatre(ctx, model.CreateTheatreRequest{Capacity: 50, Rows: intPtr(5), Columns: intPtr(10)})
	require.NoError(t, err)
	film, err := c.films.CreateFilm(ctx, model.CreateFilmRequest{Name: "F1"})
	require.NoError(t, err)

	screening, err := c.screenings.CreateScreening(ctx, model.CreateScreeningRequest{
		FilmID: film.ID, TheatreID: theatre.ID, Date: "2024-05-01", StartTime: "19:30",
	})
	require.NoError(t, err)
	return screening
}

func (c *cinema) seedBooking(t *testing.T) *model.Booking {
	t.Helper()
	booking, err := c.bookings.CreateBooking(context.Background(), model.CreateBookingRequest{
		NoOfSeats: intPtr(2), Cost: floatPtr(20), EmailAddress: "a@b.com",
	})
	require.NoError(t, err)
	return booking
}

func TestBookingIntegration_BookTwoSeats(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)

	screening := c.seedScreening(t)
	assert.Equal(t, 50, screening.SeatsRemaining)
	assert.Equal(t, "Screening1", screening.ID)

	booking := c.seedBooking(t)
	assert.Equal(t, "Booking1", booking.ID)

	tickets, err := c.bookings.BookSeats(ctx, model.BookSeatsRequest{
		BookingID:   booking.ID,
		ScreeningID: screening.ID,
		Seats:       []model.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}},
	})
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	reloaded, err := c.screenings.GetScreeningByID(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, reloaded.SeatsRemaining)

	seatMap, err := c.screenings.GetSeatMap(ctx, screening.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}}, seatMap.Booked)
}

func TestBookingIntegration_DuplicateSeatInRequest(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)
	screening := c.seedScreening(t)
	booking := c.seedBooking(t)

	_, err := c.bookings.BookSeats(ctx, model.BookSeatsRequest{
		BookingID:   booking.ID,
		ScreeningID: screening.ID,
		Seats:       []model.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrSeatConflict)

	tickets, err := c.tickets.TicketList(ctx, model.TicketFilter{ScreeningID: screening.ID})
	require.NoError(t, err)
	assert.Empty(t, tickets)

	reloaded, err := c.screenings.GetScreeningByID(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, reloaded.SeatsRemaining)
}

func TestBookingIntegration_DeleteScreeningCascades(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)
	screening := c.seedScreening(t)
	booking := c.seedBooking(t)

	_, err := c.bookings.BookSeats(ctx, model.BookSeatsRequest{
		BookingID:   booking.ID,
		ScreeningID: screening.ID,
		Seats:       []model.Seat{{Row: 2, Column: 1}, {Row: 2, Column: 2}, {Row: 2, Column: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, c.screenings.DeleteScreening(ctx, screening.ID))

	tickets, err := c.tickets.TicketList(ctx, model.TicketFilter{ScreeningID: screening.ID})
	require.NoError(t, err)
	assert.Empty(t, tickets)

	_, err = c.screenings.GetScreeningByID(ctx, screening.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingIntegration_DeleteBookingReleasesSeats(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)
	screening := c.seedScreening(t)
	booking := c.seedBooking(t)

	_, err := c.bookings.BookSeats(ctx, model.BookSeatsRequest{
		BookingID:   booking.ID,
		ScreeningID: screening.ID,
		Seats:       []model.Seat{{Row: 3, Column: 1}, {Row: 3, Column: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, c.bookings.DeleteBooking(ctx, booking.ID))

	reloaded, err := c.screenings.GetScreeningByID(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, reloaded.SeatsRemaining)

	tickets, err := c.tickets.TicketList(ctx, model.TicketFilter{BookingID: booking.ID})
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestBookingIntegration_MissingFilm(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)
	screening := c.seedScreening(t)

	_, err := c.screenings.CreateScreening(ctx, model.CreateScreeningRequest{
		FilmID: "Film404", TheatreID: screening.TheatreID, Date: "2024-05-02", StartTime: "10:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrFilmNotFound)

	// counter untouched: the next screening is still Screening2
	next, err := c.screenings.CreateScreening(ctx, model.CreateScreeningRequest{
		FilmID: screening.FilmID, TheatreID: screening.TheatreID, Date: "2024-05-02", StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Screening2", next.ID)
}

func TestBookingIntegration_ConcurrentSameSeat(t *testing.T) {
	ctx := context.Background()
	c := setupCinema(t)
	screening := c.seedScreening(t)

	const contenders = 10
	bookings := make([]*model.Booking, contenders)
	for i := range bookings {
		bookings[i] = c.seedBooking(t)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	conflictCount := 0

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(bookingID string) {
			defer wg.Done()
			_, err := c.bookings.BookSeats(ctx, model.BookSeatsRequest{
				BookingID:   bookingID,
				ScreeningID: screening.ID,
				Seats:       []model.Seat{{Row: 4, Column: 4}},
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successCount++
			} else if assert.ErrorIs(t, err, apperrors.ErrSeatConflict) {
				conflictCount++
			}
		}(bookings[i].ID)
	}
	wg.Wait()

	assert.Equal(t, 1, successCount)
	assert.Equal(t, contenders-1, conflictCount)

	tickets, err := c.tickets.TicketList(ctx, model.TicketFilter{ScreeningID: screening.ID})
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	reloaded, err := c.screenings.GetScreeningByID(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, 49, reloaded.SeatsRemaining)
}

func TestIntegration_IDsSurviveRedisFlush(t *testing.T) {
	c := setupCinema(t)
	ctx := context.Background()

	first, err := c.bookings.CreateBooking(ctx, model.CreateBookingRequest{NoOfSeats: intPtr(1), Cost: floatPtr(10), EmailAddress: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "Booking1", first.ID)

	// a client-chosen id in generated form pushes the film counter past it
	_, err = c.films.CreateFilm(ctx, model.CreateFilmRequest{FilmID: "Film7", Name: "Heat"})
	require.NoError(t, err)

	require.NoError(t, c.rdb.FlushDB(ctx).Err())

	second, err := c.bookings.CreateBooking(ctx, model.CreateBookingRequest{NoOfSeats: intPtr(1), Cost: floatPtr(10), EmailAddress: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "Booking2", second.ID)

	film, err := c.films.CreateFilm(ctx, model.CreateFilmRequest{Name: "Ran"})
	require.NoError(t, err)
	assert.Equal(t, "Film8", film.ID)
}
