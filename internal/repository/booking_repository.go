package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	Update(ctx context.Context, id string, params model.UpdateBookingParams) (*model.Booking, error)

	// Transaction methods
	FindByIDForShare(ctx context.Context, tx pgx.Tx, id string) (*model.Booking, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Booking, error)
	Delete(ctx context.Context, tx pgx.Tx, id string) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, no_of_seats, cost, email_address`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.NoOfSeats,
		&booking.Cost,
		&booking.EmailAddress,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrBookingNotFound)
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (id, no_of_seats, cost, email_address)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookingColumns

	return scanBooking(r.pool.QueryRow(ctx, query,
		booking.ID, booking.NoOfSeats, booking.Cost, booking.EmailAddress,
	))
}

func (r *BookingRepositoryImpl) List(ctx context.Context) ([]*model.Booking, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	return r.findByID(ctx, r.pool, id, "")
}

// FindByIDForShare keeps the booking alive while seats are added to it.
func (r *BookingRepositoryImpl) FindByIDForShare(ctx context.Context, tx pgx.Tx, id string) (*model.Booking, error) {
	return r.findByID(ctx, tx, id, "FOR SHARE")
}

func (r *BookingRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Booking, error) {
	return r.findByID(ctx, tx, id, "FOR UPDATE")
}

func (r *BookingRepositoryImpl) findByID(ctx context.Context, db database.DBTX, id string, lock string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 ` + lock
	return scanBooking(db.QueryRow(ctx, query, id))
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateBookingParams) (*model.Booking, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.NoOfSeats != nil {
		sets = append(sets, fmt.Sprintf("no_of_seats = $%d", argPos))
		args = append(args, *params.NoOfSeats)
		argPos++
	}
	if params.Cost != nil {
		sets = append(sets, fmt.Sprintf("cost = $%d", argPos))
		args = append(args, *params.Cost)
		argPos++
	}
	if params.EmailAddress != nil {
		sets = append(sets, fmt.Sprintf("email_address = $%d", argPos))
		args = append(args, *params.EmailAddress)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE bookings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, bookingColumns)

	return scanBooking(r.pool.QueryRow(ctx, query, args...))
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrBookingNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}
