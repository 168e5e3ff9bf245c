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

type TicketRepository interface {
	List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id string) (*model.Ticket, error)

	// Transaction methods
	CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*model.Ticket) ([]*model.Ticket, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Ticket, error)
	ListByScreeningID(ctx context.Context, tx pgx.Tx, screeningID string) ([]*model.Ticket, error)
	ListByBookingID(ctx context.Context, tx pgx.Tx, bookingID string) ([]*model.Ticket, error)
	Update(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error)
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	DeleteByScreeningID(ctx context.Context, tx pgx.Tx, screeningID string) (int64, error)
	DeleteByBookingID(ctx context.Context, tx pgx.Tx, bookingID string) ([]string, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, booking_id, screening_id, ticket_type, seat_row, seat_column`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.BookingID,
		&ticket.ScreeningID,
		&ticket.TicketType,
		&ticket.SeatRow,
		&ticket.SeatColumn,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrTicketNotFound)
	}
	return &ticket, nil
}

func collectTickets(rows pgx.Rows) ([]*model.Ticket, error) {
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, TranslateError(err)
	}

	return tickets, nil
}

// CreateBatch inserts all tickets in one round trip. The unique seat constraint is the last line of
// defence against double booking; a violation surfaces as ErrSeatTaken and the caller rolls back.
func (r *TicketRepositoryImpl) CreateBatch(ctx context.Context, tx pgx.Tx, tickets []*model.Ticket) ([]*model.Ticket, error) {
	query := `
		INSERT INTO tickets (id, booking_id, screening_id, ticket_type, seat_row, seat_column)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + ticketColumns

	batch := &pgx.Batch{}
	for _, t := range tickets {
		batch.Queue(query, t.ID, t.BookingID, t.ScreeningID, t.TicketType, t.SeatRow, t.SeatColumn)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]*model.Ticket, 0, len(tickets))
	for range tickets {
		ticket, err := scanTicket(results.QueryRow())
		if err != nil {
			return nil, err
		}
		created = append(created, ticket)
	}

	return created, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error) {
	where := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.ScreeningID != "" {
		where = append(where, fmt.Sprintf("screening_id = $%d", argPos))
		args = append(args, filter.ScreeningID)
		argPos++
	}
	if filter.BookingID != "" {
		where = append(where, fmt.Sprintf("booking_id = $%d", argPos))
		args = append(args, filter.BookingID)
		argPos++
	}

	query := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	return r.findByID(ctx, r.pool, id, "")
}

func (r *TicketRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Ticket, error) {
	return r.findByID(ctx, tx, id, "FOR UPDATE")
}

func (r *TicketRepositoryImpl) findByID(ctx context.Context, db database.DBTX, id string, lock string) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1 ` + lock
	return scanTicket(db.QueryRow(ctx, query, id))
}

// ListByScreeningID is only consistent while the caller holds the screening row lock.
func (r *TicketRepositoryImpl) ListByScreeningID(ctx context.Context, tx pgx.Tx, screeningID string) ([]*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE screening_id = $1 ORDER BY seat_row, seat_column`
	rows, err := tx.Query(ctx, query, screeningID)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

func (r *TicketRepositoryImpl) ListByBookingID(ctx context.Context, tx pgx.Tx, bookingID string) ([]*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE booking_id = $1 ORDER BY id`
	rows, err := tx.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	return collectTickets(rows)
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET booking_id = $1, screening_id = $2, ticket_type = $3,
			seat_row = $4, seat_column = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + ticketColumns

	return scanTicket(tx.QueryRow(ctx, query,
		ticket.BookingID, ticket.ScreeningID, ticket.TicketType,
		ticket.SeatRow, ticket.SeatColumn, time.Now().UTC(), ticket.ID,
	))
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	result, err := tx.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepositoryImpl) DeleteByScreeningID(ctx context.Context, tx pgx.Tx, screeningID string) (int64, error) {
	result, err := tx.Exec(ctx, `DELETE FROM tickets WHERE screening_id = $1`, screeningID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// DeleteByBookingID returns the screening id of every ticket it removed, one entry per ticket.
func (r *TicketRepositoryImpl) DeleteByBookingID(ctx context.Context, tx pgx.Tx, bookingID string) ([]string, error) {
	rows, err := tx.Query(ctx, `DELETE FROM tickets WHERE booking_id = $1 RETURNING screening_id`, bookingID)
	if err != nil {
		return nil, err
	}

	screeningIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, TranslateError(err)
	}
	return screeningIDs, nil
}
