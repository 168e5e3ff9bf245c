package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error)
	List(ctx context.Context) ([]*model.TicketType, error)
	FindByID(ctx context.Context, id string) (*model.TicketType, error)
	Update(ctx context.Context, id string, params model.UpdateTicketTypeParams) (*model.TicketType, error)
	Delete(ctx context.Context, id string) error
}

type TicketTypeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketTypeRepository(pool *pgxpool.Pool) TicketTypeRepository {
	return &TicketTypeRepositoryImpl{
		pool: pool,
	}
}

const ticketTypeColumns = `id, name, cost`

func scanTicketType(row pgx.Row) (*model.TicketType, error) {
	var ticketType model.TicketType
	err := row.Scan(
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Cost,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrTicketTypeNotFound)
	}
	return &ticketType, nil
}

func (r *TicketTypeRepositoryImpl) Create(ctx context.Context, ticketType *model.TicketType) (*model.TicketType, error) {
	query := `
		INSERT INTO ticket_types (id, name, cost)
		VALUES ($1, $2, $3)
		RETURNING ` + ticketTypeColumns

	return scanTicketType(r.pool.QueryRow(ctx, query, ticketType.ID, ticketType.Name, ticketType.Cost))
}

func (r *TicketTypeRepositoryImpl) List(ctx context.Context) ([]*model.TicketType, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketTypeColumns+` FROM ticket_types ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketTypes := make([]*model.TicketType, 0)
	for rows.Next() {
		ticketType, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}
		ticketTypes = append(ticketTypes, ticketType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ticketTypes, nil
}

func (r *TicketTypeRepositoryImpl) FindByID(ctx context.Context, id string) (*model.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE id = $1`
	return scanTicketType(r.pool.QueryRow(ctx, query, id))
}

func (r *TicketTypeRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateTicketTypeParams) (*model.TicketType, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Cost != nil {
		sets = append(sets, fmt.Sprintf("cost = $%d", argPos))
		args = append(args, *params.Cost)
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
		UPDATE ticket_types
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, ticketTypeColumns)

	return scanTicketType(r.pool.QueryRow(ctx, query, args...))
}

func (r *TicketTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM ticket_types WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketTypeNotFound
	}

	return nil
}
