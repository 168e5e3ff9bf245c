package repository

import (
	"context"
	"fmt"

	"go-gin-cinema-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CounterRepository reads id high-water marks so the id counters can be rebuilt from stored rows.
type CounterRepository interface {
	MaxIDSuffix(ctx context.Context, entity string) (int64, error)
}

type CounterRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCounterRepository(pool *pgxpool.Pool) CounterRepository {
	return &CounterRepositoryImpl{
		pool: pool,
	}
}

var entityTables = map[string]string{
	model.EntityFilm:       "films",
	model.EntityTheatre:    "theatres",
	model.EntityScreening:  "screenings",
	model.EntityBooking:    "bookings",
	model.EntityTicket:     "tickets",
	model.EntityTicketType: "ticket_types",
}

// MaxIDSuffix ignores ids that do not have the generated form, such as client-chosen film ids.
func (r *CounterRepositoryImpl) MaxIDSuffix(ctx context.Context, entity string) (int64, error) {
	table, ok := entityTables[entity]
	if !ok {
		return 0, fmt.Errorf("no table for entity %q", entity)
	}

	query := `SELECT COALESCE(MAX(substring(id FROM $1)::BIGINT), 0) FROM ` + table
	pattern := `^` + entity + `([0-9]{1,18})$`

	var highest int64
	if err := r.pool.QueryRow(ctx, query, pattern).Scan(&highest); err != nil {
		return 0, TranslateError(err)
	}
	return highest, nil
}
