package repository

import (
	"context"
	"time"

	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScreeningRepository interface {
	List(ctx context.Context) ([]*model.Screening, error)
	ListByFilmID(ctx context.Context, filmID string) ([]*model.Screening, error)
	FindByID(ctx context.Context, id string) (*model.Screening, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Screening, error)
	ListByTheatreIDWithLock(ctx context.Context, tx pgx.Tx, theatreID string) ([]*model.Screening, error)
	Update(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error)
	AdjustSeatsRemaining(ctx context.Context, tx pgx.Tx, id string, delta int) error
	Delete(ctx context.Context, tx pgx.Tx, id string) error
}

type ScreeningRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewScreeningRepository(pool *pgxpool.Pool) ScreeningRepository {
	return &ScreeningRepositoryImpl{
		pool: pool,
	}
}

const screeningColumns = `id, film_id, theatre_id, screening_date, start_time, seats_remaining`

func scanScreening(row pgx.Row) (*model.Screening, error) {
	var screening model.Screening
	err := row.Scan(
		&screening.ID,
		&screening.FilmID,
		&screening.TheatreID,
		&screening.Date,
		&screening.StartTime,
		&screening.SeatsRemaining,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrScreeningNotFound)
	}
	return &screening, nil
}

func collectScreenings(rows pgx.Rows) ([]*model.Screening, error) {
	defer rows.Close()

	screenings := make([]*model.Screening, 0)
	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		screenings = append(screenings, screening)
	}

	if err := rows.Err(); err != nil {
		return nil, TranslateError(err)
	}

	return screenings, nil
}

func (r *ScreeningRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error) {
	query := `
		INSERT INTO screenings (id, film_id, theatre_id, screening_date, start_time, seats_remaining)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + screeningColumns

	return scanScreening(tx.QueryRow(ctx, query,
		screening.ID, screening.FilmID, screening.TheatreID,
		screening.Date, screening.StartTime, screening.SeatsRemaining,
	))
}

func (r *ScreeningRepositoryImpl) List(ctx context.Context) ([]*model.Screening, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+screeningColumns+` FROM screenings ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return collectScreenings(rows)
}

func (r *ScreeningRepositoryImpl) ListByFilmID(ctx context.Context, filmID string) ([]*model.Screening, error) {
	query := `
		SELECT ` + screeningColumns + `
		FROM screenings
		WHERE film_id = $1
		ORDER BY screening_date, start_time, id
	`
	rows, err := r.pool.Query(ctx, query, filmID)
	if err != nil {
		return nil, err
	}
	return collectScreenings(rows)
}

func (r *ScreeningRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Screening, error) {
	return r.findByID(ctx, r.pool, id, "")
}

// FindByIDWithLock 悲觀鎖, 場次的所有座位異動都經過這個 row lock
func (r *ScreeningRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Screening, error) {
	return r.findByID(ctx, tx, id, "FOR UPDATE")
}

func (r *ScreeningRepositoryImpl) findByID(ctx context.Context, db database.DBTX, id string, lock string) (*model.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings WHERE id = $1 ` + lock
	return scanScreening(db.QueryRow(ctx, query, id))
}

// ListByTheatreIDWithLock locks in id order so concurrent callers cannot deadlock on each other.
func (r *ScreeningRepositoryImpl) ListByTheatreIDWithLock(ctx context.Context, tx pgx.Tx, theatreID string) ([]*model.Screening, error) {
	query := `
		SELECT ` + screeningColumns + `
		FROM screenings
		WHERE theatre_id = $1
		ORDER BY id
		FOR UPDATE
	`
	rows, err := tx.Query(ctx, query, theatreID)
	if err != nil {
		return nil, err
	}
	return collectScreenings(rows)
}

func (r *ScreeningRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error) {
	query := `
		UPDATE screenings
		SET film_id = $1, theatre_id = $2, screening_date = $3, start_time = $4,
			seats_remaining = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + screeningColumns

	return scanScreening(tx.QueryRow(ctx, query,
		screening.FilmID, screening.TheatreID, screening.Date, screening.StartTime,
		screening.SeatsRemaining, time.Now().UTC(), screening.ID,
	))
}

// AdjustSeatsRemaining adds delta to the remaining count, bounded to [0, capacity].
// A decrement that would go below zero changes nothing and reports ErrInsufficientSeats;
// otherwise no matching row means the screening is gone.
func (r *ScreeningRepositoryImpl) AdjustSeatsRemaining(ctx context.Context, tx pgx.Tx, id string, delta int) error {
	query := `
		UPDATE screenings s
		SET seats_remaining = LEAST(s.seats_remaining + $1, t.capacity),
			updated_at = $2
		FROM theatres t
		WHERE s.id = $3
			AND t.id = s.theatre_id
			AND s.seats_remaining + $1 >= 0
	`

	result, err := tx.Exec(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return translateError(err, apperrors.ErrScreeningNotFound)
	}

	if result.RowsAffected() == 0 {
		if delta < 0 {
			return apperrors.ErrInsufficientSeats
		}
		return apperrors.ErrScreeningNotFound
	}

	return nil
}

func (r *ScreeningRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	result, err := tx.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrScreeningNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrScreeningNotFound
	}

	return nil
}
