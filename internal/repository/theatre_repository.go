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

type TheatreRepository interface {
	Create(ctx context.Context, theatre *model.Theatre) (*model.Theatre, error)
	List(ctx context.Context) ([]*model.Theatre, error)
	FindByID(ctx context.Context, id string) (*model.Theatre, error)
	Delete(ctx context.Context, id string) error

	// Transaction methods
	FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error)
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error)
	Update(ctx context.Context, tx pgx.Tx, theatre *model.Theatre) (*model.Theatre, error)
}

type TheatreRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTheatreRepository(pool *pgxpool.Pool) TheatreRepository {
	return &TheatreRepositoryImpl{
		pool: pool,
	}
}

const theatreColumns = `id, name, capacity, seat_rows, seat_columns`

func scanTheatre(row pgx.Row) (*model.Theatre, error) {
	var theatre model.Theatre
	err := row.Scan(
		&theatre.ID,
		&theatre.Name,
		&theatre.Capacity,
		&theatre.Rows,
		&theatre.Columns,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrTheatreNotFound)
	}
	return &theatre, nil
}

func (r *TheatreRepositoryImpl) Create(ctx context.Context, theatre *model.Theatre) (*model.Theatre, error) {
	query := `
		INSERT INTO theatres (id, name, capacity, seat_rows, seat_columns)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + theatreColumns

	return scanTheatre(r.pool.QueryRow(ctx, query,
		theatre.ID, theatre.Name, theatre.Capacity, theatre.Rows, theatre.Columns,
	))
}

func (r *TheatreRepositoryImpl) List(ctx context.Context) ([]*model.Theatre, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+theatreColumns+` FROM theatres ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := make([]*model.Theatre, 0)
	for rows.Next() {
		theatre, err := scanTheatre(rows)
		if err != nil {
			return nil, err
		}
		theatres = append(theatres, theatre)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}

func (r *TheatreRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Theatre, error) {
	return r.findByID(ctx, r.pool, id, "")
}

// FindByIDTx takes a share lock, so the layout stays fixed until the transaction ends.
func (r *TheatreRepositoryImpl) FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error) {
	return r.findByID(ctx, tx, id, "FOR SHARE")
}

func (r *TheatreRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error) {
	return r.findByID(ctx, tx, id, "FOR UPDATE")
}

func (r *TheatreRepositoryImpl) findByID(ctx context.Context, db database.DBTX, id string, lock string) (*model.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres WHERE id = $1 ` + lock
	return scanTheatre(db.QueryRow(ctx, query, id))
}

// Update writes every column of theatre. Callers merge partial updates first so layout checks see the final grid.
func (r *TheatreRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, theatre *model.Theatre) (*model.Theatre, error) {
	query := `
		UPDATE theatres
		SET name = $1, capacity = $2, seat_rows = $3, seat_columns = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + theatreColumns

	return scanTheatre(tx.QueryRow(ctx, query,
		theatre.Name, theatre.Capacity, theatre.Rows, theatre.Columns, time.Now().UTC(), theatre.ID,
	))
}

func (r *TheatreRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM theatres WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrTheatreNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTheatreNotFound
	}

	return nil
}
