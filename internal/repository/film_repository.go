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

type FilmRepository interface {
	Create(ctx context.Context, film *model.Film) (*model.Film, error)
	List(ctx context.Context) ([]*model.Film, error)
	FindByID(ctx context.Context, id string) (*model.Film, error)
	Update(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error)
	Delete(ctx context.Context, id string) error

	// Transaction methods
	FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Film, error)
}

type FilmRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFilmRepository(pool *pgxpool.Pool) FilmRepository {
	return &FilmRepositoryImpl{
		pool: pool,
	}
}

const filmColumns = `id, name, category, genre, duration`

func scanFilm(row pgx.Row) (*model.Film, error) {
	var film model.Film
	err := row.Scan(
		&film.ID,
		&film.Name,
		&film.Category,
		&film.Genre,
		&film.Duration,
	)
	if err != nil {
		return nil, translateError(err, apperrors.ErrFilmNotFound)
	}
	return &film, nil
}

func (r *FilmRepositoryImpl) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	query := `
		INSERT INTO films (id, name, category, genre, duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + filmColumns

	return scanFilm(r.pool.QueryRow(ctx, query,
		film.ID, film.Name, film.Category, film.Genre, film.Duration,
	))
}

func (r *FilmRepositoryImpl) List(ctx context.Context) ([]*model.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := make([]*model.Film, 0)
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return films, nil
}

func (r *FilmRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Film, error) {
	return r.findByID(ctx, r.pool, id, "")
}

// FindByIDTx takes a share lock so the film cannot be deleted before the transaction commits.
func (r *FilmRepositoryImpl) FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Film, error) {
	return r.findByID(ctx, tx, id, "FOR SHARE")
}

func (r *FilmRepositoryImpl) findByID(ctx context.Context, db database.DBTX, id string, lock string) (*model.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = $1 ` + lock
	return scanFilm(db.QueryRow(ctx, query, id))
}

func (r *FilmRepositoryImpl) Update(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Category != nil {
		sets = append(sets, fmt.Sprintf("category = $%d", argPos))
		args = append(args, *params.Category)
		argPos++
	}
	if params.Genre != nil {
		sets = append(sets, fmt.Sprintf("genre = $%d", argPos))
		args = append(args, *params.Genre)
		argPos++
	}
	if params.Duration != nil {
		sets = append(sets, fmt.Sprintf("duration = $%d", argPos))
		args = append(args, *params.Duration)
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
		UPDATE films
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, filmColumns)

	return scanFilm(r.pool.QueryRow(ctx, query, args...))
}

func (r *FilmRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return translateError(err, apperrors.ErrFilmNotFound)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrFilmNotFound
	}

	return nil
}
