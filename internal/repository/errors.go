package repository

import (
	"errors"

	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	ticketSeatConstraint = "tickets_screening_seat_key"
)

// TranslateError is translateError for callers outside the package that see raw driver errors (Commit).
func TranslateError(err error) error {
	return translateError(err, err)
}

// translateError maps driver errors onto the application taxonomy.
// notFound is returned for pgx.ErrNoRows; unknown errors pass through untouched.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		translated := classifyPgError(pgErr)
		if translated != nil {
			// detail names columns and constraints, so it stays in the log
			logger.WithComponent("repository").Info("constraint rejected write",
				zap.String("code", pgErr.Code),
				zap.String("constraint", pgErr.ConstraintName),
				zap.String("detail", pgErr.Detail),
			)
			return translated
		}
	}
	return err
}

func classifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == ticketSeatConstraint {
			return apperrors.ErrSeatTaken
		}
		return apperrors.ErrAlreadyExists
	case pgForeignKeyViolation:
		return apperrors.ErrReferenceViolation
	case pgCheckViolation:
		return apperrors.ErrInvalidInput
	case pgSerializationFailure, pgDeadlockDetected:
		return apperrors.ErrConcurrentlyChanged
	}
	return nil
}
