package apperrors

import (
	"errors"
	"fmt"
)

// Base kinds. Handlers classify errors with errors.Is against these.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrSeatConflict        = errors.New("seat conflict")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// Not found
var (
	ErrFilmNotFound       = fmt.Errorf("film %w", ErrNotFound)
	ErrTheatreNotFound    = fmt.Errorf("theatre %w", ErrNotFound)
	ErrScreeningNotFound  = fmt.Errorf("screening %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket %w", ErrNotFound)
	ErrTicketTypeNotFound = fmt.Errorf("ticket type %w", ErrNotFound)
)

// Validation
var (
	ErrInvalidID                = fmt.Errorf("%w: malformed id", ErrInvalidInput)
	ErrNoFieldsToUpdate         = fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	ErrNoSeatsRequested         = fmt.Errorf("%w: at least one seat is required", ErrInvalidInput)
	ErrSeatOutOfRange           = fmt.Errorf("%w: seat outside theatre layout", ErrInvalidInput)
	ErrInsufficientSeats        = fmt.Errorf("%w: not enough seats remaining", ErrInvalidInput)
	ErrSeatsRemainingOutOfRange = fmt.Errorf("%w: seats remaining must be between 0 and theatre capacity", ErrInvalidInput)
	ErrCapacityMismatch         = fmt.Errorf("%w: capacity must equal rows x columns", ErrInvalidInput)
)

// Seat conflicts
var (
	ErrSeatTaken     = fmt.Errorf("%w: seat already booked", ErrSeatConflict)
	ErrDuplicateSeat = fmt.Errorf("%w: seat requested more than once", ErrSeatConflict)
)

// Other conflicts
var (
	ErrAlreadyExists       = fmt.Errorf("%w: id already exists", ErrConflict)
	ErrReferenceViolation  = fmt.Errorf("%w: record is referenced by or references a missing record", ErrConflict)
	ErrConcurrentlyChanged = fmt.Errorf("%w: record changed concurrently, retry", ErrConflict)
)
