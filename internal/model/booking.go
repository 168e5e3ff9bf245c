package model

import (
	"fmt"
	"strings"

	apperrors "go-gin-cinema-booking/pkg/app_errors"
)

// Booking 訂位紀錄, 一筆訂位擁有多張票券
type Booking struct {
	ID           string  `json:"BookingID"`
	NoOfSeats    int     `json:"NoOfSeats"`
	Cost         float64 `json:"Cost"`
	EmailAddress string  `json:"EmailAddress"`
}

// CreateBookingRequest: Cost is a pointer because 0 is a valid cost.
type CreateBookingRequest struct {
	NoOfSeats    *int     `json:"NoOfSeats" binding:"required,gt=0"`
	Cost         *float64 `json:"Cost" binding:"required,gte=0"`
	EmailAddress string   `json:"EmailAddress" binding:"required"`
}

func (r CreateBookingRequest) Validate() error {
	if r.NoOfSeats == nil || *r.NoOfSeats <= 0 {
		return fmt.Errorf("%w: NoOfSeats must be greater than 0", apperrors.ErrInvalidInput)
	}
	if r.Cost == nil || *r.Cost < 0 {
		return fmt.Errorf("%w: Cost must not be negative", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(r.EmailAddress) == "" {
		return fmt.Errorf("%w: EmailAddress is required", apperrors.ErrInvalidInput)
	}
	return nil
}

type UpdateBookingParams struct {
	NoOfSeats    *int     `json:"NoOfSeats" binding:"omitempty,gt=0"`
	Cost         *float64 `json:"Cost" binding:"omitempty,gte=0"`
	EmailAddress *string  `json:"EmailAddress" binding:"omitempty,min=1"`
}

func (p UpdateBookingParams) IsEmpty() bool {
	return p.NoOfSeats == nil && p.Cost == nil && p.EmailAddress == nil
}

func (p UpdateBookingParams) Validate() error {
	if p.IsEmpty() {
		return apperrors.ErrNoFieldsToUpdate
	}
	if p.NoOfSeats != nil && *p.NoOfSeats <= 0 {
		return fmt.Errorf("%w: NoOfSeats must be greater than 0", apperrors.ErrInvalidInput)
	}
	if p.Cost != nil && *p.Cost < 0 {
		return fmt.Errorf("%w: Cost must not be negative", apperrors.ErrInvalidInput)
	}
	if p.EmailAddress != nil && strings.TrimSpace(*p.EmailAddress) == "" {
		return fmt.Errorf("%w: EmailAddress must not be empty", apperrors.ErrInvalidInput)
	}
	return nil
}

// BookSeatsRequest carries seats for one screening under one booking, accepted all or nothing.
type BookSeatsRequest struct {
	BookingID   string `json:"-"`
	ScreeningID string `json:"ScreeningID" binding:"required"`
	TicketType  string `json:"TicketType"`
	Seats       []Seat `json:"Seats" binding:"required,min=1"`
}
