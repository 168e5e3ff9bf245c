package model

import (
	"fmt"

	apperrors "go-gin-cinema-booking/pkg/app_errors"
)

// Seat is a 1-based (row, column) coordinate in a theatre grid.
type Seat struct {
	Row    int `json:"Row"`
	Column int `json:"Column"`
}

func (s Seat) String() string {
	return fmt.Sprintf("%d-%d", s.Row, s.Column)
}

// SeatMap is what the seat-selection grid renders for a screening.
type SeatMap struct {
	ScreeningID    string `json:"ScreeningID"`
	TheatreID      string `json:"TheatreID"`
	Rows           int    `json:"Rows"`
	Columns        int    `json:"Columns"`
	Capacity       int    `json:"Capacity"`
	SeatsRemaining int    `json:"SeatsRemaining"`
	Booked         []Seat `json:"Booked"`
}

// SeatsOf returns the seats claimed by tickets.
func SeatsOf(tickets []*Ticket) []Seat {
	seats := make([]Seat, 0, len(tickets))
	for _, t := range tickets {
		seats = append(seats, t.Seat())
	}
	return seats
}

// CheckSeatSelection decides whether requested can be ticketed for a screening held in theatre,
// given the seats already ticketed and the screening's remaining count.
//
//  1. nothing requested                   -> ErrNoSeatsRequested
//  2. a seat repeated inside the request  -> ErrDuplicateSeat
//  3. a seat outside the grid             -> ErrSeatOutOfRange
//  4. a seat already ticketed             -> ErrSeatTaken
//  5. more seats than remain              -> ErrInsufficientSeats
func CheckSeatSelection(theatre *Theatre, booked []Seat, requested []Seat, seatsRemaining int) error {
	if len(requested) == 0 {
		return apperrors.ErrNoSeatsRequested
	}

	seen := make(map[Seat]struct{}, len(requested))
	for _, seat := range requested {
		if _, dup := seen[seat]; dup {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateSeat, seat)
		}
		seen[seat] = struct{}{}
	}

	for _, seat := range requested {
		if !theatre.Contains(seat) {
			return fmt.Errorf("%w: %s not in %dx%d", apperrors.ErrSeatOutOfRange, seat, theatre.Rows, theatre.Columns)
		}
	}

	for _, seat := range booked {
		if _, clash := seen[seat]; clash {
			return fmt.Errorf("%w: %s", apperrors.ErrSeatTaken, seat)
		}
	}

	if len(requested) > seatsRemaining {
		return fmt.Errorf("%w: requested %d, remaining %d", apperrors.ErrInsufficientSeats, len(requested), seatsRemaining)
	}

	return nil
}

// RecalculateSeatsRemaining is the remaining count of a screening whose tickets hold booked,
// once it is (re)assigned to theatre. Every ticketed seat must still exist in the new grid.
func RecalculateSeatsRemaining(theatre *Theatre, booked []Seat) (int, error) {
	for _, seat := range booked {
		if !theatre.Contains(seat) {
			return 0, fmt.Errorf("%w: ticketed seat %s not in %dx%d", apperrors.ErrSeatOutOfRange, seat, theatre.Rows, theatre.Columns)
		}
	}
	remaining := theatre.Capacity - len(booked)
	if remaining < 0 {
		return 0, fmt.Errorf("%w: %d tickets exceed capacity %d", apperrors.ErrInsufficientSeats, len(booked), theatre.Capacity)
	}
	return remaining, nil
}

// CheckSeatsRemaining validates an explicitly supplied remaining count against a theatre.
func CheckSeatsRemaining(theatre *Theatre, seatsRemaining int) error {
	if seatsRemaining < 0 || seatsRemaining > theatre.Capacity {
		return fmt.Errorf("%w: %d not in [0, %d]", apperrors.ErrSeatsRemainingOutOfRange, seatsRemaining, theatre.Capacity)
	}
	return nil
}
