package model

import (
	"fmt"

	apperrors "go-gin-cinema-booking/pkg/app_errors"
)

// Theatre 影廳, Capacity 固定等於 Rows x Columns
type Theatre struct {
	ID       string `json:"TheatreID"`
	Name     string `json:"Name"`
	Capacity int    `json:"Capacity"`
	Rows     int    `json:"Rows"`
	Columns  int    `json:"Columns"`
}

// Contains reports whether seat lies inside the theatre grid (1-based).
func (t *Theatre) Contains(seat Seat) bool {
	return seat.Row >= 1 && seat.Row <= t.Rows && seat.Column >= 1 && seat.Column <= t.Columns
}

// NormalizeLayout derives Capacity from the grid when it is unset and rejects inconsistent layouts.
func (t *Theatre) NormalizeLayout() error {
	if t.Rows < 0 || t.Columns < 0 || t.Capacity < 0 {
		return fmt.Errorf("%w: rows, columns and capacity must not be negative", apperrors.ErrInvalidInput)
	}
	if t.Capacity == 0 {
		t.Capacity = t.Rows * t.Columns
		return nil
	}
	if t.Capacity != t.Rows*t.Columns {
		return fmt.Errorf("%w: %d != %d x %d", apperrors.ErrCapacityMismatch, t.Capacity, t.Rows, t.Columns)
	}
	return nil
}

type CreateTheatreRequest struct {
	TheatreID string `json:"theatreID"`
	Name      string `json:"Name"`
	Capacity  int    `json:"Capacity" binding:"gte=0"`
	Rows      *int   `json:"Rows" binding:"required,gte=0"`
	Columns   *int   `json:"Columns" binding:"required,gte=0"`
}

type UpdateTheatreParams struct {
	Name     *string `json:"Name"`
	Capacity *int    `json:"Capacity" binding:"omitempty,gte=0"`
	Rows     *int    `json:"Rows" binding:"omitempty,gte=0"`
	Columns  *int    `json:"Columns" binding:"omitempty,gte=0"`
}

func (p UpdateTheatreParams) IsEmpty() bool {
	return p.Name == nil && p.Capacity == nil && p.Rows == nil && p.Columns == nil
}

// ChangesLayout reports whether applying p alters the seat grid of t.
func (p UpdateTheatreParams) ChangesLayout(t *Theatre) bool {
	return (p.Rows != nil && *p.Rows != t.Rows) ||
		(p.Columns != nil && *p.Columns != t.Columns) ||
		(p.Capacity != nil && *p.Capacity != t.Capacity)
}

// Apply returns a copy of t with p merged in. A layout change without an explicit capacity re-derives it.
func (p UpdateTheatreParams) Apply(t *Theatre) *Theatre {
	merged := *t
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Rows != nil {
		merged.Rows = *p.Rows
	}
	if p.Columns != nil {
		merged.Columns = *p.Columns
	}
	if p.Capacity != nil {
		merged.Capacity = *p.Capacity
	} else if p.Rows != nil || p.Columns != nil {
		merged.Capacity = 0
	}
	return &merged
}
