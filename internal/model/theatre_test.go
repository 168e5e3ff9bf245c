package model

import (
	"testing"

	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestTheatre_NormalizeLayout(t *testing.T) {
	t.Run("Derives capacity", func(t *testing.T) {
		theatre := &Theatre{Rows: 5, Columns: 10}
		assert.NoError(t, theatre.NormalizeLayout())
		assert.Equal(t, 50, theatre.Capacity)
	})

	t.Run("Accepts consistent capacity", func(t *testing.T) {
		theatre := &Theatre{Capacity: 50, Rows: 5, Columns: 10}
		assert.NoError(t, theatre.NormalizeLayout())
	})

	t.Run("Rejects inconsistent capacity", func(t *testing.T) {
		theatre := &Theatre{Capacity: 60, Rows: 5, Columns: 10}
		assert.ErrorIs(t, theatre.NormalizeLayout(), apperrors.ErrCapacityMismatch)
	})

	t.Run("Rejects negative values", func(t *testing.T) {
		theatre := &Theatre{Rows: -1, Columns: 10}
		assert.ErrorIs(t, theatre.NormalizeLayout(), apperrors.ErrInvalidInput)
	})
}

func TestUpdateTheatreParams_Apply(t *testing.T) {
	theatre := &Theatre{ID: "Theatre1", Name: "Main", Capacity: 50, Rows: 5, Columns: 10}

	t.Run("Rename keeps layout", func(t *testing.T) {
		name := "Screen 1"
		params := UpdateTheatreParams{Name: &name}
		assert.False(t, params.ChangesLayout(theatre))
		merged := params.Apply(theatre)
		assert.Equal(t, "Screen 1", merged.Name)
		assert.Equal(t, 50, merged.Capacity)
		assert.Equal(t, "Main", theatre.Name)
	})

	t.Run("Grid change re-derives capacity", func(t *testing.T) {
		params := UpdateTheatreParams{Rows: intPtr(6)}
		assert.True(t, params.ChangesLayout(theatre))
		merged := params.Apply(theatre)
		assert.NoError(t, merged.NormalizeLayout())
		assert.Equal(t, 60, merged.Capacity)
	})
}

func TestTheatre_Contains(t *testing.T) {
	theatre := &Theatre{Capacity: 6, Rows: 2, Columns: 3}
	assert.True(t, theatre.Contains(Seat{1, 1}))
	assert.True(t, theatre.Contains(Seat{2, 3}))
	assert.False(t, theatre.Contains(Seat{0, 1}))
	assert.False(t, theatre.Contains(Seat{2, 4}))
	assert.False(t, theatre.Contains(Seat{3, 1}))
}

func TestHasIDPrefix(t *testing.T) {
	assert.True(t, HasIDPrefix("Screening12", EntityScreening))
	assert.False(t, HasIDPrefix("Screening", EntityScreening))
	assert.False(t, HasIDPrefix("Ticket3", EntityScreening))
	assert.Equal(t, "Booking7", FormatID(EntityBooking, 7))
}
