package service_test

import (
	"context"
	"testing"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketTypeService_CreateTicketType(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - allocated id", func(t *testing.T) {
		m := setupMock(t)
		ticketTypeService := service.NewTicketTypeService(m.types, m.ids)

		m.ids.On("Next", ctx, model.EntityTicketType).Return("TicketType1", nil).Once()
		want := &model.TicketType{ID: "TicketType1", Name: "Adult", Cost: 12.5}
		m.types.On("Create", ctx, want).Return(want, nil).Once()

		ticketType, err := ticketTypeService.CreateTicketType(ctx, model.CreateTicketTypeRequest{Name: "Adult", Cost: floatPtr(12.5)})

		require.NoError(t, err)
		assert.Equal(t, "TicketType1", ticketType.ID)
	})

	t.Run("Success - client id skips the counter", func(t *testing.T) {
		m := setupMock(t)
		ticketTypeService := service.NewTicketTypeService(m.types, m.ids)

		want := &model.TicketType{ID: "Child", Name: "Child", Cost: 0}
		m.types.On("Create", ctx, want).Return(want, nil).Once()

		_, err := ticketTypeService.CreateTicketType(ctx, model.CreateTicketTypeRequest{TicketTypeID: "Child", Name: "Child", Cost: floatPtr(0)})

		require.NoError(t, err)
		m.ids.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	})

	t.Run("Failed - negative cost", func(t *testing.T) {
		m := setupMock(t)
		ticketTypeService := service.NewTicketTypeService(m.types, m.ids)

		_, err := ticketTypeService.CreateTicketType(ctx, model.CreateTicketTypeRequest{Name: "Adult", Cost: floatPtr(-1)})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTicketTypeService_UpdateTicketType(t *testing.T) {
	ctx := context.Background()
	m := setupMock(t)
	ticketTypeService := service.NewTicketTypeService(m.types, m.ids)

	_, err := ticketTypeService.UpdateTicketType(ctx, "Adult", model.UpdateTicketTypeParams{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)

	params := model.UpdateTicketTypeParams{Cost: floatPtr(10)}
	m.types.On("Update", ctx, "Adult", params).Return(&model.TicketType{ID: "Adult", Name: "Adult", Cost: 10}, nil).Once()

	updated, err := ticketTypeService.UpdateTicketType(ctx, "Adult", params)
	require.NoError(t, err)
	assert.Equal(t, 10.0, updated.Cost)
}
