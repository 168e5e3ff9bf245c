package handler

import (
	"net/http"
	"testing"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service/mocks"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTicket(t *testing.T) {
	req := model.CreateTicketRequest{BookingID: "Booking1", ScreeningID: "Screening1", TicketType: "Adult", SeatRow: 1, SeatColumn: 1}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTestRouter(NewTicketHandler(mockService))

		mockService.On("CreateTicket", mock.Anything, req).Return(&model.Ticket{ID: "Ticket1"}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/tickets", req))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ticket1", decodeBody(w)["generatedId"])
	})

	t.Run("Failed - SeatConflict", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTestRouter(NewTicketHandler(mockService))

		mockService.On("CreateTicket", mock.Anything, req).Return(nil, apperrors.ErrSeatTaken).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/tickets", req))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - row zero", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTestRouter(NewTicketHandler(mockService))

		bad := req
		bad.SeatRow = 0
		w := serve(router, createJSONHTTPRequest("POST", "/api/tickets", bad))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTickets(t *testing.T) {
	mockService := mocks.NewMockTicketService(t)
	router := setupTestRouter(NewTicketHandler(mockService))

	mockService.On("TicketList", mock.Anything, model.TicketFilter{ScreeningID: "Screening1"}).
		Return([]*model.Ticket{{ID: "Ticket1", ScreeningID: "Screening1", SeatRow: 1, SeatColumn: 1}}, nil).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/tickets?ScreeningID=Screening1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"TicketID":"Ticket1"`)
}

func TestDeleteTicket(t *testing.T) {
	mockService := mocks.NewMockTicketService(t)
	router := setupTestRouter(NewTicketHandler(mockService))

	mockService.On("DeleteTicket", mock.Anything, "Ticket1").Return(nil).Once()
	mockService.On("DeleteTicket", mock.Anything, "Ticket2").Return(apperrors.ErrTicketNotFound).Once()

	assert.Equal(t, http.StatusOK, serve(router, createJSONHTTPRequest("DELETE", "/api/tickets/Ticket1", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, createJSONHTTPRequest("DELETE", "/api/tickets/Ticket2", nil)).Code)
}
