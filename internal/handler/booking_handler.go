package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("bookings", h.GetBookings)
		router.GET("bookings/:id", h.GetBooking)
		router.POST("bookings", h.CreateBooking)
		router.POST("bookings/:id/seats", h.BookSeats)
		router.PUT("bookings/:id", h.UpdateBooking)
		router.DELETE("bookings/:id", h.DeleteBooking)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}

	handleCreated(c, "Booking created successfully", booking.ID)
}

// BookSeats 一次選多個座位, 全部成功或全部失敗
func (h *BookingHandler) BookSeats(c *gin.Context) {
	var req model.BookSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	req.BookingID = c.Param("id")

	tickets, err := h.service.BookSeats(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "BookSeats")
		return
	}

	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Seats booked successfully",
		"generatedIds": ids,
		"tickets":      tickets,
	})
}

func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.service.BookingList(c.Request.Context())
	if err != nil {
		handleError(c, err, "GetBookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var params model.UpdateBookingParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateBooking")
		return
	}

	handleMessage(c, "Booking updated successfully")
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteBooking")
		return
	}

	handleMessage(c, "Booking and associated tickets deleted successfully")
}
