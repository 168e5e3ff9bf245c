package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("tickets", h.GetTickets)
		router.GET("tickets/:id", h.GetTicket)
		router.POST("tickets", h.CreateTicket)
		router.PUT("tickets/:id", h.UpdateTicket)
		router.DELETE("tickets/:id", h.DeleteTicket)
	}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req model.CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticket, err := h.service.CreateTicket(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateTicket")
		return
	}

	handleCreated(c, "Ticket created successfully", ticket.ID)
}

// GetTickets supports ?ScreeningID= and ?BookingID= filters.
func (h *TicketHandler) GetTickets(c *gin.Context) {
	var filter model.TicketFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	tickets, err := h.service.TicketList(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err, "GetTickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.service.GetTicketByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetTicket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var params model.UpdateTicketParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateTicket(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateTicket")
		return
	}

	handleMessage(c, "Ticket updated successfully")
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.service.DeleteTicket(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteTicket")
		return
	}

	handleMessage(c, "Ticket deleted successfully")
}
