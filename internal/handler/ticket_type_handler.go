package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketTypeHandler struct {
	service service.TicketTypeService
}

func NewTicketTypeHandler(service service.TicketTypeService) *TicketTypeHandler {
	return &TicketTypeHandler{service: service}
}

func (h *TicketTypeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("ticketTypes", h.GetTicketTypes)
		router.GET("ticketTypes/:id", h.GetTicketType)
		router.POST("ticketTypes", h.CreateTicketType)
		router.PUT("ticketTypes/:id", h.UpdateTicketType)
		router.DELETE("ticketTypes/:id", h.DeleteTicketType)
	}
}

func (h *TicketTypeHandler) CreateTicketType(c *gin.Context) {
	var req model.CreateTicketTypeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ticketType, err := h.service.CreateTicketType(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateTicketType")
		return
	}

	handleCreated(c, "Ticket type created successfully", ticketType.ID)
}

func (h *TicketTypeHandler) GetTicketTypes(c *gin.Context) {
	ticketTypes, err := h.service.TicketTypeList(c.Request.Context())
	if err != nil {
		handleError(c, err, "GetTicketTypes")
		return
	}

	c.JSON(http.StatusOK, ticketTypes)
}

func (h *TicketTypeHandler) GetTicketType(c *gin.Context) {
	ticketType, err := h.service.GetTicketTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetTicketType")
		return
	}

	c.JSON(http.StatusOK, ticketType)
}

func (h *TicketTypeHandler) UpdateTicketType(c *gin.Context) {
	var params model.UpdateTicketTypeParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateTicketType(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateTicketType")
		return
	}

	handleMessage(c, "Ticket type updated successfully")
}

func (h *TicketTypeHandler) DeleteTicketType(c *gin.Context) {
	if err := h.service.DeleteTicketType(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteTicketType")
		return
	}

	handleMessage(c, "Ticket type deleted successfully")
}
