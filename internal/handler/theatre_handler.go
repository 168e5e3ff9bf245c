package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type TheatreHandler struct {
	service service.TheatreService
}

func NewTheatreHandler(service service.TheatreService) *TheatreHandler {
	return &TheatreHandler{service: service}
}

func (h *TheatreHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("theatres", h.GetTheatres)
		router.GET("theatres/:id", h.GetTheatre)
		router.POST("theatres", h.CreateTheatre)
		router.PUT("theatres/:id", h.UpdateTheatre)
		router.DELETE("theatres/:id", h.DeleteTheatre)
	}
}

func (h *TheatreHandler) CreateTheatre(c *gin.Context) {
	var req model.CreateTheatreRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	theatre, err := h.service.CreateTheatre(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateTheatre")
		return
	}

	handleCreated(c, "Theatre created successfully", theatre.ID)
}

func (h *TheatreHandler) GetTheatres(c *gin.Context) {
	theatres, err := h.service.TheatreList(c.Request.Context())
	if err != nil {
		handleError(c, err, "GetTheatres")
		return
	}

	c.JSON(http.StatusOK, theatres)
}

func (h *TheatreHandler) GetTheatre(c *gin.Context) {
	theatre, err := h.service.GetTheatreByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetTheatre")
		return
	}

	c.JSON(http.StatusOK, theatre)
}

func (h *TheatreHandler) UpdateTheatre(c *gin.Context) {
	var params model.UpdateTheatreParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateTheatre(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateTheatre")
		return
	}

	handleMessage(c, "Theatre updated successfully")
}

func (h *TheatreHandler) DeleteTheatre(c *gin.Context) {
	if err := h.service.DeleteTheatre(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteTheatre")
		return
	}

	handleMessage(c, "Theatre deleted successfully")
}
