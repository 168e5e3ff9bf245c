package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type ScreeningHandler struct {
	service service.ScreeningService
}

func NewScreeningHandler(service service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{service: service}
}

func (h *ScreeningHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("screenings", h.GetScreenings)
		router.GET("screenings/byFilm/:filmID", h.GetScreeningsByFilm)
		router.GET("screenings/:id", h.GetScreening)
		router.GET("screenings/:id/seats", h.GetSeatMap)
		router.POST("screenings", h.CreateScreening)
		router.PUT("screenings/:id", h.UpdateScreening)
		router.DELETE("screenings/:id", h.DeleteScreening)
	}
}

func (h *ScreeningHandler) CreateScreening(c *gin.Context) {
	var req model.CreateScreeningRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	screening, err := h.service.CreateScreening(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateScreening")
		return
	}

	handleCreated(c, "Screening created successfully", screening.ID)
}

func (h *ScreeningHandler) GetScreenings(c *gin.Context) {
	screenings, err := h.service.ScreeningList(c.Request.Context())
	if err != nil {
		handleError(c, err, "GetScreenings")
		return
	}

	c.JSON(http.StatusOK, screenings)
}

func (h *ScreeningHandler) GetScreeningsByFilm(c *gin.Context) {
	screenings, err := h.service.ListScreeningsByFilm(c.Request.Context(), c.Param("filmID"))
	if err != nil {
		handleError(c, err, "GetScreeningsByFilm")
		return
	}

	c.JSON(http.StatusOK, screenings)
}

func (h *ScreeningHandler) GetScreening(c *gin.Context) {
	screening, err := h.service.GetScreeningByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetScreening")
		return
	}

	c.JSON(http.StatusOK, screening)
}

func (h *ScreeningHandler) GetSeatMap(c *gin.Context) {
	seatMap, err := h.service.GetSeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetSeatMap")
		return
	}

	c.JSON(http.StatusOK, seatMap)
}

func (h *ScreeningHandler) UpdateScreening(c *gin.Context) {
	var params model.UpdateScreeningParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateScreening(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateScreening")
		return
	}

	handleMessage(c, "Screening updated successfully")
}

// DeleteScreening also removes every ticket issued for the screening.
func (h *ScreeningHandler) DeleteScreening(c *gin.Context) {
	if err := h.service.DeleteScreening(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteScreening")
		return
	}

	handleMessage(c, "Screening and associated tickets deleted successfully")
}
