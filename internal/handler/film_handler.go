package handler

import (
	"net/http"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	service service.FilmService
}

func NewFilmHandler(service service.FilmService) *FilmHandler {
	return &FilmHandler{service: service}
}

func (h *FilmHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("films", h.GetFilms)
		router.GET("films/:id", h.GetFilm)
		router.POST("films", h.CreateFilm)
		router.PUT("films/:id", h.UpdateFilm)
		router.DELETE("films/:id", h.DeleteFilm)
	}
}

func (h *FilmHandler) CreateFilm(c *gin.Context) {
	var req model.CreateFilmRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	film, err := h.service.CreateFilm(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateFilm")
		return
	}

	handleCreated(c, "Film created successfully", film.ID)
}

// GetFilms lists film ids only; the listing page fetches details per id.
func (h *FilmHandler) GetFilms(c *gin.Context) {
	films, err := h.service.FilmList(c.Request.Context())
	if err != nil {
		handleError(c, err, "GetFilms")
		return
	}

	summaries := make([]model.FilmSummary, 0, len(films))
	for _, f := range films {
		summaries = append(summaries, model.FilmSummary{ID: f.ID})
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *FilmHandler) GetFilm(c *gin.Context) {
	film, err := h.service.GetFilmByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "GetFilm")
		return
	}

	c.JSON(http.StatusOK, film)
}

func (h *FilmHandler) UpdateFilm(c *gin.Context) {
	var params model.UpdateFilmParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	if _, err := h.service.UpdateFilm(c.Request.Context(), c.Param("id"), params); err != nil {
		handleError(c, err, "UpdateFilm")
		return
	}

	handleMessage(c, "Film updated successfully")
}

func (h *FilmHandler) DeleteFilm(c *gin.Context) {
	if err := h.service.DeleteFilm(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err, "DeleteFilm")
		return
	}

	handleMessage(c, "Film deleted successfully")
}
