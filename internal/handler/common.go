package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-gin-cinema-booking/internal/middleware"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": bindingMessage(err),
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": bindingMessage(err),
		})
		return err
	}
	return nil
}

// bindingMessage names the offending fields for validator errors and hides decoder internals otherwise.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s %s'", fe.Field(), fe.Tag(), fe.Param()))
			}
		}
		return strings.Join(msgs, "; ")
	}
	return "Invalid request format"
}

// handleError 統一錯誤回應
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("invalid input", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Info("not found", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrSeatConflict), errors.Is(err, apperrors.ErrConflict):
		log.Warn("conflict", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrInternalServerError.Error()})
	}
}

func handleCreated(c *gin.Context, message, id string) {
	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"generatedId": id,
	})
}

func handleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
