package handler

import (
	"errors"
	"net/http"

	"delivery-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP responses. Validation
// problems carry their message through; anything unexpected is hidden
// behind a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrDuplicatePath):
		c.JSON(http.StatusConflict, gin.H{"error": "taxonomy path already exists"})
	case errors.Is(err, service.ErrUnknownClassification):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "classification does not match any taxonomy path"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
