package handler

import (
	"context"
	"net/http"

	"delivery-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// ClassifyHandler handles classification-suggestion requests
type ClassifyHandler struct {
	service ClassifierService
}

// Service interface for dependency injection
type ClassifierService interface {
	Suggest(ctx context.Context, id int64) (models.SuggestedPath, error)
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(svc ClassifierService) *ClassifyHandler {
	return &ClassifyHandler{service: svc}
}

// Suggest handles GET /submissions/:id/suggest requests. The response
// is advisory: blank fields mean the note named nothing unambiguous,
// and committing a classification still requires a review patch.
//
//	@Summary	Suggest a classification for one submission
//	@Tags		classify
//	@Produce	json
//	@Param		id	path		int	true	"Submission id"
//	@Success	200	{object}	models.SuggestedPath
//	@Failure	404	{object}	map[string]string
//	@Router		/submissions/{id}/suggest [get]
func (h *ClassifyHandler) Suggest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	suggestion, err := h.service.Suggest(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
