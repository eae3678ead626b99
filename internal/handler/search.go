package handler

import (
	"context"
	"net/http"

	"delivery-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles relevance-search requests
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, query string) ([]models.Submission, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /search requests. An empty query is the
// browse-all mode and returns every submission unranked.
//
//	@Summary	Search submissions by relevance
//	@Tags		search
//	@Produce	json
//	@Param		q	query	string	false	"Free-text query"
//	@Success	200	{array}	models.Submission
//	@Router		/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []models.Submission{}
	}
	c.JSON(http.StatusOK, results)
}
