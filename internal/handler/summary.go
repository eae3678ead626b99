package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles standalone note-summary requests
type SummaryHandler struct {
	service NoteSummarizer
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(svc NoteSummarizer) *SummaryHandler {
	return &SummaryHandler{service: svc}
}

type summaryRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Note      string  `json:"note"`
}

// Summarize handles POST /summarize requests. With no AI configured
// the summary comes back empty rather than as an error.
//
//	@Summary	Summarize a coordinate and note into one sentence
//	@Tags		summary
//	@Accept		json
//	@Produce	json
//	@Param		request	body		summaryRequest	true	"Coordinate and note"
//	@Success	200		{object}	map[string]string
//	@Failure	502		{object}	map[string]string
//	@Router		/summarize [post]
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), req.Latitude, req.Longitude, req.Note)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "summary provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
