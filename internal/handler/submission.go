package handler

import (
	"context"
	"net/http"
	"strconv"

	"delivery-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SubmissionHandler handles delivery-point submission requests
type SubmissionHandler struct {
	service   SubmissionService
	summaries NoteSummarizer
}

// Service interface for dependency injection
type SubmissionService interface {
	Create(ctx context.Context, req models.NewSubmission) (models.Submission, error)
	ListAll(ctx context.Context) ([]models.Submission, error)
	ListPending(ctx context.Context) ([]models.Submission, error)
	Get(ctx context.Context, id int64) (models.Submission, error)
	Review(ctx context.Context, id int64, patch models.ReviewPatch) (models.Submission, error)
	Remove(ctx context.Context, id int64) error
	MapPoints(ctx context.Context) ([]models.MapPoint, error)
	AdvanceForm(state models.FormState) models.FormState
	SubmitForm(ctx context.Context, state models.FormState) (models.Submission, error)
}

// NoteSummarizer produces an optional AI summary line for a stored
// submission. It must tolerate not being backed by any AI at all.
type NoteSummarizer interface {
	Summarize(ctx context.Context, lat, lon float64, note string) (string, error)
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(svc SubmissionService, summaries NoteSummarizer) *SubmissionHandler {
	return &SubmissionHandler{service: svc, summaries: summaries}
}

// Create handles POST /submissions requests. The stored record is
// always pending and unclassified; the response additionally carries a
// one-sentence AI summary when the summarizer is available.
//
//	@Summary	Create a delivery-point submission
//	@Tags		submissions
//	@Accept		json
//	@Produce	json
//	@Param		submission	body		models.NewSubmission	true	"New submission"
//	@Success	201			{object}	map[string]any
//	@Failure	400			{object}	map[string]string
//	@Router		/submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req models.NewSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	summary := ""
	if lat, lon, ok := sub.Coordinate(); ok {
		summary, err = h.summaries.Summarize(c.Request.Context(), lat, lon, sub.Note)
		if err != nil {
			// The record is already stored; a failed summary only
			// costs the comment line.
			log.Warn().Err(err).Int64("submission_id", sub.ID).Msg("note summary unavailable")
			summary = ""
		}
	}

	c.JSON(http.StatusCreated, gin.H{"submission": sub, "ai_summary": summary})
}

// Validate handles POST /submissions/validate requests: a dry run of
// the submission wizard that reports the next step and any field
// problems without writing anything.
//
//	@Summary	Validate an in-progress submission form
//	@Tags		submissions
//	@Accept		json
//	@Produce	json
//	@Param		state	body		models.FormState	true	"Form state"
//	@Success	200		{object}	models.FormState
//	@Failure	400		{object}	map[string]string
//	@Router		/submissions/validate [post]
func (h *SubmissionHandler) Validate(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, h.service.AdvanceForm(state))
}

// SubmitForm handles POST /submissions/form requests: the terminal
// save step of the wizard, persisting the accumulated form state as a
// new submission.
//
//	@Summary	Save a completed submission form
//	@Tags		submissions
//	@Accept		json
//	@Produce	json
//	@Param		state	body		models.FormState	true	"Completed form state"
//	@Success	201		{object}	models.Submission
//	@Failure	400		{object}	map[string]string
//	@Router		/submissions/form [post]
func (h *SubmissionHandler) SubmitForm(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.SubmitForm(c.Request.Context(), state)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// List handles GET /submissions requests
//
//	@Summary	List all submissions in insertion order
//	@Tags		submissions
//	@Produce	json
//	@Success	200	{array}	models.Submission
//	@Router		/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	subs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

// ListPending handles GET /submissions/pending requests
//
//	@Summary	List submissions awaiting review
//	@Tags		submissions
//	@Produce	json
//	@Success	200	{array}	models.Submission
//	@Router		/submissions/pending [get]
func (h *SubmissionHandler) ListPending(c *gin.Context) {
	subs, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

// Get handles GET /submissions/:id requests
//
//	@Summary	Get one submission
//	@Tags		submissions
//	@Produce	json
//	@Param		id	path		int	true	"Submission id"
//	@Success	200	{object}	models.Submission
//	@Failure	404	{object}	map[string]string
//	@Router		/submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sub, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Review handles PATCH /submissions/:id requests
//
//	@Summary	Apply an operator review patch
//	@Tags		submissions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Submission id"
//	@Param		patch	body		models.ReviewPatch	true	"Review patch"
//	@Success	200		{object}	models.Submission
//	@Failure	404		{object}	map[string]string
//	@Failure	422		{object}	map[string]string
//	@Router		/submissions/{id} [patch]
func (h *SubmissionHandler) Review(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.service.Review(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Delete handles DELETE /submissions/:id requests
//
//	@Summary	Delete one submission
//	@Tags		submissions
//	@Param		id	path	int	true	"Submission id"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MapPoints handles GET /submissions/map requests
//
//	@Summary	List submissions with well-formed coordinates
//	@Tags		submissions
//	@Produce	json
//	@Success	200	{array}	models.MapPoint
//	@Router		/submissions/map [get]
func (h *SubmissionHandler) MapPoints(c *gin.Context) {
	points, err := h.service.MapPoints(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
