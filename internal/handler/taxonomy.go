package handler

import (
	"context"
	"net/http"
	"strconv"

	"delivery-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler handles location-taxonomy requests
type TaxonomyHandler struct {
	service TaxonomyService
}

// Service interface for dependency injection
type TaxonomyService interface {
	ListAll(ctx context.Context) ([]models.TaxonomyPath, error)
	ListChildren(ctx context.Context, prefix []string) ([]string, error)
	Append(ctx context.Context, p models.TaxonomyPath) error
	RemoveAt(ctx context.Context, index int) error
	BulkInsert(ctx context.Context, req models.BulkTaxonomyRequest) (inserted, skipped int, err error)
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(svc TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{service: svc}
}

// List handles GET /taxonomy requests
//
//	@Summary	List all taxonomy paths in insertion order
//	@Tags		taxonomy
//	@Produce	json
//	@Success	200	{array}	models.TaxonomyPath
//	@Router		/taxonomy [get]
func (h *TaxonomyHandler) List(c *gin.Context) {
	paths, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if paths == nil {
		paths = []models.TaxonomyPath{}
	}
	c.JSON(http.StatusOK, paths)
}

// prefixParams lists the cascading-filter query parameters in
// hierarchy order. The prefix stops at the first absent one.
var prefixParams = []string{"gate", "road", "road_side", "main_alley", "main_alley_side", "sub_alley"}

// Children handles GET /taxonomy/children requests. The fixed prefix
// comes from query parameters; the response is the candidate list for
// the next level.
//
//	@Summary	List next-level values under a taxonomy prefix
//	@Tags		taxonomy
//	@Produce	json
//	@Param		gate			query	string	false	"Gate"
//	@Param		road			query	string	false	"Road"
//	@Param		road_side		query	string	false	"Road side"
//	@Param		main_alley		query	string	false	"Main alley"
//	@Param		main_alley_side	query	string	false	"Main alley side"
//	@Param		sub_alley		query	string	false	"Sub alley"
//	@Success	200	{array}	string
//	@Router		/taxonomy/children [get]
func (h *TaxonomyHandler) Children(c *gin.Context) {
	var prefix []string
	for _, name := range prefixParams {
		v := c.Query(name)
		if v == "" {
			break
		}
		prefix = append(prefix, v)
	}

	children, err := h.service.ListChildren(c.Request.Context(), prefix)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, children)
}

// Append handles POST /taxonomy requests
//
//	@Summary	Append one taxonomy path
//	@Tags		taxonomy
//	@Accept		json
//	@Produce	json
//	@Param		path	body		models.TaxonomyPath	true	"Taxonomy path"
//	@Success	201		{object}	models.TaxonomyPath
//	@Failure	409		{object}	map[string]string
//	@Router		/taxonomy [post]
func (h *TaxonomyHandler) Append(c *gin.Context) {
	var path models.TaxonomyPath
	if err := c.ShouldBindJSON(&path); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Append(c.Request.Context(), path); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, path.Normalized())
}

// Bulk handles POST /taxonomy/bulk requests: a whole entry tree for
// one gate, validated and flattened before anything is written.
//
//	@Summary	Insert a taxonomy entry tree
//	@Tags		taxonomy
//	@Accept		json
//	@Produce	json
//	@Param		tree	body		models.BulkTaxonomyRequest	true	"Entry tree"
//	@Success	200		{object}	map[string]int
//	@Failure	400		{object}	map[string]string
//	@Router		/taxonomy/bulk [post]
func (h *TaxonomyHandler) Bulk(c *gin.Context) {
	var req models.BulkTaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	inserted, skipped, err := h.service.BulkInsert(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted": inserted, "skipped": skipped})
}

// Remove handles DELETE /taxonomy/:index requests
//
//	@Summary	Remove the taxonomy path at a store position
//	@Tags		taxonomy
//	@Param		index	path	int	true	"Store position"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/taxonomy/{index} [delete]
func (h *TaxonomyHandler) Remove(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	if err := h.service.RemoveAt(c.Request.Context(), index); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
