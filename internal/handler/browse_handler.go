package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/acehive/acehive-admin-api/internal/dto"
	"github.com/acehive/acehive-admin-api/internal/models"
	"github.com/acehive/acehive-admin-api/internal/service"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
	"github.com/acehive/acehive-admin-api/pkg/response"
)

type browseService interface {
	SelectTable(ctx context.Context, userID, table string) (*dto.BrowseView, error)
	ApplyFilters(userID, table string, query models.BrowseQuery) (*dto.BrowseView, error)
	Search(userID, table, text string) (*dto.BrowseView, error)
	ResetFilters(userID, table string) (*dto.BrowseView, error)
	View(userID string) (*dto.BrowseView, error)
}

type exportService interface {
	Export(userID, table string, format service.ExportFormat) (*service.ExportResult, error)
}

// BrowseHandler exposes the generic table viewer.
type BrowseHandler struct {
	service  browseService
	exporter exportService
}

// NewBrowseHandler constructs the handler.
func NewBrowseHandler(svc browseService, exporter exportService) *BrowseHandler {
	return &BrowseHandler{service: svc, exporter: exporter}
}

// Select godoc
// @Summary Fetch a table and replace the browsing snapshot
// @Tags Browse
// @Produce json
// @Param name path string true "Table name"
// @Success 200 {object} response.Envelope
// @Router /tables/{name} [get]
func (h *BrowseHandler) Select(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	table := strings.TrimSpace(c.Param("name"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table name is required"))
		return
	}

	view, err := h.service.SelectTable(c.Request.Context(), claims.UserID, table)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Filter godoc
// @Summary Apply composable filters over the current snapshot
// @Tags Browse
// @Accept json
// @Produce json
// @Param payload body models.BrowseQuery true "Filter fields"
// @Success 200 {object} response.Envelope
// @Router /tables/{name}/filters [post]
func (h *BrowseHandler) Filter(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	table := strings.TrimSpace(c.Param("name"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table name is required"))
		return
	}

	var query models.BrowseQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid filter payload"))
		return
	}

	view, err := h.service.ApplyFilters(claims.UserID, table, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Search godoc
// @Summary Live title search over the full snapshot
// @Tags Browse
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} response.Envelope
// @Router /tables/{name}/search [get]
func (h *BrowseHandler) Search(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	table := strings.TrimSpace(c.Param("name"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table name is required"))
		return
	}

	view, err := h.service.Search(claims.UserID, table, c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Reset godoc
// @Summary Clear all filters and restore the full row set
// @Tags Browse
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tables/{name}/filters [delete]
func (h *BrowseHandler) Reset(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	table := strings.TrimSpace(c.Param("name"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table name is required"))
		return
	}

	view, err := h.service.ResetFilters(claims.UserID, table)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Export godoc
// @Summary Export the current filtered view as CSV or PDF
// @Tags Browse
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /tables/{name}/export [get]
func (h *BrowseHandler) Export(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export is disabled"))
		return
	}

	table := strings.TrimSpace(c.Param("name"))
	if table == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "table name is required"))
		return
	}

	format := service.ExportFormat(strings.ToLower(c.DefaultQuery("format", "csv")))
	result, err := h.exporter.Export(claims.UserID, table, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
