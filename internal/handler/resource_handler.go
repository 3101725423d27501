package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acehive/acehive-admin-api/internal/dto"
	"github.com/acehive/acehive-admin-api/internal/models"
	"github.com/acehive/acehive-admin-api/internal/service"
	appErrors "github.com/acehive/acehive-admin-api/pkg/errors"
	"github.com/acehive/acehive-admin-api/pkg/response"
)

type submissionService interface {
	Submit(ctx context.Context, userID string, draft models.ResourceDraft) (*service.SubmissionStatus, error)
	Status(userID string) *service.SubmissionStatus
	Acknowledge(userID string) (*service.SubmissionStatus, error)
}

// ResourceHandler exposes the classified resource submission pipeline.
type ResourceHandler struct {
	service submissionService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(service submissionService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// Submit godoc
// @Summary Submit a classified resource record
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body dto.SubmitResourceRequest true "Resource draft"
// @Success 201 {object} response.Envelope
// @Router /resources [post]
func (h *ResourceHandler) Submit(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.SubmitResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid submission payload"))
		return
	}

	status, err := h.service.Submit(c.Request.Context(), claims.UserID, req.Draft())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, status)
}

// Status godoc
// @Summary Current submission controller state
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/status [get]
func (h *ResourceHandler) Status(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, h.service.Status(claims.UserID))
}

// Acknowledge godoc
// @Summary Acknowledge a settled submission and reset the form state
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/acknowledge [post]
func (h *ResourceHandler) Acknowledge(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	status, err := h.service.Acknowledge(claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, status)
}
