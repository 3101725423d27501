package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/acehive/acehive-admin-api/internal/middleware"
	"github.com/acehive/acehive-admin-api/internal/models"
)

// currentClaims extracts the authenticated session claims from the context.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
