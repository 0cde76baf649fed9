package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/middleware"
	"github.com/khaCey/Teachers-Calendar/internal/models"
)

func claimsFromContext(c *gin.Context) *models.OperatorClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.OperatorClaims)
	if !ok {
		return nil
	}
	return claims
}
