package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medsupply/orderflow/internal/backend"
)

// Directory handlers proxy the picker lists. Their errors stay on a separate
// channel from submission errors: they surface here as responses, never in a
// session's submission state.

// HandleListClients handles GET /v1/clients
func HandleListClients(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		clients, err := api.ListClients(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch clients", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clients": clients})
	}
}

// HandleListCenters handles GET /v1/distribution-centers
func HandleListCenters(api *backend.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		centers, err := api.ListCenters(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch distribution centers", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"distribution_centers": centers})
	}
}
