package health

import (
	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// RegisterRoutes registers the health check routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/health", GetHealth(deps))
}
