package history

import (
	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// RegisterRoutes registers the history listing routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/history", GetSearchHistory(deps))
	group.GET("/views", GetViewHistory(deps))
}
