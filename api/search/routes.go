package search

import (
	"github.com/gin-gonic/gin"

	"github.com/bookradar/bookradar-api/api/types"
)

// RegisterRoutes registers the book search routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", PostSearch(deps))
}
